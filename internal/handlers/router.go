package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	_ "visionstage-backend/docs"
	"visionstage-backend/internal/events"
	"visionstage-backend/internal/listings"
	"visionstage-backend/internal/middleware"
	"visionstage-backend/internal/services"
	"visionstage-backend/internal/staging"
	"visionstage-backend/internal/styles"
	"visionstage-backend/internal/supabase"
)

// Dependencies are the components the HTTP API serves. StorageClient is
// optional.
type Dependencies struct {
	Logger        *zap.Logger
	Registry      *styles.Registry
	Store         *listings.Store
	Manager       *staging.Manager
	Hub           *events.Hub
	StorageClient *supabase.StorageClient
}

func NewRouter(deps Dependencies) (*gin.Engine, error) {
	if err := RegisterValidators(); err != nil {
		return nil, err
	}

	stylesHandler := NewStylesHandler(deps.Registry)
	listingsHandler := NewListingsHandler(deps.Store, deps.Registry)
	pendingHandler := NewPendingHandler(deps.Manager)
	var uploader services.Uploader
	if deps.StorageClient != nil {
		uploader = deps.StorageClient
	}
	publisher := services.NewPublishService(deps.Store, uploader, deps.Logger)

	imagesHandler := NewImagesHandler(deps.Store, deps.Manager, publisher)
	eventsHandler := NewEventsHandler(deps.Store, deps.Hub)
	healthHandler := NewHealthHandler(deps.Manager, publisher.Enabled())

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Recovery(deps.Logger))

	router.GET("/health", healthHandler.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	// Styles
	api.GET("/styles", stylesHandler.ListStyles)
	api.POST("/styles", stylesHandler.CreateStyle)
	api.GET("/styles/:style_id", stylesHandler.GetStyle)
	api.GET("/room-labels", stylesHandler.RoomLabels)

	// Listings
	api.GET("/listings", listingsHandler.ListListings)
	api.POST("/listings", listingsHandler.CreateListing)
	api.GET("/listings/:id", listingsHandler.GetListing)
	api.GET("/listings/:id/download", imagesHandler.DownloadFeatured)

	// Images
	api.PUT("/listings/:id/images/:image_id/feedback", listingsHandler.UpdateFeedback)
	api.POST("/listings/:id/images/:image_id/save-style", listingsHandler.SaveStyle)
	api.POST("/listings/:id/images/:image_id/refine", imagesHandler.Refine)
	api.GET("/listings/:id/images/:image_id/download", imagesHandler.Download)
	api.POST("/listings/:id/images/:image_id/publish", imagesHandler.Publish)
	api.DELETE("/listings/:id/images/:image_id/publish", imagesHandler.Unpublish)

	// Pending batch and staging runs
	api.POST("/listings/:id/pending", pendingHandler.AddPending)
	api.GET("/listings/:id/pending", pendingHandler.GetPending)
	api.DELETE("/listings/:id/pending", pendingHandler.Discard)
	api.PATCH("/listings/:id/pending/:index", pendingHandler.UpdatePending)
	api.PUT("/listings/:id/pending/instructions", pendingHandler.SetInstructions)
	api.POST("/listings/:id/pending/submit", pendingHandler.Submit)
	api.GET("/listings/:id/progress", pendingHandler.Progress)
	api.GET("/listings/:id/events", eventsHandler.Stream)

	return router, nil
}
