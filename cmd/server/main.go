// @title           VisionStage Backend API
// @version         1.0.0
// @description     Backend API for AI virtual staging of real estate listings. It manages listings and staging styles, runs bulk staging batches through Gemini, and streams batch progress.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"visionstage-backend/docs"
	"visionstage-backend/internal/config"
	"visionstage-backend/internal/events"
	"visionstage-backend/internal/gemini"
	"visionstage-backend/internal/handlers"
	"visionstage-backend/internal/listings"
	"visionstage-backend/internal/logger"
	"visionstage-backend/internal/persistence"
	"visionstage-backend/internal/staging"
	"visionstage-backend/internal/styles"
	"visionstage-backend/internal/supabase"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	os.Exit(finish(zlog, run(cfg, zlog)))
}

// configureSwagger points the generated docs at the public base URL.
func configureSwagger(baseURL string) {
	if baseURL == "" {
		return
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return
	}
	docs.SwaggerInfo.Host = u.Host
	if u.Scheme == "https" {
		docs.SwaggerInfo.Schemes = []string{"https", "http"}
	} else {
		docs.SwaggerInfo.Schemes = []string{"http", "https"}
	}
}

// finish logs a fatal run error and flushes the logger before the process
// exits, returning the exit code.
func finish(zlog *zap.Logger, err error) int {
	code := 0
	if err != nil {
		zlog.Error("server stopped", zap.Error(err))
		code = 1
	}
	_ = zlog.Sync()
	return code
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	configureSwagger(cfg.BaseURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := persistence.Open(cfg, zlog)
	if err != nil {
		return err
	}
	defer backend.Close()

	registry := styles.NewRegistry(backend, zlog)
	if err := registry.Load(ctx); err != nil {
		return err
	}
	store := listings.NewStore(backend, zlog)
	if err := store.Load(ctx); err != nil {
		return err
	}

	geminiClient := gemini.NewClient(ctx, gemini.Options{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
		Timeout: cfg.GeminiTimeout,
	})
	if err := geminiClient.Ready(); err != nil {
		zlog.Warn("Gemini is not configured, staging requests will be rejected", zap.Error(err))
	} else {
		zlog.Info("Gemini configured", zap.String("model", geminiClient.Model()))
	}

	hub := events.NewHub(zlog)
	pipeline := staging.NewPipeline(geminiClient, registry, store, hub, zlog)
	manager := staging.NewManager(pipeline, store, zlog)

	// Storage is optional: without it publishing answers 503.
	var storageClient *supabase.StorageClient
	if cfg.StorageEnabled() {
		storageClient, err = supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
		if err != nil {
			return err
		}
		zlog.Info("publishing enabled", zap.String("bucket", cfg.SupabaseStorageBucket))
	} else {
		zlog.Warn("Supabase storage not configured, publishing is disabled")
	}

	router, err := handlers.NewRouter(handlers.Dependencies{
		Logger:        zlog,
		Registry:      registry,
		Store:         store,
		Manager:       manager,
		Hub:           hub,
		StorageClient: storageClient,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	// End event streams so Shutdown doesn't wait on them.
	srv.RegisterOnShutdown(hub.Close)

	serveErr := make(chan error, 1)
	go func() {
		zlog.Info("server starting", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		zlog.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("http shutdown", zap.Error(err))
	}
	if err := manager.Shutdown(shutdownCtx); err != nil {
		zlog.Error("staging shutdown", zap.Error(err))
	}
	return nil
}
