package handlers_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"visionstage-backend/internal/events"
	"visionstage-backend/internal/handlers"
	"visionstage-backend/internal/imaging"
	"visionstage-backend/internal/listings"
	"visionstage-backend/internal/models"
	"visionstage-backend/internal/persistence"
	"visionstage-backend/internal/staging"
	"visionstage-backend/internal/styles"
	"visionstage-backend/internal/supabase"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)

type stubGateway struct {
	readyErr error
	block    chan struct{}
	calls    atomic.Int32
}

func (g *stubGateway) Ready() error { return g.readyErr }

func (g *stubGateway) StageRoom(ctx context.Context, src imaging.EncodedImage, _ string) (imaging.EncodedImage, error) {
	g.calls.Add(1)
	if g.block != nil {
		select {
		case <-g.block:
		case <-ctx.Done():
			return imaging.EncodedImage{}, ctx.Err()
		}
	}
	return imaging.EncodedImage{MIMEType: "image/png", Data: append([]byte("staged-"), src.Data...)}, nil
}

type testEnv struct {
	router  *gin.Engine
	store   *listings.Store
	manager *staging.Manager
	gateway *stubGateway
}

type envOption func(*handlers.Dependencies)

func withStorage(sc *supabase.StorageClient) envOption {
	return func(d *handlers.Dependencies) { d.StorageClient = sc }
}

func newEnv(t *testing.T, gw *stubGateway, opts ...envOption) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend, err := persistence.NewBadgerBackend("")
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	ctx := context.Background()
	logger := zap.NewNop()
	registry := styles.NewRegistry(backend, logger)
	require.NoError(t, registry.Load(ctx))
	store := listings.NewStore(backend, logger)
	require.NoError(t, store.Load(ctx))

	hub := events.NewHub(logger)
	pipeline := staging.NewPipeline(gw, registry, store, hub, logger)
	manager := staging.NewManager(pipeline, store, logger)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		manager.Shutdown(ctx)
	})

	deps := handlers.Dependencies{
		Logger:   logger,
		Registry: registry,
		Store:    store,
		Manager:  manager,
		Hub:      hub,
	}
	for _, opt := range opts {
		opt(&deps)
	}
	router, err := handlers.NewRouter(deps)
	require.NoError(t, err)

	return &testEnv{router: router, store: store, manager: manager, gateway: gw}
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createListing(t *testing.T, address, styleID string) models.ListingResponse {
	t.Helper()
	w := e.do("POST", "/api/v1/listings", models.CreateListingRequest{Address: address, TargetStyleID: styleID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp models.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (e *testEnv) seedImage(t *testing.T, listingID string, img models.GeneratedImage) {
	t.Helper()
	require.NoError(t, e.store.PrependImage(context.Background(), listingID, img))
}

func (e *testEnv) wait(t *testing.T, listingID string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, e.manager.Wait(ctx, listingID))
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func dataURL(tag string) string {
	return imaging.EncodedImage{MIMEType: "image/png", Data: []byte(tag)}.DataURL()
}

func TestHealth(t *testing.T) {
	env := newEnv(t, &stubGateway{})

	w := env.do("GET", "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.HealthResponse](t, w)
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, "ready", got.Gemini)
	assert.Equal(t, "disabled", got.Publishing)
	assert.Empty(t, got.Message)
}

func TestHealth_GeminiNotConfigured(t *testing.T) {
	env := newEnv(t, &stubGateway{readyErr: errors.New("GEMINI_API_KEY is not set")})

	w := env.do("GET", "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.HealthResponse](t, w)
	assert.Equal(t, "degraded", got.Status)
	assert.Equal(t, "not_configured", got.Gemini)
	assert.Contains(t, got.Message, "GEMINI_API_KEY")
}

func TestSwaggerDocs(t *testing.T) {
	env := newEnv(t, &stubGateway{})

	w := env.do("GET", "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "VisionStage Backend API")
	assert.Contains(t, w.Body.String(), "/listings/{id}/pending/submit")
}

func TestStyles(t *testing.T) {
	env := newEnv(t, &stubGateway{})

	w := env.do("GET", "/api/v1/styles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.StylesResponse](t, w)
	require.Len(t, list.Styles, 7)
	assert.Equal(t, "magic", list.Styles[0].ID)

	w = env.do("POST", "/api/v1/styles", models.CreateStyleRequest{Name: "Coastal", Prompt: "Breezy coastal decor"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.StagingStyle](t, w)
	assert.True(t, strings.HasPrefix(created.ID, "custom-"))
	assert.True(t, created.IsCustom)

	w = env.do("GET", "/api/v1/styles/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do("POST", "/api/v1/styles", models.CreateStyleRequest{Name: "  ", Prompt: "x"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do("GET", "/api/v1/styles/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do("GET", "/api/v1/room-labels", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.RoomLabels, decode[models.RoomLabelsResponse](t, w).Labels)
}

func TestListings(t *testing.T) {
	env := newEnv(t, &stubGateway{})

	first := env.createListing(t, "10 Main St", "")
	assert.Equal(t, "magic", first.TargetStyleID)
	assert.Equal(t, "AI Magic Makeover", first.TargetStyleName)
	second := env.createListing(t, "22 Oak Ave", "modern")

	w := env.do("POST", "/api/v1/listings", models.CreateListingRequest{Address: "   "})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	env.seedImage(t, second.ID, models.GeneratedImage{ID: "img-1", URL: dataURL("cover"), StyleID: "modern", Label: "Kitchen"})

	w = env.do("GET", "/api/v1/listings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.ListingListResponse](t, w)
	require.Len(t, list.Listings, 2)
	assert.Equal(t, second.ID, list.Listings[0].ID)
	assert.Equal(t, 1, list.Listings[0].RoomCount)
	assert.Equal(t, dataURL("cover"), list.Listings[0].CoverURL)
	assert.Equal(t, "Modern Luxury", list.Listings[0].TargetStyleName)

	w = env.do("GET", "/api/v1/listings/"+second.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.ListingResponse](t, w)
	require.Len(t, got.Images, 1)

	w = env.do("GET", "/api/v1/listings/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateFeedback(t *testing.T) {
	env := newEnv(t, &stubGateway{})
	listing := env.createListing(t, "10 Main St", "modern")
	env.seedImage(t, listing.ID, models.GeneratedImage{ID: "img-1", URL: dataURL("a"), StyleID: "modern", Label: "Kitchen"})
	path := "/api/v1/listings/" + listing.ID + "/images/img-1/feedback"

	w := env.do("PUT", path, map[string]any{"rating": 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	note := "Too dark"
	w = env.do("PUT", path, map[string]any{"rating": 4, "feedback": note})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.OutcomeUpdated, decode[models.OutcomeResponse](t, w).Outcome)

	_, img, err := env.store.FindImage(listing.ID, "img-1")
	require.NoError(t, err)
	require.NotNil(t, img.Rating)
	assert.Equal(t, 4, *img.Rating)
	assert.Equal(t, "Too dark", *img.Feedback)

	w = env.do("PUT", "/api/v1/listings/"+listing.ID+"/images/img-9/feedback", map[string]any{"rating": 3})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateFeedback_NoteBeforeRating(t *testing.T) {
	env := newEnv(t, &stubGateway{})
	listing := env.createListing(t, "10 Main St", "modern")
	env.seedImage(t, listing.ID, models.GeneratedImage{ID: "img-1", URL: dataURL("a"), StyleID: "modern", Label: "Kitchen"})
	path := "/api/v1/listings/" + listing.ID + "/images/img-1/feedback"

	w := env.do("PUT", path, map[string]any{"feedback": "note before rating"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	_, img, err := env.store.FindImage(listing.ID, "img-1")
	require.NoError(t, err)
	assert.Nil(t, img.Rating)
	require.NotNil(t, img.Feedback)
	assert.Equal(t, "note before rating", *img.Feedback)

	// The notes box sends 0 while no star is picked.
	w = env.do("PUT", path, map[string]any{"rating": 0, "feedback": "still unrated"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	_, img, _ = env.store.FindImage(listing.ID, "img-1")
	assert.Nil(t, img.Rating)
	assert.Equal(t, "still unrated", *img.Feedback)
}

func TestSaveStyle(t *testing.T) {
	env := newEnv(t, &stubGateway{})
	listing := env.createListing(t, "10 Main St", "modern")
	env.seedImage(t, listing.ID, models.GeneratedImage{ID: "img-1", URL: dataURL("a"), StyleID: "modern", Label: "Kitchen"})

	w := env.do("POST", "/api/v1/listings/"+listing.ID+"/images/img-1/save-style", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	style := decode[models.StagingStyle](t, w)
	assert.Equal(t, "Variant of Modern Luxury", style.Name)
	assert.True(t, style.IsCustom)

	w = env.do("POST", "/api/v1/listings/"+listing.ID+"/images/img-1/save-style", models.SaveStyleRequest{Name: "My Modern"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "My Modern", decode[models.StagingStyle](t, w).Name)

	w = env.do("POST", "/api/v1/listings/"+listing.ID+"/images/img-404/save-style", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPendingLifecycle(t *testing.T) {
	env := newEnv(t, &stubGateway{})
	listing := env.createListing(t, "10 Main St", "modern")
	base := "/api/v1/listings/" + listing.ID + "/pending"

	w := env.do("POST", base, models.AddPendingRequest{Images: []models.PendingImageRequest{{URL: dataURL("a"), Label: "Garage"}}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do("POST", base, models.AddPendingRequest{Images: []models.PendingImageRequest{{URL: "https://example.com/a.jpg"}}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do("POST", base, models.AddPendingRequest{Images: []models.PendingImageRequest{
		{URL: dataURL("a")},
		{URL: dataURL("b"), Label: "Kitchen", StyleID: "rustic"},
	}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	batch := decode[models.PendingBatchResponse](t, w)
	require.Len(t, batch.Images, 2)
	assert.Equal(t, "Living Room", batch.Images[0].Label)

	w = env.do("PATCH", base+"/0", models.UpdatePendingRequest{Label: "Bedroom"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bedroom", decode[models.PendingBatchResponse](t, w).Images[0].Label)

	w = env.do("PATCH", base+"/5", models.UpdatePendingRequest{Label: "Bedroom"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do("PUT", base+"/instructions", models.InstructionsRequest{CustomMode: true, CustomPrompt: "Add plants"})
	require.Equal(t, http.StatusOK, w.Code)
	batch = decode[models.PendingBatchResponse](t, w)
	assert.True(t, batch.CustomMode)
	assert.Equal(t, "Add plants", batch.CustomPrompt)

	w = env.do("DELETE", base, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do("GET", base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	batch = decode[models.PendingBatchResponse](t, w)
	assert.Empty(t, batch.Images)
	assert.False(t, batch.CustomMode)

	w = env.do("GET", "/api/v1/listings/missing/pending", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddPending_Multipart(t *testing.T) {
	env := newEnv(t, &stubGateway{})
	listing := env.createListing(t, "10 Main St", "modern")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, name := range []string{"one.png", "two.png"} {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write(pngBytes)
		require.NoError(t, err)
	}
	require.NoError(t, mw.WriteField("label", "Kitchen"))
	require.NoError(t, mw.Close())

	req, _ := http.NewRequest("POST", "/api/v1/listings/"+listing.ID+"/pending", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	batch := decode[models.PendingBatchResponse](t, w)
	require.Len(t, batch.Images, 2)
	assert.Equal(t, "Kitchen", batch.Images[1].Label)
	assert.True(t, strings.HasPrefix(batch.Images[0].URL, "data:image/png;base64,"))
}

func TestAddPending_MultipartRejectsNonImage(t *testing.T) {
	env := newEnv(t, &stubGateway{})
	listing := env.createListing(t, "10 Main St", "modern")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("files", "notes.txt")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("just some notes about the kitchen"))
	require.NoError(t, mw.Close())

	req, _ := http.NewRequest("POST", "/api/v1/listings/"+listing.ID+"/pending", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSubmit_StagesBatch(t *testing.T) {
	env := newEnv(t, &stubGateway{})
	listing := env.createListing(t, "10 Main St", "modern")
	base := "/api/v1/listings/" + listing.ID

	w := env.do("POST", base+"/pending/submit", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do("POST", base+"/pending", models.AddPendingRequest{Images: []models.PendingImageRequest{
		{URL: dataURL("a"), Label: "Kitchen"},
		{URL: dataURL("b"), Label: "Bedroom"},
	}})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do("POST", base+"/pending/submit", nil)
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	submitted := decode[models.SubmitResponse](t, w)
	assert.Equal(t, 2, submitted.Total)

	env.wait(t, listing.ID)

	w = env.do("GET", base, nil)
	got := decode[models.ListingResponse](t, w)
	require.Len(t, got.Images, 2)
	assert.Equal(t, "Bedroom", got.Images[0].Label)
	assert.Equal(t, dataURL("b"), got.Images[0].OriginalURL)

	w = env.do("GET", base+"/progress", nil)
	require.Equal(t, http.StatusOK, w.Code)
	progress := decode[models.ProgressResponse](t, w)
	assert.False(t, progress.InProgress)
	assert.Equal(t, -1, progress.ProcessingIndex)
	require.NotNil(t, progress.LastBatch)
	assert.Equal(t, submitted.BatchID, progress.LastBatch.BatchID)
	assert.Len(t, progress.LastBatch.Committed, 2)
	assert.Empty(t, progress.LastBatch.Failures)
}

func TestSubmit_GatewayNotConfigured(t *testing.T) {
	gw := &stubGateway{readyErr: errors.New("API key is missing")}
	env := newEnv(t, gw)
	listing := env.createListing(t, "10 Main St", "modern")
	base := "/api/v1/listings/" + listing.ID

	w := env.do("POST", base+"/pending", models.AddPendingRequest{Images: []models.PendingImageRequest{{URL: dataURL("a")}}})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do("POST", base+"/pending/submit", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Zero(t, gw.calls.Load())
}

func TestSubmit_ConflictWhileRunning(t *testing.T) {
	gw := &stubGateway{block: make(chan struct{})}
	env := newEnv(t, gw)
	listing := env.createListing(t, "10 Main St", "modern")
	base := "/api/v1/listings/" + listing.ID

	w := env.do("POST", base+"/pending", models.AddPendingRequest{Images: []models.PendingImageRequest{{URL: dataURL("a")}}})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do("POST", base+"/pending/submit", nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	w = env.do("POST", base+"/pending/submit", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do("GET", base+"/progress", nil)
	assert.True(t, decode[models.ProgressResponse](t, w).InProgress)

	close(gw.block)
	env.wait(t, listing.ID)
}

func TestRefine(t *testing.T) {
	env := newEnv(t, &stubGateway{})
	listing := env.createListing(t, "10 Main St", "modern")
	env.seedImage(t, listing.ID, models.GeneratedImage{ID: "img-1", URL: dataURL("a"), StyleID: "modern", Label: "Kitchen"})
	path := "/api/v1/listings/" + listing.ID + "/images/img-1/refine"

	w := env.do("POST", path, models.RefineRequest{Adjustments: " "})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do("POST", path, models.RefineRequest{Adjustments: "add a plant"})
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	env.wait(t, listing.ID)

	got, _ := env.store.Get(listing.ID)
	require.Len(t, got.Images, 2)
	assert.Equal(t, "Kitchen", got.Images[0].Label)
	assert.Equal(t, dataURL("a"), got.Images[0].OriginalURL)

	w = env.do("POST", "/api/v1/listings/"+listing.ID+"/images/img-9/refine", models.RefineRequest{Adjustments: "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownload(t *testing.T) {
	env := newEnv(t, &stubGateway{})
	listing := env.createListing(t, "10 Main St", "modern")

	w := env.do("GET", "/api/v1/listings/"+listing.ID+"/download", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	env.seedImage(t, listing.ID, models.GeneratedImage{ID: "img-1", URL: dataURL("pixels"), StyleID: "modern", Label: "Kitchen"})

	for _, path := range []string{
		"/api/v1/listings/" + listing.ID + "/images/img-1/download",
		"/api/v1/listings/" + listing.ID + "/download",
	} {
		w = env.do("GET", path, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="VisionStage-10 Main St.png"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, []byte("pixels"), w.Body.Bytes())
	}
}

func TestPublish_StorageNotConfigured(t *testing.T) {
	env := newEnv(t, &stubGateway{})
	listing := env.createListing(t, "10 Main St", "modern")
	env.seedImage(t, listing.ID, models.GeneratedImage{ID: "img-1", URL: dataURL("a"), StyleID: "modern"})

	w := env.do("POST", "/api/v1/listings/"+listing.ID+"/images/img-1/publish", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPublish_UploadsToBucket(t *testing.T) {
	var uploadedPath string
	var uploaded []byte
	var deleteCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodDelete {
			deleteCalls++
			w.Write([]byte(`[]`))
			return
		}
		uploadedPath = r.URL.Path
		uploaded, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"Key":"staged-images/listings/x/img-1.png"}`))
	}))
	defer srv.Close()

	sc, err := supabase.NewStorageClient(srv.URL, "publishable-key", "staged-images")
	require.NoError(t, err)

	env := newEnv(t, &stubGateway{}, withStorage(sc))
	listing := env.createListing(t, "10 Main St", "modern")
	env.seedImage(t, listing.ID, models.GeneratedImage{ID: "img-1", URL: dataURL("pixels"), StyleID: "modern"})

	w := env.do("POST", "/api/v1/listings/"+listing.ID+"/images/img-1/publish", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[models.PublishResponse](t, w)
	wantPath := "listings/" + listing.ID + "/img-1.png"
	assert.Equal(t, wantPath, resp.StoragePath)
	assert.Equal(t, srv.URL+"/storage/v1/object/public/staged-images/"+wantPath, resp.PublicURL)
	assert.Equal(t, "/storage/v1/object/staged-images/"+wantPath, uploadedPath)
	assert.Contains(t, string(uploaded), "pixels")

	w = env.do("DELETE", "/api/v1/listings/"+listing.ID+"/images/img-1/publish", nil)
	assert.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	assert.Equal(t, 1, deleteCalls)
}

func TestEventsStream(t *testing.T) {
	env := newEnv(t, &stubGateway{})
	listing := env.createListing(t, "10 Main St", "modern")
	srv := httptest.NewServer(env.router)
	defer srv.Close()

	w := env.do("GET", "/api/v1/listings/missing/events", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, "GET", srv.URL+"/api/v1/listings/"+listing.ID+"/events", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	w = env.do("POST", "/api/v1/listings/"+listing.ID+"/pending", models.AddPendingRequest{Images: []models.PendingImageRequest{{URL: dataURL("a")}}})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do("POST", "/api/v1/listings/"+listing.ID+"/pending/submit", nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	var seen []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if name, ok := strings.CutPrefix(line, "event:"); ok {
			name = strings.TrimSpace(name)
			seen = append(seen, name)
			if name == events.BatchCompleted {
				break
			}
		}
	}
	assert.Equal(t, []string{events.BatchStarted, events.ItemStarted, events.ItemCommitted, events.BatchCompleted}, seen)
}
