package gemini_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"visionstage-backend/internal/gemini"
	"visionstage-backend/internal/imaging"
)

var source = imaging.EncodedImage{MIMEType: "image/jpeg", Data: []byte("source-bytes")}

func newServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newClient(srv *httptest.Server, key string) *gemini.Client {
	return gemini.NewClient(context.Background(), gemini.Options{
		APIKey:  key,
		BaseURL: srv.URL + "/",
		Timeout: 5 * time.Second,
	})
}

func TestStageRoom_ReturnsInlineImage(t *testing.T) {
	var body string
	var path string
	srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{map[string]any{
				"content": map[string]any{
					"role": "model",
					"parts": []any{
						map[string]any{"text": "Here is your room."},
						map[string]any{"inlineData": map[string]any{
							"mimeType": "image/png",
							"data":     base64.StdEncoding.EncodeToString([]byte("staged-bytes")),
						}},
					},
				},
			}},
		})
	})
	client := newClient(srv, "test-key")
	require.NoError(t, client.Ready())

	out, err := client.StageRoom(context.Background(), source, "Room type: Kitchen. Stage it")

	require.NoError(t, err)
	assert.Equal(t, "image/png", out.MIMEType)
	assert.Equal(t, []byte("staged-bytes"), out.Data)
	assert.True(t, strings.HasSuffix(path, gemini.DefaultModel+":generateContent"), path)
	assert.Contains(t, body, "Strict Requirements")
	assert.Contains(t, body, "Room type: Kitchen. Stage it")
	assert.Contains(t, body, base64.StdEncoding.EncodeToString(source.Data))
}

func TestStageRoom_NoImage(t *testing.T) {
	srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"I can't do that."}]}}]}`)
	})

	_, err := newClient(srv, "test-key").StageRoom(context.Background(), source, "prompt")

	assert.ErrorIs(t, err, gemini.ErrNoImage)
}

func TestStageRoom_ServerError(t *testing.T) {
	srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`)
	})

	_, err := newClient(srv, "test-key").StageRoom(context.Background(), source, "prompt")

	require.Error(t, err)
	assert.NotErrorIs(t, err, gemini.ErrNoImage)
}

func TestStageRoom_MissingKeyFailsBeforeNetwork(t *testing.T) {
	srv, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {})
	client := newClient(srv, "")

	assert.ErrorIs(t, client.Ready(), gemini.ErrMissingAPIKey)
	_, err := client.StageRoom(context.Background(), source, "prompt")

	assert.ErrorIs(t, err, gemini.ErrMissingAPIKey)
	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestInstruction(t *testing.T) {
	got := gemini.Instruction("Room type: Kitchen. Stage it")

	assert.True(t, strings.HasPrefix(got, "Room type: Kitchen. Stage it. \n\nStrict Requirements:"))
	assert.Contains(t, got, "5. Ensure professional architectural photography lighting")
}
