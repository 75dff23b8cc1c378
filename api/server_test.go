package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"college-profile-api/api/middleware"
	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct {
	messages []string
}

func (l *nopLogger) Debug(msg string, fields map[string]interface{}) { l.messages = append(l.messages, msg) }
func (l *nopLogger) Info(msg string, fields map[string]interface{})  { l.messages = append(l.messages, msg) }
func (l *nopLogger) Warn(msg string, fields map[string]interface{})  { l.messages = append(l.messages, msg) }
func (l *nopLogger) Error(msg string, fields map[string]interface{}) { l.messages = append(l.messages, msg) }

func TestNewAPI(t *testing.T) {
	api, router := NewAPI()

	if api == nil {
		t.Error("NewAPI returned nil API")
	}
	if router == nil {
		t.Error("NewAPI returned nil router")
	}
}

func TestNewAPI_HasCorrectTitle(t *testing.T) {
	api, _ := NewAPI()

	info := api.OpenAPI().Info
	if info.Title != "College Profile API" {
		t.Errorf("API title = %s, want College Profile API", info.Title)
	}
	if info.Version != "1.0.0" {
		t.Errorf("API version = %s, want 1.0.0", info.Version)
	}
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest("GET", "/openapi.json", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("OpenAPI endpoint status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/vnd.oai.openapi+json" {
		t.Errorf("OpenAPI content-type = %s, want application/vnd.oai.openapi+json", ct)
	}
}

func TestAPI_DocsEndpoint(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest("GET", "/docs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Docs endpoint status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/html" {
		t.Errorf("Docs content-type = %s, want text/html", ct)
	}
}

func TestAPI_CORSPreflight(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest(http.MethodOptions, "/college/details", nil)
	req.Header.Set("Origin", "https://frontend.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewAPIWithMiddleware_LogsAndTagsRequests(t *testing.T) {
	logger := &nopLogger{}
	api, router := NewAPIWithMiddleware(APIConfig{Logger: logger})

	var seenID string
	huma.Get(api, "/ping", func(ctx context.Context, input *struct{}) (*struct{}, error) {
		seenID = middleware.RequestIDFromContext(ctx)
		return nil, nil
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, w.Header().Get("X-Request-ID"), seenID)
	assert.Contains(t, logger.messages, "Request started")
	assert.Contains(t, logger.messages, "Request completed")
}
