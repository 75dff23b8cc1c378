// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"net/http"

	"college-profile-api/api/middleware"
	"college-profile-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	apiTitle       = "College Profile API"
	apiVersion     = "1.0.0"
	apiDescription = "Resolves a college name into a description, website, map link and campus tour video"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS must run first
	router.Use(corsHandler())

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}

func corsHandler() func(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})
}
