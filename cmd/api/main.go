// ABOUTME: Main entry point for the College Profile API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"college-profile-api/api"
	"college-profile-api/api/handlers"
	"college-profile-api/internal/app"
	"college-profile-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger, err := app.NewLogger(cfg, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	logger.Info("Starting College Profile API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"nominatim_url": cfg.Geocoder.BaseURL,
		"log_level":     cfg.Log.Level,
	})

	// Create services
	profileService, err := app.NewProfileService(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to create profile service", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Failed to create profile service: %v", err)
	}

	// Create API with middleware
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger: logger,
	})

	// Create and register handlers
	collegeHandler := handlers.NewCollegeHandler(profileService)
	collegeHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
