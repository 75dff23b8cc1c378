// ABOUTME: Builds the profile service and its collaborators from configuration
// ABOUTME: Shared by the HTTP server and the command line client

package app

import (
	"context"
	"fmt"
	"io"

	"college-profile-api/api/middleware"
	"college-profile-api/core/interfaces"
	"college-profile-api/core/profile"
	"college-profile-api/infrastructure/geocode/nominatim"
	stdhttp "college-profile-api/infrastructure/http/standard"
	"college-profile-api/infrastructure/logger/structured"
	"college-profile-api/infrastructure/scrape"
	"college-profile-api/infrastructure/search/google"
	"college-profile-api/infrastructure/video/youtube"
	"college-profile-api/pkg/config"
	"college-profile-api/pkg/featureflags"
	"google.golang.org/api/option"
)

// NewLogger creates the structured logger described by cfg. Output goes to
// out unless a log file is configured.
func NewLogger(cfg *config.Config, out io.Writer) (*structured.StructuredLogger, error) {
	return structured.NewStructuredLogger(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Output: out,
	})
}

// NewDependencies creates the external lookup clients
func NewDependencies(ctx context.Context, cfg *config.Config, logger interfaces.Logger) (interfaces.Dependencies, error) {
	var searchOpts []option.ClientOption
	if cfg.Google.SearchEndpoint != "" {
		searchOpts = append(searchOpts, option.WithEndpoint(cfg.Google.SearchEndpoint))
	}
	searcher, err := google.NewClient(ctx, cfg.Google.APIKey, cfg.Google.SearchEngineID, searchOpts...)
	if err != nil {
		return interfaces.Dependencies{}, fmt.Errorf("failed to create web searcher: %w", err)
	}

	var videoOpts []option.ClientOption
	if cfg.Google.YouTubeEndpoint != "" {
		videoOpts = append(videoOpts, option.WithEndpoint(cfg.Google.YouTubeEndpoint))
	}
	videos, err := youtube.NewClient(ctx, cfg.Google.YouTubeAPIKey, videoOpts...)
	if err != nil {
		return interfaces.Dependencies{}, fmt.Errorf("failed to create video searcher: %w", err)
	}

	geoHTTP := stdhttp.NewStandardHTTPClient(cfg.GeocoderTimeout(), cfg.Geocoder.UserAgent).
		WithTransport(&middleware.LoggingRoundTripper{Logger: logger})

	return interfaces.Dependencies{
		Search:   searcher,
		Geocoder: nominatim.NewGeocoder(cfg.Geocoder.BaseURL, geoHTTP),
		Videos:   videos,
		Pages:    scrape.NewPageDescriber(cfg.Scraper.UserAgent, cfg.ScraperTimeout(), logger),
		Logger:   logger,
	}, nil
}

// NewProfileService wires a profile service from cfg. Optional tiers are
// toggled with FEATURE_* environment variables.
func NewProfileService(ctx context.Context, cfg *config.Config, logger interfaces.Logger) (*profile.ProfileService, error) {
	deps, err := NewDependencies(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return profile.NewProfileService(deps, featureflags.NewEnvManager("FEATURE_")), nil
}
