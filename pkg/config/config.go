// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration for the server, external lookup services and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `yaml:"server"`

	// Google contains Custom Search and YouTube credentials
	Google GoogleConfig `yaml:"google"`

	// Geocoder contains Nominatim configuration
	Geocoder GeocoderConfig `yaml:"geocoder"`

	// Scraper contains website fetch configuration
	Scraper ScraperConfig `yaml:"scraper"`

	// Log contains logging configuration
	Log LogConfig `yaml:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `yaml:"port"`
}

// GoogleConfig holds Google API configuration
type GoogleConfig struct {
	// APIKey authenticates Custom Search requests
	APIKey string `yaml:"api_key"`

	// SearchEngineID is the Programmable Search Engine ID (cx)
	SearchEngineID string `yaml:"search_engine_id"`

	// YouTubeAPIKey authenticates YouTube requests. Defaults to APIKey.
	YouTubeAPIKey string `yaml:"youtube_api_key"`

	// SearchEndpoint overrides the Custom Search base URL
	SearchEndpoint string `yaml:"search_endpoint"`

	// YouTubeEndpoint overrides the YouTube base URL
	YouTubeEndpoint string `yaml:"youtube_endpoint"`
}

// GeocoderConfig holds geocoding configuration
type GeocoderConfig struct {
	// BaseURL is the Nominatim server
	BaseURL string `yaml:"base_url"`

	// UserAgent identifies the application, as Nominatim requires
	UserAgent string `yaml:"user_agent"`

	// TimeoutSeconds bounds each geocoding request
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// ScraperConfig holds website fetch configuration
type ScraperConfig struct {
	// UserAgent is sent when fetching college websites
	UserAgent string `yaml:"user_agent"`

	// TimeoutSeconds bounds each page fetch
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `yaml:"level"`

	// Format is json or text
	Format string `yaml:"format"`

	// File enables a rotating log file when set
	File string `yaml:"file"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
		},
		Geocoder: GeocoderConfig{
			BaseURL:        "https://nominatim.openstreetmap.org",
			UserAgent:      "CollegeDetailsApp/1.0 (contact@example.com)",
			TimeoutSeconds: 10,
		},
		Scraper: ScraperConfig{
			UserAgent:      "Mozilla/5.0",
			TimeoutSeconds: 5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadFromEnv loads configuration from environment variables.
// When CONFIG_FILE is set, that YAML file is read first and the
// environment overrides it.
func LoadFromEnv() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Server.Port = getEnvOrDefault("PORT", cfg.Server.Port)

	cfg.Google.APIKey = getEnvOrDefault("GOOGLE_API_KEY", cfg.Google.APIKey)
	cfg.Google.SearchEngineID = getEnvOrDefault("GOOGLE_CSE_ID", cfg.Google.SearchEngineID)
	cfg.Google.YouTubeAPIKey = getEnvOrDefault("YOUTUBE_API_KEY", cfg.Google.YouTubeAPIKey)
	cfg.Google.SearchEndpoint = getEnvOrDefault("GOOGLE_SEARCH_ENDPOINT", cfg.Google.SearchEndpoint)
	cfg.Google.YouTubeEndpoint = getEnvOrDefault("YOUTUBE_ENDPOINT", cfg.Google.YouTubeEndpoint)
	if cfg.Google.YouTubeAPIKey == "" {
		cfg.Google.YouTubeAPIKey = cfg.Google.APIKey
	}

	cfg.Geocoder.BaseURL = getEnvOrDefault("NOMINATIM_URL", cfg.Geocoder.BaseURL)
	cfg.Geocoder.UserAgent = getEnvOrDefault("NOMINATIM_USER_AGENT", cfg.Geocoder.UserAgent)
	cfg.Geocoder.TimeoutSeconds = getEnvAsIntOrDefault("GEOCODER_TIMEOUT", cfg.Geocoder.TimeoutSeconds)

	cfg.Scraper.UserAgent = getEnvOrDefault("SCRAPER_USER_AGENT", cfg.Scraper.UserAgent)
	cfg.Scraper.TimeoutSeconds = getEnvAsIntOrDefault("SCRAPER_TIMEOUT", cfg.Scraper.TimeoutSeconds)

	cfg.Log.Level = getEnvOrDefault("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnvOrDefault("LOG_FORMAT", cfg.Log.Format)
	cfg.Log.File = getEnvOrDefault("LOG_FILE", cfg.Log.File)

	return cfg, nil
}

// mergeFile overlays values from a YAML file onto cfg
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GeocoderTimeout returns the geocoding timeout as a duration
func (c *Config) GeocoderTimeout() time.Duration {
	return time.Duration(c.Geocoder.TimeoutSeconds) * time.Second
}

// ScraperTimeout returns the page fetch timeout as a duration
func (c *Config) ScraperTimeout() time.Duration {
	return time.Duration(c.Scraper.TimeoutSeconds) * time.Second
}

// Redacted returns a copy with secrets masked, suitable for printing
func (c *Config) Redacted() *Config {
	out := *c
	out.Google.APIKey = mask(c.Google.APIKey)
	out.Google.YouTubeAPIKey = mask(c.Google.YouTubeAPIKey)
	return &out
}

func mask(secret string) string {
	if len(secret) <= 4 {
		if secret == "" {
			return ""
		}
		return "****"
	}
	return secret[:4] + "****"
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Google.APIKey == "" {
		return errors.New("google API key cannot be empty")
	}

	if c.Google.SearchEngineID == "" {
		return errors.New("search engine ID cannot be empty")
	}

	if c.Geocoder.TimeoutSeconds < 1 {
		return errors.New("geocoder timeout must be at least 1 second")
	}

	if c.Scraper.TimeoutSeconds < 1 {
		return errors.New("scraper timeout must be at least 1 second")
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return errors.New("log format must be 'json' or 'text'")
	}

	return nil
}
