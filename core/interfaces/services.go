// ABOUTME: Lookup interfaces for the external services behind a college profile
// ABOUTME: Each lookup returns an empty result rather than an error when nothing matched

package interfaces

import (
	"context"

	"college-profile-api/core/domain"
)

// WebSearcher queries a generic web search API
type WebSearcher interface {
	// Search returns at most num results for query. An empty slice means no hits.
	Search(ctx context.Context, query string, num int) ([]domain.SearchResult, error)
}

// Geocoder converts a free-text place name into coordinates
type Geocoder interface {
	Geocode(ctx context.Context, query string, limit int) ([]domain.Coordinates, error)
}

// VideoSearcher queries a video search API
type VideoSearcher interface {
	SearchVideos(ctx context.Context, query string, limit int) ([]domain.Video, error)
}

// PageDescriber fetches a web page and extracts a description from it.
// An empty string with a nil error means the page had nothing usable.
type PageDescriber interface {
	Describe(ctx context.Context, pageURL string) (string, error)
}
