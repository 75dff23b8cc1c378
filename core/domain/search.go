// ABOUTME: Search domain models for results returned by external lookup services
// ABOUTME: Defines web search hits, geocoded coordinates and video matches

package domain

// SearchResult represents a single hit from a web search API
type SearchResult struct {
	// Title is the page title
	Title string

	// Snippet is the short summary shown by the search engine
	Snippet string

	// Link is the result URL
	Link string
}

// Coordinates is a geocoded point
type Coordinates struct {
	Latitude  float64
	Longitude float64

	// LatitudeText and LongitudeText keep the provider's original digits,
	// trailing zeros included. Empty when the provider returned numbers.
	LatitudeText  string
	LongitudeText string
}

// Video represents a video search hit
type Video struct {
	// ID is the provider's video identifier
	ID string
}

// WatchURL returns the canonical YouTube watch URL for the video
func (v Video) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}
