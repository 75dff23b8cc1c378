// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Search performs web searches for the college and its map location
	Search WebSearcher

	// Geocoder resolves coordinates when the map search finds nothing
	Geocoder Geocoder

	// Videos finds campus tour videos
	Videos VideoSearcher

	// Pages extracts longer descriptions from college websites
	Pages PageDescriber

	// Logger provides structured logging
	Logger Logger
}
