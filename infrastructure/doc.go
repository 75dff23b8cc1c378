// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations talk to the outside
// world: search engines, geocoders, video platforms and college websites.
//
// The infrastructure package is organized by technical concern:
//
// - search/google: Custom Search JSON API client
// - video/youtube: YouTube Data API search client
// - geocode/nominatim: OpenStreetMap Nominatim geocoder
// - scrape: website description extraction with colly and goquery
// - http/standard: Standard library HTTP client with a fixed User-Agent
// - logger/structured: logrus logger with optional rotating file output
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept endpoints, timeouts and user agents
// - Testable: Every client accepts a test server endpoint
//
// None of the clients retry. A failed call is reported once and the resolver
// decides whether to fall back or fail the request.
//
// # Example
//
//	httpClient := standard.NewStandardHTTPClient(10*time.Second, cfg.Geocoder.UserAgent)
//	geocoder := nominatim.NewGeocoder(cfg.Geocoder.BaseURL, httpClient)
//	coords, err := geocoder.Geocode(ctx, "Example College", 1)
package infrastructure
