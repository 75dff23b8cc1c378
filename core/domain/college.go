// ABOUTME: CollegeProfile domain model is the aggregated answer for a college lookup
// ABOUTME: Defines location tiers and the sentinel values used in place of missing data

package domain

// Sentinel values used when a lookup produced nothing usable
const (
	// NotAvailable marks a missing website
	NotAvailable = "N/A"

	// NotFound marks a missing campus tour video
	NotFound = "Not found"

	// NoDescription marks a missing search snippet
	NoDescription = "No description found."
)

// LocationStatus identifies which resolver tier produced the map link
type LocationStatus string

const (
	// LocationSearch means the link came from a maps-restricted web search
	LocationSearch LocationStatus = "search"

	// LocationGeocode means the link was built from geocoded coordinates
	LocationGeocode LocationStatus = "geocode"

	// LocationFallback means the link is a constructed map search URL
	LocationFallback LocationStatus = "fallback"
)

// CollegeProfile is the aggregated profile returned for a single query.
// Every field holds either a real value or one of the sentinels above.
type CollegeProfile struct {
	// CollegeName is the title of the top search hit
	CollegeName string

	// Description is the best available description
	Description string

	// Website is the official site URL or NotAvailable
	Website string

	// GoogleMapsLocation is the resolved map link
	GoogleMapsLocation string

	// LocationStatus records the tier that produced GoogleMapsLocation
	LocationStatus LocationStatus

	// YouTubeVideo is a watch URL or NotFound
	YouTubeVideo string
}

// IsComplete reports whether every field has been populated
func (p *CollegeProfile) IsComplete() bool {
	return p.CollegeName != "" &&
		p.Description != "" &&
		p.Website != "" &&
		p.GoogleMapsLocation != "" &&
		p.LocationStatus != "" &&
		p.YouTubeVideo != ""
}
