// ABOUTME: Response DTOs for college-related API endpoints
// ABOUTME: Field names match the public JSON contract of the lookup endpoint

package responses

// CollegeProfileResponse represents a resolved college profile
type CollegeProfileResponse struct {
	CollegeName        string `json:"college_name" doc:"Name from the top search result, or the requested name"`
	Description        string `json:"description" doc:"Best available description of the college"`
	Website            string `json:"website" doc:"Official website URL, or N/A"`
	GoogleMapsLocation string `json:"google_maps_location" doc:"Map link for the campus"`
	LocationStatus     string `json:"location_status" enum:"search,geocode,fallback" doc:"Which tier produced the map link"`
	YouTubeVideo       string `json:"youtube_video" doc:"Campus tour video URL, or Not found"`
}
