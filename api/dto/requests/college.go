// ABOUTME: Request DTOs for college-related API endpoints
// ABOUTME: Validation rules are declared as struct tags for huma

package requests

// CollegeDetailsRequest represents the request body for a profile lookup
type CollegeDetailsRequest struct {
	// CollegeName is the free-text name to resolve
	CollegeName string `json:"college_name" minLength:"1" doc:"Name of the college to look up" example:"Example College"`
}
