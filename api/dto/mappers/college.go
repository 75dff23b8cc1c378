// ABOUTME: Mappers for converting college domain models to API DTOs
// ABOUTME: Shared by the HTTP handlers and the command line client

package mappers

import (
	"college-profile-api/api/dto/responses"
	"college-profile-api/core/domain"
)

// ToCollegeProfileResponse converts a domain CollegeProfile to its response DTO
func ToCollegeProfileResponse(profile *domain.CollegeProfile) *responses.CollegeProfileResponse {
	if profile == nil {
		return nil
	}

	return &responses.CollegeProfileResponse{
		CollegeName:        profile.CollegeName,
		Description:        profile.Description,
		Website:            profile.Website,
		GoogleMapsLocation: profile.GoogleMapsLocation,
		LocationStatus:     string(profile.LocationStatus),
		YouTubeVideo:       profile.YouTubeVideo,
	}
}
