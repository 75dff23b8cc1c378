// ABOUTME: College handlers for the Huma API
// ABOUTME: Exposes the college profile lookup over HTTP

package handlers

import (
	"context"
	"net/http"

	"college-profile-api/api/dto/mappers"
	"college-profile-api/api/dto/requests"
	"college-profile-api/api/dto/responses"
	"college-profile-api/core/domain"
	"github.com/danielgtaylor/huma/v2"
)

// ProfileResolver defines the methods needed from the profile service
type ProfileResolver interface {
	Resolve(ctx context.Context, collegeName string) (*domain.CollegeProfile, error)
}

// CollegeHandler handles college-related HTTP requests
type CollegeHandler struct {
	resolver ProfileResolver
}

// NewCollegeHandler creates a new college handler
func NewCollegeHandler(resolver ProfileResolver) *CollegeHandler {
	return &CollegeHandler{resolver: resolver}
}

// RegisterRoutes registers all college-related routes
func (h *CollegeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getCollegeDetails",
		Method:      http.MethodPost,
		Path:        "/college/details",
		Summary:     "Look up a college profile",
		Description: "Resolves a college name into its description, website, map link and campus tour video",
		Tags:        []string{"Colleges"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetCollegeDetails)
}

// CollegeDetailsInput defines the input for the GetCollegeDetails operation
type CollegeDetailsInput struct {
	Body requests.CollegeDetailsRequest
}

// CollegeDetailsOutput defines the output for the GetCollegeDetails operation
type CollegeDetailsOutput struct {
	Body responses.CollegeProfileResponse
}

// GetCollegeDetails handles the POST /college/details endpoint
func (h *CollegeHandler) GetCollegeDetails(ctx context.Context, input *CollegeDetailsInput) (*CollegeDetailsOutput, error) {
	profile, err := h.resolver.Resolve(ctx, input.Body.CollegeName)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &CollegeDetailsOutput{
		Body: *mappers.ToCollegeProfileResponse(profile),
	}, nil
}
