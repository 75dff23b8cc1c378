package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"college-profile-api/api/dto/responses"
	"college-profile-api/core/domain"
	coreerrors "college-profile-api/core/errors"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProfileResolver is a mock implementation of the profile service
type mockProfileResolver struct {
	resolveFunc func(ctx context.Context, collegeName string) (*domain.CollegeProfile, error)
	names       []string
}

func (m *mockProfileResolver) Resolve(ctx context.Context, collegeName string) (*domain.CollegeProfile, error) {
	m.names = append(m.names, collegeName)
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, collegeName)
	}
	return nil, nil
}

func TestNewCollegeHandler(t *testing.T) {
	handler := NewCollegeHandler(&mockProfileResolver{})

	require.NotNil(t, handler)
	assert.NotNil(t, handler.resolver)
}

func TestCollegeHandler_RegisterRoutes(t *testing.T) {
	handler := NewCollegeHandler(&mockProfileResolver{})

	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	openapi := api.OpenAPI()
	require.NotNil(t, openapi.Paths["/college/details"], "POST /college/details endpoint not registered")
	assert.NotNil(t, openapi.Paths["/college/details"].Post)
}

func TestCollegeHandler_GetCollegeDetails_Success(t *testing.T) {
	resolver := &mockProfileResolver{
		resolveFunc: func(ctx context.Context, collegeName string) (*domain.CollegeProfile, error) {
			return &domain.CollegeProfile{
				CollegeName:        "Example College",
				Description:        "A college.",
				Website:            "http://example.edu",
				GoogleMapsLocation: "https://www.openstreetmap.org/?mlat=40.7128&mlon=-74.006#map=18/40.7128/-74.006",
				LocationStatus:     domain.LocationGeocode,
				YouTubeVideo:       "https://www.youtube.com/watch?v=abc123XYZ",
			}, nil
		},
	}

	_, api := humatest.New(t)
	NewCollegeHandler(resolver).RegisterRoutes(api)

	resp := api.Post("/college/details", map[string]any{
		"college_name": "Example College",
	})

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body responses.CollegeProfileResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

	assert.Equal(t, "Example College", body.CollegeName)
	assert.Equal(t, "A college.", body.Description)
	assert.Equal(t, "http://example.edu", body.Website)
	assert.Equal(t, "geocode", body.LocationStatus)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123XYZ", body.YouTubeVideo)
	assert.Equal(t, []string{"Example College"}, resolver.names)
}

func TestCollegeHandler_GetCollegeDetails_NotFound(t *testing.T) {
	resolver := &mockProfileResolver{
		resolveFunc: func(ctx context.Context, collegeName string) (*domain.CollegeProfile, error) {
			return nil, &coreerrors.NotFoundError{Resource: "College"}
		},
	}

	_, api := humatest.New(t)
	NewCollegeHandler(resolver).RegisterRoutes(api)

	resp := api.Post("/college/details", map[string]any{
		"college_name": "Nowhere University",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "College not found")
}

func TestCollegeHandler_GetCollegeDetails_UpstreamFailure(t *testing.T) {
	resolver := &mockProfileResolver{
		resolveFunc: func(ctx context.Context, collegeName string) (*domain.CollegeProfile, error) {
			return nil, coreerrors.WrapError(errors.New("forbidden"), "video search failed")
		},
	}

	_, api := humatest.New(t)
	NewCollegeHandler(resolver).RegisterRoutes(api)

	resp := api.Post("/college/details", map[string]any{
		"college_name": "Example College",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "Internal Server Error: video search failed: forbidden")
}

func TestCollegeHandler_GetCollegeDetails_Validation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing college_name", map[string]any{}},
		{"empty college_name", map[string]any{"college_name": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &mockProfileResolver{}

			_, api := humatest.New(t)
			NewCollegeHandler(resolver).RegisterRoutes(api)

			resp := api.Post("/college/details", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
			assert.Empty(t, resolver.names, "resolver should not be called for invalid input")
		})
	}
}

func TestCollegeHandler_GetCollegeDetails_BlankNameFromService(t *testing.T) {
	resolver := &mockProfileResolver{
		resolveFunc: func(ctx context.Context, collegeName string) (*domain.CollegeProfile, error) {
			return nil, &coreerrors.ValidationError{Field: "college_name", Message: "cannot be empty"}
		},
	}

	_, api := humatest.New(t)
	NewCollegeHandler(resolver).RegisterRoutes(api)

	resp := api.Post("/college/details", map[string]any{"college_name": "   "})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
