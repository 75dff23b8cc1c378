// ABOUTME: Profile service resolves a college name into an aggregated profile
// ABOUTME: Runs search, description, location and video lookups in a fixed sequence

package profile

import (
	"context"
	"errors"
	"strings"

	"college-profile-api/core/domain"
	coreerrors "college-profile-api/core/errors"
	"college-profile-api/core/interfaces"
	"college-profile-api/pkg/featureflags"
)

// ProfileService resolves college profiles from external lookups
type ProfileService struct {
	deps  interfaces.Dependencies
	flags featureflags.Manager
}

// NewProfileService creates a new profile service instance.
// A nil flags manager enables every optional tier.
func NewProfileService(deps interfaces.Dependencies, flags featureflags.Manager) *ProfileService {
	if flags == nil {
		flags = featureflags.NewStaticManager(nil)
	}
	return &ProfileService{
		deps:  deps,
		flags: flags,
	}
}

// Resolve builds the profile for collegeName.
//
// Steps run in order: top search, description enhancement, location
// resolution, campus tour video. An empty top search returns a
// NotFoundError and nothing else runs. Description and geocoding
// failures are logged and skipped; search and video failures abort.
func (s *ProfileService) Resolve(ctx context.Context, collegeName string) (*domain.CollegeProfile, error) {
	name := strings.TrimSpace(collegeName)
	if name == "" {
		return nil, &coreerrors.ValidationError{Field: "college_name", Message: "cannot be empty"}
	}

	if s.deps.Search == nil {
		return nil, errors.New("web searcher not configured")
	}
	if s.deps.Videos == nil {
		return nil, errors.New("video searcher not configured")
	}

	s.deps.Logger.Info("Resolving college profile", map[string]interface{}{
		"college_name": name,
	})

	top := s.searchCollege(ctx, name)
	switch top.Outcome {
	case Failed:
		return nil, coreerrors.WrapError(top.Err, "college search failed")
	case Empty:
		s.deps.Logger.Info("College not found", map[string]interface{}{
			"college_name": name,
		})
		return nil, &coreerrors.NotFoundError{Resource: "College"}
	}

	profile := profileFromResult(name, top.Value)

	s.enhanceDescription(ctx, profile)

	link, status, err := s.resolveLocation(ctx, name)
	if err != nil {
		return nil, err
	}
	profile.GoogleMapsLocation = link
	profile.LocationStatus = status

	video := s.findVideo(ctx, name)
	switch video.Outcome {
	case Failed:
		return nil, coreerrors.WrapError(video.Err, "video search failed")
	case Found:
		profile.YouTubeVideo = video.Value.WatchURL()
	default:
		profile.YouTubeVideo = domain.NotFound
	}

	s.deps.Logger.Info("College profile resolved", map[string]interface{}{
		"college_name":    name,
		"website":         profile.Website,
		"location_status": string(profile.LocationStatus),
		"youtube_video":   profile.YouTubeVideo,
	})

	return profile, nil
}

// profileFromResult seeds a profile from the top search hit
func profileFromResult(name string, top domain.SearchResult) *domain.CollegeProfile {
	profile := &domain.CollegeProfile{
		CollegeName: top.Title,
		Description: top.Snippet,
		Website:     top.Link,
	}
	if strings.TrimSpace(profile.CollegeName) == "" {
		profile.CollegeName = name
	}
	if strings.TrimSpace(profile.Description) == "" {
		profile.Description = domain.NoDescription
	}
	if strings.TrimSpace(profile.Website) == "" {
		profile.Website = domain.NotAvailable
	}
	return profile
}

func (s *ProfileService) searchCollege(ctx context.Context, name string) StepResult[domain.SearchResult] {
	results, err := s.deps.Search.Search(ctx, name, 1)
	if err != nil {
		return failed[domain.SearchResult](err)
	}
	if len(results) == 0 {
		return empty[domain.SearchResult]()
	}
	return found(results[0])
}

// enhanceDescription swaps in a longer description scraped from the website
func (s *ProfileService) enhanceDescription(ctx context.Context, profile *domain.CollegeProfile) {
	if s.deps.Pages == nil || profile.Website == domain.NotAvailable {
		return
	}
	if !s.flags.IsEnabled(ctx, featureflags.DescriptionEnhancement) {
		return
	}

	result := s.describePage(ctx, profile.Website)
	switch result.Outcome {
	case Failed:
		s.deps.Logger.Warn("Failed to fetch long description", map[string]interface{}{
			"url":   profile.Website,
			"error": result.Err.Error(),
		})
	case Found:
		if shouldReplaceDescription(profile.Description, result.Value) {
			profile.Description = result.Value
		}
	}
}

func (s *ProfileService) describePage(ctx context.Context, pageURL string) StepResult[string] {
	description, err := s.deps.Pages.Describe(ctx, pageURL)
	if err != nil {
		return failed[string](err)
	}
	if description == "" {
		return empty[string]()
	}
	return found(description)
}

// resolveLocation walks the map link tiers: search, geocode, fallback
func (s *ProfileService) resolveLocation(ctx context.Context, name string) (string, domain.LocationStatus, error) {
	maps := s.searchMaps(ctx, name)
	switch maps.Outcome {
	case Failed:
		return "", "", coreerrors.WrapError(maps.Err, "maps search failed")
	case Found:
		return maps.Value, domain.LocationSearch, nil
	}

	geo := s.geocode(ctx, name)
	switch geo.Outcome {
	case Found:
		return geocodeMapsURL(geo.Value), domain.LocationGeocode, nil
	case Failed:
		s.deps.Logger.Warn("Geocoding failed", map[string]interface{}{
			"college_name": name,
			"error":        geo.Err.Error(),
		})
	}

	s.deps.Logger.Debug("Using constructed map link", map[string]interface{}{
		"college_name":    name,
		"geocode_outcome": geo.Outcome.String(),
	})
	return fallbackMapsURL(name), domain.LocationFallback, nil
}

func (s *ProfileService) searchMaps(ctx context.Context, name string) StepResult[string] {
	results, err := s.deps.Search.Search(ctx, mapsSearchQuery(name), 1)
	if err != nil {
		return failed[string](err)
	}
	for _, r := range results {
		if r.Link != "" {
			return found(r.Link)
		}
	}
	return empty[string]()
}

func (s *ProfileService) geocode(ctx context.Context, name string) StepResult[domain.Coordinates] {
	if s.deps.Geocoder == nil || !s.flags.IsEnabled(ctx, featureflags.GeocodeFallback) {
		return empty[domain.Coordinates]()
	}

	query := sanitizeQuery(name)
	if query == "" {
		return empty[domain.Coordinates]()
	}

	coords, err := s.deps.Geocoder.Geocode(ctx, query, 1)
	if err != nil {
		return failed[domain.Coordinates](err)
	}
	if len(coords) == 0 {
		return empty[domain.Coordinates]()
	}
	return found(coords[0])
}

func (s *ProfileService) findVideo(ctx context.Context, name string) StepResult[domain.Video] {
	videos, err := s.deps.Videos.SearchVideos(ctx, campusTourQuery(name), 1)
	if err != nil {
		return failed[domain.Video](err)
	}
	for _, v := range videos {
		if v.ID != "" {
			return found(v)
		}
	}
	return empty[domain.Video]()
}
