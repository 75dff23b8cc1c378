// ABOUTME: YouTube Data API client implementing the VideoSearcher interface
// ABOUTME: Searches for videos and returns their IDs for building watch URLs

package youtube

import (
	"context"
	"errors"
	"fmt"

	"college-profile-api/core/domain"
	"college-profile-api/infrastructure/search/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Client searches YouTube for videos
type Client struct {
	service *youtube.Service
}

// NewClient creates a YouTube client authenticated with apiKey
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("youtube API key is required")
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}

	return &Client{service: service}, nil
}

// SearchVideos returns at most limit videos matching query
func (c *Client) SearchVideos(ctx context.Context, query string, limit int) ([]domain.Video, error) {
	call := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		Context(ctx)
	if limit > 0 {
		call = call.MaxResults(int64(limit))
	}

	res, err := call.Do()
	if err != nil {
		return nil, google.ToExternalAPIError(err, "youtube")
	}

	videos := make([]domain.Video, 0, len(res.Items))
	for _, item := range res.Items {
		if item == nil || item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		videos = append(videos, domain.Video{ID: item.Id.VideoId})
	}

	return videos, nil
}
