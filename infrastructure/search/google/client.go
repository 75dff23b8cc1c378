// ABOUTME: Google Custom Search client implementing the WebSearcher interface
// ABOUTME: Wraps the customsearch/v1 API and normalizes hits into domain search results

package google

import (
	"context"
	"errors"
	"fmt"

	"college-profile-api/core/domain"
	coreerrors "college-profile-api/core/errors"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client performs web searches through a Programmable Search Engine
type Client struct {
	service  *customsearch.Service
	engineID string
}

// NewClient creates a search client for the given API key and engine ID.
// Extra options (for example option.WithEndpoint) are applied after the key.
func NewClient(ctx context.Context, apiKey, engineID string, opts ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("google API key is required")
	}
	if engineID == "" {
		return nil, errors.New("search engine ID is required")
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create custom search service: %w", err)
	}

	return &Client{
		service:  service,
		engineID: engineID,
	}, nil
}

// Search returns at most num results for query
func (c *Client) Search(ctx context.Context, query string, num int) ([]domain.SearchResult, error) {
	call := c.service.Cse.List().Cx(c.engineID).Q(query).Context(ctx)
	if num > 0 {
		call = call.Num(int64(num))
	}

	res, err := call.Do()
	if err != nil {
		return nil, ToExternalAPIError(err, "google-custom-search")
	}

	results := make([]domain.SearchResult, 0, len(res.Items))
	for _, item := range res.Items {
		if item == nil {
			continue
		}
		results = append(results, domain.SearchResult{
			Title:   item.Title,
			Snippet: item.Snippet,
			Link:    item.Link,
		})
	}

	return results, nil
}

// ToExternalAPIError converts a googleapi error into an ExternalAPIError
// carrying the upstream status. Other errors are wrapped with the API name.
func ToExternalAPIError(err error, api string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &coreerrors.ExternalAPIError{
			StatusCode: apiErr.Code,
			Message:    apiErr.Message,
			API:        api,
		}
	}
	return fmt.Errorf("%s request failed: %w", api, err)
}
