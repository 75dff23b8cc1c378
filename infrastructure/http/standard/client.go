// ABOUTME: Standard HTTP client implementation with timeout support
// ABOUTME: Identifies itself with a configured User-Agent on every outbound request

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"college-profile-api/core/interfaces"
)

// DefaultUserAgent identifies the service to external APIs
const DefaultUserAgent = "CollegeDetailsApp/1.0"

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
// and User-Agent. An empty userAgent uses DefaultUserAgent.
func NewStandardHTTPClient(timeout time.Duration, userAgent string) *StandardHTTPClient {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// WithTransport replaces the underlying round tripper, for example to add
// outbound request logging
func (c *StandardHTTPClient) WithTransport(transport http.RoundTripper) *StandardHTTPClient {
	c.client.Transport = transport
	return c
}

// Get performs a single HTTP GET request. Requests are never retried.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
