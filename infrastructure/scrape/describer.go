// ABOUTME: Page describer fetches a college website and extracts a description
// ABOUTME: Uses colly to fetch with a browser-like User-Agent and goquery to pick the text

package scrape

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"college-profile-api/core/interfaces"
	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"
)

const (
	// DefaultUserAgent is sent because many sites reject unidentified clients
	DefaultUserAgent = "Mozilla/5.0"

	// DefaultTimeout bounds a single page fetch
	DefaultTimeout = 5 * time.Second

	maxBodySize = 5 * 1024 * 1024
)

// PageDescriber implements interfaces.PageDescriber with colly
type PageDescriber struct {
	userAgent string
	timeout   time.Duration
	logger    interfaces.Logger
}

// NewPageDescriber creates a describer. Zero values fall back to the defaults.
func NewPageDescriber(userAgent string, timeout time.Duration, logger interfaces.Logger) *PageDescriber {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &PageDescriber{
		userAgent: userAgent,
		timeout:   timeout,
		logger:    logger,
	}
}

// Describe fetches pageURL and returns its best description, or "" when the
// page has neither a meta description nor any paragraph text.
func (d *PageDescriber) Describe(ctx context.Context, pageURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c := colly.NewCollector(
		colly.UserAgent(d.userAgent),
		colly.MaxBodySize(maxBodySize),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(d.timeout)
	// Error pages are still HTML worth reading
	c.ParseHTTPErrorResponse = true

	var description string
	c.OnHTML("html", func(e *colly.HTMLElement) {
		if description == "" {
			description = ExtractDescription(e.DOM)
		}
	})

	d.logger.Debug("Fetching long description", map[string]interface{}{
		"url": pageURL,
	})

	if err := c.Visit(pageURL); err != nil {
		return "", err
	}

	return description, nil
}

// ExtractDescription picks the page's meta description, falling back to the
// longest paragraph. Length is counted in characters on the untrimmed text
// and the first paragraph wins ties.
func ExtractDescription(doc *goquery.Selection) string {
	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		if trimmed := strings.TrimSpace(content); trimmed != "" {
			return trimmed
		}
	}

	longest := ""
	longestLen := -1
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := p.Text()
		if n := utf8.RuneCountInString(text); n > longestLen {
			longest = text
			longestLen = n
		}
	})

	return strings.TrimSpace(longest)
}
