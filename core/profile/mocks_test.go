package profile

import (
	"context"

	"college-profile-api/core/domain"
)

// mockWebSearcher is a mock implementation of the WebSearcher interface
type mockWebSearcher struct {
	searchFunc func(ctx context.Context, query string, num int) ([]domain.SearchResult, error)
	queries    []string
}

func (m *mockWebSearcher) Search(ctx context.Context, query string, num int) ([]domain.SearchResult, error) {
	m.queries = append(m.queries, query)
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, num)
	}
	return nil, nil
}

// mockGeocoder is a mock implementation of the Geocoder interface
type mockGeocoder struct {
	geocodeFunc func(ctx context.Context, query string, limit int) ([]domain.Coordinates, error)
	queries     []string
}

func (m *mockGeocoder) Geocode(ctx context.Context, query string, limit int) ([]domain.Coordinates, error) {
	m.queries = append(m.queries, query)
	if m.geocodeFunc != nil {
		return m.geocodeFunc(ctx, query, limit)
	}
	return nil, nil
}

// mockVideoSearcher is a mock implementation of the VideoSearcher interface
type mockVideoSearcher struct {
	searchFunc func(ctx context.Context, query string, limit int) ([]domain.Video, error)
	queries    []string
}

func (m *mockVideoSearcher) SearchVideos(ctx context.Context, query string, limit int) ([]domain.Video, error) {
	m.queries = append(m.queries, query)
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, limit)
	}
	return nil, nil
}

// mockPageDescriber is a mock implementation of the PageDescriber interface
type mockPageDescriber struct {
	describeFunc func(ctx context.Context, pageURL string) (string, error)
	urls         []string
}

func (m *mockPageDescriber) Describe(ctx context.Context, pageURL string) (string, error) {
	m.urls = append(m.urls, pageURL)
	if m.describeFunc != nil {
		return m.describeFunc(ctx, pageURL)
	}
	return "", nil
}

// mockLogger records log calls
type mockLogger struct {
	entries []logEntry
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	m.entries = append(m.entries, logEntry{"DEBUG", msg, fields})
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	m.entries = append(m.entries, logEntry{"INFO", msg, fields})
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.entries = append(m.entries, logEntry{"WARN", msg, fields})
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.entries = append(m.entries, logEntry{"ERROR", msg, fields})
}

func (m *mockLogger) has(level, msg string) bool {
	for _, e := range m.entries {
		if e.level == level && e.message == msg {
			return true
		}
	}
	return false
}
