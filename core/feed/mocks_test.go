package feed

import (
	"context"
	"sync"

	"essential-feed-api/core/domain"
	"essential-feed-api/core/interfaces"
)

// httpClientSpy is a mock implementation of the HTTPClient interface that
// records every requested URL
type httpClientSpy struct {
	mu      sync.Mutex
	urls    []string
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (s *httpClientSpy) Get(ctx context.Context, url string) (interfaces.Response, error) {
	s.mu.Lock()
	s.urls = append(s.urls, url)
	s.mu.Unlock()

	if s.getFunc != nil {
		return s.getFunc(ctx, url)
	}
	return nil, nil
}

func (s *httpClientSpy) requestedURLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.urls))
	copy(out, s.urls)
	return out
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() []byte {
	return []byte(m.body)
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// decoderSpy counts Decode calls and delegates to decodeFunc
type decoderSpy struct {
	mu         sync.Mutex
	calls      int
	decodeFunc func(data []byte, statusCode int) ([]domain.FeedItem, error)
}

func (d *decoderSpy) Decode(data []byte, statusCode int) ([]domain.FeedItem, error) {
	d.mu.Lock()
	d.calls++
	d.mu.Unlock()

	if d.decodeFunc != nil {
		return d.decodeFunc(data, statusCode)
	}
	return []domain.FeedItem{}, nil
}

func (d *decoderSpy) callCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

// logEntry is one captured log call
type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *mockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("error", msg, fields) }

func (m *mockLogger) levels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	levels := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		levels = append(levels, e.level)
	}
	return levels
}
