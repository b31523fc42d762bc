package feed

import (
	"context"
	"io"
	"strings"

	"ai-news-digest/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
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

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockLogger is a no-op Logger that records messages
type mockLogger struct {
	messages []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.messages = append(m.messages, msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.messages = append(m.messages, msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.messages = append(m.messages, msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.messages = append(m.messages, msg) }
