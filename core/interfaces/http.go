package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making outbound HTTP requests.
// It lets the article fetcher and inference adapters share one client
// and lets tests point them at httptest servers.
type HTTPClient interface {
	// Get performs a GET request with retries on transient server errors.
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)

	// Do performs a single request without retries.
	Do(ctx context.Context, method, url string, body io.Reader, headers map[string]string) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body. The caller closes it.
	Body() io.ReadCloser

	// Header returns the value of the specified header, case-insensitively.
	Header(key string) string
}
