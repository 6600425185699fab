package adapter

import (
	"net/http"
	"time"
)

// HTTPClient defines an interface for HTTP request execution to enable mocking.
// Retry and rate-limit policy live with the caller, which needs access to
// status codes and headers (e.g. Retry-After) to decide what to do next.
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// Do executes a single HTTP request.
	// The caller is responsible for closing the response body.
	Do(req *http.Request) (*http.Response, error)
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &RealHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *RealHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}
