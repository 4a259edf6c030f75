package httpclient

import (
	"net/http"
	"net/http/cookiejar"
)

// Client defines an interface for making HTTP requests
// This allows for easy mocking and testing of HTTP calls
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

// StandardHTTPClient wraps the standard http.Client
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardClient creates an HTTP client that keeps cookies between calls.
// No timeout is set: requests are bounded by their context and the transport defaults.
func NewStandardClient() Client {
	jar, _ := cookiejar.New(nil) //nolint:errcheck // New never fails with nil options
	return &StandardHTTPClient{
		client: &http.Client{Jar: jar},
	}
}

// Do executes an HTTP request
func (c *StandardHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}
