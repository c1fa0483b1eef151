package httpclient

import (
	"net/http"
	"time"
)

// Client is a timeout-bounded HTTP client for calling external providers.
// The timeout keeps a stalled provider from blocking the API response.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new HTTP client for the given base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}
