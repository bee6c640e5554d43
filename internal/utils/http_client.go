package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-bot-keeper"

// HTTPClient embeds *resty.Client so that all of its methods are available
// directly, while leaving room for application-specific helpers.
//
// Example usage:
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().Get("https://matrix.example.org/_matrix/client/versions")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent resty client with its own connection
// pool. A zero timeout leaves requests unbounded.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// CloseIdleConnections releases pooled keep-alive connections.
func (c *HTTPClient) CloseIdleConnections() {
	c.GetClient().CloseIdleConnections()
}
