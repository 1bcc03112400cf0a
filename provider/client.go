// Package provider implements one adapter per upstream news source and the
// normalization of their raw responses into the canonical article shape.
package provider

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client is the rate-limited HTTP client shared by all adapters. Upstream
// providers throttle aggressively, so every outbound call waits on the
// limiter first.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient builds a client that issues at most one request per minInterval.
func NewClient(minInterval time.Duration) *Client {
	if minInterval <= 0 {
		minInterval = 100 * time.Millisecond
	}
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return c.http.Do(req)
}
