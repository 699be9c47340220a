package httpclient

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Client is an HTTP client with retry support for JSON APIs
type Client struct {
	httpClient *http.Client
	retries    int
	retryDelay time.Duration
}

// NewClient creates a new HTTP client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		retries:    3,
		retryDelay: 1 * time.Second,
	}
}

// Fetch makes an HTTP GET request with retry support
func (c *Client) Fetch(ctx context.Context, targetURL string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= c.retries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			log.Warn().
				Int("attempt", attempt).
				Err(err).
				Msg("Request failed")

			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if attempt < c.retries {
				time.Sleep(c.backoff(attempt))
			}
			continue
		}

		// Handle rate limiting
		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
			log.Warn().
				Int("attempt", attempt).
				Int("status", resp.StatusCode).
				Msg("Request rate limited")

			if attempt < c.retries {
				time.Sleep(c.backoff(attempt))
			}
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()

		if err != nil {
			lastErr = err
			continue
		}

		return body, nil
	}

	return nil, fmt.Errorf("all retries failed: %w", lastErr)
}

func (c *Client) backoff(attempt int) time.Duration {
	return c.retryDelay * time.Duration(math.Pow(2, float64(attempt-1)))
}
