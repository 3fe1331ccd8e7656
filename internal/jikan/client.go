package jikan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public Jikan v4 API.
const DefaultBaseURL = "https://api.jikan.moe/v4"

const (
	defaultLimit     = "20"
	defaultRetryWait = time.Second
	defaultRetries   = 2
)

// Client is a read-only client for the Jikan catalog API. Every call is
// a fresh request; there is no caching layer. Rate-limited responses
// (429) and transport failures are retried after a fixed wait, at most
// MaxRetries times, then surfaced as a plain fetch error.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// RetryWait is the fixed delay before each retry.
	RetryWait  time.Duration
	MaxRetries int

	// Jikan allows ~3 requests per second; stay under it client-side
	// instead of eating 429s.
	limiter *rate.Limiter
}

// NewClient creates a Client against baseURL (DefaultBaseURL if empty).
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 12 * time.Second},
		RetryWait:  defaultRetryWait,
		MaxRetries: defaultRetries,
		limiter:    rate.NewLimiter(rate.Every(time.Second/3), 3),
	}
}

// fetch runs one GET with the retry policy and returns the raw body.
func (c *Client) fetch(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("jikan: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, fmt.Errorf("jikan: build request: %w", err)
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request: %w", err)
		} else {
			body, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()

			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("read body: %w", readErr)
			case resp.StatusCode == http.StatusTooManyRequests:
				lastErr = fmt.Errorf("rate limited (429)")
			case resp.StatusCode != http.StatusOK:
				// Anything else is a hard failure; retrying won't help.
				return nil, fmt.Errorf("jikan: %s: status %d", path, resp.StatusCode)
			default:
				return body, nil
			}
		}

		if attempt >= c.MaxRetries {
			return nil, fmt.Errorf("jikan: %s: fetch failed: %w", path, lastErr)
		}

		select {
		case <-time.After(c.RetryWait):
		case <-ctx.Done():
			return nil, fmt.Errorf("jikan: %w", ctx.Err())
		}
	}
}

// get fetches path and decodes the Jikan envelope into Response[T].
func get[T any](ctx context.Context, c *Client, path string, query url.Values) (*Response[T], error) {
	body, err := c.fetch(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var out Response[T]
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("jikan: %s: decode: %w", path, err)
	}
	return &out, nil
}

func pageQuery(page int) url.Values {
	if page <= 0 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("limit", defaultLimit)
	return q
}
