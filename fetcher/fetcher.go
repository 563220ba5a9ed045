// Package fetcher retrieves pages for analysis. Any HTTP status the server
// returns is data for the scoring engine, not an error; only transport
// failures are surfaced as errors.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultUserAgent = "AEOAnalyzer/1.0"
	defaultTimeout   = 15 * time.Second
	maxRedirects     = 10
	maxBodyBytes     = 5 << 20 // 5 MB
)

// Result is a fetched page: the body, the status code, the response
// headers and the URL after redirects.
type Result struct {
	HTML       string
	StatusCode int
	Header     http.Header
	FinalURL   string
}

// Client fetches pages with a pooled transport, a bounded timeout and a
// bounded redirect count.
type Client struct {
	client    *http.Client
	userAgent string
}

// New creates a fetch client with connection pooling and keep-alives.
func New() *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		client: &http.Client{
			Timeout:   defaultTimeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		userAgent: defaultUserAgent,
	}
}

// Fetch retrieves the URL. Non-2xx responses are returned as a Result, not
// an error, so the caller can score the status code.
func (c *Client) Fetch(ctx context.Context, url string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &Result{
		HTML:       string(body),
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		FinalURL:   resp.Request.URL.String(),
	}, nil
}
