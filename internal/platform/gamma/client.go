// Package gamma implements the remote Polymarket data source: a REST client
// for the Gamma API, the raw response schemas, and the standardizer that
// converts them into the shared entity model.
package gamma

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/alanyoungcy/polyscope/internal/apperr"
)

// DefaultBaseURL is the public Gamma API root.
const DefaultBaseURL = "https://gamma-api.polymarket.com"

// Client is the REST client for the Polymarket Gamma API. It performs GET
// requests and returns raw bodies; it never interprets payload meaning.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates a Gamma API client. baseURL defaults to DefaultBaseURL
// and timeout to 30s when zero-valued.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// get sends a GET request and returns the response body. Failures surface as
// distinct transport errors carrying the full URL: connection failure,
// timeout, unreadable body, or non-2xx status with the body text.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &apperr.ConnectionError{URL: fullURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, &apperr.TimeoutError{URL: fullURL, Timeout: c.timeout}
		}
		return nil, &apperr.ConnectionError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperr.ResponseReadError{URL: fullURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &apperr.RequestFailedError{
			URL:    fullURL,
			Status: resp.StatusCode,
			Body:   string(body),
		}
	}

	return body, nil
}
