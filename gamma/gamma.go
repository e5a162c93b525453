// Package gamma provides a client for the Gamma Generate API v1.0.
package gamma

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production endpoint of the Gamma public API.
const DefaultBaseURL = "https://public-api.gamma.app/v1.0"

const (
	// DefaultPollInterval is the delay between generation status checks.
	DefaultPollInterval = 10 * time.Second

	// DefaultMaxWait bounds the total time WaitForGeneration polls before
	// giving up.
	DefaultMaxWait = 5 * time.Minute
)

// StatusEvent is reported to the status hook on every poll.
type StatusEvent struct {
	GenerationID string
	Status       Status
	Elapsed      time.Duration
}

// StatusFunc receives poll progress events.
type StatusFunc func(StatusEvent)

// Config holds client configuration.
type Config struct {
	APIKey       string
	BaseURL      string
	HTTPClient   *http.Client
	PollInterval time.Duration
	MaxWait      time.Duration
	OnStatus     StatusFunc
}

// Client is a Gamma API client. Client is safe for concurrent use.
type Client struct {
	config Config
}

// Option configures a Client.
type Option func(*Client)

// New creates a Client authenticating with the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		config: Config{
			APIKey:       apiKey,
			BaseURL:      DefaultBaseURL,
			HTTPClient:   &http.Client{Timeout: 30 * time.Second},
			PollInterval: DefaultPollInterval,
			MaxWait:      DefaultMaxWait,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.config.BaseURL = url
	}
}

// WithHTTPClient sets the HTTP client used for API requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.config.HTTPClient = hc
		}
	}
}

// WithPollInterval sets the delay between generation status checks.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.config.PollInterval = d
		}
	}
}

// WithMaxWait sets the maximum total time WaitForGeneration polls.
func WithMaxWait(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.config.MaxWait = d
		}
	}
}

// WithStatusFunc sets a hook invoked with each status observed while polling.
func WithStatusFunc(fn StatusFunc) Option {
	return func(c *Client) {
		c.config.OnStatus = fn
	}
}

// buildHeaders returns the headers sent with every API request.
func (c *Client) buildHeaders() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set("X-API-KEY", c.config.APIKey)
	return h
}

// do executes a request against the API and decodes the JSON response body
// into out. A nil in skips the request body; a nil out discards the response.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return newDecodeError(err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, body)
	if err != nil {
		return newNetworkError(err)
	}
	req.Header = c.buildHeaders()

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return newNetworkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return newNetworkError(err)
	}

	if resp.StatusCode >= 400 {
		return normalizeError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return newDecodeError(err)
	}
	return nil
}
