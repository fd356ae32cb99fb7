package license

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cmccandless/python-bootstrap/internal/branding"
)

// License is a license text as returned by the service.
type License struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Text string `json:"text"`
}

// Fetcher downloads license texts by identifier.
type Fetcher interface {
	Fetch(ctx context.Context, id string) (*License, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, id string) (*License, error)

// Fetch calls f(ctx, id).
func (f FetcherFunc) Fetch(ctx context.Context, id string) (*License, error) { return f(ctx, id) }

// StatusError reports a non-success response from the license service.
type StatusError struct {
	ID         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("license service returned status %d for %q", e.StatusCode, e.ID)
}

// Client fetches license texts over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithBaseURL points the client at another license service.
func WithBaseURL(base string) Option {
	return func(cl *Client) {
		if base != "" {
			cl.baseURL = base
		}
	}
}

// NewClient creates a Client for the default license service.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    branding.LicenseAPIURL(),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service URL license identifiers are appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch downloads the license text for id with a single GET request.
func (c *Client) Fetch(ctx context.Context, id string) (*License, error) {
	endpoint := strings.TrimRight(c.baseURL, "/") + "/" + url.PathEscape(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", branding.CLIName())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching license %q: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{ID: id, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if err := validateBody(body); err != nil {
		return nil, err
	}

	var lic License
	if err := json.Unmarshal(body, &lic); err != nil {
		return nil, fmt.Errorf("parsing license JSON: %w", err)
	}
	if lic.Key == "" {
		lic.Key = id
	}
	return &lic, nil
}
