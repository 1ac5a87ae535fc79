// Package source reads list items, candidates and request criteria from the
// collaborator data store, either over HTTP or from local JSON snapshots.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/tayloree/pantry/internal/grocery"
	"github.com/tayloree/pantry/internal/logging"
	"github.com/tayloree/pantry/internal/match"
)

const (
	defaultTimeout = 15 * time.Second
	userAgent      = "pantry-cli"
)

// ErrNotFound is returned when the store has no such list.
var ErrNotFound = errors.New("not found")

// StatusError is a non-200 answer from the store.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// Client is an HTTP client for the hosted data store.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option customises a Client.
type Option func(*Client)

// WithToken sends a bearer token on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = strings.TrimSpace(token) }
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a client for the store rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) getAndDecode(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	logging.Debug().
		Str("url", reqURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("store request")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", reqURL, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return &StatusError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	return decodeStrict(resp.Body, out)
}

// FetchListItems returns the items of one shopping list.
func (c *Client) FetchListItems(ctx context.Context, listID string) ([]grocery.ListItem, error) {
	listID = strings.TrimSpace(listID)
	if listID == "" {
		return nil, fmt.Errorf("fetching list items: list id is required")
	}

	var items []grocery.ListItem
	reqURL := c.baseURL + "/lists/" + url.PathEscape(listID) + "/items"
	if err := c.getAndDecode(ctx, reqURL, &items); err != nil {
		return nil, fmt.Errorf("fetching list items: %w", err)
	}
	return items, nil
}

// FetchCandidates returns the bookable candidate pool.
func (c *Client) FetchCandidates(ctx context.Context) ([]match.Candidate, error) {
	var pool []match.Candidate
	if err := c.getAndDecode(ctx, c.baseURL+"/candidates", &pool); err != nil {
		return nil, fmt.Errorf("fetching candidates: %w", err)
	}
	return pool, nil
}

// decodeStrict decodes exactly one JSON document from r.
func decodeStrict(r io.Reader, out any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if err := dec.Decode(new(struct{})); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding response: trailing JSON content")
	}
	return nil
}
