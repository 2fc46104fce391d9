// Package newznab talks directly to Newznab and Torznab indexers. It is used
// to probe an indexer before it is saved on the server.
package newznab

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrAuth is returned when the indexer rejects the API key.
	ErrAuth = errors.New("indexer rejected credentials")

	// ErrIndexer wraps any other error document returned by the indexer.
	ErrIndexer = errors.New("indexer error")
)

// maxBody caps how much of a response is read.
const maxBody = 8 << 20

// Client is a Newznab/Torznab client for a single indexer.
type Client struct {
	name       string
	apiURL     string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "newznab", "indexer", c.name)
	}
}

// NewClient creates a client. baseURL may be the site root or the API
// endpoint itself; "/api" is appended when missing.
func NewClient(name, baseURL, apiKey string, opts ...Option) *Client {
	apiURL := strings.TrimSuffix(baseURL, "/")
	if !strings.HasSuffix(apiURL, "/api") {
		apiURL += "/api"
	}
	c := &Client{
		name:   name,
		apiURL: apiURL,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the indexer name.
func (c *Client) Name() string {
	return c.name
}

// URL returns the API endpoint.
func (c *Client) URL() string {
	return c.apiURL
}

// errorDoc is the <error code=".." description=".."/> body indexers return
// instead of a result, often with status 200.
type errorDoc struct {
	XMLName     xml.Name `xml:"error"`
	Code        string   `xml:"code,attr"`
	Description string   `xml:"description,attr"`
}

func (e errorDoc) err() error {
	switch e.Code {
	case "100", "101", "102":
		return fmt.Errorf("%w: %s", ErrAuth, e.Description)
	}
	return fmt.Errorf("%w %s: %s", ErrIndexer, e.Code, e.Description)
}

// get performs an API call and returns the body after checking for an
// error document.
func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	start := time.Now()
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", redactURLError(err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug("indexer request",
		"t", params.Get("t"),
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	var doc errorDoc
	if xml.Unmarshal(body, &doc) == nil && doc.Code != "" {
		return nil, doc.err()
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: status %d", ErrAuth, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return body, nil
}

// sensitiveParams are query keys whose values never appear in errors.
var sensitiveParams = []string{"apikey", "api_key", "passkey", "token", "password"}

// redactURLError masks credentials in the URL of a *url.Error.
func redactURLError(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	u, perr := url.Parse(uerr.URL)
	if perr != nil {
		return err
	}
	q := u.Query()
	for _, k := range sensitiveParams {
		if q.Has(k) {
			q.Set(k, "REDACTED")
		}
	}
	u.RawQuery = q.Encode()
	return &url.Error{Op: uerr.Op, URL: u.String(), Err: uerr.Err}
}
