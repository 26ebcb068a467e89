// Package rest provides a small JSON-over-HTTP client for the REST APIs the
// tools read from (Blockfrost, the MAYZ dApp backend, CoinGecko). Every
// request carries a generated X-Request-Id so a failed call can be traced in
// the provider's logs, and non-2xx responses are surfaced as *StatusError.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is matched (via errors.Is) by a *StatusError carrying a 404.
	ErrNotFound = errors.New("resource not found")

	// ErrBody wraps failures to read or decode a 2xx response body.
	ErrBody = errors.New("read response body")
)

// maxErrorBody bounds how much of an error response body is kept.
const maxErrorBody = 512

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// Is makes errors.Is(err, ErrNotFound) true for 404 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Client sends JSON requests relative to a base URL and decodes JSON
// responses into out. A nil out discards the body.
type Client interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
}

// Option configures a client.
type Option func(*client)

// WithHeader adds a header sent with every request (e.g. Blockfrost's
// project_id).
func WithHeader(key, value string) Option {
	return func(c *client) {
		c.headers.Set(key, value)
	}
}

// client is the default implementation of the Client interface.
type client struct {
	baseURL    string       // URL every path is appended to
	httpClient *http.Client // the HTTP client used to perform requests
	headers    http.Header  // static headers added to every request
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// NewClient returns a Client sending requests to baseURL with httpClient.
func NewClient(httpClient *http.Client, baseURL string, opts ...Option) *client {
	c := &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		headers:    make(http.Header),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a GET request on path with the given query parameters.
func (c *client) Get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	return c.do(ctx, http.MethodGet, target, nil, out)
}

// Post performs a POST request on path with body encoded as JSON.
func (c *client) Post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	return c.do(ctx, http.MethodPost, c.baseURL+path, payload, out)
}

func (c *client) do(ctx context.Context, method, target string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}

	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return &StatusError{
			Method:     method,
			URL:        req.URL.Redacted(),
			StatusCode: res.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		if _, err := io.Copy(io.Discard, res.Body); err != nil {
			return fmt.Errorf("%w: %w", ErrBody, err)
		}
		return nil
	}

	dec := json.NewDecoder(res.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrBody, method, req.URL.Redacted(), err)
	}
	return nil
}
