package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hamzafarrukh73/authclient/apierror"
)

// ErrMissingBaseURL is returned by New when no API base URL is configured.
var ErrMissingBaseURL = errors.New("missing API base URL")

const defaultTimeout = 30 * time.Second

// TokenSource yields the current bearer token, if any. The pipeline
// borrows the token read-only per request and never checks expiry;
// lifetime decisions belong to the session engine above it.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// TokenSourceFunc adapts a function to the TokenSource interface.
type TokenSourceFunc func(ctx context.Context) (string, bool)

func (f TokenSourceFunc) Token(ctx context.Context) (string, bool) {
	return f(ctx)
}

// Config holds the pipeline settings.
type Config struct {
	// BaseURL is the API origin including any path prefix,
	// e.g. "https://api.example.com/api/v1".
	BaseURL string

	// Timeout applies to the default HTTP client only; ignored when a
	// custom client is supplied.
	Timeout time.Duration
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTokenSource installs the bearer token source.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithUnauthorizedHook installs a callback invoked once per 401
// response, before the classified error is returned to the caller.
func WithUnauthorizedHook(fn func(ctx context.Context)) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// Client is the outbound request pipeline: it injects the bearer token,
// tags every request with an X-Request-ID, intercepts authentication
// rejections, and routes every failure through the error classifier.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	tokens         TokenSource
	onUnauthorized func(ctx context.Context)
}

func New(cfg Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrMissingBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do performs one request. A non-nil body is JSON-encoded; a non-nil out
// receives the decoded 2xx response body. Every failure comes back as a
// typed *apierror.Error with the raw failure preserved as its cause.
func (c *Client) Do(ctx context.Context, method, endpoint string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apierror.Classify(fmt.Errorf("encode request body: %w", err))
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return apierror.Classify(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if raw, ok := c.tokens.Token(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+raw)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apierror.Classify(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierror.Classify(err)
	}

	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		failure := &apierror.HTTPFailure{
			Status: resp.StatusCode,
			Raw:    strings.TrimSpace(string(data)),
		}
		var decoded map[string]any
		if json.Unmarshal(data, &decoded) == nil && decoded != nil {
			failure.Body = decoded
		}
		return apierror.Classify(failure)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return apierror.Classify(fmt.Errorf("decode response body: %w", err))
		}
	}
	return nil
}
