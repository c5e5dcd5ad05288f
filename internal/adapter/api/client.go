// Package api is the single outbound HTTP gateway to the AGEI REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/agei/internal/domain"
)

// DefaultBaseURL is where the API lives in a default local deployment.
const DefaultBaseURL = "http://localhost:5000/api"

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 8 << 20

// tokenSource yields the bearer credential, if one is stored.
type tokenSource interface {
	Token() (token string, ok bool, err error)
}

// Client sends JSON requests to one base address. When the token source
// holds a credential it is attached as a bearer Authorization header.
// There is no retry, no timeout policy, and no caching: callers bound
// calls through the context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     tokenSource
	userAgent  string
	log        *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a Client for baseURL. tokens may be nil, in which case
// every request is sent unauthenticated.
func NewClient(baseURL string, tokens tokenSource, logger *slog.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
		userAgent:  "agei-client",
		log:        logger.With("adapter", "api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the base address requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// Get sends a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post sends body as JSON and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put sends body as JSON and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Delete sends a DELETE and discards any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do performs one request. body is JSON-encoded when non-nil; the response
// is decoded into out when out is non-nil and the body is not empty.
//
// Transport failures wrap domain.ErrTransport. Non-2xx responses return a
// *StatusError.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	start := time.Now()
	reqID := RequestIDFromCtx(ctx)
	if reqID == "" {
		reqID = NewRequestID()
	}

	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: %s %s: encode request: %w", method, path, err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("api: %s %s: create request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, ok, err := c.tokens.Token()
		if err != nil {
			return fmt.Errorf("api: %s %s: %w", method, path, err)
		}
		if ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.DebugContext(ctx, "api request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", reqID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("api: %s %s: %w: %w", method, path, domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("api: %s %s: read response: %w: %w", method, path, domain.ErrTransport, err)
	}

	c.log.DebugContext(ctx, "api request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("request_id", reqID),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(method, path, resp.StatusCode, respBody)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("api: %s %s: decode response: %w: %w", method, path, domain.ErrHTTP, err)
	}
	return nil
}
