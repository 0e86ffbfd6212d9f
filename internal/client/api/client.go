// Package api is the HTTP adapter between the Manager client and the REST
// backend. It attaches the stored bearer credential, keeps backend cookies,
// turns 401 responses into a session teardown and unwraps the
// {data: {<key>: ...}} envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/salesdesk/internal/logging"
)

const RequestIDHeader = "X-Request-ID"

// TokenSource supplies the bearer credential for each request. An empty
// token means no Authorization header.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger

	mu             sync.RWMutex
	onUnauthorized func(ctx context.Context)
}

type Option func(*Client)

// WithTimeout bounds every request. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithTransport replaces the round tripper, mostly for tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.http.Transport = rt }
}

func New(baseURL string, tokens TokenSource, opts ...Option) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("backend url: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
		tokens:  tokens,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// OnUnauthorized registers the handler run after any 401 response.
func (c *Client) OnUnauthorized(fn func(ctx context.Context)) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

// Response is a successful (2xx) backend reply.
type Response struct {
	Status int
	Body   []byte
}

// Send performs one request. body, when non-nil, is sent as JSON; params
// become the query string.
func (c *Client) Send(ctx context.Context, method, path string, body any, params url.Values) (*Response, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			c.log.Warn(ctx, "read stored credential", "error", err)
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.log.Error(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s %s: %v", ErrUnavailable, method, path, err)
	}
	c.log.Debug(ctx, "request done",
		"method", method, "path", path, "status", resp.StatusCode,
		"duration", time.Since(start), "request_id", reqID)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &Response{Status: resp.StatusCode, Body: raw}, nil
	}

	apiErr := &Error{Status: resp.StatusCode, Message: errorMessage(raw)}
	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warn(ctx, "session invalid", "method", method, "path", path, "request_id", reqID)
		c.mu.RLock()
		handler := c.onUnauthorized
		c.mu.RUnlock()
		if handler != nil {
			handler(ctx)
		}
	}
	return nil, apiErr
}

func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &body) != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
