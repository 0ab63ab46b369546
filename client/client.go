// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/danielhkuo/course-feedback/apierr"
	"github.com/danielhkuo/course-feedback/models"
)

// DefaultContentType is used by body-carrying requests when none is given
const DefaultContentType = "application/json"

// RequestIDHeader carries a per-request UUID so server logs can be correlated
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a non-JSON error body ends up in Detail
const maxErrorBody = 512

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for the API rooted at baseURL.
// A trailing slash on baseURL is dropped.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API root
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ResolveURL returns the full URL for a "/" prefixed path.
// Any other value is returned unchanged.
func (c *Client) ResolveURL(path string) string {
	if strings.HasPrefix(path, "/") {
		return c.baseURL + path
	}
	return path
}

// NewRequest builds a request for path. An empty contentType on a request
// with a body defaults to application/json.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.ResolveURL(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		if contentType == "" {
			contentType = DefaultContentType
		}
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

// Execute sends req and normalizes failures into apierr values.
// Relative request URLs are resolved against the base URL first.
// The caller closes the body of a successful response.
func (c *Client) Execute(req *http.Request) (*http.Response, error) {
	if err := c.fillRequest(req); err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"request_id", requestID,
			"error", err,
		)
		return nil, apierr.FetchFailed(err)
	}

	c.logger.Debug("request completed",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		errs := decodeErrors(resp)
		c.logger.Warn("request rejected",
			"method", req.Method,
			"url", req.URL.String(),
			"status", resp.StatusCode,
			"request_id", requestID,
			"errors", len(errs),
		)
		return nil, errs
	}

	return resp, nil
}

// fillRequest rewrites a relative request URL to an absolute one
func (c *Client) fillRequest(req *http.Request) error {
	if req.URL == nil || req.URL.IsAbs() || req.URL.Host != "" {
		return nil
	}

	raw := req.URL.String()
	if !strings.HasPrefix(raw, "/") {
		return nil
	}

	u, err := url.Parse(c.ResolveURL(raw))
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", raw, err)
	}
	req.URL = u
	req.Host = u.Host
	return nil
}

// decodeErrors turns a non-2xx body into a List. A body that is not an
// error array becomes a single Error named after the status.
func decodeErrors(resp *http.Response) apierr.List {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierr.List{apierr.New(http.StatusText(resp.StatusCode), err.Error())}
	}

	var records []models.ErrorRecord
	if err := json.Unmarshal(data, &records); err == nil && len(records) > 0 {
		errs := make(apierr.List, 0, len(records))
		for _, r := range records {
			errs = append(errs, apierr.New(r.Summary, r.Detail))
		}
		return errs
	}

	detail := string(bytes.TrimSpace(data))
	if len(detail) > maxErrorBody {
		cut := maxErrorBody
		for cut > 0 && !utf8.RuneStart(detail[cut]) {
			cut--
		}
		detail = detail[:cut]
	}
	summary := http.StatusText(resp.StatusCode)
	if summary == "" {
		summary = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}
	return apierr.List{apierr.New(summary, detail)}
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := c.NewRequest(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}
	return c.Execute(req)
}

// Get runs a GET request
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, "")
}

// Post runs a POST request
func (c *Client) Post(ctx context.Context, path string, body io.Reader, contentType string) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, path, orEmpty(body), contentType)
}

// Put runs a PUT request
func (c *Client) Put(ctx context.Context, path string, body io.Reader, contentType string) (*http.Response, error) {
	return c.do(ctx, http.MethodPut, path, orEmpty(body), contentType)
}

// Patch runs a PATCH request
func (c *Client) Patch(ctx context.Context, path string, body io.Reader, contentType string) (*http.Response, error) {
	return c.do(ctx, http.MethodPatch, path, orEmpty(body), contentType)
}

// Delete runs a DELETE request
func (c *Client) Delete(ctx context.Context, path string) (*http.Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, "")
}

// Head runs a HEAD request
func (c *Client) Head(ctx context.Context, path string) (*http.Response, error) {
	return c.do(ctx, http.MethodHead, path, nil, "")
}

// Options runs an OPTIONS request
func (c *Client) Options(ctx context.Context, path string) (*http.Response, error) {
	return c.do(ctx, http.MethodOptions, path, nil, "")
}

// orEmpty keeps the Content-Type header on body-carrying methods sent
// without a payload
func orEmpty(body io.Reader) io.Reader {
	if body == nil {
		return http.NoBody
	}
	return body
}

// DecodeJSON reads a successful response into v and closes the body
func DecodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
