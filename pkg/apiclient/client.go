package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"club-booking/pkg/errs"
	"club-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 4 << 20
)

// Client talks to the club backend on behalf of the current caller.
// It never retries; every call is bounded by ctx and the configured timeout.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
	cookieName string
	log        *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithCookieName(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.cookieName = name
		}
	}
}

func New(cfg utils.UpstreamConfig, log *zap.Logger, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid upstream base url %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL:    base,
		httpClient: &http.Client{},
		timeout:    timeout,
		cookieName: "auth_token",
		log:        log.With(zap.String("component", "apiclient")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	_, err := c.Do(ctx, http.MethodGet, path, query, nil, out)
	return err
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	_, err := c.Do(ctx, http.MethodPost, path, nil, body, out)
	return err
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	_, err := c.Do(ctx, http.MethodPut, path, nil, body, out)
	return err
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
	return err
}

// Do sends one request and decodes a 2xx JSON body into out (when out is non-nil).
// The response headers are returned so callers can relay Set-Cookie.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) (http.Header, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("Upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, errs.Wrapf(fmt.Errorf("%w: %w", ErrTransport, err), "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.Header, errs.Wrapf(fmt.Errorf("%w: read body: %w", ErrTransport, err), "%s %s", method, path)
	}

	c.log.Debug("Upstream request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.Header, errs.WithStack(&StatusError{
			Status:  resp.StatusCode,
			Message: normalizeMessage(resp.StatusCode, raw),
			Method:  method,
			Path:    path,
		})
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return resp.Header, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return resp.Header, errs.Wrapf(fmt.Errorf("%w: %w", ErrDecode, err), "%s %s", method, path)
	}
	return resp.Header, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	target := c.baseURL.JoinPath(strings.TrimPrefix(path, "/"))
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Teruskan kredensial caller ke upstream
	if token, ok := utils.GetTokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: token})
	}
	if id, ok := utils.GetIdentityFromContext(ctx); ok {
		req.Header.Set("X-User-Id", id.UserID)
		if id.Username != "" {
			req.Header.Set("X-Username", id.Username)
		}
		if len(id.Roles) > 0 {
			req.Header.Set("X-User-Roles", strings.Join(id.Roles, ","))
		}
	}
	if rid := utils.GetRequestIDFromContext(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}
	return req, nil
}
