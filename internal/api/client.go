// Package api implements the REST client for the Doorspital backend: bearer
// token injection, JSON request/response normalization, typed errors, and the
// token-clearing side effect on authorization failures.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/gohypedevelopers-stack/admin-dashboard/internal/logging"
)

// Doer is the subset of *http.Client the API client needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenStore is the subset of the token store the client needs: reading the
// token for the Authorization header, and clearing it on 401/403.
type TokenStore interface {
	Get() (string, error)
	Clear() error
}

// Client issues requests against the backend REST API.
//
// No retry, no backoff, no client-level timeout: every failure is surfaced to
// the caller immediately. Deadlines belong to the caller's context.
type Client struct {
	baseURL *url.URL
	http    Doer
	tokens  TokenStore
	log     logging.Logger
}

func NewClient(httpClient Doer, baseURL string, tokens TokenStore, log logging.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: u, http: httpClient, tokens: tokens, log: log}, nil
}

// Options customize a single request.
type Options struct {
	// Headers are merged over the defaults.
	Headers http.Header

	// Body, when non-nil, is serialized to JSON and sent with the JSON
	// content type unless one was set explicitly.
	Body any

	// Raw is a pre-encoded body (e.g. multipart). It takes precedence over
	// Body; ContentType should be set alongside it.
	Raw         io.Reader
	ContentType string
}

// Request performs method path against the backend and returns the decoded
// payload: for JSON responses, the result of unmarshalling into any (nil when
// the body does not parse); for everything else, the raw body as a string.
//
// A bearer token from the store, when present, is attached as
// "Authorization: Bearer <token>". Non-2xx responses produce a *RequestError;
// a 401 or 403 additionally clears the token store before the error is
// returned, so the session reads as unauthenticated afterwards.
func (c *Client) Request(ctx context.Context, method, path string, opts *Options) (any, error) {
	if opts == nil {
		opts = &Options{}
	}

	u, err := url.Parse(c.baseURL.String() + path)
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", path, err)
	}

	headers := http.Header{}
	headers.Set("Accept", "application/json")
	for k, vs := range opts.Headers {
		headers[http.CanonicalHeaderKey(k)] = vs
	}

	var body io.Reader
	switch {
	case opts.Raw != nil:
		body = opts.Raw
		if opts.ContentType != "" {
			headers.Set("Content-Type", opts.ContentType)
		}
	case opts.Body != nil:
		encoded, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
		if headers.Get("Content-Type") == "" {
			headers.Set("Content-Type", "application/json")
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header = headers
	req.Header.Set("X-Request-Id", uuid.NewString())

	if tok, err := c.tokens.Get(); err != nil {
		c.log.Warn(ctx, "failed to read token, sending unauthenticated request", "error", err)
	} else if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, wrapTransportError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var payload any
	if isJSONContentType(resp.Header.Get("Content-Type")) {
		// a malformed JSON body degrades to a nil payload
		if err := json.Unmarshal(raw, &payload); err != nil {
			payload = nil
		}
	} else {
		payload = string(raw)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			if err := c.tokens.Clear(); err != nil {
				c.log.Warn(ctx, "failed to clear token after auth failure", "error", err)
			}
		}
		return nil, newRequestError(resp.StatusCode, payload)
	}

	return payload, nil
}

func (c *Client) Get(ctx context.Context, path string) (any, error) {
	return c.Request(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.Request(ctx, http.MethodPost, path, &Options{Body: body})
}

func (c *Client) Put(ctx context.Context, path string, body any) (any, error) {
	return c.Request(ctx, http.MethodPut, path, &Options{Body: body})
}

func (c *Client) Patch(ctx context.Context, path string, body any) (any, error) {
	return c.Request(ctx, http.MethodPatch, path, &Options{Body: body})
}

func (c *Client) Delete(ctx context.Context, path string) (any, error) {
	return c.Request(ctx, http.MethodDelete, path, nil)
}

func isJSONContentType(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}
