// Package medapi is the HTTP client for the remote medical benefits API.
//
// The remote system is a plain REST backend with no published SDK, so the
// gateways here are hand-built on net/http. Response shapes are loose maps
// normalized in normalize.go.
package medapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pharma_express/internal/observability/metrics"
	"pharma_express/pkg"
)

const defaultTimeout = 30 * time.Second

// ErrMalformedResponse marks a 2xx reply whose body could not be decoded
// into the expected shape.
var ErrMalformedResponse = errors.New("medapi: malformed response")

type tokenKey struct{}

// WithToken attaches the upstream bearer token to the request context. The
// gateways forward it on every call made under that context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext extracts the upstream token, if any.
func TokenFromContext(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}

// Client issues JSON requests against the medical API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do executes one request and returns the raw body and status code.
//
// Non-2xx replies become *pkg.BackendError carrying the status and body;
// network failures come back wrapped. The endpoint label feeds the upstream
// metrics, not the URL.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any, endpoint string) ([]byte, int, error) {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("medapi: marshal payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, 0, fmt.Errorf("medapi: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := TokenFromContext(ctx); tok != "" {
		req.Header.Set("Authorization", "Token "+tok)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveUpstream(endpoint, metrics.ResultError, time.Since(start))
		log.Printf("[medapi][client] %s %s failed err=%v", method, endpoint, err)
		return nil, 0, fmt.Errorf("medapi: %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveUpstream(endpoint, metrics.ResultError, time.Since(start))
		return nil, resp.StatusCode, fmt.Errorf("medapi: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.ObserveUpstream(endpoint, metrics.ResultError, time.Since(start))
		log.Printf("[medapi][client] %s %s status=%d body_len=%d", method, endpoint, resp.StatusCode, len(raw))
		return raw, resp.StatusCode, &pkg.BackendError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	metrics.ObserveUpstream(endpoint, metrics.ResultSuccess, time.Since(start))
	return raw, resp.StatusCode, nil
}
