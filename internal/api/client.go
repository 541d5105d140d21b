// Package api wraps the POS backend REST API. Every call returns a
// Result envelope instead of an error: HTTP and transport failures are
// normalized into Result.Error so call sites branch on Success and show a
// message, and nothing at this layer retries or escalates.
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

	"go.uber.org/zap"
)

// NetworkErrorMessage is the uniform error for transport-level failures
// (connection refused, DNS, cancelled context).
const NetworkErrorMessage = "network error"

// Result is the uniform success/error envelope shared by every wrapper.
// StatusCode carries the HTTP status when a response was received, zero for
// transport-level failures.
type Result[T any] struct {
	Success    bool   `json:"success"`
	Data       T      `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	StatusCode int    `json:"-"`
}

// IsNetworkError reports whether the call failed before reaching the backend,
// which is the signal checkout uses to queue a sale offline.
func (r Result[T]) IsNetworkError() bool {
	return !r.Success && r.Error == NetworkErrorMessage
}

// Retryable reports whether the same call could plausibly succeed later
// without changing the request: transport failures and 5xx responses. A 4xx
// is a definitive rejection.
func (r Result[T]) Retryable() bool {
	if r.Success {
		return false
	}
	return r.StatusCode == 0 || r.StatusCode >= 500
}

// TokenStore is the session boundary the client reads bearer tokens from.
// A 401 response clears the stored token through it.
type TokenStore interface {
	Token() string
	SetToken(token string) error
	ClearToken()
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	log     *zap.SugaredLogger
}

func New(baseURL string, tokens TokenStore, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     log,
	}
}

func get[T any](ctx context.Context, c *Client, path string, query url.Values) Result[T] {
	return exchange[T](ctx, c, http.MethodGet, path, query, nil)
}

func post[T any](ctx context.Context, c *Client, path string, body any) Result[T] {
	return exchange[T](ctx, c, http.MethodPost, path, nil, body)
}

func put[T any](ctx context.Context, c *Client, path string, body any) Result[T] {
	return exchange[T](ctx, c, http.MethodPut, path, nil, body)
}

func del[T any](ctx context.Context, c *Client, path string) Result[T] {
	return exchange[T](ctx, c, http.MethodDelete, path, nil, nil)
}

// exchange performs one attempt: build the request, attach the bearer token
// when present, and fold the response into a Result. It never returns an
// error and never panics; the worst outcome is a failure envelope.
func exchange[T any](ctx context.Context, c *Client, method string, path string, query url.Values, body any) Result[T] {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return Result[T]{Error: "failed to encode request body"}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return Result[T]{Error: NetworkErrorMessage}
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debugw("request failed", "method", method, "path", path, "error", err)
		return Result[T]{Error: NetworkErrorMessage}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result[T]{Error: NetworkErrorMessage}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.ClearToken()
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result[T]{Error: errorMessage(resp.StatusCode, raw), StatusCode: resp.StatusCode}
	}

	var data T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &data); err != nil {
			c.log.Debugw("bad response body", "method", method, "path", path, "error", err)
			return Result[T]{Error: "invalid response from server", StatusCode: resp.StatusCode}
		}
	}
	return Result[T]{Success: true, Data: data, StatusCode: resp.StatusCode}
}

// errorMessage prefers the backend's detail field, falling back to a generic
// status-code message.
func errorMessage(status int, raw []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && strings.TrimSpace(payload.Detail) != "" {
		return payload.Detail
	}
	return fmt.Sprintf("request failed with status %d", status)
}
