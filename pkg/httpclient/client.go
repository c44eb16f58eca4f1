// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package httpclient provides a small HTTP client with a RoundTripper middleware
// chain and opt-in retries for idempotent requests.
package httpclient

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"time"
)

// RoundTripper is a request middleware; it must call next to continue the chain.
type RoundTripper interface {
	RoundTrip(req *http.Request, next func(*http.Request) (*http.Response, error)) (*http.Response, error)
}

// RoundTripperFunc adapts a function to the RoundTripper interface.
type RoundTripperFunc func(req *http.Request, next func(*http.Request) (*http.Response, error)) (*http.Response, error)

// RoundTrip calls f(req, next).
func (f RoundTripperFunc) RoundTrip(req *http.Request, next func(*http.Request) (*http.Response, error)) (*http.Response, error) {
	return f(req, next)
}

// Client is a generic HTTP client with middleware support
type Client struct {
	config        Config
	httpClient    *http.Client
	roundTrippers []RoundTripper
}

// Request represents an HTTP request configuration
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// Response represents an HTTP response
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// StatusError is returned for every response with a status code >= 400.
// The body is kept verbatim so callers can decode the server's error envelope.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, string(e.Body))
}

// Do executes an HTTP request. Idempotent requests are retried up to
// MaxRetries times on server errors, rate limiting and transport failures.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	var lastErr error

	attempts := 1
	if isIdempotent(req.Method) {
		attempts += c.config.MaxRetries
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := c.backoff(attempt)
			slog.DebugContext(ctx, "retrying request",
				"method", req.Method,
				"attempt", attempt+1,
				"delay_ms", delay.Milliseconds(),
			)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		response, err := c.doRequest(ctx, req)
		if err == nil {
			return response, nil
		}

		lastErr = err

		if !c.shouldRetry(err) {
			return response, err
		}
	}

	return nil, lastErr
}

// backoff computes the delay before the given attempt
func (c *Client) backoff(attempt int) time.Duration {
	delay := c.config.RetryDelay
	if !c.config.RetryBackoff {
		return delay
	}

	for i := 1; i < attempt && delay < c.config.MaxDelay/2; i++ {
		delay *= 2
	}
	if delay > c.config.MaxDelay {
		delay = c.config.MaxDelay
	}

	// 25% jitter
	maxJitter := int64(delay / 4)
	if maxJitter > 0 {
		jitterBig, err := rand.Int(rand.Reader, big.NewInt(maxJitter))
		if err == nil {
			delay += time.Duration(jitterBig.Int64())
		}
	}
	return delay
}

// doRequest performs a single HTTP request through the RoundTripper chain
func (c *Client) doRequest(ctx context.Context, reqConfig Request) (*Response, error) {
	var body io.Reader
	if reqConfig.Body != nil {
		body = bytes.NewReader(reqConfig.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, reqConfig.Method, reqConfig.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	for key, value := range reqConfig.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.executeRoundTripperChain(httpReq, 0)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return response, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       respBody,
		}
	}

	return response, nil
}

// shouldRetry determines if a failed attempt may be repeated
func (c *Client) shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError || statusErr.StatusCode == http.StatusTooManyRequests
	}

	// transport failure
	return true
}

// Request performs an HTTP request with the specified verb
func (c *Client) Request(ctx context.Context, verb, url string, body []byte, headers map[string]string) (*Response, error) {
	return c.Do(ctx, Request{
		Method:  verb,
		URL:     url,
		Headers: headers,
		Body:    body,
	})
}

// executeRoundTripperChain executes the RoundTripper middleware chain
func (c *Client) executeRoundTripperChain(req *http.Request, index int) (*http.Response, error) {
	if index >= len(c.roundTrippers) {
		return c.httpClient.Do(req)
	}

	next := func(req *http.Request) (*http.Response, error) {
		return c.executeRoundTripperChain(req, index+1)
	}

	return c.roundTrippers[index].RoundTrip(req, next)
}

// AddRoundTripper adds a middleware RoundTripper to the client.
// This method is not safe for concurrent use and should only be called
// during client initialization before making any requests.
func (c *Client) AddRoundTripper(rt RoundTripper) {
	c.roundTrippers = append(c.roundTrippers, rt)
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// NewClient creates a new HTTP client with the given configuration
func NewClient(config Config) *Client {
	if config.MaxDelay == 0 {
		config.MaxDelay = 30 * time.Second
	}

	return &Client{
		config:        config,
		roundTrippers: make([]RoundTripper, 0),
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: config.Transport,
		},
	}
}
