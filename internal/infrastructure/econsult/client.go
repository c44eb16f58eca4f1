// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package econsult

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/go-querystring/query"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/pkg/constants"
	"github.com/econsultation/econsultation-service/pkg/errors"
	"github.com/econsultation/econsultation-service/pkg/httpclient"
)

// maxListPages bounds how many pages a directory listing follows
const maxListPages = 50

// Client talks to the e-consultation REST backend. It holds no state between
// calls: every operation re-reads from the backend.
type Client struct {
	config     Config
	baseURL    *url.URL
	httpClient *httpclient.Client
}

var _ port.Backend = (*Client)(nil)

// NewClient creates a new backend client with the given configuration
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.MockMode {
		return nil, nil // mock mode is served by the in-memory backend
	}

	if cfg.BaseURL == "" {
		return nil, errors.NewValidation("backend base URL is required")
	}
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, errors.NewValidation(fmt.Sprintf("invalid backend base URL %q", cfg.BaseURL), err)
	}

	httpConfig := httpclient.Config{
		Timeout:      cfg.Timeout,
		MaxRetries:   cfg.MaxRetries,
		RetryDelay:   cfg.RetryDelay,
		RetryBackoff: true,
		Transport:    otelhttp.NewTransport(http.DefaultTransport),
	}

	client := &Client{
		config:     cfg,
		baseURL:    baseURL,
		httpClient: httpclient.NewClient(httpConfig),
	}
	client.httpClient.AddRoundTripper(&bearerRoundTripper{source: newTokenSource(ctx, cfg)})

	slog.InfoContext(ctx, "e-consultation backend client initialized",
		"base_url", baseURL.Redacted(),
		"max_retries", cfg.MaxRetries,
	)

	return client, nil
}

// endpoint builds an absolute URL from a path relative to the base URL
func (c *Client) endpoint(path string, params url.Values) string {
	u := c.baseURL.JoinPath(path)
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u.String()
}

// get performs a GET and decodes the envelope's data into out
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) (string, error) {
	resp, err := c.httpClient.Request(ctx, http.MethodGet, c.endpoint(path, params), nil, nil)
	if err != nil {
		return "", MapHTTPError(ctx, err)
	}
	return decodeEnvelope(resp.Body, out)
}

// post sends body as JSON and decodes the envelope's data into out, if given
func (c *Client) post(ctx context.Context, path string, body any, out any) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", errors.NewUnexpected("failed to encode request body", err)
	}

	headers := map[string]string{"Content-Type": constants.ContentTypeJSON}
	resp, err := c.httpClient.Request(ctx, http.MethodPost, c.endpoint(path, nil), payload, headers)
	if err != nil {
		return "", MapHTTPError(ctx, err)
	}
	return decodeEnvelope(resp.Body, out)
}

// decodeEnvelope unwraps {data, message}. A missing or null data member
// leaves out untouched.
func decodeEnvelope(body []byte, out any) (string, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return "", nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", errors.NewUnexpected("failed to parse backend response", err)
	}
	if out == nil || !hasData(env.Data) {
		return env.Message, nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return env.Message, errors.NewUnexpected("failed to parse backend response data", err)
	}
	return env.Message, nil
}

func hasData(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// decodeItems accepts a bare JSON array or a paginated object holding one.
// It returns the page's last_page (1 for bare arrays).
func decodeItems(raw json.RawMessage, out any) (int, error) {
	raw = bytes.TrimSpace(raw)
	if !hasData(raw) {
		return 1, nil
	}
	if raw[0] == '[' {
		return 1, json.Unmarshal(raw, out)
	}

	var page pageObject
	if err := json.Unmarshal(raw, &page); err != nil {
		return 0, err
	}
	if hasData(page.Data) {
		if err := json.Unmarshal(page.Data, out); err != nil {
			return 0, err
		}
	}
	return max(page.LastPage, 1), nil
}

// listAll follows pagination until the last page and returns every item.
// A page already present in params is where the listing starts.
func listAll[T any](ctx context.Context, c *Client, path string, params url.Values) ([]T, error) {
	var all []T
	if params == nil {
		params = url.Values{}
	}

	first := 1
	if requested, err := strconv.Atoi(params.Get("page")); err == nil && requested > 1 {
		first = requested
	}

	for page := first; page < first+maxListPages; page++ {
		if page > 1 {
			params.Set("page", strconv.Itoa(page))
		}

		var raw json.RawMessage
		if _, err := c.get(ctx, path, params, &raw); err != nil {
			return nil, err
		}

		var items []T
		lastPage, err := decodeItems(raw, &items)
		if err != nil {
			return nil, errors.NewUnexpected(fmt.Sprintf("failed to parse %s listing", path), err)
		}
		all = append(all, items...)

		if page >= lastPage {
			return all, nil
		}
	}

	slog.WarnContext(ctx, "listing truncated at page limit", "path", path, "pages", maxListPages)
	return all, nil
}

func queryValues(v any) (url.Values, error) {
	values, err := query.Values(v)
	if err != nil {
		return nil, errors.NewUnexpected("failed to encode query parameters", err)
	}
	return values, nil
}

// IsReady checks the backend answers at all. Any HTTP response below 500,
// including 401/404 for the unauthenticated check, counts as reachable.
func (c *Client) IsReady(ctx context.Context) error {
	_, err := c.httpClient.Request(ctx, http.MethodGet, c.endpoint(constants.PathSectors, nil), nil, nil)
	if err == nil {
		return nil
	}

	var statusErr *httpclient.StatusError
	if stderrors.As(err, &statusErr) && statusErr.StatusCode < http.StatusInternalServerError {
		return nil
	}
	return errors.NewServiceUnavailable("e-consultation backend is not ready", err)
}
