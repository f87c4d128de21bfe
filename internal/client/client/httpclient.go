package client

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

	"github.com/google/uuid"

	"github.com/dmitrijs2005/subtracker/internal/client/models"
	"github.com/dmitrijs2005/subtracker/internal/logging"
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

const (
	opList   = "list"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// HTTPClient talks to the subscription resource over REST.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	metrics *Metrics
	log     logging.Logger
}

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

// WithTimeout bounds every request, including reading the response body.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) { h.http.Timeout = d }
}

// WithMetrics records request counts and latencies.
func WithMetrics(m *Metrics) Option {
	return func(h *HTTPClient) { h.metrics = m }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.log = l }
}

// NewHTTPClient builds a client for the collection at baseURL,
// e.g. http://localhost:8085/api/subscriptions.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) List(ctx context.Context) ([]models.Subscription, error) {
	resp, err := c.do(ctx, opList, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, &RequestError{Kind: ErrFetch, Err: err}
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		return nil, &RequestError{Kind: ErrFetch, StatusCode: resp.StatusCode}
	}

	var items []models.Subscription
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, &RequestError{Kind: ErrFetch, Err: fmt.Errorf("decode response: %w", err)}
	}
	if items == nil {
		items = []models.Subscription{}
	}
	return items, nil
}

func (c *HTTPClient) Create(ctx context.Context, f models.Fields) error {
	return c.send(ctx, opCreate, ErrCreate, http.MethodPost, c.baseURL, f)
}

func (c *HTTPClient) Update(ctx context.Context, id models.ID, f models.Fields) error {
	return c.send(ctx, opUpdate, ErrUpdate, http.MethodPut, c.itemURL(id), f)
}

func (c *HTTPClient) Delete(ctx context.Context, id models.ID) error {
	return c.send(ctx, opDelete, ErrDelete, http.MethodDelete, c.itemURL(id), nil)
}

func (c *HTTPClient) itemURL(id models.ID) string {
	return c.baseURL + "/" + url.PathEscape(id.String())
}

// send issues a mutating request whose response body is not needed.
func (c *HTTPClient) send(ctx context.Context, op string, kind error, method, target string, body any) error {
	resp, err := c.do(ctx, op, method, target, body)
	if err != nil {
		return &RequestError{Kind: kind, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if !success(resp.StatusCode) {
		return &RequestError{Kind: kind, StatusCode: resp.StatusCode}
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, op, method, target string, body any) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, r)
	if err != nil {
		return nil, err
	}
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(op, outcomeTransport, time.Since(start))
		c.log.Debug(ctx, "request failed", "op", op, "method", method, "url", target, "request_id", reqID, "error", err)
		return nil, err
	}

	c.metrics.observe(op, outcomeFor(resp.StatusCode), time.Since(start))
	c.log.Debug(ctx, "request completed", "op", op, "method", method, "url", target, "status", resp.StatusCode, "request_id", reqID)
	return resp, nil
}

func success(code int) bool {
	return code >= 200 && code < 300
}
