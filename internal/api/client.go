package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	pkgerrors "github.com/franchiseos/franchiseos-go/pkg/errors"
	"github.com/franchiseos/franchiseos-go/pkg/logger"
	"github.com/franchiseos/franchiseos-go/pkg/metrics"
	"github.com/franchiseos/franchiseos-go/pkg/types"
	"github.com/google/uuid"
)

// Resource identifies a cacheable entity class. Successful mutations on a
// resource drop every cached read sharing its tag, which is what gives
// callers read-after-write consistency without manual bookkeeping.
type Resource string

const (
	ResourceAuth      Resource = "auth"
	ResourceUser      Resource = "users"
	ResourceChecklist Resource = "checklists"
	ResourceLead      Resource = "leads"
	ResourceDealer    Resource = "dealers"
)

const (
	requestIDHeader   = "X-Request-Id"
	idempotencyHeader = "Idempotency-Key"
)

// TokenSource supplies the bearer credential for outgoing requests. An empty
// token means the request goes out unauthenticated; authorization failures
// then surface as request errors from the backend.
type TokenSource interface {
	AccessToken() string
}

// Options bundles the dependencies required to build a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	HTTPClient *http.Client
	Tokens     TokenSource
	Logger     *logger.Logger
	Metrics    *metrics.RequestMetrics
}

// Client issues typed requests against the platform REST API and maintains
// the tagged response cache. It performs no retries; a failure is terminal
// for that single attempt.
type Client struct {
	base      *url.URL
	http      *http.Client
	tokens    TokenSource
	logg      *logger.Logger
	metrics   *metrics.RequestMetrics
	userAgent string
	cache     *tagCache
}

// NewClient validates the options and builds a client.
func NewClient(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", opts.BaseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "franchiseos-go"
	}

	return &Client{
		base:      base,
		http:      httpClient,
		tokens:    opts.Tokens,
		logg:      opts.Logger,
		metrics:   opts.Metrics,
		userAgent: userAgent,
		cache:     newTagCache(),
	}, nil
}

// ResetCache drops every cached read, regardless of tag. The session store
// calls this when the authenticated identity changes.
func (c *Client) ResetCache() {
	c.cache.Reset()
}

// get serves the read from the tagged cache when possible, otherwise performs
// the request and caches the raw response body under the resource tag.
func (c *Client) get(ctx context.Context, resource Resource, path string, query url.Values, out any) error {
	key := cacheKey(http.MethodGet, path, query)
	if raw, ok := c.cache.Get(key); ok {
		c.metrics.IncCacheHit(string(resource))
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decoding cached response")
		}
		return nil
	}
	c.metrics.IncCacheMiss(string(resource))

	raw, err := c.do(ctx, resource, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	c.cache.Put(key, resource, raw)
	if out == nil {
		return nil
	}
	return decode(raw, out)
}

// mutate performs a write and, on success, invalidates every cached read
// tagged with the named resources. Effects become visible to readers only
// after the mutation's own response has resolved; the client never applies
// optimistic updates.
func (c *Client) mutate(ctx context.Context, resource Resource, method, path string, body, out any, invalidates ...Resource) error {
	raw, err := c.do(ctx, resource, method, path, nil, body)
	if err != nil {
		return err
	}
	for _, tag := range invalidates {
		dropped := c.cache.Invalidate(tag)
		c.metrics.AddInvalidations(string(tag), dropped)
	}
	if out == nil {
		return nil
	}
	return decode(raw, out)
}

func decode(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decoding response")
	}
	return nil
}

func (c *Client) do(ctx context.Context, resource Resource, method, path string, query url.Values, body any) ([]byte, error) {
	target := c.base.JoinPath(path)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building request")
	}

	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set(idempotencyHeader, uuid.NewString())
	}
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if c.logg != nil {
		ctx = c.logg.WithRequestID(ctx, requestID)
		ctx = c.logg.WithResource(ctx, string(resource))
		c.logg.Debug(ctx, fmt.Sprintf("%s %s", method, target.Path))
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	c.metrics.ObserveRequest(string(resource), method, time.Since(started))
	if err != nil {
		c.metrics.IncError(string(resource), method)
		return nil, pkgerrors.Wrap(pkgerrors.CodeTransport, err, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.IncError(string(resource), method)
		return nil, pkgerrors.Wrap(pkgerrors.CodeTransport, err, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.IncError(string(resource), method)
		return nil, apiError(resp.StatusCode, raw)
	}
	return raw, nil
}

// apiError converts a non-success response into the uniform error shape. The
// backend's message is surfaced verbatim so views can display it directly.
func apiError(status int, raw []byte) error {
	message := http.StatusText(status)
	var body types.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			message = body.Message
		} else if body.Error != "" {
			message = body.Error
		}
	}
	return pkgerrors.New(pkgerrors.CodeFromStatus(status), message).
		WithDetails(map[string]any{"status": status})
}

func cacheKey(method, path string, query url.Values) string {
	if len(query) == 0 {
		return method + " " + path
	}
	return method + " " + path + "?" + query.Encode()
}
