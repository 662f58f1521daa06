// Package transport provides HTTP communication for sfsession.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds each request when no timeout is configured.
const DefaultTimeout = 60 * time.Second

// defaultUserAgent identifies this client to the OAuth endpoints.
const defaultUserAgent = "sfsession-go/1.0"

// Response is the distilled result of an HTTP exchange: everything the
// session coordinator needs to classify an OAuth response, with the
// body already drained so the connection can be reused.
type Response struct {
	// Status is the HTTP status code.
	Status int

	// Reason is the HTTP reason phrase.
	Reason string

	// Body is the full response body.
	Body []byte
}

// Client executes HTTP requests on behalf of the session coordinator.
//
// Send returns a typed transport error (ErrRequestInterrupted,
// ErrRequestTimeout, or ErrTransportFailure) when the exchange itself
// fails; HTTP error statuses are not errors at this layer.
type Client interface {
	Send(ctx context.Context, req *http.Request) (*Response, error)
}

// HTTPClient is the net/http backed Client implementation.
type HTTPClient struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *HTTPClient) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client.
// Useful for custom TLS configuration or test doubles.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.client = hc
		}
	}
}

// New creates a new HTTPClient.
func New(opts ...Option) *HTTPClient {
	c := &HTTPClient{
		client:    &http.Client{},
		timeout:   DefaultTimeout,
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Timeout returns the per-request timeout.
func (c *HTTPClient) Timeout() time.Duration {
	return c.timeout
}

// Send executes the request and drains the response.
//
// The configured timeout is applied through the request context unless the
// caller's context already carries an earlier deadline.
func (c *HTTPClient) Send(ctx context.Context, req *http.Request) (*Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req = req.WithContext(ctx)
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, wrapError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(fmt.Errorf("read response body: %w", err))
	}

	return &Response{
		Status: resp.StatusCode,
		Reason: reasonPhrase(resp),
		Body:   body,
	}, nil
}

// reasonPhrase extracts the reason phrase from a response status line.
// Falls back to the canonical text when the server sent none.
func reasonPhrase(resp *http.Response) string {
	prefix := fmt.Sprintf("%d ", resp.StatusCode)
	if strings.HasPrefix(resp.Status, prefix) {
		if reason := strings.TrimPrefix(resp.Status, prefix); reason != "" {
			return reason
		}
	}
	return http.StatusText(resp.StatusCode)
}
