package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/restpipe/restpipe/logger"
)

// Transport executes a request descriptor and yields the raw result or a
// transport-level failure. Implementations must not inspect status codes;
// a non-2xx response is still a successful execution.
type Transport interface {
	Execute(ctx context.Context, req Request) (*RawResult, error)
}

// Client is the net/http-backed Transport.
type Client struct {
	httpClient *http.Client
	log        *logger.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger attaches a logger for request-level debug logging.
func WithLogger(log *logger.Logger) ClientOption {
	return func(c *Client) { c.log = log.WithComponent("httpclient") }
}

// NewClient creates a Transport over net/http.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()},
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute sends the request and returns the raw result. The descriptor's
// Timeout is applied as a context deadline; cancellation of ctx abandons the
// in-flight call.
func (c *Client) Execute(ctx context.Context, req Request) (*RawResult, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	var bodyReader io.Reader
	if req.Body != nil {
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bodyReader)
	if err != nil {
		return nil, NewInvalidEndpointError(err)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Debug("request failed", logger.Fields(
			logger.FieldMethod, req.Method,
			logger.FieldURL, req.URL,
			logger.FieldError, err.Error(),
		))
		return nil, NewTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewTransportError(err)
	}

	c.log.Debug("request complete", logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldURL, req.URL,
		logger.FieldStatus, resp.StatusCode,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))

	return &RawResult{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}, nil
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
