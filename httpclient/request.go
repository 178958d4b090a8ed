package httpclient

import "time"

// Request is an immutable request descriptor. It is produced by a Builder
// and consumed by a Transport; nothing mutates it after construction.
type Request struct {
	// Method is the HTTP method (GET, POST, DELETE, etc).
	Method string
	// URL is the absolute request URL, resolved against the builder's base.
	URL string
	// Headers are the request headers.
	Headers map[string]string
	// Body is the pre-encoded request body (nil for body-less requests).
	Body []byte
	// Timeout is the per-request deadline applied by the transport.
	// Zero means no descriptor-level deadline.
	Timeout time.Duration
}

// RawResult is the transport's view of a response: status metadata plus the
// raw body bytes. It is owned exclusively by the pipeline step that receives
// it and is discarded once validated.
type RawResult struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, flattened to single values.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}
