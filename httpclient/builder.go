package httpclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Builder turns domain inputs into immutable request descriptors. It is pure
// and synchronous: building never performs network access, and a failed build
// produces no descriptor.
type Builder struct {
	config Config
}

// NewBuilder creates a request builder from the given configuration.
func NewBuilder(cfg Config) (*Builder, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Builder{config: cfg}, nil
}

// BaseURL returns the configured base URL.
func (b *Builder) BaseURL() string {
	return b.config.BaseURL
}

// RequestOption configures a single request build.
type RequestOption func(*buildSpec)

type buildSpec struct {
	headers map[string]string
	auth    *AuthConfig
	timeout time.Duration
}

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(s *buildSpec) {
		s.headers[key] = value
	}
}

// WithAuth sets the Authorization header from an auth config.
func WithAuth(auth *AuthConfig) RequestOption {
	return func(s *buildSpec) {
		s.auth = auth
	}
}

// WithTimeout overrides the default per-request deadline.
func WithTimeout(d time.Duration) RequestOption {
	return func(s *buildSpec) {
		s.timeout = d
	}
}

// NewRequest builds an immutable request descriptor for the given method,
// path, and body. The body is JSON-encoded unless it is nil or already
// []byte. Fails with an invalid_body error when encoding fails and with an
// invalid_endpoint error when the URL cannot be composed.
func (b *Builder) NewRequest(method, path string, body any, opts ...RequestOption) (Request, error) {
	spec := buildSpec{
		headers: make(map[string]string),
		timeout: b.config.Timeout,
	}
	for _, opt := range opts {
		opt(&spec)
	}

	encoded, err := encodeBody(body)
	if err != nil {
		return Request{}, NewInvalidBodyError(err)
	}

	target, err := joinURL(b.config.BaseURL, path)
	if err != nil {
		return Request{}, NewInvalidEndpointError(err)
	}

	headers := make(map[string]string, len(b.config.Headers)+len(spec.headers)+4)
	for k, v := range b.config.Headers {
		headers[k] = v
	}
	headers["Accept"] = "application/json"
	headers["Cache-Control"] = "no-cache"
	if encoded != nil {
		headers["Content-Type"] = "application/json"
	}
	if h := spec.auth.header(); h != "" {
		headers["Authorization"] = h
	}
	// Request-specific headers override defaults.
	for k, v := range spec.headers {
		headers[k] = v
	}

	return Request{
		Method:  method,
		URL:     target,
		Headers: headers,
		Body:    encoded,
		Timeout: spec.timeout,
	}, nil
}

// encodeBody converts a body value into raw bytes.
func encodeBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	switch v := body.(type) {
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	default:
		return json.Marshal(v)
	}
}

// joinURL composes the absolute target URL from the base and a resource path.
func joinURL(base, path string) (string, error) {
	target := strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
	u, err := url.Parse(target)
	if err != nil {
		return "", err
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("target is not absolute: %s", target)
	}
	return u.String(), nil
}
