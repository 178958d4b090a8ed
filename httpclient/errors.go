package httpclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies request pipeline errors.
type ErrorCode int

const (
	// ErrCodeInvalidBody indicates the request body could not be serialized.
	ErrCodeInvalidBody ErrorCode = iota
	// ErrCodeInvalidEndpoint indicates the request URL could not be composed.
	ErrCodeInvalidEndpoint
	// ErrCodeTransport indicates a network-level failure (refused, DNS, timeout).
	ErrCodeTransport
	// ErrCodeInvalidResponse indicates the response could not be interpreted as HTTP.
	ErrCodeInvalidResponse
	// ErrCodeStatus indicates the server rejected the call with a non-2xx status.
	ErrCodeStatus
	// ErrCodeDecode indicates the response body did not match the expected shape.
	ErrCodeDecode
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeInvalidBody:
		return "invalid_body"
	case ErrCodeInvalidEndpoint:
		return "invalid_endpoint"
	case ErrCodeTransport:
		return "transport"
	case ErrCodeInvalidResponse:
		return "invalid_response"
	case ErrCodeStatus:
		return "status"
	case ErrCodeDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is a structured pipeline error with classification.
//
// Construction-time errors (invalid_body, invalid_endpoint) are produced
// without touching the network, so callers can validate inputs cheaply
// before incurring I/O.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the HTTP status code (0 unless Code is ErrCodeStatus).
	StatusCode int
	// Message describes the error.
	Message string
	// Body is the original response body (may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewInvalidBodyError creates a body serialization error.
func NewInvalidBodyError(err error) *Error {
	return &Error{Code: ErrCodeInvalidBody, Message: err.Error(), Err: err}
}

// NewInvalidEndpointError creates a URL composition error.
func NewInvalidEndpointError(err error) *Error {
	return &Error{Code: ErrCodeInvalidEndpoint, Message: err.Error(), Err: err}
}

// NewTransportError creates a network-level error. The adapter's error is
// carried through opaquely.
func NewTransportError(err error) *Error {
	return &Error{Code: ErrCodeTransport, Message: err.Error(), Err: err}
}

// NewInvalidResponseError creates an uninterpretable-response error.
func NewInvalidResponseError(msg string) *Error {
	return &Error{Code: ErrCodeInvalidResponse, Message: msg}
}

// NewStatusError creates a server-rejection error carrying the status code.
func NewStatusError(statusCode int, body []byte) *Error {
	return &Error{
		Code:       ErrCodeStatus,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
	}
}

// NewDecodeError creates a shape-mismatch error preserving the decoder's
// diagnostic.
func NewDecodeError(err error) *Error {
	return &Error{Code: ErrCodeDecode, Message: err.Error(), Err: err}
}

// IsInvalidBody checks if an error is a body serialization error.
func IsInvalidBody(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInvalidBody
}

// IsInvalidEndpoint checks if an error is a URL composition error.
func IsInvalidEndpoint(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInvalidEndpoint
}

// IsTransport checks if an error is a network-level error.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTransport
}

// IsInvalidResponse checks if an error is an uninterpretable-response error.
func IsInvalidResponse(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInvalidResponse
}

// IsStatus checks if an error is a server-rejection error.
func IsStatus(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeStatus
}

// IsDecode checks if an error is a shape-mismatch error.
func IsDecode(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeDecode
}

// StatusCodeOf returns the HTTP status code carried by a server-rejection
// error, or 0 if err is not one.
func StatusCodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Code == ErrCodeStatus {
		return e.StatusCode
	}
	return 0
}
