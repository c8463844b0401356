// Package apierrors provides shared error types for the Triumph client.
package apierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrHTTPStatus is matched by every HTTPStatusError.
	ErrHTTPStatus = errors.New("request failed with non-2xx status")

	// ErrNoResponse is returned when a request was sent but no response arrived.
	ErrNoResponse = errors.New("no response received")

	// ErrRequestSetup is returned when a request could not be constructed.
	ErrRequestSetup = errors.New("request setup failed")

	// ErrResponseDecode is returned when a decrypted response is not valid JSON.
	ErrResponseDecode = errors.New("unknown response error")

	// ErrUnauthorized is returned for 401 and 403 responses.
	ErrUnauthorized = errors.New("unauthorized organization or API key")

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// HTTPStatusError is returned when the server answered with a non-2xx status.
type HTTPStatusError struct {
	StatusCode int
	StatusText string
}

func (e *HTTPStatusError) Error() string {
	if e.StatusText != "" {
		return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.StatusText)
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// TriumphError implements the TriumphError interface.
func (e *HTTPStatusError) TriumphError() {}

// Is implements errors.Is for sentinel error matching.
func (e *HTTPStatusError) Is(target error) bool {
	if target == ErrHTTPStatus {
		return true
	}
	switch e.StatusCode {
	case 401, 403:
		return target == ErrUnauthorized
	case 404:
		return target == ErrNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NoResponseError is returned when a request was dispatched but the
// transport produced no response (connection refused, timeout, cancellation).
type NoResponseError struct {
	Err error
}

func (e *NoResponseError) Error() string {
	if e.Err == nil {
		return "request failed: no response received"
	}
	return fmt.Sprintf("request failed: no response received: %v", e.Err)
}

// TriumphError implements the TriumphError interface.
func (e *NoResponseError) TriumphError() {}

// Unwrap returns the underlying error.
func (e *NoResponseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *NoResponseError) Is(target error) bool {
	return target == ErrNoResponse
}

// RequestSetupError is returned when the request could not be built.
type RequestSetupError struct {
	Message string
	Err     error
}

func (e *RequestSetupError) Error() string {
	return fmt.Sprintf("request setup failed: %s", e.Message)
}

// TriumphError implements the TriumphError interface.
func (e *RequestSetupError) TriumphError() {}

// Unwrap returns the underlying error.
func (e *RequestSetupError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *RequestSetupError) Is(target error) bool {
	return target == ErrRequestSetup
}

// ResponseDecodeError is returned when a decrypted response body cannot be
// parsed as JSON.
type ResponseDecodeError struct {
	Err error
}

func (e *ResponseDecodeError) Error() string {
	return fmt.Sprintf("unknown response error: %v", e.Err)
}

// TriumphError implements the TriumphError interface.
func (e *ResponseDecodeError) TriumphError() {}

// Unwrap returns the underlying error.
func (e *ResponseDecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *ResponseDecodeError) Is(target error) bool {
	return target == ErrResponseDecode
}

// EnvelopeError wraps a failure to open a response envelope. The wrapped
// error is one of the crypto package sentinels.
type EnvelopeError struct {
	Err error
}

func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("response envelope: %v", e.Err)
}

// TriumphError implements the TriumphError interface.
func (e *EnvelopeError) TriumphError() {}

// Unwrap returns the underlying error.
func (e *EnvelopeError) Unwrap() error {
	return e.Err
}
