package content

import (
	"fmt"
)

// ValidationError reports a missing or malformed request field. Maps to
// HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an unknown resource such as a job name. Maps to
// HTTP 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFoundError builds a NotFoundError from a format string.
func NewNotFoundError(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError wraps a failure from an external API. Maps to HTTP 500;
// the message is sanitized outside development.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// NewUpstreamError wraps err with the upstream service name.
func NewUpstreamError(service string, err error) *UpstreamError {
	return &UpstreamError{Service: service, Err: err}
}

// RateLimitError signals that a client exceeded the request budget. Maps
// to HTTP 429 with a fixed message.
type RateLimitError struct{}

func (e *RateLimitError) Error() string {
	return "too many requests, please try again later"
}

// MissingTopicError is raised before any generation step when no topic was
// supplied and discovery is disabled or produced nothing. Validation
// family, maps to HTTP 400.
type MissingTopicError struct{}

func (e *MissingTopicError) Error() string {
	return "no topic provided and trend discovery did not produce one"
}
