package domain

import (
	"errors"
	"fmt"
	"time"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Progress errors
	ErrMsgProgressUnavailable = "could not calculate level progress"
	ErrMsgInvalidLevel        = "level is not an integer"
	ErrMsgValueOutOfRange     = "integer is outside the int64 range"

	// Upstream player-info errors
	ErrMsgUpstreamStatus     = "player info service returned a non-200 status"
	ErrMsgUpstreamEmpty      = "player info service returned an empty body"
	ErrMsgUpstreamTimeout    = "player info service timed out"
	ErrMsgUpstreamUnexpected = "unexpected player info error"
)

var (
	// ErrProgressUnavailable is returned when a level/exp pair cannot be placed in the level table
	ErrProgressUnavailable = errors.New(ErrMsgProgressUnavailable)
	// ErrInvalidLevel is returned when a level value cannot be read as an integer
	ErrInvalidLevel = errors.New(ErrMsgInvalidLevel)
	// ErrValueOutOfRange is returned with a clamped value when an integer does not fit in int64
	ErrValueOutOfRange = errors.New(ErrMsgValueOutOfRange)

	ErrUpstreamStatus  = errors.New(ErrMsgUpstreamStatus)
	ErrUpstreamEmpty   = errors.New(ErrMsgUpstreamEmpty)
	ErrUpstreamTimeout = errors.New(ErrMsgUpstreamTimeout)
)

// UpstreamTimeoutError reports a player info request that ran past its deadline.
// It matches ErrUpstreamTimeout with errors.Is.
type UpstreamTimeoutError struct {
	Timeout time.Duration
}

func (e *UpstreamTimeoutError) Error() string {
	return fmt.Sprintf("%s after %s", ErrMsgUpstreamTimeout, e.Timeout)
}

func (e *UpstreamTimeoutError) Is(target error) bool {
	return target == ErrUpstreamTimeout
}

// UpstreamError wraps any player info failure that is not a status, empty-body
// or timeout failure. Err carries the detail shown to API callers.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return ErrMsgUpstreamUnexpected + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
