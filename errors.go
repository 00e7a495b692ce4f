package fakesmith

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to check.
var (
	ErrUnknownTool     = errors.New("unknown tool")
	ErrUnsupportedType = errors.New("unsupported field type")
	ErrValidation      = errors.New("validation failed")
)

// RequestError is a request-level failure: the whole call aborts and the
// host receives the failure envelope. Reason is the message surfaced to the
// host; keep it human-readable, never an internal fault code.
// Err optionally wraps a sentinel (e.g. ErrValidation) for errors.Is/errors.As.
type RequestError struct {
	Reason string
	Err    error
}

func (e *RequestError) Error() string { return e.Reason }

// Unwrap supports errors.Is/errors.As on wrapped chains.
func (e *RequestError) Unwrap() error { return e.Err }

// UnsupportedTypeError is a field-level failure: the dispatcher could not
// resolve a type tag. It never aborts a request; the field degrades to null.
type UnsupportedTypeError struct {
	Tag string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported field type %q", e.Tag)
}

func (e *UnsupportedTypeError) Unwrap() error { return ErrUnsupportedType }

// IsRequestError returns true if err is or wraps a RequestError, i.e. the
// failure aborts the whole call rather than a single field.
func IsRequestError(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}

// wrapDecodeError returns a RequestError for malformed argument bags so
// decode failures surface consistently across the three tools.
func wrapDecodeError(err error) error {
	return &RequestError{Reason: "malformed arguments: " + err.Error(), Err: ErrValidation}
}

// panicError wraps a recovered panic value from a generator; used by the
// dispatcher's per-field recovery.
type panicError struct{ p any }

func (e *panicError) Error() string {
	return "panic: " + fmt.Sprint(e.p)
}
