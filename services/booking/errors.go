package booking

import (
	"errors"
	"fmt"
)

// ErrNotFound signals an operation referencing an appointment id that does
// not exist. Never fatal; handlers translate it to a 404.
var ErrNotFound = errors.New("appointment not found")

// ValidationError rejects a request before it reaches the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// StoreError wraps a backing-store failure. Callers degrade to a cached or
// default view rather than crash; no retry or queueing happens here.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStoreUnavailable reports whether err is a StoreError.
func IsStoreUnavailable(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
