// internal/app/store/projects/errors.go
package projectstore

import (
	"errors"
	"fmt"
)

// Load operations reported in LoadError.Op.
const (
	OpFetch    = "fetch"
	OpDecode   = "decode"
	OpValidate = "validate"
)

// LoadError is the single failure kind of a project load. Network errors,
// non-success statuses, timeouts and malformed payloads all collapse into it;
// the original cause is kept for logging and errors.Is/As.
type LoadError struct {
	Op    string
	Cause error
}

func (e *LoadError) Error() string {
	if e.Cause == nil {
		return "projects " + e.Op + " failed"
	}
	return fmt.Sprintf("projects %s failed: %v", e.Op, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// Message is the text shown to visitors when the gallery cannot load.
func (e *LoadError) Message() string {
	if e.Cause == nil {
		return "Failed to load projects"
	}
	return "Failed to load projects: " + e.Cause.Error()
}

// StatusError reports a non-2xx response from an HTTP source.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// AsLoadError returns err as a *LoadError, wrapping it under op if needed.
func AsLoadError(op string, err error) *LoadError {
	if err == nil {
		return nil
	}
	var le *LoadError
	if errors.As(err, &le) {
		return le
	}
	return &LoadError{Op: op, Cause: err}
}
