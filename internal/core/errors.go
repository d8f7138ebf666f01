package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProcess   = errors.New("invalid process")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrInvalidQuantum   = errors.New("invalid time quantum")
)

// ValidationError reports the input field that made a request unschedulable.
// Index is the position in the submitted process list, or -1 for request-level fields.
type ValidationError struct {
	Kind   error
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("processes[%d].%s: %s", e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func InvalidProcess(index int, field, reason string) *ValidationError {
	return &ValidationError{Kind: ErrInvalidProcess, Index: index, Field: field, Reason: reason}
}

func UnknownAlgorithm(reason string) *ValidationError {
	return &ValidationError{Kind: ErrUnknownAlgorithm, Index: -1, Field: "algorithm", Reason: reason}
}

func InvalidQuantum(reason string) *ValidationError {
	return &ValidationError{Kind: ErrInvalidQuantum, Index: -1, Field: "timeQuantum", Reason: reason}
}

// IsValidationError reports whether err is one of the client-side error kinds.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidProcess) ||
		errors.Is(err, ErrUnknownAlgorithm) ||
		errors.Is(err, ErrInvalidQuantum)
}
