package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel outcomes returned by the store services. Both are expected
// results the caller handles, not process-fatal conditions.
var (
	// ErrInvalidInput marks caller-supplied data that violates basic shape
	// rules: empty fields, non-numeric settings, inverted length bounds.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a lookup for a credential name that is absent.
	ErrNotFound = errors.New("not found")
)

// PolicyError reports a secret rejected by the active policy. It carries
// every violated rule so the caller can render complete feedback.
type PolicyError struct {
	Violations []ViolationKind
}

func (e *PolicyError) Error() string {
	kinds := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		kinds[i] = string(v)
	}
	return fmt.Sprintf("secret violates policy: %s", strings.Join(kinds, ", "))
}

// StorageError reports a failed persistence operation. The in-memory state
// the caller observed before the operation is still in effect: services
// roll back (or never apply) mutations whose write did not complete.
type StorageError struct {
	Op  string // the operation that required the write, e.g. "add credential"
	Err error  // underlying cause
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
