package domain

import "errors"

// ErrNotFound signals a lookup of a nonexistent id.
var ErrNotFound = errors.New("not found")

// ValidationError rejects a write before anything is persisted: a role
// mismatch or a missing referenced entity.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ConstraintError wraps a store-level uniqueness or foreign-key failure
// that explicit validation did not already catch.
type ConstraintError struct {
	Err error
}

func (e *ConstraintError) Error() string { return "constraint violation: " + e.Err.Error() }

func (e *ConstraintError) Unwrap() error { return e.Err }
