package errs

import (
	"errors"
	"fmt"
)

// ErrPersistence is the sentinel error for infrastructure-level storage
// failures. It marks errors that are fatal to the current request but carry
// no business meaning, as opposed to validation or authorization denials.
var ErrPersistence = errors.New("persistence failure")

// PersistenceError reports a storage-layer failure during the named operation.
type PersistenceError struct {
	Op    string
	Cause error
}

// NewPersistenceError creates a PersistenceError for the given operation
// wrapping the storage failure that triggered it.
func NewPersistenceError(op string, cause error) *PersistenceError {
	return &PersistenceError{
		Op:    op,
		Cause: cause,
	}
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrPersistence, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPersistence, e.Op))
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistence
}
