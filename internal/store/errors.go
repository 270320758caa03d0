package store

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every store implementation.
var (
	// ErrNotFound reports that a requested entity does not exist. All
	// entity-specific lookup errors wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity reports that an entity was rejected before being
	// stored. The wrapped error carries the detail.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTaskNotFound reports that the requested tarefa does not exist.
	ErrTaskNotFound = fmt.Errorf("%w: tarefa", ErrNotFound)
)

// IsNotFoundError reports whether err is a "not found" error for any
// entity. The entity-specific variants all wrap ErrNotFound, so a single
// check covers them.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError carries the entity and operation context of a failed store
// call alongside the underlying error.
type StoreError struct {
	Entity    string
	Operation string
	Message   string
	Err       error
}

func (e *StoreError) Error() string {
	msg := fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError builds a StoreError for the given entity and operation,
// wrapping err when one is present.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
