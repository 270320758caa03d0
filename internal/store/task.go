package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/Vitorsj90/Minha-API/internal/domain"
)

// ListFilter narrows the tasks returned by TaskStore.List.
// A nil Completed selects every task; otherwise only tasks whose concluida
// flag equals *Completed are returned.
type ListFilter struct {
	Completed *bool
}

// TaskStore is the ordered task collection the service operates on.
// Implementations own the Task instances they hold: they store copies of
// what callers pass in and hand out copies of what they hold, so callers
// can never mutate a stored record through a retained pointer.
type TaskStore interface {
	// Append adds a task at the tail of the collection. The task arrives
	// with its ID already set and must satisfy the domain rules.
	Append(ctx context.Context, task *domain.Task) error

	// GetByID looks up the task carrying the given ID and reports
	// ErrTaskNotFound when there is none.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// List returns the tasks matching the filter, in insertion order.
	// An empty collection (or a filter matching nothing) yields an empty,
	// non-nil slice.
	List(ctx context.Context, filter ListFilter) ([]*domain.Task, error)

	// Update replaces the stored task that has the same ID, keeping its
	// position in the insertion order. A missing ID reports ErrTaskNotFound.
	Update(ctx context.Context, task *domain.Task) error

	// Remove deletes the task with the given ID; the remaining tasks keep
	// their relative order. A missing ID reports ErrTaskNotFound.
	Remove(ctx context.Context, id uuid.UUID) error

	// Len reports the number of tasks currently held.
	Len(ctx context.Context) int
}
