package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Vitorsj90/Minha-API/internal/domain"
	"github.com/Vitorsj90/Minha-API/internal/platform/logger"
	"github.com/Vitorsj90/Minha-API/internal/store"
)

// MemoryTaskStore implements the store.TaskStore interface using an ordered
// in-process slice as the storage backend. A single RWMutex guards every
// read and write, so one instance can safely back concurrent HTTP handlers.
//
// The slice preserves insertion order: Append always places new tasks at the
// tail, Update replaces records in place, and Remove splices without
// reordering. Lookups are linear scans; the collection is expected to stay
// small enough that indexes would be wasted machinery.
type MemoryTaskStore struct {
	mu     sync.RWMutex
	tasks  []*domain.Task
	logger *slog.Logger
}

// NewMemoryTaskStore returns an empty store. A nil logger falls back to
// the process default.
func NewMemoryTaskStore(logger *slog.Logger) *MemoryTaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &MemoryTaskStore{
		tasks:  make([]*domain.Task, 0),
		logger: logger.With(slog.String("component", "task_store")),
	}
}

var _ store.TaskStore = (*MemoryTaskStore)(nil)

// cloneTask returns an independent copy of the given task. Task carries only
// value fields, so a shallow copy is a full clone.
func cloneTask(task *domain.Task) *domain.Task {
	clone := *task
	return &clone
}

// Append validates the task and adds it at the tail of the collection.
// A task whose ID is already held is rejected with store.ErrInvalidEntity.
func (s *MemoryTaskStore) Append(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during append",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.tasks {
		if existing.ID == task.ID {
			log.Warn("duplicate task ID during append",
				slog.String("task_id", task.ID.String()))
			return fmt.Errorf("%w: task with ID %s already exists",
				store.ErrInvalidEntity, task.ID)
		}
	}

	// Store a clone so later mutations of the caller's copy cannot reach in
	s.tasks = append(s.tasks, cloneTask(task))

	log.Debug("task appended",
		slog.String("task_id", task.ID.String()),
		slog.Int("total", len(s.tasks)))
	return nil
}

// GetByID returns a copy of the task with the given ID, or
// store.ErrTaskNotFound when no task has it.
func (s *MemoryTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, task := range s.tasks {
		if task.ID == id {
			return cloneTask(task), nil
		}
	}

	log.Debug("task not found", slog.String("task_id", id.String()))
	return nil, store.ErrTaskNotFound
}

// List returns the tasks matching the filter in insertion order. The result
// is always a non-nil slice so callers serialize an empty collection as [].
func (s *MemoryTaskStore) List(ctx context.Context, filter store.ListFilter) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if filter.Completed != nil && task.Concluida != *filter.Completed {
			continue
		}
		results = append(results, cloneTask(task))
	}

	return results, nil
}

// Update validates the incoming task and replaces the stored task that
// shares its ID, keeping the position in the insertion order. A missing
// task reports store.ErrTaskNotFound.
func (s *MemoryTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.tasks {
		if existing.ID == task.ID {
			s.tasks[i] = cloneTask(task)
			log.Debug("task updated", slog.String("task_id", task.ID.String()))
			return nil
		}
	}

	log.Debug("task not found during update", slog.String("task_id", task.ID.String()))
	return store.ErrTaskNotFound
}

// Remove splices the task with the given ID out of the collection,
// preserving the relative order of the remaining tasks. A missing task
// reports store.ErrTaskNotFound.
func (s *MemoryTaskStore) Remove(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, task := range s.tasks {
		if task.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			log.Debug("task removed",
				slog.String("task_id", id.String()),
				slog.Int("total", len(s.tasks)))
			return nil
		}
	}

	log.Debug("task not found during remove", slog.String("task_id", id.String()))
	return store.ErrTaskNotFound
}

// Len reports how many tasks the store currently holds.
func (s *MemoryTaskStore) Len(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tasks)
}
