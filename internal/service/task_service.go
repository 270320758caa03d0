package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Vitorsj90/Minha-API/internal/domain"
	"github.com/Vitorsj90/Minha-API/internal/platform/logger"
	"github.com/Vitorsj90/Minha-API/internal/store"
)

// TaskServiceError tags a failed service call with the operation that
// failed, keeping the underlying error reachable for errors.Is.
type TaskServiceError struct {
	Operation string
	Message   string
	Err       error
}

func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap keeps the wrapped error visible to errors.Is and errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError builds a TaskServiceError around err.
func NewTaskServiceError(operation, message string, err error) *TaskServiceError {
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// TaskPatch carries the fields of a partial task update. Nil fields are
// left untouched by UpdateTask; non-nil fields replace the stored values.
// The task ID is never part of a patch and can never be altered.
type TaskPatch struct {
	Titulo    *string
	Descricao *string
	Concluida *bool
}

// TaskService exposes the application-level task operations the HTTP
// layer calls into.
type TaskService interface {
	// CreateTask creates a new task with a generated ID and appends it to
	// the collection. Returns the created task.
	CreateTask(ctx context.Context, titulo, descricao string, concluida bool) (*domain.Task, error)

	// ListTasks returns tasks in insertion order. A nil concluida returns
	// every task; otherwise the literal "true" selects completed tasks and
	// any other value selects incomplete ones.
	ListTasks(ctx context.Context, concluida *string) ([]*domain.Task, error)

	// GetTask retrieves a task by its ID.
	GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// UpdateTask merges the non-nil patch fields over the stored task and
	// persists the result. Returns the updated task.
	UpdateTask(ctx context.Context, id uuid.UUID, patch TaskPatch) (*domain.Task, error)

	// CompleteTask marks a task as concluded. Completing an already
	// concluded task succeeds and leaves it concluded.
	CompleteTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// DeleteTask removes a task from the collection.
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

// taskServiceImpl is the TaskService backed by a store.TaskStore.
type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService builds the service on top of taskStore. The store is
// required; a nil logger falls back to the process default.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, fmt.Errorf("%w: task store cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask builds a domain task with a fresh UUID and appends it to
// the store.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	titulo, descricao string,
	concluida bool,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(titulo, descricao, concluida)
	if err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()))
		return nil, NewTaskServiceError("create_task", "invalid task data", err)
	}

	if err := s.taskStore.Append(ctx, task); err != nil {
		log.Error("failed to append task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("titulo", task.Titulo))
	return task, nil
}

// ListTasks returns tasks in insertion order, optionally narrowed by the
// concluida filter value.
func (s *taskServiceImpl) ListTasks(ctx context.Context, concluida *string) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	filter := store.ListFilter{}
	if concluida != nil {
		// Only the literal "true" selects completed tasks; any other
		// present value selects incomplete ones.
		completed := *concluida == "true"
		filter.Completed = &completed
	}

	tasks, err := s.taskStore.List(ctx, filter)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()))
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}

	log.Debug("tasks listed", slog.Int("count", len(tasks)))
	return tasks, nil
}

// GetTask fetches a single task, translating a store miss into
// ErrTaskNotFound.
func (s *taskServiceImpl) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found", slog.String("task_id", id.String()))
			return nil, NewTaskServiceError("get_task", "task not found", ErrTaskNotFound)
		}

		log.Error("failed to retrieve task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}

	return task, nil
}

// UpdateTask merges the non-nil patch fields over the stored task, keeping
// the ID and the task's position in the insertion order.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id uuid.UUID,
	patch TaskPatch,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found during update", slog.String("task_id", id.String()))
			return nil, NewTaskServiceError("update_task", "task not found", ErrTaskNotFound)
		}

		log.Error("failed to load task for update",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, NewTaskServiceError("update_task", "failed to load task", err)
	}

	if patch.Titulo != nil {
		task.Titulo = *patch.Titulo
	}
	if patch.Descricao != nil {
		task.Descricao = *patch.Descricao
	}
	if patch.Concluida != nil {
		task.Concluida = *patch.Concluida
	}

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, NewTaskServiceError("update_task", "invalid task data", err)
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found during update", slog.String("task_id", id.String()))
			return nil, NewTaskServiceError("update_task", "task not found", ErrTaskNotFound)
		}

		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, NewTaskServiceError("update_task", "failed to save task", err)
	}

	log.Info("task updated", slog.String("task_id", id.String()))
	return task, nil
}

// CompleteTask marks the task as concluded. The operation is idempotent:
// completing a task that is already concluded succeeds and changes nothing.
func (s *taskServiceImpl) CompleteTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found during complete", slog.String("task_id", id.String()))
			return nil, NewTaskServiceError("complete_task", "task not found", ErrTaskNotFound)
		}

		log.Error("failed to load task for complete",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, NewTaskServiceError("complete_task", "failed to load task", err)
	}

	task.Complete()

	if err := s.taskStore.Update(ctx, task); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found during complete", slog.String("task_id", id.String()))
			return nil, NewTaskServiceError("complete_task", "task not found", ErrTaskNotFound)
		}

		log.Error("failed to save completed task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, NewTaskServiceError("complete_task", "failed to save task", err)
	}

	log.Info("task completed", slog.String("task_id", id.String()))
	return task, nil
}

// DeleteTask removes the task from the collection.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.Remove(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("task not found during delete", slog.String("task_id", id.String()))
			return NewTaskServiceError("delete_task", "task not found", ErrTaskNotFound)
		}

		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted", slog.String("task_id", id.String()))
	return nil
}
