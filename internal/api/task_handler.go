package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Vitorsj90/Minha-API/internal/api/shared"
	"github.com/Vitorsj90/Minha-API/internal/domain"
	"github.com/Vitorsj90/Minha-API/internal/platform/logger"
	"github.com/Vitorsj90/Minha-API/internal/service"
)

// TaskResponse is the wire form of a task.
type TaskResponse struct {
	ID        string `json:"id"`
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	Concluida bool   `json:"concluida"`
}

// TaskHandler serves the /tarefas endpoints.
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler returns a handler for the task routes.
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: a nil logger is a wiring bug caught at startup
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// CreateTask serves POST /tarefas: a valid payload becomes a stored task
// answered with 201.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	// Request-scoped logger when the trace middleware stored one
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, DecodeErrorMessage(err))
		return
	}

	// Validate request: the first violated rule is reported, nothing else
	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, ValidationErrorMessage(err))
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), *req.Titulo, *req.Descricao, *req.Concluida)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)

		// Raw error to the logs, fixed message to the client
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("task created", slog.String("task_id", task.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks serves GET /tarefas. An absent concluida query returns every
// task; a present one narrows the listing by completion state.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// Presence matters here: ?concluida= carries an empty value, which still
	// selects the incomplete branch, while no parameter at all selects all.
	var concluida *string
	if r.URL.Query().Has("concluida") {
		value := r.URL.Query().Get("concluida")
		concluida = &value
	}

	tasks, err := h.taskService.ListTasks(r.Context(), concluida)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("tasks listed", slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask serves GET /tarefas/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// Path IDs are opaque: a value that cannot name any stored task is the
	// same not-found as an absent one, never a bad request.
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Debug("malformed task id in path", slog.String("id", chi.URLParam(r, "id")))
		shared.RespondWithError(w, r, http.StatusNotFound, "Tarefa não encontrada.")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("task retrieved", slog.String("task_id", task.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask serves PUT /tarefas/{id}. The payload is validated before the
// task is looked up, so an invalid body reports the violation even when the
// id matches nothing.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, DecodeErrorMessage(err))
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, ValidationErrorMessage(err))
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Debug("malformed task id in path", slog.String("id", chi.URLParam(r, "id")))
		shared.RespondWithError(w, r, http.StatusNotFound, "Tarefa não encontrada.")
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, service.TaskPatch{
		Titulo:    req.Titulo,
		Descricao: req.Descricao,
		Concluida: req.Concluida,
	})
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("task updated", slog.String("task_id", task.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// CompleteTask serves PATCH /tarefas/{id}/concluir. Completing an already
// concluded task succeeds with the same result.
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Debug("malformed task id in path", slog.String("id", chi.URLParam(r, "id")))
		shared.RespondWithError(w, r, http.StatusNotFound, "Tarefa não encontrada.")
		return
	}

	task, err := h.taskService.CompleteTask(r.Context(), id)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("task completed", slog.String("task_id", task.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask serves DELETE /tarefas/{id} and answers 204 with no body.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Debug("malformed task id in path", slog.String("id", chi.URLParam(r, "id")))
		shared.RespondWithError(w, r, http.StatusNotFound, "Tarefa não encontrada.")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("task deleted", slog.String("task_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// taskToResponse maps a stored task onto its wire form.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID.String(),
		Titulo:    task.Titulo,
		Descricao: task.Descricao,
		Concluida: task.Concluida,
	}
}

// tasksToResponse converts a task slice, keeping order. The result is never
// nil so an empty collection serializes as a JSON array.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, taskToResponse(task))
	}
	return responses
}
