package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Vitorsj90/Minha-API/internal/api"
	apiMiddleware "github.com/Vitorsj90/Minha-API/internal/api/middleware"
	"github.com/Vitorsj90/Minha-API/internal/api/shared"
)

// setupRouter assembles the chi router: middleware chain, task routes,
// health check, and the shared fallback handlers.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Trace runs before recovery so recovered panics still log with the
	// request's trace ID.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.RecoverMiddleware)

	taskHandler := api.NewTaskHandler(app.taskService, app.logger)

	r.Route("/tarefas", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Get("/{id}", taskHandler.GetTask)
		r.Put("/{id}", taskHandler.UpdateTask)
		r.Patch("/{id}/concluir", taskHandler.CompleteTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
	})

	// Liveness probe, also reporting the current collection size.
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithJSON(w, req, http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"tarefas": app.taskStore.Len(req.Context()),
		})
	})

	// Unknown paths and known paths hit with an unsupported method share
	// the same wire shape.
	r.NotFound(api.NotFoundHandler)
	r.MethodNotAllowed(api.NotFoundHandler)

	return r
}
