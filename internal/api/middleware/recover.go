package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/Vitorsj90/Minha-API/internal/api/shared"
	"github.com/Vitorsj90/Minha-API/internal/platform/logger"
)

// RecoverMiddleware turns a handler panic into a 500 response with the API's
// JSON error shape instead of letting the connection die. The panic value and
// stack trace go to the logs; the client only ever sees the generic message.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				// http.ErrAbortHandler is the sentinel for deliberately
				// aborted responses; re-panic so the server handles it.
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log := logger.FromContext(r.Context())
				log.Error("panic recovered in handler",
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())))

				shared.RespondWithError(
					w,
					r,
					http.StatusInternalServerError,
					"Erro interno do servidor.",
				)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
