package middleware

import (
	"log/slog"
	"net/http"

	"github.com/Vitorsj90/Minha-API/internal/api/shared"
	"github.com/Vitorsj90/Minha-API/internal/platform/logger"
)

// TraceMiddleware stamps each request with a trace ID and stores a
// request-scoped logger carrying it in the context, so every layer this
// request reaches logs with the same correlation field. It must run early
// in the chain, ahead of anything that logs.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		log := slog.With(slog.String("trace_id", shared.GetTraceID(ctx)))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
