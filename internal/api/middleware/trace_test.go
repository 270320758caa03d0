package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vitorsj90/Minha-API/internal/api/shared"
	"github.com/Vitorsj90/Minha-API/internal/platform/logger"
)

func TestTraceMiddleware(t *testing.T) {
	var capturedTraceID string
	var capturedLogger *slog.Logger

	// Handler that records what the middleware put in the context
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedTraceID = shared.GetTraceID(r.Context())
		capturedLogger = logger.FromContextOrDefault(r.Context(), nil)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/tarefas", nil)
	w := httptest.NewRecorder()

	TraceMiddleware(inner).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// A trace ID was generated and made available to the handler
	require.NotEmpty(t, capturedTraceID)
	assert.Len(t, capturedTraceID, 32)

	// A request-scoped logger was stored in the context
	assert.NotNil(t, capturedLogger)
}

func TestTraceMiddlewareUniquePerRequest(t *testing.T) {
	seen := make(map[string]bool)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[shared.GetTraceID(r.Context())] = true
	})

	handler := TraceMiddleware(inner)

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/tarefas", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Len(t, seen, 10, "each request should get its own trace ID")
}
