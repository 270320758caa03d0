package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// ErrorResponse is the error envelope of the wire contract: a single
// Portuguese "erro" field. The status code and trace ID ride along for
// logging and are never serialized.
type ErrorResponse struct {
	Erro    string `json:"erro"`
	Code    int    `json:"-"`
	TraceID string `json:"-"`
}

// RespondWithJSON writes data as a JSON response with the given status.
// The status line is already sent when encoding runs, so an encode failure
// can only be logged, not turned into a different response.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response",
			"error", err,
			"path", r.URL.Path)
	}
}

// RespondWithError writes the standard error envelope for a request the
// handler rejected itself (validation failures, unknown routes, malformed
// IDs). Rejections are expected traffic and log at DEBUG.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("rejecting request",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{
		Erro:    message,
		Code:    status,
		TraceID: traceID,
	})
}

// RespondWithErrorAndLog writes the error envelope for a failure reported
// by a lower layer. The client sees only userMessage; err and its type go
// to the structured logs, at ERROR for 5xx responses and DEBUG otherwise.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	attrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.LogAttrs(r.Context(), level, "request failed", attrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Erro:    userMessage,
		Code:    status,
		TraceID: traceID,
	})
}
