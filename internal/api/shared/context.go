// Package shared holds the helpers the HTTP handlers have in common:
// JSON decoding and validation of request bodies, JSON response writing,
// and the trace-ID plumbing that correlates responses with log entries.
package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"sync/atomic"
	"time"
)

// ContextKey is the type for context keys owned by this package.
type ContextKey string

// TraceIDKey is the context key under which the request trace ID is stored.
const TraceIDKey ContextKey = "traceID"

// TraceIDLength is the number of random bytes in a trace ID. Hex encoding
// doubles it on the wire: 16 bytes become 32 characters.
const TraceIDLength = 16

// SetTraceID returns a copy of ctx carrying a freshly generated trace ID.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, newTraceID())
}

// GetTraceID returns the trace ID stored in ctx, or "" when there is none.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// newTraceID produces a 32-character hex ID from crypto/rand. A failing
// random source is reported and degrades to the counter-based fallback;
// the function never returns a constant.
func newTraceID() string {
	b := make([]byte, TraceIDLength)
	if n, err := rand.Read(b); err != nil || n != TraceIDLength {
		slog.Error("trace ID generation fell back to counter mode",
			"error", err,
			"bytes_read", n)
		return fallbackTraceID()
	}
	return hex.EncodeToString(b)
}

// fallbackSeq distinguishes fallback IDs minted within the same nanosecond.
var fallbackSeq atomic.Uint64

// fallbackTraceID builds an ID from the current time and a process-wide
// counter. Not random, but unique within the process and still 32 hex
// characters, so downstream log tooling sees the usual shape.
func fallbackTraceID() string {
	b := make([]byte, TraceIDLength)
	binary.BigEndian.PutUint64(b[:8], uint64(time.Now().UnixNano()))
	binary.BigEndian.PutUint64(b[8:], fallbackSeq.Add(1))
	return hex.EncodeToString(b)
}
