// Package memory provides the in-memory implementation of the data access
// interfaces defined in the internal/store package. Tasks live in an ordered,
// mutex-guarded slice owned by a single process; nothing is written to disk
// or the network, and all state is lost when the process exits.
package memory
