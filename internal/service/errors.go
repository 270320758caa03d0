// Package service provides application-level services for managing tasks.
package service

import "errors"

// Sentinel errors for expected negative results. Callers test them with
// errors.Is; unexpected failures travel as *TaskServiceError instead, and
// the API layer translates both into HTTP status codes.
var (
	// ErrTaskNotFound reports that the requested task does not exist.
	// The API layer maps it to HTTP 404.
	ErrTaskNotFound = errors.New("task not found")
)
