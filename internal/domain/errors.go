// Package domain holds the task entity and the domain errors.
package domain

import "errors"

// ErrValidation reports that an entity violated one of its rules. Callers
// wrap it with the message describing the rule that failed.
var ErrValidation = errors.New("validation failed")
