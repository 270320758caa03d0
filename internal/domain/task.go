package domain

import (
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"
)

// TituloMinLength is the minimum number of characters a task titulo must have.
const TituloMinLength = 3

// Validation failures a Task can report.
var (
	ErrEmptyTaskID    = errors.New("task ID cannot be empty")
	ErrTituloTooShort = errors.New("task titulo must have at least 3 characters")
)

// Task represents a single to-do item tracked by the API. The field names
// follow the Portuguese wire contract exposed to clients: titulo is the short
// title, descricao the free-form description, and concluida the completion
// flag. The ID is generated at creation time and never changes afterwards.
type Task struct {
	ID        uuid.UUID `json:"id"`
	Titulo    string    `json:"titulo"`
	Descricao string    `json:"descricao"`
	Concluida bool      `json:"concluida"`
}

// NewTask assembles a Task with a freshly generated ID and validates it
// before returning.
func NewTask(titulo, descricao string, concluida bool) (*Task, error) {
	task := &Task{
		ID:        uuid.New(),
		Titulo:    titulo,
		Descricao: descricao,
		Concluida: concluida,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate enforces the task rules: a non-nil ID and a titulo of at
// least TituloMinLength characters, counted in runes.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if utf8.RuneCountInString(t.Titulo) < TituloMinLength {
		return ErrTituloTooShort
	}

	// Descricao carries no constraint beyond being a string; an empty
	// description is a valid state. Concluida is a plain boolean.
	return nil
}

// Complete marks the task as done. Completing an already completed task
// leaves it completed, so the operation is safe to repeat.
func (t *Task) Complete() {
	t.Concluida = true
}
