package api

// Common request structures
//
// The payload fields are pointers so "absent" stays distinguishable from a
// zero value: a pointer to false or to an empty string is present and passes
// the required rule. Field order fixes which violation is reported when
// several fields fail at once (titulo, then descricao, then concluida).

// CreateTaskRequest defines the payload for the task creation endpoint.
type CreateTaskRequest struct {
	Titulo    *string `json:"titulo"    validate:"required,min=3"`
	Descricao *string `json:"descricao" validate:"required"`
	Concluida *bool   `json:"concluida" validate:"required"`
}

// UpdateTaskRequest defines the payload for the task update endpoint. The
// contract matches creation: every field must be present and valid.
type UpdateTaskRequest struct {
	Titulo    *string `json:"titulo"    validate:"required,min=3"`
	Descricao *string `json:"descricao" validate:"required"`
	Concluida *bool   `json:"concluida" validate:"required"`
}
