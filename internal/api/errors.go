package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Vitorsj90/Minha-API/internal/api/shared"
	"github.com/Vitorsj90/Minha-API/internal/domain"
	"github.com/Vitorsj90/Minha-API/internal/service"
	"github.com/Vitorsj90/Minha-API/internal/store"
)

// MapErrorToStatusCode picks the HTTP status for an error coming out of the
// service or store layers. Anything unrecognized is a 500; the error itself
// never reaches the client.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrTaskNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrTituloTooShort),
		errors.Is(err, domain.ErrEmptyTaskID),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the fixed client-facing message for an error.
// The wire contract speaks Portuguese; raw error details never reach the
// client and go to the structured logs instead.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Erro interno do servidor."
	}

	switch {
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrTaskNotFound):
		return "Tarefa não encontrada."

	// Domain validation errors. These are normally caught at the request
	// boundary before the service runs; the mapping stays for the rare
	// path where the service re-validates a merged record.
	case errors.Is(err, domain.ErrTituloTooShort):
		return "O campo 'titulo' é obrigatório e deve ter no mínimo 3 caracteres."

	case errors.Is(err, domain.ErrEmptyTaskID),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Corpo da requisição inválido."

	default:
		return "Erro interno do servidor."
	}
}

// ValidationErrorMessage translates a request validation failure into the
// message of the first violated rule. The request structs declare their
// fields in contract order (titulo, descricao, concluida), so the first
// entry of a validator.ValidationErrors is the first violation.
func ValidationErrorMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldMessage(fieldErrs[0].Field())
	}
	return "Corpo da requisição inválido."
}

// DecodeErrorMessage translates a request body decode failure into a
// client-facing message. A type mismatch on a contract field reports that
// field's rule, the same message a missing field produces; any other
// malformed body gets the generic message.
func DecodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fieldMessage(typeErr.Field)
	}
	return "Corpo da requisição inválido."
}

// fieldMessage returns the fixed message for a field of the task payload
// contract. Validator errors carry the Go field name and decode errors the
// JSON key, so matching is case-insensitive.
func fieldMessage(field string) string {
	switch strings.ToLower(field) {
	case "titulo":
		return "O campo 'titulo' é obrigatório e deve ter no mínimo 3 caracteres."
	case "descricao":
		return "O campo 'descricao' é obrigatório e deve ser um texto."
	case "concluida":
		return "O campo 'concluida' é obrigatório e deve ser um booleano."
	default:
		return "Corpo da requisição inválido."
	}
}

// NotFoundHandler responds to unmatched routes. The router installs it for
// both unknown paths and known paths hit with an unsupported method, which
// the wire contract reports identically.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, "Rota não encontrada.")
}
