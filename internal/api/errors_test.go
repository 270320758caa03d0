package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vitorsj90/Minha-API/internal/api/shared"
	"github.com/Vitorsj90/Minha-API/internal/domain"
	"github.com/Vitorsj90/Minha-API/internal/service"
	"github.com/Vitorsj90/Minha-API/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "nil_error",
			err:        nil,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "service_not_found",
			err:        service.ErrTaskNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "store_not_found",
			err:        store.ErrTaskNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "wrapped_not_found",
			err:        fmt.Errorf("lookup failed: %w", service.ErrTaskNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name: "service_error_wrapping_not_found",
			err: service.NewTaskServiceError(
				"get_task",
				"task not found",
				service.ErrTaskNotFound,
			),
			wantStatus: http.StatusNotFound,
		},
		{
			name: "deeply_nested_store_not_found",
			err: fmt.Errorf(
				"outer: %w",
				store.NewStoreError("tarefa", "get", "lookup failed", store.ErrTaskNotFound),
			),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "titulo_too_short",
			err:        domain.ErrTituloTooShort,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrapped_domain_validation",
			err:        fmt.Errorf("%w: task store cannot be nil", domain.ErrValidation),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid_entity",
			err:        store.ErrInvalidEntity,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown_error",
			err:        errors.New("unknown error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{
			name:        "nil_error",
			err:         nil,
			wantMessage: "Erro interno do servidor.",
		},
		{
			name:        "service_not_found",
			err:         service.ErrTaskNotFound,
			wantMessage: "Tarefa não encontrada.",
		},
		{
			name: "service_error_wrapping_not_found",
			err: service.NewTaskServiceError(
				"delete_task",
				"task not found",
				service.ErrTaskNotFound,
			),
			wantMessage: "Tarefa não encontrada.",
		},
		{
			name:        "titulo_too_short",
			err:         domain.ErrTituloTooShort,
			wantMessage: "O campo 'titulo' é obrigatório e deve ter no mínimo 3 caracteres.",
		},
		{
			name:        "generic_domain_validation",
			err:         fmt.Errorf("%w: bad payload", domain.ErrValidation),
			wantMessage: "Corpo da requisição inválido.",
		},
		{
			name:        "unknown_error",
			err:         errors.New("task collection corrupted"),
			wantMessage: "Erro interno do servidor.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := GetSafeErrorMessage(tt.err)
			assert.Equal(t, tt.wantMessage, message)

			// Verify no internal details leak into the client message
			if tt.err != nil && tt.wantMessage == "Erro interno do servidor." {
				assert.NotContains(t, message, tt.err.Error(),
					"client message should not contain the raw error")
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	tests := []struct {
		name        string
		request     CreateTaskRequest
		wantMessage string
	}{
		{
			name:        "all_fields_missing_reports_titulo",
			request:     CreateTaskRequest{},
			wantMessage: "O campo 'titulo' é obrigatório e deve ter no mínimo 3 caracteres.",
		},
		{
			name: "titulo_too_short",
			request: CreateTaskRequest{
				Titulo:    strPtr("ab"),
				Descricao: strPtr("texto"),
				Concluida: boolPtr(false),
			},
			wantMessage: "O campo 'titulo' é obrigatório e deve ter no mínimo 3 caracteres.",
		},
		{
			name: "missing_descricao",
			request: CreateTaskRequest{
				Titulo:    strPtr("Comprar leite"),
				Concluida: boolPtr(false),
			},
			wantMessage: "O campo 'descricao' é obrigatório e deve ser um texto.",
		},
		{
			name: "missing_concluida",
			request: CreateTaskRequest{
				Titulo:    strPtr("Comprar leite"),
				Descricao: strPtr("integral"),
			},
			wantMessage: "O campo 'concluida' é obrigatório e deve ser um booleano.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := shared.ValidateRequest(tt.request)
			require.Error(t, err)

			assert.Equal(t, tt.wantMessage, ValidationErrorMessage(err))
		})
	}

	t.Run("non_validator_error", func(t *testing.T) {
		message := ValidationErrorMessage(errors.New("not a field error"))
		assert.Equal(t, "Corpo da requisição inválido.", message)
	})
}

func TestDecodeErrorMessage(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			name:        "titulo_wrong_type",
			body:        `{"titulo": 123, "descricao": "texto", "concluida": true}`,
			wantMessage: "O campo 'titulo' é obrigatório e deve ter no mínimo 3 caracteres.",
		},
		{
			name:        "descricao_wrong_type",
			body:        `{"titulo": "Comprar leite", "descricao": 5, "concluida": true}`,
			wantMessage: "O campo 'descricao' é obrigatório e deve ser um texto.",
		},
		{
			name:        "concluida_wrong_type",
			body:        `{"titulo": "Comprar leite", "descricao": "texto", "concluida": "sim"}`,
			wantMessage: "O campo 'concluida' é obrigatório e deve ser um booleano.",
		},
		{
			name:        "malformed_json",
			body:        `{"titulo": "Comprar leite"`,
			wantMessage: "Corpo da requisição inválido.",
		},
		{
			name:        "empty_body",
			body:        ``,
			wantMessage: "Corpo da requisição inválido.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateTaskRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			require.Error(t, err)

			assert.Equal(t, tt.wantMessage, DecodeErrorMessage(err))
		})
	}
}

func TestNotFoundHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/rota/desconhecida", nil)
	w := httptest.NewRecorder()

	NotFoundHandler(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]interface{}{"erro": "Rota não encontrada."}, body)
}
