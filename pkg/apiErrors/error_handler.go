package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API. O motor do dashboard nunca falha (degrada para
// zero); os erros aqui cobrem apenas a borda HTTP.
const (
	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrDatasetTooLarge     = "VAL_004" // Dataset excede o limite de linhas

	// Erros de recurso (RES)
	ErrDashboardNotFound = "RES_001" // Dashboard não encontrado
	ErrUnknownColumn     = "RES_002" // Coluna inexistente no dataset

	// Erros do servidor (SRV)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrDatasetTooLarge:     http.StatusRequestEntityTooLarge,
	ErrDashboardNotFound:   http.StatusNotFound,
	ErrUnknownColumn:       http.StatusUnprocessableEntity,
	ErrInternalServer:      http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
