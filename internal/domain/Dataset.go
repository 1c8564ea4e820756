package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ColumnType representa o tipo escalar inferido de uma coluna
type ColumnType string

const (
	ColumnString ColumnType = "string"
	ColumnNumber ColumnType = "number"
)

// Record representa uma linha do dataset, indexada pelo nome da coluna
type Record map[string]any

// Dataset é a visão somente-leitura dos dados tabulares fornecidos pelo
// cliente. O dashboard nunca altera Headers, Rows ou Types após a ingestão.
type Dataset struct {
	Headers []string              `json:"headers"`
	Rows    []Record              `json:"rows"`
	Types   map[string]ColumnType `json:"types"`
}

// StringAt retorna o valor da coluna como string. Campo ausente ou nulo vira
// string vazia - essa é a coerção canônica usada por busca, filtros,
// agrupamento e tabela.
func (r Record) StringAt(header string) string {
	value, ok := r[header]
	if !ok || value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// NumberAt faz a coerção numérica do valor da coluna. Retorna false para
// campo ausente, string vazia ou valor que não converte para um número
// finito.
func (r Record) NumberAt(header string) (float64, bool) {
	value, ok := r[header]
	if !ok || value == nil {
		return 0, false
	}

	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case int:
		return float64(v), true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// HasHeader verifica se o header faz parte do dataset
func (d *Dataset) HasHeader(header string) bool {
	for _, h := range d.Headers {
		if h == header {
			return true
		}
	}
	return false
}
