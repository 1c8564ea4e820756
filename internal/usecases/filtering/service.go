// Package filtering implementa o estado de filtros do dashboard e o filtro
// de linhas propriamente dito
package filtering

import (
	"strings"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// State guarda as seleções de multi-filtro (coluna -> valores aceitos) e o
// termo de busca livre. Coluna ausente ou com conjunto vazio não impõe
// restrição.
type State struct {
	Selections map[string][]string
	SearchTerm string
}

// NewState cria um estado vazio: nenhum filtro, nenhuma busca
func NewState() *State {
	return &State{
		Selections: make(map[string][]string),
	}
}

// Toggle adiciona o valor à seleção da coluna, ou remove se já estiver
// selecionado. Seleções que ficam vazias são removidas do mapa.
func (s *State) Toggle(column, value string) {
	selected := s.Selections[column]
	for i, v := range selected {
		if v == value {
			selected = append(selected[:i], selected[i+1:]...)
			if len(selected) == 0 {
				delete(s.Selections, column)
			} else {
				s.Selections[column] = selected
			}
			return
		}
	}
	s.Selections[column] = append(selected, value)
}

// Clear remove todas as seleções e o termo de busca
func (s *State) Clear() {
	s.Selections = make(map[string][]string)
	s.SearchTerm = ""
}

// SetSearch define o termo de busca livre
func (s *State) SetSearch(term string) {
	s.SearchTerm = term
}

// FilterRows devolve o subconjunto de linhas que satisfaz todos os filtros
// ativos (AND entre colunas, OR dentro dos valores de uma coluna) e a busca
// livre (substring, sem diferenciar maiúsculas, OR entre todas as colunas).
// A ordem original das linhas é preservada. Campos ausentes são comparados
// como string vazia.
func FilterRows(rows []domain.Record, headers []string, state *State) []domain.Record {
	term := strings.ToLower(strings.TrimSpace(state.SearchTerm))

	filtered := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		if !matchesSelections(row, state.Selections) {
			continue
		}
		if term != "" && !matchesSearch(row, headers, term) {
			continue
		}
		filtered = append(filtered, row)
	}

	return filtered
}

func matchesSelections(row domain.Record, selections map[string][]string) bool {
	for column, accepted := range selections {
		if len(accepted) == 0 {
			continue
		}

		value := row.StringAt(column)
		found := false
		for _, candidate := range accepted {
			if value == candidate {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}
	return true
}

func matchesSearch(row domain.Record, headers []string, loweredTerm string) bool {
	for _, header := range headers {
		if strings.Contains(strings.ToLower(row.StringAt(header)), loweredTerm) {
			return true
		}
	}
	return false
}
