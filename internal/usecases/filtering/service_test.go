package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

var testHeaders = []string{"Data", "Nome do Ad", "Faturamento"}

func testRows() []domain.Record {
	return []domain.Record{
		{"Data": "01/01", "Nome do Ad": "A", "Faturamento": 1000.0},
		{"Data": "02/01", "Nome do Ad": "B", "Faturamento": 500.0},
		{"Data": "03/01", "Nome do Ad": "A", "Faturamento": 250.0},
	}
}

func TestStateToggle(t *testing.T) {
	state := NewState()

	state.Toggle("Nome do Ad", "A")
	assert.Equal(t, []string{"A"}, state.Selections["Nome do Ad"])

	state.Toggle("Nome do Ad", "B")
	assert.Equal(t, []string{"A", "B"}, state.Selections["Nome do Ad"])

	// Alternar de novo remove o valor
	state.Toggle("Nome do Ad", "A")
	assert.Equal(t, []string{"B"}, state.Selections["Nome do Ad"])

	// Seleção que fica vazia sai do mapa
	state.Toggle("Nome do Ad", "B")
	_, exists := state.Selections["Nome do Ad"]
	assert.False(t, exists)
}

func TestStateClear(t *testing.T) {
	state := NewState()
	state.Toggle("Data", "01/01")
	state.SetSearch("abc")

	state.Clear()

	assert.Empty(t, state.Selections)
	assert.Empty(t, state.SearchTerm)
}

func TestFilterRows(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(state *State)
		expected []string // valores esperados de "Nome do Ad", na ordem
	}{
		{
			name:     "Estado vazio devolve todas as linhas na ordem original",
			setup:    func(state *State) {},
			expected: []string{"A", "B", "A"},
		},
		{
			name: "Filtro de coluna mantém apenas os valores selecionados",
			setup: func(state *State) {
				state.Toggle("Nome do Ad", "A")
			},
			expected: []string{"A", "A"},
		},
		{
			name: "OR dentro da coluna",
			setup: func(state *State) {
				state.Toggle("Nome do Ad", "A")
				state.Toggle("Nome do Ad", "B")
			},
			expected: []string{"A", "B", "A"},
		},
		{
			name: "AND entre colunas",
			setup: func(state *State) {
				state.Toggle("Nome do Ad", "A")
				state.Toggle("Data", "03/01")
			},
			expected: []string{"A"},
		},
		{
			name: "Busca livre sem diferenciar maiúsculas, OR entre colunas",
			setup: func(state *State) {
				state.SetSearch("b")
			},
			expected: []string{"B"},
		},
		{
			name: "Busca casa com valores numéricos convertidos para string",
			setup: func(state *State) {
				state.SetSearch("500")
			},
			expected: []string{"B"},
		},
		{
			name: "Busca e filtro combinados",
			setup: func(state *State) {
				state.Toggle("Nome do Ad", "A")
				state.SetSearch("03/01")
			},
			expected: []string{"A"},
		},
		{
			name: "Busca sem resultado devolve vazio",
			setup: func(state *State) {
				state.SetSearch("inexistente")
			},
			expected: []string{},
		},
		{
			name: "Seleção explícita vazia não impõe restrição",
			setup: func(state *State) {
				state.Selections["Nome do Ad"] = []string{}
			},
			expected: []string{"A", "B", "A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState()
			tt.setup(state)

			filtered := FilterRows(testRows(), testHeaders, state)

			names := make([]string, 0, len(filtered))
			for _, row := range filtered {
				names = append(names, row.StringAt("Nome do Ad"))
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestFilterRows_CampoAusente(t *testing.T) {
	rows := []domain.Record{
		{"Data": "01/01", "Nome do Ad": "A"},
		{"Data": "02/01"}, // sem "Nome do Ad"
	}

	// Campo ausente vira string vazia: não casa com a seleção "A"
	state := NewState()
	state.Toggle("Nome do Ad", "A")
	filtered := FilterRows(rows, testHeaders, state)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "01/01", filtered[0].StringAt("Data"))

	// E a busca não quebra com o campo ausente
	state = NewState()
	state.SetSearch("02/01")
	filtered = FilterRows(rows, testHeaders, state)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "02/01", filtered[0].StringAt("Data"))
}

func TestFilterRows_LimparVoltaTudo(t *testing.T) {
	state := NewState()
	state.Toggle("Nome do Ad", "A")
	state.SetSearch("01")

	state.Clear()

	filtered := FilterRows(testRows(), testHeaders, state)
	assert.Len(t, filtered, len(testRows()))
}
