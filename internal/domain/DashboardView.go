package domain

import "time"

// Tab identifica a aba ativa do dashboard
type Tab string

const (
	TabVisual Tab = "visual"
	TabTable  Tab = "table"
)

// ValidTab verifica se o valor corresponde a uma aba conhecida
func ValidTab(tab Tab) bool {
	return tab == TabVisual || tab == TabTable
}

// DashboardMeta é a resposta da criação de um dashboard: o ID da sessão e o
// que foi inferido do dataset
type DashboardMeta struct {
	ID                string         `json:"id"`
	RowCount          int            `json:"row_count"`
	Roles             ColumnRoles    `json:"roles"`
	FilterableColumns []string       `json:"filterable_columns"`
	ChartSelection    ChartSelection `json:"chart_selection"`
	CreatedAt         time.Time      `json:"created_at"`
}

// StatCard é um cartão de métrica já formatado para exibição
type StatCard struct {
	Label string  `json:"label"`
	Value string  `json:"value"`
	Raw   float64 `json:"raw"`
}

// ProfitCard é o cartão de lucro em destaque, com a margem percentual
type ProfitCard struct {
	StatCard
	Margin      float64 `json:"margin"`
	MarginLabel string  `json:"margin_label"`
}

// SummaryCards agrupa os cinco cartões de KPI
type SummaryCards struct {
	Revenue StatCard   `json:"revenue"`
	Spend   StatCard   `json:"spend"`
	Tax     StatCard   `json:"tax"`
	AvgROAS StatCard   `json:"avg_roas"`
	Profit  ProfitCard `json:"profit"`
}

// FilterPanelEntry descreve o widget de multi-seleção de uma coluna
// filtrável: as opções deduplicadas e ordenadas e a seleção atual
type FilterPanelEntry struct {
	Column   string   `json:"column"`
	Options  []string `json:"options"`
	Selected []string `json:"selected"`
}

// ChartView contém as séries da aba visual. A série de linha reaproveita os
// dados das barras em ordem invertida.
type ChartView struct {
	Category string            `json:"category"`
	Metric   string            `json:"metric"`
	Bars     []AggregatedPoint `json:"bars"`
	Line     []AggregatedPoint `json:"line"`
}

// TableView é o dump formatado das linhas filtradas para a aba de auditoria
type TableView struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// DashboardView é o view-model completo servido para a camada de
// apresentação. Apenas a aba ativa é materializada.
type DashboardView struct {
	ID          string             `json:"id"`
	Tab         Tab                `json:"tab"`
	Search      string             `json:"search"`
	RowCount    int                `json:"row_count"`
	FilteredLen int                `json:"filtered_len"`
	Cards       SummaryCards       `json:"cards"`
	Filters     []FilterPanelEntry `json:"filters"`
	Chart       *ChartView         `json:"chart,omitempty"`
	Table       *TableView         `json:"table,omitempty"`
}
