// Package classifying contém as heurísticas de reconhecimento de colunas por
// nome de header. Todas as funções são puras: recebem a lista ordenada de
// headers e devolvem referências opcionais, sem estado escondido.
package classifying

import (
	"strings"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// Listas de palavras-chave por papel, em ordem de prioridade. A comparação é
// sempre em minúsculas, por igualdade ou substring.
var (
	revenueKeywords = []string{"faturamento", "receita", "revenue", "valor de conversão"}
	spendKeywords   = []string{"gastos", "gasto", "investimento", "spend", "custo"}
	roasKeywords    = []string{"roas", "retorno sobre"}
	dateKeywords    = []string{"data", "date", "dia"}
	adNameKeywords  = []string{"nome do ad", "nome do anúncio", "ad name", "anúncio", "nome"}
)

// Conjunto fechado de tópicos que tornam uma coluna filtrável. Não é
// configurável pelo usuário.
var filterableTopics = []string{"data", "nome do ad", "cid", "status", "campanha", "conjunto"}

// MatchColumn devolve o primeiro header (na ordem do dataset) cujo texto em
// minúsculas é igual ou contém alguma das palavras-chave. O laço externo
// percorre os headers e o interno as palavras-chave: o primeiro header que
// casa com qualquer palavra vence, e não o header que casa com a palavra de
// maior prioridade. Retorna nil se nenhum header qualificar.
func MatchColumn(headers []string, keywords []string) *string {
	for _, header := range headers {
		lowered := strings.ToLower(header)
		for _, keyword := range keywords {
			k := strings.ToLower(keyword)
			if lowered == k || strings.Contains(lowered, k) {
				matched := header
				return &matched
			}
		}
	}
	return nil
}

// DetectRoles infere os cinco papéis semânticos a partir dos headers
func DetectRoles(headers []string) domain.ColumnRoles {
	return domain.ColumnRoles{
		Revenue: MatchColumn(headers, revenueKeywords),
		Spend:   MatchColumn(headers, spendKeywords),
		ROAS:    MatchColumn(headers, roasKeywords),
		Date:    MatchColumn(headers, dateKeywords),
		AdName:  MatchColumn(headers, adNameKeywords),
	}
}

// FilterableColumns devolve, na ordem do dataset, os headers cujo texto em
// minúsculas contém algum dos tópicos fixos
func FilterableColumns(headers []string) []string {
	filterable := make([]string, 0, len(headers))
	for _, header := range headers {
		lowered := strings.ToLower(header)
		for _, topic := range filterableTopics {
			if strings.Contains(lowered, topic) {
				filterable = append(filterable, header)
				break
			}
		}
	}
	return filterable
}

// DefaultChartSelection escolhe os eixos iniciais do gráfico: nome do ad ou
// data como categoria, ROAS ou faturamento como métrica, com fallback para a
// primeira coluna de texto/número respectivamente.
func DefaultChartSelection(dataset *domain.Dataset, roles domain.ColumnRoles) domain.ChartSelection {
	selection := domain.ChartSelection{}

	switch {
	case roles.AdName != nil:
		selection.Category = *roles.AdName
	case roles.Date != nil:
		selection.Category = *roles.Date
	default:
		selection.Category = firstOfType(dataset, domain.ColumnString)
	}

	switch {
	case roles.ROAS != nil:
		selection.Metric = *roles.ROAS
	case roles.Revenue != nil:
		selection.Metric = *roles.Revenue
	default:
		selection.Metric = firstOfType(dataset, domain.ColumnNumber)
	}

	return selection
}

func firstOfType(dataset *domain.Dataset, columnType domain.ColumnType) string {
	for _, header := range dataset.Headers {
		if dataset.Types[header] == columnType {
			return header
		}
	}
	return ""
}
