// Package aggregating reduz as linhas filtradas aos KPIs do dashboard e às
// séries de gráfico
package aggregating

import (
	"sort"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// topGroupLimit é o número máximo de grupos nas séries de gráfico
const topGroupLimit = 15

// emptyGroupLabel substitui a chave de grupo vazia
const emptyGroupLabel = "Outros"

// Summarize reduz as linhas filtradas aos cinco KPIs. Coluna não mapeada ou
// valor não numérico contribui com zero; nenhum erro é propagado.
func Summarize(rows []domain.Record, roles domain.ColumnRoles) domain.Summary {
	summary := domain.Summary{}

	if roles.Revenue != nil {
		summary.Revenue = sumColumn(rows, *roles.Revenue)
	}
	if roles.Spend != nil {
		summary.Spend = sumColumn(rows, *roles.Spend)
	}

	summary.Tax = summary.Revenue * domain.TaxRate
	summary.Profit = summary.Revenue - summary.Spend - summary.Tax
	summary.AvgROAS = averageROAS(rows, roles, summary)

	return summary
}

// AggregateChart agrupa as linhas pela coluna de categoria, soma a coluna de
// métrica por grupo e devolve no máximo 15 pontos em ordem não crescente de
// valor. A ordenação é estável: empates mantêm a ordem de primeira
// ocorrência do grupo nas linhas. Eixo indefinido resulta em série vazia.
func AggregateChart(rows []domain.Record, category, metric string) []domain.AggregatedPoint {
	if category == "" || metric == "" {
		return []domain.AggregatedPoint{}
	}

	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, row := range rows {
		name := row.StringAt(category)
		if name == "" {
			name = emptyGroupLabel
		}

		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}

		if value, ok := row.NumberAt(metric); ok {
			totals[name] += value
		}
	}

	points := make([]domain.AggregatedPoint, 0, len(order))
	for _, name := range order {
		points = append(points, domain.AggregatedPoint{Name: name, Value: totals[name]})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value > points[j].Value
	})

	if len(points) > topGroupLimit {
		points = points[:topGroupLimit]
	}

	return points
}

func sumColumn(rows []domain.Record, column string) float64 {
	total := 0.0
	for _, row := range rows {
		if value, ok := row.NumberAt(column); ok {
			total += value
		}
	}
	return total
}

// averageROAS calcula a média aritmética da coluna de ROAS sobre as linhas
// com valor presente e numérico. A string vazia é excluída por uma guarda
// própria, separada da checagem numérica. Sem coluna de ROAS mapeada, cai
// para faturamento/gastos quando gastos > 0, senão zero.
func averageROAS(rows []domain.Record, roles domain.ColumnRoles, summary domain.Summary) float64 {
	if roles.ROAS == nil {
		if summary.Spend > 0 {
			return summary.Revenue / summary.Spend
		}
		return 0
	}

	sum := 0.0
	count := 0
	for _, row := range rows {
		if row.StringAt(*roles.ROAS) == "" {
			continue
		}
		if value, ok := row.NumberAt(*roles.ROAS); ok {
			sum += value
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
