package dashboarding

import (
	"strings"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// Detecção de formato por nome de header para a tabela de auditoria. É uma
// política de apresentação, independente da detecção de papéis do
// classificador.
var (
	currencyFragments = []string{"faturamento", "receita", "gasto", "investimento", "custo", "valor", "spend", "revenue"}
	ratioFragments    = []string{"roas"}
	percentFragments  = []string{"%", "taxa", "margem", "ctr", "percent"}
)

func headerContainsAny(header string, fragments []string) bool {
	lowered := strings.ToLower(header)
	for _, fragment := range fragments {
		if strings.Contains(lowered, fragment) {
			return true
		}
	}
	return false
}

// formatCell formata o valor de uma célula conforme o nome da coluna:
// múltiplo com "x" para colunas de ROAS, moeda para colunas financeiras,
// "%" para colunas percentuais; o restante sai como string crua. Valor não
// numérico em coluna formatada sai como string crua.
func formatCell(header string, row domain.Record) string {
	raw := row.StringAt(header)

	switch {
	case headerContainsAny(header, ratioFragments):
		if value, ok := row.NumberAt(header); ok {
			return utils.FormatRatio(value)
		}
	case headerContainsAny(header, percentFragments):
		if value, ok := row.NumberAt(header); ok {
			return utils.FormatPercent(value)
		}
	case headerContainsAny(header, currencyFragments):
		if value, ok := row.NumberAt(header); ok {
			return utils.FormatBRL(value)
		}
	}

	return raw
}
