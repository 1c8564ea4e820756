package dashboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		row      domain.Record
		expected string
	}{
		{
			name:     "Coluna financeira sai como moeda",
			header:   "Faturamento",
			row:      domain.Record{"Faturamento": 1234.5},
			expected: utils.FormatBRL(1234.5),
		},
		{
			name:     "Coluna de ROAS sai como múltiplo",
			header:   "ROAS",
			row:      domain.Record{"ROAS": 2.5},
			expected: utils.FormatRatio(2.5),
		},
		{
			name:     "Coluna percentual sai com sufixo %",
			header:   "Taxa de conversão",
			row:      domain.Record{"Taxa de conversão": 12.3},
			expected: utils.FormatPercent(12.3),
		},
		{
			name:     "Valor não numérico em coluna formatada sai cru",
			header:   "Faturamento",
			row:      domain.Record{"Faturamento": "n/d"},
			expected: "n/d",
		},
		{
			name:     "Coluna sem formato sai como string",
			header:   "Nome do Ad",
			row:      domain.Record{"Nome do Ad": "A"},
			expected: "A",
		},
		{
			name:     "Campo ausente sai vazio",
			header:   "Nome do Ad",
			row:      domain.Record{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatCell(tt.header, tt.row))
		})
	}
}
