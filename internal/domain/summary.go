package domain

// TaxRate é a alíquota fixa de 6% aplicada sobre o faturamento
const TaxRate = 0.06

// Summary contém os cinco KPIs derivados das linhas filtradas
type Summary struct {
	Revenue float64 `json:"revenue"`
	Spend   float64 `json:"spend"`
	Tax     float64 `json:"tax"`
	Profit  float64 `json:"profit"`
	AvgROAS float64 `json:"avg_roas"`
}

// Margin calcula a margem de lucro em porcentagem. Retorna zero quando o
// faturamento é zero para evitar divisão por zero.
func (s Summary) Margin() float64 {
	if s.Revenue == 0 {
		return 0
	}
	return s.Profit / s.Revenue * 100
}
