package domain

// AggregatedPoint é um ponto de série de gráfico: a chave do grupo e a soma
// da métrica dentro do grupo
type AggregatedPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
