package domain

// ColumnRoles guarda os headers detectados para cada papel semântico usado
// nos KPIs. Um ponteiro nulo significa que nenhuma coluna foi reconhecida
// para o papel; as leituras numéricas correspondentes degradam para zero.
type ColumnRoles struct {
	Revenue *string `json:"revenue,omitempty"`
	Spend   *string `json:"spend,omitempty"`
	ROAS    *string `json:"roas,omitempty"`
	Date    *string `json:"date,omitempty"`
	AdName  *string `json:"ad_name,omitempty"`
}

// ChartSelection guarda os eixos atuais do gráfico. String vazia significa
// eixo não definido; nesse caso a agregação retorna uma série vazia.
type ChartSelection struct {
	Category string `json:"category"`
	Metric   string `json:"metric"`
}
