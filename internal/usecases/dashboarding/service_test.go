package dashboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		Dashboard: config.Dashboard{
			MaxRows:    1000,
			TTLMinutes: 120,
		},
	}
}

func specDataset() domain.Dataset {
	return domain.Dataset{
		Headers: []string{"Data", "Nome do Ad", "Faturamento", "Gastos", "ROAS"},
		Rows: []domain.Record{
			{"Data": "01/01", "Nome do Ad": "A", "Faturamento": 1000.0, "Gastos": 200.0, "ROAS": 5.0},
			{"Data": "02/01", "Nome do Ad": "B", "Faturamento": 500.0, "Gastos": 100.0, "ROAS": 5.0},
		},
		Types: map[string]domain.ColumnType{
			"Data":        domain.ColumnString,
			"Nome do Ad":  domain.ColumnString,
			"Faturamento": domain.ColumnNumber,
			"Gastos":      domain.ColumnNumber,
			"ROAS":        domain.ColumnNumber,
		},
	}
}

func TestServiceCreate(t *testing.T) {
	service := NewService(testConfig())

	meta, err := service.Create(specDataset())
	require.NoError(t, err)

	assert.NotEmpty(t, meta.ID)
	assert.Equal(t, 2, meta.RowCount)
	require.NotNil(t, meta.Roles.Revenue)
	assert.Equal(t, "Faturamento", *meta.Roles.Revenue)
	assert.Equal(t, []string{"Data", "Nome do Ad"}, meta.FilterableColumns)
	assert.Equal(t, domain.ChartSelection{Category: "Nome do Ad", Metric: "ROAS"}, meta.ChartSelection)
	assert.Equal(t, 1, service.Count())
}

func TestServiceCreate_Validacao(t *testing.T) {
	service := NewService(testConfig())

	_, err := service.Create(domain.Dataset{})
	assert.ErrorIs(t, err, ErrEmptyDataset)

	cfg := testConfig()
	cfg.Dashboard.MaxRows = 1
	service = NewService(cfg)
	_, err = service.Create(specDataset())
	assert.ErrorIs(t, err, ErrDatasetTooLarge)
}

func TestServiceView_AbaVisual(t *testing.T) {
	service := NewService(testConfig())
	meta, err := service.Create(specDataset())
	require.NoError(t, err)

	view, err := service.View(meta.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.TabVisual, view.Tab)
	assert.Equal(t, 2, view.RowCount)
	assert.Equal(t, 2, view.FilteredLen)
	assert.Nil(t, view.Table)

	// KPIs do exemplo de referência
	assert.InDelta(t, 1500.0, view.Cards.Revenue.Raw, 1e-9)
	assert.InDelta(t, 300.0, view.Cards.Spend.Raw, 1e-9)
	assert.InDelta(t, 90.0, view.Cards.Tax.Raw, 1e-9)
	assert.InDelta(t, 1110.0, view.Cards.Profit.Raw, 1e-9)
	assert.InDelta(t, 5.0, view.Cards.AvgROAS.Raw, 1e-9)
	assert.InDelta(t, 74.0, view.Cards.Profit.Margin, 1e-9)

	assert.Equal(t, utils.FormatBRL(1500.0), view.Cards.Revenue.Value)
	assert.Equal(t, utils.FormatRatio(5.0), view.Cards.AvgROAS.Value)
	assert.Equal(t, utils.FormatPercent(74.0), view.Cards.Profit.MarginLabel)

	// Painel de filtros: opções deduplicadas e ordenadas
	require.Len(t, view.Filters, 2)
	assert.Equal(t, "Data", view.Filters[0].Column)
	assert.Equal(t, []string{"01/01", "02/01"}, view.Filters[0].Options)
	assert.Empty(t, view.Filters[0].Selected)

	// Série de linha é a série de barras invertida
	require.NotNil(t, view.Chart)
	require.Len(t, view.Chart.Bars, 2)
	assert.Equal(t, view.Chart.Bars[0], view.Chart.Line[1])
	assert.Equal(t, view.Chart.Bars[1], view.Chart.Line[0])
}

func TestServiceToggleFilter_RecalculaKPIs(t *testing.T) {
	service := NewService(testConfig())
	meta, err := service.Create(specDataset())
	require.NoError(t, err)

	require.NoError(t, service.ToggleFilter(meta.ID, "Nome do Ad", "A"))

	view, err := service.View(meta.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, view.FilteredLen)
	assert.InDelta(t, 1000.0, view.Cards.Revenue.Raw, 1e-9)
	assert.InDelta(t, 200.0, view.Cards.Spend.Raw, 1e-9)
	assert.InDelta(t, 60.0, view.Cards.Tax.Raw, 1e-9)
	assert.InDelta(t, 740.0, view.Cards.Profit.Raw, 1e-9)
	assert.Equal(t, []string{"A"}, view.Filters[1].Selected)

	// Limpar volta ao dataset completo
	require.NoError(t, service.ClearFilters(meta.ID))
	view, err = service.View(meta.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.FilteredLen)
}

func TestServiceSetSearch(t *testing.T) {
	service := NewService(testConfig())
	meta, err := service.Create(specDataset())
	require.NoError(t, err)

	require.NoError(t, service.SetSearch(meta.ID, "B"))

	view, err := service.View(meta.ID)
	require.NoError(t, err)

	assert.Equal(t, "B", view.Search)
	assert.Equal(t, 1, view.FilteredLen)
	assert.InDelta(t, 500.0, view.Cards.Revenue.Raw, 1e-9)
}

func TestServiceSetTab_TabelaFormatada(t *testing.T) {
	service := NewService(testConfig())
	meta, err := service.Create(specDataset())
	require.NoError(t, err)

	require.NoError(t, service.SetTab(meta.ID, domain.TabTable))

	view, err := service.View(meta.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.TabTable, view.Tab)
	assert.Nil(t, view.Chart)
	require.NotNil(t, view.Table)
	assert.Equal(t, specDataset().Headers, view.Table.Headers)
	require.Len(t, view.Table.Rows, 2)

	first := view.Table.Rows[0]
	assert.Equal(t, "01/01", first[0])
	assert.Equal(t, "A", first[1])
	assert.Equal(t, utils.FormatBRL(1000.0), first[2])
	assert.Equal(t, utils.FormatBRL(200.0), first[3])
	assert.Equal(t, utils.FormatRatio(5.0), first[4])

	assert.ErrorIs(t, service.SetTab(meta.ID, domain.Tab("grafico")), ErrInvalidTab)
}

func TestServiceSetChartAxis(t *testing.T) {
	service := NewService(testConfig())
	meta, err := service.Create(specDataset())
	require.NoError(t, err)

	require.NoError(t, service.SetChartAxis(meta.ID, "Data", "Faturamento"))

	view, err := service.View(meta.ID)
	require.NoError(t, err)

	require.NotNil(t, view.Chart)
	assert.Equal(t, "Data", view.Chart.Category)
	assert.Equal(t, "Faturamento", view.Chart.Metric)

	// Argumento vazio mantém o eixo atual
	require.NoError(t, service.SetChartAxis(meta.ID, "", "ROAS"))
	view, err = service.View(meta.ID)
	require.NoError(t, err)
	assert.Equal(t, "Data", view.Chart.Category)
	assert.Equal(t, "ROAS", view.Chart.Metric)

	assert.ErrorIs(t, service.SetChartAxis(meta.ID, "Inexistente", ""), ErrUnknownColumn)
}

func TestServiceToggleFilter_ColunaDesconhecida(t *testing.T) {
	service := NewService(testConfig())
	meta, err := service.Create(specDataset())
	require.NoError(t, err)

	assert.ErrorIs(t, service.ToggleFilter(meta.ID, "Inexistente", "x"), ErrUnknownColumn)
}

func TestServiceDelete(t *testing.T) {
	service := NewService(testConfig())
	meta, err := service.Create(specDataset())
	require.NoError(t, err)

	require.NoError(t, service.Delete(meta.ID))
	assert.Zero(t, service.Count())

	_, err = service.View(meta.ID)
	assert.ErrorIs(t, err, ErrDashboardNotFound)
	assert.ErrorIs(t, service.Delete(meta.ID), ErrDashboardNotFound)
}

func TestServiceMemoizacao(t *testing.T) {
	service := NewService(testConfig()).(*Service)
	meta, err := service.Create(specDataset())
	require.NoError(t, err)

	_, err = service.View(meta.ID)
	require.NoError(t, err)

	d := service.dashboards[meta.ID]
	firstMemo := d.memo
	require.NotNil(t, firstMemo)

	// Sem mutação o memo é reaproveitado
	_, err = service.View(meta.ID)
	require.NoError(t, err)
	assert.Same(t, firstMemo, d.memo)

	// Mutação invalida o memo
	require.NoError(t, service.ToggleFilter(meta.ID, "Nome do Ad", "A"))
	_, err = service.View(meta.ID)
	require.NoError(t, err)
	assert.NotSame(t, firstMemo, d.memo)
	assert.Len(t, d.memo.rows, 1)
}

func TestServiceEvictIdle(t *testing.T) {
	service := NewService(testConfig())

	_, err := service.Create(specDataset())
	require.NoError(t, err)
	_, err = service.Create(specDataset())
	require.NoError(t, err)

	// TTL largo: nada ocioso
	assert.Zero(t, service.EvictIdle(time.Hour))
	assert.Equal(t, 2, service.Count())

	// TTL negativo força o corte no futuro: tudo é considerado ocioso
	assert.Equal(t, 2, service.EvictIdle(-time.Second))
	assert.Zero(t, service.Count())
}
