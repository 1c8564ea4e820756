// Package dashboarding mantém as sessões de dashboard em memória e monta o
// view-model servido para a camada de apresentação. Cada sessão é dona do
// seu dataset (somente leitura), do estado de filtros e da seleção de eixos;
// todo o estado derivado é memoizado por um contador de revisão.
package dashboarding

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/classifying"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// DashboardService define as operações nomeadas sobre as sessões de
// dashboard. Toda mutação de estado passa por aqui.
type DashboardService interface {
	Create(dataset domain.Dataset) (*domain.DashboardMeta, error)
	View(id string) (*domain.DashboardView, error)
	ToggleFilter(id, column, value string) error
	ClearFilters(id string) error
	SetSearch(id, term string) error
	SetChartAxis(id, category, metric string) error
	SetTab(id string, tab domain.Tab) error
	Delete(id string) error

	// EvictIdle remove sessões sem acesso há mais do que o TTL e devolve
	// quantas foram removidas
	EvictIdle(ttl time.Duration) int
	Count() int
}

// derived é o cache de estado derivado de uma sessão, válido enquanto a
// revisão não muda
type derived struct {
	revision uint64
	rows     []domain.Record
	summary  domain.Summary
	points   []domain.AggregatedPoint
}

type dashboard struct {
	mu         sync.Mutex
	id         string
	dataset    domain.Dataset
	roles      domain.ColumnRoles
	filterable []string
	state      *filtering.State
	chart      domain.ChartSelection
	tab        domain.Tab
	revision   uint64
	memo       *derived
	createdAt  time.Time
	lastAccess time.Time
}

type Service struct {
	cfg        *config.Config
	mu         sync.RWMutex
	dashboards map[string]*dashboard
}

// NewService cria o registro de sessões de dashboard
func NewService(cfg *config.Config) DashboardService {
	return &Service{
		cfg:        cfg,
		dashboards: make(map[string]*dashboard),
	}
}

// Create ingere um dataset, infere papéis de coluna, colunas filtráveis e
// eixos padrão, e registra a sessão
func (s *Service) Create(dataset domain.Dataset) (*domain.DashboardMeta, error) {
	if len(dataset.Headers) == 0 {
		return nil, ErrEmptyDataset
	}

	if s.cfg.Dashboard.MaxRows > 0 && len(dataset.Rows) > s.cfg.Dashboard.MaxRows {
		return nil, errors.Wrapf(ErrDatasetTooLarge, "linhas: %d, limite: %d", len(dataset.Rows), s.cfg.Dashboard.MaxRows)
	}

	if dataset.Types == nil {
		dataset.Types = make(map[string]domain.ColumnType)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(ErrGenerateID, err.Error())
	}

	roles := classifying.DetectRoles(dataset.Headers)
	now := time.Now()

	d := &dashboard{
		id:         id,
		dataset:    dataset,
		roles:      roles,
		filterable: classifying.FilterableColumns(dataset.Headers),
		state:      filtering.NewState(),
		chart:      classifying.DefaultChartSelection(&dataset, roles),
		tab:        domain.TabVisual,
		createdAt:  now,
		lastAccess: now,
	}

	s.mu.Lock()
	s.dashboards[id] = d
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"dashboard_id": id,
		"rows":         len(dataset.Rows),
		"columns":      len(dataset.Headers),
	}).Info("Sessão de dashboard criada")

	return &domain.DashboardMeta{
		ID:                id,
		RowCount:          len(dataset.Rows),
		Roles:             roles,
		FilterableColumns: d.filterable,
		ChartSelection:    d.chart,
		CreatedAt:         now,
	}, nil
}

// View monta o view-model completo para o estado atual da sessão
func (s *Service) View(id string) (*domain.DashboardView, error) {
	d, err := s.get(id)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	memo := d.recompute()

	view := &domain.DashboardView{
		ID:          d.id,
		Tab:         d.tab,
		Search:      d.state.SearchTerm,
		RowCount:    len(d.dataset.Rows),
		FilteredLen: len(memo.rows),
		Cards:       buildCards(memo.summary),
		Filters:     d.buildFilterPanel(),
	}

	switch d.tab {
	case domain.TabTable:
		view.Table = buildTable(&d.dataset, memo.rows)
	default:
		view.Chart = &domain.ChartView{
			Category: d.chart.Category,
			Metric:   d.chart.Metric,
			Bars:     memo.points,
			Line:     reversePoints(memo.points),
		}
	}

	return view, nil
}

// ToggleFilter alterna o valor na seleção da coluna
func (s *Service) ToggleFilter(id, column, value string) error {
	d, err := s.get(id)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.dataset.HasHeader(column) {
		return errors.Wrap(ErrUnknownColumn, column)
	}

	d.state.Toggle(column, value)
	d.revision++
	return nil
}

// ClearFilters limpa todas as seleções e o termo de busca
func (s *Service) ClearFilters(id string) error {
	d, err := s.get(id)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.state.Clear()
	d.revision++
	return nil
}

// SetSearch define o termo de busca livre
func (s *Service) SetSearch(id, term string) error {
	d, err := s.get(id)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.state.SetSearch(term)
	d.revision++
	return nil
}

// SetChartAxis troca os eixos do gráfico. Argumento vazio mantém o eixo
// atual.
func (s *Service) SetChartAxis(id, category, metric string) error {
	d, err := s.get(id)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if category != "" {
		if !d.dataset.HasHeader(category) {
			return errors.Wrap(ErrUnknownColumn, category)
		}
		d.chart.Category = category
	}

	if metric != "" {
		if !d.dataset.HasHeader(metric) {
			return errors.Wrap(ErrUnknownColumn, metric)
		}
		d.chart.Metric = metric
	}

	d.revision++
	return nil
}

// SetTab troca a aba ativa entre visual e tabela
func (s *Service) SetTab(id string, tab domain.Tab) error {
	d, err := s.get(id)
	if err != nil {
		return err
	}

	if !domain.ValidTab(tab) {
		return errors.Wrap(ErrInvalidTab, string(tab))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.tab = tab
	return nil
}

// Delete remove a sessão do registro
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dashboards[id]; !ok {
		return ErrDashboardNotFound
	}

	delete(s.dashboards, id)
	return nil
}

// EvictIdle remove sessões ociosas há mais do que o TTL
func (s *Service) EvictIdle(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	evicted := 0

	for id, d := range s.dashboards {
		d.mu.Lock()
		idle := d.lastAccess.Before(cutoff)
		d.mu.Unlock()

		if idle {
			delete(s.dashboards, id)
			evicted++
		}
	}

	if evicted > 0 {
		logrus.WithFields(logrus.Fields{
			"evicted":   evicted,
			"remaining": len(s.dashboards),
		}).Info("Sessões de dashboard ociosas removidas")
	}

	return evicted
}

// Count devolve o número de sessões ativas
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dashboards)
}

func (s *Service) get(id string) (*dashboard, error) {
	s.mu.RLock()
	d, ok := s.dashboards[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrDashboardNotFound
	}

	d.mu.Lock()
	d.lastAccess = time.Now()
	d.mu.Unlock()

	return d, nil
}

// recompute devolve o estado derivado da revisão atual, refazendo o passo
// filtro -> agregação apenas quando alguma mutação invalidou o memo. A
// corretude não depende do memo, apenas a responsividade.
func (d *dashboard) recompute() *derived {
	if d.memo != nil && d.memo.revision == d.revision {
		return d.memo
	}

	rows := filtering.FilterRows(d.dataset.Rows, d.dataset.Headers, d.state)

	d.memo = &derived{
		revision: d.revision,
		rows:     rows,
		summary:  aggregating.Summarize(rows, d.roles),
		points:   aggregating.AggregateChart(rows, d.chart.Category, d.chart.Metric),
	}

	return d.memo
}

// buildFilterPanel monta as opções de cada coluna filtrável a partir do
// dataset completo: valores deduplicados, sensíveis a maiúsculas e em ordem
// lexicográfica
func (d *dashboard) buildFilterPanel() []domain.FilterPanelEntry {
	entries := make([]domain.FilterPanelEntry, 0, len(d.filterable))

	for _, column := range d.filterable {
		seen := make(map[string]struct{})
		options := make([]string, 0)

		for _, row := range d.dataset.Rows {
			value := row.StringAt(column)
			if value == "" {
				continue
			}
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			options = append(options, value)
		}

		sort.Strings(options)

		selected := d.state.Selections[column]
		if selected == nil {
			selected = []string{}
		}

		entries = append(entries, domain.FilterPanelEntry{
			Column:   column,
			Options:  options,
			Selected: selected,
		})
	}

	return entries
}

func buildCards(summary domain.Summary) domain.SummaryCards {
	margin := utils.RoundWithTwoDecimalPlace(summary.Margin())

	return domain.SummaryCards{
		Revenue: domain.StatCard{
			Label: "Faturamento",
			Value: utils.FormatBRL(summary.Revenue),
			Raw:   summary.Revenue,
		},
		Spend: domain.StatCard{
			Label: "Gastos com Anúncios",
			Value: utils.FormatBRL(summary.Spend),
			Raw:   summary.Spend,
		},
		Tax: domain.StatCard{
			Label: "Imposto Estimado (6%)",
			Value: utils.FormatBRL(summary.Tax),
			Raw:   summary.Tax,
		},
		AvgROAS: domain.StatCard{
			Label: "ROAS Médio",
			Value: utils.FormatRatio(summary.AvgROAS),
			Raw:   utils.RoundWithTwoDecimalPlace(summary.AvgROAS),
		},
		Profit: domain.ProfitCard{
			StatCard: domain.StatCard{
				Label: "Lucro Estimado",
				Value: utils.FormatBRL(summary.Profit),
				Raw:   summary.Profit,
			},
			Margin:      margin,
			MarginLabel: utils.FormatPercent(margin),
		},
	}
}

func buildTable(dataset *domain.Dataset, rows []domain.Record) *domain.TableView {
	table := &domain.TableView{
		Headers: dataset.Headers,
		Rows:    make([][]string, 0, len(rows)),
	}

	for _, row := range rows {
		cells := make([]string, 0, len(dataset.Headers))
		for _, header := range dataset.Headers {
			cells = append(cells, formatCell(header, row))
		}
		table.Rows = append(table.Rows, cells)
	}

	return table
}

func reversePoints(points []domain.AggregatedPoint) []domain.AggregatedPoint {
	reversed := make([]domain.AggregatedPoint, len(points))
	for i, point := range points {
		reversed[len(points)-1-i] = point
	}
	return reversed
}
