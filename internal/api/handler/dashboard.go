package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeDashboardError traduz os erros do usecase para o envelope da API
func writeDashboardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dashboarding.ErrDashboardNotFound):
		apiErrors.WriteError(w, apiErrors.ErrDashboardNotFound, "Dashboard não encontrado", nil)
	case errors.Is(err, dashboarding.ErrUnknownColumn):
		apiErrors.WriteError(w, apiErrors.ErrUnknownColumn, "Coluna inexistente no dataset", err.Error())
	case errors.Is(err, dashboarding.ErrDatasetTooLarge):
		apiErrors.WriteError(w, apiErrors.ErrDatasetTooLarge, "Dataset excede o limite de linhas", err.Error())
	case errors.Is(err, dashboarding.ErrEmptyDataset):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dataset sem headers", nil)
	case errors.Is(err, dashboarding.ErrInvalidTab):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Aba inválida. Valores aceitos: visual, table", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}

func dashboardID(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}

// CreateDashboard ingere um dataset e cria uma sessão de dashboard
func CreateDashboard(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var dataset domain.Dataset
		if err := json.NewDecoder(r.Body).Decode(&dataset); err != nil {
			logger.WithError(err).Warn("dashboard: payload de dataset inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Payload de dataset inválido", err.Error())
			return
		}

		meta, err := service.Create(dataset)
		if err != nil {
			logger.WithError(err).Warn("dashboard: falha ao criar sessão")
			writeDashboardError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"dashboard_id": meta.ID,
			"rows":         meta.RowCount,
		}).Info("dashboard: sessão criada")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(meta); err != nil {
			logger.WithError(err).Error("dashboard: falha ao codificar resposta")
		}
	})
}

// GetDashboardView devolve o view-model completo do estado atual
func GetDashboardView(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := dashboardID(r)

		view, err := service.View(id)
		if err != nil {
			logger.WithField("dashboard_id", id).WithError(err).Warn("dashboard: falha ao montar view")
			writeDashboardError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(view); err != nil {
			logger.WithField("dashboard_id", id).WithError(err).Error("dashboard: falha ao codificar view")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

type toggleFilterRequest struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

// ToggleDashboardFilter alterna um valor na seleção de uma coluna filtrável
func ToggleDashboardFilter(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := dashboardID(r)

		var req toggleFilterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Payload inválido", err.Error())
			return
		}

		if req.Column == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Coluna não informada", nil)
			return
		}

		if err := service.ToggleFilter(id, req.Column, req.Value); err != nil {
			logger.WithFields(log.Fields{
				"dashboard_id": id,
				"column":       req.Column,
			}).WithError(err).Warn("dashboard: falha ao alternar filtro")
			writeDashboardError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// ClearDashboardFilters limpa todas as seleções e a busca
func ClearDashboardFilters(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := dashboardID(r)

		if err := service.ClearFilters(id); err != nil {
			writeDashboardError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

type searchRequest struct {
	Term string `json:"term"`
}

// SetDashboardSearch define o termo de busca livre
func SetDashboardSearch(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := dashboardID(r)

		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Payload inválido", err.Error())
			return
		}

		if err := service.SetSearch(id, req.Term); err != nil {
			writeDashboardError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

type chartAxisRequest struct {
	Category string `json:"category"`
	Metric   string `json:"metric"`
}

// SetDashboardChart troca os eixos do gráfico
func SetDashboardChart(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := dashboardID(r)

		var req chartAxisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Payload inválido", err.Error())
			return
		}

		if req.Category == "" && req.Metric == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe ao menos um eixo", nil)
			return
		}

		if err := service.SetChartAxis(id, req.Category, req.Metric); err != nil {
			logger.WithField("dashboard_id", id).WithError(err).Warn("dashboard: falha ao trocar eixos")
			writeDashboardError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

type tabRequest struct {
	Tab domain.Tab `json:"tab"`
}

// SetDashboardTab troca a aba ativa
func SetDashboardTab(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := dashboardID(r)

		var req tabRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Payload inválido", err.Error())
			return
		}

		if err := service.SetTab(id, req.Tab); err != nil {
			writeDashboardError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// DeleteDashboard descarta a sessão
func DeleteDashboard(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := dashboardID(r)

		if err := service.Delete(id); err != nil {
			writeDashboardError(w, err)
			return
		}

		logger.WithField("dashboard_id", id).Info("dashboard: sessão descartada")
		w.WriteHeader(http.StatusNoContent)
	})
}
