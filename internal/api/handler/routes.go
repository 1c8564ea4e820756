package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboards(service dashboarding.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboards",
			Method:  http.MethodPost,
			Handler: CreateDashboard(service),
		},
		{
			Path:    "/v1/dashboards/:id/view",
			Method:  http.MethodGet,
			Handler: GetDashboardView(service),
		},
		{
			Path:    "/v1/dashboards/:id/filters/toggle",
			Method:  http.MethodPost,
			Handler: ToggleDashboardFilter(service),
		},
		{
			Path:    "/v1/dashboards/:id/filters/clear",
			Method:  http.MethodPost,
			Handler: ClearDashboardFilters(service),
		},
		{
			Path:    "/v1/dashboards/:id/search",
			Method:  http.MethodPut,
			Handler: SetDashboardSearch(service),
		},
		{
			Path:    "/v1/dashboards/:id/chart",
			Method:  http.MethodPut,
			Handler: SetDashboardChart(service),
		},
		{
			Path:    "/v1/dashboards/:id/tab",
			Method:  http.MethodPut,
			Handler: SetDashboardTab(service),
		},
		{
			Path:    "/v1/dashboards/:id",
			Method:  http.MethodDelete,
			Handler: DeleteDashboard(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
