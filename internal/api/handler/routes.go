package handler

import (
	"net/http"

	"github.com/mleodato/restaurant-analytics-api/internal/api/handler/router"
	"github.com/mleodato/restaurant-analytics-api/internal/usecases/analytics"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(),
		},
	}
}

// Metrics expõe as cinco métricas de vendas sob /metrics
func Metrics(service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics/total-revenue",
			Method:  http.MethodGet,
			Handler: GetTotalRevenue(service),
		},
		{
			Path:    "/metrics/average-ticket",
			Method:  http.MethodGet,
			Handler: GetAverageTicket(service),
		},
		{
			Path:    "/metrics/top-products",
			Method:  http.MethodGet,
			Handler: GetTopProducts(service),
		},
		{
			Path:    "/metrics/total-orders",
			Method:  http.MethodGet,
			Handler: GetTotalOrders(service),
		},
		{
			Path:    "/metrics/average-rating",
			Method:  http.MethodGet,
			Handler: GetAverageRating(service),
		},
	}
}

func Dashboard(service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/dashboard/dashboard-summary",
			Method:  http.MethodGet,
			Handler: GetDashboardSummary(service),
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
