package handler

import (
	"net/http"

	"github.com/mleodato/restaurant-analytics-api/internal/usecases/analytics"
	"github.com/mleodato/restaurant-analytics-api/pkg/apiErrors"
	"github.com/mleodato/restaurant-analytics-api/pkg/log"
)

// GetDashboardSummary retorna o resumo com as métricas principais do
// dashboard (faturamento, ticket médio, pedidos e top produtos).
func GetDashboardSummary(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseMetricFilters(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: invalid date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		summary, err := service.DashboardSummary(r.Context(), filters, defaultTopProductsLimit)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build summary")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar resumo do dashboard", nil)
			return
		}

		writeJSON(w, r, summary)
	})
}
