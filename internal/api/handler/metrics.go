package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/mleodato/restaurant-analytics-api/internal/domain"
	"github.com/mleodato/restaurant-analytics-api/internal/usecases/analytics"
	"github.com/mleodato/restaurant-analytics-api/pkg/apiErrors"
	"github.com/mleodato/restaurant-analytics-api/pkg/log"
	"github.com/mleodato/restaurant-analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Limites do parâmetro limit de top-products, aplicados na borda HTTP.
// O core aceita qualquer limite positivo.
const (
	defaultTopProductsLimit = 5
	minTopProductsLimit     = 1
	maxTopProductsLimit     = 50
)

// parseMetricFilters monta os filtros comuns a todas as métricas a partir da
// query string. Datas ausentes significam intervalo aberto daquele lado.
func parseMetricFilters(r *http.Request) (domain.MetricFilters, error) {
	dateFrom, err := utils.ParseDate(r.URL.Query().Get("date_from"))
	if err != nil {
		return domain.MetricFilters{}, err
	}

	dateTo, err := utils.ParseDate(r.URL.Query().Get("date_to"))
	if err != nil {
		return domain.MetricFilters{}, err
	}

	return domain.MetricFilters{
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Channel:  r.URL.Query().Get("channel"),
	}, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("metrics: failed to encode response")
	}
}

// GetTotalRevenue retorna o faturamento total no intervalo.
func GetTotalRevenue(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseMetricFilters(r)
		if err != nil {
			logger.WithError(err).Warn("metrics: invalid date parameter for total-revenue")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		total, err := service.TotalRevenue(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("metrics: failed to compute total revenue")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular faturamento total", nil)
			return
		}

		writeJSON(w, r, map[string]float64{"total": total})
	})
}

// GetAverageTicket retorna o ticket médio no intervalo.
func GetAverageTicket(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseMetricFilters(r)
		if err != nil {
			logger.WithError(err).Warn("metrics: invalid date parameter for average-ticket")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		avg, err := service.AverageTicket(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("metrics: failed to compute average ticket")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular ticket médio", nil)
			return
		}

		writeJSON(w, r, map[string]float64{"avg_ticket": avg})
	})
}

// GetTopProducts retorna os produtos mais vendidos no intervalo.
func GetTopProducts(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseMetricFilters(r)
		if err != nil {
			logger.WithError(err).Warn("metrics: invalid date parameter for top-products")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		limit := defaultTopProductsLimit
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			limit, err = strconv.Atoi(rawLimit)
			if err != nil || limit < minTopProductsLimit || limit > maxTopProductsLimit {
				logger.WithField("limit", rawLimit).Warn("metrics: invalid limit parameter for top-products")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit deve ser um inteiro entre 1 e 50", nil)
				return
			}
		}

		products, err := service.TopProducts(r.Context(), filters, limit)
		if err != nil {
			logger.WithError(err).Error("metrics: failed to compute top products")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular produtos mais vendidos", nil)
			return
		}

		writeJSON(w, r, map[string]any{"data": products})
	})
}

// GetTotalOrders retorna a quantidade de pedidos no intervalo.
func GetTotalOrders(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseMetricFilters(r)
		if err != nil {
			logger.WithError(err).Warn("metrics: invalid date parameter for total-orders")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		qty, err := service.TotalOrders(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("metrics: failed to compute total orders")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao contar pedidos", nil)
			return
		}

		writeJSON(w, r, map[string]float64{"total_orders": qty})
	})
}

// GetAverageRating retorna a avaliação média no intervalo. A métrica é
// opcional: schemas sem coluna de rating respondem 0.0.
func GetAverageRating(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseMetricFilters(r)
		if err != nil {
			logger.WithError(err).Warn("metrics: invalid date parameter for average-rating")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		avg, err := service.AverageRating(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("metrics: failed to compute average rating")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular avaliação média", nil)
			return
		}

		writeJSON(w, r, map[string]float64{"average_rating": avg})
	})
}
