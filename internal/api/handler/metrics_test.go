package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mleodato/restaurant-analytics-api/internal/domain"
	"github.com/mleodato/restaurant-analytics-api/internal/usecases/analytics/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetTotalRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAnalyzer(ctrl)

	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	expectedFilters := domain.MetricFilters{DateFrom: &from, DateTo: &to, Channel: "4"}

	mockService.EXPECT().
		TotalRevenue(gomock.Any(), expectedFilters).
		Return(1500.75, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics/total-revenue?date_from=2025-05-01&date_to=2025-05-31&channel=4", nil)
	rec := httptest.NewRecorder()

	GetTotalRevenue(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"total": 1500.75}`, rec.Body.String())
}

func TestGetTotalRevenue_DataInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// O serviço não deve ser chamado quando a data não parseia
	mockService := mocks.NewMockAnalyzer(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/metrics/total-revenue?date_from=01-05-2025", nil)
	rec := httptest.NewRecorder()

	GetTotalRevenue(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_003")
}

func TestGetTotalRevenue_ErroDeBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAnalyzer(ctrl)
	mockService.EXPECT().
		TotalRevenue(gomock.Any(), gomock.Any()).
		Return(0.0, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/metrics/total-revenue", nil)
	rec := httptest.NewRecorder()

	GetTotalRevenue(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_002")
}

func TestGetAverageTicket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAnalyzer(ctrl)
	mockService.EXPECT().
		AverageTicket(gomock.Any(), domain.MetricFilters{}).
		Return(32.5, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics/average-ticket", nil)
	rec := httptest.NewRecorder()

	GetAverageTicket(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"avg_ticket": 32.5}`, rec.Body.String())
}

func TestGetTotalOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAnalyzer(ctrl)
	mockService.EXPECT().
		TotalOrders(gomock.Any(), domain.MetricFilters{}).
		Return(42.0, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics/total-orders", nil)
	rec := httptest.NewRecorder()

	GetTotalOrders(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_orders": 42}`, rec.Body.String())
}

func TestGetAverageRating_SchemaSemRatingValeZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAnalyzer(ctrl)
	mockService.EXPECT().
		AverageRating(gomock.Any(), domain.MetricFilters{}).
		Return(0.0, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics/average-rating", nil)
	rec := httptest.NewRecorder()

	GetAverageRating(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"average_rating": 0}`, rec.Body.String())
}

func TestGetTopProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productID := int64(3)
	mockService := mocks.NewMockAnalyzer(ctrl)
	mockService.EXPECT().
		TopProducts(gomock.Any(), domain.MetricFilters{}, 10).
		Return([]domain.ProductSummary{
			{
				Kind:         domain.ProductSummaryKindProduct,
				ProductID:    &productID,
				ProductName:  "X-Bacon Duplo",
				TotalSold:    10,
				TotalRevenue: 300,
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics/top-products?limit=10", nil)
	rec := httptest.NewRecorder()

	GetTopProducts(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"data": [
			{
				"kind": "product",
				"product_id": 3,
				"product_name": "X-Bacon Duplo",
				"total_sold": 10,
				"total_revenue": 300
			}
		]
	}`, rec.Body.String())
}

func TestGetTopProducts_LinhasDeFallbackLevamKindDayBucket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAnalyzer(ctrl)
	mockService.EXPECT().
		TopProducts(gomock.Any(), gomock.Any(), defaultTopProductsLimit).
		Return([]domain.ProductSummary{
			{
				Kind:         domain.ProductSummaryKindDayBucket,
				ProductName:  "2025-05-03",
				TotalSold:    3,
				TotalRevenue: 60,
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics/top-products", nil)
	rec := httptest.NewRecorder()

	GetTopProducts(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"data": [
			{
				"kind": "day_bucket",
				"product_id": null,
				"product_name": "2025-05-03",
				"total_sold": 3,
				"total_revenue": 60
			}
		]
	}`, rec.Body.String())
}

func TestGetTopProducts_LimiteInvalido(t *testing.T) {
	tests := []struct {
		name  string
		limit string
	}{
		{name: "zero", limit: "0"},
		{name: "negativo", limit: "-1"},
		{name: "acima do teto", limit: "51"},
		{name: "não numérico", limit: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockAnalyzer(ctrl)

			req := httptest.NewRequest(http.MethodGet, "/metrics/top-products?limit="+tt.limit, nil)
			rec := httptest.NewRecorder()

			GetTopProducts(mockService).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VAL_001")
		})
	}
}

func TestGetDashboardSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAnalyzer(ctrl)
	mockService.EXPECT().
		DashboardSummary(gomock.Any(), domain.MetricFilters{}, defaultTopProductsLimit).
		Return(&domain.DashboardSummary{
			TotalRevenue:  1500.5,
			AverageTicket: 37.51,
			TotalOrders:   40,
			TopProducts:   []domain.ProductSummary{},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/dashboard-summary", nil)
	rec := httptest.NewRecorder()

	GetDashboardSummary(mockService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"total_revenue": 1500.5,
		"average_ticket": 37.51,
		"total_orders": 40,
		"top_products": []
	}`, rec.Body.String())
}

func TestGetDashboardSummary_ErroDeBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockAnalyzer(ctrl)
	mockService.EXPECT().
		DashboardSummary(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/dashboard-summary", nil)
	rec := httptest.NewRecorder()

	GetDashboardSummary(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_002")
}
