package analytics

import (
	"context"
	"testing"

	"github.com/mleodato/restaurant-analytics-api/infrastructure/repository"
	"github.com/mleodato/restaurant-analytics-api/infrastructure/repository/mocks"
	"github.com/mleodato/restaurant-analytics-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_DashboardSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesMetricsRepository(ctrl)
	service := NewService(mockRepo)

	ctx := context.Background()
	filters := domain.MetricFilters{}

	productID := int64(3)
	topProducts := []domain.ProductSummary{
		{
			Kind:         domain.ProductSummaryKindProduct,
			ProductID:    &productID,
			ProductName:  "X-Bacon Duplo",
			TotalSold:    10,
			TotalRevenue: 300,
		},
	}

	mockRepo.EXPECT().TotalRevenue(ctx, filters).Return(1000.555, nil)
	mockRepo.EXPECT().AverageTicket(ctx, filters).Return(33.333, nil)
	mockRepo.EXPECT().TotalOrders(ctx, filters).Return(30.0, nil)
	mockRepo.EXPECT().TopProducts(ctx, filters, repository.DefaultTopProducts).Return(topProducts, nil)

	summary, err := service.DashboardSummary(ctx, filters, repository.DefaultTopProducts)
	require.NoError(t, err)
	require.NotNil(t, summary)

	// Os valores monetários chegam arredondados em duas casas
	assert.Equal(t, 1000.56, summary.TotalRevenue)
	assert.Equal(t, 33.33, summary.AverageTicket)
	assert.Equal(t, 30.0, summary.TotalOrders)
	assert.Equal(t, topProducts, summary.TopProducts)
}

func TestService_DashboardSummaryRepassaLimiteDoRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesMetricsRepository(ctrl)
	service := NewService(mockRepo)

	ctx := context.Background()
	filters := domain.MetricFilters{}

	mockRepo.EXPECT().TotalRevenue(ctx, filters).Return(0.0, nil).Times(2)
	mockRepo.EXPECT().AverageTicket(ctx, filters).Return(0.0, nil).Times(2)
	mockRepo.EXPECT().TotalOrders(ctx, filters).Return(0.0, nil).Times(2)

	// O limite configurado chega intacto ao repositório
	mockRepo.EXPECT().TopProducts(ctx, filters, 8).Return(nil, nil)
	_, err := service.DashboardSummary(ctx, filters, 8)
	require.NoError(t, err)

	// Limite não positivo cai no padrão
	mockRepo.EXPECT().TopProducts(ctx, filters, repository.DefaultTopProducts).Return(nil, nil)
	_, err = service.DashboardSummary(ctx, filters, 0)
	require.NoError(t, err)
}

func TestService_DashboardSummaryPropagaErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesMetricsRepository(ctrl)
	service := NewService(mockRepo)

	ctx := context.Background()
	filters := domain.MetricFilters{}

	mockRepo.EXPECT().TotalRevenue(ctx, filters).Return(0.0, assert.AnError)

	summary, err := service.DashboardSummary(ctx, filters, repository.DefaultTopProducts)
	assert.Error(t, err)
	assert.Nil(t, summary)
}

func TestService_DelegaMetricasAoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesMetricsRepository(ctrl)
	service := NewService(mockRepo)

	ctx := context.Background()
	filters := domain.MetricFilters{Channel: "4"}

	mockRepo.EXPECT().TotalRevenue(ctx, filters).Return(150.0, nil)
	mockRepo.EXPECT().AverageRating(ctx, filters).Return(4.2, nil)
	mockRepo.EXPECT().TopProducts(ctx, filters, 10).Return(nil, nil)

	revenue, err := service.TotalRevenue(ctx, filters)
	require.NoError(t, err)
	assert.Equal(t, 150.0, revenue)

	rating, err := service.AverageRating(ctx, filters)
	require.NoError(t, err)
	assert.Equal(t, 4.2, rating)

	products, err := service.TopProducts(ctx, filters, 10)
	require.NoError(t, err)
	assert.Nil(t, products)
}
