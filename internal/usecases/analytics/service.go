package analytics

import (
	"context"

	"github.com/mleodato/restaurant-analytics-api/infrastructure/repository"
	"github.com/mleodato/restaurant-analytics-api/internal/domain"
	"github.com/mleodato/restaurant-analytics-api/pkg/utils"
)

// Analyzer expõe as métricas de vendas calculadas contra o banco.
type Analyzer interface {
	// TotalRevenue calcula o faturamento total no intervalo
	TotalRevenue(ctx context.Context, f domain.MetricFilters) (float64, error)

	// AverageTicket calcula o ticket médio no intervalo
	AverageTicket(ctx context.Context, f domain.MetricFilters) (float64, error)

	// TotalOrders conta os pedidos no intervalo
	TotalOrders(ctx context.Context, f domain.MetricFilters) (float64, error)

	// AverageRating calcula a avaliação média; 0.0 quando o schema não tem rating
	AverageRating(ctx context.Context, f domain.MetricFilters) (float64, error)

	// TopProducts retorna os produtos mais vendidos, limitado a limit linhas
	TopProducts(ctx context.Context, f domain.MetricFilters, limit int) ([]domain.ProductSummary, error)

	// DashboardSummary reúne as métricas principais em uma única resposta.
	// topLimit dimensiona o ranking de produtos; valores não positivos caem
	// no padrão do repositório
	DashboardSummary(ctx context.Context, f domain.MetricFilters, topLimit int) (*domain.DashboardSummary, error)
}

type Service struct {
	metricsRepo repository.SalesMetricsRepository
}

func NewService(metricsRepo repository.SalesMetricsRepository) Analyzer {
	return &Service{metricsRepo: metricsRepo}
}

func (s *Service) TotalRevenue(ctx context.Context, f domain.MetricFilters) (float64, error) {
	return s.metricsRepo.TotalRevenue(ctx, f)
}

func (s *Service) AverageTicket(ctx context.Context, f domain.MetricFilters) (float64, error) {
	return s.metricsRepo.AverageTicket(ctx, f)
}

func (s *Service) TotalOrders(ctx context.Context, f domain.MetricFilters) (float64, error) {
	return s.metricsRepo.TotalOrders(ctx, f)
}

func (s *Service) AverageRating(ctx context.Context, f domain.MetricFilters) (float64, error) {
	return s.metricsRepo.AverageRating(ctx, f)
}

func (s *Service) TopProducts(ctx context.Context, f domain.MetricFilters, limit int) ([]domain.ProductSummary, error) {
	return s.metricsRepo.TopProducts(ctx, f, limit)
}

// DashboardSummary calcula as métricas do dashboard em sequência, sobre a
// mesma janela. Cada consulta pega e devolve sua conexão ao pool; nenhuma
// transação atravessa as chamadas.
func (s *Service) DashboardSummary(ctx context.Context, f domain.MetricFilters, topLimit int) (*domain.DashboardSummary, error) {
	if topLimit <= 0 {
		topLimit = repository.DefaultTopProducts
	}

	revenue, err := s.metricsRepo.TotalRevenue(ctx, f)
	if err != nil {
		return nil, err
	}

	ticket, err := s.metricsRepo.AverageTicket(ctx, f)
	if err != nil {
		return nil, err
	}

	orders, err := s.metricsRepo.TotalOrders(ctx, f)
	if err != nil {
		return nil, err
	}

	products, err := s.metricsRepo.TopProducts(ctx, f, topLimit)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardSummary{
		TotalRevenue:  utils.RoundWithTwoDecimalPlace(revenue),
		AverageTicket: utils.RoundWithTwoDecimalPlace(ticket),
		TotalOrders:   orders,
		TopProducts:   products,
	}, nil
}
