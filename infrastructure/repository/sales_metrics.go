package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/mleodato/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/mleodato/restaurant-analytics-api/internal/domain"
)

const (
	salesTable = "sales s"

	// DefaultTopProducts é o tamanho do ranking quando o caller não informa limite.
	DefaultTopProducts = 5
)

// Candidatas para a métrica de avaliação média. Nenhuma implantação garante
// coluna de rating; a primeira combinação (tabela, coluna) aceita pelo banco
// responde a métrica, e o esgotamento de todas vale 0.0 sem erro.
var (
	ratingColumns = []string{"rating", "customer_rating", "score", "stars"}
	ratingTables  = []struct {
		name  string
		alias string
	}{
		{"sales", "s"},
		{"product_sales", "ps"},
		{"delivery_sales", "ds"},
	}
)

type SalesMetricsRepository interface {
	TotalRevenue(ctx context.Context, f domain.MetricFilters) (float64, error)
	AverageTicket(ctx context.Context, f domain.MetricFilters) (float64, error)
	TotalOrders(ctx context.Context, f domain.MetricFilters) (float64, error)
	AverageRating(ctx context.Context, f domain.MetricFilters) (float64, error)
	TopProducts(ctx context.Context, f domain.MetricFilters, limit int) ([]domain.ProductSummary, error)
}

type salesMetricsRepository struct {
	prober
}

func NewSalesMetricsRepository(conn postgres.Queryer) SalesMetricsRepository {
	return &salesMetricsRepository{prober{conn: conn}}
}

// TotalRevenue soma o faturamento das vendas no intervalo.
func (r *salesMetricsRepository) TotalRevenue(ctx context.Context, f domain.MetricFilters) (float64, error) {
	base := squirrel.
		Select("COALESCE(SUM(s.total_amount), 0) AS total").
		From(salesTable)

	return r.scalarWithChannel(ctx, base, "s", f)
}

// AverageTicket calcula o valor médio por venda no intervalo.
func (r *salesMetricsRepository) AverageTicket(ctx context.Context, f domain.MetricFilters) (float64, error) {
	base := squirrel.
		Select("COALESCE(AVG(s.total_amount), 0) AS avg_ticket").
		From(salesTable)

	return r.scalarWithChannel(ctx, base, "s", f)
}

// TotalOrders conta os pedidos no intervalo.
func (r *salesMetricsRepository) TotalOrders(ctx context.Context, f domain.MetricFilters) (float64, error) {
	base := squirrel.
		Select("COUNT(*)::float AS qty").
		From(salesTable)

	return r.scalarWithChannel(ctx, base, "s", f)
}

// AverageRating calcula a avaliação média, se alguma coluna de rating existir.
// Varre tabelas e colunas candidatas em ordem fixa; a métrica é opcional por
// contrato, então esgotar todas as combinações devolve 0.0 sem erro.
func (r *salesMetricsRepository) AverageRating(ctx context.Context, f domain.MetricFilters) (float64, error) {
	for _, table := range ratingTables {
		for _, col := range ratingColumns {
			base := squirrel.
				Select(fmt.Sprintf("COALESCE(AVG(%s.%s), 0) AS avg_rating", table.alias, col)).
				From(table.name + " " + table.alias)

			var (
				val float64
				err error
			)

			// Só a tabela sales carrega canal; nas demais o filtro não se aplica
			if table.name == "sales" && f.Channel != "" {
				val, err = r.scalarWithChannel(ctx, base, table.alias, f)
			} else {
				val, err = r.scalarProbing(ctx, base, table.alias, f)
			}

			if err == nil {
				return val, nil
			}
			if !postgres.IsSchemaError(err) {
				return 0, err
			}
		}
	}

	return 0, nil
}

// TopProducts retorna os itens mais vendidos no intervalo, ordenados por
// receita e, em empate, por quantidade. Quando não há itens de venda no
// período, degrada para agregação por dia da tabela sales, com cada linha
// marcada como day_bucket para o caller distinguir.
func (r *salesMetricsRepository) TopProducts(ctx context.Context, f domain.MetricFilters, limit int) ([]domain.ProductSummary, error) {
	if limit <= 0 {
		limit = DefaultTopProducts
	}

	productName := "COALESCE(i.name, CONCAT('Item ', si.item_id))"

	base := squirrel.
		Select(
			"si.item_id AS product_id",
			productName+" AS product_name",
			"COALESCE(SUM(si.quantity * si.price), 0) AS total_revenue",
			"COALESCE(SUM(si.quantity), 0) AS total_sold",
		).
		From("item_product_sales si").
		Join("product_sales ps ON ps.id = si.product_sale_id").
		LeftJoin("items i ON i.id = si.item_id").
		GroupBy("si.item_id", productName).
		OrderBy("total_revenue DESC", "total_sold DESC").
		Limit(uint64(limit))

	// O schema de product_sales é fixado pelo gerador; a data não é sondada aqui
	rows, err := r.rows(ctx, withDateClause(base, "ps", "created_at", f))
	if err != nil {
		if !postgres.IsSchemaError(err) {
			return nil, err
		}
		rows = nil
	}

	if len(rows) > 0 {
		out := make([]domain.ProductSummary, 0, len(rows))
		for _, row := range rows {
			out = append(out, domain.ProductSummary{
				Kind:         domain.ProductSummaryKindProduct,
				ProductID:    asInt64Ptr(row["product_id"]),
				ProductName:  asString(row["product_name"]),
				TotalSold:    asFloat(row["total_sold"]),
				TotalRevenue: asFloat(row["total_revenue"]),
			})
		}
		return out, nil
	}

	fallback := squirrel.
		Select(
			"TO_CHAR(s.created_at, 'YYYY-MM-DD') AS product_name",
			"COALESCE(SUM(s.total_amount), 0) AS total_revenue",
			"COUNT(*) AS total_sold",
		).
		From(salesTable).
		GroupBy("1").
		OrderBy("total_revenue DESC").
		Limit(uint64(limit))

	rows, err = r.rows(ctx, withDateClause(fallback, "s", "created_at", f))
	if err != nil {
		return nil, err
	}

	out := make([]domain.ProductSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ProductSummary{
			Kind:         domain.ProductSummaryKindDayBucket,
			ProductName:  asString(row["product_name"]),
			TotalSold:    asFloat(row["total_sold"]),
			TotalRevenue: asFloat(row["total_revenue"]),
		})
	}
	return out, nil
}
