package domain

import "time"

// MetricFilters são os filtros opcionais aceitos por todas as métricas.
// Limites de data nulos significam "sem restrição" naquele lado; ambos os
// limites são inclusivos.
type MetricFilters struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Channel  string
}

// Tipos de linha retornados por TopProducts. Quando não há itens de venda no
// período, o resultado degrada para agregação por dia da tabela sales e cada
// linha representa um dia, não um produto.
const (
	ProductSummaryKindProduct   = "product"
	ProductSummaryKindDayBucket = "day_bucket"
)

type ProductSummary struct {
	Kind         string  `json:"kind"`
	ProductID    *int64  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	TotalSold    float64 `json:"total_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

// DashboardSummary reúne as métricas principais exibidas no dashboard.
type DashboardSummary struct {
	TotalRevenue  float64          `json:"total_revenue"`
	AverageTicket float64          `json:"average_ticket"`
	TotalOrders   float64          `json:"total_orders"`
	TopProducts   []ProductSummary `json:"top_products"`
}

// DashboardSnapshot é o resumo do dashboard materializado para um dia.
type DashboardSnapshot struct {
	ID        int64             `json:"id"`
	Day       time.Time         `json:"day"`
	Summary   *DashboardSummary `json:"summary"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
