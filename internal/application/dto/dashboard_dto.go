package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO agregados globales del catálogo y el ledger.
type DashboardSummaryDTO struct {
	TotalTransactions   int             `json:"total_transactions"`
	TotalItemsSold      int             `json:"total_items_sold"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	TotalProducts       int             `json:"total_products"`
	TotalAvailableStock int             `json:"total_available_stock"`
}

// TopProductDTO producto del top-5 por unidades vendidas.
type TopProductDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	ItemsSold int             `json:"items_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// RecentSaleDTO venta reciente para el widget del dashboard.
type RecentSaleDTO struct {
	SaleID     string          `json:"sale_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Date       time.Time       `json:"date"`
}

// DashboardResponse respuesta de GET /api/stock/dashboard.
type DashboardResponse struct {
	Summary     DashboardSummaryDTO `json:"summary"`
	TopProducts []TopProductDTO     `json:"top_products"`
	RecentSales []RecentSaleDTO     `json:"recent_sales"`
}
