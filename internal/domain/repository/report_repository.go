package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockOverviewResult fila cruda de la consulta de resumen de stock.
// La produce la DB; el use case la convierte en DTO.
type StockOverviewResult struct {
	ProductID      string
	Name           string
	Category       string
	Price          decimal.Decimal
	AvailableStock int             // products.quantity, autoritativo
	ItemsSold      int             // SUM(sales.quantity), 0 si no hay ventas
	Revenue        decimal.Decimal // SUM(sales.quantity * products.price), precio actual
}

// SalesSummaryResult agregados globales del ledger y el catálogo.
type SalesSummaryResult struct {
	TotalTransactions   int
	TotalItemsSold      int
	TotalRevenue        decimal.Decimal
	TotalProducts       int
	TotalAvailableStock int
}

// TopProductResult producto del ranking por unidades vendidas.
type TopProductResult struct {
	ProductID string
	Name      string
	Category  string
	ItemsSold int
	Revenue   decimal.Decimal
}

// RecentSaleResult venta reciente con el nombre del producto y el total de línea.
type RecentSaleResult struct {
	SaleID     string
	Name       string
	Quantity   int
	TotalPrice decimal.Decimal // quantity * precio actual del producto
	Date       time.Time
}

// ReportRepository define las consultas de lectura del motor de agregación.
// Las implementaciones son read-only (no modifican datos) y observan el estado
// con visibilidad read-committed respecto a ventas concurrentes.
type ReportRepository interface {
	// GetStockOverview devuelve una fila por producto (LEFT JOIN con el
	// ledger; productos sin ventas aparecen con ceros). category vacío = sin
	// filtro. sortColumn debe venir ya validado contra la allow-list del use
	// case; vacío = orden por defecto de la DB.
	GetStockOverview(ctx context.Context, category, sortColumn, sortDir string) ([]StockOverviewResult, error)

	// GetSalesSummary devuelve los agregados globales del dashboard.
	// Usa COALESCE para devolver ceros con catálogo o ledger vacíos.
	GetSalesSummary(ctx context.Context) (SalesSummaryResult, error)

	// GetTopProducts devuelve los `limit` productos con más unidades vendidas.
	GetTopProducts(ctx context.Context, limit int) ([]TopProductResult, error)

	// GetRecentSales devuelve las `limit` ventas más recientes (fecha desc).
	GetRecentSales(ctx context.Context, limit int) ([]RecentSaleResult, error)
}
