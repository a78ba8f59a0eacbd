package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de lectura del motor de agregación, directas sobre el
// pool (no participan en transacciones de escritura).
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetStockOverview una fila por producto con unidades vendidas y revenue
// acumulados. El revenue multiplica por el precio ACTUAL del producto, no por
// el precio al momento de cada venta. sortColumn llega ya validado por el use
// case contra su allow-list; aquí solo se interpola si no está vacío.
func (r *ReportRepo) GetStockOverview(ctx context.Context, category, sortColumn, sortDir string) ([]repository.StockOverviewResult, error) {
	query := `
		SELECT p.id, p.name, p.category, p.price,
			p.quantity AS available_stock,
			COALESCE(SUM(s.quantity), 0)::int AS items_sold,
			COALESCE(SUM(s.quantity * p.price), 0) AS revenue
		FROM products p
		LEFT JOIN sales s ON s.product_id = p.id`
	args := []any{}
	if category != "" {
		query += ` WHERE p.category = $1`
		args = append(args, category)
	}
	query += ` GROUP BY p.id, p.name, p.category, p.price, p.quantity`
	if sortColumn != "" {
		if sortDir != "DESC" {
			sortDir = "ASC"
		}
		query += fmt.Sprintf(" ORDER BY %s %s", sortColumn, sortDir)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stock overview query: %w", err)
	}
	defer rows.Close()

	var results []repository.StockOverviewResult
	for rows.Next() {
		var res repository.StockOverviewResult
		if err := rows.Scan(&res.ProductID, &res.Name, &res.Category, &res.Price,
			&res.AvailableStock, &res.ItemsSold, &res.Revenue); err != nil {
			return nil, fmt.Errorf("scan overview row: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// GetSalesSummary agregados globales. COALESCE garantiza ceros con catálogo o
// ledger vacíos en lugar de NULL.
func (r *ReportRepo) GetSalesSummary(ctx context.Context) (repository.SalesSummaryResult, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM sales)::int,
			(SELECT COALESCE(SUM(quantity), 0) FROM sales)::int,
			(SELECT COALESCE(SUM(s.quantity * p.price), 0)
				FROM sales s JOIN products p ON p.id = s.product_id),
			(SELECT COUNT(*) FROM products)::int,
			(SELECT COALESCE(SUM(quantity), 0) FROM products)::int`
	var res repository.SalesSummaryResult
	err := r.pool.QueryRow(ctx, query).Scan(
		&res.TotalTransactions, &res.TotalItemsSold, &res.TotalRevenue,
		&res.TotalProducts, &res.TotalAvailableStock,
	)
	if err != nil {
		return repository.SalesSummaryResult{}, fmt.Errorf("sales summary query: %w", err)
	}
	return res, nil
}

// GetTopProducts ranking por unidades vendidas, descendente. Productos sin
// ventas no aparecen (JOIN interno con el ledger).
func (r *ReportRepo) GetTopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT p.id, p.name, p.category,
			SUM(s.quantity)::int AS items_sold,
			SUM(s.quantity * p.price) AS revenue
		FROM sales s
		JOIN products p ON p.id = s.product_id
		GROUP BY p.id, p.name, p.category
		ORDER BY items_sold DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top products query: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var res repository.TopProductResult
		if err := rows.Scan(&res.ProductID, &res.Name, &res.Category,
			&res.ItemsSold, &res.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product row: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// GetRecentSales últimas ventas, más reciente primero. El total de línea usa
// el precio actual del producto.
func (r *ReportRepo) GetRecentSales(ctx context.Context, limit int) ([]repository.RecentSaleResult, error) {
	query := `
		SELECT s.id, p.name, s.quantity, s.quantity * p.price AS total_price, s.date
		FROM sales s
		JOIN products p ON p.id = s.product_id
		ORDER BY s.date DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sales query: %w", err)
	}
	defer rows.Close()

	var results []repository.RecentSaleResult
	for rows.Next() {
		var res repository.RecentSaleResult
		if err := rows.Scan(&res.SaleID, &res.Name, &res.Quantity,
			&res.TotalPrice, &res.Date); err != nil {
			return nil, fmt.Errorf("scan recent sale row: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
