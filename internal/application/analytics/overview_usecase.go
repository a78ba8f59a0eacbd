// Package analytics contiene los casos de uso read-only del motor de
// agregación: resumen de stock por producto y dashboard de ventas.
package analytics

import (
	"context"
	"strings"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// Allow-list de columnas ordenables del resumen de stock. Un sortBy no
// reconocido se ignora (orden por defecto), nunca es error.
var overviewSortColumns = map[string]string{
	"name":            "name",
	"category":        "category",
	"price":           "price",
	"available_stock": "available_stock",
	"items_sold":      "items_sold",
	"revenue":         "revenue",
}

// OverviewUseCase resumen de stock por producto: disponible autoritativo del
// catálogo, vendidos e ingresos derivados del ledger (precio actual).
type OverviewUseCase struct {
	reportRepo repository.ReportRepository
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(reportRepo repository.ReportRepository) *OverviewUseCase {
	return &OverviewUseCase{reportRepo: reportRepo}
}

// GetStockOverview devuelve una fila por producto, opcionalmente filtrada por
// categoría y ordenada por una columna de la allow-list (asc por defecto).
// Productos sin ventas aparecen con items_sold = 0 y revenue = 0.
func (uc *OverviewUseCase) GetStockOverview(ctx context.Context, category, sortBy, sortOrder string) ([]dto.StockOverviewRow, error) {
	column := overviewSortColumns[strings.ToLower(strings.TrimSpace(sortBy))]
	dir := "ASC"
	if strings.EqualFold(strings.TrimSpace(sortOrder), "desc") {
		dir = "DESC"
	}

	results, err := uc.reportRepo.GetStockOverview(ctx, category, column, dir)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.StockOverviewRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, dto.StockOverviewRow{
			ID:             r.ProductID,
			Name:           r.Name,
			Category:       r.Category,
			Price:          r.Price,
			AvailableStock: r.AvailableStock,
			ItemsSold:      r.ItemsSold,
			Revenue:        r.Revenue,
		})
	}
	return rows, nil
}
