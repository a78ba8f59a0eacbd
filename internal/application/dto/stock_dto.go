package dto

import (
	"github.com/shopspring/decimal"
)

// SellRequest entrada para registrar una venta.
type SellRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// SellResponse resultado de una venta confirmada.
// RemainingStock es el stock posterior al decremento; TotalPrice se calcula
// con el precio vigente al momento de la venta.
type SellResponse struct {
	ProductID      string          `json:"product_id"`
	Name           string          `json:"name"`
	QuantitySold   int             `json:"quantity_sold"`
	RemainingStock int             `json:"remaining_stock"`
	TotalPrice     decimal.Decimal `json:"total_price"`
}

// ImportRow fila cruda del CSV de importación. Los campos numéricos llegan
// como texto y se validan fila por fila (nunca se coercionan a cero).
type ImportRow struct {
	Name     string
	Category string
	Price    string
	Quantity string
}

// Acciones posibles por fila de importación.
const (
	ImportActionCreated = "created"
	ImportActionUpdated = "updated"
	ImportActionFailed  = "failed"
)

// ImportRowResult resultado de una fila de importación (éxito o rechazo).
type ImportRowResult struct {
	Row      int    `json:"row"` // índice 1-based dentro del archivo
	Name     string `json:"name"`
	Category string `json:"category"`
	Action   string `json:"action"`
	Error    string `json:"error,omitempty"`
}

// ImportSummary resumen de una importación best-effort: las filas aplicadas
// permanecen aunque otras fallen.
type ImportSummary struct {
	Created int               `json:"created"`
	Updated int               `json:"updated"`
	Failed  int               `json:"failed"`
	Results []ImportRowResult `json:"results"`
}

// StockOverviewRow fila del resumen de stock por producto.
type StockOverviewRow struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	AvailableStock int             `json:"available_stock"`
	ItemsSold      int             `json:"items_sold"`
	Revenue        decimal.Decimal `json:"revenue"`
}
