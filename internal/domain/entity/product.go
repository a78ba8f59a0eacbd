package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxPrice es el precio máximo representable por la columna NUMERIC(10,2).
var MaxPrice = decimal.RequireFromString("99999999.99")

// Product representa un producto del catálogo.
// Quantity es el stock disponible autoritativo; se decrementa únicamente vía
// el motor de ventas (SellUseCase) o se sobrescribe en la reconciliación de
// importación. Las métricas de ventas (items_sold, revenue) se derivan del
// ledger, nunca de este campo.
type Product struct {
	ID          string
	Name        string
	Category    string          // (Name, Category) es la clave natural para importación
	Price       decimal.Decimal // precio de venta actual
	Quantity    int             // stock disponible, nunca negativo
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PriceInRange valida 0 <= price <= MaxPrice con a lo sumo dos decimales.
func PriceInRange(price decimal.Decimal) bool {
	return !price.IsNegative() && price.LessThanOrEqual(MaxPrice) && price.Exponent() >= -2
}
