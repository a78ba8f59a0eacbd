package entity

import "time"

// Sale representa una venta registrada en el ledger (append-only).
// Una venta pertenece a exactamente un producto; al eliminar el producto se
// eliminan sus ventas en cascada. No existe update ni delete individual.
type Sale struct {
	ID        string
	ProductID string
	Quantity  int // cantidad vendida, siempre positiva
	Date      time.Time
}
