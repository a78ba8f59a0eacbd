package repository

import (
	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para el ledger de ventas.
// El ledger es append-only: no expone update ni delete; las ventas solo
// desaparecen por el cascade al eliminar su producto.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CountByProduct(productID string) (int, error)
}
