package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate y DecrementQuantity solo tienen sentido dentro de una
// transacción (ver stock.TxRunner); fuera de ella el bloqueo de fila se
// libera de inmediato.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Devuelve nil si no existe.
	GetForUpdate(id string) (*entity.Product, error)
	// GetByNameAndCategory busca por la clave natural de importación.
	GetByNameAndCategory(name, category string) (*entity.Product, error)
	Update(product *entity.Product) error
	// DecrementQuantity resta qty al stock disponible del producto.
	DecrementQuantity(id string, qty int) error
	// UpdatePriceAndQuantity sobrescribe precio y stock (reconciliación de importación).
	UpdatePriceAndQuantity(id string, price decimal.Decimal, quantity int) error
	List(limit, offset int) ([]*entity.Product, error)
	ListCategories() ([]string, error)
	Delete(id string) error
}
