package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/ports"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// SellUseCase registra ventas de forma transaccional: bloquea la fila del
// producto (SELECT FOR UPDATE), valida el stock disponible, decrementa la
// cantidad y agrega la venta al ledger con Commit/Rollback.
//
// Dos ventas concurrentes sobre el mismo producto se serializan en el bloqueo
// de fila: ninguna puede observar la cantidad previa al decremento de la otra.
type SellUseCase struct {
	txRunner TxRunner
	cache    ports.Cache
	now      func() time.Time
}

// NewSellUseCase construye el caso de uso.
func NewSellUseCase(txRunner TxRunner, cache ports.Cache) *SellUseCase {
	return &SellUseCase{txRunner: txRunner, cache: cache, now: time.Now}
}

// Sell ejecuta la venta como unidad atómica y devuelve el eco de la operación:
// nombre, cantidad vendida, stock restante (post-decremento) y total al precio
// vigente. ErrNotFound, ErrInsufficientStock y ErrInvalidInput se devuelven
// sin dejar estado parcial; cualquier fallo de storage hace rollback completo.
func (uc *SellUseCase) Sell(ctx context.Context, in dto.SellRequest) (*dto.SellResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.SellResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Bloquea la fila del producto para evitar el lost update clásico
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}

		if err := productRepo.DecrementQuantity(product.ID, in.Quantity); err != nil {
			return err
		}

		sale := &entity.Sale{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Quantity:  in.Quantity,
			Date:      uc.now(),
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		out = &dto.SellResponse{
			ProductID:      product.ID,
			Name:           product.Name,
			QuantitySold:   in.Quantity,
			RemainingStock: product.Quantity - in.Quantity,
			TotalPrice:     product.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// La venta cambió los agregados del dashboard; invalidar el cache.
	_ = uc.cache.Delete(ctx, ports.CacheKeyDashboard)

	return out, nil
}
