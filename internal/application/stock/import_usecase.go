package stock

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/ports"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// ImportUseCase reconcilia filas importadas contra el catálogo por la clave
// natural (name, category): si el producto existe sobrescribe precio y
// cantidad conservando id y descripción; si no existe lo crea con descripción
// vacía.
//
// Cada fila corre en su propia transacción (best-effort): un fallo en una fila
// no revierte las anteriores y el resultado por fila queda explícito en el
// resumen. Pares (name, category) duplicados en el mismo archivo se aplican en
// orden de entrada, gana la última escritura.
type ImportUseCase struct {
	txRunner TxRunner
	cache    ports.Cache
	now      func() time.Time
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(txRunner TxRunner, cache ports.Cache) *ImportUseCase {
	return &ImportUseCase{txRunner: txRunner, cache: cache, now: time.Now}
}

// ImportRows procesa las filas en orden y devuelve el resumen con el resultado
// de cada una. Campos numéricos vacíos o malformados rechazan la fila, nunca
// se coercionan a cero.
func (uc *ImportUseCase) ImportRows(ctx context.Context, rows []dto.ImportRow) *dto.ImportSummary {
	summary := &dto.ImportSummary{
		Results: make([]dto.ImportRowResult, 0, len(rows)),
	}

	for i, row := range rows {
		result := dto.ImportRowResult{
			Row:      i + 1,
			Name:     row.Name,
			Category: row.Category,
		}

		price, quantity, err := uc.validateRow(row)
		if err != nil {
			result.Action = dto.ImportActionFailed
			result.Error = err.Error()
			summary.Failed++
			summary.Results = append(summary.Results, result)
			continue
		}

		action, err := uc.upsertRow(ctx, row, price, quantity)
		if err != nil {
			result.Action = dto.ImportActionFailed
			result.Error = err.Error()
			summary.Failed++
		} else {
			result.Action = action
			if action == dto.ImportActionCreated {
				summary.Created++
			} else {
				summary.Updated++
			}
		}
		summary.Results = append(summary.Results, result)
	}

	if summary.Created > 0 || summary.Updated > 0 {
		_ = uc.cache.Delete(ctx, ports.CacheKeyDashboard)
	}

	return summary
}

// validateRow valida la fila y parsea los campos numéricos.
func (uc *ImportUseCase) validateRow(row dto.ImportRow) (decimal.Decimal, int, error) {
	if strings.TrimSpace(row.Name) == "" || strings.TrimSpace(row.Category) == "" {
		return decimal.Zero, 0, fmt.Errorf("%w: name y category son requeridos", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(row.Price) == "" {
		return decimal.Zero, 0, fmt.Errorf("%w: price vacío", domain.ErrInvalidInput)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(row.Price))
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("%w: price malformado: %s", domain.ErrInvalidInput, row.Price)
	}
	if price.IsNegative() || price.GreaterThan(entity.MaxPrice) {
		return decimal.Zero, 0, fmt.Errorf("%w: price fuera de rango: %s", domain.ErrInvalidInput, row.Price)
	}
	if strings.TrimSpace(row.Quantity) == "" {
		return decimal.Zero, 0, fmt.Errorf("%w: quantity vacío", domain.ErrInvalidInput)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(row.Quantity))
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("%w: quantity malformado: %s", domain.ErrInvalidInput, row.Quantity)
	}
	if quantity < 0 {
		return decimal.Zero, 0, fmt.Errorf("%w: quantity negativo: %s", domain.ErrInvalidInput, row.Quantity)
	}
	return price, quantity, nil
}

// upsertRow aplica una fila dentro de su propia transacción.
func (uc *ImportUseCase) upsertRow(ctx context.Context, row dto.ImportRow, price decimal.Decimal, quantity int) (string, error) {
	action := dto.ImportActionUpdated
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.SaleRepository,
	) error {
		existing, err := productRepo.GetByNameAndCategory(row.Name, row.Category)
		if err != nil {
			return err
		}
		if existing != nil {
			// Upsert-update: el id y la descripción se conservan
			return productRepo.UpdatePriceAndQuantity(existing.ID, price, quantity)
		}
		action = dto.ImportActionCreated
		now := uc.now()
		return productRepo.Create(&entity.Product{
			ID:        uuid.New().String(),
			Name:      row.Name,
			Category:  row.Category,
			Price:     price,
			Quantity:  quantity,
			CreatedAt: now,
			UpdatedAt: now,
		})
	})
	if err != nil {
		return dto.ImportActionFailed, err
	}
	return action, nil
}
