package stock

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/application/dto"
)

func importRow(name, category, price, quantity string) dto.ImportRow {
	return dto.ImportRow{Name: name, Category: category, Price: price, Quantity: quantity}
}

func TestImportRows_CreaYActualiza(t *testing.T) {
	existing := testProduct("p1", "Teclado", "30.00", 4)
	existing.Description = "mecánico suizo"
	productRepo := newFakeProductRepo(existing)
	runner := &fakeTxRunner{productRepo: productRepo, saleRepo: &fakeSaleRepo{}}
	cache := newFakeCache()

	uc := NewImportUseCase(runner, cache)
	summary := uc.ImportRows(context.Background(), []dto.ImportRow{
		importRow("Teclado", "general", "35.50", "12"), // existe → update
		importRow("Mouse", "general", "9.99", "40"),    // nuevo → create
	})

	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 0, summary.Failed)
	require.Len(t, summary.Results, 2)
	assert.Equal(t, dto.ImportActionUpdated, summary.Results[0].Action)
	assert.Equal(t, dto.ImportActionCreated, summary.Results[1].Action)

	// El update conserva id y descripción, sobrescribe precio y stock
	p, _ := productRepo.GetByID("p1")
	require.NotNil(t, p)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("35.50")))
	assert.Equal(t, 12, p.Quantity)
	assert.Equal(t, "mecánico suizo", p.Description)

	created, _ := productRepo.GetByNameAndCategory("Mouse", "general")
	require.NotNil(t, created)
	assert.Equal(t, 40, created.Quantity)
	assert.Empty(t, created.Description, "productos importados nacen sin descripción")

	assert.Contains(t, cache.deleted, "reports:dashboard")
}

func TestImportRows_FilasInvalidasNoSeCoercionan(t *testing.T) {
	productRepo := newFakeProductRepo()
	runner := &fakeTxRunner{productRepo: productRepo, saleRepo: &fakeSaleRepo{}}

	uc := NewImportUseCase(runner, newFakeCache())
	summary := uc.ImportRows(context.Background(), []dto.ImportRow{
		importRow("", "general", "10.00", "5"),        // sin nombre
		importRow("Cable", "", "10.00", "5"),          // sin categoría
		importRow("Cable", "general", "", "5"),        // price vacío
		importRow("Cable", "general", "abc", "5"),     // price malformado
		importRow("Cable", "general", "-1.00", "5"),   // price negativo
		importRow("Cable", "general", "10.00", ""),    // quantity vacío
		importRow("Cable", "general", "10.00", "2.5"), // quantity no entero
		importRow("Cable", "general", "10.00", "-3"),  // quantity negativo
	})

	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, 8, summary.Failed)
	for _, res := range summary.Results {
		assert.Equal(t, dto.ImportActionFailed, res.Action)
		assert.NotEmpty(t, res.Error, "fila %d debe explicar el rechazo", res.Row)
	}
	assert.Empty(t, productRepo.products, "ninguna fila inválida debe persistirse")
}

func TestImportRows_BestEffort_FilasValidasSobreviven(t *testing.T) {
	productRepo := newFakeProductRepo()
	runner := &fakeTxRunner{productRepo: productRepo, saleRepo: &fakeSaleRepo{}}

	uc := NewImportUseCase(runner, newFakeCache())
	summary := uc.ImportRows(context.Background(), []dto.ImportRow{
		importRow("Válida A", "general", "10.00", "5"),
		importRow("Inválida", "general", "no-es-precio", "5"),
		importRow("Válida B", "general", "20.00", "3"),
	})

	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Results, 3)
	assert.Equal(t, 2, summary.Results[1].Row, "los resultados llevan índice 1-based")

	a, _ := productRepo.GetByNameAndCategory("Válida A", "general")
	b, _ := productRepo.GetByNameAndCategory("Válida B", "general")
	assert.NotNil(t, a)
	assert.NotNil(t, b, "la fila posterior al fallo también se aplica")
}

func TestImportRows_DuplicadosEnArchivo_GanaLaUltima(t *testing.T) {
	productRepo := newFakeProductRepo()
	runner := &fakeTxRunner{productRepo: productRepo, saleRepo: &fakeSaleRepo{}}

	uc := NewImportUseCase(runner, newFakeCache())
	uc.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	summary := uc.ImportRows(context.Background(), []dto.ImportRow{
		importRow("Teclado", "general", "10.00", "5"),
		importRow("Teclado", "general", "12.00", "8"),
	})

	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Updated, "la segunda aparición reconcilia contra la primera")

	p, _ := productRepo.GetByNameAndCategory("Teclado", "general")
	require.NotNil(t, p)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("12.00")))
	assert.Equal(t, 8, p.Quantity)
	assert.Len(t, productRepo.products, 1, "no debe duplicarse el producto")
}

func TestImportRows_SinFilasAplicadas_NoInvalidaCache(t *testing.T) {
	runner := &fakeTxRunner{productRepo: newFakeProductRepo(), saleRepo: &fakeSaleRepo{}}
	cache := newFakeCache()

	uc := NewImportUseCase(runner, cache)
	summary := uc.ImportRows(context.Background(), []dto.ImportRow{
		importRow("", "", "", ""),
	})

	assert.Equal(t, 1, summary.Failed)
	assert.Empty(t, cache.deleted)
}
