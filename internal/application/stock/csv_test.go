package stock

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain"
)

func TestParseImportRows_EncabezadoFlexible(t *testing.T) {
	// Columnas en otro orden y con mayúsculas
	csvData := "Category,NAME,quantity,Price\n" +
		"general,Teclado,5,49.90\n" +
		"general, Mouse ,10, 9.99\n"

	rows, err := ParseImportRows(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, dto.ImportRow{Name: "Teclado", Category: "general", Price: "49.90", Quantity: "5"}, rows[0])
	assert.Equal(t, "Mouse", rows[1].Name, "los campos deben llegar sin espacios alrededor")
	assert.Equal(t, "9.99", rows[1].Price)
}

func TestParseImportRows_ColumnaFaltante(t *testing.T) {
	csvData := "name,category,price\nTeclado,general,10.00\n"

	_, err := ParseImportRows(strings.NewReader(csvData))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "quantity")
}

func TestParseImportRows_ArchivoVacio(t *testing.T) {
	_, err := ParseImportRows(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseImportRows_CSVMalformado(t *testing.T) {
	// Fila con número de campos inconsistente
	csvData := "name,category,price,quantity\nTeclado,general\n"

	_, err := ParseImportRows(strings.NewReader(csvData))
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un archivo malformado falla la operación completa")
}

func TestParseImportRows_SoloEncabezado(t *testing.T) {
	rows, err := ParseImportRows(strings.NewReader("name,category,price,quantity\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWriteOverviewCSV(t *testing.T) {
	rows := []dto.StockOverviewRow{
		{
			ID:             "p1",
			Name:           "Teclado",
			Category:       "general",
			Price:          decimal.RequireFromString("49.9"),
			AvailableStock: 7,
			ItemsSold:      3,
			Revenue:        decimal.RequireFromString("149.7"),
		},
	}

	var sb strings.Builder
	require.NoError(t, WriteOverviewCSV(&sb, rows))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Name,Category,Price,Available Stock,Items Sold,Revenue", lines[0])
	assert.Equal(t, "p1,Teclado,general,49.90,7,3,149.70", lines[1],
		"los montos se exportan con dos decimales")
}
