package stock

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/domain"
)

// Columnas requeridas del CSV de importación (encabezado case-insensitive).
var importColumns = []string{"name", "category", "price", "quantity"}

// ParseImportRows lee el CSV de importación completo. Falla la operación
// entera solo si el archivo no se puede parsear como filas bien formadas
// (encabezado incompleto, quoting roto, número de campos inconsistente);
// la validación de contenido es por fila en ImportUseCase.
func ParseImportRows(r io.Reader) ([]dto.ImportRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: encabezado CSV ilegible", domain.ErrInvalidInput)
	}
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range importColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: falta la columna %q en el CSV", domain.ErrInvalidInput, col)
		}
	}

	var rows []dto.ImportRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: CSV malformado: %v", domain.ErrInvalidInput, err)
		}
		field := func(col string) string {
			if i := idx[col]; i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}
		rows = append(rows, dto.ImportRow{
			Name:     field("name"),
			Category: field("category"),
			Price:    field("price"),
			Quantity: field("quantity"),
		})
	}
	return rows, nil
}

// WriteOverviewCSV serializa el resumen de stock con el encabezado del export.
func WriteOverviewCSV(w io.Writer, rows []dto.StockOverviewRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Name", "Category", "Price", "Available Stock", "Items Sold", "Revenue"}); err != nil {
		return fmt.Errorf("escribir encabezado CSV: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.ID,
			row.Name,
			row.Category,
			row.Price.StringFixed(2),
			strconv.Itoa(row.AvailableStock),
			strconv.Itoa(row.ItemsSold),
			row.Revenue.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("escribir fila CSV: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
