package http

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-api/internal/application/analytics"
	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/stock"
	"github.com/jhoicas/stock-api/internal/domain"
)

// StockHandler maneja el motor de stock: ventas, importación CSV y resumen.
type StockHandler struct {
	sellUC     *stock.SellUseCase
	importUC   *stock.ImportUseCase
	overviewUC *analytics.OverviewUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(sellUC *stock.SellUseCase, importUC *stock.ImportUseCase, overviewUC *analytics.OverviewUseCase) *StockHandler {
	return &StockHandler{sellUC: sellUC, importUC: importUC, overviewUC: overviewUC}
}

// Sell godoc
// @Summary      Registrar una venta (decrementa stock y agrega al ledger)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SellRequest  true  "product_id y quantity"
// @Success      200   {object}  dto.SellResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/sell [post]
func (h *StockHandler) Sell(c *fiber.Ctx) error {
	var in dto.SellRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.sellUC.Sell(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido y quantity debe ser > 0"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la cantidad solicitada"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar catálogo desde CSV (reconciliación por name+category)
// @Description  Best-effort por fila: las filas válidas se aplican aunque otras fallen. Columnas requeridas: name, category, price, quantity.
// @Tags         stock
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo CSV"
// @Success      200   {object}  dto.ImportSummary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/import [post]
func (h *StockHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el archivo CSV en el campo 'file'"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer file.Close()

	rows, err := stock.ParseImportRows(file)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CSV", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	summary := h.importUC.ImportRows(c.UserContext(), rows)
	return c.JSON(summary)
}

// Overview godoc
// @Summary      Resumen de stock por producto
// @Description  Disponible del catálogo, vendidos e ingresos del ledger (precio actual). sortBy fuera de la allow-list se ignora.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        category   query  string  false  "Filtrar por categoría exacta"
// @Param        sortBy     query  string  false  "name | category | price | available_stock | items_sold | revenue"
// @Param        sortOrder  query  string  false  "asc | desc"  default(asc)
// @Success      200  {array}  dto.StockOverviewRow
// @Router       /api/stock/overview [get]
func (h *StockHandler) Overview(c *fiber.Ctx) error {
	rows, err := h.overviewUC.GetStockOverview(
		c.UserContext(),
		c.Query("category"),
		c.Query("sortBy"),
		c.Query("sortOrder"),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if rows == nil {
		rows = []dto.StockOverviewRow{}
	}
	return c.JSON(rows)
}

// Export godoc
// @Summary      Exportar el resumen de stock como CSV
// @Tags         stock
// @Security     Bearer
// @Produce      text/csv
// @Param        category   query  string  false  "Filtrar por categoría exacta"
// @Param        sortBy     query  string  false  "Columna de orden"
// @Param        sortOrder  query  string  false  "asc | desc"
// @Success      200  {string}  string  "CSV"
// @Router       /api/stock/export [get]
func (h *StockHandler) Export(c *fiber.Ctx) error {
	rows, err := h.overviewUC.GetStockOverview(
		c.UserContext(),
		c.Query("category"),
		c.Query("sortBy"),
		c.Query("sortOrder"),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	var buf bytes.Buffer
	if err := stock.WriteOverviewCSV(&buf, rows); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock_overview.csv"`)
	return c.Send(buf.Bytes())
}
