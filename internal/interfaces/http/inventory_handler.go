package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/application/inventory"
)

// InventoryHandler maneja las consultas de inventario y los ajustes de stock.
type InventoryHandler struct {
	quantityUC   *inventory.QuantityUseCase
	valuationUC  *inventory.ValuationUseCase
	adjustmentUC *inventory.AdjustmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(quantityUC *inventory.QuantityUseCase, valuationUC *inventory.ValuationUseCase, adjustmentUC *inventory.AdjustmentUseCase) *InventoryHandler {
	return &InventoryHandler{quantityUC: quantityUC, valuationUC: valuationUC, adjustmentUC: adjustmentUC}
}

// GetQuantity godoc
// @Summary      Cantidad neta por SKU
// @Description  Suma con signo del libro agrupada por (product_id, sku).
// @Description  Se exige al menos uno de product_id / skus; skus tiene prioridad.
// @Tags         inventory
// @Produce      json
// @Param        product_id  query  string    false  "Producto (UUID)"
// @Param        skus        query  []string  false  "Lista de SKUs"
// @Success      200  {object}  dto.GetQuantityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/quantity [get]
func (h *InventoryHandler) GetQuantity(c *fiber.Ctx) error {
	var in dto.GetQuantityRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.quantityUC.GetQuantity(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Valuation godoc
// @Summary      Valorización del stock disponible
// @Description  Unidades disponibles, costo total a precio de compra y costo
// @Description  promedio por (product_id, sku).
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.ValuationResponse
// @Router       /api/inventory/valuation [get]
func (h *InventoryHandler) Valuation(c *fiber.Ctx) error {
	out, err := h.valuationUC.Valuation(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajustar stock
// @Description  kind=adjustment retira unidades disponibles con asiento
// @Description  negativo; kind=return devuelve unidades vendidas de una orden
// @Description  con asiento positivo (requiere sale_order_id).
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustmentRequest  true  "kind, product_id, sku, quantity y sale_order_id para devoluciones"
// @Success      200   {object}  dto.AdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.adjustmentUC.Adjust(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
