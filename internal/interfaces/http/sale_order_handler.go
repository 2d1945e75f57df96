package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/application/sale"
)

// SaleOrderHandler maneja las peticiones HTTP de órdenes de venta.
type SaleOrderHandler struct {
	createUC   *sale.CreateUseCase
	autoFillUC *sale.AutoFillUseCase
	cancelUC   *sale.CancelUseCase
	listUC     *sale.ListUseCase
}

// NewSaleOrderHandler construye el handler.
func NewSaleOrderHandler(createUC *sale.CreateUseCase, autoFillUC *sale.AutoFillUseCase, cancelUC *sale.CancelUseCase, listUC *sale.ListUseCase) *SaleOrderHandler {
	return &SaleOrderHandler{createUC: createUC, autoFillUC: autoFillUC, cancelUC: cancelUC, listUC: listUC}
}

// Create godoc
// @Summary      Crear orden de venta
// @Description  Crea la orden en draft y asienta las salidas en el libro.
// @Description  Falla con 409 si el libro no cubre las cantidades pedidas.
// @Description  La asignación de unidades ocurre después, en el auto-fill.
// @Tags         sale-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleOrderRequest  true  "note y líneas (product_id, sku, quantity, price)"
// @Success      201   {object}  dto.CreateSaleOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sale-orders [post]
func (h *SaleOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.createUC.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AutoFill godoc
// @Summary      Confirmar orden de venta (auto-fill)
// @Description  Selecciona unidades disponibles en orden FIFO, las marca como
// @Description  vendidas, registra las asignaciones y pasa la orden a confirmed.
// @Description  Re-confirmar una orden ya confirmada devuelve 409.
// @Tags         sale-orders
// @Produce      json
// @Param        id  path  int  true  "Id de la orden"
// @Success      200  {object}  dto.SaleOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sale-orders/{id}/auto-fill [post]
func (h *SaleOrderHandler) AutoFill(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.autoFillUC.AutoFill(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar orden de venta en draft
// @Description  Revierte los asientos de salida con asientos de ajuste
// @Description  positivos y pasa la orden a cancelled. Solo órdenes en draft.
// @Tags         sale-orders
// @Produce      json
// @Param        id  path  int  true  "Id de la orden"
// @Success      200  {object}  dto.SaleOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sale-orders/{id}/cancel [post]
func (h *SaleOrderHandler) Cancel(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.cancelUC.Cancel(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Description  Resúmenes con totales agregados, ordenados por id descendente.
// @Tags         sale-orders
// @Produce      json
// @Param        ids     query  []int   false  "Acotar a estos ids de venta"
// @Param        status  query  string  false  "Filtrar por estado (draft, confirmed, cancelled)"
// @Param        limit   query  int     false  "Tamaño de página (defecto 10)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.ListSaleOrdersResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sale-orders [get]
func (h *SaleOrderHandler) List(c *fiber.Ctx) error {
	var q struct {
		IDs    []int64 `query:"ids"`
		Status string  `query:"status"`
		dto.PageRequest
	}
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.listUC.List(c.Context(), q.IDs, q.Status, q.PageRequest)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
