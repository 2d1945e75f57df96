package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/application/purchase"
)

// PurchaseHandler maneja las peticiones HTTP de órdenes de compra.
type PurchaseHandler struct {
	createUC *purchase.CreateUseCase
	listUC   *purchase.ListUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(createUC *purchase.CreateUseCase, listUC *purchase.ListUseCase) *PurchaseHandler {
	return &PurchaseHandler{createUC: createUC, listUC: listUC}
}

// Create godoc
// @Summary      Crear orden de compra
// @Description  Registra la compra con sus líneas, asienta las entradas en el
// @Description  libro y materializa una unidad de stock por cada unidad comprada.
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "note, external_ref y líneas (product_id, sku, quantity, price)"
// @Success      201   {object}  dto.CreatePurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
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

// List godoc
// @Summary      Listar compras
// @Description  Resúmenes con totales agregados, ordenados por id descendente.
// @Tags         purchases
// @Produce      json
// @Param        ids     query  []int  false  "Acotar a estos ids de compra"
// @Param        limit   query  int    false  "Tamaño de página (defecto 10)"
// @Param        offset  query  int    false  "Desplazamiento"
// @Success      200  {object}  dto.ListPurchasesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	var q struct {
		IDs []int64 `query:"ids"`
		dto.PageRequest
	}
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.listUC.List(c.Context(), q.IDs, q.PageRequest)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LatestID godoc
// @Summary      Id de la compra más reciente
// @Tags         purchases
// @Produce      json
// @Success      200  {object}  dto.LatestPurchaseIDResponse
// @Router       /api/purchases/latest-id [get]
func (h *PurchaseHandler) LatestID(c *fiber.Ctx) error {
	out, err := h.listUC.LatestID(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListItems godoc
// @Summary      Líneas de una compra
// @Tags         purchases
// @Produce      json
// @Param        id  path  int  true  "Id de la compra"
// @Success      200  {array}   dto.PurchaseItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id}/items [get]
func (h *PurchaseHandler) ListItems(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.listUC.ListItems(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
