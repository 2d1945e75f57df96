package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/Stock-ledger-api/internal/application/purchase"
	"github.com/jhoicas/Stock-ledger-api/internal/application/sale"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreatePurchase *purchase.CreateUseCase
	ListPurchases  *purchase.ListUseCase
	CreateSale     *sale.CreateUseCase
	AutoFillSale   *sale.AutoFillUseCase
	CancelSale     *sale.CancelUseCase
	ListSales      *sale.ListUseCase
	Quantity       *inventory.QuantityUseCase
	Valuation      *inventory.ValuationUseCase
	Adjustment     *inventory.AdjustmentUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Purchases
	purchases := api.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.CreatePurchase, deps.ListPurchases)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/latest-id", purchaseHandler.LatestID)
	purchases.Get("/:id/items", purchaseHandler.ListItems)

	// Sale orders
	sales := api.Group("/sale-orders")
	saleHandler := NewSaleOrderHandler(deps.CreateSale, deps.AutoFillSale, deps.CancelSale, deps.ListSales)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Post("/:id/auto-fill", saleHandler.AutoFill)
	sales.Post("/:id/cancel", saleHandler.Cancel)

	// Inventory
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Quantity, deps.Valuation, deps.Adjustment)
	invGroup.Get("/quantity", inventoryHandler.GetQuantity)
	invGroup.Get("/valuation", inventoryHandler.Valuation)
	invGroup.Post("/adjustments", inventoryHandler.Adjust)
}
