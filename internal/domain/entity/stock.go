package entity

import "time"

// TransactionType causa de un asiento en el libro de inventario.
type TransactionType string

const (
	TransactionTypePurchase   TransactionType = "purchase"
	TransactionTypeSale       TransactionType = "sale"
	TransactionTypeReturn     TransactionType = "return"
	TransactionTypeAdjustment TransactionType = "adjustment"
)

// StockStatus ciclo de vida de una unidad física de stock.
// Toda unidad nace available; available -> sold ocurre exactamente una vez
// en el flujo normal de venta. returned y adjusted se alcanzan solo por
// operaciones explícitas de ajuste.
type StockStatus string

const (
	StockStatusAvailable StockStatus = "available"
	StockStatusSold      StockStatus = "sold"
	StockStatusReturned  StockStatus = "returned"
	StockStatusAdjusted  StockStatus = "adjusted"
)

// LedgerTransaction asiento del libro de inventario: append-only, cantidad
// con signo (positiva entra, negativa sale). Exactamente uno de PurchaseID /
// SaleOrderID identifica el origen.
type LedgerTransaction struct {
	ID               string
	ProductID        string
	SKU              string
	UniqueIdentifier string
	Quantity         int
	Type             TransactionType
	PurchaseID       *int64
	SaleOrderID      *int64
	Created          time.Time
}

// StockEntity una fila por unidad física/lógica de stock, materializada en la
// compra. Status es el único campo mutable; PurchaseItemID nunca cambia.
type StockEntity struct {
	ID               string
	ProductID        string
	SKU              string
	UniqueIdentifier string
	Status           StockStatus
	PurchaseID       int64
	PurchaseItemID   string
	Created          time.Time
	Modified         time.Time
}

// SaleAllocation vincula una unidad de stock vendida con la línea de venta que
// la consumió. Se crea una sola vez durante la confirmación; nunca se muta.
type SaleAllocation struct {
	ID              string
	StockEntityID   string
	SaleOrderID     int64
	SaleOrderItemID string
	Created         time.Time
}

// SKUQuantity cantidad neta de un SKU según el libro (suma con signo).
type SKUQuantity struct {
	ProductID string
	SKU       string
	Quantity  int
}

// OrderTotals agregación de una orden: SUM(price*quantity) y SUM(quantity).
type OrderTotals struct {
	TotalPrice int64
	TotalUnits int
}

// OrderSummary resumen paginado de una orden (compra o venta).
type OrderSummary struct {
	ID         int64
	Note       string
	Status     SaleOrderStatus // vacío para compras
	TotalPrice int64
	TotalUnits int
	Created    time.Time
	Modified   time.Time
}

// ValuationRow valorización del stock disponible de un SKU: unidades y costo
// total a precio de compra.
type ValuationRow struct {
	ProductID string
	SKU       string
	Units     int
	TotalCost int64
}
