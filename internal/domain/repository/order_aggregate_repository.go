package repository

import "github.com/jhoicas/Stock-ledger-api/internal/domain/entity"

// OrderAggregateRepository define el puerto de agregación de órdenes:
// totales de una orden y resúmenes paginados de muchas.
type OrderAggregateRepository interface {
	// AggregatePurchase / AggregateSaleOrder devuelven SUM(price*quantity) y
	// SUM(quantity) de las líneas de la orden. Si la consulta agrupada no
	// devuelve exactamente una fila el almacenamiento es inconsistente y se
	// responde domain.ErrInternalAggregation.
	AggregatePurchase(purchaseID int64) (entity.OrderTotals, error)
	AggregateSaleOrder(saleOrderID int64) (entity.OrderTotals, error)
	// ListPurchases / ListSaleOrders resúmenes ordenados por id descendente,
	// paginados por limit/offset, más el conteo total de filas que calzan.
	// ids vacío = todas las órdenes. El conteo y la página se leen por
	// separado; bajo escrituras concurrentes pueden diferir (best effort).
	ListPurchases(ids []int64, limit, offset int) ([]entity.OrderSummary, int, error)
	ListSaleOrders(ids []int64, limit, offset int) ([]entity.OrderSummary, int, error)
}
