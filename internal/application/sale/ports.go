package sale

import (
	"context"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Toda la creación/confirmación de una venta
// (orden, líneas, asientos, selección de unidades, asignaciones) se escribe
// todo-o-nada.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleOrderRepository,
		ledgerRepo repository.LedgerRepository,
		entityRepo repository.StockEntityRepository,
		allocRepo repository.SaleAllocationRepository,
		aggRepo repository.OrderAggregateRepository,
	) error) error
}
