package memory

import (
	"context"

	"github.com/jhoicas/Stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/Stock-ledger-api/internal/application/purchase"
	"github.com/jhoicas/Stock-ledger-api/internal/application/sale"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

// Ensure TxRunner implements the application TxRunner ports.
var _ purchase.TxRunner = (*TxRunner)(nil)
var _ sale.TxRunner = (*TxRunner)(nil)
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner simula transacciones sobre el almacén en memoria: toma una copia
// del estado antes de ejecutar fn y la restaura si fn falla. Las transacciones
// se ejecutan de a una (txMu), el equivalente a aislamiento serializable.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

func (r *TxRunner) run(fn func() error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	snap := r.s.takeSnapshot()
	if err := fn(); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

func (r *TxRunner) RunPurchase(_ context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	ledgerRepo repository.LedgerRepository,
	entityRepo repository.StockEntityRepository,
	aggRepo repository.OrderAggregateRepository,
) error) error {
	return r.run(func() error {
		return fn(
			NewPurchaseRepository(r.s),
			NewLedgerRepository(r.s),
			NewStockEntityRepository(r.s),
			NewOrderAggregateRepository(r.s),
		)
	})
}

func (r *TxRunner) RunSale(_ context.Context, fn func(
	saleRepo repository.SaleOrderRepository,
	ledgerRepo repository.LedgerRepository,
	entityRepo repository.StockEntityRepository,
	allocRepo repository.SaleAllocationRepository,
	aggRepo repository.OrderAggregateRepository,
) error) error {
	return r.run(func() error {
		return fn(
			NewSaleOrderRepository(r.s),
			NewLedgerRepository(r.s),
			NewStockEntityRepository(r.s),
			NewSaleAllocationRepository(r.s),
			NewOrderAggregateRepository(r.s),
		)
	})
}

func (r *TxRunner) RunAdjustment(_ context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	entityRepo repository.StockEntityRepository,
	allocRepo repository.SaleAllocationRepository,
) error) error {
	return r.run(func() error {
		return fn(
			NewLedgerRepository(r.s),
			NewStockEntityRepository(r.s),
			NewSaleAllocationRepository(r.s),
		)
	})
}
