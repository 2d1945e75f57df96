package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/Stock-ledger-api/internal/application/purchase"
	"github.com/jhoicas/Stock-ledger-api/internal/application/sale"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

// Ensure TxRunner implements the application TxRunner ports.
var _ purchase.TxRunner = (*TxRunner)(nil)
var _ sale.TxRunner = (*TxRunner)(nil)
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool      *pgxpool.Pool
	chunkSize int
}

// NewTxRunner construye el runner con el pool y el tamaño de lote para las
// escrituras masivas de los repos atados a la tx.
func NewTxRunner(pool *pgxpool.Pool, chunkSize int) *TxRunner {
	return &TxRunner{pool: pool, chunkSize: chunkSize}
}

// RunPurchase inicia una transacción, ejecuta fn con los repos de compra
// atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	ledgerRepo repository.LedgerRepository,
	entityRepo repository.StockEntityRepository,
	aggRepo repository.OrderAggregateRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	purchaseRepo := NewPurchaseRepository(tx, r.chunkSize)
	ledgerRepo := NewLedgerRepository(tx, r.chunkSize)
	entityRepo := NewStockEntityRepository(tx, r.chunkSize)
	aggRepo := NewOrderAggregateRepository(tx)

	if err := fn(purchaseRepo, ledgerRepo, entityRepo, aggRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale inicia una transacción con los repos de venta y asignación
// (para CreateSaleOrder, AutoFill y Cancel).
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleOrderRepository,
	ledgerRepo repository.LedgerRepository,
	entityRepo repository.StockEntityRepository,
	allocRepo repository.SaleAllocationRepository,
	aggRepo repository.OrderAggregateRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewSaleOrderRepository(tx, r.chunkSize)
	ledgerRepo := NewLedgerRepository(tx, r.chunkSize)
	entityRepo := NewStockEntityRepository(tx, r.chunkSize)
	allocRepo := NewSaleAllocationRepository(tx, r.chunkSize)
	aggRepo := NewOrderAggregateRepository(tx)

	if err := fn(saleRepo, ledgerRepo, entityRepo, allocRepo, aggRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAdjustment inicia una transacción con los repos de ajuste y devolución.
func (r *TxRunner) RunAdjustment(ctx context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	entityRepo repository.StockEntityRepository,
	allocRepo repository.SaleAllocationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ledgerRepo := NewLedgerRepository(tx, r.chunkSize)
	entityRepo := NewStockEntityRepository(tx, r.chunkSize)
	allocRepo := NewSaleAllocationRepository(tx, r.chunkSize)

	if err := fn(ledgerRepo, entityRepo, allocRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
