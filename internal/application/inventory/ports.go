package inventory

import (
	"context"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Los ajustes cambian estado de unidades y
// agregan asientos al libro en un solo commit.
type TxRunner interface {
	RunAdjustment(ctx context.Context, fn func(
		ledgerRepo repository.LedgerRepository,
		entityRepo repository.StockEntityRepository,
		allocRepo repository.SaleAllocationRepository,
	) error) error
}
