package repository

import "github.com/jhoicas/Stock-ledger-api/internal/domain/entity"

// LedgerRepository define el puerto del libro de inventario. El libro es
// append-only: nunca se actualizan ni borran asientos existentes.
type LedgerRepository interface {
	BulkAppend(transactions []*entity.LedgerTransaction) error
	// SumBySKUs suma neta con signo agrupada por (product_id, sku).
	// SKUs sin asientos simplemente no aparecen en el resultado.
	SumBySKUs(skus []string) ([]entity.SKUQuantity, error)
	SumByProduct(productID string) ([]entity.SKUQuantity, error)
}
