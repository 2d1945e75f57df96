package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del libro de inventario sobre PostgreSQL.
// La tabla inventory_transaction es append-only: acá no existe UPDATE ni DELETE.
type LedgerRepo struct {
	q         Querier
	chunkSize int
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier, chunkSize int) *LedgerRepo {
	return &LedgerRepo{q: q, chunkSize: chunkSize}
}

var ledgerColumns = []string{
	"id", "product_id", "sku", "unique_identifier", "quantity",
	"transaction_type", "purchase_id", "sale_order_id", "created",
}

// BulkAppend agrega asientos por COPY en grupos acotados.
func (r *LedgerRepo) BulkAppend(transactions []*entity.LedgerTransaction) error {
	w := NewBulkWriter(r.q, "inventory_transaction", ledgerColumns, r.chunkSize)
	ctx := context.Background()
	for _, tx := range transactions {
		row := []any{
			tx.ID, tx.ProductID, tx.SKU, nullIfEmpty(tx.UniqueIdentifier), tx.Quantity,
			string(tx.Type), tx.PurchaseID, tx.SaleOrderID, tx.Created,
		}
		if err := w.Add(ctx, row); err != nil {
			return fmt.Errorf("bulk append ledger: %w", err)
		}
	}
	if err := w.Flush(ctx); err != nil {
		return fmt.Errorf("bulk append ledger: %w", err)
	}
	return nil
}

// SumBySKUs suma neta con signo agrupada por (product_id, sku).
func (r *LedgerRepo) SumBySKUs(skus []string) ([]entity.SKUQuantity, error) {
	query := `
		SELECT product_id, sku, SUM(quantity)::int AS total_quantity
		FROM inventory_transaction
		WHERE sku = ANY($1)
		GROUP BY product_id, sku
		ORDER BY sku`
	return r.sum(query, skus)
}

// SumByProduct suma neta con signo de todos los SKUs de un producto.
func (r *LedgerRepo) SumByProduct(productID string) ([]entity.SKUQuantity, error) {
	query := `
		SELECT product_id, sku, SUM(quantity)::int AS total_quantity
		FROM inventory_transaction
		WHERE product_id = $1
		GROUP BY product_id, sku
		ORDER BY sku`
	return r.sum(query, productID)
}

func (r *LedgerRepo) sum(query string, arg any) ([]entity.SKUQuantity, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("sum ledger: %w", err)
	}
	defer rows.Close()
	var list []entity.SKUQuantity
	for rows.Next() {
		var s entity.SKUQuantity
		if err := rows.Scan(&s.ProductID, &s.SKU, &s.Quantity); err != nil {
			return nil, fmt.Errorf("scan ledger sum: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
