package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

var _ repository.SaleAllocationRepository = (*SaleAllocationRepo)(nil)

// SaleAllocationRepo implementación de las asignaciones unidad-venta sobre
// PostgreSQL. La tabla sale_order_item_entity solo recibe inserts.
type SaleAllocationRepo struct {
	q         Querier
	chunkSize int
}

// NewSaleAllocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleAllocationRepository(q Querier, chunkSize int) *SaleAllocationRepo {
	return &SaleAllocationRepo{q: q, chunkSize: chunkSize}
}

var saleAllocationColumns = []string{
	"id", "purchase_item_entity_id", "sale_order_id", "sale_order_item_id", "created",
}

// BulkCreate inserta asignaciones por COPY en grupos acotados.
func (r *SaleAllocationRepo) BulkCreate(allocations []*entity.SaleAllocation) error {
	w := NewBulkWriter(r.q, "sale_order_item_entity", saleAllocationColumns, r.chunkSize)
	ctx := context.Background()
	for _, a := range allocations {
		row := []any{a.ID, a.StockEntityID, a.SaleOrderID, a.SaleOrderItemID, a.Created}
		if err := w.Add(ctx, row); err != nil {
			return fmt.Errorf("bulk create allocations: %w", err)
		}
	}
	if err := w.Flush(ctx); err != nil {
		return fmt.Errorf("bulk create allocations: %w", err)
	}
	return nil
}

// AllocatedEntityIDs ids de unidades de la orden que siguen en estado sold,
// bloqueando las filas de unidad para la devolución. sku "" = todos los SKU;
// limit 0 = sin tope.
func (r *SaleAllocationRepo) AllocatedEntityIDs(saleOrderID int64, sku string, limit int) ([]string, error) {
	query := `
		SELECT e.id
		FROM purchase_item_entity e
		JOIN sale_order_item_entity a ON a.purchase_item_entity_id = e.id
		WHERE a.sale_order_id = $1 AND e.status = $2`
	args := []any{saleOrderID, string(entity.StockStatusSold)}
	pos := 3
	if sku != "" {
		query += fmt.Sprintf(" AND e.sku = $%d", pos)
		args = append(args, sku)
		pos++
	}
	query += " ORDER BY e.created, e.id"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", pos)
		args = append(args, limit)
	}
	query += " FOR UPDATE OF e SKIP LOCKED"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("allocated entity ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan allocated entity id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CountBySaleOrder asignaciones de una orden de venta.
func (r *SaleAllocationRepo) CountBySaleOrder(saleOrderID int64) (int, error) {
	query := `SELECT COUNT(*)::int FROM sale_order_item_entity WHERE sale_order_id = $1`
	var n int
	if err := r.q.QueryRow(context.Background(), query, saleOrderID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count allocations: %w", err)
	}
	return n, nil
}
