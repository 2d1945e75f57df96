package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

var _ repository.StockEntityRepository = (*StockEntityRepo)(nil)

// StockEntityRepo implementación del pool de unidades sobre PostgreSQL.
type StockEntityRepo struct {
	q         Querier
	chunkSize int
}

// NewStockEntityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockEntityRepository(q Querier, chunkSize int) *StockEntityRepo {
	return &StockEntityRepo{q: q, chunkSize: chunkSize}
}

var stockEntityColumns = []string{
	"id", "product_id", "sku", "unique_identifier", "status",
	"purchase_id", "purchase_item_id", "created", "modified",
}

// BulkCreate inserta unidades por COPY en grupos acotados.
func (r *StockEntityRepo) BulkCreate(entities []*entity.StockEntity) error {
	w := NewBulkWriter(r.q, "purchase_item_entity", stockEntityColumns, r.chunkSize)
	ctx := context.Background()
	for _, e := range entities {
		row := []any{
			e.ID, e.ProductID, e.SKU, nullIfEmpty(e.UniqueIdentifier), string(e.Status),
			e.PurchaseID, e.PurchaseItemID, e.Created, e.Modified,
		}
		if err := w.Add(ctx, row); err != nil {
			return fmt.Errorf("bulk create stock entities: %w", err)
		}
	}
	if err := w.Flush(ctx); err != nil {
		return fmt.Errorf("bulk create stock entities: %w", err)
	}
	return nil
}

// SelectAvailableForUpdate selecciona hasta limit ids disponibles de
// (product_id, sku) en orden FIFO explícito por fecha de creación (id como
// desempate). FOR UPDATE SKIP LOCKED: filas ya bloqueadas por otra venta se
// saltan en vez de esperarlas, así dos transacciones concurrentes sobre el
// mismo SKU nunca asignan la misma unidad.
func (r *StockEntityRepo) SelectAvailableForUpdate(productID, sku string, limit int) ([]string, error) {
	query := `
		SELECT id FROM purchase_item_entity
		WHERE product_id = $1 AND sku = $2 AND status = $3
		ORDER BY created, id
		LIMIT $4
		FOR UPDATE SKIP LOCKED`
	rows, err := r.q.Query(context.Background(), query,
		productID, sku, string(entity.StockStatusAvailable), limit)
	if err != nil {
		return nil, fmt.Errorf("select available entities: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan entity id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// MarkStatus cambia el estado de las unidades indicadas (único campo mutable).
func (r *StockEntityRepo) MarkStatus(ids []string, status entity.StockStatus) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE purchase_item_entity SET status = $1, modified = now() WHERE id = ANY($2)`
	tag, err := r.q.Exec(context.Background(), query, string(status), ids)
	if err != nil {
		return fmt.Errorf("mark entity status: %w", err)
	}
	if int(tag.RowsAffected()) != len(ids) {
		return fmt.Errorf("mark entity status: se esperaban %d filas y se actualizaron %d", len(ids), tag.RowsAffected())
	}
	return nil
}

// CountBySKU unidades de un SKU en un estado dado.
func (r *StockEntityRepo) CountBySKU(sku string, status entity.StockStatus) (int, error) {
	query := `SELECT COUNT(*)::int FROM purchase_item_entity WHERE sku = $1 AND status = $2`
	var n int
	if err := r.q.QueryRow(context.Background(), query, sku, string(status)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entities: %w", err)
	}
	return n, nil
}

// AvailableValuation unidades disponibles y costo total a precio de compra
// por (product_id, sku).
func (r *StockEntityRepo) AvailableValuation() ([]entity.ValuationRow, error) {
	query := `
		SELECT e.product_id, e.sku, COUNT(*)::int AS units, SUM(pi.price)::bigint AS total_cost
		FROM purchase_item_entity e
		JOIN purchase_item pi ON pi.id = e.purchase_item_id
		WHERE e.status = $1
		GROUP BY e.product_id, e.sku
		ORDER BY e.sku`
	rows, err := r.q.Query(context.Background(), query, string(entity.StockStatusAvailable))
	if err != nil {
		return nil, fmt.Errorf("available valuation: %w", err)
	}
	defer rows.Close()
	var list []entity.ValuationRow
	for rows.Next() {
		var v entity.ValuationRow
		if err := rows.Scan(&v.ProductID, &v.SKU, &v.Units, &v.TotalCost); err != nil {
			return nil, fmt.Errorf("scan valuation row: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
