package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

var _ repository.SaleOrderRepository = (*SaleOrderRepo)(nil)

// SaleOrderRepo implementación de SaleOrderRepository sobre PostgreSQL (usable con pool o tx).
type SaleOrderRepo struct {
	q         Querier
	chunkSize int
}

// NewSaleOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleOrderRepository(q Querier, chunkSize int) *SaleOrderRepo {
	return &SaleOrderRepo{q: q, chunkSize: chunkSize}
}

// Create inserta la orden de venta y rellena id, created y modified.
func (r *SaleOrderRepo) Create(o *entity.SaleOrder) error {
	query := `
		INSERT INTO sale_order (note, status)
		VALUES ($1, $2)
		RETURNING id, created, modified`
	err := r.q.QueryRow(context.Background(), query, nullIfEmpty(o.Note), string(o.Status)).
		Scan(&o.ID, &o.Created, &o.Modified)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create sale order: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("create sale order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por id; nil, nil si no existe.
func (r *SaleOrderRepo) GetByID(id int64) (*entity.SaleOrder, error) {
	return r.get(id, false)
}

// GetByIDForUpdate obtiene la orden bloqueando la fila (SELECT FOR UPDATE)
// para serializar confirmaciones/cancelaciones concurrentes.
func (r *SaleOrderRepo) GetByIDForUpdate(id int64) (*entity.SaleOrder, error) {
	return r.get(id, true)
}

func (r *SaleOrderRepo) get(id int64, forUpdate bool) (*entity.SaleOrder, error) {
	query := `
		SELECT id, note, status, created, modified
		FROM sale_order WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var o entity.SaleOrder
	var note *string
	var status string
	err := r.q.QueryRow(context.Background(), query, id).
		Scan(&o.ID, &note, &status, &o.Created, &o.Modified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale order: %w", err)
	}
	o.Note = orEmpty(note)
	o.Status = entity.SaleOrderStatus(status)
	return &o, nil
}

var saleOrderItemColumns = []string{
	"id", "sale_order_id", "product_id", "sku", "unique_identifier",
	"quantity", "price", "created", "modified",
}

// BulkCreateItems inserta líneas de venta por COPY en grupos acotados.
func (r *SaleOrderRepo) BulkCreateItems(items []*entity.SaleOrderItem) error {
	w := NewBulkWriter(r.q, "sale_order_item", saleOrderItemColumns, r.chunkSize)
	ctx := context.Background()
	for _, ele := range items {
		row := []any{
			ele.ID, ele.SaleOrderID, ele.ProductID, ele.SKU, nullIfEmpty(ele.UniqueIdentifier),
			ele.Quantity, ele.Price, ele.Created, ele.Modified,
		}
		if err := w.Add(ctx, row); err != nil {
			return fmt.Errorf("bulk create sale order items: %w", err)
		}
	}
	if err := w.Flush(ctx); err != nil {
		return fmt.Errorf("bulk create sale order items: %w", err)
	}
	return nil
}

// ListItems líneas de una orden de venta en orden de creación.
func (r *SaleOrderRepo) ListItems(saleOrderID int64) ([]*entity.SaleOrderItem, error) {
	query := `
		SELECT id, sale_order_id, product_id, sku, unique_identifier, quantity, price, created, modified
		FROM sale_order_item WHERE sale_order_id = $1
		ORDER BY created, id`
	rows, err := r.q.Query(context.Background(), query, saleOrderID)
	if err != nil {
		return nil, fmt.Errorf("list sale order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleOrderItem
	for rows.Next() {
		var item entity.SaleOrderItem
		var uid *string
		if err := rows.Scan(&item.ID, &item.SaleOrderID, &item.ProductID, &item.SKU, &uid,
			&item.Quantity, &item.Price, &item.Created, &item.Modified); err != nil {
			return nil, fmt.Errorf("scan sale order item: %w", err)
		}
		item.UniqueIdentifier = orEmpty(uid)
		list = append(list, &item)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la orden (único campo mutable).
func (r *SaleOrderRepo) UpdateStatus(id int64, status entity.SaleOrderStatus) error {
	query := `UPDATE sale_order SET status = $1, modified = now() WHERE id = $2`
	tag, err := r.q.Exec(context.Background(), query, string(status), id)
	if err != nil {
		return fmt.Errorf("update sale order status: %w", err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("update sale order status: %w", domain.ErrNotFound)
	}
	return nil
}

// IDsByStatus ids de órdenes en un estado dado.
func (r *SaleOrderRepo) IDsByStatus(status entity.SaleOrderStatus) ([]int64, error) {
	query := `SELECT id FROM sale_order WHERE status = $1 ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query, string(status))
	if err != nil {
		return nil, fmt.Errorf("sale order ids by status: %w", err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan sale order id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
