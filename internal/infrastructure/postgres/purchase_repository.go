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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q         Querier
	chunkSize int
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier, chunkSize int) *PurchaseRepo {
	return &PurchaseRepo{q: q, chunkSize: chunkSize}
}

// Create inserta la orden de compra y rellena id, created y modified.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	query := `
		INSERT INTO purchase (note, external_ref)
		VALUES ($1, $2)
		RETURNING id, created, modified`
	err := r.q.QueryRow(context.Background(), query, nullIfEmpty(p.Note), nullIfEmpty(p.ExternalRef)).
		Scan(&p.ID, &p.Created, &p.Modified)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create purchase: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("create purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por id; nil, nil si no existe.
func (r *PurchaseRepo) GetByID(id int64) (*entity.Purchase, error) {
	query := `
		SELECT id, note, external_ref, created, modified
		FROM purchase WHERE id = $1`
	var p entity.Purchase
	var note, externalRef *string
	err := r.q.QueryRow(context.Background(), query, id).
		Scan(&p.ID, &note, &externalRef, &p.Created, &p.Modified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	p.Note = orEmpty(note)
	p.ExternalRef = orEmpty(externalRef)
	return &p, nil
}

var purchaseItemColumns = []string{
	"id", "purchase_id", "product_id", "sku", "unique_identifier",
	"quantity", "price", "created", "modified",
}

// BulkCreateItems inserta líneas de compra por COPY en grupos acotados.
func (r *PurchaseRepo) BulkCreateItems(items []*entity.PurchaseItem) error {
	w := NewBulkWriter(r.q, "purchase_item", purchaseItemColumns, r.chunkSize)
	ctx := context.Background()
	for _, ele := range items {
		row := []any{
			ele.ID, ele.PurchaseID, ele.ProductID, ele.SKU, nullIfEmpty(ele.UniqueIdentifier),
			ele.Quantity, ele.Price, ele.Created, ele.Modified,
		}
		if err := w.Add(ctx, row); err != nil {
			return fmt.Errorf("bulk create purchase items: %w", err)
		}
	}
	if err := w.Flush(ctx); err != nil {
		return fmt.Errorf("bulk create purchase items: %w", err)
	}
	return nil
}

// ListItems líneas de una compra en orden de creación.
func (r *PurchaseRepo) ListItems(purchaseID int64) ([]*entity.PurchaseItem, error) {
	query := `
		SELECT id, purchase_id, product_id, sku, unique_identifier, quantity, price, created, modified
		FROM purchase_item WHERE purchase_id = $1
		ORDER BY created, id`
	rows, err := r.q.Query(context.Background(), query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseItem
	for rows.Next() {
		var item entity.PurchaseItem
		var uid *string
		if err := rows.Scan(&item.ID, &item.PurchaseID, &item.ProductID, &item.SKU, &uid,
			&item.Quantity, &item.Price, &item.Created, &item.Modified); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		item.UniqueIdentifier = orEmpty(uid)
		list = append(list, &item)
	}
	return list, rows.Err()
}

// LatestID id más alto de purchase, 0 si la tabla está vacía.
func (r *PurchaseRepo) LatestID() (int64, error) {
	query := `SELECT COALESCE(MAX(id), 0) FROM purchase`
	var id int64
	if err := r.q.QueryRow(context.Background(), query).Scan(&id); err != nil {
		return 0, fmt.Errorf("latest purchase id: %w", err)
	}
	return id, nil
}
