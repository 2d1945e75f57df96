package memory

import (
	"github.com/google/uuid"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo libro de inventario en memoria (append-only).
type LedgerRepo struct {
	s *Store
}

// NewLedgerRepository construye el repositorio sobre el almacén.
func NewLedgerRepository(s *Store) *LedgerRepo {
	return &LedgerRepo{s: s}
}

func (r *LedgerRepo) BulkAppend(transactions []*entity.LedgerTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.now()
	for _, tx := range transactions {
		c := *tx
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		c.Created = now
		r.s.ledger = append(r.s.ledger, &c)
	}
	return nil
}

func (r *LedgerRepo) SumBySKUs(skus []string) ([]entity.SKUQuantity, error) {
	wanted := make(map[string]bool, len(skus))
	for _, sku := range skus {
		wanted[sku] = true
	}
	return r.sum(func(tx *entity.LedgerTransaction) bool { return wanted[tx.SKU] })
}

func (r *LedgerRepo) SumByProduct(productID string) ([]entity.SKUQuantity, error) {
	return r.sum(func(tx *entity.LedgerTransaction) bool { return tx.ProductID == productID })
}

func (r *LedgerRepo) sum(match func(*entity.LedgerTransaction) bool) ([]entity.SKUQuantity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	type key struct{ productID, sku string }
	totals := make(map[key]int)
	var order []key
	for _, tx := range r.s.ledger {
		if !match(tx) {
			continue
		}
		k := key{tx.ProductID, tx.SKU}
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += tx.Quantity
	}

	out := make([]entity.SKUQuantity, 0, len(order))
	for _, k := range order {
		out = append(out, entity.SKUQuantity{ProductID: k.productID, SKU: k.sku, Quantity: totals[k]})
	}
	return out, nil
}
