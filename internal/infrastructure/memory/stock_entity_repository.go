package memory

import (
	"fmt"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

var _ repository.StockEntityRepository = (*StockEntityRepo)(nil)

// StockEntityRepo pool de unidades de stock en memoria. El slice del almacén
// conserva el orden de inserción, que hace de orden FIFO.
type StockEntityRepo struct {
	s *Store
}

// NewStockEntityRepository construye el repositorio sobre el almacén.
func NewStockEntityRepository(s *Store) *StockEntityRepo {
	return &StockEntityRepo{s: s}
}

func (r *StockEntityRepo) BulkCreate(entities []*entity.StockEntity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.now()
	for _, e := range entities {
		c := *e
		c.Created = now
		c.Modified = now
		r.s.entities = append(r.s.entities, &c)
	}
	return nil
}

func (r *StockEntityRepo) SelectAvailableForUpdate(productID, sku string, limit int) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []string
	for _, e := range r.s.entities {
		if len(ids) == limit {
			break
		}
		if e.ProductID == productID && e.SKU == sku && e.Status == entity.StockStatusAvailable {
			ids = append(ids, e.ID)
		}
	}
	return ids, nil
}

func (r *StockEntityRepo) MarkStatus(ids []string, status entity.StockStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	marked := 0
	now := r.s.now()
	for _, e := range r.s.entities {
		if wanted[e.ID] {
			e.Status = status
			e.Modified = now
			marked++
		}
	}
	if marked != len(ids) {
		return fmt.Errorf("mark status: se esperaban %d unidades, se marcaron %d", len(ids), marked)
	}
	return nil
}

func (r *StockEntityRepo) CountBySKU(sku string, status entity.StockStatus) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, e := range r.s.entities {
		if e.SKU == sku && e.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *StockEntityRepo) AvailableValuation() ([]entity.ValuationRow, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Precio unitario por línea de compra para costear cada unidad.
	prices := make(map[string]int64, len(r.s.purchaseItems))
	for _, it := range r.s.purchaseItems {
		prices[it.ID] = it.Price
	}

	type key struct{ productID, sku string }
	rowsByKey := make(map[key]*entity.ValuationRow)
	var order []key
	for _, e := range r.s.entities {
		if e.Status != entity.StockStatusAvailable {
			continue
		}
		k := key{e.ProductID, e.SKU}
		row, ok := rowsByKey[k]
		if !ok {
			row = &entity.ValuationRow{ProductID: e.ProductID, SKU: e.SKU}
			rowsByKey[k] = row
			order = append(order, k)
		}
		row.Units++
		row.TotalCost += prices[e.PurchaseItemID]
	}

	out := make([]entity.ValuationRow, 0, len(order))
	for _, k := range order {
		out = append(out, *rowsByKey[k])
	}
	return out, nil
}
