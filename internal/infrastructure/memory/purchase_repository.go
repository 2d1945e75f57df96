package memory

import (
	"sort"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo repositorio de compras en memoria.
type PurchaseRepo struct {
	s *Store
}

// NewPurchaseRepository construye el repositorio sobre el almacén.
func NewPurchaseRepository(s *Store) *PurchaseRepo {
	return &PurchaseRepo{s: s}
}

func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextPurchaseID++
	purchase.ID = r.s.nextPurchaseID
	purchase.Created = r.s.now()
	purchase.Modified = purchase.Created
	c := *purchase
	r.s.purchases[purchase.ID] = &c
	return nil
}

func (r *PurchaseRepo) GetByID(id int64) (*entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.purchases[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *PurchaseRepo) BulkCreateItems(items []*entity.PurchaseItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.now()
	for _, it := range items {
		c := *it
		c.Created = now
		c.Modified = now
		r.s.purchaseItems = append(r.s.purchaseItems, &c)
	}
	return nil
}

func (r *PurchaseRepo) ListItems(purchaseID int64) ([]*entity.PurchaseItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.PurchaseItem
	for _, it := range r.s.purchaseItems {
		if it.PurchaseID == purchaseID {
			c := *it
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *PurchaseRepo) LatestID() (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ids := make([]int64, 0, len(r.s.purchases))
	for id := range r.s.purchases {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	return ids[0], nil
}
