package memory

import (
	"github.com/google/uuid"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

var _ repository.SaleAllocationRepository = (*SaleAllocationRepo)(nil)

// SaleAllocationRepo asignaciones unidad-venta en memoria.
type SaleAllocationRepo struct {
	s *Store
}

// NewSaleAllocationRepository construye el repositorio sobre el almacén.
func NewSaleAllocationRepository(s *Store) *SaleAllocationRepo {
	return &SaleAllocationRepo{s: s}
}

func (r *SaleAllocationRepo) BulkCreate(allocations []*entity.SaleAllocation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.now()
	for _, a := range allocations {
		c := *a
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		c.Created = now
		r.s.allocations = append(r.s.allocations, &c)
	}
	return nil
}

func (r *SaleAllocationRepo) AllocatedEntityIDs(saleOrderID int64, sku string, limit int) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	byID := make(map[string]*entity.StockEntity, len(r.s.entities))
	for _, e := range r.s.entities {
		byID[e.ID] = e
	}

	var ids []string
	for _, a := range r.s.allocations {
		if limit > 0 && len(ids) == limit {
			break
		}
		if a.SaleOrderID != saleOrderID {
			continue
		}
		e, ok := byID[a.StockEntityID]
		if !ok || e.Status != entity.StockStatusSold {
			continue
		}
		if sku != "" && e.SKU != sku {
			continue
		}
		ids = append(ids, a.StockEntityID)
	}
	return ids, nil
}

func (r *SaleAllocationRepo) CountBySaleOrder(saleOrderID int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, a := range r.s.allocations {
		if a.SaleOrderID == saleOrderID {
			n++
		}
	}
	return n, nil
}
