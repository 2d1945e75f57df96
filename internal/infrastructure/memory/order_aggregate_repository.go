package memory

import (
	"fmt"
	"sort"

	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

var _ repository.OrderAggregateRepository = (*OrderAggregateRepo)(nil)

// OrderAggregateRepo agregaciones de órdenes en memoria.
type OrderAggregateRepo struct {
	s *Store
}

// NewOrderAggregateRepository construye el repositorio sobre el almacén.
func NewOrderAggregateRepository(s *Store) *OrderAggregateRepo {
	return &OrderAggregateRepo{s: s}
}

func (r *OrderAggregateRepo) AggregatePurchase(purchaseID int64) (entity.OrderTotals, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var totals entity.OrderTotals
	found := false
	for _, it := range r.s.purchaseItems {
		if it.PurchaseID == purchaseID {
			totals.TotalPrice += it.Price * int64(it.Quantity)
			totals.TotalUnits += it.Quantity
			found = true
		}
	}
	if !found {
		return entity.OrderTotals{}, fmt.Errorf("aggregate purchase %d sin líneas: %w", purchaseID, domain.ErrInternalAggregation)
	}
	return totals, nil
}

func (r *OrderAggregateRepo) AggregateSaleOrder(saleOrderID int64) (entity.OrderTotals, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var totals entity.OrderTotals
	found := false
	for _, it := range r.s.saleItems {
		if it.SaleOrderID == saleOrderID {
			totals.TotalPrice += it.Price * int64(it.Quantity)
			totals.TotalUnits += it.Quantity
			found = true
		}
	}
	if !found {
		return entity.OrderTotals{}, fmt.Errorf("aggregate sale order %d sin líneas: %w", saleOrderID, domain.ErrInternalAggregation)
	}
	return totals, nil
}

func (r *OrderAggregateRepo) ListPurchases(ids []int64, limit, offset int) ([]entity.OrderSummary, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	allIDs := filterIDs(keysOf(r.s.purchases), ids)
	total := len(allIDs)
	page := paginateDesc(allIDs, limit, offset)

	summaries := make([]entity.OrderSummary, 0, len(page))
	for _, id := range page {
		p := r.s.purchases[id]
		s := entity.OrderSummary{ID: id, Note: p.Note, Created: p.Created, Modified: p.Modified}
		for _, it := range r.s.purchaseItems {
			if it.PurchaseID == id {
				s.TotalPrice += it.Price * int64(it.Quantity)
				s.TotalUnits += it.Quantity
			}
		}
		summaries = append(summaries, s)
	}
	return summaries, total, nil
}

func (r *OrderAggregateRepo) ListSaleOrders(ids []int64, limit, offset int) ([]entity.OrderSummary, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	allIDs := filterIDs(keysOf(r.s.saleOrders), ids)
	total := len(allIDs)
	page := paginateDesc(allIDs, limit, offset)

	summaries := make([]entity.OrderSummary, 0, len(page))
	for _, id := range page {
		o := r.s.saleOrders[id]
		s := entity.OrderSummary{ID: id, Note: o.Note, Status: o.Status, Created: o.Created, Modified: o.Modified}
		for _, it := range r.s.saleItems {
			if it.SaleOrderID == id {
				s.TotalPrice += it.Price * int64(it.Quantity)
				s.TotalUnits += it.Quantity
			}
		}
		summaries = append(summaries, s)
	}
	return summaries, total, nil
}

func keysOf[T any](m map[int64]*T) []int64 {
	out := make([]int64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func filterIDs(all, wanted []int64) []int64 {
	if len(wanted) == 0 {
		return all
	}
	set := make(map[int64]bool, len(wanted))
	for _, id := range wanted {
		set[id] = true
	}
	var out []int64
	for _, id := range all {
		if set[id] {
			out = append(out, id)
		}
	}
	return out
}

func paginateDesc(ids []int64, limit, offset int) []int64 {
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	if offset >= len(ids) {
		return nil
	}
	ids = ids[offset:]
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}
