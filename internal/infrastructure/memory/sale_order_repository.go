package memory

import (
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

var _ repository.SaleOrderRepository = (*SaleOrderRepo)(nil)

// SaleOrderRepo repositorio de ventas en memoria.
type SaleOrderRepo struct {
	s *Store
}

// NewSaleOrderRepository construye el repositorio sobre el almacén.
func NewSaleOrderRepository(s *Store) *SaleOrderRepo {
	return &SaleOrderRepo{s: s}
}

func (r *SaleOrderRepo) Create(order *entity.SaleOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextSaleOrderID++
	order.ID = r.s.nextSaleOrderID
	order.Created = r.s.now()
	order.Modified = order.Created
	c := *order
	r.s.saleOrders[order.ID] = &c
	return nil
}

func (r *SaleOrderRepo) GetByID(id int64) (*entity.SaleOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.saleOrders[id]
	if !ok {
		return nil, nil
	}
	c := *o
	return &c, nil
}

// GetByIDForUpdate en memoria no bloquea filas; la serialización la da el
// TxRunner, que ejecuta una transacción a la vez.
func (r *SaleOrderRepo) GetByIDForUpdate(id int64) (*entity.SaleOrder, error) {
	return r.GetByID(id)
}

func (r *SaleOrderRepo) BulkCreateItems(items []*entity.SaleOrderItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := r.s.now()
	for _, it := range items {
		c := *it
		c.Created = now
		c.Modified = now
		r.s.saleItems = append(r.s.saleItems, &c)
	}
	return nil
}

func (r *SaleOrderRepo) ListItems(saleOrderID int64) ([]*entity.SaleOrderItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.SaleOrderItem
	for _, it := range r.s.saleItems {
		if it.SaleOrderID == saleOrderID {
			c := *it
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *SaleOrderRepo) UpdateStatus(id int64, status entity.SaleOrderStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.saleOrders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	o.Modified = r.s.now()
	return nil
}

func (r *SaleOrderRepo) IDsByStatus(status entity.SaleOrderStatus) ([]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ids []int64
	for id, o := range r.s.saleOrders {
		if o.Status == status {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
