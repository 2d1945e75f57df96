package repository

import "github.com/jhoicas/Stock-ledger-api/internal/domain/entity"

// SaleOrderRepository define el puerto de persistencia para órdenes de venta.
// El único campo mutable de la orden es Status.
type SaleOrderRepository interface {
	// Create inserta la orden y rellena ID (bigserial), Created y Modified.
	Create(order *entity.SaleOrder) error
	// GetByID devuelve nil, nil si la orden no existe.
	GetByID(id int64) (*entity.SaleOrder, error)
	// GetByIDForUpdate bloquea la fila de la orden (SELECT FOR UPDATE) para
	// serializar confirmaciones concurrentes de la misma orden.
	GetByIDForUpdate(id int64) (*entity.SaleOrder, error)
	BulkCreateItems(items []*entity.SaleOrderItem) error
	ListItems(saleOrderID int64) ([]*entity.SaleOrderItem, error)
	UpdateStatus(id int64, status entity.SaleOrderStatus) error
	// IDsByStatus ids de órdenes en un estado dado (filtro de listados).
	IDsByStatus(status entity.SaleOrderStatus) ([]int64, error)
}
