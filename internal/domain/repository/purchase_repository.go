package repository

import "github.com/jhoicas/Stock-ledger-api/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para órdenes de compra
// y sus líneas. Las líneas se insertan en bloque, nunca se actualizan.
type PurchaseRepository interface {
	// Create inserta la orden y rellena ID (bigserial), Created y Modified.
	Create(purchase *entity.Purchase) error
	// GetByID devuelve nil, nil si la orden no existe.
	GetByID(id int64) (*entity.Purchase, error)
	BulkCreateItems(items []*entity.PurchaseItem) error
	ListItems(purchaseID int64) ([]*entity.PurchaseItem, error)
	// LatestID devuelve el id más alto, 0 si no hay compras.
	LatestID() (int64, error)
}
