// Package memory implementa los puertos de repositorio sobre estructuras en
// memoria. Sirve para pruebas de casos de uso sin PostgreSQL; no es apta para
// producción.
package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// Store estado compartido de todos los repositorios en memoria. Los slices
// conservan el orden de inserción, que hace de orden FIFO por creación.
type Store struct {
	mu sync.Mutex
	// txMu serializa transacciones completas (ver TxRunner).
	txMu sync.Mutex

	purchases     map[int64]*entity.Purchase
	purchaseItems []*entity.PurchaseItem
	saleOrders    map[int64]*entity.SaleOrder
	saleItems     []*entity.SaleOrderItem
	ledger        []*entity.LedgerTransaction
	entities      []*entity.StockEntity
	allocations   []*entity.SaleAllocation

	nextPurchaseID  int64
	nextSaleOrderID int64
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		purchases:  make(map[int64]*entity.Purchase),
		saleOrders: make(map[int64]*entity.SaleOrder),
	}
}

func (s *Store) now() time.Time {
	return time.Now().UTC()
}

// snapshot copia profunda del estado, usada por TxRunner para simular rollback.
type snapshot struct {
	purchases     map[int64]*entity.Purchase
	purchaseItems []*entity.PurchaseItem
	saleOrders    map[int64]*entity.SaleOrder
	saleItems     []*entity.SaleOrderItem
	ledger        []*entity.LedgerTransaction
	entities      []*entity.StockEntity
	allocations   []*entity.SaleAllocation

	nextPurchaseID  int64
	nextSaleOrderID int64
}

func clonePtrs[T any](in []*T) []*T {
	out := make([]*T, len(in))
	for i, v := range in {
		c := *v
		out[i] = &c
	}
	return out
}

func cloneMap[K comparable, T any](in map[K]*T) map[K]*T {
	out := make(map[K]*T, len(in))
	for k, v := range in {
		c := *v
		out[k] = &c
	}
	return out
}

func (s *Store) takeSnapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot{
		purchases:       cloneMap(s.purchases),
		purchaseItems:   clonePtrs(s.purchaseItems),
		saleOrders:      cloneMap(s.saleOrders),
		saleItems:       clonePtrs(s.saleItems),
		ledger:          clonePtrs(s.ledger),
		entities:        clonePtrs(s.entities),
		allocations:     clonePtrs(s.allocations),
		nextPurchaseID:  s.nextPurchaseID,
		nextSaleOrderID: s.nextSaleOrderID,
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases = snap.purchases
	s.purchaseItems = snap.purchaseItems
	s.saleOrders = snap.saleOrders
	s.saleItems = snap.saleItems
	s.ledger = snap.ledger
	s.entities = snap.entities
	s.allocations = snap.allocations
	s.nextPurchaseID = snap.nextPurchaseID
	s.nextSaleOrderID = snap.nextSaleOrderID
}
