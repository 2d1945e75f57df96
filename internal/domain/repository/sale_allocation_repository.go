package repository

import "github.com/jhoicas/Stock-ledger-api/internal/domain/entity"

// SaleAllocationRepository define el puerto de las asignaciones unidad-venta.
// Las asignaciones se crean una sola vez; nunca se mutan ni borran.
type SaleAllocationRepository interface {
	// BulkCreate inserta asignaciones en bloque (bulk writer).
	BulkCreate(allocations []*entity.SaleAllocation) error
	// AllocatedEntityIDs ids de unidades asignadas a una orden de venta que
	// siguen en estado sold, opcionalmente acotado a un SKU ("" = todos) y a
	// limit filas (0 = todas).
	AllocatedEntityIDs(saleOrderID int64, sku string, limit int) ([]string, error)
	CountBySaleOrder(saleOrderID int64) (int, error)
}
