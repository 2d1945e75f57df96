package repository

import "github.com/jhoicas/Stock-ledger-api/internal/domain/entity"

// StockEntityRepository define el puerto del pool de unidades de stock.
type StockEntityRepository interface {
	// BulkCreate inserta unidades en bloque. La implementación trocea el lote
	// en grupos acotados antes de escribir (bulk writer).
	BulkCreate(entities []*entity.StockEntity) error
	// SelectAvailableForUpdate selecciona hasta limit ids de unidades
	// disponibles de (product_id, sku) en orden FIFO por fecha de creación,
	// bloqueando las filas y saltando las ya bloqueadas por otra transacción
	// (FOR UPDATE SKIP LOCKED) para que dos ventas concurrentes no asignen
	// la misma unidad.
	SelectAvailableForUpdate(productID, sku string, limit int) ([]string, error)
	MarkStatus(ids []string, status entity.StockStatus) error
	CountBySKU(sku string, status entity.StockStatus) (int, error)
	// AvailableValuation unidades disponibles y costo total a precio de
	// compra, agrupado por (product_id, sku).
	AvailableValuation() ([]entity.ValuationRow, error)
}
