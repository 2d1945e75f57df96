package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

// AutoFillUseCase confirma una orden draft: selecciona unidades disponibles
// por línea (FIFO por fecha de creación, FOR UPDATE SKIP LOCKED), las pasa a
// sold, crea una asignación por unidad y deja la orden en confirmed. Si a
// cualquier línea le falta stock, toda la transacción se revierte y la orden
// sigue en draft (reintentable).
type AutoFillUseCase struct {
	txRunner  TxRunner
	chunkSize int
}

// NewAutoFillUseCase construye el caso de uso.
func NewAutoFillUseCase(txRunner TxRunner, chunkSize int) *AutoFillUseCase {
	return &AutoFillUseCase{txRunner: txRunner, chunkSize: chunkSize}
}

// AutoFill confirma la orden indicada.
func (uc *AutoFillUseCase) AutoFill(ctx context.Context, saleOrderID int64) (*dto.SaleOrderResponse, error) {
	var res *dto.SaleOrderResponse
	err := uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleOrderRepository,
		_ repository.LedgerRepository,
		entityRepo repository.StockEntityRepository,
		allocRepo repository.SaleAllocationRepository,
		_ repository.OrderAggregateRepository,
	) error {
		// Bloquea la fila de la orden: dos auto-fill concurrentes de la misma
		// orden se serializan y el segundo ve confirmed y se rechaza.
		order, err := saleRepo.GetByIDForUpdate(saleOrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: orden de venta %d", domain.ErrNotFound, saleOrderID)
		}
		if order.Status != entity.SaleOrderStatusDraft {
			return fmt.Errorf("%w: la orden %d está %s, solo draft se puede confirmar", domain.ErrConflict, saleOrderID, order.Status)
		}

		items, err := saleRepo.ListItems(saleOrderID)
		if err != nil {
			return err
		}
		now := time.Now()
		if err := uc.allocate(entityRepo, allocRepo, order, items, now); err != nil {
			return err
		}
		if err := saleRepo.UpdateStatus(saleOrderID, entity.SaleOrderStatusConfirmed); err != nil {
			return err
		}
		res = &dto.SaleOrderResponse{
			ID:       order.ID,
			Status:   string(entity.SaleOrderStatusConfirmed),
			Created:  order.Created,
			Modified: now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// allocate procesa las líneas en secuencia: la tx es una sola conexión y las
// sentencias se serializan de todos modos, así que un fan-out de goroutines
// no ganaría nada acá. Las asignaciones se acumulan en un solo buffer que se
// vacía al alcanzar chunkSize, no en los bordes de línea.
func (uc *AutoFillUseCase) allocate(
	entityRepo repository.StockEntityRepository,
	allocRepo repository.SaleAllocationRepository,
	order *entity.SaleOrder,
	items []*entity.SaleOrderItem,
	now time.Time,
) error {
	buf := make([]*entity.SaleAllocation, 0, uc.chunkSize)
	for _, item := range items {
		ids, err := entityRepo.SelectAvailableForUpdate(item.ProductID, item.SKU, item.Quantity)
		if err != nil {
			return err
		}
		if len(ids) < item.Quantity {
			return fmt.Errorf("%w: sku %s pide %d y hay %d disponibles", domain.ErrInsufficientStock, item.SKU, item.Quantity, len(ids))
		}
		if err := entityRepo.MarkStatus(ids, entity.StockStatusSold); err != nil {
			return err
		}
		for _, id := range ids {
			buf = append(buf, &entity.SaleAllocation{
				ID:              uuid.New().String(),
				StockEntityID:   id,
				SaleOrderID:     order.ID,
				SaleOrderItemID: item.ID,
				Created:         now,
			})
		}
		if len(buf) >= uc.chunkSize {
			if err := allocRepo.BulkCreate(buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}
	if len(buf) == 0 {
		return nil
	}
	return allocRepo.BulkCreate(buf)
}
