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

// CancelUseCase cancela una orden draft. El libro es append-only, así que la
// cancelación no borra los asientos de la venta: agrega asientos de ajuste
// positivos que los compensan, y deja la orden en cancelled.
type CancelUseCase struct {
	txRunner TxRunner
}

// NewCancelUseCase construye el caso de uso.
func NewCancelUseCase(txRunner TxRunner) *CancelUseCase {
	return &CancelUseCase{txRunner: txRunner}
}

// Cancel cancela la orden indicada. Solo draft es cancelable: una orden
// confirmed ya tiene unidades asignadas y se maneja con devoluciones.
func (uc *CancelUseCase) Cancel(ctx context.Context, saleOrderID int64) (*dto.SaleOrderResponse, error) {
	var res *dto.SaleOrderResponse
	err := uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleOrderRepository,
		ledgerRepo repository.LedgerRepository,
		_ repository.StockEntityRepository,
		_ repository.SaleAllocationRepository,
		_ repository.OrderAggregateRepository,
	) error {
		order, err := saleRepo.GetByIDForUpdate(saleOrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: orden de venta %d", domain.ErrNotFound, saleOrderID)
		}
		if order.Status != entity.SaleOrderStatusDraft {
			return fmt.Errorf("%w: la orden %d está %s, solo draft se puede cancelar", domain.ErrConflict, saleOrderID, order.Status)
		}

		items, err := saleRepo.ListItems(saleOrderID)
		if err != nil {
			return err
		}
		now := time.Now()
		txs := make([]*entity.LedgerTransaction, 0, len(items))
		for _, ele := range items {
			oid := order.ID
			txs = append(txs, &entity.LedgerTransaction{
				ID:               uuid.New().String(),
				ProductID:        ele.ProductID,
				SKU:              ele.SKU,
				UniqueIdentifier: ele.UniqueIdentifier,
				Quantity:         ele.Quantity,
				Type:             entity.TransactionTypeAdjustment,
				SaleOrderID:      &oid,
				Created:          now,
			})
		}
		if err := ledgerRepo.BulkAppend(txs); err != nil {
			return err
		}
		if err := saleRepo.UpdateStatus(saleOrderID, entity.SaleOrderStatusCancelled); err != nil {
			return err
		}
		res = &dto.SaleOrderResponse{
			ID:       order.ID,
			Status:   string(entity.SaleOrderStatusCancelled),
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
