package inventory

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

// AdjustmentUseCase ajustes explícitos de stock, transaccionales:
//
//	adjustment: pasa N unidades available a adjusted (merma, rotura, conteo)
//	            con asiento negativo de tipo adjustment.
//	return:     pasa N unidades sold de una venta a returned con asiento
//	            positivo de tipo return.
//
// En ambos casos el cambio de estado y el asiento se escriben en un solo
// commit, nunca por separado.
type AdjustmentUseCase struct {
	txRunner TxRunner
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(txRunner TxRunner) *AdjustmentUseCase {
	return &AdjustmentUseCase{txRunner: txRunner}
}

// Adjust aplica el ajuste pedido. Falla completo si no hay unidades
// suficientes en el estado de origen; no hay ajustes parciales.
func (uc *AdjustmentUseCase) Adjust(ctx context.Context, in dto.AdjustmentRequest) (*dto.AdjustmentResponse, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad del ajuste debe ser positiva", domain.ErrInvalidInput)
	}
	if in.Kind == dto.AdjustmentKindReturn && in.SaleOrderID <= 0 {
		return nil, fmt.Errorf("%w: una devolución requiere sale_order_id", domain.ErrInvalidInput)
	}

	var res *dto.AdjustmentResponse
	err := uc.txRunner.RunAdjustment(ctx, func(
		ledgerRepo repository.LedgerRepository,
		entityRepo repository.StockEntityRepository,
		allocRepo repository.SaleAllocationRepository,
	) error {
		switch in.Kind {
		case dto.AdjustmentKindAdjustment:
			return uc.doAdjustment(ledgerRepo, entityRepo, in, &res)
		case dto.AdjustmentKindReturn:
			return uc.doReturn(ledgerRepo, allocRepo, entityRepo, in, &res)
		}
		return fmt.Errorf("%w: tipo de ajuste %q desconocido", domain.ErrInvalidInput, in.Kind)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// doAdjustment retira unidades disponibles del pool con la misma selección
// FIFO bloqueante que usa la venta.
func (uc *AdjustmentUseCase) doAdjustment(
	ledgerRepo repository.LedgerRepository,
	entityRepo repository.StockEntityRepository,
	in dto.AdjustmentRequest,
	res **dto.AdjustmentResponse,
) error {
	ids, err := entityRepo.SelectAvailableForUpdate(in.ProductID, in.SKU, in.Quantity)
	if err != nil {
		return err
	}
	if len(ids) < in.Quantity {
		return fmt.Errorf("%w: sku %s pide ajustar %d y hay %d disponibles", domain.ErrInsufficientStock, in.SKU, in.Quantity, len(ids))
	}
	if err := entityRepo.MarkStatus(ids, entity.StockStatusAdjusted); err != nil {
		return err
	}
	if err := ledgerRepo.BulkAppend([]*entity.LedgerTransaction{{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		SKU:       in.SKU,
		Quantity:  -in.Quantity,
		Type:      entity.TransactionTypeAdjustment,
		Created:   time.Now(),
	}}); err != nil {
		return err
	}
	*res = &dto.AdjustmentResponse{Kind: in.Kind, SKU: in.SKU, Quantity: -in.Quantity, Applied: len(ids)}
	return nil
}

// doReturn marca unidades vendidas de la orden como returned. La unidad
// devuelta queda fuera del pool vendible (returned es un estado de auditoría,
// no re-entra a available); el asiento positivo registra la entrada física.
func (uc *AdjustmentUseCase) doReturn(
	ledgerRepo repository.LedgerRepository,
	allocRepo repository.SaleAllocationRepository,
	entityRepo repository.StockEntityRepository,
	in dto.AdjustmentRequest,
	res **dto.AdjustmentResponse,
) error {
	ids, err := allocRepo.AllocatedEntityIDs(in.SaleOrderID, in.SKU, in.Quantity)
	if err != nil {
		return err
	}
	if len(ids) < in.Quantity {
		return fmt.Errorf("%w: la orden %d tiene %d unidades vendidas de %s, se pidió devolver %d", domain.ErrConflict, in.SaleOrderID, len(ids), in.SKU, in.Quantity)
	}
	if err := entityRepo.MarkStatus(ids, entity.StockStatusReturned); err != nil {
		return err
	}
	oid := in.SaleOrderID
	if err := ledgerRepo.BulkAppend([]*entity.LedgerTransaction{{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		SKU:         in.SKU,
		Quantity:    in.Quantity,
		Type:        entity.TransactionTypeReturn,
		SaleOrderID: &oid,
		Created:     time.Now(),
	}}); err != nil {
		return err
	}
	*res = &dto.AdjustmentResponse{Kind: in.Kind, SKU: in.SKU, Quantity: in.Quantity, Applied: len(ids)}
	return nil
}
