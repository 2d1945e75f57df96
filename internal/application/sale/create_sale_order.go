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

// CreateUseCase crea una orden de venta en estado draft con sus líneas y los
// asientos negativos del libro. La asignación de unidades concretas queda
// diferida al auto-fill (confirmación explícita); acá solo se verifica
// disponibilidad neta por SKU para rechazar temprano ventas sin stock.
type CreateUseCase struct {
	txRunner   TxRunner
	ledgerRepo repository.LedgerRepository // lectura previa, atada al pool
}

// NewCreateUseCase construye el caso de uso.
func NewCreateUseCase(txRunner TxRunner, ledgerRepo repository.LedgerRepository) *CreateUseCase {
	return &CreateUseCase{txRunner: txRunner, ledgerRepo: ledgerRepo}
}

// Create valida, verifica disponibilidad neta y persiste la orden draft.
func (uc *CreateUseCase) Create(ctx context.Context, in dto.CreateSaleOrderRequest) (*dto.CreateSaleOrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la venta no tiene líneas", domain.ErrInvalidInput)
	}
	required := make(map[string]int, len(in.Items))
	skus := make([]string, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.Price <= 0 {
			return nil, fmt.Errorf("%w: cantidad y precio deben ser positivos (sku %s)", domain.ErrInvalidInput, item.SKU)
		}
		if _, seen := required[item.SKU]; !seen {
			skus = append(skus, item.SKU)
		}
		required[item.SKU] += item.Quantity
	}
	if err := uc.checkAvailability(skus, required); err != nil {
		return nil, err
	}

	var res *dto.CreateSaleOrderResponse
	err := uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleOrderRepository,
		ledgerRepo repository.LedgerRepository,
		_ repository.StockEntityRepository,
		_ repository.SaleAllocationRepository,
		aggRepo repository.OrderAggregateRepository,
	) error {
		order := &entity.SaleOrder{Note: in.Note, Status: entity.SaleOrderStatusDraft}
		if err := saleRepo.Create(order); err != nil {
			return err
		}

		now := time.Now()
		items := make([]*entity.SaleOrderItem, 0, len(in.Items))
		for _, ele := range in.Items {
			items = append(items, &entity.SaleOrderItem{
				ID:               uuid.New().String(),
				SaleOrderID:      order.ID,
				ProductID:        ele.ProductID,
				SKU:              ele.SKU,
				UniqueIdentifier: ele.UniqueIdentifier,
				Quantity:         ele.Quantity,
				Price:            ele.Price,
				Created:          now,
				Modified:         now,
			})
		}
		if err := saleRepo.BulkCreateItems(items); err != nil {
			return err
		}

		// Asiento negativo por línea: la negación aritmética es el contrato.
		txs := make([]*entity.LedgerTransaction, 0, len(items))
		for _, ele := range items {
			oid := order.ID
			txs = append(txs, &entity.LedgerTransaction{
				ID:               uuid.New().String(),
				ProductID:        ele.ProductID,
				SKU:              ele.SKU,
				UniqueIdentifier: ele.UniqueIdentifier,
				Quantity:         -ele.Quantity,
				Type:             entity.TransactionTypeSale,
				SaleOrderID:      &oid,
				Created:          now,
			})
		}
		if err := ledgerRepo.BulkAppend(txs); err != nil {
			return err
		}

		totals, err := aggRepo.AggregateSaleOrder(order.ID)
		if err != nil {
			return err
		}
		res = buildCreateResponse(order, items, totals)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// checkAvailability compara lo pedido por SKU contra la suma neta del libro.
// Es una verificación temprana de cortesía: la garantía dura la da la
// selección bloqueante del auto-fill.
func (uc *CreateUseCase) checkAvailability(skus []string, required map[string]int) error {
	sums, err := uc.ledgerRepo.SumBySKUs(skus)
	if err != nil {
		return err
	}
	available := make(map[string]int, len(sums))
	for _, s := range sums {
		available[s.SKU] += s.Quantity
	}
	for sku, qty := range required {
		if available[sku] < qty {
			return fmt.Errorf("%w: sku %s pide %d y hay %d", domain.ErrInsufficientStock, sku, qty, available[sku])
		}
	}
	return nil
}

func buildCreateResponse(order *entity.SaleOrder, items []*entity.SaleOrderItem, totals entity.OrderTotals) *dto.CreateSaleOrderResponse {
	out := make([]dto.SaleItemResponse, 0, len(items))
	for _, ele := range items {
		out = append(out, dto.SaleItemResponse{
			ID:               ele.ID,
			ProductID:        ele.ProductID,
			SKU:              ele.SKU,
			Quantity:         ele.Quantity,
			Price:            ele.Price,
			UniqueIdentifier: ele.UniqueIdentifier,
			Created:          ele.Created,
			Modified:         ele.Modified,
		})
	}
	return &dto.CreateSaleOrderResponse{
		ID:         order.ID,
		Note:       order.Note,
		Status:     string(order.Status),
		TotalPrice: totals.TotalPrice,
		TotalUnits: totals.TotalUnits,
		Items:      out,
		Created:    order.Created,
		Modified:   order.Modified,
	}
}
