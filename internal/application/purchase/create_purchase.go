package purchase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/stock"
)

// CreateUseCase crea una orden de compra de forma transaccional: orden,
// líneas, asientos positivos del libro y materialización de una unidad de
// stock por cada unidad comprada. Cualquier fallo revierte todo.
type CreateUseCase struct {
	txRunner  TxRunner
	chunkSize int
}

// NewCreateUseCase construye el caso de uso. chunkSize acota los lotes de
// materialización de unidades (configurable, por defecto miles).
func NewCreateUseCase(txRunner TxRunner, chunkSize int) *CreateUseCase {
	return &CreateUseCase{txRunner: txRunner, chunkSize: chunkSize}
}

// Create valida la entrada, inicia la transacción y ejecuta el flujo completo
// de compra. Devuelve los totales agregados de la orden recién creada.
func (uc *CreateUseCase) Create(ctx context.Context, in dto.CreatePurchaseRequest) (*dto.CreatePurchaseResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la compra no tiene líneas", domain.ErrInvalidInput)
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.Price <= 0 {
			return nil, fmt.Errorf("%w: cantidad y precio deben ser positivos (sku %s)", domain.ErrInvalidInput, item.SKU)
		}
	}

	var res *dto.CreatePurchaseResponse
	err := uc.txRunner.RunPurchase(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		ledgerRepo repository.LedgerRepository,
		entityRepo repository.StockEntityRepository,
		aggRepo repository.OrderAggregateRepository,
	) error {
		p := &entity.Purchase{Note: in.Note, ExternalRef: in.ExternalRef}
		if err := purchaseRepo.Create(p); err != nil {
			return err
		}

		now := time.Now()
		items := make([]*entity.PurchaseItem, 0, len(in.Items))
		for _, ele := range in.Items {
			items = append(items, &entity.PurchaseItem{
				ID:               uuid.New().String(),
				PurchaseID:       p.ID,
				ProductID:        ele.ProductID,
				SKU:              ele.SKU,
				UniqueIdentifier: ele.UniqueIdentifier,
				Quantity:         ele.Quantity,
				Price:            ele.Price,
				Created:          now,
				Modified:         now,
			})
		}
		if err := purchaseRepo.BulkCreateItems(items); err != nil {
			return err
		}
		if err := uc.appendLedger(ledgerRepo, p.ID, items, now); err != nil {
			return err
		}
		if err := uc.materializeEntities(entityRepo, p.ID, items, now); err != nil {
			return err
		}

		totals, err := aggRepo.AggregatePurchase(p.ID)
		if err != nil {
			return err
		}
		res = buildCreateResponse(p, items, totals)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// appendLedger agrega un asiento positivo por línea de compra (un solo bulk).
func (uc *CreateUseCase) appendLedger(ledgerRepo repository.LedgerRepository, purchaseID int64, items []*entity.PurchaseItem, now time.Time) error {
	txs := make([]*entity.LedgerTransaction, 0, len(items))
	for _, ele := range items {
		pid := purchaseID
		txs = append(txs, &entity.LedgerTransaction{
			ID:               uuid.New().String(),
			ProductID:        ele.ProductID,
			SKU:              ele.SKU,
			UniqueIdentifier: ele.UniqueIdentifier,
			Quantity:         ele.Quantity,
			Type:             entity.TransactionTypePurchase,
			PurchaseID:       &pid,
			Created:          now,
		})
	}
	return ledgerRepo.BulkAppend(txs)
}

// materializeEntities crea una unidad available por cada unidad comprada.
// El troceo es por línea (SplitChunks) pero el buffer de staging es uno solo:
// se vacía cada vez que alcanza chunkSize, no en los bordes de línea, para
// acotar la memoria pico con cantidades arbitrariamente grandes.
func (uc *CreateUseCase) materializeEntities(entityRepo repository.StockEntityRepository, purchaseID int64, items []*entity.PurchaseItem, now time.Time) error {
	buf := make([]*entity.StockEntity, 0, uc.chunkSize)
	for _, item := range items {
		for _, chunk := range stock.SplitChunks(uc.chunkSize, item.Quantity) {
			for i := 0; i < chunk; i++ {
				buf = append(buf, &entity.StockEntity{
					ID:               uuid.New().String(),
					ProductID:        item.ProductID,
					SKU:              item.SKU,
					UniqueIdentifier: item.UniqueIdentifier,
					Status:           entity.StockStatusAvailable,
					PurchaseID:       purchaseID,
					PurchaseItemID:   item.ID,
					Created:          now,
					Modified:         now,
				})
			}
			if len(buf) >= uc.chunkSize {
				if err := entityRepo.BulkCreate(buf); err != nil {
					return err
				}
				buf = buf[:0]
			}
		}
	}
	if len(buf) == 0 {
		return nil
	}
	return entityRepo.BulkCreate(buf)
}

func buildCreateResponse(p *entity.Purchase, items []*entity.PurchaseItem, totals entity.OrderTotals) *dto.CreatePurchaseResponse {
	out := make([]dto.PurchaseItemResponse, 0, len(items))
	for _, ele := range items {
		out = append(out, dto.PurchaseItemResponse{
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
	return &dto.CreatePurchaseResponse{
		ID:         p.ID,
		Note:       p.Note,
		TotalPrice: totals.TotalPrice,
		TotalUnits: totals.TotalUnits,
		Items:      out,
		Created:    p.Created,
		Modified:   p.Modified,
	}
}
