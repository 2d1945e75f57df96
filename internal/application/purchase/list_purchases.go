package purchase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

// ListUseCase consultas de solo lectura sobre compras: resúmenes paginados,
// líneas de una compra y el id más reciente. Opera directo sobre el pool
// (sin transacción); no hay efectos que revertir.
type ListUseCase struct {
	purchaseRepo repository.PurchaseRepository
	aggRepo      repository.OrderAggregateRepository
}

// NewListUseCase construye el caso de uso.
func NewListUseCase(purchaseRepo repository.PurchaseRepository, aggRepo repository.OrderAggregateRepository) *ListUseCase {
	return &ListUseCase{purchaseRepo: purchaseRepo, aggRepo: aggRepo}
}

// List resúmenes de compras ordenados por id descendente, con el conteo
// total. El conteo y la página son dos lecturas independientes: bajo
// escrituras concurrentes pueden diferir (listado best effort).
func (uc *ListUseCase) List(ctx context.Context, ids []int64, page dto.PageRequest) (*dto.ListPurchasesResponse, error) {
	page.DefaultPage()
	summaries, total, err := uc.aggRepo.ListPurchases(ids, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	results := make([]dto.PurchaseSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		results = append(results, dto.PurchaseSummaryResponse{
			ID:         s.ID,
			Note:       s.Note,
			TotalPrice: s.TotalPrice,
			TotalUnits: s.TotalUnits,
			Created:    s.Created,
			Modified:   s.Modified,
		})
	}
	return &dto.ListPurchasesResponse{Results: results, Total: total}, nil
}

// ListItems líneas de una compra existente.
func (uc *ListUseCase) ListItems(ctx context.Context, purchaseID int64) ([]dto.PurchaseItemResponse, error) {
	p, err := uc.purchaseRepo.GetByID(purchaseID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: compra %d", domain.ErrNotFound, purchaseID)
	}
	items, err := uc.purchaseRepo.ListItems(purchaseID)
	if err != nil {
		return nil, err
	}
	results := make([]dto.PurchaseItemResponse, 0, len(items))
	for _, ele := range items {
		results = append(results, dto.PurchaseItemResponse{
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
	return results, nil
}

// LatestID id de la compra más reciente, 0 si todavía no hay compras.
func (uc *ListUseCase) LatestID(ctx context.Context) (*dto.LatestPurchaseIDResponse, error) {
	id, err := uc.purchaseRepo.LatestID()
	if err != nil {
		return nil, err
	}
	return &dto.LatestPurchaseIDResponse{PurchaseID: id}, nil
}
