package sale

import (
	"context"
	"fmt"

	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

// ListUseCase listados de solo lectura de órdenes de venta. Opera directo
// sobre el pool; el conteo y la página son lecturas independientes (best
// effort bajo escrituras concurrentes).
type ListUseCase struct {
	saleRepo repository.SaleOrderRepository
	aggRepo  repository.OrderAggregateRepository
}

// NewListUseCase construye el caso de uso.
func NewListUseCase(saleRepo repository.SaleOrderRepository, aggRepo repository.OrderAggregateRepository) *ListUseCase {
	return &ListUseCase{saleRepo: saleRepo, aggRepo: aggRepo}
}

// List resúmenes de ventas ordenados por id descendente. status vacío = sin
// filtro; ambos filtros se intersectan: una fila debe estar en los ids
// explícitos y tener el estado pedido. Sin coincidencias devuelve página vacía.
func (uc *ListUseCase) List(ctx context.Context, ids []int64, status string, page dto.PageRequest) (*dto.ListSaleOrdersResponse, error) {
	page.DefaultPage()

	if status != "" {
		st := entity.SaleOrderStatus(status)
		if !st.Valid() {
			return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, status)
		}
		statusIDs, err := uc.saleRepo.IDsByStatus(st)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			ids = statusIDs
		} else {
			byStatus := make(map[int64]struct{}, len(statusIDs))
			for _, id := range statusIDs {
				byStatus[id] = struct{}{}
			}
			kept := make([]int64, 0, len(ids))
			for _, id := range ids {
				if _, ok := byStatus[id]; ok {
					kept = append(kept, id)
				}
			}
			ids = kept
		}
		if len(ids) == 0 {
			return &dto.ListSaleOrdersResponse{Results: []dto.SaleOrderSummaryResponse{}, Total: 0}, nil
		}
	}

	summaries, total, err := uc.aggRepo.ListSaleOrders(ids, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	results := make([]dto.SaleOrderSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		results = append(results, dto.SaleOrderSummaryResponse{
			ID:         s.ID,
			Status:     string(s.Status),
			Note:       s.Note,
			TotalPrice: s.TotalPrice,
			TotalUnits: s.TotalUnits,
			Created:    s.Created,
			Modified:   s.Modified,
		})
	}
	return &dto.ListSaleOrdersResponse{Results: results, Total: total}, nil
}
