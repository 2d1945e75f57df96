package inventory

import (
	"context"

	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/stock"
)

// ValuationUseCase reporte de valorización del stock disponible: unidades,
// costo total a precio de compra y costo promedio por SKU.
type ValuationUseCase struct {
	entityRepo repository.StockEntityRepository
}

// NewValuationUseCase construye el caso de uso.
func NewValuationUseCase(entityRepo repository.StockEntityRepository) *ValuationUseCase {
	return &ValuationUseCase{entityRepo: entityRepo}
}

// Valuation agrupa las unidades available por (product_id, sku) y calcula el
// costo promedio con precisión decimal.
func (uc *ValuationUseCase) Valuation(ctx context.Context) (*dto.ValuationResponse, error) {
	rows, err := uc.entityRepo.AvailableValuation()
	if err != nil {
		return nil, err
	}
	results := make([]dto.ValuationRowResponse, 0, len(rows))
	for _, r := range rows {
		avg := stock.AverageUnitCost(r.TotalCost, r.Units)
		results = append(results, dto.ValuationRowResponse{
			ProductID:   r.ProductID,
			SKU:         r.SKU,
			Units:       r.Units,
			TotalCost:   r.TotalCost,
			AverageCost: avg.StringFixed(2),
		})
	}
	return &dto.ValuationResponse{Results: results}, nil
}
