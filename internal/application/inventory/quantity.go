package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

// QuantityUseCase cantidad neta por SKU: suma con signo de los asientos del
// libro agrupada por (product_id, sku). Lectura pura sobre el pool.
type QuantityUseCase struct {
	ledgerRepo repository.LedgerRepository
}

// NewQuantityUseCase construye el caso de uso.
func NewQuantityUseCase(ledgerRepo repository.LedgerRepository) *QuantityUseCase {
	return &QuantityUseCase{ledgerRepo: ledgerRepo}
}

// GetQuantity exige al menos un filtro (product_id o skus). Si se dan ambos,
// skus manda. SKUs sin asientos no aparecen; resultado vacío es válido.
func (uc *QuantityUseCase) GetQuantity(ctx context.Context, in dto.GetQuantityRequest) (*dto.GetQuantityResponse, error) {
	if in.ProductID == "" && len(in.SKUs) == 0 {
		return nil, fmt.Errorf("%w: se requiere product_id o skus", domain.ErrInvalidInput)
	}

	var (
		sums []entity.SKUQuantity
		err  error
	)
	if len(in.SKUs) > 0 {
		sums, err = uc.ledgerRepo.SumBySKUs(in.SKUs)
	} else {
		sums, err = uc.ledgerRepo.SumByProduct(in.ProductID)
	}
	if err != nil {
		return nil, err
	}

	results := make([]dto.SKUQuantityResponse, 0, len(sums))
	for _, s := range sums {
		results = append(results, dto.SKUQuantityResponse{
			ProductID: s.ProductID,
			SKU:       s.SKU,
			Quantity:  s.Quantity,
		})
	}
	return &dto.GetQuantityResponse{Results: results}, nil
}
