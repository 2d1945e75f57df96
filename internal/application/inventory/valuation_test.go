package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/Stock-ledger-api/internal/infrastructure/memory"
)

func TestValuation_PromedioPorSKU(t *testing.T) {
	store := memory.NewStore()
	seedPurchase(t, store, testProductA, "SKU-A", 2, 150)
	seedPurchase(t, store, testProductA, "SKU-A", 1, 300)
	uc := inventory.NewValuationUseCase(memory.NewStockEntityRepository(store))

	out, err := uc.Valuation(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Results, 1)

	row := out.Results[0]
	assert.Equal(t, "SKU-A", row.SKU)
	assert.Equal(t, 3, row.Units)
	assert.Equal(t, int64(600), row.TotalCost, "2*150 + 1*300")
	assert.Equal(t, "200.00", row.AverageCost)
}

func TestValuation_SoloUnidadesDisponibles(t *testing.T) {
	store := memory.NewStore()
	seedPurchase(t, store, testProductA, "SKU-A", 5, 100)
	seedConfirmedSale(t, store, testProductA, "SKU-A", 3)
	uc := inventory.NewValuationUseCase(memory.NewStockEntityRepository(store))

	out, err := uc.Valuation(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, 2, out.Results[0].Units, "las unidades vendidas no valorizan")
	assert.Equal(t, int64(200), out.Results[0].TotalCost)
}

func TestValuation_AlmacenVacio(t *testing.T) {
	uc := inventory.NewValuationUseCase(memory.NewStockEntityRepository(memory.NewStore()))

	out, err := uc.Valuation(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.Results)
}
