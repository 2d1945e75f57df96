package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/infrastructure/memory"
)

func TestGetQuantity_PorSKUs(t *testing.T) {
	store := memory.NewStore()
	seedPurchase(t, store, testProductA, "SKU-A", 5, 100)
	seedPurchase(t, store, testProductB, "SKU-B", 2, 250)
	uc := inventory.NewQuantityUseCase(memory.NewLedgerRepository(store))

	out, err := uc.GetQuantity(context.Background(), dto.GetQuantityRequest{
		SKUs: []string{"SKU-A", "SKU-B", "SKU-FANTASMA"},
	})
	require.NoError(t, err)

	bySKU := map[string]int{}
	for _, r := range out.Results {
		bySKU[r.SKU] = r.Quantity
	}
	assert.Equal(t, 5, bySKU["SKU-A"])
	assert.Equal(t, 2, bySKU["SKU-B"])
	_, present := bySKU["SKU-FANTASMA"]
	assert.False(t, present, "un SKU sin asientos no aparece en el resultado")
}

func TestGetQuantity_PorProducto(t *testing.T) {
	store := memory.NewStore()
	seedPurchase(t, store, testProductA, "SKU-A", 3, 100)
	seedPurchase(t, store, testProductB, "SKU-B", 9, 100)
	uc := inventory.NewQuantityUseCase(memory.NewLedgerRepository(store))

	out, err := uc.GetQuantity(context.Background(), dto.GetQuantityRequest{ProductID: testProductA})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "SKU-A", out.Results[0].SKU)
	assert.Equal(t, 3, out.Results[0].Quantity)
}

func TestGetQuantity_SKUsTienePrioridad(t *testing.T) {
	store := memory.NewStore()
	seedPurchase(t, store, testProductA, "SKU-A", 3, 100)
	seedPurchase(t, store, testProductB, "SKU-B", 9, 100)
	uc := inventory.NewQuantityUseCase(memory.NewLedgerRepository(store))

	out, err := uc.GetQuantity(context.Background(), dto.GetQuantityRequest{
		ProductID: testProductA,
		SKUs:      []string{"SKU-B"},
	})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "SKU-B", out.Results[0].SKU)
}

func TestGetQuantity_SinFiltros(t *testing.T) {
	uc := inventory.NewQuantityUseCase(memory.NewLedgerRepository(memory.NewStore()))

	_, err := uc.GetQuantity(context.Background(), dto.GetQuantityRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetQuantity_NetoTrasVenta(t *testing.T) {
	store := memory.NewStore()
	seedPurchase(t, store, testProductA, "SKU-A", 5, 100)
	seedConfirmedSale(t, store, testProductA, "SKU-A", 2)
	uc := inventory.NewQuantityUseCase(memory.NewLedgerRepository(store))

	out, err := uc.GetQuantity(context.Background(), dto.GetQuantityRequest{SKUs: []string{"SKU-A"}})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, 3, out.Results[0].Quantity, "el neto del libro descuenta la venta")
}
