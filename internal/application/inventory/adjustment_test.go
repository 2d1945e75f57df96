package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/infrastructure/memory"
)

func newAdjustUC(store *memory.Store) *inventory.AdjustmentUseCase {
	return inventory.NewAdjustmentUseCase(memory.NewTxRunner(store))
}

func TestAdjust_RetiraUnidadesDisponibles(t *testing.T) {
	store := memory.NewStore()
	seedPurchase(t, store, testProductA, "SKU-A", 5, 100)

	out, err := newAdjustUC(store).Adjust(context.Background(), dto.AdjustmentRequest{
		Kind:      dto.AdjustmentKindAdjustment,
		ProductID: testProductA,
		SKU:       "SKU-A",
		Quantity:  2,
		Note:      "rotura en bodega",
	})
	require.NoError(t, err)
	assert.Equal(t, -2, out.Quantity)
	assert.Equal(t, 2, out.Applied)

	entities := memory.NewStockEntityRepository(store)
	available, err := entities.CountBySKU("SKU-A", entity.StockStatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, 3, available)
	adjusted, err := entities.CountBySKU("SKU-A", entity.StockStatusAdjusted)
	require.NoError(t, err)
	assert.Equal(t, 2, adjusted)

	// El asiento negativo deja el neto del libro en 3.
	sums, err := memory.NewLedgerRepository(store).SumBySKUs([]string{"SKU-A"})
	require.NoError(t, err)
	require.Len(t, sums, 1)
	assert.Equal(t, 3, sums[0].Quantity)
}

func TestAdjust_SinUnidadesSuficientes(t *testing.T) {
	store := memory.NewStore()
	seedPurchase(t, store, testProductA, "SKU-A", 1, 100)

	_, err := newAdjustUC(store).Adjust(context.Background(), dto.AdjustmentRequest{
		Kind:      dto.AdjustmentKindAdjustment,
		ProductID: testProductA,
		SKU:       "SKU-A",
		Quantity:  2,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Sin ajustes parciales: la unidad sigue disponible.
	available, err := memory.NewStockEntityRepository(store).CountBySKU("SKU-A", entity.StockStatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, 1, available)
}

func TestAdjust_DevolucionDeVenta(t *testing.T) {
	store := memory.NewStore()
	seedPurchase(t, store, testProductA, "SKU-A", 5, 100)
	orderID := seedConfirmedSale(t, store, testProductA, "SKU-A", 3)

	out, err := newAdjustUC(store).Adjust(context.Background(), dto.AdjustmentRequest{
		Kind:        dto.AdjustmentKindReturn,
		ProductID:   testProductA,
		SKU:         "SKU-A",
		Quantity:    1,
		SaleOrderID: orderID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Quantity)
	assert.Equal(t, 1, out.Applied)

	entities := memory.NewStockEntityRepository(store)
	sold, err := entities.CountBySKU("SKU-A", entity.StockStatusSold)
	require.NoError(t, err)
	assert.Equal(t, 2, sold)
	returned, err := entities.CountBySKU("SKU-A", entity.StockStatusReturned)
	require.NoError(t, err)
	assert.Equal(t, 1, returned)

	// La unidad devuelta no re-entra al pool vendible.
	available, err := entities.CountBySKU("SKU-A", entity.StockStatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, 2, available)
}

func TestAdjust_DevolucionExcedeLoVendido(t *testing.T) {
	store := memory.NewStore()
	seedPurchase(t, store, testProductA, "SKU-A", 5, 100)
	orderID := seedConfirmedSale(t, store, testProductA, "SKU-A", 2)

	_, err := newAdjustUC(store).Adjust(context.Background(), dto.AdjustmentRequest{
		Kind:        dto.AdjustmentKindReturn,
		ProductID:   testProductA,
		SKU:         "SKU-A",
		Quantity:    3,
		SaleOrderID: orderID,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAdjust_DevolucionSinOrden(t *testing.T) {
	store := memory.NewStore()

	_, err := newAdjustUC(store).Adjust(context.Background(), dto.AdjustmentRequest{
		Kind:      dto.AdjustmentKindReturn,
		ProductID: testProductA,
		SKU:       "SKU-A",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_TipoDesconocido(t *testing.T) {
	store := memory.NewStore()
	seedPurchase(t, store, testProductA, "SKU-A", 1, 100)

	_, err := newAdjustUC(store).Adjust(context.Background(), dto.AdjustmentRequest{
		Kind:      "merma",
		ProductID: testProductA,
		SKU:       "SKU-A",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_CantidadInvalida(t *testing.T) {
	store := memory.NewStore()

	_, err := newAdjustUC(store).Adjust(context.Background(), dto.AdjustmentRequest{
		Kind:      dto.AdjustmentKindAdjustment,
		ProductID: testProductA,
		SKU:       "SKU-A",
		Quantity:  0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
