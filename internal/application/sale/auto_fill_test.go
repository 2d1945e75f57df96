package sale_test

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

func createDraftSale(t *testing.T, env *saleEnv, sku string, quantity int) int64 {
	t.Helper()
	out, err := env.create.Create(context.Background(), dto.CreateSaleOrderRequest{
		Items: []dto.CreateSaleItemRequest{
			{ProductID: testProductA, SKU: sku, Quantity: quantity, Price: 150},
		},
	})
	require.NoError(t, err)
	return out.ID
}

func TestAutoFill_ConfirmaYAsigna(t *testing.T) {
	env := newSaleEnv()
	seedPurchase(t, env.store, testProductA, "SKU-A", 5, 100)
	orderID := createDraftSale(t, env, "SKU-A", 3)

	out, err := env.autoFill.AutoFill(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", out.Status)

	entities := memory.NewStockEntityRepository(env.store)
	sold, err := entities.CountBySKU("SKU-A", entity.StockStatusSold)
	require.NoError(t, err)
	assert.Equal(t, 3, sold)
	available, err := entities.CountBySKU("SKU-A", entity.StockStatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, 2, available)

	// Una asignación por unidad vendida.
	allocs := memory.NewSaleAllocationRepository(env.store)
	n, err := allocs.CountBySaleOrder(orderID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

// Las unidades se consumen en orden FIFO: la compra vieja (a 100) se agota
// antes que la nueva (a 200), y la valorización del remanente lo demuestra.
func TestAutoFill_ConsumeFIFO(t *testing.T) {
	env := newSaleEnv()
	seedPurchase(t, env.store, testProductA, "SKU-A", 2, 100)
	seedPurchase(t, env.store, testProductA, "SKU-A", 2, 200)
	orderID := createDraftSale(t, env, "SKU-A", 2)

	_, err := env.autoFill.AutoFill(context.Background(), orderID)
	require.NoError(t, err)

	rows, err := memory.NewStockEntityRepository(env.store).AvailableValuation()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Units)
	assert.Equal(t, int64(400), rows[0].TotalCost,
		"quedan las dos unidades de la compra nueva a 200")
}

func TestAutoFill_ReconfirmarSeRechaza(t *testing.T) {
	env := newSaleEnv()
	seedPurchase(t, env.store, testProductA, "SKU-A", 3, 100)
	orderID := createDraftSale(t, env, "SKU-A", 2)

	_, err := env.autoFill.AutoFill(context.Background(), orderID)
	require.NoError(t, err)

	_, err = env.autoFill.AutoFill(context.Background(), orderID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// La doble confirmación no duplica asignaciones ni ventas.
	sold, err := memory.NewStockEntityRepository(env.store).CountBySKU("SKU-A", entity.StockStatusSold)
	require.NoError(t, err)
	assert.Equal(t, 2, sold)
}

func TestAutoFill_OrdenInexistente(t *testing.T) {
	env := newSaleEnv()

	_, err := env.autoFill.AutoFill(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si al confirmar ya no quedan unidades suficientes, toda la transacción se
// revierte: la orden sigue en draft y ninguna unidad queda vendida.
func TestAutoFill_SinUnidadesRevierteTodo(t *testing.T) {
	env := newSaleEnv()
	seedPurchase(t, env.store, testProductA, "SKU-A", 2, 100)
	orderID := createDraftSale(t, env, "SKU-A", 2)

	// Entre la creación y la confirmación un ajuste retira una unidad.
	adjustUC := inventory.NewAdjustmentUseCase(memory.NewTxRunner(env.store))
	_, err := adjustUC.Adjust(context.Background(), dto.AdjustmentRequest{
		Kind:      dto.AdjustmentKindAdjustment,
		ProductID: testProductA,
		SKU:       "SKU-A",
		Quantity:  1,
	})
	require.NoError(t, err)

	_, err = env.autoFill.AutoFill(context.Background(), orderID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	order, err := memory.NewSaleOrderRepository(env.store).GetByID(orderID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, entity.SaleOrderStatusDraft, order.Status, "la orden queda reintentable")

	sold, err := memory.NewStockEntityRepository(env.store).CountBySKU("SKU-A", entity.StockStatusSold)
	require.NoError(t, err)
	assert.Equal(t, 0, sold, "el rollback deshace cualquier marca parcial")
}
