package sale_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/application/purchase"
	"github.com/jhoicas/Stock-ledger-api/internal/application/sale"
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/infrastructure/memory"
)

const (
	testProductA = "11111111-1111-4111-8111-111111111111"
	testProductB = "22222222-2222-4222-8222-222222222222"
)

type saleEnv struct {
	store    *memory.Store
	create   *sale.CreateUseCase
	autoFill *sale.AutoFillUseCase
	cancel   *sale.CancelUseCase
	list     *sale.ListUseCase
}

func newSaleEnv() *saleEnv {
	store := memory.NewStore()
	runner := memory.NewTxRunner(store)
	return &saleEnv{
		store:    store,
		create:   sale.NewCreateUseCase(runner, memory.NewLedgerRepository(store)),
		autoFill: sale.NewAutoFillUseCase(runner, 5000),
		cancel:   sale.NewCancelUseCase(runner),
		list:     sale.NewListUseCase(memory.NewSaleOrderRepository(store), memory.NewOrderAggregateRepository(store)),
	}
}

// seedPurchase compra unidades de un SKU para dejar stock disponible.
func seedPurchase(t *testing.T, store *memory.Store, productID, sku string, quantity int, price int64) {
	t.Helper()
	uc := purchase.NewCreateUseCase(memory.NewTxRunner(store), 5000)
	_, err := uc.Create(context.Background(), dto.CreatePurchaseRequest{
		Items: []dto.CreatePurchaseItemRequest{
			{ProductID: productID, SKU: sku, Quantity: quantity, Price: price},
		},
	})
	require.NoError(t, err)
}

func netQuantity(t *testing.T, store *memory.Store, sku string) int {
	t.Helper()
	sums, err := memory.NewLedgerRepository(store).SumBySKUs([]string{sku})
	require.NoError(t, err)
	total := 0
	for _, s := range sums {
		total += s.Quantity
	}
	return total
}

func TestCreateSaleOrder_NaceEnDraft(t *testing.T) {
	env := newSaleEnv()
	seedPurchase(t, env.store, testProductA, "SKU-A", 5, 100)

	out, err := env.create.Create(context.Background(), dto.CreateSaleOrderRequest{
		Note: "venta mostrador",
		Items: []dto.CreateSaleItemRequest{
			{ProductID: testProductA, SKU: "SKU-A", Quantity: 3, Price: 150},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "draft", out.Status)
	assert.Equal(t, int64(450), out.TotalPrice)
	assert.Equal(t, 3, out.TotalUnits)

	// La creación ya asienta la salida: el neto del libro baja de 5 a 2.
	assert.Equal(t, 2, netQuantity(t, env.store, "SKU-A"))
}

func TestCreateSaleOrder_StockInsuficiente(t *testing.T) {
	env := newSaleEnv()
	seedPurchase(t, env.store, testProductA, "SKU-A", 2, 100)

	_, err := env.create.Create(context.Background(), dto.CreateSaleOrderRequest{
		Items: []dto.CreateSaleItemRequest{
			{ProductID: testProductA, SKU: "SKU-A", Quantity: 3, Price: 150},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada se persistió: la orden no existe y el libro sigue en 2.
	assert.Equal(t, 2, netQuantity(t, env.store, "SKU-A"))
	order, err := memory.NewSaleOrderRepository(env.store).GetByID(1)
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestCreateSaleOrder_SKUDesconocido(t *testing.T) {
	env := newSaleEnv()

	_, err := env.create.Create(context.Background(), dto.CreateSaleOrderRequest{
		Items: []dto.CreateSaleItemRequest{
			{ProductID: testProductA, SKU: "SKU-FANTASMA", Quantity: 1, Price: 10},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"un SKU sin asientos en el libro tiene disponibilidad cero")
}

func TestCreateSaleOrder_LineasRepetidasDelMismoSKU(t *testing.T) {
	env := newSaleEnv()
	seedPurchase(t, env.store, testProductA, "SKU-A", 3, 100)

	// Dos líneas del mismo SKU suman 4 contra 3 disponibles.
	_, err := env.create.Create(context.Background(), dto.CreateSaleOrderRequest{
		Items: []dto.CreateSaleItemRequest{
			{ProductID: testProductA, SKU: "SKU-A", Quantity: 2, Price: 150},
			{ProductID: testProductA, SKU: "SKU-A", Quantity: 2, Price: 150},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCreateSaleOrder_SinLineas(t *testing.T) {
	env := newSaleEnv()

	_, err := env.create.Create(context.Background(), dto.CreateSaleOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
