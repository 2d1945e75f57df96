package purchase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/application/purchase"
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/infrastructure/memory"
)

const (
	testProductA = "11111111-1111-4111-8111-111111111111"
	testProductB = "22222222-2222-4222-8222-222222222222"
)

func newPurchaseEnv(chunkSize int) (*memory.Store, *purchase.CreateUseCase, *purchase.ListUseCase) {
	store := memory.NewStore()
	createUC := purchase.NewCreateUseCase(memory.NewTxRunner(store), chunkSize)
	listUC := purchase.NewListUseCase(memory.NewPurchaseRepository(store), memory.NewOrderAggregateRepository(store))
	return store, createUC, listUC
}

func TestCreatePurchase_FlujoCompleto(t *testing.T) {
	store, createUC, _ := newPurchaseEnv(5000)

	out, err := createUC.Create(context.Background(), dto.CreatePurchaseRequest{
		Note: "reposición semanal",
		Items: []dto.CreatePurchaseItemRequest{
			{ProductID: testProductA, SKU: "SKU-A", Quantity: 3, Price: 100},
			{ProductID: testProductB, SKU: "SKU-B", Quantity: 2, Price: 250},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, int64(800), out.TotalPrice, "3*100 + 2*250")
	assert.Equal(t, 5, out.TotalUnits)
	assert.Len(t, out.Items, 2)

	// El libro refleja las entradas por SKU.
	ledger := memory.NewLedgerRepository(store)
	sums, err := ledger.SumBySKUs([]string{"SKU-A", "SKU-B"})
	require.NoError(t, err)
	bySKU := map[string]int{}
	for _, s := range sums {
		bySKU[s.SKU] = s.Quantity
	}
	assert.Equal(t, 3, bySKU["SKU-A"])
	assert.Equal(t, 2, bySKU["SKU-B"])

	// Una unidad available por cada unidad comprada.
	entities := memory.NewStockEntityRepository(store)
	n, err := entities.CountBySKU("SKU-A", entity.StockStatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = entities.CountBySKU("SKU-B", entity.StockStatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

// Con chunkSize menor que la cantidad, la materialización se trocea pero el
// resultado final es idéntico: tantas unidades como se compraron.
func TestCreatePurchase_CantidadMayorQueChunk(t *testing.T) {
	store, createUC, _ := newPurchaseEnv(2)

	out, err := createUC.Create(context.Background(), dto.CreatePurchaseRequest{
		Items: []dto.CreatePurchaseItemRequest{
			{ProductID: testProductA, SKU: "SKU-A", Quantity: 7, Price: 50},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, out.TotalUnits)

	entities := memory.NewStockEntityRepository(store)
	n, err := entities.CountBySKU("SKU-A", entity.StockStatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestCreatePurchase_SinLineas(t *testing.T) {
	_, createUC, _ := newPurchaseEnv(5000)

	_, err := createUC.Create(context.Background(), dto.CreatePurchaseRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreatePurchase_CantidadInvalida(t *testing.T) {
	_, createUC, _ := newPurchaseEnv(5000)

	_, err := createUC.Create(context.Background(), dto.CreatePurchaseRequest{
		Items: []dto.CreatePurchaseItemRequest{
			{ProductID: testProductA, SKU: "SKU-A", Quantity: 0, Price: 100},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = createUC.Create(context.Background(), dto.CreatePurchaseRequest{
		Items: []dto.CreatePurchaseItemRequest{
			{ProductID: testProductA, SKU: "SKU-A", Quantity: 1, Price: 0},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
