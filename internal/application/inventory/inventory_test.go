package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/application/purchase"
	"github.com/jhoicas/Stock-ledger-api/internal/application/sale"
	"github.com/jhoicas/Stock-ledger-api/internal/infrastructure/memory"
)

const (
	testProductA = "11111111-1111-4111-8111-111111111111"
	testProductB = "22222222-2222-4222-8222-222222222222"
)

// seedPurchase compra unidades para dejar stock disponible.
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

// seedConfirmedSale crea y confirma una venta, dejando unidades en sold.
func seedConfirmedSale(t *testing.T, store *memory.Store, productID, sku string, quantity int) int64 {
	t.Helper()
	runner := memory.NewTxRunner(store)
	createUC := sale.NewCreateUseCase(runner, memory.NewLedgerRepository(store))
	out, err := createUC.Create(context.Background(), dto.CreateSaleOrderRequest{
		Items: []dto.CreateSaleItemRequest{
			{ProductID: productID, SKU: sku, Quantity: quantity, Price: 150},
		},
	})
	require.NoError(t, err)

	_, err = sale.NewAutoFillUseCase(runner, 5000).AutoFill(context.Background(), out.ID)
	require.NoError(t, err)
	return out.ID
}
