package sale_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-ledger-api/internal/domain"
)

func TestCancel_RestauraElLibro(t *testing.T) {
	env := newSaleEnv()
	seedPurchase(t, env.store, testProductA, "SKU-A", 5, 100)
	orderID := createDraftSale(t, env, "SKU-A", 3)
	require.Equal(t, 2, netQuantity(t, env.store, "SKU-A"))

	out, err := env.cancel.Cancel(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", out.Status)

	// Los asientos de compensación devuelven el neto a 5 sin borrar nada.
	assert.Equal(t, 5, netQuantity(t, env.store, "SKU-A"))
}

func TestCancel_DobleCancelacionSeRechaza(t *testing.T) {
	env := newSaleEnv()
	seedPurchase(t, env.store, testProductA, "SKU-A", 3, 100)
	orderID := createDraftSale(t, env, "SKU-A", 1)

	_, err := env.cancel.Cancel(context.Background(), orderID)
	require.NoError(t, err)

	_, err = env.cancel.Cancel(context.Background(), orderID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// La segunda cancelación no acumuló compensaciones de más.
	assert.Equal(t, 3, netQuantity(t, env.store, "SKU-A"))
}

func TestCancel_ConfirmadaSeRechaza(t *testing.T) {
	env := newSaleEnv()
	seedPurchase(t, env.store, testProductA, "SKU-A", 3, 100)
	orderID := createDraftSale(t, env, "SKU-A", 2)

	_, err := env.autoFill.AutoFill(context.Background(), orderID)
	require.NoError(t, err)

	_, err = env.cancel.Cancel(context.Background(), orderID)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"una orden confirmada ya asignó unidades, se maneja con devoluciones")
}

func TestCancel_OrdenInexistente(t *testing.T) {
	env := newSaleEnv()

	_, err := env.cancel.Cancel(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
