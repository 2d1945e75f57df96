package sale_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
)

func TestListSaleOrders_PaginacionDescendente(t *testing.T) {
	env := newSaleEnv()
	seedPurchase(t, env.store, testProductA, "SKU-A", 10, 100)
	createDraftSale(t, env, "SKU-A", 1)
	createDraftSale(t, env, "SKU-A", 2)

	out, err := env.list.List(context.Background(), nil, "", dto.PageRequest{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	require.Len(t, out.Results, 1)
	assert.Equal(t, int64(2), out.Results[0].ID)
	assert.Equal(t, "draft", out.Results[0].Status)
	assert.Equal(t, 2, out.Results[0].TotalUnits)
}

func TestListSaleOrders_FiltroPorEstado(t *testing.T) {
	env := newSaleEnv()
	seedPurchase(t, env.store, testProductA, "SKU-A", 10, 100)
	first := createDraftSale(t, env, "SKU-A", 1)
	createDraftSale(t, env, "SKU-A", 1)

	_, err := env.autoFill.AutoFill(context.Background(), first)
	require.NoError(t, err)

	out, err := env.list.List(context.Background(), nil, "confirmed", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	require.Len(t, out.Results, 1)
	assert.Equal(t, first, out.Results[0].ID)

	out, err = env.list.List(context.Background(), nil, "draft", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
}

func TestListSaleOrders_FiltrosCombinadosSeIntersectan(t *testing.T) {
	env := newSaleEnv()
	seedPurchase(t, env.store, testProductA, "SKU-A", 10, 100)
	confirmed := createDraftSale(t, env, "SKU-A", 1)
	draft := createDraftSale(t, env, "SKU-A", 1)

	_, err := env.autoFill.AutoFill(context.Background(), confirmed)
	require.NoError(t, err)

	// El id explícito no tiene el estado pedido: intersección vacía.
	out, err := env.list.List(context.Background(), []int64{confirmed}, "draft", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
	assert.Empty(t, out.Results)

	// Ambos filtros se cumplen: solo la orden en borrador del id pedido.
	out, err = env.list.List(context.Background(), []int64{confirmed, draft}, "draft", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	require.Len(t, out.Results, 1)
	assert.Equal(t, draft, out.Results[0].ID)
}

func TestListSaleOrders_FiltroSinCoincidencias(t *testing.T) {
	env := newSaleEnv()
	seedPurchase(t, env.store, testProductA, "SKU-A", 5, 100)
	createDraftSale(t, env, "SKU-A", 1)

	out, err := env.list.List(context.Background(), nil, "cancelled", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
	assert.Empty(t, out.Results)
}

func TestListSaleOrders_EstadoDesconocido(t *testing.T) {
	env := newSaleEnv()

	_, err := env.list.List(context.Background(), nil, "pendiente", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
