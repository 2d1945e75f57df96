package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/stock"
)

func TestAverageUnitCost_Basico(t *testing.T) {
	avg := stock.AverageUnitCost(300, 3)
	assert.Equal(t, "100.00", avg.StringFixed(2))
}

func TestAverageUnitCost_ConDecimales(t *testing.T) {
	// 1000 centavos entre 3 unidades: el promedio no es entero.
	avg := stock.AverageUnitCost(1000, 3)
	assert.Equal(t, "333.33", avg.StringFixed(2))
}

func TestAverageUnitCost_SinUnidades(t *testing.T) {
	assert.True(t, stock.AverageUnitCost(500, 0).IsZero(),
		"cero unidades nunca divide por cero")
	assert.True(t, stock.AverageUnitCost(500, -1).IsZero())
}

func TestWeightedAverageCost_Pondera(t *testing.T) {
	// 10 unidades a 100 más 10 unidades a 200 promedian 150.
	avg := stock.WeightedAverageCost(10, decimal.NewFromInt(100), 10, decimal.NewFromInt(200))
	assert.Equal(t, "150.00", avg.StringFixed(2))
}

func TestWeightedAverageCost_SoloEntrada(t *testing.T) {
	avg := stock.WeightedAverageCost(0, decimal.Zero, 5, decimal.NewFromInt(80))
	assert.Equal(t, "80.00", avg.StringFixed(2))
}

func TestWeightedAverageCost_SinUnidades(t *testing.T) {
	assert.True(t, stock.WeightedAverageCost(0, decimal.Zero, 0, decimal.Zero).IsZero())
}
