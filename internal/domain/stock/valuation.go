package stock

import "github.com/shopspring/decimal"

// AverageUnitCost costo promedio del stock disponible de un SKU:
// CostoPromedio = CostoTotal / Unidades (servicio de dominio).
// Cero unidades => cero, nunca divide por cero.
func AverageUnitCost(totalCost int64, units int) decimal.Decimal {
	if units <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(totalCost).Div(decimal.NewFromInt(int64(units)))
}

// WeightedAverageCost costo promedio ponderado al ingresar unidades nuevas:
// NuevoCosto = ((UnidadesActuales * CostoActual) + (UnidadesEntrada * CostoEntrada)) / (UnidadesActuales + UnidadesEntrada)
func WeightedAverageCost(currentUnits int, currentCost decimal.Decimal, incomingUnits int, incomingCost decimal.Decimal) decimal.Decimal {
	sum := currentUnits + incomingUnits
	if sum <= 0 {
		return decimal.Zero
	}
	cur := decimal.NewFromInt(int64(currentUnits))
	inc := decimal.NewFromInt(int64(incomingUnits))
	num := cur.Mul(currentCost).Add(inc.Mul(incomingCost))
	return num.Div(decimal.NewFromInt(int64(sum)))
}
