package dto

// GetQuantityRequest filtros para la consulta de cantidad neta.
// Se exige al menos uno de ProductID / SKUs (validado en el caso de uso).
type GetQuantityRequest struct {
	ProductID string   `query:"product_id" validate:"omitempty,uuid4"`
	SKUs      []string `query:"skus" validate:"omitempty,dive,max=20"`
}

// SKUQuantityResponse cantidad neta de un SKU según el libro.
type SKUQuantityResponse struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku"`
	Quantity  int    `json:"quantity"`
}

// GetQuantityResponse resultado de la consulta de cantidad.
type GetQuantityResponse struct {
	Results []SKUQuantityResponse `json:"results"`
}

// ValuationRowResponse valorización del stock disponible de un SKU.
// AverageCost es decimal serializado como string (precisión monetaria).
type ValuationRowResponse struct {
	ProductID   string `json:"product_id"`
	SKU         string `json:"sku"`
	Units       int    `json:"units"`
	TotalCost   int64  `json:"total_cost"`
	AverageCost string `json:"average_cost"`
}

// ValuationResponse reporte de valorización del stock disponible.
type ValuationResponse struct {
	Results []ValuationRowResponse `json:"results"`
}

// Tipos de ajuste aceptados por POST /api/inventory/adjustments.
const (
	AdjustmentKindAdjustment = "adjustment"
	AdjustmentKindReturn     = "return"
)

// AdjustmentRequest body para ajustes explícitos de stock.
// adjustment: quantity > 0 unidades disponibles pasan a adjusted con asiento
// negativo. return: quantity > 0 unidades vendidas de SaleOrderID pasan a
// returned con asiento positivo.
type AdjustmentRequest struct {
	Kind        string `json:"kind" validate:"required,oneof=adjustment return"`
	ProductID   string `json:"product_id" validate:"required,uuid4"`
	SKU         string `json:"sku" validate:"required,max=20"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	SaleOrderID int64  `json:"sale_order_id,omitempty" validate:"omitempty,gt=0"`
	Note        string `json:"note,omitempty"`
}

// AdjustmentResponse resultado de un ajuste.
type AdjustmentResponse struct {
	Kind     string `json:"kind"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Applied  int    `json:"applied"`
}
