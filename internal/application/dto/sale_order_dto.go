package dto

import "time"

// CreateSaleItemRequest línea de venta entrante.
type CreateSaleItemRequest struct {
	ProductID        string `json:"product_id" validate:"required,uuid4"`
	SKU              string `json:"sku" validate:"required,max=20"`
	Quantity         int    `json:"quantity" validate:"required,gt=0"`
	Price            int64  `json:"price" validate:"required,gt=0"`
	UniqueIdentifier string `json:"unique_identifier,omitempty" validate:"omitempty,max=20"`
}

// CreateSaleOrderRequest body para POST /api/sale-orders.
type CreateSaleOrderRequest struct {
	Note  string                  `json:"note,omitempty"`
	Items []CreateSaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemResponse línea de venta creada.
type SaleItemResponse struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	SKU              string    `json:"sku"`
	Quantity         int       `json:"quantity"`
	Price            int64     `json:"price"`
	UniqueIdentifier string    `json:"unique_identifier,omitempty"`
	Created          time.Time `json:"created"`
	Modified         time.Time `json:"modified"`
}

// CreateSaleOrderResponse respuesta de creación con totales agregados.
// La orden nace en draft; la asignación de stock ocurre en el auto-fill.
type CreateSaleOrderResponse struct {
	ID         int64              `json:"id"`
	Note       string             `json:"note,omitempty"`
	Status     string             `json:"status"`
	TotalPrice int64              `json:"total_price"`
	TotalUnits int                `json:"total_units"`
	Items      []SaleItemResponse `json:"items"`
	Created    time.Time          `json:"created"`
	Modified   time.Time          `json:"modified"`
}

// SaleOrderResponse respuesta de auto-fill / cancelación.
type SaleOrderResponse struct {
	ID       int64     `json:"id"`
	Status   string    `json:"status"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

// SaleOrderSummaryResponse resumen de una venta en listados.
type SaleOrderSummaryResponse struct {
	ID         int64     `json:"id"`
	Status     string    `json:"status"`
	Note       string    `json:"note,omitempty"`
	TotalPrice int64     `json:"total_price"`
	TotalUnits int       `json:"total_units"`
	Created    time.Time `json:"created"`
	Modified   time.Time `json:"modified"`
}

// ListSaleOrdersResponse página de resúmenes más el total de filas que calzan.
type ListSaleOrdersResponse struct {
	Results []SaleOrderSummaryResponse `json:"results"`
	Total   int                        `json:"total"`
}
