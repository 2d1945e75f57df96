package dto

import "time"

// CreatePurchaseItemRequest línea de compra entrante.
type CreatePurchaseItemRequest struct {
	ProductID        string `json:"product_id" validate:"required,uuid4"`
	SKU              string `json:"sku" validate:"required,max=20"`
	Quantity         int    `json:"quantity" validate:"required,gt=0"`
	Price            int64  `json:"price" validate:"required,gt=0"`
	UniqueIdentifier string `json:"unique_identifier,omitempty" validate:"omitempty,max=20"`
}

// CreatePurchaseRequest body para POST /api/purchases.
type CreatePurchaseRequest struct {
	Note        string                      `json:"note,omitempty"`
	ExternalRef string                      `json:"external_ref,omitempty"`
	Items       []CreatePurchaseItemRequest `json:"items" validate:"required,min=1,dive"`
}

// PurchaseItemResponse línea de compra creada.
type PurchaseItemResponse struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	SKU              string    `json:"sku"`
	Quantity         int       `json:"quantity"`
	Price            int64     `json:"price"`
	UniqueIdentifier string    `json:"unique_identifier,omitempty"`
	Created          time.Time `json:"created"`
	Modified         time.Time `json:"modified"`
}

// CreatePurchaseResponse respuesta de creación de compra con totales agregados.
type CreatePurchaseResponse struct {
	ID         int64                  `json:"id"`
	Note       string                 `json:"note,omitempty"`
	TotalPrice int64                  `json:"total_price"`
	TotalUnits int                    `json:"total_units"`
	Items      []PurchaseItemResponse `json:"items"`
	Created    time.Time              `json:"created"`
	Modified   time.Time              `json:"modified"`
}

// PurchaseSummaryResponse resumen de una compra en listados.
type PurchaseSummaryResponse struct {
	ID         int64     `json:"id"`
	Note       string    `json:"note,omitempty"`
	TotalPrice int64     `json:"total_price"`
	TotalUnits int       `json:"total_units"`
	Created    time.Time `json:"created"`
	Modified   time.Time `json:"modified"`
}

// ListPurchasesResponse página de resúmenes más el total de filas que calzan.
type ListPurchasesResponse struct {
	Results []PurchaseSummaryResponse `json:"results"`
	Total   int                       `json:"total"`
}

// LatestPurchaseIDResponse id de la compra más reciente (0 si no hay).
type LatestPurchaseIDResponse struct {
	PurchaseID int64 `json:"purchase_id"`
}
