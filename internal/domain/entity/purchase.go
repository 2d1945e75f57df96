package entity

import "time"

// Purchase representa una orden de compra. Inmutable una vez creada:
// el motor nunca la actualiza ni la borra.
type Purchase struct {
	ID          int64
	Note        string
	ExternalRef string // referencia externa opcional (proveedor, OC física)
	Created     time.Time
	Modified    time.Time
}

// PurchaseItem línea de una orden de compra. Se crea una vez y no se muta.
// Price está en unidades menores de moneda (centavos).
type PurchaseItem struct {
	ID               string
	PurchaseID       int64
	ProductID        string
	SKU              string
	UniqueIdentifier string // etiqueta tipo número de serie, opcional ("" = sin etiqueta)
	Quantity         int
	Price            int64
	Created          time.Time
	Modified         time.Time
}
