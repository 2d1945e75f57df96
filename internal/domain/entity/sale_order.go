package entity

import "time"

// SaleOrderStatus estados de una orden de venta.
type SaleOrderStatus string

const (
	SaleOrderStatusDraft     SaleOrderStatus = "draft"
	SaleOrderStatusConfirmed SaleOrderStatus = "confirmed"
	SaleOrderStatusCancelled SaleOrderStatus = "cancelled"
)

// Valid indica si el valor es uno de los estados conocidos.
func (s SaleOrderStatus) Valid() bool {
	switch s {
	case SaleOrderStatusDraft, SaleOrderStatusConfirmed, SaleOrderStatusCancelled:
		return true
	}
	return false
}

// SaleOrder orden de venta. Nace en draft; confirmed es terminal respecto a
// la asignación de stock (re-confirmar se rechaza).
type SaleOrder struct {
	ID       int64
	Note     string
	Status   SaleOrderStatus
	Created  time.Time
	Modified time.Time
}

// SaleOrderItem línea de una orden de venta. Inmutable una vez creada.
type SaleOrderItem struct {
	ID               string
	SaleOrderID      int64
	ProductID        string
	SKU              string
	UniqueIdentifier string
	Quantity         int
	Price            int64
	Created          time.Time
	Modified         time.Time
}
