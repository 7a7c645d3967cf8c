package entity

import "time"

// Supplier proveedor asociado opcionalmente a las órdenes de ingreso.
type Supplier struct {
	ID        string
	Code      string
	Name      string
	Contact   string
	Phone     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
