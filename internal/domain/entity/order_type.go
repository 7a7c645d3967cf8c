package entity

import "time"

// Acciones de un tipo de orden: determina el signo de la mutación de stock.
const (
	ActionReceipt  = "RECEIPT"  // ingreso a almacén
	ActionDispatch = "DISPATCH" // salida de almacén
)

// OrderType tipo de orden (ej. orden de compra, orden de despacho).
type OrderType struct {
	ID        string
	Code      string
	Name      string
	Action    string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
