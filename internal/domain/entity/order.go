package entity

import "time"

// Estados del flujo de una orden. Una orden nace en borrador y al
// ejecutarse pasa a finalizado; la transición es irreversible.
const (
	OrderStatusDraft     = "BORRADOR"
	OrderStatusFinalized = "FINALIZADO"
)

// OrderCodeSentinel código reservado cuando el cliente no envía código ("sin código").
const OrderCodeSentinel = "S/C"

// Order cabecera de una orden de movimiento de almacén (ingreso o salida).
type Order struct {
	ID               string
	Code             string
	RegistrationDate time.Time // solo fecha
	RegistrationTime time.Time // solo hora
	Description      string
	StorehouseID     string
	OrderTypeID      string
	SupplierID       *string
	Status           string
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsFinalized indica si la orden ya fue ejecutada.
func (o *Order) IsFinalized() bool {
	return o.Status == OrderStatusFinalized
}
