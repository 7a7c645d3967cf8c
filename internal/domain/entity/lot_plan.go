package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LotPlan desglose declarado por empaques de una línea de orden, previo a la
// ejecución. PhysicalLotID queda nulo hasta que un ingreso crea el lote, o
// apunta a un lote existente cuando la línea es de salida.
type LotPlan struct {
	ID            string
	OrderLineID   string
	PackingTypeID string
	PhysicalLotID *string
	Code          string
	Amount        decimal.Decimal
	Expiration    *time.Time
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
