package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PhysicalLot lote físico rastreado en inventario: se crea en un ingreso y
// se descuenta en los despachos que lo referencian.
type PhysicalLot struct {
	ID            string
	Code          string
	Amount        decimal.Decimal // saldo restante
	Expiration    *time.Time
	PackingTypeID string
	StockRecordID string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
