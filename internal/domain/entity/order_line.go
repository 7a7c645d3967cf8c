package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine detalle de una orden: una cantidad de un producto contra el
// registro de stock del par (almacén, producto).
type OrderLine struct {
	ID            string
	OrderID       string
	StockRecordID string
	Amount        decimal.Decimal
	ProductCode   string     // snapshot del código de producto que ingresa o sale
	Expiration    *time.Time // snapshot de la fecha de expiración
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
