package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRecord cantidad agregada en existencia para un par (almacén, producto).
// StorehouseName y ProductName vienen desnormalizados del JOIN para armar
// mensajes de error sin consultas adicionales.
type StockRecord struct {
	ID             string
	StorehouseID   string
	ProductID      string
	AmountInStock  decimal.Decimal
	StorehouseName string
	ProductName    string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
