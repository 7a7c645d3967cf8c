package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PackingCodeNA código del empaque reservado "sin asignar": se usa cuando la
// línea no declara desglose por empaques.
const PackingCodeNA = "n/a"

// PackingType tipo de empaque. Capacity limita la cantidad por lote;
// cero significa sin límite.
type PackingType struct {
	ID        string
	Code      string
	Name      string
	Capacity  decimal.Decimal
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
