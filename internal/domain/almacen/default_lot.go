package almacen

import (
	"time"

	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LotEntry una entrada del desglose declarado por empaques de una línea.
// Se resuelve por PackingTypeID cuando viene del cliente, o por PackingCode
// cuando la sintetiza la política por defecto.
type LotEntry struct {
	PackingTypeID string
	PackingCode   string
	Code          string
	Amount        decimal.Decimal
	Expiration    *time.Time
	PhysicalLotID *string
}

// DefaultLotBreakdown política de lote por defecto: cuando la línea no
// declara desglose se sintetiza exactamente un lote bajo el empaque "n/a"
// por la cantidad total, sin expiración y con código generado.
func DefaultLotBreakdown(total decimal.Decimal, now time.Time) []LotEntry {
	return []LotEntry{{
		PackingCode: entity.PackingCodeNA,
		Code:        GenerateLotCode(now),
		Amount:      total,
	}}
}
