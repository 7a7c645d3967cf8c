package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/almacen"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

// lotReconciler construye y persiste el desglose por empaques de una línea.
// Devuelve la suma de cantidades para que el caller verifique el invariante
// suma(planes) == cantidad de la línea. No toca la línea en sí.
type lotReconciler struct {
	packingRepo repository.PackingTypeRepository
	lotPlanRepo repository.LotPlanRepository
}

// reconcile resuelve cada entrada contra su tipo de empaque, valida la
// capacidad y persiste los planes enlazados a la línea.
func (r lotReconciler) reconcile(line *entity.OrderLine, entries []almacen.LotEntry, now time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range entries {
		packing, err := r.resolvePacking(e)
		if err != nil {
			return decimal.Zero, err
		}
		if packing.Capacity.IsPositive() && e.Amount.GreaterThan(packing.Capacity) {
			return decimal.Zero, domain.NewValidation(
				"El empaque (%s) tiene una capacidad de (%s) y no puede contener la cantidad de (%s) solicitada",
				packing.Name, packing.Capacity.String(), e.Amount.String(),
			)
		}
		plan := &entity.LotPlan{
			ID:            uuid.New().String(),
			OrderLineID:   line.ID,
			PackingTypeID: packing.ID,
			PhysicalLotID: e.PhysicalLotID,
			Code:          e.Code,
			Amount:        e.Amount,
			Expiration:    e.Expiration,
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := r.lotPlanRepo.Create(plan); err != nil {
			return decimal.Zero, err
		}
		total = total.Add(e.Amount)
	}
	return total, nil
}

func (r lotReconciler) resolvePacking(e almacen.LotEntry) (*entity.PackingType, error) {
	if e.PackingTypeID != "" {
		packing, err := r.packingRepo.GetByID(e.PackingTypeID)
		if err != nil {
			return nil, err
		}
		if packing == nil || !packing.Active {
			return nil, domain.NewNotFound("PackingType", e.PackingTypeID)
		}
		return packing, nil
	}
	// Entrada sintetizada por la política por defecto: empaque reservado "n/a".
	packing, err := r.packingRepo.GetByCode(e.PackingCode)
	if err != nil {
		return nil, err
	}
	if packing == nil || !packing.Active {
		return nil, domain.NewNotFound("PackingType", e.PackingCode)
	}
	return packing, nil
}
