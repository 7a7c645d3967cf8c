package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

// lotsOnReceipt materializa el desglose de una línea en lotes físicos: por
// cada plan crea un PhysicalLot contra el stock de la línea y retro-enlaza
// el plan con el lote creado.
func lotsOnReceipt(
	lotPlanRepo repository.LotPlanRepository,
	lotRepo repository.PhysicalLotRepository,
	line *entity.OrderLine,
	now time.Time,
) error {
	plans, err := lotPlanRepo.ListByLine(line.ID)
	if err != nil {
		return err
	}
	for _, plan := range plans {
		lot := &entity.PhysicalLot{
			ID:            uuid.New().String(),
			Code:          plan.Code,
			Amount:        plan.Amount,
			Expiration:    plan.Expiration,
			PackingTypeID: plan.PackingTypeID,
			StockRecordID: line.StockRecordID,
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := lotRepo.Create(lot); err != nil {
			return err
		}
		plan.PhysicalLotID = &lot.ID
		plan.UpdatedAt = now
		if err := lotPlanRepo.Update(plan); err != nil {
			return err
		}
	}
	return nil
}

// lotsOnDispatch descuenta de los lotes físicos referenciados por los planes
// de una línea. Cada plan de despacho debe apuntar al lote creado por un
// ingreso previo; de lo contrario la cadena está rota y se devuelve NotFound.
func lotsOnDispatch(
	lotPlanRepo repository.LotPlanRepository,
	lotRepo repository.PhysicalLotRepository,
	line *entity.OrderLine,
	productName string,
	now time.Time,
) error {
	plans, err := lotPlanRepo.ListByLine(line.ID)
	if err != nil {
		return err
	}
	for _, plan := range plans {
		if plan.PhysicalLotID == nil {
			return domain.NewNotFound("PhysicalLot", plan.Code)
		}
		lot, err := lotRepo.GetForUpdate(*plan.PhysicalLotID)
		if err != nil {
			return err
		}
		if lot == nil || !lot.Active {
			return domain.NewNotFound("PhysicalLot", *plan.PhysicalLotID)
		}
		newAmount := lot.Amount.Sub(plan.Amount)
		if newAmount.IsNegative() {
			return &domain.InsufficientLotStockError{
				Product:   productName,
				LotCode:   plan.Code,
				Available: lot.Amount,
				Requested: plan.Amount,
			}
		}
		lot.Amount = newAmount
		lot.UpdatedAt = now
		if err := lotRepo.Update(lot); err != nil {
			return err
		}
	}
	return nil
}
