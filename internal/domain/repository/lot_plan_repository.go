package repository

import "github.com/gestion-almacenes/almacenes-api/internal/domain/entity"

// LotPlanRepository puerto de persistencia para el desglose por empaques (DIP).
type LotPlanRepository interface {
	Create(plan *entity.LotPlan) error
	// Update se usa para retro-enlazar el plan con el lote físico creado en el ingreso.
	Update(plan *entity.LotPlan) error
	ListByLine(orderLineID string) ([]*entity.LotPlan, error)
	DeleteByLine(orderLineID string) error
}
