package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

var _ repository.LotPlanRepository = (*LotPlanRepository)(nil)

// LotPlanRepository implementación PostgreSQL del repositorio de planes de lote.
type LotPlanRepository struct {
	db Querier
}

// NewLotPlanRepository acepta pool o transacción.
func NewLotPlanRepository(db Querier) *LotPlanRepository {
	return &LotPlanRepository{db: db}
}

const lotPlanColumns = `id, order_line_id, packing_type_id, physical_lot_id, code,
	amount, expiration, active, created_at, updated_at`

func (r *LotPlanRepository) Create(plan *entity.LotPlan) error {
	query := `
		INSERT INTO lot_plans (` + lotPlanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		plan.ID, plan.OrderLineID, plan.PackingTypeID, plan.PhysicalLotID,
		plan.Code, plan.Amount, plan.Expiration, plan.Active,
		plan.CreatedAt, plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insertar plan de lote: %w", err)
	}
	return nil
}

func (r *LotPlanRepository) Update(plan *entity.LotPlan) error {
	query := `
		UPDATE lot_plans
		SET packing_type_id = $2, physical_lot_id = $3, code = $4, amount = $5,
			expiration = $6, active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		plan.ID, plan.PackingTypeID, plan.PhysicalLotID, plan.Code, plan.Amount,
		plan.Expiration, plan.Active, plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualizar plan de lote: %w", err)
	}
	return nil
}

func (r *LotPlanRepository) ListByLine(orderLineID string) ([]*entity.LotPlan, error) {
	query := `
		SELECT ` + lotPlanColumns + `
		FROM lot_plans
		WHERE order_line_id = $1 AND active = true
		ORDER BY created_at`
	rows, err := r.db.Query(context.Background(), query, orderLineID)
	if err != nil {
		return nil, fmt.Errorf("listar planes de lote: %w", err)
	}
	defer rows.Close()

	var plans []*entity.LotPlan
	for rows.Next() {
		plan, err := scanLotPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

func (r *LotPlanRepository) DeleteByLine(orderLineID string) error {
	_, err := r.db.Exec(context.Background(),
		`DELETE FROM lot_plans WHERE order_line_id = $1`, orderLineID)
	if err != nil {
		return fmt.Errorf("eliminar planes de lote: %w", err)
	}
	return nil
}

func scanLotPlan(row pgx.Row) (*entity.LotPlan, error) {
	var p entity.LotPlan
	err := row.Scan(&p.ID, &p.OrderLineID, &p.PackingTypeID, &p.PhysicalLotID,
		&p.Code, &p.Amount, &p.Expiration, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
