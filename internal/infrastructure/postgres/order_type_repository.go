package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

var _ repository.OrderTypeRepository = (*OrderTypeRepository)(nil)

// OrderTypeRepository implementación PostgreSQL del repositorio de tipos de orden.
type OrderTypeRepository struct {
	db Querier
}

// NewOrderTypeRepository acepta pool o transacción.
func NewOrderTypeRepository(db Querier) *OrderTypeRepository {
	return &OrderTypeRepository{db: db}
}

const orderTypeColumns = `id, code, name, action, active, created_at, updated_at`

func (r *OrderTypeRepository) Create(orderType *entity.OrderType) error {
	query := `
		INSERT INTO order_types (` + orderTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		orderType.ID, orderType.Code, orderType.Name, orderType.Action,
		orderType.Active, orderType.CreatedAt, orderType.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateCode("OrderType", "code", orderType.Code)
		}
		return fmt.Errorf("insertar tipo de orden: %w", err)
	}
	return nil
}

func (r *OrderTypeRepository) Update(orderType *entity.OrderType) error {
	query := `
		UPDATE order_types
		SET code = $2, name = $3, action = $4, active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		orderType.ID, orderType.Code, orderType.Name, orderType.Action,
		orderType.Active, orderType.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualizar tipo de orden: %w", err)
	}
	return nil
}

func (r *OrderTypeRepository) GetByID(id string) (*entity.OrderType, error) {
	query := `SELECT ` + orderTypeColumns + ` FROM order_types WHERE id = $1`
	var t entity.OrderType
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Code, &t.Name, &t.Action, &t.Active, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *OrderTypeRepository) ExistsByCode(code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM order_types WHERE code = $1 AND active = true)`
	if err := r.db.QueryRow(context.Background(), query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("verificar código de tipo de orden: %w", err)
	}
	return exists, nil
}

func (r *OrderTypeRepository) List(limit, offset int) ([]*entity.OrderType, error) {
	query := `
		SELECT ` + orderTypeColumns + `
		FROM order_types
		WHERE active = true
		ORDER BY name
		LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar tipos de orden: %w", err)
	}
	defer rows.Close()

	var types []*entity.OrderType
	for rows.Next() {
		var t entity.OrderType
		if err := rows.Scan(&t.ID, &t.Code, &t.Name, &t.Action,
			&t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, &t)
	}
	return types, rows.Err()
}
