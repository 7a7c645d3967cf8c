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

var _ repository.OrderRepository = (*OrderRepository)(nil)

// OrderRepository implementación PostgreSQL del repositorio de órdenes.
type OrderRepository struct {
	db Querier
}

// NewOrderRepository acepta pool o transacción.
func NewOrderRepository(db Querier) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, code, registration_date, registration_time, description,
	storehouse_id, order_type_id, supplier_id, status, active, created_at, updated_at`

func (r *OrderRepository) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(context.Background(), query,
		order.ID, order.Code, order.RegistrationDate, order.RegistrationTime,
		order.Description, order.StorehouseID, order.OrderTypeID, order.SupplierID,
		order.Status, order.Active, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateCode("Order", "code", order.Code)
		}
		return fmt.Errorf("insertar orden: %w", err)
	}
	return nil
}

func (r *OrderRepository) Update(order *entity.Order) error {
	query := `
		UPDATE orders
		SET code = $2, registration_date = $3, registration_time = $4, description = $5,
			storehouse_id = $6, order_type_id = $7, supplier_id = $8, status = $9,
			active = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		order.ID, order.Code, order.RegistrationDate, order.RegistrationTime,
		order.Description, order.StorehouseID, order.OrderTypeID, order.SupplierID,
		order.Status, order.Active, order.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateCode("Order", "code", order.Code)
		}
		return fmt.Errorf("actualizar orden: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id))
}

func (r *OrderRepository) GetByCode(code string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE code = $1 AND active = true`
	return r.scanOne(r.db.QueryRow(context.Background(), query, code))
}

// GetForUpdate bloquea la fila de la orden hasta el fin de la transacción.
func (r *OrderRepository) GetForUpdate(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id))
}

func (r *OrderRepository) ExistsByCode(code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM orders WHERE code = $1 AND active = true)`
	if err := r.db.QueryRow(context.Background(), query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("verificar código de orden: %w", err)
	}
	return exists, nil
}

func (r *OrderRepository) ExistsByCodeAndIDNot(code, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM orders WHERE code = $1 AND id <> $2 AND active = true)`
	if err := r.db.QueryRow(context.Background(), query, code, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("verificar código de orden: %w", err)
	}
	return exists, nil
}

func (r *OrderRepository) List(limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE active = true
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) scanOne(row pgx.Row) (*entity.Order, error) {
	order, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return order, err
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.Code, &o.RegistrationDate, &o.RegistrationTime,
		&o.Description, &o.StorehouseID, &o.OrderTypeID, &o.SupplierID,
		&o.Status, &o.Active, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
