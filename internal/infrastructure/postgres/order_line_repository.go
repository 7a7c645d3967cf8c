package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

var _ repository.OrderLineRepository = (*OrderLineRepository)(nil)

// OrderLineRepository implementación PostgreSQL del repositorio de líneas.
type OrderLineRepository struct {
	db Querier
}

// NewOrderLineRepository acepta pool o transacción.
func NewOrderLineRepository(db Querier) *OrderLineRepository {
	return &OrderLineRepository{db: db}
}

const orderLineColumns = `id, order_id, stock_record_id, amount, product_code,
	expiration, active, created_at, updated_at`

func (r *OrderLineRepository) Create(line *entity.OrderLine) error {
	query := `
		INSERT INTO order_lines (` + orderLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(context.Background(), query,
		line.ID, line.OrderID, line.StockRecordID, line.Amount, line.ProductCode,
		line.Expiration, line.Active, line.CreatedAt, line.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insertar línea de orden: %w", err)
	}
	return nil
}

func (r *OrderLineRepository) Update(line *entity.OrderLine) error {
	query := `
		UPDATE order_lines
		SET stock_record_id = $2, amount = $3, product_code = $4, expiration = $5,
			active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		line.ID, line.StockRecordID, line.Amount, line.ProductCode,
		line.Expiration, line.Active, line.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualizar línea de orden: %w", err)
	}
	return nil
}

func (r *OrderLineRepository) GetByID(id string) (*entity.OrderLine, error) {
	query := `SELECT ` + orderLineColumns + ` FROM order_lines WHERE id = $1`
	line, err := scanOrderLine(r.db.QueryRow(context.Background(), query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return line, err
}

func (r *OrderLineRepository) ListByOrder(orderID string) ([]*entity.OrderLine, error) {
	query := `
		SELECT ` + orderLineColumns + `
		FROM order_lines
		WHERE order_id = $1 AND active = true
		ORDER BY created_at`
	rows, err := r.db.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("listar líneas de orden: %w", err)
	}
	defer rows.Close()

	var lines []*entity.OrderLine
	for rows.Next() {
		line, err := scanOrderLine(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// Delete elimina la fila; los planes de lote asociados los borra el caso de
// uso en la misma transacción.
func (r *OrderLineRepository) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM order_lines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar línea de orden: %w", err)
	}
	return nil
}

func (r *OrderLineRepository) ExistsByOrderAndStock(orderID, stockRecordID string) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM order_lines
			WHERE order_id = $1 AND stock_record_id = $2 AND active = true)`
	if err := r.db.QueryRow(context.Background(), query, orderID, stockRecordID).Scan(&exists); err != nil {
		return false, fmt.Errorf("verificar línea duplicada: %w", err)
	}
	return exists, nil
}

func scanOrderLine(row pgx.Row) (*entity.OrderLine, error) {
	var l entity.OrderLine
	err := row.Scan(&l.ID, &l.OrderID, &l.StockRecordID, &l.Amount, &l.ProductCode,
		&l.Expiration, &l.Active, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
