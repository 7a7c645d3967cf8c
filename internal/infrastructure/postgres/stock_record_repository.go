package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

var _ repository.StockRecordRepository = (*StockRecordRepository)(nil)

// StockRecordRepository implementación PostgreSQL del repositorio de stock.
// Las lecturas traen nombre de almacén y producto por JOIN para armar los
// mensajes de error de stock insuficiente.
type StockRecordRepository struct {
	db Querier
}

// NewStockRecordRepository acepta pool o transacción.
func NewStockRecordRepository(db Querier) *StockRecordRepository {
	return &StockRecordRepository{db: db}
}

const stockRecordSelect = `
	SELECT sr.id, sr.storehouse_id, sr.product_id, sr.amount_in_stock,
		s.name, p.name, sr.active, sr.created_at, sr.updated_at
	FROM stock_records sr
	JOIN storehouses s ON s.id = sr.storehouse_id
	JOIN products p ON p.id = sr.product_id`

func (r *StockRecordRepository) Create(record *entity.StockRecord) error {
	query := `
		INSERT INTO stock_records (id, storehouse_id, product_id, amount_in_stock,
			active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		record.ID, record.StorehouseID, record.ProductID, record.AmountInStock,
		record.Active, record.CreatedAt, record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insertar registro de stock: %w", err)
	}
	return nil
}

func (r *StockRecordRepository) GetByID(id string) (*entity.StockRecord, error) {
	query := stockRecordSelect + ` WHERE sr.id = $1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id))
}

func (r *StockRecordRepository) GetByStorehouseAndProduct(storehouseID, productID string) (*entity.StockRecord, error) {
	query := stockRecordSelect + ` WHERE sr.storehouse_id = $1 AND sr.product_id = $2 AND sr.active = true`
	return r.scanOne(r.db.QueryRow(context.Background(), query, storehouseID, productID))
}

// GetForUpdate bloquea solo la fila de stock, no las de catálogo del JOIN.
func (r *StockRecordRepository) GetForUpdate(id string) (*entity.StockRecord, error) {
	query := stockRecordSelect + ` WHERE sr.id = $1 FOR UPDATE OF sr`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id))
}

func (r *StockRecordRepository) UpdateAmount(id string, amount decimal.Decimal) error {
	query := `UPDATE stock_records SET amount_in_stock = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query, id, amount, time.Now())
	if err != nil {
		return fmt.Errorf("actualizar cantidad de stock: %w", err)
	}
	return nil
}

func (r *StockRecordRepository) List(limit, offset int) ([]*entity.StockRecord, error) {
	query := stockRecordSelect + `
		WHERE sr.active = true
		ORDER BY s.name, p.name
		LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar registros de stock: %w", err)
	}
	defer rows.Close()

	var records []*entity.StockRecord
	for rows.Next() {
		record, err := scanStockRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *StockRecordRepository) scanOne(row pgx.Row) (*entity.StockRecord, error) {
	record, err := scanStockRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return record, err
}

func scanStockRecord(row pgx.Row) (*entity.StockRecord, error) {
	var s entity.StockRecord
	err := row.Scan(&s.ID, &s.StorehouseID, &s.ProductID, &s.AmountInStock,
		&s.StorehouseName, &s.ProductName, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
