package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

var _ repository.PhysicalLotRepository = (*PhysicalLotRepository)(nil)

// PhysicalLotRepository implementación PostgreSQL del repositorio de lotes físicos.
type PhysicalLotRepository struct {
	db Querier
}

// NewPhysicalLotRepository acepta pool o transacción.
func NewPhysicalLotRepository(db Querier) *PhysicalLotRepository {
	return &PhysicalLotRepository{db: db}
}

const physicalLotColumns = `id, code, amount, expiration, packing_type_id,
	stock_record_id, active, created_at, updated_at`

func (r *PhysicalLotRepository) Create(lot *entity.PhysicalLot) error {
	query := `
		INSERT INTO physical_lots (` + physicalLotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(context.Background(), query,
		lot.ID, lot.Code, lot.Amount, lot.Expiration, lot.PackingTypeID,
		lot.StockRecordID, lot.Active, lot.CreatedAt, lot.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insertar lote físico: %w", err)
	}
	return nil
}

func (r *PhysicalLotRepository) Update(lot *entity.PhysicalLot) error {
	query := `
		UPDATE physical_lots
		SET amount = $2, expiration = $3, active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		lot.ID, lot.Amount, lot.Expiration, lot.Active, lot.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualizar lote físico: %w", err)
	}
	return nil
}

func (r *PhysicalLotRepository) GetByID(id string) (*entity.PhysicalLot, error) {
	query := `SELECT ` + physicalLotColumns + ` FROM physical_lots WHERE id = $1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id))
}

// GetForUpdate bloquea el lote antes de descontar saldo en un despacho.
func (r *PhysicalLotRepository) GetForUpdate(id string) (*entity.PhysicalLot, error) {
	query := `SELECT ` + physicalLotColumns + ` FROM physical_lots WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id))
}

func (r *PhysicalLotRepository) ListByStockRecord(stockRecordID string) ([]*entity.PhysicalLot, error) {
	query := `
		SELECT ` + physicalLotColumns + `
		FROM physical_lots
		WHERE stock_record_id = $1 AND active = true
		ORDER BY created_at`
	rows, err := r.db.Query(context.Background(), query, stockRecordID)
	if err != nil {
		return nil, fmt.Errorf("listar lotes físicos: %w", err)
	}
	defer rows.Close()

	var lots []*entity.PhysicalLot
	for rows.Next() {
		lot, err := scanPhysicalLot(rows)
		if err != nil {
			return nil, err
		}
		lots = append(lots, lot)
	}
	return lots, rows.Err()
}

func (r *PhysicalLotRepository) scanOne(row pgx.Row) (*entity.PhysicalLot, error) {
	lot, err := scanPhysicalLot(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return lot, err
}

func scanPhysicalLot(row pgx.Row) (*entity.PhysicalLot, error) {
	var l entity.PhysicalLot
	err := row.Scan(&l.ID, &l.Code, &l.Amount, &l.Expiration, &l.PackingTypeID,
		&l.StockRecordID, &l.Active, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
