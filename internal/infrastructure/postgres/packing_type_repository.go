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

var _ repository.PackingTypeRepository = (*PackingTypeRepository)(nil)

// PackingTypeRepository implementación PostgreSQL del repositorio de empaques.
type PackingTypeRepository struct {
	db Querier
}

// NewPackingTypeRepository acepta pool o transacción.
func NewPackingTypeRepository(db Querier) *PackingTypeRepository {
	return &PackingTypeRepository{db: db}
}

const packingTypeColumns = `id, code, name, capacity, active, created_at, updated_at`

func (r *PackingTypeRepository) Create(packingType *entity.PackingType) error {
	query := `
		INSERT INTO packing_types (` + packingTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		packingType.ID, packingType.Code, packingType.Name, packingType.Capacity,
		packingType.Active, packingType.CreatedAt, packingType.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateCode("PackingType", "code", packingType.Code)
		}
		return fmt.Errorf("insertar tipo de empaque: %w", err)
	}
	return nil
}

func (r *PackingTypeRepository) Update(packingType *entity.PackingType) error {
	query := `
		UPDATE packing_types
		SET code = $2, name = $3, capacity = $4, active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		packingType.ID, packingType.Code, packingType.Name, packingType.Capacity,
		packingType.Active, packingType.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualizar tipo de empaque: %w", err)
	}
	return nil
}

func (r *PackingTypeRepository) GetByID(id string) (*entity.PackingType, error) {
	query := `SELECT ` + packingTypeColumns + ` FROM packing_types WHERE id = $1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id))
}

func (r *PackingTypeRepository) GetByCode(code string) (*entity.PackingType, error) {
	query := `SELECT ` + packingTypeColumns + ` FROM packing_types WHERE code = $1 AND active = true`
	return r.scanOne(r.db.QueryRow(context.Background(), query, code))
}

func (r *PackingTypeRepository) ExistsByCode(code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM packing_types WHERE code = $1 AND active = true)`
	if err := r.db.QueryRow(context.Background(), query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("verificar código de empaque: %w", err)
	}
	return exists, nil
}

func (r *PackingTypeRepository) List(limit, offset int) ([]*entity.PackingType, error) {
	query := `
		SELECT ` + packingTypeColumns + `
		FROM packing_types
		WHERE active = true
		ORDER BY name
		LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar tipos de empaque: %w", err)
	}
	defer rows.Close()

	var types []*entity.PackingType
	for rows.Next() {
		var t entity.PackingType
		if err := rows.Scan(&t.ID, &t.Code, &t.Name, &t.Capacity,
			&t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, &t)
	}
	return types, rows.Err()
}

func (r *PackingTypeRepository) scanOne(row pgx.Row) (*entity.PackingType, error) {
	var t entity.PackingType
	err := row.Scan(&t.ID, &t.Code, &t.Name, &t.Capacity, &t.Active, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
