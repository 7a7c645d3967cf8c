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

var _ repository.StorehouseRepository = (*StorehouseRepository)(nil)

// StorehouseRepository implementación PostgreSQL del repositorio de almacenes.
type StorehouseRepository struct {
	db Querier
}

// NewStorehouseRepository acepta pool o transacción.
func NewStorehouseRepository(db Querier) *StorehouseRepository {
	return &StorehouseRepository{db: db}
}

const storehouseColumns = `id, code, name, address, storehouse_type_id, active, created_at, updated_at`

func (r *StorehouseRepository) Create(storehouse *entity.Storehouse) error {
	query := `
		INSERT INTO storehouses (` + storehouseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		storehouse.ID, storehouse.Code, storehouse.Name, storehouse.Address,
		storehouse.StorehouseTypeID, storehouse.Active, storehouse.CreatedAt, storehouse.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateCode("Storehouse", "code", storehouse.Code)
		}
		return fmt.Errorf("insertar almacén: %w", err)
	}
	return nil
}

func (r *StorehouseRepository) Update(storehouse *entity.Storehouse) error {
	query := `
		UPDATE storehouses
		SET code = $2, name = $3, address = $4, storehouse_type_id = $5,
			active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		storehouse.ID, storehouse.Code, storehouse.Name, storehouse.Address,
		storehouse.StorehouseTypeID, storehouse.Active, storehouse.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateCode("Storehouse", "code", storehouse.Code)
		}
		return fmt.Errorf("actualizar almacén: %w", err)
	}
	return nil
}

func (r *StorehouseRepository) GetByID(id string) (*entity.Storehouse, error) {
	query := `SELECT ` + storehouseColumns + ` FROM storehouses WHERE id = $1`
	var s entity.Storehouse
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Code, &s.Name, &s.Address, &s.StorehouseTypeID,
		&s.Active, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StorehouseRepository) ExistsByCode(code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM storehouses WHERE code = $1 AND active = true)`
	if err := r.db.QueryRow(context.Background(), query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("verificar código de almacén: %w", err)
	}
	return exists, nil
}

func (r *StorehouseRepository) ExistsByCodeAndIDNot(code, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM storehouses WHERE code = $1 AND id <> $2 AND active = true)`
	if err := r.db.QueryRow(context.Background(), query, code, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("verificar código de almacén: %w", err)
	}
	return exists, nil
}

func (r *StorehouseRepository) List(limit, offset int) ([]*entity.Storehouse, error) {
	query := `
		SELECT ` + storehouseColumns + `
		FROM storehouses
		WHERE active = true
		ORDER BY name
		LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar almacenes: %w", err)
	}
	defer rows.Close()

	var storehouses []*entity.Storehouse
	for rows.Next() {
		var s entity.Storehouse
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.Address, &s.StorehouseTypeID,
			&s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		storehouses = append(storehouses, &s)
	}
	return storehouses, rows.Err()
}

var _ repository.StorehouseTypeRepository = (*StorehouseTypeRepository)(nil)

// StorehouseTypeRepository implementación PostgreSQL de tipos de almacén.
type StorehouseTypeRepository struct {
	db Querier
}

// NewStorehouseTypeRepository acepta pool o transacción.
func NewStorehouseTypeRepository(db Querier) *StorehouseTypeRepository {
	return &StorehouseTypeRepository{db: db}
}

const storehouseTypeColumns = `id, code, name, description, active, created_at, updated_at`

func (r *StorehouseTypeRepository) Create(storehouseType *entity.StorehouseType) error {
	query := `
		INSERT INTO storehouse_types (` + storehouseTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		storehouseType.ID, storehouseType.Code, storehouseType.Name, storehouseType.Description,
		storehouseType.Active, storehouseType.CreatedAt, storehouseType.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateCode("StorehouseType", "code", storehouseType.Code)
		}
		return fmt.Errorf("insertar tipo de almacén: %w", err)
	}
	return nil
}

func (r *StorehouseTypeRepository) Update(storehouseType *entity.StorehouseType) error {
	query := `
		UPDATE storehouse_types
		SET code = $2, name = $3, description = $4, active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		storehouseType.ID, storehouseType.Code, storehouseType.Name,
		storehouseType.Description, storehouseType.Active, storehouseType.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualizar tipo de almacén: %w", err)
	}
	return nil
}

func (r *StorehouseTypeRepository) GetByID(id string) (*entity.StorehouseType, error) {
	query := `SELECT ` + storehouseTypeColumns + ` FROM storehouse_types WHERE id = $1`
	var t entity.StorehouseType
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Code, &t.Name, &t.Description, &t.Active, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *StorehouseTypeRepository) ExistsByCode(code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM storehouse_types WHERE code = $1 AND active = true)`
	if err := r.db.QueryRow(context.Background(), query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("verificar código de tipo de almacén: %w", err)
	}
	return exists, nil
}

func (r *StorehouseTypeRepository) List(limit, offset int) ([]*entity.StorehouseType, error) {
	query := `
		SELECT ` + storehouseTypeColumns + `
		FROM storehouse_types
		WHERE active = true
		ORDER BY name
		LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar tipos de almacén: %w", err)
	}
	defer rows.Close()

	var types []*entity.StorehouseType
	for rows.Next() {
		var t entity.StorehouseType
		if err := rows.Scan(&t.ID, &t.Code, &t.Name, &t.Description,
			&t.Active, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, &t)
	}
	return types, rows.Err()
}
