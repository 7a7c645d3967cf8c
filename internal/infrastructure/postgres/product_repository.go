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

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementación PostgreSQL del repositorio de productos.
type ProductRepository struct {
	db Querier
}

// NewProductRepository acepta pool o transacción.
func NewProductRepository(db Querier) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, code, name, description, unit_measurement_id, active, created_at, updated_at`

func (r *ProductRepository) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, product.Description,
		product.UnitMeasurementID, product.Active, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateCode("Product", "code", product.Code)
		}
		return fmt.Errorf("insertar producto: %w", err)
	}
	return nil
}

func (r *ProductRepository) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET code = $2, name = $3, description = $4, unit_measurement_id = $5,
			active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, product.Description,
		product.UnitMeasurementID, product.Active, product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateCode("Product", "code", product.Code)
		}
		return fmt.Errorf("actualizar producto: %w", err)
	}
	return nil
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Code, &p.Name, &p.Description, &p.UnitMeasurementID,
		&p.Active, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) ExistsByCode(code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM products WHERE code = $1 AND active = true)`
	if err := r.db.QueryRow(context.Background(), query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("verificar código de producto: %w", err)
	}
	return exists, nil
}

func (r *ProductRepository) ExistsByCodeAndIDNot(code, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM products WHERE code = $1 AND id <> $2 AND active = true)`
	if err := r.db.QueryRow(context.Background(), query, code, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("verificar código de producto: %w", err)
	}
	return exists, nil
}

func (r *ProductRepository) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE active = true
		ORDER BY name
		LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.UnitMeasurementID,
			&p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

var _ repository.UnitMeasurementRepository = (*UnitMeasurementRepository)(nil)

// UnitMeasurementRepository implementación PostgreSQL de unidades de medida.
type UnitMeasurementRepository struct {
	db Querier
}

// NewUnitMeasurementRepository acepta pool o transacción.
func NewUnitMeasurementRepository(db Querier) *UnitMeasurementRepository {
	return &UnitMeasurementRepository{db: db}
}

const unitMeasurementColumns = `id, code, name, abbreviation, active, created_at, updated_at`

func (r *UnitMeasurementRepository) Create(unit *entity.UnitMeasurement) error {
	query := `
		INSERT INTO unit_measurements (` + unitMeasurementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		unit.ID, unit.Code, unit.Name, unit.Abbreviation,
		unit.Active, unit.CreatedAt, unit.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateCode("UnitMeasurement", "code", unit.Code)
		}
		return fmt.Errorf("insertar unidad de medida: %w", err)
	}
	return nil
}

func (r *UnitMeasurementRepository) Update(unit *entity.UnitMeasurement) error {
	query := `
		UPDATE unit_measurements
		SET code = $2, name = $3, abbreviation = $4, active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		unit.ID, unit.Code, unit.Name, unit.Abbreviation, unit.Active, unit.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualizar unidad de medida: %w", err)
	}
	return nil
}

func (r *UnitMeasurementRepository) GetByID(id string) (*entity.UnitMeasurement, error) {
	query := `SELECT ` + unitMeasurementColumns + ` FROM unit_measurements WHERE id = $1`
	var u entity.UnitMeasurement
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Code, &u.Name, &u.Abbreviation, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UnitMeasurementRepository) ExistsByCode(code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM unit_measurements WHERE code = $1 AND active = true)`
	if err := r.db.QueryRow(context.Background(), query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("verificar código de unidad: %w", err)
	}
	return exists, nil
}

func (r *UnitMeasurementRepository) List(limit, offset int) ([]*entity.UnitMeasurement, error) {
	query := `
		SELECT ` + unitMeasurementColumns + `
		FROM unit_measurements
		WHERE active = true
		ORDER BY name
		LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar unidades de medida: %w", err)
	}
	defer rows.Close()

	var units []*entity.UnitMeasurement
	for rows.Next() {
		var u entity.UnitMeasurement
		if err := rows.Scan(&u.ID, &u.Code, &u.Name, &u.Abbreviation,
			&u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		units = append(units, &u)
	}
	return units, rows.Err()
}
