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

var _ repository.SupplierRepository = (*SupplierRepository)(nil)

// SupplierRepository implementación PostgreSQL del repositorio de proveedores.
type SupplierRepository struct {
	db Querier
}

// NewSupplierRepository acepta pool o transacción.
func NewSupplierRepository(db Querier) *SupplierRepository {
	return &SupplierRepository{db: db}
}

const supplierColumns = `id, code, name, contact, phone, active, created_at, updated_at`

func (r *SupplierRepository) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		supplier.ID, supplier.Code, supplier.Name, supplier.Contact, supplier.Phone,
		supplier.Active, supplier.CreatedAt, supplier.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateCode("Supplier", "code", supplier.Code)
		}
		return fmt.Errorf("insertar proveedor: %w", err)
	}
	return nil
}

func (r *SupplierRepository) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET code = $2, name = $3, contact = $4, phone = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		supplier.ID, supplier.Code, supplier.Name, supplier.Contact, supplier.Phone,
		supplier.Active, supplier.UpdatedAt)
	if err != nil {
		return fmt.Errorf("actualizar proveedor: %w", err)
	}
	return nil
}

func (r *SupplierRepository) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Code, &s.Name, &s.Contact, &s.Phone, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepository) ExistsByCode(code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM suppliers WHERE code = $1 AND active = true)`
	if err := r.db.QueryRow(context.Background(), query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("verificar código de proveedor: %w", err)
	}
	return exists, nil
}

func (r *SupplierRepository) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT ` + supplierColumns + `
		FROM suppliers
		WHERE active = true
		ORDER BY name
		LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar proveedores: %w", err)
	}
	defer rows.Close()

	var suppliers []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.Contact, &s.Phone,
			&s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, &s)
	}
	return suppliers, rows.Err()
}
