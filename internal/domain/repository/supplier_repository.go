package repository

import "github.com/gestion-almacenes/almacenes-api/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	Update(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	ExistsByCode(code string) (bool, error)
	List(limit, offset int) ([]*entity.Supplier, error)
}
