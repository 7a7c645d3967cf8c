package repository

import "github.com/gestion-almacenes/almacenes-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	Update(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ExistsByCode(code string) (bool, error)
	ExistsByCodeAndIDNot(code, id string) (bool, error)
	List(limit, offset int) ([]*entity.Product, error)
}

// UnitMeasurementRepository puerto de persistencia para unidades de medida (DIP).
type UnitMeasurementRepository interface {
	Create(unit *entity.UnitMeasurement) error
	Update(unit *entity.UnitMeasurement) error
	GetByID(id string) (*entity.UnitMeasurement, error)
	ExistsByCode(code string) (bool, error)
	List(limit, offset int) ([]*entity.UnitMeasurement, error)
}
