package repository

import "github.com/gestion-almacenes/almacenes-api/internal/domain/entity"

// StorehouseRepository puerto de persistencia para almacenes (DIP).
type StorehouseRepository interface {
	Create(storehouse *entity.Storehouse) error
	Update(storehouse *entity.Storehouse) error
	GetByID(id string) (*entity.Storehouse, error)
	ExistsByCode(code string) (bool, error)
	ExistsByCodeAndIDNot(code, id string) (bool, error)
	List(limit, offset int) ([]*entity.Storehouse, error)
}

// StorehouseTypeRepository puerto de persistencia para tipos de almacén (DIP).
type StorehouseTypeRepository interface {
	Create(storehouseType *entity.StorehouseType) error
	Update(storehouseType *entity.StorehouseType) error
	GetByID(id string) (*entity.StorehouseType, error)
	ExistsByCode(code string) (bool, error)
	List(limit, offset int) ([]*entity.StorehouseType, error)
}
