package repository

import "github.com/gestion-almacenes/almacenes-api/internal/domain/entity"

// PackingTypeRepository puerto de persistencia para tipos de empaque (DIP).
type PackingTypeRepository interface {
	Create(packingType *entity.PackingType) error
	Update(packingType *entity.PackingType) error
	GetByID(id string) (*entity.PackingType, error)
	// GetByCode resuelve el empaque reservado "n/a" para el desglose por defecto.
	GetByCode(code string) (*entity.PackingType, error)
	ExistsByCode(code string) (bool, error)
	List(limit, offset int) ([]*entity.PackingType, error)
}
