package repository

import "github.com/gestion-almacenes/almacenes-api/internal/domain/entity"

// OrderTypeRepository puerto de persistencia para tipos de orden (DIP).
type OrderTypeRepository interface {
	Create(orderType *entity.OrderType) error
	Update(orderType *entity.OrderType) error
	GetByID(id string) (*entity.OrderType, error)
	ExistsByCode(code string) (bool, error)
	List(limit, offset int) ([]*entity.OrderType, error)
}
