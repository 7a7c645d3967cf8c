package repository

import "github.com/gestion-almacenes/almacenes-api/internal/domain/entity"

// OrderRepository puerto de persistencia para la cabecera de órdenes (DIP).
// Las búsquedas por código y los listados filtran por active = true; las
// lecturas por id devuelven también inactivas para distinguir borrado lógico.
type OrderRepository interface {
	Create(order *entity.Order) error
	Update(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	GetByCode(code string) (*entity.Order, error)
	// GetForUpdate bloquea la fila de la orden (SELECT FOR UPDATE) para
	// serializar ejecuciones concurrentes de la misma orden.
	GetForUpdate(id string) (*entity.Order, error)
	ExistsByCode(code string) (bool, error)
	ExistsByCodeAndIDNot(code, id string) (bool, error)
	List(limit, offset int) ([]*entity.Order, error)
}
