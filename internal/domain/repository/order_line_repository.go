package repository

import "github.com/gestion-almacenes/almacenes-api/internal/domain/entity"

// OrderLineRepository puerto de persistencia para líneas de orden (DIP).
type OrderLineRepository interface {
	Create(line *entity.OrderLine) error
	Update(line *entity.OrderLine) error
	GetByID(id string) (*entity.OrderLine, error)
	ListByOrder(orderID string) ([]*entity.OrderLine, error)
	// Delete elimina físicamente la línea; sus planes de lote se eliminan
	// en cascada por el caso de uso dentro de la misma transacción.
	Delete(id string) error
	// ExistsByOrderAndStock soporta la política opcional de línea duplicada
	// por (orden, almacén, producto).
	ExistsByOrderAndStock(orderID, stockRecordID string) (bool, error)
}
