package repository

import (
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StockRecordRepository puerto para el stock agregado por (almacén, producto).
// Se usa dentro de transacciones para garantizar consistencia.
type StockRecordRepository interface {
	Create(record *entity.StockRecord) error
	GetByID(id string) (*entity.StockRecord, error)
	GetByStorehouseAndProduct(storehouseID, productID string) (*entity.StockRecord, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE): dos despachos
	// concurrentes contra el mismo par se serializan aquí.
	GetForUpdate(id string) (*entity.StockRecord, error)
	UpdateAmount(id string, amount decimal.Decimal) error
	List(limit, offset int) ([]*entity.StockRecord, error)
}
