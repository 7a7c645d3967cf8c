package repository

import "github.com/gestion-almacenes/almacenes-api/internal/domain/entity"

// PhysicalLotRepository puerto de persistencia para lotes físicos (DIP).
type PhysicalLotRepository interface {
	Create(lot *entity.PhysicalLot) error
	Update(lot *entity.PhysicalLot) error
	GetByID(id string) (*entity.PhysicalLot, error)
	// GetForUpdate bloquea la fila del lote (SELECT FOR UPDATE) antes de
	// descontar saldo en un despacho.
	GetForUpdate(id string) (*entity.PhysicalLot, error)
	ListByStockRecord(stockRecordID string) ([]*entity.PhysicalLot, error)
}
