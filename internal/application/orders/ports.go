package orders

import (
	"context"

	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de órdenes:
// o todo lo que hace fn queda persistido, o nada.
type TxRunner interface {
	// Run cubre las operaciones de líneas: la línea y sus planes de lote
	// se persisten (o descartan) como una sola unidad.
	Run(ctx context.Context, fn func(
		lineRepo repository.OrderLineRepository,
		lotPlanRepo repository.LotPlanRepository,
		packingRepo repository.PackingTypeRepository,
	) error) error

	// RunExecution cubre la ejecución de una orden: stock, lotes físicos y
	// el cambio de estado comparten el Commit o Rollback.
	RunExecution(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		lineRepo repository.OrderLineRepository,
		lotPlanRepo repository.LotPlanRepository,
		lotRepo repository.PhysicalLotRepository,
		stockRepo repository.StockRecordRepository,
	) error) error
}
