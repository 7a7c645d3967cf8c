package orders

import (
	"context"
	"time"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
	"github.com/gestion-almacenes/almacenes-api/pkg/logger"
)

// ExecuteOrderUseCase ejecuta una orden: aplica los deltas de stock y de
// lotes físicos de todas sus líneas y pasa la orden de borrador a finalizado,
// todo dentro de una sola transacción. Cualquier fallo (stock insuficiente,
// lote roto) revierte la ejecución completa.
type ExecuteOrderUseCase struct {
	txRunner      TxRunner
	orderTypeRepo repository.OrderTypeRepository
	log           *logger.Logger
}

// NewExecuteOrderUseCase construye el caso de uso.
func NewExecuteOrderUseCase(txRunner TxRunner, orderTypeRepo repository.OrderTypeRepository, log *logger.Logger) *ExecuteOrderUseCase {
	return &ExecuteOrderUseCase{txRunner: txRunner, orderTypeRepo: orderTypeRepo, log: log}
}

// Execute corre la transición BORRADOR → FINALIZADO. La orden se relee con
// bloqueo de fila dentro de la transacción: ejecuciones concurrentes de la
// misma orden se serializan y la segunda falla en el candado de estado, por
// lo que los deltas nunca se aplican dos veces.
func (uc *ExecuteOrderUseCase) Execute(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	var executed *entity.Order

	err := uc.txRunner.RunExecution(ctx, func(
		orderRepo repository.OrderRepository,
		lineRepo repository.OrderLineRepository,
		lotPlanRepo repository.LotPlanRepository,
		lotRepo repository.PhysicalLotRepository,
		stockRepo repository.StockRecordRepository,
	) error {
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil || !order.Active {
			return domain.NewNotFound("Order", orderID)
		}
		if order.Status != entity.OrderStatusDraft {
			return domain.NewValidation("La orden ya fue procesada.")
		}

		orderType, err := uc.orderTypeRepo.GetByID(order.OrderTypeID)
		if err != nil {
			return err
		}
		if orderType == nil || !orderType.Active {
			return domain.NewNotFound("OrderType", order.OrderTypeID)
		}
		action := orderType.Action

		lines, err := lineRepo.ListByOrder(order.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.NewValidation("No tiene items para realizar.")
		}

		now := time.Now()

		// Paso 1: stock agregado. Un faltante en cualquier línea aborta
		// la ejecución completa, no solo esa línea.
		for _, line := range lines {
			delta := line.Amount
			if action == entity.ActionDispatch {
				delta = line.Amount.Neg()
			}
			if err := adjustStock(stockRepo, line.StockRecordID, delta); err != nil {
				return err
			}
		}

		// Paso 2: lotes físicos según la acción del tipo de orden.
		for _, line := range lines {
			switch action {
			case entity.ActionReceipt:
				if err := lotsOnReceipt(lotPlanRepo, lotRepo, line, now); err != nil {
					return err
				}
			case entity.ActionDispatch:
				stock, err := stockRepo.GetByID(line.StockRecordID)
				if err != nil {
					return err
				}
				productName := ""
				if stock != nil {
					productName = stock.ProductName
				}
				if err := lotsOnDispatch(lotPlanRepo, lotRepo, line, productName, now); err != nil {
					return err
				}
			default:
				return domain.NewValidation("acción de tipo de orden desconocida (%s)", action)
			}
		}

		order.Status = entity.OrderStatusFinalized
		order.UpdatedAt = now
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		executed = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("order_id", executed.ID).
		Str("code", executed.Code).
		Msg("orden ejecutada")

	return toOrderResponse(executed), nil
}
