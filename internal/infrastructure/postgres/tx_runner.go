package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestion-almacenes/almacenes-api/internal/application/orders"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. El motor
// de órdenes depende de esto para que línea+planes y la ejecución completa
// sean atómicas.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	lineRepo repository.OrderLineRepository,
	lotPlanRepo repository.LotPlanRepository,
	packingRepo repository.PackingTypeRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewOrderLineRepository(tx),
		NewLotPlanRepository(tx),
		NewPackingTypeRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunExecution inicia una transacción con los repos que necesita la
// ejecución de una orden: cabecera, líneas, planes, lotes físicos y stock.
func (r *TxRunner) RunExecution(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	lineRepo repository.OrderLineRepository,
	lotPlanRepo repository.LotPlanRepository,
	lotRepo repository.PhysicalLotRepository,
	stockRepo repository.StockRecordRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewOrderRepository(tx),
		NewOrderLineRepository(tx),
		NewLotPlanRepository(tx),
		NewPhysicalLotRepository(tx),
		NewStockRecordRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
