package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
)

// executeReceipt crea y ejecuta una orden de ingreso por la cantidad dada y
// devuelve el id del lote físico creado.
func executeReceipt(t *testing.T, f *fixture, amount int64) string {
	t.Helper()
	ctx := context.Background()

	order := f.createOrder(otReceiptID)
	line := f.addLine(order.ID, amount)
	_, err := f.execUC.Execute(ctx, order.ID)
	require.NoError(t, err)

	got, err := f.lineUC.GetByID(ctx, line.ID)
	require.NoError(t, err)
	require.Len(t, got.Lots, 1)
	require.NotNil(t, got.Lots[0].PhysicalLotID)
	return *got.Lots[0].PhysicalLotID
}

// ─────────────────────────────────────────────────────────────────────────────
// Ingreso
// ─────────────────────────────────────────────────────────────────────────────

func TestExecute_IngresoAplicaStockYLotes(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	order := f.createOrder(otReceiptID)
	line := f.addLine(order.ID, 100)

	resp, err := f.execUC.Execute(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusFinalized, resp.Status)

	// El stock subió por el total de la línea.
	assert.True(t, f.stockAmount().Equal(decimal.NewFromInt(100)),
		"stock: %s", f.stockAmount())

	// Se materializó un lote físico por el plan y quedó retro-enlazado.
	require.Len(t, f.store.lots, 1)
	var lot entity.PhysicalLot
	for _, l := range f.store.lots {
		lot = l
	}
	assert.True(t, lot.Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, stockID, lot.StockRecordID)
	assert.Equal(t, packNAID, lot.PackingTypeID)

	got, err := f.lineUC.GetByID(ctx, line.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Lots[0].PhysicalLotID)
	assert.Equal(t, lot.ID, *got.Lots[0].PhysicalLotID)
}

func TestExecute_DobleEjecucionRechazada(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	order := f.createOrder(otReceiptID)
	f.addLine(order.ID, 100)

	_, err := f.execUC.Execute(ctx, order.ID)
	require.NoError(t, err)

	_, err = f.execUC.Execute(ctx, order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "ya fue procesada")

	// Los deltas se aplicaron exactamente una vez.
	assert.True(t, f.stockAmount().Equal(decimal.NewFromInt(100)))
	assert.Len(t, f.store.lots, 1)
}

func TestExecute_SinLineasRechazada(t *testing.T) {
	f := newFixture(t, false)

	order := f.createOrder(otReceiptID)
	_, err := f.execUC.Execute(context.Background(), order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "No tiene items")
}

func TestExecute_OrdenInexistente(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.execUC.Execute(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─────────────────────────────────────────────────────────────────────────────
// Despacho
// ─────────────────────────────────────────────────────────────────────────────

func TestExecute_DespachoStockInsuficienteRevierteTodo(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	f.setStock(50)

	order := f.createOrder(otDispatchID)
	f.addLine(order.ID, 80)

	_, err := f.execUC.Execute(ctx, order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Tornillos 3mm", insufficient.Product)
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(50)))
	assert.True(t, insufficient.Requested.Equal(decimal.NewFromInt(80)))

	// El stock no se tocó y la orden sigue en borrador.
	assert.True(t, f.stockAmount().Equal(decimal.NewFromInt(50)))
	got, err := f.orderUC.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDraft, got.Status)
}

func TestExecute_DespachoConsumeLoteDelIngreso(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	lotID := executeReceipt(t, f, 100)

	order := f.createOrder(otDispatchID)
	f.addLine(order.ID, 40, dto.LotPlanRequest{
		PackingTypeID: packNAID,
		Code:          "L-DESP",
		Amount:        decimal.NewFromInt(40),
		PhysicalLotID: &lotID,
	})

	resp, err := f.execUC.Execute(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusFinalized, resp.Status)

	// Stock agregado y saldo del lote bajan en paralelo.
	assert.True(t, f.stockAmount().Equal(decimal.NewFromInt(60)))
	assert.True(t, f.store.lots[lotID].Amount.Equal(decimal.NewFromInt(60)))
}

func TestExecute_DespachoSaldoDeLoteInsuficienteRevierteTodo(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	// Dos ingresos: el stock agregado (130) alcanza, el lote chico (30) no.
	executeReceipt(t, f, 100)
	smallLotID := executeReceipt(t, f, 30)

	order := f.createOrder(otDispatchID)
	f.addLine(order.ID, 50, dto.LotPlanRequest{
		PackingTypeID: packNAID,
		Code:          "L-DESP",
		Amount:        decimal.NewFromInt(50),
		PhysicalLotID: &smallLotID,
	})

	_, err := f.execUC.Execute(ctx, order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientLotStock)

	// El descuento de stock del paso 1 también se revirtió.
	assert.True(t, f.stockAmount().Equal(decimal.NewFromInt(130)))
	assert.True(t, f.store.lots[smallLotID].Amount.Equal(decimal.NewFromInt(30)))
	got, err := f.orderUC.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDraft, got.Status)
}

func TestExecute_DespachoSinReferenciaDeLote(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	f.setStock(100)

	// Línea con lote por defecto: el plan no apunta a ningún lote físico,
	// la cadena ingreso→despacho está rota.
	order := f.createOrder(otDispatchID)
	f.addLine(order.ID, 10)

	_, err := f.execUC.Execute(ctx, order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.True(t, f.stockAmount().Equal(decimal.NewFromInt(100)))
}
