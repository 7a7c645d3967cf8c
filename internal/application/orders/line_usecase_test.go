package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/domain"
)

// ─────────────────────────────────────────────────────────────────────────────
// Lote por defecto
// ─────────────────────────────────────────────────────────────────────────────

func TestCreateLine_SinDesgloseGeneraLotePorDefecto(t *testing.T) {
	f := newFixture(t, false)

	order := f.createOrder(otReceiptID)
	line := f.addLine(order.ID, 100)

	// Exactamente un plan bajo el empaque reservado "n/a", por el total,
	// con código generado y sin lote físico todavía.
	require.Len(t, line.Lots, 1)
	lot := line.Lots[0]
	assert.Equal(t, packNAID, lot.PackingTypeID)
	assert.True(t, lot.Amount.Equal(decimal.NewFromInt(100)),
		"cantidad del plan: %s", lot.Amount)
	assert.NotEmpty(t, lot.Code)
	assert.Nil(t, lot.PhysicalLotID)
	assert.Nil(t, lot.Expiration)
}

func TestCreateLine_DesgloseExplicito(t *testing.T) {
	f := newFixture(t, false)

	order := f.createOrder(otReceiptID)
	line := f.addLine(order.ID, 70,
		dto.LotPlanRequest{PackingTypeID: packBulkID, Code: "L-001", Amount: decimal.NewFromInt(30)},
		dto.LotPlanRequest{PackingTypeID: packBulkID, Code: "L-002", Amount: decimal.NewFromInt(40)},
	)

	require.Len(t, line.Lots, 2)
	assert.Equal(t, "L-001", line.Lots[0].Code)
	assert.Equal(t, "L-002", line.Lots[1].Code)
}

// ─────────────────────────────────────────────────────────────────────────────
// Invariante suma(planes) == cantidad y atomicidad
// ─────────────────────────────────────────────────────────────────────────────

func TestCreateLine_SumaDistintaDescartaTodo(t *testing.T) {
	f := newFixture(t, false)

	order := f.createOrder(otReceiptID)
	_, err := f.lineUC.CreateLine(context.Background(), dto.LineRequest{
		OrderID:   order.ID,
		ProductID: productID,
		Amount:    decimal.NewFromInt(80),
		Lots: []dto.LotPlanRequest{
			{PackingTypeID: packBulkID, Code: "L-001", Amount: decimal.NewFromInt(30)},
			{PackingTypeID: packBulkID, Code: "L-002", Amount: decimal.NewFromInt(40)},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "cantidad por empaques")

	// Ni la línea ni los planes quedaron persistidos.
	assert.Empty(t, f.store.lines)
	assert.Empty(t, f.store.plans)
}

func TestCreateLine_CapacidadDeEmpaqueExcedida(t *testing.T) {
	f := newFixture(t, false)

	order := f.createOrder(otReceiptID)
	_, err := f.lineUC.CreateLine(context.Background(), dto.LineRequest{
		OrderID:   order.ID,
		ProductID: productID,
		Amount:    decimal.NewFromInt(15),
		Lots: []dto.LotPlanRequest{
			{PackingTypeID: packBoxID, Code: "L-001", Amount: decimal.NewFromInt(15)},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "capacidad")

	assert.Empty(t, f.store.lines)
	assert.Empty(t, f.store.plans)
}

func TestCreateLine_CantidadNegativa(t *testing.T) {
	f := newFixture(t, false)

	order := f.createOrder(otReceiptID)
	_, err := f.lineUC.CreateLine(context.Background(), dto.LineRequest{
		OrderID:   order.ID,
		ProductID: productID,
		Amount:    decimal.NewFromInt(-5),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ─────────────────────────────────────────────────────────────────────────────
// Candados y políticas
// ─────────────────────────────────────────────────────────────────────────────

func TestCreateLine_OrdenFinalizadaRechazada(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	order := f.createOrder(otReceiptID)
	f.addLine(order.ID, 10)
	_, err := f.execUC.Execute(ctx, order.ID)
	require.NoError(t, err)

	_, err = f.lineUC.CreateLine(ctx, dto.LineRequest{
		OrderID:   order.ID,
		ProductID: productID,
		Amount:    decimal.NewFromInt(5),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateLine_ProductoSinStockEnAlmacen(t *testing.T) {
	f := newFixture(t, false)

	order := f.createOrder(otReceiptID)
	_, err := f.lineUC.CreateLine(context.Background(), dto.LineRequest{
		OrderID:   order.ID,
		ProductID: "prod-inexistente",
		Amount:    decimal.NewFromInt(5),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateLine_PoliticaDeLineaDuplicada(t *testing.T) {
	// Con la política activa la segunda línea del mismo producto se rechaza.
	f := newFixture(t, true)
	order := f.createOrder(otReceiptID)
	f.addLine(order.ID, 10)

	_, err := f.lineUC.CreateLine(context.Background(), dto.LineRequest{
		OrderID:   order.ID,
		ProductID: productID,
		Amount:    decimal.NewFromInt(5),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "Ya fue registrado")

	// Con la política apagada se permite repetir producto.
	g := newFixture(t, false)
	order2 := g.createOrder(otReceiptID)
	g.addLine(order2.ID, 10)
	g.addLine(order2.ID, 5)

	lines, err := g.lineUC.ListByOrder(context.Background(), order2.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

// ─────────────────────────────────────────────────────────────────────────────
// Actualización y borrado
// ─────────────────────────────────────────────────────────────────────────────

func TestUpdateLine_ReconstruyeDesglose(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	order := f.createOrder(otReceiptID)
	line := f.addLine(order.ID, 100)

	updated, err := f.lineUC.UpdateLine(ctx, line.ID, dto.LineRequest{
		OrderID:   order.ID,
		ProductID: productID,
		Amount:    decimal.NewFromInt(70),
		Lots: []dto.LotPlanRequest{
			{PackingTypeID: packBulkID, Code: "L-001", Amount: decimal.NewFromInt(30)},
			{PackingTypeID: packBulkID, Code: "L-002", Amount: decimal.NewFromInt(40)},
		},
	})
	require.NoError(t, err)

	// El plan por defecto fue reemplazado por el desglose explícito.
	require.Len(t, updated.Lots, 2)
	for _, lot := range updated.Lots {
		assert.Equal(t, packBulkID, lot.PackingTypeID)
	}
	assert.Len(t, f.store.plans, 2)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(70)))
}

func TestUpdateLine_SumaDistintaConservaDesgloseAnterior(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	order := f.createOrder(otReceiptID)
	line := f.addLine(order.ID, 100)

	_, err := f.lineUC.UpdateLine(ctx, line.ID, dto.LineRequest{
		OrderID:   order.ID,
		ProductID: productID,
		Amount:    decimal.NewFromInt(50),
		Lots: []dto.LotPlanRequest{
			{PackingTypeID: packBulkID, Code: "L-001", Amount: decimal.NewFromInt(30)},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	// El rollback restaura la línea y el plan original.
	got, err := f.lineUC.GetByID(ctx, line.ID)
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(100)))
	require.Len(t, got.Lots, 1)
	assert.Equal(t, packNAID, got.Lots[0].PackingTypeID)
}

func TestDeleteLine_EliminaPlanesEnCascada(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	order := f.createOrder(otReceiptID)
	line := f.addLine(order.ID, 100)
	require.Len(t, f.store.plans, 1)

	require.NoError(t, f.lineUC.DeleteLine(ctx, line.ID))

	assert.Empty(t, f.store.lines)
	assert.Empty(t, f.store.plans)

	_, err := f.lineUC.GetByID(ctx, line.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
