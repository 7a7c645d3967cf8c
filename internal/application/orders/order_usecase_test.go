package orders_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
)

// ─────────────────────────────────────────────────────────────────────────────
// Creación
// ─────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_CodigoVacioUsaCentinela(t *testing.T) {
	f := newFixture(t, false)

	resp := f.createOrder(otReceiptID)

	assert.Equal(t, entity.OrderCodeSentinel, resp.Code)
	assert.Equal(t, entity.OrderStatusDraft, resp.Status)

	// El centinela no participa de la unicidad: una segunda orden sin
	// código también se crea.
	resp2 := f.createOrder(otReceiptID)
	assert.Equal(t, entity.OrderCodeSentinel, resp2.Code)
	assert.NotEqual(t, resp.ID, resp2.ID)
}

func TestCreateOrder_CodigoDuplicado(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.orderUC.Create(ctx, dto.OrderRequest{
		Code: "ORD-001", StorehouseID: storehouseID, OrderTypeID: otReceiptID,
	})
	require.NoError(t, err)

	_, err = f.orderUC.Create(ctx, dto.OrderRequest{
		Code: "ORD-001", StorehouseID: storehouseID, OrderTypeID: otReceiptID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateOrder_AlmacenInexistente(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.orderUC.Create(context.Background(), dto.OrderRequest{
		StorehouseID: "no-existe", OrderTypeID: otReceiptID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateOrder_ProveedorOpcional(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	sup := supplierID
	resp, err := f.orderUC.Create(ctx, dto.OrderRequest{
		StorehouseID: storehouseID, OrderTypeID: otReceiptID, SupplierID: &sup,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.SupplierID)
	assert.Equal(t, supplierID, *resp.SupplierID)

	bad := "no-existe"
	_, err = f.orderUC.Create(ctx, dto.OrderRequest{
		StorehouseID: storehouseID, OrderTypeID: otReceiptID, SupplierID: &bad,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─────────────────────────────────────────────────────────────────────────────
// Actualización
// ─────────────────────────────────────────────────────────────────────────────

func TestUpdateOrder_ColisionDeCodigo(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.orderUC.Create(ctx, dto.OrderRequest{
		Code: "ORD-A", StorehouseID: storehouseID, OrderTypeID: otReceiptID,
	})
	require.NoError(t, err)
	b, err := f.orderUC.Create(ctx, dto.OrderRequest{
		Code: "ORD-B", StorehouseID: storehouseID, OrderTypeID: otReceiptID,
	})
	require.NoError(t, err)

	// Tomar el código de otra orden activa colisiona.
	_, err = f.orderUC.Update(ctx, b.ID, dto.OrderRequest{
		Code: "ORD-A", StorehouseID: storehouseID, OrderTypeID: otReceiptID,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Conservar el propio código no.
	updated, err := f.orderUC.Update(ctx, b.ID, dto.OrderRequest{
		Code: "ORD-B", Description: "reabastecimiento",
		StorehouseID: storehouseID, OrderTypeID: otReceiptID,
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-B", updated.Code)
	assert.Equal(t, "reabastecimiento", updated.Description)
}

func TestUpdateOrder_FinalizadaRechazada(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	order := f.createOrder(otReceiptID)
	f.addLine(order.ID, 5)
	_, err := f.execUC.Execute(ctx, order.ID)
	require.NoError(t, err)

	_, err = f.orderUC.Update(ctx, order.ID, dto.OrderRequest{
		StorehouseID: storehouseID, OrderTypeID: otReceiptID,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), entity.OrderStatusFinalized)
}

// ─────────────────────────────────────────────────────────────────────────────
// Borrado lógico y consultas
// ─────────────────────────────────────────────────────────────────────────────

func TestDeleteOrder_DobleBorradoDistingueEstados(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	order := f.createOrder(otReceiptID)

	require.NoError(t, f.orderUC.Delete(ctx, order.ID))

	// El segundo borrado no es NotFound: la fila existe pero inactiva.
	err := f.orderUC.Delete(ctx, order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyDeleted)

	// Para las lecturas la orden borrada no existe.
	_, err = f.orderUC.GetByID(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetOrderByCode(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	created, err := f.orderUC.Create(ctx, dto.OrderRequest{
		Code: "ORD-100", StorehouseID: storehouseID, OrderTypeID: otDispatchID,
	})
	require.NoError(t, err)

	found, err := f.orderUC.GetByCode(ctx, "ORD-100")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = f.orderUC.GetByCode(ctx, "ORD-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOrders_SoloActivas(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	a := f.createOrder(otReceiptID)
	f.createOrder(otReceiptID)
	require.NoError(t, f.orderUC.Delete(ctx, a.ID))

	list, err := f.orderUC.List(ctx, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.NotEqual(t, a.ID, list.Items[0].ID)
}
