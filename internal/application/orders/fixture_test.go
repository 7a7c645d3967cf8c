package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/application/orders"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/pkg/logger"
)

// Identificadores fijos del escenario de pruebas: un almacén con stock de un
// producto, tipos de orden de ingreso y despacho, y empaques de prueba.
const (
	storehouseID = "st-central"
	productID    = "prod-tornillos"
	stockID      = "stock-central-tornillos"
	supplierID   = "sup-aceros"
	otReceiptID  = "ot-ingreso"
	otDispatchID = "ot-despacho"
	packNAID     = "pack-na"
	packBulkID   = "pack-granel"
	packBoxID    = "pack-caja-10"
)

type fixture struct {
	t       *testing.T
	store   *memStore
	orderUC *orders.OrderUseCase
	lineUC  *orders.LineUseCase
	execUC  *orders.ExecuteOrderUseCase
}

// newFixture arma los casos de uso sobre los repos en memoria, con el
// catálogo mínimo ya sembrado.
func newFixture(t *testing.T, rejectDuplicates bool) *fixture {
	t.Helper()

	s := newMemStore()
	s.storehouses[storehouseID] = entity.Storehouse{
		ID: storehouseID, Code: "ALM-01", Name: "Almacén Central", Active: true,
	}
	s.suppliers[supplierID] = entity.Supplier{
		ID: supplierID, Code: "PROV-01", Name: "Aceros del Sur", Active: true,
	}
	s.orderTypes[otReceiptID] = entity.OrderType{
		ID: otReceiptID, Code: "OC", Name: "Orden de Compra",
		Action: entity.ActionReceipt, Active: true,
	}
	s.orderTypes[otDispatchID] = entity.OrderType{
		ID: otDispatchID, Code: "OD", Name: "Orden de Despacho",
		Action: entity.ActionDispatch, Active: true,
	}
	s.packings[packNAID] = entity.PackingType{
		ID: packNAID, Code: entity.PackingCodeNA, Name: "Sin Asignar", Active: true,
	}
	s.packings[packBulkID] = entity.PackingType{
		ID: packBulkID, Code: "GRA", Name: "Granel", Active: true,
	}
	s.packings[packBoxID] = entity.PackingType{
		ID: packBoxID, Code: "CAJ-10", Name: "Caja x10",
		Capacity: decimal.NewFromInt(10), Active: true,
	}
	s.stocks[stockID] = entity.StockRecord{
		ID: stockID, StorehouseID: storehouseID, ProductID: productID,
		AmountInStock:  decimal.Zero,
		StorehouseName: "Almacén Central", ProductName: "Tornillos 3mm",
		Active: true,
	}

	tx := &memTxRunner{s: s}
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	return &fixture{
		t:     t,
		store: s,
		orderUC: orders.NewOrderUseCase(
			memOrderRepo{s}, memStorehouseRepo{s}, memOrderTypeRepo{s}, memSupplierRepo{s}),
		lineUC: orders.NewLineUseCase(
			tx, memOrderRepo{s}, memStockRepo{s}, memLineRepo{s}, memLotPlanRepo{s}, rejectDuplicates),
		execUC: orders.NewExecuteOrderUseCase(tx, memOrderTypeRepo{s}, log),
	}
}

// createOrder crea una orden borrador sin código contra el almacén sembrado.
func (f *fixture) createOrder(orderTypeID string) *dto.OrderResponse {
	f.t.Helper()
	resp, err := f.orderUC.Create(context.Background(), dto.OrderRequest{
		StorehouseID: storehouseID,
		OrderTypeID:  orderTypeID,
	})
	require.NoError(f.t, err)
	require.NotNil(f.t, resp)
	return resp
}

// addLine crea una línea del producto sembrado con el desglose indicado.
func (f *fixture) addLine(orderID string, amount int64, lots ...dto.LotPlanRequest) *dto.LineResponse {
	f.t.Helper()
	resp, err := f.lineUC.CreateLine(context.Background(), dto.LineRequest{
		OrderID:   orderID,
		ProductID: productID,
		Amount:    decimal.NewFromInt(amount),
		Lots:      lots,
	})
	require.NoError(f.t, err)
	require.NotNil(f.t, resp)
	return resp
}

// setStock fija la cantidad en existencia del registro de stock sembrado.
func (f *fixture) setStock(amount int64) {
	f.t.Helper()
	sr := f.store.stocks[stockID]
	sr.AmountInStock = decimal.NewFromInt(amount)
	f.store.stocks[stockID] = sr
}

// stockAmount lee la cantidad en existencia actual.
func (f *fixture) stockAmount() decimal.Decimal {
	f.t.Helper()
	return f.store.stocks[stockID].AmountInStock
}
