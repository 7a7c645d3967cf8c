package dto

import "github.com/shopspring/decimal"

// StorehouseRequest body para crear/actualizar un almacén.
type StorehouseRequest struct {
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	Address          string  `json:"address,omitempty"`
	StorehouseTypeID *string `json:"storehouse_type_id,omitempty"`
}

// StorehouseResponse representación de un almacén.
type StorehouseResponse struct {
	ID               string  `json:"id"`
	Code             string  `json:"code"`
	Name             string  `json:"name"`
	Address          string  `json:"address,omitempty"`
	StorehouseTypeID *string `json:"storehouse_type_id,omitempty"`
}

// StorehouseTypeRequest body para crear/actualizar un tipo de almacén.
type StorehouseTypeRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// StorehouseTypeResponse representación de un tipo de almacén.
type StorehouseTypeResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ProductRequest body para crear/actualizar un producto.
type ProductRequest struct {
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	UnitMeasurementID *string `json:"unit_measurement_id,omitempty"`
}

// ProductResponse representación de un producto.
type ProductResponse struct {
	ID                string  `json:"id"`
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	UnitMeasurementID *string `json:"unit_measurement_id,omitempty"`
}

// UnitMeasurementRequest body para crear/actualizar una unidad de medida.
type UnitMeasurementRequest struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// UnitMeasurementResponse representación de una unidad de medida.
type UnitMeasurementResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// PackingTypeRequest body para crear/actualizar un tipo de empaque.
// Capacity cero significa sin límite por lote.
type PackingTypeRequest struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Capacity decimal.Decimal `json:"capacity"`
}

// PackingTypeResponse representación de un tipo de empaque.
type PackingTypeResponse struct {
	ID       string          `json:"id"`
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Capacity decimal.Decimal `json:"capacity"`
}

// OrderTypeRequest body para crear/actualizar un tipo de orden.
// Action es RECEIPT o DISPATCH.
type OrderTypeRequest struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Action string `json:"action"`
}

// OrderTypeResponse representación de un tipo de orden.
type OrderTypeResponse struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Action string `json:"action"`
}

// SupplierRequest body para crear/actualizar un proveedor.
type SupplierRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// SupplierResponse representación de un proveedor.
type SupplierResponse struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// StockRecordResponse representación del stock agregado por (almacén, producto).
type StockRecordResponse struct {
	ID            string          `json:"id"`
	StorehouseID  string          `json:"storehouse_id"`
	ProductID     string          `json:"product_id"`
	AmountInStock decimal.Decimal `json:"amount_in_stock"`
}
