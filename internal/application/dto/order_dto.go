package dto

import "github.com/shopspring/decimal"

// OrderRequest body para crear o actualizar una orden.
// Code vacío genera el centinela "S/C"; las fechas vacías toman "ahora".
type OrderRequest struct {
	Code             string  `json:"code,omitempty"`
	Description      string  `json:"description,omitempty"`
	RegistrationDate string  `json:"registration_date,omitempty"` // YYYY-MM-DD
	RegistrationTime string  `json:"registration_time,omitempty"` // HH:MM:SS
	StorehouseID     string  `json:"storehouse_id"`
	OrderTypeID      string  `json:"order_type_id"`
	SupplierID       *string `json:"supplier_id,omitempty"`
}

// OrderResponse representación de una orden.
type OrderResponse struct {
	ID               string  `json:"id"`
	Code             string  `json:"code"`
	Description      string  `json:"description,omitempty"`
	RegistrationDate string  `json:"registration_date"`
	RegistrationTime string  `json:"registration_time"`
	StorehouseID     string  `json:"storehouse_id"`
	OrderTypeID      string  `json:"order_type_id"`
	SupplierID       *string `json:"supplier_id,omitempty"`
	Status           string  `json:"status"`
}

// OrderListResponse listado paginado de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// LotPlanRequest una entrada del desglose por empaques de una línea.
// PhysicalLotID referencia un lote existente (despachos contra un ingreso previo).
type LotPlanRequest struct {
	PackingTypeID string          `json:"packing_type_id"`
	Code          string          `json:"code"`
	Amount        decimal.Decimal `json:"amount"`
	Expiration    *string         `json:"expiration,omitempty"` // YYYY-MM-DD
	PhysicalLotID *string         `json:"physical_lot_id,omitempty"`
}

// LineRequest body para crear o actualizar una línea de orden.
// Lots vacío activa la política de lote por defecto (empaque "n/a").
type LineRequest struct {
	OrderID     string           `json:"order_id"`
	ProductID   string           `json:"product_id"`
	Amount      decimal.Decimal  `json:"amount"`
	ProductCode string           `json:"product_code,omitempty"`
	Expiration  *string          `json:"expiration,omitempty"` // YYYY-MM-DD
	Lots        []LotPlanRequest `json:"lots,omitempty"`
}

// LotPlanResponse representación de un plan de lote.
type LotPlanResponse struct {
	ID            string          `json:"id"`
	PackingTypeID string          `json:"packing_type_id"`
	PhysicalLotID *string         `json:"physical_lot_id,omitempty"`
	Code          string          `json:"code"`
	Amount        decimal.Decimal `json:"amount"`
	Expiration    *string         `json:"expiration,omitempty"`
}

// LineResponse representación de una línea con su desglose.
type LineResponse struct {
	ID            string            `json:"id"`
	OrderID       string            `json:"order_id"`
	StockRecordID string            `json:"stock_record_id"`
	Amount        decimal.Decimal   `json:"amount"`
	ProductCode   string            `json:"product_code,omitempty"`
	Expiration    *string           `json:"expiration,omitempty"`
	Lots          []LotPlanResponse `json:"lots"`
}
