package entity

import "time"

// Product producto o ítem del catálogo de almacén.
type Product struct {
	ID                string
	Code              string
	Name              string
	Description       string
	UnitMeasurementID *string
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// UnitMeasurement unidad de medida de los productos (ej. kilogramo, caja).
type UnitMeasurement struct {
	ID           string
	Code         string
	Name         string
	Abbreviation string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
