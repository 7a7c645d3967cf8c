package entity

import "time"

// Storehouse almacén físico donde se guarda inventario.
type Storehouse struct {
	ID               string
	Code             string
	Name             string
	Address          string
	StorehouseTypeID *string
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// StorehouseType clasificación de almacenes (ej. central, tránsito).
type StorehouseType struct {
	ID          string
	Code        string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
