package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores centinela del dominio (sin dependencias externas). Los handlers
// HTTP mapean con errors.Is sobre estos; los tipos de abajo llevan el detalle.
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrAlreadyDeleted       = errors.New("recurso ya eliminado")
	ErrValidation           = errors.New("error de validación")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrInsufficientLotStock = errors.New("stock insuficiente en el lote")
	ErrUnauthorized         = errors.New("no autorizado")
)

// NotFoundError indica que una entidad no existe o está inactiva.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no se encontró %s con identificador (%s)", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound construye un NotFoundError.
func NewNotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// DuplicateCodeError indica colisión de código entre entidades activas.
type DuplicateCodeError struct {
	Entity string
	Field  string
	Value  string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("Ya existe el codigo (%s)", e.Value)
}

func (e *DuplicateCodeError) Unwrap() error { return ErrDuplicate }

// NewDuplicateCode construye un DuplicateCodeError.
func NewDuplicateCode(entity, field, value string) error {
	return &DuplicateCodeError{Entity: entity, Field: field, Value: value}
}

// AlreadyDeletedError indica borrado lógico sobre una entidad ya inactiva.
type AlreadyDeletedError struct {
	Entity string
	ID     string
}

func (e *AlreadyDeletedError) Error() string {
	return fmt.Sprintf("%s con identificador (%s) ya fue eliminado", e.Entity, e.ID)
}

func (e *AlreadyDeletedError) Unwrap() error { return ErrAlreadyDeleted }

// NewAlreadyDeleted construye un AlreadyDeletedError.
func NewAlreadyDeleted(entity, id string) error {
	return &AlreadyDeletedError{Entity: entity, ID: id}
}

// ValidationError cubre reglas de negocio violadas: orden finalizada,
// cantidad total distinta a la suma por empaques, capacidad excedida, etc.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidation construye un ValidationError con formato.
func NewValidation(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// InsufficientStockError indica que el stock agregado no alcanza para el despacho.
type InsufficientStockError struct {
	Storehouse string
	Product    string
	Available  decimal.Decimal
	Requested  decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf(
		"El almacen (%s) no tiene la cantidad de (Cant. %s) Items (%s) necesarios. Solo se tienen (%s)",
		e.Storehouse, e.Requested.StringFixed(2), e.Product, e.Available.String(),
	)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// InsufficientLotStockError indica que un lote físico no tiene saldo para el despacho.
type InsufficientLotStockError struct {
	Product   string
	LotCode   string
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientLotStockError) Error() string {
	return fmt.Sprintf(
		"El producto (%s con codigo de empaque '%s') tiene un saldo disponible de (%s) y no puede despachar la cantidad de (%s) solicitada",
		e.Product, e.LotCode, e.Available.String(), e.Requested.String(),
	)
}

func (e *InsufficientLotStockError) Unwrap() error { return ErrInsufficientLotStock }
