package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

// StockRecordUseCase administra los registros de stock por (almacén, producto).
// El alta crea el par con saldo cero; las cantidades solo las mueve el motor
// de órdenes al ejecutar.
type StockRecordUseCase struct {
	repo           repository.StockRecordRepository
	storehouseRepo repository.StorehouseRepository
	productRepo    repository.ProductRepository
}

// NewStockRecordUseCase construye el caso de uso.
func NewStockRecordUseCase(
	repo repository.StockRecordRepository,
	storehouseRepo repository.StorehouseRepository,
	productRepo repository.ProductRepository,
) *StockRecordUseCase {
	return &StockRecordUseCase{repo: repo, storehouseRepo: storehouseRepo, productRepo: productRepo}
}

// Create registra el par (almacén, producto) con stock cero.
func (uc *StockRecordUseCase) Create(storehouseID, productID string) (*dto.StockRecordResponse, error) {
	storehouse, err := uc.storehouseRepo.GetByID(storehouseID)
	if err != nil {
		return nil, err
	}
	if storehouse == nil || !storehouse.Active {
		return nil, domain.NewNotFound("Storehouse", storehouseID)
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, domain.NewNotFound("Product", productID)
	}
	existing, err := uc.repo.GetByStorehouseAndProduct(storehouseID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Active {
		return nil, domain.NewValidation(
			"ya existe un registro de stock para el almacen (%s) y el producto (%s)",
			storehouse.Name, product.Name,
		)
	}
	now := time.Now()
	record := &entity.StockRecord{
		ID:             uuid.New().String(),
		StorehouseID:   storehouseID,
		ProductID:      productID,
		AmountInStock:  decimal.Zero,
		StorehouseName: storehouse.Name,
		ProductName:    product.Name,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(record); err != nil {
		return nil, err
	}
	return toStockRecordResponse(record), nil
}

// GetByID obtiene un registro de stock activo.
func (uc *StockRecordUseCase) GetByID(id string) (*dto.StockRecordResponse, error) {
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil || !record.Active {
		return nil, domain.NewNotFound("Stock", id)
	}
	return toStockRecordResponse(record), nil
}

// List lista registros de stock activos con paginación.
func (uc *StockRecordUseCase) List(page dto.PageRequest) ([]dto.StockRecordResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockRecordResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toStockRecordResponse(r))
	}
	return items, nil
}

func toStockRecordResponse(r *entity.StockRecord) *dto.StockRecordResponse {
	return &dto.StockRecordResponse{
		ID:            r.ID,
		StorehouseID:  r.StorehouseID,
		ProductID:     r.ProductID,
		AmountInStock: r.AmountInStock,
	}
}
