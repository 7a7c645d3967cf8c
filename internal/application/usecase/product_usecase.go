package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	unitRepo repository.UnitMeasurementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, unitRepo repository.UnitMeasurementRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, unitRepo: unitRepo}
}

// Create crea un producto; rechaza códigos repetidos entre activos.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*dto.ProductResponse, error) {
	exists, err := uc.repo.ExistsByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicateCode("Product", "code", in.Code)
	}
	if in.UnitMeasurementID != nil {
		unit, err := uc.unitRepo.GetByID(*in.UnitMeasurementID)
		if err != nil {
			return nil, err
		}
		if unit == nil || !unit.Active {
			return nil, domain.NewNotFound("UnitMeasurement", *in.UnitMeasurementID)
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		Code:              in.Code,
		Name:              in.Name,
		Description:       in.Description,
		UnitMeasurementID: in.UnitMeasurementID,
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto activo.
func (uc *ProductUseCase) Update(id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.findActive(id)
	if err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByCodeAndIDNot(in.Code, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicateCode("Product", "code", in.Code)
	}
	product.Code = in.Code
	product.Name = in.Name
	product.Description = in.Description
	product.UnitMeasurementID = in.UnitMeasurementID
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete borrado lógico del producto.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.NewNotFound("Product", id)
	}
	if !product.Active {
		return domain.NewAlreadyDeleted("Product", id)
	}
	product.Active = false
	product.UpdatedAt = time.Now()
	return uc.repo.Update(product)
}

// GetByID obtiene un producto activo.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.findActive(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos activos con paginación.
func (uc *ProductUseCase) List(page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

func (uc *ProductUseCase) findActive(id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, domain.NewNotFound("Product", id)
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID,
		Code:              p.Code,
		Name:              p.Name,
		Description:       p.Description,
		UnitMeasurementID: p.UnitMeasurementID,
	}
}
