package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor; rechaza códigos repetidos entre activos.
func (uc *SupplierUseCase) Create(in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	exists, err := uc.repo.ExistsByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicateCode("Supplier", "code", in.Code)
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Contact:   in.Contact,
		Phone:     in.Phone,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza un proveedor activo.
func (uc *SupplierUseCase) Update(id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.findActive(id)
	if err != nil {
		return nil, err
	}
	supplier.Code = in.Code
	supplier.Name = in.Name
	supplier.Contact = in.Contact
	supplier.Phone = in.Phone
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete borrado lógico del proveedor.
func (uc *SupplierUseCase) Delete(id string) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.NewNotFound("Supplier", id)
	}
	if !supplier.Active {
		return domain.NewAlreadyDeleted("Supplier", id)
	}
	supplier.Active = false
	supplier.UpdatedAt = time.Now()
	return uc.repo.Update(supplier)
}

// GetByID obtiene un proveedor activo.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.findActive(id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores activos con paginación.
func (uc *SupplierUseCase) List(page dto.PageRequest) ([]dto.SupplierResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

func (uc *SupplierUseCase) findActive(id string) (*entity.Supplier, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil || !supplier.Active {
		return nil, domain.NewNotFound("Supplier", id)
	}
	return supplier, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:      s.ID,
		Code:    s.Code,
		Name:    s.Name,
		Contact: s.Contact,
		Phone:   s.Phone,
	}
}
