package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

// StorehouseTypeUseCase casos de uso CRUD para tipos de almacén.
type StorehouseTypeUseCase struct {
	repo repository.StorehouseTypeRepository
}

// NewStorehouseTypeUseCase construye el caso de uso.
func NewStorehouseTypeUseCase(repo repository.StorehouseTypeRepository) *StorehouseTypeUseCase {
	return &StorehouseTypeUseCase{repo: repo}
}

// Create crea un tipo de almacén; rechaza códigos repetidos entre activos.
func (uc *StorehouseTypeUseCase) Create(in dto.StorehouseTypeRequest) (*dto.StorehouseTypeResponse, error) {
	exists, err := uc.repo.ExistsByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicateCode("StorehouseType", "code", in.Code)
	}
	now := time.Now()
	storehouseType := &entity.StorehouseType{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(storehouseType); err != nil {
		return nil, err
	}
	return toStorehouseTypeResponse(storehouseType), nil
}

// Update actualiza un tipo de almacén activo.
func (uc *StorehouseTypeUseCase) Update(id string, in dto.StorehouseTypeRequest) (*dto.StorehouseTypeResponse, error) {
	storehouseType, err := uc.findActive(id)
	if err != nil {
		return nil, err
	}
	storehouseType.Code = in.Code
	storehouseType.Name = in.Name
	storehouseType.Description = in.Description
	storehouseType.UpdatedAt = time.Now()
	if err := uc.repo.Update(storehouseType); err != nil {
		return nil, err
	}
	return toStorehouseTypeResponse(storehouseType), nil
}

// Delete borrado lógico del tipo de almacén.
func (uc *StorehouseTypeUseCase) Delete(id string) error {
	storehouseType, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if storehouseType == nil {
		return domain.NewNotFound("StorehouseType", id)
	}
	if !storehouseType.Active {
		return domain.NewAlreadyDeleted("StorehouseType", id)
	}
	storehouseType.Active = false
	storehouseType.UpdatedAt = time.Now()
	return uc.repo.Update(storehouseType)
}

// GetByID obtiene un tipo de almacén activo.
func (uc *StorehouseTypeUseCase) GetByID(id string) (*dto.StorehouseTypeResponse, error) {
	storehouseType, err := uc.findActive(id)
	if err != nil {
		return nil, err
	}
	return toStorehouseTypeResponse(storehouseType), nil
}

// List lista tipos de almacén activos con paginación.
func (uc *StorehouseTypeUseCase) List(page dto.PageRequest) ([]dto.StorehouseTypeResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StorehouseTypeResponse, 0, len(list))
	for _, st := range list {
		items = append(items, *toStorehouseTypeResponse(st))
	}
	return items, nil
}

func (uc *StorehouseTypeUseCase) findActive(id string) (*entity.StorehouseType, error) {
	storehouseType, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if storehouseType == nil || !storehouseType.Active {
		return nil, domain.NewNotFound("StorehouseType", id)
	}
	return storehouseType, nil
}

func toStorehouseTypeResponse(st *entity.StorehouseType) *dto.StorehouseTypeResponse {
	return &dto.StorehouseTypeResponse{
		ID:          st.ID,
		Code:        st.Code,
		Name:        st.Name,
		Description: st.Description,
	}
}
