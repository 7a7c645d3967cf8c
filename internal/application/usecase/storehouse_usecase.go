package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

// StorehouseUseCase casos de uso CRUD para almacenes.
type StorehouseUseCase struct {
	repo     repository.StorehouseRepository
	typeRepo repository.StorehouseTypeRepository
}

// NewStorehouseUseCase construye el caso de uso.
func NewStorehouseUseCase(repo repository.StorehouseRepository, typeRepo repository.StorehouseTypeRepository) *StorehouseUseCase {
	return &StorehouseUseCase{repo: repo, typeRepo: typeRepo}
}

// Create crea un almacén; rechaza códigos repetidos entre activos.
func (uc *StorehouseUseCase) Create(in dto.StorehouseRequest) (*dto.StorehouseResponse, error) {
	exists, err := uc.repo.ExistsByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicateCode("Storehouse", "code", in.Code)
	}
	if in.StorehouseTypeID != nil {
		st, err := uc.typeRepo.GetByID(*in.StorehouseTypeID)
		if err != nil {
			return nil, err
		}
		if st == nil || !st.Active {
			return nil, domain.NewNotFound("StorehouseType", *in.StorehouseTypeID)
		}
	}
	now := time.Now()
	storehouse := &entity.Storehouse{
		ID:               uuid.New().String(),
		Code:             in.Code,
		Name:             in.Name,
		Address:          in.Address,
		StorehouseTypeID: in.StorehouseTypeID,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(storehouse); err != nil {
		return nil, err
	}
	return toStorehouseResponse(storehouse), nil
}

// Update actualiza un almacén activo.
func (uc *StorehouseUseCase) Update(id string, in dto.StorehouseRequest) (*dto.StorehouseResponse, error) {
	storehouse, err := uc.findActive(id)
	if err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByCodeAndIDNot(in.Code, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicateCode("Storehouse", "code", in.Code)
	}
	storehouse.Code = in.Code
	storehouse.Name = in.Name
	storehouse.Address = in.Address
	storehouse.StorehouseTypeID = in.StorehouseTypeID
	storehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(storehouse); err != nil {
		return nil, err
	}
	return toStorehouseResponse(storehouse), nil
}

// Delete borrado lógico del almacén.
func (uc *StorehouseUseCase) Delete(id string) error {
	storehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if storehouse == nil {
		return domain.NewNotFound("Storehouse", id)
	}
	if !storehouse.Active {
		return domain.NewAlreadyDeleted("Storehouse", id)
	}
	storehouse.Active = false
	storehouse.UpdatedAt = time.Now()
	return uc.repo.Update(storehouse)
}

// GetByID obtiene un almacén activo.
func (uc *StorehouseUseCase) GetByID(id string) (*dto.StorehouseResponse, error) {
	storehouse, err := uc.findActive(id)
	if err != nil {
		return nil, err
	}
	return toStorehouseResponse(storehouse), nil
}

// List lista almacenes activos con paginación.
func (uc *StorehouseUseCase) List(page dto.PageRequest) ([]dto.StorehouseResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StorehouseResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStorehouseResponse(s))
	}
	return items, nil
}

func (uc *StorehouseUseCase) findActive(id string) (*entity.Storehouse, error) {
	storehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if storehouse == nil || !storehouse.Active {
		return nil, domain.NewNotFound("Storehouse", id)
	}
	return storehouse, nil
}

func toStorehouseResponse(s *entity.Storehouse) *dto.StorehouseResponse {
	return &dto.StorehouseResponse{
		ID:               s.ID,
		Code:             s.Code,
		Name:             s.Name,
		Address:          s.Address,
		StorehouseTypeID: s.StorehouseTypeID,
	}
}
