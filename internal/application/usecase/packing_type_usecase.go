package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

// PackingTypeUseCase casos de uso CRUD para tipos de empaque.
type PackingTypeUseCase struct {
	repo repository.PackingTypeRepository
}

// NewPackingTypeUseCase construye el caso de uso.
func NewPackingTypeUseCase(repo repository.PackingTypeRepository) *PackingTypeUseCase {
	return &PackingTypeUseCase{repo: repo}
}

// Create crea un tipo de empaque; rechaza códigos repetidos y capacidad negativa.
func (uc *PackingTypeUseCase) Create(in dto.PackingTypeRequest) (*dto.PackingTypeResponse, error) {
	if in.Capacity.IsNegative() {
		return nil, domain.NewValidation("la capacidad no puede ser negativa (%s)", in.Capacity.String())
	}
	exists, err := uc.repo.ExistsByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicateCode("PackingType", "code", in.Code)
	}
	now := time.Now()
	packing := &entity.PackingType{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Capacity:  in.Capacity,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(packing); err != nil {
		return nil, err
	}
	return toPackingTypeResponse(packing), nil
}

// Update actualiza un tipo de empaque activo. El empaque reservado "n/a" no se modifica.
func (uc *PackingTypeUseCase) Update(id string, in dto.PackingTypeRequest) (*dto.PackingTypeResponse, error) {
	if in.Capacity.IsNegative() {
		return nil, domain.NewValidation("la capacidad no puede ser negativa (%s)", in.Capacity.String())
	}
	packing, err := uc.findActive(id)
	if err != nil {
		return nil, err
	}
	if packing.Code == entity.PackingCodeNA {
		return nil, domain.NewValidation("el empaque reservado (%s) no puede modificarse", entity.PackingCodeNA)
	}
	packing.Code = in.Code
	packing.Name = in.Name
	packing.Capacity = in.Capacity
	packing.UpdatedAt = time.Now()
	if err := uc.repo.Update(packing); err != nil {
		return nil, err
	}
	return toPackingTypeResponse(packing), nil
}

// Delete borrado lógico. El empaque reservado "n/a" no se elimina.
func (uc *PackingTypeUseCase) Delete(id string) error {
	packing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if packing == nil {
		return domain.NewNotFound("PackingType", id)
	}
	if !packing.Active {
		return domain.NewAlreadyDeleted("PackingType", id)
	}
	if packing.Code == entity.PackingCodeNA {
		return domain.NewValidation("el empaque reservado (%s) no puede eliminarse", entity.PackingCodeNA)
	}
	packing.Active = false
	packing.UpdatedAt = time.Now()
	return uc.repo.Update(packing)
}

// GetByID obtiene un tipo de empaque activo.
func (uc *PackingTypeUseCase) GetByID(id string) (*dto.PackingTypeResponse, error) {
	packing, err := uc.findActive(id)
	if err != nil {
		return nil, err
	}
	return toPackingTypeResponse(packing), nil
}

// List lista tipos de empaque activos con paginación.
func (uc *PackingTypeUseCase) List(page dto.PageRequest) ([]dto.PackingTypeResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PackingTypeResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPackingTypeResponse(p))
	}
	return items, nil
}

func (uc *PackingTypeUseCase) findActive(id string) (*entity.PackingType, error) {
	packing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if packing == nil || !packing.Active {
		return nil, domain.NewNotFound("PackingType", id)
	}
	return packing, nil
}

func toPackingTypeResponse(p *entity.PackingType) *dto.PackingTypeResponse {
	return &dto.PackingTypeResponse{
		ID:       p.ID,
		Code:     p.Code,
		Name:     p.Name,
		Capacity: p.Capacity,
	}
}
