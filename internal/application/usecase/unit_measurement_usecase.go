package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

// UnitMeasurementUseCase casos de uso CRUD para unidades de medida.
type UnitMeasurementUseCase struct {
	repo repository.UnitMeasurementRepository
}

// NewUnitMeasurementUseCase construye el caso de uso.
func NewUnitMeasurementUseCase(repo repository.UnitMeasurementRepository) *UnitMeasurementUseCase {
	return &UnitMeasurementUseCase{repo: repo}
}

// Create crea una unidad de medida; rechaza códigos repetidos entre activas.
func (uc *UnitMeasurementUseCase) Create(in dto.UnitMeasurementRequest) (*dto.UnitMeasurementResponse, error) {
	exists, err := uc.repo.ExistsByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicateCode("UnitMeasurement", "code", in.Code)
	}
	now := time.Now()
	unit := &entity.UnitMeasurement{
		ID:           uuid.New().String(),
		Code:         in.Code,
		Name:         in.Name,
		Abbreviation: in.Abbreviation,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	return toUnitMeasurementResponse(unit), nil
}

// Update actualiza una unidad de medida activa.
func (uc *UnitMeasurementUseCase) Update(id string, in dto.UnitMeasurementRequest) (*dto.UnitMeasurementResponse, error) {
	unit, err := uc.findActive(id)
	if err != nil {
		return nil, err
	}
	unit.Code = in.Code
	unit.Name = in.Name
	unit.Abbreviation = in.Abbreviation
	unit.UpdatedAt = time.Now()
	if err := uc.repo.Update(unit); err != nil {
		return nil, err
	}
	return toUnitMeasurementResponse(unit), nil
}

// Delete borrado lógico de la unidad de medida.
func (uc *UnitMeasurementUseCase) Delete(id string) error {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if unit == nil {
		return domain.NewNotFound("UnitMeasurement", id)
	}
	if !unit.Active {
		return domain.NewAlreadyDeleted("UnitMeasurement", id)
	}
	unit.Active = false
	unit.UpdatedAt = time.Now()
	return uc.repo.Update(unit)
}

// GetByID obtiene una unidad de medida activa.
func (uc *UnitMeasurementUseCase) GetByID(id string) (*dto.UnitMeasurementResponse, error) {
	unit, err := uc.findActive(id)
	if err != nil {
		return nil, err
	}
	return toUnitMeasurementResponse(unit), nil
}

// List lista unidades de medida activas con paginación.
func (uc *UnitMeasurementUseCase) List(page dto.PageRequest) ([]dto.UnitMeasurementResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UnitMeasurementResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUnitMeasurementResponse(u))
	}
	return items, nil
}

func (uc *UnitMeasurementUseCase) findActive(id string) (*entity.UnitMeasurement, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil || !unit.Active {
		return nil, domain.NewNotFound("UnitMeasurement", id)
	}
	return unit, nil
}

func toUnitMeasurementResponse(u *entity.UnitMeasurement) *dto.UnitMeasurementResponse {
	return &dto.UnitMeasurementResponse{
		ID:           u.ID,
		Code:         u.Code,
		Name:         u.Name,
		Abbreviation: u.Abbreviation,
	}
}
