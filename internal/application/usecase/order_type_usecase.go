package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

// OrderTypeUseCase casos de uso CRUD para tipos de orden.
type OrderTypeUseCase struct {
	repo repository.OrderTypeRepository
}

// NewOrderTypeUseCase construye el caso de uso.
func NewOrderTypeUseCase(repo repository.OrderTypeRepository) *OrderTypeUseCase {
	return &OrderTypeUseCase{repo: repo}
}

// Create crea un tipo de orden. Action debe ser RECEIPT o DISPATCH.
func (uc *OrderTypeUseCase) Create(in dto.OrderTypeRequest) (*dto.OrderTypeResponse, error) {
	if err := validateAction(in.Action); err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicateCode("OrderType", "code", in.Code)
	}
	now := time.Now()
	orderType := &entity.OrderType{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Action:    in.Action,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(orderType); err != nil {
		return nil, err
	}
	return toOrderTypeResponse(orderType), nil
}

// Update actualiza un tipo de orden activo.
func (uc *OrderTypeUseCase) Update(id string, in dto.OrderTypeRequest) (*dto.OrderTypeResponse, error) {
	if err := validateAction(in.Action); err != nil {
		return nil, err
	}
	orderType, err := uc.findActive(id)
	if err != nil {
		return nil, err
	}
	orderType.Code = in.Code
	orderType.Name = in.Name
	orderType.Action = in.Action
	orderType.UpdatedAt = time.Now()
	if err := uc.repo.Update(orderType); err != nil {
		return nil, err
	}
	return toOrderTypeResponse(orderType), nil
}

// Delete borrado lógico del tipo de orden.
func (uc *OrderTypeUseCase) Delete(id string) error {
	orderType, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if orderType == nil {
		return domain.NewNotFound("OrderType", id)
	}
	if !orderType.Active {
		return domain.NewAlreadyDeleted("OrderType", id)
	}
	orderType.Active = false
	orderType.UpdatedAt = time.Now()
	return uc.repo.Update(orderType)
}

// GetByID obtiene un tipo de orden activo.
func (uc *OrderTypeUseCase) GetByID(id string) (*dto.OrderTypeResponse, error) {
	orderType, err := uc.findActive(id)
	if err != nil {
		return nil, err
	}
	return toOrderTypeResponse(orderType), nil
}

// List lista tipos de orden activos con paginación.
func (uc *OrderTypeUseCase) List(page dto.PageRequest) ([]dto.OrderTypeResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderTypeResponse, 0, len(list))
	for _, ot := range list {
		items = append(items, *toOrderTypeResponse(ot))
	}
	return items, nil
}

func (uc *OrderTypeUseCase) findActive(id string) (*entity.OrderType, error) {
	orderType, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if orderType == nil || !orderType.Active {
		return nil, domain.NewNotFound("OrderType", id)
	}
	return orderType, nil
}

func validateAction(action string) error {
	if action != entity.ActionReceipt && action != entity.ActionDispatch {
		return domain.NewValidation("acción inválida (%s), se espera RECEIPT o DISPATCH", action)
	}
	return nil
}

func toOrderTypeResponse(ot *entity.OrderType) *dto.OrderTypeResponse {
	return &dto.OrderTypeResponse{
		ID:     ot.ID,
		Code:   ot.Code,
		Name:   ot.Name,
		Action: ot.Action,
	}
}
