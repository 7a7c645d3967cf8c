package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

// OrderUseCase administra la cabecera de las órdenes: creación con código
// único entre activas, actualización con candado de estado, borrado lógico
// y consultas por id o código.
type OrderUseCase struct {
	orderRepo      repository.OrderRepository
	storehouseRepo repository.StorehouseRepository
	orderTypeRepo  repository.OrderTypeRepository
	supplierRepo   repository.SupplierRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	storehouseRepo repository.StorehouseRepository,
	orderTypeRepo repository.OrderTypeRepository,
	supplierRepo repository.SupplierRepository,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:      orderRepo,
		storehouseRepo: storehouseRepo,
		orderTypeRepo:  orderTypeRepo,
		supplierRepo:   supplierRepo,
	}
}

// Create crea una orden en estado borrador. Código vacío usa el centinela
// "S/C"; fechas vacías toman el momento actual.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.OrderRequest) (*dto.OrderResponse, error) {
	if in.Code != "" {
		exists, err := uc.orderRepo.ExistsByCode(in.Code)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.NewDuplicateCode("Order", "code", in.Code)
		}
	}

	if _, err := uc.resolveRefs(in); err != nil {
		return nil, err
	}

	regDate, err := parseDate(in.RegistrationDate)
	if err != nil {
		return nil, err
	}
	regTime, err := parseClock(in.RegistrationTime)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	code := in.Code
	if code == "" {
		code = entity.OrderCodeSentinel
	}
	order := &entity.Order{
		ID:               uuid.New().String(),
		Code:             code,
		RegistrationDate: valueOrNow(regDate, now),
		RegistrationTime: valueOrNow(regTime, now),
		Description:      in.Description,
		StorehouseID:     in.StorehouseID,
		OrderTypeID:      in.OrderTypeID,
		SupplierID:       in.SupplierID,
		Status:           entity.OrderStatusDraft,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Update actualiza la cabecera. Rechaza órdenes finalizadas y colisiones de
// código contra otra orden activa.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.OrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.findOrder(id)
	if err != nil {
		return nil, err
	}
	if err := checkNotFinalized(order); err != nil {
		return nil, err
	}

	if in.Code != "" && in.Code != entity.OrderCodeSentinel {
		exists, err := uc.orderRepo.ExistsByCodeAndIDNot(in.Code, order.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.NewDuplicateCode("Order", "code", in.Code)
		}
	}

	if _, err := uc.resolveRefs(in); err != nil {
		return nil, err
	}

	regDate, err := parseDate(in.RegistrationDate)
	if err != nil {
		return nil, err
	}
	regTime, err := parseClock(in.RegistrationTime)
	if err != nil {
		return nil, err
	}

	if in.Code != "" {
		order.Code = in.Code
	}
	order.Description = in.Description
	order.StorehouseID = in.StorehouseID
	order.OrderTypeID = in.OrderTypeID
	order.SupplierID = in.SupplierID
	if regDate != nil {
		order.RegistrationDate = *regDate
	}
	if regTime != nil {
		order.RegistrationTime = *regTime
	}
	order.UpdatedAt = time.Now()

	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete borrado lógico: marca la orden como inactiva.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.NewNotFound("Order", id)
	}
	if !order.Active {
		return domain.NewAlreadyDeleted("Order", id)
	}
	order.Active = false
	order.UpdatedAt = time.Now()
	return uc.orderRepo.Update(order)
}

// GetByID obtiene una orden activa por id.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.findOrder(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByCode obtiene una orden activa por código.
func (uc *OrderUseCase) GetByCode(ctx context.Context, code string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if order == nil || !order.Active {
		return nil, domain.NewNotFound("Order", code)
	}
	return toOrderResponse(order), nil
}

// List lista órdenes activas con paginación.
func (uc *OrderUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	list, err := uc.orderRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// resolveRefs valida almacén, tipo de orden y proveedor opcional.
func (uc *OrderUseCase) resolveRefs(in dto.OrderRequest) (*entity.OrderType, error) {
	storehouse, err := uc.storehouseRepo.GetByID(in.StorehouseID)
	if err != nil {
		return nil, err
	}
	if storehouse == nil || !storehouse.Active {
		return nil, domain.NewNotFound("Storehouse", in.StorehouseID)
	}
	orderType, err := uc.orderTypeRepo.GetByID(in.OrderTypeID)
	if err != nil {
		return nil, err
	}
	if orderType == nil || !orderType.Active {
		return nil, domain.NewNotFound("OrderType", in.OrderTypeID)
	}
	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil || !supplier.Active {
			return nil, domain.NewNotFound("Supplier", *in.SupplierID)
		}
	}
	return orderType, nil
}

func (uc *OrderUseCase) findOrder(id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || !order.Active {
		return nil, domain.NewNotFound("Order", id)
	}
	return order, nil
}

// checkNotFinalized candado de estado: toda mutación sobre una orden
// finalizada se rechaza por la misma vía.
func checkNotFinalized(order *entity.Order) error {
	if order.IsFinalized() {
		return domain.NewValidation(
			"Actualmente el estado de la orden esta en estado (%s) y no puede realizar esta operación",
			order.Status,
		)
	}
	return nil
}

func valueOrNow(t *time.Time, now time.Time) time.Time {
	if t != nil {
		return *t
	}
	return now
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:               o.ID,
		Code:             o.Code,
		Description:      o.Description,
		RegistrationDate: o.RegistrationDate.Format(dateLayout),
		RegistrationTime: o.RegistrationTime.Format(timeLayout),
		StorehouseID:     o.StorehouseID,
		OrderTypeID:      o.OrderTypeID,
		SupplierID:       o.SupplierID,
		Status:           o.Status,
	}
}
