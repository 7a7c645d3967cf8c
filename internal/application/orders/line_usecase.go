package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gestion-almacenes/almacenes-api/internal/application/dto"
	"github.com/gestion-almacenes/almacenes-api/internal/domain"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/almacen"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

// LineUseCase registra líneas de orden. Cada alta o modificación persiste la
// línea y su desglose por empaques como una sola unidad transaccional, y
// verifica el invariante suma(planes) == cantidad de la línea.
type LineUseCase struct {
	txRunner    TxRunner
	orderRepo   repository.OrderRepository
	stockRepo   repository.StockRecordRepository
	lineRepo    repository.OrderLineRepository
	lotPlanRepo repository.LotPlanRepository
	// rejectDuplicates rechaza una segunda línea para el mismo
	// (orden, almacén, producto). Ver OrdersConfig.
	rejectDuplicates bool
}

// NewLineUseCase construye el caso de uso.
func NewLineUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	stockRepo repository.StockRecordRepository,
	lineRepo repository.OrderLineRepository,
	lotPlanRepo repository.LotPlanRepository,
	rejectDuplicates bool,
) *LineUseCase {
	return &LineUseCase{
		txRunner:         txRunner,
		orderRepo:        orderRepo,
		stockRepo:        stockRepo,
		lineRepo:         lineRepo,
		lotPlanRepo:      lotPlanRepo,
		rejectDuplicates: rejectDuplicates,
	}
}

// CreateLine crea una línea contra el stock del (almacén de la orden,
// producto). Si la cantidad total no coincide con la suma del desglose, la
// operación completa se descarta (línea y planes).
func (uc *LineUseCase) CreateLine(ctx context.Context, in dto.LineRequest) (*dto.LineResponse, error) {
	order, err := uc.findOrder(in.OrderID)
	if err != nil {
		return nil, err
	}
	if err := checkNotFinalized(order); err != nil {
		return nil, err
	}
	if in.Amount.IsNegative() {
		return nil, domain.NewValidation("la cantidad no puede ser negativa (%s)", in.Amount.String())
	}

	stock, err := uc.findStock(order.StorehouseID, in.ProductID)
	if err != nil {
		return nil, err
	}

	if uc.rejectDuplicates {
		exists, err := uc.lineRepo.ExistsByOrderAndStock(order.ID, stock.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.NewValidation("Ya fue registrado en la orden el Item (%s)", stock.ProductName)
		}
	}

	expiration, err := parseDatePtr(in.Expiration)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entries, err := uc.buildEntries(in, now)
	if err != nil {
		return nil, err
	}

	line := &entity.OrderLine{
		ID:            uuid.New().String(),
		OrderID:       order.ID,
		StockRecordID: stock.ID,
		Amount:        in.Amount,
		ProductCode:   in.ProductCode,
		Expiration:    expiration,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(
		lineRepo repository.OrderLineRepository,
		lotPlanRepo repository.LotPlanRepository,
		packingRepo repository.PackingTypeRepository,
	) error {
		if err := lineRepo.Create(line); err != nil {
			return err
		}
		return uc.reconcileAndCheck(line, entries, lotPlanRepo, packingRepo, now)
	})
	if err != nil {
		return nil, err
	}

	return uc.toLineResponse(line)
}

// UpdateLine reemplaza stock, cantidad y desglose de la línea: los planes
// existentes se eliminan y se reconstruyen, re-verificando el invariante.
func (uc *LineUseCase) UpdateLine(ctx context.Context, id string, in dto.LineRequest) (*dto.LineResponse, error) {
	line, err := uc.findLine(id)
	if err != nil {
		return nil, err
	}
	order, err := uc.findOrder(in.OrderID)
	if err != nil {
		return nil, err
	}
	if err := checkNotFinalized(order); err != nil {
		return nil, err
	}
	if in.Amount.IsNegative() {
		return nil, domain.NewValidation("la cantidad no puede ser negativa (%s)", in.Amount.String())
	}

	stock, err := uc.findStock(order.StorehouseID, in.ProductID)
	if err != nil {
		return nil, err
	}
	expiration, err := parseDatePtr(in.Expiration)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entries, err := uc.buildEntries(in, now)
	if err != nil {
		return nil, err
	}

	line.OrderID = order.ID
	line.StockRecordID = stock.ID
	line.Amount = in.Amount
	line.ProductCode = in.ProductCode
	line.Expiration = expiration
	line.UpdatedAt = now

	err = uc.txRunner.Run(ctx, func(
		lineRepo repository.OrderLineRepository,
		lotPlanRepo repository.LotPlanRepository,
		packingRepo repository.PackingTypeRepository,
	) error {
		if err := lineRepo.Update(line); err != nil {
			return err
		}
		if err := lotPlanRepo.DeleteByLine(line.ID); err != nil {
			return err
		}
		return uc.reconcileAndCheck(line, entries, lotPlanRepo, packingRepo, now)
	})
	if err != nil {
		return nil, err
	}

	return uc.toLineResponse(line)
}

// DeleteLine elimina la línea y sus planes en cascada, dentro de una transacción.
func (uc *LineUseCase) DeleteLine(ctx context.Context, id string) error {
	line, err := uc.findLine(id)
	if err != nil {
		return err
	}
	order, err := uc.findOrder(line.OrderID)
	if err != nil {
		return err
	}
	if err := checkNotFinalized(order); err != nil {
		return err
	}

	return uc.txRunner.Run(ctx, func(
		lineRepo repository.OrderLineRepository,
		lotPlanRepo repository.LotPlanRepository,
		_ repository.PackingTypeRepository,
	) error {
		if err := lotPlanRepo.DeleteByLine(line.ID); err != nil {
			return err
		}
		return lineRepo.Delete(line.ID)
	})
}

// GetByID obtiene una línea activa con su desglose.
func (uc *LineUseCase) GetByID(ctx context.Context, id string) (*dto.LineResponse, error) {
	line, err := uc.findLine(id)
	if err != nil {
		return nil, err
	}
	return uc.toLineResponse(line)
}

// ListByOrder lista las líneas activas de una orden con sus desgloses.
func (uc *LineUseCase) ListByOrder(ctx context.Context, orderID string) ([]dto.LineResponse, error) {
	if _, err := uc.findOrder(orderID); err != nil {
		return nil, err
	}
	lines, err := uc.lineRepo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LineResponse, 0, len(lines))
	for _, line := range lines {
		resp, err := uc.toLineResponse(line)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// reconcileAndCheck delega el desglose al reconciliador y verifica el
// invariante de suma; un desajuste aborta la transacción completa.
func (uc *LineUseCase) reconcileAndCheck(
	line *entity.OrderLine,
	entries []almacen.LotEntry,
	lotPlanRepo repository.LotPlanRepository,
	packingRepo repository.PackingTypeRepository,
	now time.Time,
) error {
	rec := lotReconciler{packingRepo: packingRepo, lotPlanRepo: lotPlanRepo}
	total, err := rec.reconcile(line, entries, now)
	if err != nil {
		return err
	}
	if !total.Equal(line.Amount) {
		return domain.NewValidation(
			"La cantidad total (%s) es distinta a la cantidad por empaques (%s) que se envio.",
			line.Amount.String(), total.String(),
		)
	}
	return nil
}

// buildEntries convierte el desglose del request; vacío activa la política
// de lote por defecto.
func (uc *LineUseCase) buildEntries(in dto.LineRequest, now time.Time) ([]almacen.LotEntry, error) {
	if len(in.Lots) == 0 {
		return almacen.DefaultLotBreakdown(in.Amount, now), nil
	}
	entries := make([]almacen.LotEntry, 0, len(in.Lots))
	for _, l := range in.Lots {
		var expiration *time.Time
		if l.Expiration != nil {
			t, err := parseDate(*l.Expiration)
			if err != nil {
				return nil, err
			}
			expiration = t
		}
		entries = append(entries, almacen.LotEntry{
			PackingTypeID: l.PackingTypeID,
			Code:          l.Code,
			Amount:        l.Amount,
			Expiration:    expiration,
			PhysicalLotID: l.PhysicalLotID,
		})
	}
	return entries, nil
}

func (uc *LineUseCase) findOrder(id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil || !order.Active {
		return nil, domain.NewNotFound("Order", id)
	}
	return order, nil
}

func (uc *LineUseCase) findLine(id string) (*entity.OrderLine, error) {
	line, err := uc.lineRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if line == nil || !line.Active {
		return nil, domain.NewNotFound("OrderLine", id)
	}
	return line, nil
}

func (uc *LineUseCase) findStock(storehouseID, productID string) (*entity.StockRecord, error) {
	stock, err := uc.stockRepo.GetByStorehouseAndProduct(storehouseID, productID)
	if err != nil {
		return nil, err
	}
	if stock == nil || !stock.Active {
		return nil, domain.NewNotFound("Stock", storehouseID+"/"+productID)
	}
	return stock, nil
}

func (uc *LineUseCase) toLineResponse(line *entity.OrderLine) (*dto.LineResponse, error) {
	plans, err := uc.lotPlanRepo.ListByLine(line.ID)
	if err != nil {
		return nil, err
	}
	lots := make([]dto.LotPlanResponse, 0, len(plans))
	for _, p := range plans {
		lots = append(lots, dto.LotPlanResponse{
			ID:            p.ID,
			PackingTypeID: p.PackingTypeID,
			PhysicalLotID: p.PhysicalLotID,
			Code:          p.Code,
			Amount:        p.Amount,
			Expiration:    formatDatePtr(p.Expiration),
		})
	}
	return &dto.LineResponse{
		ID:            line.ID,
		OrderID:       line.OrderID,
		StockRecordID: line.StockRecordID,
		Amount:        line.Amount,
		ProductCode:   line.ProductCode,
		Expiration:    formatDatePtr(line.Expiration),
		Lots:          lots,
	}, nil
}
