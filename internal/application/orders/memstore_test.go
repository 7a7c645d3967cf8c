package orders_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gestion-almacenes/almacenes-api/internal/application/orders"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/entity"
	"github.com/gestion-almacenes/almacenes-api/internal/domain/repository"
)

// memStore estado en memoria compartido por los repos fake. Los valores se
// guardan por copia, de modo que snapshot/restore simula el rollback de una
// transacción real.
type memStore struct {
	orders      map[string]entity.Order
	lines       map[string]entity.OrderLine
	lineOrder   []string
	plans       map[string]entity.LotPlan
	planOrder   []string
	lots        map[string]entity.PhysicalLot
	lotOrder    []string
	stocks      map[string]entity.StockRecord
	packings    map[string]entity.PackingType
	orderTypes  map[string]entity.OrderType
	storehouses map[string]entity.Storehouse
	suppliers   map[string]entity.Supplier
}

func newMemStore() *memStore {
	return &memStore{
		orders:      map[string]entity.Order{},
		lines:       map[string]entity.OrderLine{},
		plans:       map[string]entity.LotPlan{},
		lots:        map[string]entity.PhysicalLot{},
		stocks:      map[string]entity.StockRecord{},
		packings:    map[string]entity.PackingType{},
		orderTypes:  map[string]entity.OrderType{},
		storehouses: map[string]entity.Storehouse{},
		suppliers:   map[string]entity.Supplier{},
	}
}

type memSnapshot struct {
	orders    map[string]entity.Order
	lines     map[string]entity.OrderLine
	lineOrder []string
	plans     map[string]entity.LotPlan
	planOrder []string
	lots      map[string]entity.PhysicalLot
	lotOrder  []string
	stocks    map[string]entity.StockRecord
}

func (s *memStore) snapshot() memSnapshot {
	snap := memSnapshot{
		orders:    make(map[string]entity.Order, len(s.orders)),
		lines:     make(map[string]entity.OrderLine, len(s.lines)),
		lineOrder: append([]string(nil), s.lineOrder...),
		plans:     make(map[string]entity.LotPlan, len(s.plans)),
		planOrder: append([]string(nil), s.planOrder...),
		lots:      make(map[string]entity.PhysicalLot, len(s.lots)),
		lotOrder:  append([]string(nil), s.lotOrder...),
		stocks:    make(map[string]entity.StockRecord, len(s.stocks)),
	}
	for k, v := range s.orders {
		snap.orders[k] = v
	}
	for k, v := range s.lines {
		snap.lines[k] = v
	}
	for k, v := range s.plans {
		snap.plans[k] = v
	}
	for k, v := range s.lots {
		snap.lots[k] = v
	}
	for k, v := range s.stocks {
		snap.stocks[k] = v
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.orders = snap.orders
	s.lines = snap.lines
	s.lineOrder = snap.lineOrder
	s.plans = snap.plans
	s.planOrder = snap.planOrder
	s.lots = snap.lots
	s.lotOrder = snap.lotOrder
	s.stocks = snap.stocks
}

// ── repos fake ──

type memOrderRepo struct{ s *memStore }

func (r memOrderRepo) Create(o *entity.Order) error { r.s.orders[o.ID] = *o; return nil }
func (r memOrderRepo) Update(o *entity.Order) error { r.s.orders[o.ID] = *o; return nil }

func (r memOrderRepo) GetByID(id string) (*entity.Order, error) {
	if o, ok := r.s.orders[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (r memOrderRepo) GetByCode(code string) (*entity.Order, error) {
	for _, o := range r.s.orders {
		if o.Code == code && o.Active {
			return &o, nil
		}
	}
	return nil, nil
}

func (r memOrderRepo) GetForUpdate(id string) (*entity.Order, error) { return r.GetByID(id) }

func (r memOrderRepo) ExistsByCode(code string) (bool, error) {
	for _, o := range r.s.orders {
		if o.Code == code && o.Active {
			return true, nil
		}
	}
	return false, nil
}

func (r memOrderRepo) ExistsByCodeAndIDNot(code, id string) (bool, error) {
	for _, o := range r.s.orders {
		if o.Code == code && o.ID != id && o.Active {
			return true, nil
		}
	}
	return false, nil
}

func (r memOrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.s.orders {
		if o.Active {
			c := o
			out = append(out, &c)
		}
	}
	return out, nil
}

type memLineRepo struct{ s *memStore }

func (r memLineRepo) Create(l *entity.OrderLine) error {
	r.s.lines[l.ID] = *l
	r.s.lineOrder = append(r.s.lineOrder, l.ID)
	return nil
}

func (r memLineRepo) Update(l *entity.OrderLine) error { r.s.lines[l.ID] = *l; return nil }

func (r memLineRepo) GetByID(id string) (*entity.OrderLine, error) {
	if l, ok := r.s.lines[id]; ok {
		return &l, nil
	}
	return nil, nil
}

func (r memLineRepo) ListByOrder(orderID string) ([]*entity.OrderLine, error) {
	var out []*entity.OrderLine
	for _, id := range r.s.lineOrder {
		if l, ok := r.s.lines[id]; ok && l.OrderID == orderID && l.Active {
			c := l
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r memLineRepo) Delete(id string) error {
	delete(r.s.lines, id)
	for i, lid := range r.s.lineOrder {
		if lid == id {
			r.s.lineOrder = append(r.s.lineOrder[:i], r.s.lineOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (r memLineRepo) ExistsByOrderAndStock(orderID, stockRecordID string) (bool, error) {
	for _, l := range r.s.lines {
		if l.OrderID == orderID && l.StockRecordID == stockRecordID && l.Active {
			return true, nil
		}
	}
	return false, nil
}

type memLotPlanRepo struct{ s *memStore }

func (r memLotPlanRepo) Create(p *entity.LotPlan) error {
	r.s.plans[p.ID] = *p
	r.s.planOrder = append(r.s.planOrder, p.ID)
	return nil
}

func (r memLotPlanRepo) Update(p *entity.LotPlan) error { r.s.plans[p.ID] = *p; return nil }

func (r memLotPlanRepo) ListByLine(orderLineID string) ([]*entity.LotPlan, error) {
	var out []*entity.LotPlan
	for _, id := range r.s.planOrder {
		if p, ok := r.s.plans[id]; ok && p.OrderLineID == orderLineID && p.Active {
			c := p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r memLotPlanRepo) DeleteByLine(orderLineID string) error {
	kept := r.s.planOrder[:0]
	for _, id := range r.s.planOrder {
		if p, ok := r.s.plans[id]; ok && p.OrderLineID == orderLineID {
			delete(r.s.plans, id)
			continue
		}
		kept = append(kept, id)
	}
	r.s.planOrder = kept
	return nil
}

type memPhysicalLotRepo struct{ s *memStore }

func (r memPhysicalLotRepo) Create(l *entity.PhysicalLot) error {
	r.s.lots[l.ID] = *l
	r.s.lotOrder = append(r.s.lotOrder, l.ID)
	return nil
}

func (r memPhysicalLotRepo) Update(l *entity.PhysicalLot) error { r.s.lots[l.ID] = *l; return nil }

func (r memPhysicalLotRepo) GetByID(id string) (*entity.PhysicalLot, error) {
	if l, ok := r.s.lots[id]; ok {
		return &l, nil
	}
	return nil, nil
}

func (r memPhysicalLotRepo) GetForUpdate(id string) (*entity.PhysicalLot, error) {
	return r.GetByID(id)
}

func (r memPhysicalLotRepo) ListByStockRecord(stockRecordID string) ([]*entity.PhysicalLot, error) {
	var out []*entity.PhysicalLot
	for _, id := range r.s.lotOrder {
		if l, ok := r.s.lots[id]; ok && l.StockRecordID == stockRecordID && l.Active {
			c := l
			out = append(out, &c)
		}
	}
	return out, nil
}

type memStockRepo struct{ s *memStore }

func (r memStockRepo) Create(sr *entity.StockRecord) error { r.s.stocks[sr.ID] = *sr; return nil }

func (r memStockRepo) GetByID(id string) (*entity.StockRecord, error) {
	if sr, ok := r.s.stocks[id]; ok {
		return &sr, nil
	}
	return nil, nil
}

func (r memStockRepo) GetByStorehouseAndProduct(storehouseID, productID string) (*entity.StockRecord, error) {
	for _, sr := range r.s.stocks {
		if sr.StorehouseID == storehouseID && sr.ProductID == productID && sr.Active {
			c := sr
			return &c, nil
		}
	}
	return nil, nil
}

func (r memStockRepo) GetForUpdate(id string) (*entity.StockRecord, error) { return r.GetByID(id) }

func (r memStockRepo) UpdateAmount(id string, amount decimal.Decimal) error {
	sr := r.s.stocks[id]
	sr.AmountInStock = amount
	r.s.stocks[id] = sr
	return nil
}

func (r memStockRepo) List(limit, offset int) ([]*entity.StockRecord, error) {
	var out []*entity.StockRecord
	for _, sr := range r.s.stocks {
		if sr.Active {
			c := sr
			out = append(out, &c)
		}
	}
	return out, nil
}

type memPackingRepo struct{ s *memStore }

func (r memPackingRepo) Create(p *entity.PackingType) error { r.s.packings[p.ID] = *p; return nil }
func (r memPackingRepo) Update(p *entity.PackingType) error { r.s.packings[p.ID] = *p; return nil }

func (r memPackingRepo) GetByID(id string) (*entity.PackingType, error) {
	if p, ok := r.s.packings[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r memPackingRepo) GetByCode(code string) (*entity.PackingType, error) {
	for _, p := range r.s.packings {
		if p.Code == code && p.Active {
			c := p
			return &c, nil
		}
	}
	return nil, nil
}

func (r memPackingRepo) ExistsByCode(code string) (bool, error) {
	p, _ := r.GetByCode(code)
	return p != nil, nil
}

func (r memPackingRepo) List(limit, offset int) ([]*entity.PackingType, error) {
	var out []*entity.PackingType
	for _, p := range r.s.packings {
		if p.Active {
			c := p
			out = append(out, &c)
		}
	}
	return out, nil
}

type memOrderTypeRepo struct{ s *memStore }

func (r memOrderTypeRepo) Create(ot *entity.OrderType) error { r.s.orderTypes[ot.ID] = *ot; return nil }
func (r memOrderTypeRepo) Update(ot *entity.OrderType) error { r.s.orderTypes[ot.ID] = *ot; return nil }

func (r memOrderTypeRepo) GetByID(id string) (*entity.OrderType, error) {
	if ot, ok := r.s.orderTypes[id]; ok {
		return &ot, nil
	}
	return nil, nil
}

func (r memOrderTypeRepo) ExistsByCode(code string) (bool, error) {
	for _, ot := range r.s.orderTypes {
		if ot.Code == code && ot.Active {
			return true, nil
		}
	}
	return false, nil
}

func (r memOrderTypeRepo) List(limit, offset int) ([]*entity.OrderType, error) { return nil, nil }

type memStorehouseRepo struct{ s *memStore }

func (r memStorehouseRepo) Create(sh *entity.Storehouse) error { r.s.storehouses[sh.ID] = *sh; return nil }
func (r memStorehouseRepo) Update(sh *entity.Storehouse) error { r.s.storehouses[sh.ID] = *sh; return nil }

func (r memStorehouseRepo) GetByID(id string) (*entity.Storehouse, error) {
	if sh, ok := r.s.storehouses[id]; ok {
		return &sh, nil
	}
	return nil, nil
}

func (r memStorehouseRepo) ExistsByCode(code string) (bool, error) { return false, nil }
func (r memStorehouseRepo) ExistsByCodeAndIDNot(code, id string) (bool, error) {
	return false, nil
}
func (r memStorehouseRepo) List(limit, offset int) ([]*entity.Storehouse, error) { return nil, nil }

type memSupplierRepo struct{ s *memStore }

func (r memSupplierRepo) Create(sp *entity.Supplier) error { r.s.suppliers[sp.ID] = *sp; return nil }
func (r memSupplierRepo) Update(sp *entity.Supplier) error { r.s.suppliers[sp.ID] = *sp; return nil }

func (r memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	if sp, ok := r.s.suppliers[id]; ok {
		return &sp, nil
	}
	return nil, nil
}

func (r memSupplierRepo) ExistsByCode(code string) (bool, error)           { return false, nil }
func (r memSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) { return nil, nil }

// memTxRunner simula la transacción: toma un snapshot del estado y lo
// restaura si fn falla, de modo que los tests pueden verificar que nada
// quedó persistido tras un error.
type memTxRunner struct{ s *memStore }

var _ orders.TxRunner = (*memTxRunner)(nil)

func (r *memTxRunner) Run(ctx context.Context, fn func(
	lineRepo repository.OrderLineRepository,
	lotPlanRepo repository.LotPlanRepository,
	packingRepo repository.PackingTypeRepository,
) error) error {
	snap := r.s.snapshot()
	if err := fn(memLineRepo{r.s}, memLotPlanRepo{r.s}, memPackingRepo{r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

func (r *memTxRunner) RunExecution(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	lineRepo repository.OrderLineRepository,
	lotPlanRepo repository.LotPlanRepository,
	lotRepo repository.PhysicalLotRepository,
	stockRepo repository.StockRecordRepository,
) error) error {
	snap := r.s.snapshot()
	if err := fn(memOrderRepo{r.s}, memLineRepo{r.s}, memLotPlanRepo{r.s},
		memPhysicalLotRepo{r.s}, memStockRepo{r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}
