package inventory_test

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/stockmaster-api/internal/application/inventory"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// memStore estado compartido en memoria para los tests del motor.
// Reemplaza a PostgreSQL: el fakeTxRunner serializa las "transacciones" con un
// mutex y restaura un snapshot completo cuando fn falla, imitando el Rollback.
type memStore struct {
	balances    map[entity.StockKey]int64
	movements   []*entity.StockMovement
	nextMoveID  int64
	receipts    map[string]entity.Receipt
	deliveries  map[string]entity.Delivery
	transfers   map[string]entity.Transfer
	adjustments map[string]entity.Adjustment
	products    map[string]entity.Product
	locations   map[string]entity.Location
}

func newMemStore() *memStore {
	return &memStore{
		balances:    map[entity.StockKey]int64{},
		receipts:    map[string]entity.Receipt{},
		deliveries:  map[string]entity.Delivery{},
		transfers:   map[string]entity.Transfer{},
		adjustments: map[string]entity.Adjustment{},
		products:    map[string]entity.Product{},
		locations:   map[string]entity.Location{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	c.nextMoveID = s.nextMoveID
	for k, v := range s.balances {
		c.balances[k] = v
	}
	c.movements = append([]*entity.StockMovement(nil), s.movements...)
	for k, v := range s.receipts {
		v.Lines = append([]entity.ReceiptLine(nil), v.Lines...)
		c.receipts[k] = v
	}
	for k, v := range s.deliveries {
		v.Lines = append([]entity.DeliveryLine(nil), v.Lines...)
		c.deliveries[k] = v
	}
	for k, v := range s.transfers {
		c.transfers[k] = v
	}
	for k, v := range s.adjustments {
		c.adjustments[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.locations {
		c.locations[k] = v
	}
	return c
}

// fakeTxRunner serializa cada Run con un mutex y revierte el estado si fn
// devuelve error, igual que haría la transacción real.
type fakeTxRunner struct {
	mu    sync.Mutex
	store *memStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(tx inventory.TxRepos) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := r.store.clone()
	err := fn(inventory.TxRepos{
		Stock:       &fakeStockRepo{store: r.store},
		Movements:   &fakeMovementRepo{store: r.store},
		Receipts:    &fakeReceiptRepo{store: r.store},
		Deliveries:  &fakeDeliveryRepo{store: r.store},
		Transfers:   &fakeTransferRepo{store: r.store},
		Adjustments: &fakeAdjustmentRepo{store: r.store},
	})
	if err != nil {
		*r.store = *snapshot
	}
	return err
}

// ── Saldos ────────────────────────────────────────────────────────────────────

type fakeStockRepo struct{ store *memStore }

var _ repository.StockBalanceRepository = (*fakeStockRepo)(nil)

func (f *fakeStockRepo) Get(productID, locationID string) (*entity.StockBalance, error) {
	k := entity.StockKey{ProductID: productID, LocationID: locationID}
	return &entity.StockBalance{ProductID: productID, LocationID: locationID, Quantity: f.store.balances[k]}, nil
}

func (f *fakeStockRepo) GetForUpdate(productID, locationID string) (*entity.StockBalance, error) {
	return f.Get(productID, locationID)
}

func (f *fakeStockRepo) Upsert(b *entity.StockBalance) error {
	f.store.balances[b.Key()] = b.Quantity
	return nil
}

func (f *fakeStockRepo) ListByProduct(productID string) ([]*entity.StockBalance, error) {
	var out []*entity.StockBalance
	for k, q := range f.store.balances {
		if k.ProductID == productID {
			out = append(out, &entity.StockBalance{ProductID: k.ProductID, LocationID: k.LocationID, Quantity: q})
		}
	}
	return out, nil
}

// ── Libro de movimientos ──────────────────────────────────────────────────────

type fakeMovementRepo struct{ store *memStore }

var _ repository.StockMovementRepository = (*fakeMovementRepo)(nil)

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	f.store.nextMoveID++
	m.ID = f.store.nextMoveID
	f.store.movements = append(f.store.movements, m)
	return nil
}

func (f *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(f.store.movements) - 1; i >= 0; i-- {
		m := f.store.movements[i]
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.LocationID != "" && m.LocationID != filter.LocationID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		out = append(out, m)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) SumDeltas(productID, locationID string) (int64, error) {
	var sum int64
	for _, m := range f.store.movements {
		if m.ProductID == productID && m.LocationID == locationID {
			sum += m.Delta
		}
	}
	return sum, nil
}

// ── Recepciones ───────────────────────────────────────────────────────────────

type fakeReceiptRepo struct{ store *memStore }

var _ repository.ReceiptRepository = (*fakeReceiptRepo)(nil)

func (f *fakeReceiptRepo) Create(r *entity.Receipt) error {
	f.store.receipts[r.ID] = *r
	return nil
}

func (f *fakeReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	r, ok := f.store.receipts[id]
	if !ok {
		return nil, nil
	}
	r.Lines = append([]entity.ReceiptLine(nil), r.Lines...)
	return &r, nil
}

func (f *fakeReceiptRepo) GetForUpdate(id string) (*entity.Receipt, error) {
	return f.GetByID(id)
}

func (f *fakeReceiptRepo) List(status entity.DocumentStatus, warehouseID string, limit int) ([]*entity.Receipt, error) {
	var out []*entity.Receipt
	for id := range f.store.receipts {
		r, _ := f.GetByID(id)
		if status != "" && r.Status != status {
			continue
		}
		if warehouseID != "" && r.WarehouseID != warehouseID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReceiptRepo) AddLine(line *entity.ReceiptLine) error {
	r := f.store.receipts[line.ReceiptID]
	r.Lines = append(r.Lines, *line)
	f.store.receipts[line.ReceiptID] = r
	return nil
}

func (f *fakeReceiptRepo) UpdateLineReceived(lineID string, quantityReceived int64) error {
	for id, r := range f.store.receipts {
		for i := range r.Lines {
			if r.Lines[i].ID == lineID {
				r.Lines[i].QuantityReceived = quantityReceived
				f.store.receipts[id] = r
				return nil
			}
		}
	}
	return nil
}

func (f *fakeReceiptRepo) UpdateStatus(id string, status entity.DocumentStatus) error {
	r := f.store.receipts[id]
	r.Status = status
	f.store.receipts[id] = r
	return nil
}

// ── Entregas ──────────────────────────────────────────────────────────────────

type fakeDeliveryRepo struct{ store *memStore }

var _ repository.DeliveryRepository = (*fakeDeliveryRepo)(nil)

func (f *fakeDeliveryRepo) Create(d *entity.Delivery) error {
	f.store.deliveries[d.ID] = *d
	return nil
}

func (f *fakeDeliveryRepo) GetByID(id string) (*entity.Delivery, error) {
	d, ok := f.store.deliveries[id]
	if !ok {
		return nil, nil
	}
	d.Lines = append([]entity.DeliveryLine(nil), d.Lines...)
	return &d, nil
}

func (f *fakeDeliveryRepo) GetForUpdate(id string) (*entity.Delivery, error) {
	return f.GetByID(id)
}

func (f *fakeDeliveryRepo) List(status entity.DocumentStatus, warehouseID string, limit int) ([]*entity.Delivery, error) {
	var out []*entity.Delivery
	for id := range f.store.deliveries {
		d, _ := f.GetByID(id)
		if status != "" && d.Status != status {
			continue
		}
		if warehouseID != "" && d.WarehouseID != warehouseID {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDeliveryRepo) AddLine(line *entity.DeliveryLine) error {
	d := f.store.deliveries[line.DeliveryID]
	d.Lines = append(d.Lines, *line)
	f.store.deliveries[line.DeliveryID] = d
	return nil
}

func (f *fakeDeliveryRepo) UpdateLineDelivered(lineID string, quantityDelivered int64) error {
	for id, d := range f.store.deliveries {
		for i := range d.Lines {
			if d.Lines[i].ID == lineID {
				d.Lines[i].QuantityDelivered = quantityDelivered
				f.store.deliveries[id] = d
				return nil
			}
		}
	}
	return nil
}

func (f *fakeDeliveryRepo) UpdateStatus(id string, status entity.DocumentStatus) error {
	d := f.store.deliveries[id]
	d.Status = status
	f.store.deliveries[id] = d
	return nil
}

// ── Traslados y ajustes ───────────────────────────────────────────────────────

type fakeTransferRepo struct{ store *memStore }

var _ repository.TransferRepository = (*fakeTransferRepo)(nil)

func (f *fakeTransferRepo) Create(t *entity.Transfer) error {
	f.store.transfers[t.ID] = *t
	return nil
}

func (f *fakeTransferRepo) GetByID(id string) (*entity.Transfer, error) {
	t, ok := f.store.transfers[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (f *fakeTransferRepo) List(status entity.DocumentStatus, limit int) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for id := range f.store.transfers {
		t, _ := f.GetByID(id)
		if status != "" && t.Status != status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

type fakeAdjustmentRepo struct{ store *memStore }

var _ repository.AdjustmentRepository = (*fakeAdjustmentRepo)(nil)

func (f *fakeAdjustmentRepo) Create(a *entity.Adjustment) error {
	f.store.adjustments[a.ID] = *a
	return nil
}

func (f *fakeAdjustmentRepo) GetByID(id string) (*entity.Adjustment, error) {
	a, ok := f.store.adjustments[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeAdjustmentRepo) List(productID string, limit int) ([]*entity.Adjustment, error) {
	var out []*entity.Adjustment
	for id := range f.store.adjustments {
		a, _ := f.GetByID(id)
		if productID != "" && a.ProductID != productID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// ── Catálogo (fuera de tx) ────────────────────────────────────────────────────

type fakeProductRepo struct{ store *memStore }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.store.products[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.store.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range f.store.products {
		if p.SKU == sku {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) List(categoryID, search string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for id := range f.store.products {
		p, _ := f.GetByID(id)
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.store.products[p.ID] = *p
	return nil
}

func (f *fakeProductRepo) ListLowStock(limit int) ([]*entity.Product, error) {
	return nil, nil
}

type fakeLocationRepo struct{ store *memStore }

var _ repository.LocationRepository = (*fakeLocationRepo)(nil)

func (f *fakeLocationRepo) Create(l *entity.Location) error {
	f.store.locations[l.ID] = *l
	return nil
}

func (f *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	l, ok := f.store.locations[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (f *fakeLocationRepo) ListByWarehouse(warehouseID string) ([]*entity.Location, error) {
	var out []*entity.Location
	for id := range f.store.locations {
		l, _ := f.GetByID(id)
		if l.WarehouseID == warehouseID {
			out = append(out, l)
		}
	}
	return out, nil
}

// ── Armado del entorno de test ────────────────────────────────────────────────

type testEnv struct {
	store  *memStore
	runner *fakeTxRunner
	engine *inventory.Engine
}

func newTestEnv() *testEnv {
	store := newMemStore()
	runner := &fakeTxRunner{store: store}
	engine := inventory.NewEngine(runner, &fakeProductRepo{store: store}, &fakeLocationRepo{store: store})
	return &testEnv{store: store, runner: runner, engine: engine}
}

func (e *testEnv) addProduct(id string) {
	e.store.products[id] = entity.Product{ID: id, SKU: "SKU-" + id, Name: "Producto " + id, Active: true}
}

func (e *testEnv) addLocation(id string) {
	e.store.locations[id] = entity.Location{ID: id, WarehouseID: "wh-1", Code: id}
}

func (e *testEnv) setBalance(productID, locationID string, qty int64) {
	e.store.balances[entity.StockKey{ProductID: productID, LocationID: locationID}] = qty
	// El libro debe cuadrar con el saldo sembrado.
	e.store.nextMoveID++
	e.store.movements = append(e.store.movements, &entity.StockMovement{
		ID:             e.store.nextMoveID,
		ProductID:      productID,
		LocationID:     locationID,
		Delta:          qty,
		Type:           entity.MovementTypeReceipt,
		SourceDocument: "SEED",
		CreatedAt:      time.Now(),
	})
}

func (e *testEnv) balance(productID, locationID string) int64 {
	return e.store.balances[entity.StockKey{ProductID: productID, LocationID: locationID}]
}
