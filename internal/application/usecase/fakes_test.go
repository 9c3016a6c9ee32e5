package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/warehouse-api/internal/domain"
	"github.com/jhoicas/warehouse-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// Los tres repositorios comparten un memStore para poder reproducir las
// relaciones entre tablas: carga ávida de asociaciones, cascada al borrar
// bodegas y rechazo al borrar productos referenciados.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	warehouses  map[int64]*entity.Warehouse
	products    map[int64]*entity.Product
	inventories map[int64]*entity.Inventory
	nextID      int64
}

func newMemStore() *memStore {
	return &memStore{
		warehouses:  map[int64]*entity.Warehouse{},
		products:    map[int64]*entity.Product{},
		inventories: map[int64]*entity.Inventory{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

// loadInventory puebla las asociaciones de un registro, como hacen los JOIN
// del adaptador real.
func (s *memStore) loadInventory(inv *entity.Inventory) *entity.Inventory {
	out := *inv
	out.Warehouse = s.warehouses[inv.WarehouseID]
	out.Product = s.products[inv.ProductID]
	return &out
}

func (s *memStore) loadWarehouse(w *entity.Warehouse) *entity.Warehouse {
	out := *w
	out.Inventories = []*entity.Inventory{}
	ids := make([]int64, 0)
	for id, inv := range s.inventories {
		if inv.WarehouseID == w.ID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		out.Inventories = append(out.Inventories, s.loadInventory(s.inventories[id]))
	}
	return &out
}

// ─── WarehouseRepository ─────────────────────────────────────────────────────

type memWarehouseRepo struct{ s *memStore }

func (r *memWarehouseRepo) Create(w *entity.Warehouse) error {
	w.ID = r.s.id()
	cp := *w
	r.s.warehouses[w.ID] = &cp
	return nil
}

func (r *memWarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	return r.s.loadWarehouse(w), nil
}

func (r *memWarehouseRepo) ListAll() ([]*entity.Warehouse, error) {
	return r.filter(func(*entity.Warehouse) bool { return true })
}

func (r *memWarehouseRepo) Update(w *entity.Warehouse) error {
	cp := *w
	cp.Inventories = nil
	r.s.warehouses[w.ID] = &cp
	return nil
}

func (r *memWarehouseRepo) Delete(id int64) error {
	if _, ok := r.s.warehouses[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.warehouses, id)
	// ON DELETE CASCADE sobre inventory
	for invID, inv := range r.s.inventories {
		if inv.WarehouseID == id {
			delete(r.s.inventories, invID)
		}
	}
	return nil
}

func (r *memWarehouseRepo) FindByName(name string) ([]*entity.Warehouse, error) {
	needle := strings.ToLower(name)
	return r.filter(func(w *entity.Warehouse) bool {
		return strings.Contains(strings.ToLower(w.Name), needle)
	})
}

func (r *memWarehouseRepo) FindByCapacityGreaterThan(minCapacity decimal.Decimal) ([]*entity.Warehouse, error) {
	return r.filter(func(w *entity.Warehouse) bool {
		return w.Capacity.GreaterThan(minCapacity)
	})
}

func (r *memWarehouseRepo) filter(keep func(*entity.Warehouse) bool) ([]*entity.Warehouse, error) {
	ids := make([]int64, 0)
	for id, w := range r.s.warehouses {
		if keep(w) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Warehouse, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.s.loadWarehouse(r.s.warehouses[id]))
	}
	return out, nil
}

// ─── ProductRepository ───────────────────────────────────────────────────────

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	p.ID = r.s.id()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) ListAll() ([]*entity.Product, error) {
	return r.filter(func(*entity.Product) bool { return true })
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(id int64) error {
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	// ON DELETE RESTRICT: un producto referenciado por inventario no se borra
	for _, inv := range r.s.inventories {
		if inv.ProductID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.products, id)
	return nil
}

func (r *memProductRepo) FindByCategory(category string) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return p.Category == category })
}

func (r *memProductRepo) FindByName(name string) ([]*entity.Product, error) {
	needle := strings.ToLower(name)
	return r.filter(func(p *entity.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	})
}

func (r *memProductRepo) FindByPriceBetween(low, high decimal.Decimal) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool {
		return p.Price.GreaterThanOrEqual(low) && p.Price.LessThanOrEqual(high)
	})
}

func (r *memProductRepo) ListCategories() ([]string, error) {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range r.s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *memProductRepo) filter(keep func(*entity.Product) bool) ([]*entity.Product, error) {
	ids := make([]int64, 0)
	for id, p := range r.s.products {
		if keep(p) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		cp := *r.s.products[id]
		out = append(out, &cp)
	}
	return out, nil
}

// ─── InventoryRepository ─────────────────────────────────────────────────────

type memInventoryRepo struct{ s *memStore }

func (r *memInventoryRepo) Create(inv *entity.Inventory) error {
	inv.ID = r.s.id()
	cp := *inv
	cp.Warehouse, cp.Product = nil, nil
	r.s.inventories[inv.ID] = &cp
	return nil
}

func (r *memInventoryRepo) GetByID(id int64) (*entity.Inventory, error) {
	inv, ok := r.s.inventories[id]
	if !ok {
		return nil, nil
	}
	return r.s.loadInventory(inv), nil
}

func (r *memInventoryRepo) ListAll() ([]*entity.Inventory, error) {
	return r.filter(func(*entity.Inventory) bool { return true })
}

func (r *memInventoryRepo) Update(inv *entity.Inventory) error {
	// Solo los campos de stock son mutables; el vínculo se conserva tal cual
	// está persistido.
	stored, ok := r.s.inventories[inv.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Quantity = inv.Quantity
	stored.MinStock = inv.MinStock
	stored.MaxStock = inv.MaxStock
	stored.UpdatedAt = inv.UpdatedAt
	return nil
}

func (r *memInventoryRepo) Delete(id int64) error {
	if _, ok := r.s.inventories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.inventories, id)
	return nil
}

func (r *memInventoryRepo) FindByWarehouse(warehouseID int64) ([]*entity.Inventory, error) {
	return r.filter(func(inv *entity.Inventory) bool { return inv.WarehouseID == warehouseID })
}

func (r *memInventoryRepo) FindByProduct(productID int64) ([]*entity.Inventory, error) {
	return r.filter(func(inv *entity.Inventory) bool { return inv.ProductID == productID })
}

func (r *memInventoryRepo) FindByWarehouseAndProduct(warehouseID, productID int64) ([]*entity.Inventory, error) {
	return r.filter(func(inv *entity.Inventory) bool {
		return inv.WarehouseID == warehouseID && inv.ProductID == productID
	})
}

func (r *memInventoryRepo) FindLowStock() ([]*entity.Inventory, error) {
	return r.filter(func(inv *entity.Inventory) bool { return inv.Quantity < inv.MinStock })
}

func (r *memInventoryRepo) filter(keep func(*entity.Inventory) bool) ([]*entity.Inventory, error) {
	ids := make([]int64, 0)
	for id, inv := range r.s.inventories {
		if keep(inv) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Inventory, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.s.loadInventory(r.s.inventories[id]))
	}
	return out, nil
}

// ─── Constructores de entidades para sembrar el store ────────────────────────

func productEntity(name, category, price string) *entity.Product {
	return &entity.Product{
		Name:        name,
		Description: "descripción de " + name,
		Price:       decimal.RequireFromString(price),
		Category:    category,
		Weight:      decimal.RequireFromString("1.5"),
	}
}

func inventoryEntity(warehouseID, productID int64, quantity, minStock, maxStock int) *entity.Inventory {
	return &entity.Inventory{
		Quantity:    quantity,
		MinStock:    minStock,
		MaxStock:    maxStock,
		WarehouseID: warehouseID,
		ProductID:   productID,
	}
}

// ─── TxRunner ────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback directamente sobre el store compartido, sin
// semántica transaccional real.
type fakeTxRunner struct{ s *memStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	repository.WarehouseRepository,
	repository.ProductRepository,
	repository.InventoryRepository,
) error) error {
	return fn(&memWarehouseRepo{t.s}, &memProductRepo{t.s}, &memInventoryRepo{t.s})
}
