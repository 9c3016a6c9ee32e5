package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/warehouse-api/internal/application/usecase"
	"github.com/jhoicas/warehouse-api/internal/domain"
	"github.com/jhoicas/warehouse-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-api/internal/domain/repository"
	apphttp "github.com/jhoicas/warehouse-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// App de prueba
//
// buildTestApp levanta la aplicación Fiber completa (router incluido) sobre
// repositorios en memoria, para ejercer el contrato HTTP real: rutas, códigos
// de estado y forma de los cuerpos, sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp() *fiber.App {
	s := newStore()
	tx := &stubTx{s}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		WarehouseUC: usecase.NewWarehouseUseCase(&warehouseStore{s}, tx),
		ProductUC:   usecase.NewProductUseCase(&productStore{s}, tx),
		InventoryUC: usecase.NewInventoryUseCase(&inventoryStore{s}, tx),
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON opcional y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decode deserializa el cuerpo de una respuesta en out.
func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ─── Almacenamiento en memoria ───────────────────────────────────────────────

type store struct {
	warehouses  map[int64]*entity.Warehouse
	products    map[int64]*entity.Product
	inventories map[int64]*entity.Inventory
	nextID      int64
}

func newStore() *store {
	return &store{
		warehouses:  map[int64]*entity.Warehouse{},
		products:    map[int64]*entity.Product{},
		inventories: map[int64]*entity.Inventory{},
	}
}

func (s *store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *store) loadInventory(inv *entity.Inventory) *entity.Inventory {
	out := *inv
	out.Warehouse = s.warehouses[inv.WarehouseID]
	out.Product = s.products[inv.ProductID]
	return &out
}

func (s *store) loadWarehouse(w *entity.Warehouse) *entity.Warehouse {
	out := *w
	out.Inventories = []*entity.Inventory{}
	for _, id := range sortedKeys(s.inventories) {
		if s.inventories[id].WarehouseID == w.ID {
			out.Inventories = append(out.Inventories, s.loadInventory(s.inventories[id]))
		}
	}
	return &out
}

func sortedKeys[V any](m map[int64]V) []int64 {
	out := make([]int64, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type warehouseStore struct{ s *store }

func (r *warehouseStore) Create(w *entity.Warehouse) error {
	w.ID = r.s.id()
	cp := *w
	r.s.warehouses[w.ID] = &cp
	return nil
}

func (r *warehouseStore) GetByID(id int64) (*entity.Warehouse, error) {
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	return r.s.loadWarehouse(w), nil
}

func (r *warehouseStore) ListAll() ([]*entity.Warehouse, error) {
	return r.filter(func(*entity.Warehouse) bool { return true })
}

func (r *warehouseStore) Update(w *entity.Warehouse) error {
	cp := *w
	cp.Inventories = nil
	r.s.warehouses[w.ID] = &cp
	return nil
}

func (r *warehouseStore) Delete(id int64) error {
	if _, ok := r.s.warehouses[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.warehouses, id)
	for invID, inv := range r.s.inventories {
		if inv.WarehouseID == id {
			delete(r.s.inventories, invID)
		}
	}
	return nil
}

func (r *warehouseStore) FindByName(name string) ([]*entity.Warehouse, error) {
	needle := strings.ToLower(name)
	return r.filter(func(w *entity.Warehouse) bool {
		return strings.Contains(strings.ToLower(w.Name), needle)
	})
}

func (r *warehouseStore) FindByCapacityGreaterThan(minCapacity decimal.Decimal) ([]*entity.Warehouse, error) {
	return r.filter(func(w *entity.Warehouse) bool { return w.Capacity.GreaterThan(minCapacity) })
}

func (r *warehouseStore) filter(keep func(*entity.Warehouse) bool) ([]*entity.Warehouse, error) {
	out := []*entity.Warehouse{}
	for _, id := range sortedKeys(r.s.warehouses) {
		if keep(r.s.warehouses[id]) {
			out = append(out, r.s.loadWarehouse(r.s.warehouses[id]))
		}
	}
	return out, nil
}

type productStore struct{ s *store }

func (r *productStore) Create(p *entity.Product) error {
	p.ID = r.s.id()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *productStore) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *productStore) ListAll() ([]*entity.Product, error) {
	return r.filter(func(*entity.Product) bool { return true })
}

func (r *productStore) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *productStore) Delete(id int64) error {
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	for _, inv := range r.s.inventories {
		if inv.ProductID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.products, id)
	return nil
}

func (r *productStore) FindByCategory(category string) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return p.Category == category })
}

func (r *productStore) FindByName(name string) ([]*entity.Product, error) {
	needle := strings.ToLower(name)
	return r.filter(func(p *entity.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	})
}

func (r *productStore) FindByPriceBetween(low, high decimal.Decimal) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool {
		return p.Price.GreaterThanOrEqual(low) && p.Price.LessThanOrEqual(high)
	})
}

func (r *productStore) ListCategories() ([]string, error) {
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

func (r *productStore) filter(keep func(*entity.Product) bool) ([]*entity.Product, error) {
	out := []*entity.Product{}
	for _, id := range sortedKeys(r.s.products) {
		if keep(r.s.products[id]) {
			cp := *r.s.products[id]
			out = append(out, &cp)
		}
	}
	return out, nil
}

type inventoryStore struct{ s *store }

func (r *inventoryStore) Create(inv *entity.Inventory) error {
	inv.ID = r.s.id()
	cp := *inv
	cp.Warehouse, cp.Product = nil, nil
	r.s.inventories[inv.ID] = &cp
	return nil
}

func (r *inventoryStore) GetByID(id int64) (*entity.Inventory, error) {
	inv, ok := r.s.inventories[id]
	if !ok {
		return nil, nil
	}
	return r.s.loadInventory(inv), nil
}

func (r *inventoryStore) ListAll() ([]*entity.Inventory, error) {
	return r.filter(func(*entity.Inventory) bool { return true })
}

func (r *inventoryStore) Update(inv *entity.Inventory) error {
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

func (r *inventoryStore) Delete(id int64) error {
	if _, ok := r.s.inventories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.inventories, id)
	return nil
}

func (r *inventoryStore) FindByWarehouse(warehouseID int64) ([]*entity.Inventory, error) {
	return r.filter(func(inv *entity.Inventory) bool { return inv.WarehouseID == warehouseID })
}

func (r *inventoryStore) FindByProduct(productID int64) ([]*entity.Inventory, error) {
	return r.filter(func(inv *entity.Inventory) bool { return inv.ProductID == productID })
}

func (r *inventoryStore) FindByWarehouseAndProduct(warehouseID, productID int64) ([]*entity.Inventory, error) {
	return r.filter(func(inv *entity.Inventory) bool {
		return inv.WarehouseID == warehouseID && inv.ProductID == productID
	})
}

func (r *inventoryStore) FindLowStock() ([]*entity.Inventory, error) {
	return r.filter(func(inv *entity.Inventory) bool { return inv.Quantity < inv.MinStock })
}

func (r *inventoryStore) filter(keep func(*entity.Inventory) bool) ([]*entity.Inventory, error) {
	out := []*entity.Inventory{}
	for _, id := range sortedKeys(r.s.inventories) {
		if keep(r.s.inventories[id]) {
			out = append(out, r.s.loadInventory(r.s.inventories[id]))
		}
	}
	return out, nil
}

// stubTx ejecuta el callback directamente sobre el store, sin transacción.
type stubTx struct{ s *store }

func (t *stubTx) Run(_ context.Context, fn func(
	repository.WarehouseRepository,
	repository.ProductRepository,
	repository.InventoryRepository,
) error) error {
	return fn(&warehouseStore{t.s}, &productStore{t.s}, &inventoryStore{t.s})
}
