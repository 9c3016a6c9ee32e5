package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/warehouse-api/internal/domain"
	"github.com/jhoicas/warehouse-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL
// (usable con pool o tx).
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
// Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste una nueva bodega y asigna el id generado.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouse (name, address, capacity, manager_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		warehouse.Name, warehouse.Address, warehouse.Capacity, warehouse.ManagerName,
		warehouse.CreatedAt, warehouse.UpdatedAt,
	).Scan(&warehouse.ID)
	if err != nil {
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por id con sus inventarios y productos; nil si no
// existe.
func (r *WarehouseRepo) GetByID(id int64) (*entity.Warehouse, error) {
	list, err := r.list(`WHERE w.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// ListAll devuelve todas las bodegas con inventarios y productos cargados de
// forma ávida en una sola consulta.
func (r *WarehouseRepo) ListAll() ([]*entity.Warehouse, error) {
	return r.list(``)
}

// Update sobreescribe los campos de negocio de la bodega.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouse SET name = $2, address = $3, capacity = $4, manager_name = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.Name, warehouse.Address, warehouse.Capacity,
		warehouse.ManagerName, warehouse.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// Delete elimina una bodega por id; la FK ON DELETE CASCADE elimina sus
// registros de inventario en la misma sentencia.
func (r *WarehouseRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM warehouse WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FindByName busca por subcadena del nombre sin distinguir mayúsculas.
func (r *WarehouseRepo) FindByName(name string) ([]*entity.Warehouse, error) {
	return r.list(`WHERE w.name ILIKE '%' || $1 || '%'`, name)
}

// FindByCapacityGreaterThan busca bodegas con capacidad estrictamente mayor.
func (r *WarehouseRepo) FindByCapacityGreaterThan(minCapacity decimal.Decimal) ([]*entity.Warehouse, error) {
	return r.list(`WHERE w.capacity > $1`, minCapacity)
}

// list consulta bodegas con LEFT JOIN a inventario y producto y arma el grafo
// en memoria. El ORDER BY por id de bodega mantiene las filas de cada bodega
// contiguas para el ensamblado.
func (r *WarehouseRepo) list(where string, args ...any) ([]*entity.Warehouse, error) {
	query := `
		SELECT w.id, w.name, w.address, w.capacity, w.manager_name, w.created_at, w.updated_at,
		       i.id, i.quantity, i.min_stock, i.max_stock, i.warehouse_id, i.product_id, i.created_at, i.updated_at,
		       p.id, p.name, p.description, p.price, p.category, p.weight, p.created_at, p.updated_at
		FROM warehouse w
		LEFT JOIN inventory i ON i.warehouse_id = w.id
		LEFT JOIN product p ON p.id = i.product_id
		` + where + `
		ORDER BY w.id, i.id`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var (
		list  []*entity.Warehouse
		index = make(map[int64]*entity.Warehouse)
	)
	for rows.Next() {
		var (
			w entity.Warehouse

			invID        *int64
			invQuantity  *int
			invMinStock  *int
			invMaxStock  *int
			invWarehouse *int64
			invProduct   *int64
			invCreatedAt *time.Time
			invUpdatedAt *time.Time

			prodID          *int64
			prodName        *string
			prodDescription *string
			prodPrice       *decimal.Decimal
			prodCategory    *string
			prodWeight      *decimal.Decimal
			prodCreatedAt   *time.Time
			prodUpdatedAt   *time.Time
		)
		if err := rows.Scan(
			&w.ID, &w.Name, &w.Address, &w.Capacity, &w.ManagerName, &w.CreatedAt, &w.UpdatedAt,
			&invID, &invQuantity, &invMinStock, &invMaxStock, &invWarehouse, &invProduct, &invCreatedAt, &invUpdatedAt,
			&prodID, &prodName, &prodDescription, &prodPrice, &prodCategory, &prodWeight, &prodCreatedAt, &prodUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}

		current, ok := index[w.ID]
		if !ok {
			w.Inventories = []*entity.Inventory{}
			current = &w
			index[w.ID] = current
			list = append(list, current)
		}
		if invID == nil {
			continue // bodega sin inventario (fila del LEFT JOIN)
		}
		inv := &entity.Inventory{
			ID:          *invID,
			Quantity:    *invQuantity,
			MinStock:    *invMinStock,
			MaxStock:    *invMaxStock,
			WarehouseID: *invWarehouse,
			ProductID:   *invProduct,
			CreatedAt:   *invCreatedAt,
			UpdatedAt:   *invUpdatedAt,
		}
		if prodID != nil {
			inv.Product = &entity.Product{
				ID:          *prodID,
				Name:        *prodName,
				Description: *prodDescription,
				Price:       *prodPrice,
				Category:    *prodCategory,
				Weight:      *prodWeight,
				CreatedAt:   *prodCreatedAt,
				UpdatedAt:   *prodUpdatedAt,
			}
		}
		current.Inventories = append(current.Inventories, inv)
	}
	return list, rows.Err()
}
