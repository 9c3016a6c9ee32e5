package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/warehouse-api/internal/domain"
	"github.com/jhoicas/warehouse-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL
// (usable con pool o tx). Todas las lecturas hacen join con bodega y producto:
// las respuestas siempre incrustan ambas asociaciones.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de persistencia para
// inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste un nuevo registro y asigna el id generado. Una violación de
// FK (referencia inexistente que escapó de la validación del caso de uso) se
// clasifica como entrada inválida.
func (r *InventoryRepo) Create(inventory *entity.Inventory) error {
	query := `
		INSERT INTO inventory (quantity, min_stock, max_stock, warehouse_id, product_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		inventory.Quantity, inventory.MinStock, inventory.MaxStock,
		inventory.WarehouseID, inventory.ProductID, inventory.CreatedAt, inventory.UpdatedAt,
	).Scan(&inventory.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: bodega o producto inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por id con bodega y producto; nil si no existe.
func (r *InventoryRepo) GetByID(id int64) (*entity.Inventory, error) {
	list, err := r.list(`WHERE i.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// ListAll devuelve todos los registros con sus asociaciones.
func (r *InventoryRepo) ListAll() ([]*entity.Inventory, error) {
	return r.list(``)
}

// Update persiste solo los campos de stock; el vínculo bodega/producto no se
// toca.
func (r *InventoryRepo) Update(inventory *entity.Inventory) error {
	query := `
		UPDATE inventory SET quantity = $2, min_stock = $3, max_stock = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		inventory.ID, inventory.Quantity, inventory.MinStock, inventory.MaxStock, inventory.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

// Delete elimina un registro por id.
func (r *InventoryRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FindByWarehouse devuelve el inventario de una bodega.
func (r *InventoryRepo) FindByWarehouse(warehouseID int64) ([]*entity.Inventory, error) {
	return r.list(`WHERE i.warehouse_id = $1`, warehouseID)
}

// FindByProduct devuelve los registros de un producto en todas las bodegas.
func (r *InventoryRepo) FindByProduct(productID int64) ([]*entity.Inventory, error) {
	return r.list(`WHERE i.product_id = $1`, productID)
}

// FindByWarehouseAndProduct devuelve los registros de un producto en una
// bodega concreta.
func (r *InventoryRepo) FindByWarehouseAndProduct(warehouseID, productID int64) ([]*entity.Inventory, error) {
	return r.list(`WHERE i.warehouse_id = $1 AND i.product_id = $2`, warehouseID, productID)
}

// FindLowStock devuelve los registros con quantity < min_stock. La condición
// se evalúa en la consulta contra el estado actual de cada fila.
func (r *InventoryRepo) FindLowStock() ([]*entity.Inventory, error) {
	return r.list(`WHERE i.quantity < i.min_stock`)
}

func (r *InventoryRepo) list(where string, args ...any) ([]*entity.Inventory, error) {
	query := `
		SELECT i.id, i.quantity, i.min_stock, i.max_stock, i.warehouse_id, i.product_id, i.created_at, i.updated_at,
		       w.id, w.name, w.address, w.capacity, w.manager_name, w.created_at, w.updated_at,
		       p.id, p.name, p.description, p.price, p.category, p.weight, p.created_at, p.updated_at
		FROM inventory i
		JOIN warehouse w ON w.id = i.warehouse_id
		JOIN product p ON p.id = i.product_id
		` + where + `
		ORDER BY i.id`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var (
			i entity.Inventory
			w entity.Warehouse
			p entity.Product
		)
		if err := rows.Scan(
			&i.ID, &i.Quantity, &i.MinStock, &i.MaxStock, &i.WarehouseID, &i.ProductID, &i.CreatedAt, &i.UpdatedAt,
			&w.ID, &w.Name, &w.Address, &w.Capacity, &w.ManagerName, &w.CreatedAt, &w.UpdatedAt,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Weight, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		i.Warehouse = &w
		i.Product = &p
		list = append(list, &i)
	}
	return list, rows.Err()
}
