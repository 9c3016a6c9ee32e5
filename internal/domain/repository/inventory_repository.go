package repository

import "github.com/jhoicas/warehouse-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
// Todas las lecturas devuelven los registros con su bodega y producto poblados.
type InventoryRepository interface {
	Create(inventory *entity.Inventory) error
	GetByID(id int64) (*entity.Inventory, error)
	ListAll() ([]*entity.Inventory, error)
	// Update solo persiste quantity, min_stock y max_stock; el vínculo
	// bodega/producto es inmutable.
	Update(inventory *entity.Inventory) error
	// Delete devuelve domain.ErrNotFound si el id no existe.
	Delete(id int64) error
	FindByWarehouse(warehouseID int64) ([]*entity.Inventory, error)
	FindByProduct(productID int64) ([]*entity.Inventory, error)
	FindByWarehouseAndProduct(warehouseID, productID int64) ([]*entity.Inventory, error)
	// FindLowStock devuelve los registros con quantity < min_stock.
	// Es un filtro en tiempo de consulta: se recalcula en cada llamada.
	FindLowStock() ([]*entity.Inventory, error)
}
