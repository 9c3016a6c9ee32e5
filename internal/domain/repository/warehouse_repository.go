package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/warehouse-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
// Todas las lecturas devuelven las bodegas con sus inventarios y productos
// asociados ya poblados.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id int64) (*entity.Warehouse, error)
	ListAll() ([]*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	// Delete elimina la bodega y, en cascada, sus registros de inventario.
	// Devuelve domain.ErrNotFound si el id no existe.
	Delete(id int64) error
	// FindByName busca por subcadena del nombre, sin distinguir mayúsculas.
	FindByName(name string) ([]*entity.Warehouse, error)
	// FindByCapacityGreaterThan busca bodegas con capacidad estrictamente mayor.
	FindByCapacityGreaterThan(minCapacity decimal.Decimal) ([]*entity.Warehouse, error)
}
