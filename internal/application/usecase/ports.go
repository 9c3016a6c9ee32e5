package usecase

import (
	"context"

	"github.com/jhoicas/warehouse-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Cierra la ventana de lost-update en los
// read-modify-write de las actualizaciones y hace atómica la validación
// referencial al crear inventario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		warehouseRepo repository.WarehouseRepository,
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}
