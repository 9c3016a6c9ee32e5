package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/warehouse-api/internal/application/dto"
	"github.com/jhoicas/warehouse-api/internal/domain"
	"github.com/jhoicas/warehouse-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-api/internal/domain/repository"
)

// InventoryUseCase casos de uso para los registros de inventario: CRUD más los
// buscadores por bodega, por producto, por ambos, y el filtro de stock bajo.
type InventoryUseCase struct {
	repo repository.InventoryRepository
	tx   TxRunner
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, tx TxRunner) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, tx: tx}
}

// Create crea un registro de inventario vinculado a una bodega y un producto.
// Ambas referencias se validan explícitamente dentro de la misma transacción
// del insert: referenciar un id inexistente es un error de entrada con mensaje
// claro, no un fallo opaco de constraint.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	var out *dto.InventoryResponse
	err := uc.tx.Run(ctx, func(warehouses repository.WarehouseRepository, products repository.ProductRepository, inventories repository.InventoryRepository) error {
		warehouse, err := warehouses.GetByID(in.Warehouse.ID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return fmt.Errorf("%w: la bodega %d no existe", domain.ErrInvalidInput, in.Warehouse.ID)
		}
		product, err := products.GetByID(in.Product.ID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: el producto %d no existe", domain.ErrInvalidInput, in.Product.ID)
		}
		now := time.Now()
		inventory := &entity.Inventory{
			Quantity:    in.Quantity,
			MinStock:    in.MinStock,
			MaxStock:    in.MaxStock,
			WarehouseID: warehouse.ID,
			ProductID:   product.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := inventories.Create(inventory); err != nil {
			return err
		}
		inventory.Warehouse = warehouse
		inventory.Product = product
		out = toInventoryResponse(inventory)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un registro por id; nil si no existe.
func (uc *InventoryUseCase) GetByID(id int64) (*dto.InventoryResponse, error) {
	inventory, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inventory == nil {
		return nil, nil
	}
	return toInventoryResponse(inventory), nil
}

// List devuelve todos los registros con su bodega y producto asociados.
func (uc *InventoryUseCase) List() ([]dto.InventoryResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// Update actualiza quantity, minStock y maxStock. El vínculo bodega/producto
// es inmutable: no se puede reasignar un registro a otra bodega ni a otro
// producto. El read-modify-write corre en una sola transacción.
func (uc *InventoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	var out *dto.InventoryResponse
	err := uc.tx.Run(ctx, func(_ repository.WarehouseRepository, _ repository.ProductRepository, inventories repository.InventoryRepository) error {
		inventory, err := inventories.GetByID(id)
		if err != nil {
			return err
		}
		if inventory == nil {
			return domain.ErrNotFound
		}
		inventory.Quantity = in.Quantity
		inventory.MinStock = in.MinStock
		inventory.MaxStock = in.MaxStock
		inventory.UpdatedAt = time.Now()
		if err := inventories.Update(inventory); err != nil {
			return err
		}
		out = toInventoryResponse(inventory)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un registro de inventario.
func (uc *InventoryUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// FindByWarehouse devuelve el inventario de una bodega.
func (uc *InventoryUseCase) FindByWarehouse(warehouseID int64) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.FindByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// FindByProduct devuelve los registros de inventario de un producto en todas
// las bodegas.
func (uc *InventoryUseCase) FindByProduct(productID int64) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.FindByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// FindByWarehouseAndProduct devuelve los registros de un producto en una
// bodega concreta.
func (uc *InventoryUseCase) FindByWarehouseAndProduct(warehouseID, productID int64) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.FindByWarehouseAndProduct(warehouseID, productID)
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

// FindLowStock devuelve los registros con quantity < minStock. El filtro se
// evalúa contra el estado actual en cada llamada; nunca se cachea, porque
// quantity y minStock cambian de forma independiente entre llamadas.
func (uc *InventoryUseCase) FindLowStock() ([]dto.InventoryResponse, error) {
	list, err := uc.repo.FindLowStock()
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(list), nil
}

func toInventoryResponse(i *entity.Inventory) *dto.InventoryResponse {
	if i == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ID:        i.ID,
		Quantity:  i.Quantity,
		MinStock:  i.MinStock,
		MaxStock:  i.MaxStock,
		Warehouse: toMinimalWarehouseResponse(i.Warehouse),
		Product:   toProductResponse(i.Product),
	}
}

func toInventoryResponses(list []*entity.Inventory) []dto.InventoryResponse {
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toInventoryResponse(i))
	}
	return items
}

// toMinimalInventoryResponse proyección reducida incrustada en las respuestas
// de bodega: producto completo, sin re-incrustar la bodega.
func toMinimalInventoryResponse(i *entity.Inventory) dto.MinimalInventoryResponse {
	if i == nil {
		return dto.MinimalInventoryResponse{}
	}
	return dto.MinimalInventoryResponse{
		ID:       i.ID,
		Quantity: i.Quantity,
		MinStock: i.MinStock,
		MaxStock: i.MaxStock,
		Product:  toProductResponse(i.Product),
	}
}
