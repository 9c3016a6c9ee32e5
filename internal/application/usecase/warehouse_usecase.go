package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/warehouse-api/internal/application/dto"
	"github.com/jhoicas/warehouse-api/internal/domain"
	"github.com/jhoicas/warehouse-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD y búsqueda para bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
	tx   TxRunner
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, tx TxRunner) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, tx: tx}
}

// Create crea una nueva bodega. El id y los timestamps los asigna el servidor.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	now := time.Now()
	warehouse := &entity.Warehouse{
		Name:        in.Name,
		Address:     in.Address,
		Capacity:    in.Capacity,
		ManagerName: in.ManagerName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por id; nil si no existe.
func (uc *WarehouseUseCase) GetByID(id int64) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	return toWarehouseResponse(warehouse), nil
}

// List devuelve todas las bodegas con sus inventarios y productos asociados.
func (uc *WarehouseUseCase) List() ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toWarehouseResponses(list), nil
}

// Update sobreescribe name, address, capacity y managerName de la bodega.
// Id, timestamps e inventarios no son modificables por el llamador; updatedAt
// se refresca. El read-modify-write corre en una sola transacción.
func (uc *WarehouseUseCase) Update(ctx context.Context, id int64, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	var out *dto.WarehouseResponse
	err := uc.tx.Run(ctx, func(warehouses repository.WarehouseRepository, _ repository.ProductRepository, _ repository.InventoryRepository) error {
		warehouse, err := warehouses.GetByID(id)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrNotFound
		}
		warehouse.Name = in.Name
		warehouse.Address = in.Address
		warehouse.Capacity = in.Capacity
		warehouse.ManagerName = in.ManagerName
		warehouse.UpdatedAt = time.Now()
		if err := warehouses.Update(warehouse); err != nil {
			return err
		}
		out = toWarehouseResponse(warehouse)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina una bodega; sus registros de inventario caen en cascada.
func (uc *WarehouseUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// Search busca bodegas por exactamente uno de los dos criterios: subcadena del
// nombre (sin distinguir mayúsculas) o capacidad mínima (estrictamente mayor).
// Ambos presentes o ambos ausentes es una búsqueda inválida, no un "sin
// resultados".
func (uc *WarehouseUseCase) Search(name *string, minCapacity *decimal.Decimal) ([]dto.WarehouseResponse, error) {
	switch {
	case name != nil && minCapacity == nil:
		list, err := uc.repo.FindByName(*name)
		if err != nil {
			return nil, err
		}
		return toWarehouseResponses(list), nil
	case name == nil && minCapacity != nil:
		list, err := uc.repo.FindByCapacityGreaterThan(*minCapacity)
		if err != nil {
			return nil, err
		}
		return toWarehouseResponses(list), nil
	default:
		return nil, domain.ErrBadSearch
	}
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	inventories := make([]dto.MinimalInventoryResponse, 0, len(w.Inventories))
	for _, inv := range w.Inventories {
		inventories = append(inventories, toMinimalInventoryResponse(inv))
	}
	return &dto.WarehouseResponse{
		ID:          w.ID,
		Name:        w.Name,
		Address:     w.Address,
		Capacity:    w.Capacity,
		ManagerName: w.ManagerName,
		Inventories: inventories,
	}
}

func toWarehouseResponses(list []*entity.Warehouse) []dto.WarehouseResponse {
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items
}

// toMinimalWarehouseResponse proyección sin inventarios, para incrustar en
// respuestas de inventario sin reabrir el ciclo.
func toMinimalWarehouseResponse(w *entity.Warehouse) dto.MinimalWarehouseResponse {
	if w == nil {
		return dto.MinimalWarehouseResponse{}
	}
	return dto.MinimalWarehouseResponse{
		ID:          w.ID,
		Name:        w.Name,
		Address:     w.Address,
		Capacity:    w.Capacity,
		ManagerName: w.ManagerName,
	}
}
