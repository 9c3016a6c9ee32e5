package dto

import "github.com/shopspring/decimal"

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Address     string          `json:"address" validate:"required,max=100"`
	Capacity    decimal.Decimal `json:"capacity" validate:"required"`
	ManagerName string          `json:"managerName" validate:"required,max=100"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega. La actualización
// sobreescribe todos los campos de negocio: un campo omitido se persiste con
// su valor cero (no hay actualización parcial).
type UpdateWarehouseRequest struct {
	Name        string          `json:"name" validate:"max=100"`
	Address     string          `json:"address" validate:"max=100"`
	Capacity    decimal.Decimal `json:"capacity"`
	ManagerName string          `json:"managerName" validate:"max=100"`
}

// WarehouseResponse salida de una bodega con sus inventarios reducidos.
// La proyección reducida del inventario no re-incrusta la bodega, lo que corta
// el ciclo Warehouse → Inventory → Warehouse en la serialización.
type WarehouseResponse struct {
	ID          int64                      `json:"id"`
	Name        string                     `json:"name"`
	Address     string                     `json:"address"`
	Capacity    decimal.Decimal            `json:"capacity"`
	ManagerName string                     `json:"managerName"`
	Inventories []MinimalInventoryResponse `json:"inventories"`
}

// MinimalWarehouseResponse proyección reducida de una bodega, sin la lista de
// inventarios; se incrusta en InventoryResponse.
type MinimalWarehouseResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Capacity    decimal.Decimal `json:"capacity"`
	ManagerName string          `json:"managerName"`
}
