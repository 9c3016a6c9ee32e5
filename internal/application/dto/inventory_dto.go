package dto

// CreateInventoryRequest entrada para crear un registro de inventario.
// Warehouse y Product son referencias por id; ambas deben existir.
type CreateInventoryRequest struct {
	Quantity  int       `json:"quantity" validate:"min=0"`
	MinStock  int       `json:"minStock" validate:"min=0"`
	MaxStock  int       `json:"maxStock" validate:"min=0"`
	Warehouse Reference `json:"warehouse" validate:"required"`
	Product   Reference `json:"product" validate:"required"`
}

// UpdateInventoryRequest entrada para actualizar un registro de inventario.
// Solo quantity, minStock y maxStock son mutables; el vínculo bodega/producto
// no se puede reasignar.
type UpdateInventoryRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
	MinStock int `json:"minStock" validate:"min=0"`
	MaxStock int `json:"maxStock" validate:"min=0"`
}

// InventoryResponse salida de un registro de inventario con la bodega reducida
// (sin su lista de inventarios) y el producto completo.
type InventoryResponse struct {
	ID        int64                    `json:"id"`
	Quantity  int                      `json:"quantity"`
	MinStock  int                      `json:"minStock"`
	MaxStock  int                      `json:"maxStock"`
	Warehouse MinimalWarehouseResponse `json:"warehouse"`
	Product   ProductResponse          `json:"product"`
}

// MinimalInventoryResponse proyección reducida de un inventario incrustada en
// WarehouseResponse: conserva el producto completo pero omite la bodega.
type MinimalInventoryResponse struct {
	ID       int64           `json:"id"`
	Quantity int             `json:"quantity"`
	MinStock int             `json:"minStock"`
	MaxStock int             `json:"maxStock"`
	Product  ProductResponse `json:"product"`
}
