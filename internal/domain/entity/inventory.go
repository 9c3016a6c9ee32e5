package entity

import "time"

// Inventory es la unión muchos-a-muchos entre Product y Warehouse con los
// atributos de stock. Cada registro pertenece exactamente a una bodega y a un
// producto; el vínculo es inmutable después de la creación.
type Inventory struct {
	ID          int64
	Quantity    int
	MinStock    int
	MaxStock    int
	WarehouseID int64
	ProductID   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Asociaciones pobladas por el adaptador en las lecturas; nil en escrituras.
	Warehouse *Warehouse
	Product   *Product
}

// IsLowStock indica si la cantidad está por debajo del stock mínimo.
// Es una propiedad derivada: se calcula en cada lectura, nunca se almacena.
func (i *Inventory) IsLowStock() bool {
	return i.Quantity < i.MinStock
}
