package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Warehouse representa una bodega física con su capacidad y encargado.
// Inventories es la relación uno-a-muchos con Inventory; los adaptadores de
// persistencia la cargan de forma ávida en las lecturas (join, no N+1).
// Borrar una bodega elimina en cascada sus registros de inventario.
type Warehouse struct {
	ID          int64
	Name        string
	Address     string
	Capacity    decimal.Decimal
	ManagerName string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Inventories []*Inventory
}
