package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. No posee otras entidades;
// Inventory lo referencia por bodega.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Weight      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
