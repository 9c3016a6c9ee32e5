package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/warehouse-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Delete devuelve domain.ErrNotFound si el id no existe y
	// domain.ErrConflict si algún inventario referencia al producto.
	Delete(id int64) error
	// FindByCategory busca por categoría exacta.
	FindByCategory(category string) ([]*entity.Product, error)
	// FindByName busca por subcadena del nombre, sin distinguir mayúsculas.
	FindByName(name string) ([]*entity.Product, error)
	// FindByPriceBetween busca por rango de precio, inclusivo en ambos extremos.
	FindByPriceBetween(low, high decimal.Decimal) ([]*entity.Product, error)
	// ListCategories devuelve las categorías distintas existentes.
	ListCategories() ([]string, error)
}
