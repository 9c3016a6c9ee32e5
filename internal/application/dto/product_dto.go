package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Description string          `json:"description" validate:"required,max=512"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Category    string          `json:"category" validate:"required,max=100"`
	Weight      decimal.Decimal `json:"weight" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto. Sobreescritura
// completa de los campos de negocio; no hay actualización parcial.
type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"max=100"`
	Description string          `json:"description" validate:"max=512"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" validate:"max=100"`
	Weight      decimal.Decimal `json:"weight"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Weight      decimal.Decimal `json:"weight"`
}
