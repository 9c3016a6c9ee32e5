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

// ProductUseCase casos de uso CRUD y búsqueda para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
	tx   TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now()
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Weight:      in.Weight,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponsePtr(product), nil
}

// GetByID obtiene un producto por id; nil si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponsePtr(product), nil
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Update sobreescribe todos los campos de negocio del producto. No hay
// semántica de actualización parcial: el llamador debe reenviar los campos que
// quiera conservar. El read-modify-write corre en una sola transacción.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.tx.Run(ctx, func(_ repository.WarehouseRepository, products repository.ProductRepository, _ repository.InventoryRepository) error {
		product, err := products.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		product.Name = in.Name
		product.Description = in.Description
		product.Price = in.Price
		product.Category = in.Category
		product.Weight = in.Weight
		product.UpdatedAt = time.Now()
		if err := products.Update(product); err != nil {
			return err
		}
		out = toProductResponsePtr(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un producto. Se rechaza con domain.ErrConflict si algún
// inventario lo referencia (la FK es ON DELETE RESTRICT).
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// FindByCategory devuelve los productos de una categoría exacta.
func (uc *ProductUseCase) FindByCategory(category string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.FindByCategory(category)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// FindByName devuelve los productos cuyo nombre contiene la subcadena, sin
// distinguir mayúsculas.
func (uc *ProductUseCase) FindByName(name string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.FindByName(name)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// FindByPriceBetween devuelve los productos con precio en [low, high],
// inclusivo en ambos extremos.
func (uc *ProductUseCase) FindByPriceBetween(low, high decimal.Decimal) ([]dto.ProductResponse, error) {
	list, err := uc.repo.FindByPriceBetween(low, high)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Categories devuelve las categorías distintas existentes.
func (uc *ProductUseCase) Categories() ([]string, error) {
	return uc.repo.ListCategories()
}

// Search búsqueda combinada con exactamente una familia de filtros activa:
// solo categoría, solo nombre, o rango de precio completo (min y max juntos).
// Cualquier otra combinación, incluido un rango parcial, es una búsqueda
// inválida.
func (uc *ProductUseCase) Search(category, name *string, minPrice, maxPrice *decimal.Decimal) ([]dto.ProductResponse, error) {
	switch {
	case category != nil && name == nil && minPrice == nil && maxPrice == nil:
		return uc.FindByCategory(*category)
	case category == nil && name != nil && minPrice == nil && maxPrice == nil:
		return uc.FindByName(*name)
	case category == nil && name == nil && minPrice != nil && maxPrice != nil:
		return uc.FindByPriceBetween(*minPrice, *maxPrice)
	default:
		return nil, domain.ErrBadSearch
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	if p == nil {
		return dto.ProductResponse{}
	}
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Weight:      p.Weight,
	}
}

func toProductResponsePtr(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	out := toProductResponse(p)
	return &out
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items
}
