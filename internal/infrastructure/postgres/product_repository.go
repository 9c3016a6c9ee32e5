package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/warehouse-api/internal/domain"
	"github.com/jhoicas/warehouse-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, description, price, category, weight, created_at, updated_at`

// Create persiste un nuevo producto y asigna el id generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO product (name, description, price, category, weight, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Description, product.Price, product.Category,
		product.Weight, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id; nil si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Weight, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListAll devuelve todos los productos.
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	return r.list(``)
}

// Update sobreescribe los campos de negocio del producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE product SET name = $2, description = $3, price = $4, category = $5, weight = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.Category, product.Weight, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por id. La FK ON DELETE RESTRICT rechaza el
// borrado mientras exista inventario que lo referencie.
func (r *ProductRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM product WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FindByCategory busca por categoría exacta.
func (r *ProductRepo) FindByCategory(category string) ([]*entity.Product, error) {
	return r.list(`WHERE category = $1`, category)
}

// FindByName busca por subcadena del nombre sin distinguir mayúsculas.
func (r *ProductRepo) FindByName(name string) ([]*entity.Product, error) {
	return r.list(`WHERE name ILIKE '%' || $1 || '%'`, name)
}

// FindByPriceBetween busca por rango de precio, inclusivo en ambos extremos.
func (r *ProductRepo) FindByPriceBetween(low, high decimal.Decimal) ([]*entity.Product, error) {
	return r.list(`WHERE price BETWEEN $1 AND $2`, low, high)
}

// ListCategories devuelve las categorías distintas.
func (r *ProductRepo) ListCategories() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT DISTINCT category FROM product ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *ProductRepo) list(where string, args ...any) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product ` + where + ` ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Weight, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
