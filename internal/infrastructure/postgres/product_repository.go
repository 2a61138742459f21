package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, description, price, sku, stock, category, active, created_at, updated_at`

// Create persiste un producto. domain.ErrDuplicate si el SKU ya existe.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, sku, stock, category, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, nullIfEmpty(product.Description), product.Price, product.SKU,
		product.Stock, nullIfEmpty(product.Category), product.Active, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID devuelve el producto o nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getBy("id", id)
}

// GetBySKU devuelve el producto o nil si no existe.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return r.getBy("sku", sku)
}

func (r *ProductRepo) getBy(column, value string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + column + ` = $1`
	product, err := scanProduct(r.q.QueryRow(context.Background(), query, value))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product by %s: %w", column, err)
	}
	return product, nil
}

// Update persiste los campos del producto. domain.ErrNotFound si no afectó filas.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, sku = $5, stock = $6,
			category = $7, active = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, nullIfEmpty(product.Description), product.Price, product.SKU,
		product.Stock, nullIfEmpty(product.Category), product.Active, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetActive marca activo/inactivo. domain.ErrNotFound si no afectó filas.
func (r *ProductRepo) SetActive(id string, active bool) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE products SET active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set product active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve productos ordenados por nombre, con filtros opcionales.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	var args []any
	if filter.Active != nil {
		args = append(args, *filter.Active)
		query += fmt.Sprintf(" AND active = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += ` ORDER BY name ASC`
	return r.queryMany(query, args...)
}

// Search busca por nombre o descripción, ignorando mayúsculas y tildes
// (requiere la extensión unaccent; ver migrations).
func (r *ProductRepo) Search(term string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE unaccent(name) ILIKE '%' || $1 || '%'
		   OR unaccent(COALESCE(description, '')) ILIKE '%' || $1 || '%'
		ORDER BY name ASC`
	return r.queryMany(query, term)
}

func (r *ProductRepo) queryMany(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, product)
	}
	return out, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		product     entity.Product
		description *string
		category    *string
	)
	err := row.Scan(
		&product.ID, &product.Name, &description, &product.Price, &product.SKU,
		&product.Stock, &category, &product.Active, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if description != nil {
		product.Description = *description
	}
	if category != nil {
		product.Category = *category
	}
	return &product, nil
}
