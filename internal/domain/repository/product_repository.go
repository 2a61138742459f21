package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// ProductFilter filtros opcionales para listar productos.
type ProductFilter struct {
	Active   *bool
	Category string
}

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	SetActive(id string, active bool) error
	// List devuelve productos ordenados por nombre.
	List(filter ProductFilter) ([]*entity.Product, error)
	// Search busca por nombre o descripción (ILIKE %q%), ordenado por nombre.
	Search(query string) ([]*entity.Product, error)
}
