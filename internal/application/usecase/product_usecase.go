package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create registra un producto validando unicidad del SKU.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.repo.GetBySKU(in.SKU); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		SKU:         in.SKU,
		Stock:       in.Stock,
		Category:    in.Category,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve productos ordenados por nombre, con filtros opcionales.
func (uc *ProductUseCase) List(filter repository.ProductFilter) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Search busca por nombre o descripción. El término se normaliza quitando
// tildes ("cámara" y "camara" encuentran lo mismo).
func (uc *ProductUseCase) Search(query string) ([]dto.ProductResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.Search(NormalizeSearchTerm(query))
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update modifica un producto, validando unicidad del SKU si cambia.
// El precio nuevo solo aplica a ventas futuras.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU != nil && *in.SKU != product.SKU {
		if existing, err := uc.repo.GetBySKU(*in.SKU); err != nil {
			return nil, err
		} else if existing != nil {
			return nil, domain.ErrDuplicate
		}
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Deactivate marca el producto como inactivo (soft delete).
func (uc *ProductUseCase) Deactivate(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidInput
	}
	return uc.repo.SetActive(id, false)
}

// AdjustStock suma quantity al stock (negativo = salida). El resultado no
// puede quedar por debajo de cero.
func (uc *ProductUseCase) AdjustStock(id string, quantity int) (*dto.ProductResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	newStock := product.Stock + quantity
	if newStock < 0 {
		return nil, domain.ErrInsufficientStock
	}
	product.Stock = newStock
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// NormalizeSearchTerm pasa el término a minúsculas y elimina marcas
// diacríticas (NFD + descarte de marcas no espaciadas).
func NormalizeSearchTerm(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		SKU:         p.SKU,
		Stock:       p.Stock,
		Category:    p.Category,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
