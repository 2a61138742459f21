package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ── Fake en memoria ──────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products   map[string]*entity.Product
	lastSearch string
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}
func (r *fakeProductRepo) SetActive(id string, active bool) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Active = active
	return nil
}
func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}
func (r *fakeProductRepo) Search(term string) ([]*entity.Product, error) {
	r.lastSearch = term
	return nil, nil
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestProductCreate_SKUDuplicado_RetornaDuplicate(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "Teclado", SKU: "TEC-001", Price: dec("3000")})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{Name: "Otro teclado", SKU: "TEC-001", Price: dec("2500")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// failingProductRepo simula una BD caída en la consulta de unicidad.
type failingProductRepo struct {
	*fakeProductRepo
	err error
}

func (r *failingProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, r.err }

func TestProductCreate_FalloDeBDEnUnicidad_PropagaElError(t *testing.T) {
	inner := newFakeProductRepo()
	dbErr := errors.New("conexión rechazada")
	uc := usecase.NewProductUseCase(&failingProductRepo{fakeProductRepo: inner, err: dbErr})

	_, err := uc.Create(dto.CreateProductRequest{Name: "Teclado", SKU: "TEC-001", Price: dec("3000")})
	assert.ErrorIs(t, err, dbErr)
	assert.Empty(t, inner.products, "no debe persistirse nada tras el fallo")
}

func TestProductCreate_PrecioNegativo_RetornaInvalid(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "Teclado", SKU: "TEC-001", Price: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductAdjustStock_EntradaYSalida(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	created, err := uc.Create(dto.CreateProductRequest{Name: "Teclado", SKU: "TEC-001", Price: dec("3000"), Stock: 10})
	require.NoError(t, err)

	out, err := uc.AdjustStock(created.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, out.Stock)

	out, err = uc.AdjustStock(created.ID, -12)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Stock)
}

func TestProductAdjustStock_ResultadoNegativo_RetornaInsufficient(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	created, err := uc.Create(dto.CreateProductRequest{Name: "Teclado", SKU: "TEC-001", Price: dec("3000"), Stock: 2})
	require.NoError(t, err)

	_, err = uc.AdjustStock(created.ID, -3)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El stock no debe haberse tocado.
	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Stock)
}

func TestProductUpdate_PrecioNuevoNoTocaElSnapshot(t *testing.T) {
	// El caso de uso de ventas congela unit_price al registrar; aquí solo se
	// verifica que el precio del catálogo sí cambia.
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	created, err := uc.Create(dto.CreateProductRequest{Name: "Teclado", SKU: "TEC-001", Price: dec("3000")})
	require.NoError(t, err)

	newPrice := dec("3500.50")
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.True(t, dec("3500.50").Equal(out.Price))
}

func TestProductSearch_NormalizaElTermino(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Search("  CÁMARA ")
	require.NoError(t, err)
	assert.Equal(t, "camara", repo.lastSearch,
		"el término debe llegar al repositorio en minúsculas y sin tildes")
}

func TestProductSearch_TerminoVacio_RetornaInvalid(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	_, err := uc.Search("   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormalizeSearchTerm(t *testing.T) {
	cases := map[string]string{
		"Café":      "cafe",
		"CÁMARA":    "camara",
		"ñoño":      "nono",
		"ya-limpio": "ya-limpio",
	}
	for in, want := range cases {
		assert.Equal(t, want, usecase.NormalizeSearchTerm(in), "entrada %q", in)
	}
}
