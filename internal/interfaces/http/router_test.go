package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/auth"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/reports"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	apphttp "github.com/jhoicas/ventas-api/internal/interfaces/http"
)

const (
	routerSellerID  = "11111111-1111-1111-1111-111111111111"
	routerProductID = "22222222-2222-2222-2222-222222222222"
)

func routerDec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ── Fakes en memoria para el router completo ─────────────────────────────────

type memSaleRepo struct{ sales map[string]*entity.Sale }

func (r *memSaleRepo) Create(s *entity.Sale) error {
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}
func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}
func (r *memSaleRepo) Update(s *entity.Sale) error {
	if _, ok := r.sales[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}
func (r *memSaleRepo) UpdateStatus(id, status string) error {
	s, ok := r.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Status = status
	return nil
}
func (r *memSaleRepo) List(repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

type memSellerRepo struct{ sellers map[string]*entity.Seller }

func (r *memSellerRepo) Create(s *entity.Seller) error {
	r.sellers[s.ID] = s
	return nil
}
func (r *memSellerRepo) GetByID(id string) (*entity.Seller, error) { return r.sellers[id], nil }
func (r *memSellerRepo) GetByEmail(email string) (*entity.Seller, error) {
	for _, s := range r.sellers {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, nil
}
func (r *memSellerRepo) GetByTaxID(taxID string) (*entity.Seller, error) {
	for _, s := range r.sellers {
		if s.TaxID == taxID {
			return s, nil
		}
	}
	return nil, nil
}
func (r *memSellerRepo) Update(s *entity.Seller) error {
	if _, ok := r.sellers[s.ID]; !ok {
		return domain.ErrNotFound
	}
	r.sellers[s.ID] = s
	return nil
}
func (r *memSellerRepo) SetActive(id string, active bool) error {
	s, ok := r.sellers[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Active = active
	return nil
}
func (r *memSellerRepo) Delete(id string) error {
	if _, ok := r.sellers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.sellers, id)
	return nil
}
func (r *memSellerRepo) List(*bool) ([]*entity.Seller, error) {
	var out []*entity.Seller
	for _, s := range r.sellers {
		out = append(out, s)
	}
	return out, nil
}

type memProductRepo struct{ products map[string]*entity.Product }

func (r *memProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }
func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.products[p.ID] = p
	return nil
}
func (r *memProductRepo) SetActive(id string, active bool) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Active = active
	return nil
}
func (r *memProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *memProductRepo) Search(string) ([]*entity.Product, error) { return nil, nil }

type memUserRepo struct{ users map[string]*entity.User }

func (r *memUserRepo) Create(u *entity.User) error {
	r.users[u.Username] = u
	return nil
}
func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.users[username], nil
}

type memReportRepo struct{}

func (r *memReportRepo) SellerRanking(context.Context, repository.RankingFilter) ([]repository.SellerRankingRow, error) {
	return nil, nil
}
func (r *memReportRepo) PeriodTotals(context.Context, repository.Period) (repository.PeriodTotalsRow, error) {
	return repository.PeriodTotalsRow{}, nil
}
func (r *memReportRepo) SellerCommissions(context.Context, repository.CommissionFilter) ([]repository.SellerCommissionRow, error) {
	return nil, nil
}

// Los fakes deben seguir firmando las interfaces de dominio.
var (
	_ repository.SaleRepository    = (*memSaleRepo)(nil)
	_ repository.SellerRepository  = (*memSellerRepo)(nil)
	_ repository.ProductRepository = (*memProductRepo)(nil)
	_ repository.UserRepository    = (*memUserRepo)(nil)
	_ repository.ReportRepository  = (*memReportRepo)(nil)
)

// memTx ejecuta el callback directamente, sin transacción real.
type memTx struct {
	sales    *memSaleRepo
	sellers  *memSellerRepo
	products *memProductRepo
}

func (t *memTx) Run(_ context.Context, fn func(repository.SaleRepository, repository.SellerRepository, repository.ProductRepository) error) error {
	return fn(t.sales, t.sellers, t.products)
}

// buildRouterApp levanta la API completa sobre fakes en memoria,
// con un vendedor y un producto ya sembrados.
func buildRouterApp() *fiber.App {
	saleRepo := &memSaleRepo{sales: map[string]*entity.Sale{}}
	sellerRepo := &memSellerRepo{sellers: map[string]*entity.Seller{
		routerSellerID: {ID: routerSellerID, Name: "Ana Gómez", Email: "ana@acme.com", TaxID: "900123456", Active: true, CommissionPercent: routerDec("5")},
	}}
	productRepo := &memProductRepo{products: map[string]*entity.Product{
		routerProductID: {ID: routerProductID, Name: "Teclado mecánico", SKU: "TEC-001", Price: routerDec("3000"), Stock: 50, Active: true},
	}}
	userRepo := &memUserRepo{users: map[string]*entity.User{}}
	tx := &memTx{sales: saleRepo, sellers: sellerRepo, products: productRepo}

	saleUC := sales.NewSaleUseCase(tx, saleRepo)
	reportUC := reports.NewReportUseCase(&memReportRepo{})
	sellerUC := usecase.NewSellerUseCase(sellerRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SaleUC:    saleUC,
		ReportUC:  reportUC,
		PDFUC:     nil, // la ruta de PDF no se ejercita aquí
		SellerUC:  sellerUC,
		ProductUC: productUC,
		AuthUC:    authUC,
		JWTSecret: testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ── Tests de extremo a extremo sobre el router ───────────────────────────────

func TestRouter_RutasProtegidasSinToken_Retornan401(t *testing.T) {
	app := buildRouterApp()
	for _, path := range []string{"/api/sales", "/api/reports/dashboard", "/api/sellers", "/api/products"} {
		resp := doJSON(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "ruta %s debe exigir token", path)
		resp.Body.Close()
	}
}

func TestRouter_CrearVenta_CalculaTotalesCongelados(t *testing.T) {
	app := buildRouterApp()
	token := tokenForRole(t, "seller")

	resp := doJSON(t, app, http.MethodPost, "/api/sales", token, dto.CreateSaleRequest{
		ProductID: routerProductID,
		SellerID:  routerSellerID,
		Quantity:  2,
		SaleDate:  "2026-08-15",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.SaleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, routerDec("6000").Equal(out.TotalValue), "total esperado 6000, got %s", out.TotalValue)
	assert.True(t, routerDec("300").Equal(out.CommissionValue), "comisión esperada 300, got %s", out.CommissionValue)
	assert.Equal(t, entity.SaleStatusFinalized, out.Status)
}

func TestRouter_CrearVenta_CantidadInvalida_Retorna400(t *testing.T) {
	app := buildRouterApp()
	token := tokenForRole(t, "seller")

	resp := doJSON(t, app, http.MethodPost, "/api/sales", token, dto.CreateSaleRequest{
		ProductID: routerProductID,
		SellerID:  routerSellerID,
		Quantity:  0,
		SaleDate:  "2026-08-15",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_ObtenerVentaInexistente_Retorna404(t *testing.T) {
	app := buildRouterApp()
	token := tokenForRole(t, "seller")

	resp := doJSON(t, app, http.MethodGet, "/api/sales/99999999-9999-9999-9999-999999999999", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_CancelarVenta_Retorna204(t *testing.T) {
	app := buildRouterApp()
	token := tokenForRole(t, "seller")

	create := doJSON(t, app, http.MethodPost, "/api/sales", token, dto.CreateSaleRequest{
		ProductID: routerProductID,
		SellerID:  routerSellerID,
		Quantity:  1,
		SaleDate:  "2026-08-15",
	})
	require.Equal(t, http.StatusCreated, create.StatusCode)
	var created dto.SaleResponse
	require.NoError(t, json.NewDecoder(create.Body).Decode(&created))
	create.Body.Close()

	resp := doJSON(t, app, http.MethodDelete, "/api/sales/"+created.ID, token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRouter_ReporteMensual_MesInvalido_Retorna400(t *testing.T) {
	app := buildRouterApp()
	token := tokenForRole(t, "seller")

	resp := doJSON(t, app, http.MethodGet, "/api/reports/monthly?month=13&year=2026", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_Dashboard_SinVentas_RetornaCeros(t *testing.T) {
	app := buildRouterApp()
	token := tokenForRole(t, "seller")

	resp := doJSON(t, app, http.MethodGet, "/api/reports/dashboard", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.DashboardDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.SalesToday.IsZero())
	assert.True(t, out.SalesMonth.IsZero())
}

func TestRouter_BorradoFisicoDeVendedor_SoloAdmin(t *testing.T) {
	app := buildRouterApp()

	resp := doJSON(t, app, http.MethodDelete, "/api/sellers/"+routerSellerID+"/hard", tokenForRole(t, "seller"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "seller no puede borrar físicamente")
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/sellers/"+routerSellerID+"/hard", tokenForRole(t, "admin"), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode, "admin sí puede borrar físicamente")
	resp.Body.Close()
}

func TestRouter_RegistroYLogin(t *testing.T) {
	app := buildRouterApp()

	reg := doJSON(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Username: "ana",
		Password: "secreta-123",
		Name:     "Ana Gómez",
		Email:    "ana@acme.com",
	})
	require.Equal(t, http.StatusCreated, reg.StatusCode)
	reg.Body.Close()

	login := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Username: "ana",
		Password: "secreta-123",
	})
	defer login.Body.Close()
	require.Equal(t, http.StatusOK, login.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(login.Body).Decode(&out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana", out.User.Username)

	bad := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Username: "ana",
		Password: "incorrecta",
	})
	defer bad.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, bad.StatusCode)
}
