package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/auth"
	"github.com/jhoicas/ventas-api/internal/application/reports"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SaleUC    *sales.SaleUseCase
	ReportUC  *reports.ReportUseCase
	PDFUC     *reports.PDFUseCase
	SellerUC  *usecase.SellerUseCase
	ProductUC *usecase.ProductUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Patch("/:id", saleHandler.Update)
	salesGroup.Delete("/:id", saleHandler.Cancel)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.PDFUC)
	reportsGroup.Get("/ranking", reportHandler.Ranking)
	reportsGroup.Get("/monthly", reportHandler.Monthly)
	reportsGroup.Get("/monthly/pdf", reportHandler.MonthlyPDF)
	reportsGroup.Get("/commissions", reportHandler.Commissions)
	reportsGroup.Get("/dashboard", reportHandler.Dashboard)

	// Sellers (protegido; borrado físico solo admin)
	sellersGroup := protected.Group("/sellers")
	sellerHandler := NewSellerHandler(deps.SellerUC)
	sellersGroup.Post("/", sellerHandler.Create)
	sellersGroup.Get("/", sellerHandler.List)
	sellersGroup.Get("/:id", sellerHandler.GetByID)
	sellersGroup.Patch("/:id", sellerHandler.Update)
	sellersGroup.Delete("/:id", sellerHandler.Deactivate)
	sellersGroup.Delete("/:id/hard", RequireRole(entity.RoleAdmin), sellerHandler.HardDelete)

	// Products (protegido)
	productsGroup := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	productsGroup.Post("/", productHandler.Create)
	productsGroup.Get("/", productHandler.List)
	productsGroup.Get("/search", productHandler.Search)
	productsGroup.Get("/:id", productHandler.GetByID)
	productsGroup.Patch("/:id", productHandler.Update)
	productsGroup.Delete("/:id", productHandler.Deactivate)
	productsGroup.Post("/:id/stock", productHandler.AdjustStock)
}
