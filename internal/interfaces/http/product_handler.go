package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP para productos (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return productError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        active    query  bool    false  "Filtrar por estado activo"
// @Param        category  query  string  false  "Filtrar por categoría"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var filter repository.ProductFilter
	if raw := c.Query("active"); raw != "" {
		v := raw == "true" || raw == "1"
		filter.Active = &v
	}
	filter.Category = c.Query("category")
	out, err := h.uc.List(filter)
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar productos por nombre
// @Description  Búsqueda insensible a mayúsculas y acentos ("cafe" encuentra "Café").
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  true  "Término de búsqueda"
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("q"))
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Cambiar el precio no afecta a las ventas ya registradas.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		return productError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AdjustStock godoc
// @Summary      Ajustar stock
// @Description  Quantity positivo entra stock, negativo sale; el resultado no puede ser negativo.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "Cantidad a ajustar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [post]
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AdjustStock(c.Params("id"), in.Quantity)
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(out)
}

// productError mapea errores de dominio de productos a su status HTTP.
func productError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "SKU ya registrado"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
