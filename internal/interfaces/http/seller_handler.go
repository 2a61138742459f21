package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
)

// SellerHandler maneja las peticiones HTTP para vendedores (protegido).
type SellerHandler struct {
	uc *usecase.SellerUseCase
}

// NewSellerHandler construye el handler de vendedores.
func NewSellerHandler(uc *usecase.SellerUseCase) *SellerHandler {
	return &SellerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear vendedor
// @Tags         sellers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSellerRequest  true  "Datos del vendedor"
// @Success      201   {object}  dto.SellerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sellers [post]
func (h *SellerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return sellerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener vendedor por ID
// @Tags         sellers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vendedor"
// @Success      200  {object}  dto.SellerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sellers/{id} [get]
func (h *SellerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return sellerError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar vendedores
// @Tags         sellers
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "Filtrar por estado activo"
// @Success      200  {array}  dto.SellerResponse
// @Router       /api/sellers [get]
func (h *SellerHandler) List(c *fiber.Ctx) error {
	var active *bool
	if raw := c.Query("active"); raw != "" {
		v := raw == "true" || raw == "1"
		active = &v
	}
	out, err := h.uc.List(active)
	if err != nil {
		return sellerError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar vendedor
// @Description  Cambiar la tarifa de comisión no afecta a las ventas ya registradas.
// @Tags         sellers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del vendedor"
// @Param        body  body  dto.UpdateSellerRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.SellerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sellers/{id} [patch]
func (h *SellerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return sellerError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar vendedor
// @Description  El vendedor deja de poder registrar ventas; su historial se conserva.
// @Tags         sellers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vendedor"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sellers/{id} [delete]
func (h *SellerHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		return sellerError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HardDelete godoc
// @Summary      Eliminar vendedor definitivamente
// @Description  Borrado físico; solo admin. Falla si el vendedor tiene ventas asociadas.
// @Tags         sellers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vendedor"
// @Success      204  "Sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sellers/{id}/hard [delete]
func (h *SellerHandler) HardDelete(c *fiber.Ctx) error {
	if err := h.uc.HardDelete(c.Params("id")); err != nil {
		return sellerError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// sellerError mapea errores de dominio de vendedores a su status HTTP.
func sellerError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vendedor no encontrado"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "email o tax_id ya registrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
