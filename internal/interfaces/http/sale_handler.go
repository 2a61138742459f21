package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain"
)

// SaleHandler maneja las peticiones HTTP para ventas (protegido).
type SaleHandler struct {
	uc *sales.SaleUseCase
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(uc *sales.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Congela precio unitario y porcentaje de comisión al momento del registro.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return saleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar venta
// @Description  Recalcula totales con el porcentaje de comisión congelado en la venta.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la venta"
// @Param        body  body  dto.UpdateSaleRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [patch]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar venta
// @Description  Marca la venta como cancelada; queda fuera de todos los reportes.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      204  "Sin contenido"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Params("id")); err != nil {
		return saleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        seller_id   query  string  false  "Filtrar por vendedor"
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        status      query  string  false  "finalized | cancelled | pending"
// @Param        date_from   query  string  false  "Fecha mínima (2006-01-02 o RFC3339)"
// @Param        date_to     query  string  false  "Fecha máxima (2006-01-02 o RFC3339)"
// @Success      200  {object}  dto.SaleListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var q dto.ListSalesQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.uc.List(q)
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(out)
}

// saleError mapea errores de dominio de ventas a su status HTTP.
func saleError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.ErrSellerInactive:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SELLER_INACTIVE", Message: err.Error()})
	case domain.ErrProductInactive:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PRODUCT_INACTIVE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
