package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrSellerInactive     = errors.New("vendedor inactivo no puede realizar ventas")
	ErrProductInactive    = errors.New("producto inactivo no puede ser vendido")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
