package entity

import "time"

// Roles de usuario de la API.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// User usuario de la aplicación (autenticación vía JWT).
type User struct {
	ID           string
	Username     string // único
	PasswordHash string
	Name         string
	Email        string
	Role         string // admin | seller
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
