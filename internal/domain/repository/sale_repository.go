package repository

import (
	"time"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// SaleFilter filtros opcionales para listar ventas (se combinan con AND).
// DateFrom/DateTo acotan SaleDate de forma inclusiva en ambos extremos.
type SaleFilter struct {
	SellerID  string
	ProductID string
	Status    string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Las ventas nunca se borran físicamente; cancelar es UpdateStatus.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// Update persiste los campos mutables de la venta. Devuelve
	// domain.ErrNotFound si ninguna fila fue afectada.
	Update(sale *entity.Sale) error
	// UpdateStatus cambia el estado. Devuelve domain.ErrNotFound si
	// ninguna fila fue afectada.
	UpdateStatus(id, status string) error
	// List devuelve las ventas que cumplen el filtro, ordenadas por
	// SaleDate descendente.
	List(filter SaleFilter) ([]*entity.Sale, error)
}
