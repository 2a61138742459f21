package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// SellerRepository define el puerto de persistencia para Seller.
type SellerRepository interface {
	Create(seller *entity.Seller) error
	GetByID(id string) (*entity.Seller, error)
	GetByEmail(email string) (*entity.Seller, error)
	GetByTaxID(taxID string) (*entity.Seller, error)
	Update(seller *entity.Seller) error
	// SetActive marca activo/inactivo (soft delete). domain.ErrNotFound
	// si ninguna fila fue afectada.
	SetActive(id string, active bool) error
	// Delete elimina físicamente (hard delete). domain.ErrNotFound si
	// ninguna fila fue afectada.
	Delete(id string) error
	// List devuelve los vendedores ordenados por nombre. Si active no es
	// nil, filtra por ese estado.
	List(active *bool) ([]*entity.Seller, error)
}
