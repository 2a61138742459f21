package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.SellerRepository = (*SellerRepo)(nil)

// SellerRepo implementación de SellerRepository sobre PostgreSQL (usable con pool o tx).
type SellerRepo struct {
	q Querier
}

// NewSellerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSellerRepository(q Querier) *SellerRepo {
	return &SellerRepo{q: q}
}

const sellerColumns = `id, name, email, tax_id, phone, active, commission_percent, created_at, updated_at`

// Create persiste un vendedor. domain.ErrDuplicate si email o tax_id ya existen.
func (r *SellerRepo) Create(seller *entity.Seller) error {
	query := `
		INSERT INTO sellers (id, name, email, tax_id, phone, active, commission_percent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		seller.ID, seller.Name, seller.Email, seller.TaxID, nullIfEmpty(seller.Phone),
		seller.Active, seller.CommissionPercent, seller.CreatedAt, seller.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}

// GetByID devuelve el vendedor o nil si no existe.
func (r *SellerRepo) GetByID(id string) (*entity.Seller, error) {
	return r.getBy("id", id)
}

// GetByEmail devuelve el vendedor o nil si no existe.
func (r *SellerRepo) GetByEmail(email string) (*entity.Seller, error) {
	return r.getBy("email", email)
}

// GetByTaxID devuelve el vendedor o nil si no existe.
func (r *SellerRepo) GetByTaxID(taxID string) (*entity.Seller, error) {
	return r.getBy("tax_id", taxID)
}

func (r *SellerRepo) getBy(column, value string) (*entity.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE ` + column + ` = $1`
	seller, err := scanSeller(r.q.QueryRow(context.Background(), query, value))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get seller by %s: %w", column, err)
	}
	return seller, nil
}

// Update persiste los campos del vendedor. domain.ErrNotFound si no afectó filas.
func (r *SellerRepo) Update(seller *entity.Seller) error {
	query := `
		UPDATE sellers
		SET name = $2, email = $3, tax_id = $4, phone = $5, active = $6,
			commission_percent = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		seller.ID, seller.Name, seller.Email, seller.TaxID, nullIfEmpty(seller.Phone),
		seller.Active, seller.CommissionPercent, seller.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update seller: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetActive marca activo/inactivo. domain.ErrNotFound si no afectó filas.
func (r *SellerRepo) SetActive(id string, active bool) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE sellers SET active = $2, updated_at = NOW() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set seller active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina físicamente el vendedor. domain.ErrNotFound si no afectó filas.
func (r *SellerRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sellers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete seller: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los vendedores ordenados por nombre.
func (r *SellerRepo) List(active *bool) ([]*entity.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers`
	var args []any
	if active != nil {
		query += ` WHERE active = $1`
		args = append(args, *active)
	}
	query += ` ORDER BY name ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Seller
	for rows.Next() {
		seller, err := scanSeller(rows)
		if err != nil {
			return nil, fmt.Errorf("list sellers scan: %w", err)
		}
		out = append(out, seller)
	}
	return out, rows.Err()
}

func scanSeller(row pgx.Row) (*entity.Seller, error) {
	var (
		seller entity.Seller
		phone  *string
	)
	err := row.Scan(
		&seller.ID, &seller.Name, &seller.Email, &seller.TaxID, &phone,
		&seller.Active, &seller.CommissionPercent, &seller.CreatedAt, &seller.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if phone != nil {
		seller.Phone = *phone
	}
	return &seller, nil
}
