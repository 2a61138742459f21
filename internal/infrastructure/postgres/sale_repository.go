package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, product_id, seller_id, quantity, unit_price, total_value,
	commission_percent, commission_value, sale_date, note, status, created_at, updated_at`

// Create persiste una venta nueva con sus valores ya calculados.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, seller_id, quantity, unit_price, total_value,
			commission_percent, commission_value, sale_date, note, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.SellerID, sale.Quantity, sale.UnitPrice, sale.TotalValue,
		sale.CommissionPercent, sale.CommissionValue, sale.SaleDate, nullIfEmpty(sale.Note),
		sale.Status, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID devuelve la venta o nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	sale, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return sale, nil
}

// Update persiste los campos mutables. domain.ErrNotFound si no afectó filas.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales
		SET product_id = $2, quantity = $3, unit_price = $4, total_value = $5,
			commission_value = $6, sale_date = $7, note = $8, status = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.Quantity, sale.UnitPrice, sale.TotalValue,
		sale.CommissionValue, sale.SaleDate, nullIfEmpty(sale.Note), sale.Status, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia solo el estado. domain.ErrNotFound si no afectó filas.
func (r *SaleRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE sales SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve las ventas que cumplen el filtro, ordenadas por sale_date DESC.
// Los filtros se combinan con AND; el rango de fechas es inclusivo.
func (r *SaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, cond+"$"+strconv.Itoa(len(args)))
	}
	if filter.SellerID != "" {
		add("seller_id = ", filter.SellerID)
	}
	if filter.ProductID != "" {
		add("product_id = ", filter.ProductID)
	}
	if filter.Status != "" {
		add("status = ", filter.Status)
	}
	if filter.DateFrom != nil {
		add("sale_date >= ", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		add("sale_date <= ", *filter.DateTo)
	}

	query := `SELECT ` + saleColumns + ` FROM sales`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY sale_date DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []*entity.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("list sales scan: %w", err)
		}
		out = append(out, sale)
	}
	return out, rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var (
		sale entity.Sale
		note *string
	)
	err := row.Scan(
		&sale.ID, &sale.ProductID, &sale.SellerID, &sale.Quantity, &sale.UnitPrice,
		&sale.TotalValue, &sale.CommissionPercent, &sale.CommissionValue, &sale.SaleDate,
		&note, &sale.Status, &sale.CreatedAt, &sale.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if note != nil {
		sale.Note = *note
	}
	return &sale, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
