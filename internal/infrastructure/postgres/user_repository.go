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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, password_hash, name, email, role, active, created_at, updated_at`

// Create persiste un usuario. domain.ErrDuplicate si el username ya existe.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, name, email, role, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.PasswordHash, user.Name, nullIfEmpty(user.Email),
		user.Role, user.Active, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID devuelve el usuario o nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getBy("id", id)
}

// GetByUsername devuelve el usuario o nil si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.getBy("username", username)
}

func (r *UserRepo) getBy(column, value string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = $1`
	var (
		user  entity.User
		email *string
	)
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Name, &email,
		&user.Role, &user.Active, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by %s: %w", column, err)
	}
	if email != nil {
		user.Email = *email
	}
	return &user, nil
}
