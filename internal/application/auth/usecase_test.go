package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/auth"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/ventas-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.Username] = &cp
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secret-para-tests",
		ExpMinutes: 60,
		Issuer:     "ventas-api-test",
	})
}

func TestRegister_HasheaElPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "secreta-123", Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "ana", out.Username)
	assert.Equal(t, entity.RoleSeller, out.Role, "rol por defecto seller")

	stored := repo.users["ana"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta-123", stored.PasswordHash, "el password nunca se guarda en claro")
}

// failingUserRepo simula una BD caída en la consulta de unicidad.
type failingUserRepo struct {
	*fakeUserRepo
	err error
}

func (r *failingUserRepo) GetByUsername(string) (*entity.User, error) { return nil, r.err }

func TestRegister_FalloDeBDEnUnicidad_PropagaElError(t *testing.T) {
	inner := newFakeUserRepo()
	dbErr := errors.New("conexión rechazada")
	uc := auth.NewAuthUseCase(&failingUserRepo{fakeUserRepo: inner, err: dbErr}, auth.JWTConfig{
		Secret: "secret-para-tests", ExpMinutes: 60, Issuer: "ventas-api-test",
	})

	_, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "secreta-123"})
	assert.ErrorIs(t, err, dbErr)
	assert.Empty(t, inner.users, "no debe persistirse nada tras el fallo")
}

func TestRegister_UsernameDuplicado_RetornaDuplicate(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "secreta-123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "ana", Password: "otra-clave-456"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestLogin_TokenContieneUserIDYRole(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	reg, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "secreta-123", Role: entity.RoleAdmin})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "secreta-123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := pkgjwt.Parse("secret-para-tests", out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecto_RetornaUnauthorized(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "secreta-123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "ana", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_RetornaUserNotFound(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())
	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo_RetornaForbidden(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "secreta-123"})
	require.NoError(t, err)
	repo.users["ana"].Active = false

	_, err = uc.Login(dto.LoginRequest{Username: "ana", Password: "secreta-123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
