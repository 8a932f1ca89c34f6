package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/pkg/jwt"
)

type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error { r.users = append(r.users, u); return nil }
func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) List() ([]*entity.User, error)    { return r.users, nil }
func (r *memUserRepo) UpdatePassword(_, _ string) error { return nil }
func (r *memUserRepo) Delete(string) error              { return nil }

func seedUser(t *testing.T, repo *memUserRepo, username, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users = append(repo.users, &entity.User{
		ID:           "u-" + username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	})
}

const testSecret = "secreto-de-test"

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{Secret: testSecret, ExpMinutes: 5, Issuer: "almacen-api-test"}
}

// El token emitido lleva el rol en los claims: el middleware RBAC decide sin
// volver a consultar la DB.
func TestLogin_TokenConRol(t *testing.T) {
	repo := &memUserRepo{}
	seedUser(t, repo, "admin", "admin123", entity.RoleAdmin)
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	resp, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)

	userID, username, role, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-admin", userID)
	assert.Equal(t, "admin", username)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_ClaveIncorrecta(t *testing.T) {
	repo := &memUserRepo{}
	seedUser(t, repo, "admin", "admin123", entity.RoleAdmin)
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "incorrecta"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(&memUserRepo{}, testJWTConfig())
	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "x"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := auth.NewAuthUseCase(&memUserRepo{}, testJWTConfig())
	_, err := uc.Login(dto.LoginRequest{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
