package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.users = append(r.users, u)
	return nil
}

func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List() ([]*entity.User, error) { return r.users, nil }

func (r *memUserRepo) UpdatePassword(username, passwordHash string) error {
	for _, u := range r.users {
		if u.Username == username {
			u.PasswordHash = passwordHash
		}
	}
	return nil
}

func (r *memUserRepo) Delete(username string) error {
	for i, u := range r.users {
		if u.Username == username {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestUserCreate_HasheaLaClave(t *testing.T) {
	repo := &memUserRepo{}
	uc := usecase.NewUserUseCase(repo)

	resp, err := uc.Create(dto.CreateUserRequest{Username: "maria", Password: "clave123", Role: entity.RoleBodega})
	require.NoError(t, err)
	assert.Equal(t, "maria", resp.Username)
	assert.Equal(t, entity.RoleBodega, resp.Role)

	stored, err := repo.GetByUsername("maria")
	require.NoError(t, err)
	assert.NotEqual(t, "clave123", stored.PasswordHash, "la clave nunca se guarda en claro")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave123")))
}

func TestUserCreate_RolDesconocido(t *testing.T) {
	uc := usecase.NewUserUseCase(&memUserRepo{})
	_, err := uc.Create(dto.CreateUserRequest{Username: "maria", Password: "clave123", Role: "superadmin"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserCreate_UsernameDuplicado(t *testing.T) {
	uc := usecase.NewUserUseCase(&memUserRepo{})
	_, err := uc.Create(dto.CreateUserRequest{Username: "maria", Password: "clave123", Role: entity.RoleAdmin})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateUserRequest{Username: "maria", Password: "otra", Role: entity.RoleBodega})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserChangePassword(t *testing.T) {
	repo := &memUserRepo{}
	uc := usecase.NewUserUseCase(repo)
	_, err := uc.Create(dto.CreateUserRequest{Username: "maria", Password: "vieja", Role: entity.RoleAdmin})
	require.NoError(t, err)

	require.NoError(t, uc.ChangePassword("maria", "nueva"))
	stored, err := repo.GetByUsername("maria")
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nueva")))

	require.ErrorIs(t, uc.ChangePassword("noexiste", "x"), domain.ErrUserNotFound)
	require.ErrorIs(t, uc.ChangePassword("maria", ""), domain.ErrInvalidInput)
}

func TestUserDelete(t *testing.T) {
	uc := usecase.NewUserUseCase(&memUserRepo{})
	_, err := uc.Create(dto.CreateUserRequest{Username: "maria", Password: "clave", Role: entity.RoleAdmin})
	require.NoError(t, err)

	require.NoError(t, uc.Delete("maria"))
	require.ErrorIs(t, uc.Delete("maria"), domain.ErrUserNotFound)
}
