package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	UpdatePassword(username, passwordHash string) error
	Delete(username string) error
}
