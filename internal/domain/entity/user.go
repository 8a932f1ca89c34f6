package entity

import "time"

// Roles de la aplicación.
const (
	RoleAdmin          = "admin"
	RoleBodega         = "bodega"
	RoleRequerimientos = "requerimientos" // solo accede a requerimientos
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string // único
	PasswordHash string // hash bcrypt, nunca plano en dominio después de persistir
	Role         string
	CreatedAt    time.Time
}
