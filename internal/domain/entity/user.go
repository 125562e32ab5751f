package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Estados de cuenta.
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

// User credenciales del portal. UserID es el identificador que el emprendedor elige y escribe al entrar.
type User struct {
	UserID       string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // user, admin
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario puede saltarse las verificaciones de propiedad.
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }
