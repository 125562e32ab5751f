package dto

import "time"

// RegisterRequest alta de cuenta: user_id elegido por el usuario, contraseña y confirmación.
// Profile es opcional; si viene se guarda en la misma transacción. Vacíos y longitudes mínimas
// los valida account.ValidateRegistration con mensajes en el idioma de la petición.
type RegisterRequest struct {
	UserID          string          `json:"user_id" validate:"max=64"`
	Password        string          `json:"password" validate:"max=72"`
	ConfirmPassword string          `json:"confirm_password"`
	Language        string          `json:"language" validate:"omitempty,oneof=en hi mr"`
	Profile         *ProfileRequest `json:"profile,omitempty"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT con el usuario y su perfil (nil si aún no lo completó).
type LoginResponse struct {
	Token   string           `json:"token"`
	User    UserResponse     `json:"user"`
	Profile *ProfileResponse `json:"profile"`
}

// MeResponse usuario autenticado.
type MeResponse struct {
	User    UserResponse     `json:"user"`
	Profile *ProfileResponse `json:"profile"`
}

// PasswordStrengthRequest contraseña a evaluar.
type PasswordStrengthRequest struct {
	Password string `json:"password"`
}

// PasswordStrengthResponse puntaje del medidor (0-100).
type PasswordStrengthResponse struct {
	Score int    `json:"score"`
	Level string `json:"level"`
	Valid bool   `json:"valid"`
}
