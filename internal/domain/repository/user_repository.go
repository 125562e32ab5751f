package repository

import (
	"context"

	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para las credenciales (DIP).
// Create devuelve domain.ErrUserIDTaken si el user_id ya existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByUserID(ctx context.Context, userID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
