package repository

import (
	"context"

	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
)

// ProfileRepository define el puerto de persistencia para perfiles de usuario.
type ProfileRepository interface {
	// Upsert crea o reemplaza el perfil de profile.UserID.
	Upsert(ctx context.Context, profile *entity.Profile) error
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	// GetByUserIDs devuelve los perfiles existentes indexados por user_id.
	GetByUserIDs(ctx context.Context, userIDs []string) (map[string]*entity.Profile, error)
	SetLanguage(ctx context.Context, userID, language string) error
	SetOnboardingCompleted(ctx context.Context, userID string, completed bool) error
}
