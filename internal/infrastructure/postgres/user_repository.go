package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (tabla user_auth).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de credenciales. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Devuelve domain.ErrUserIDTaken si el user_id ya existe.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO user_auth (user_id, password_hash, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		user.UserID, user.PasswordHash, user.Role, user.Status, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserIDTaken
		}
		return fmt.Errorf("insert user_auth: %w", err)
	}
	return nil
}

// GetByUserID obtiene un usuario; (nil, nil) si no existe.
func (r *UserRepo) GetByUserID(ctx context.Context, userID string) (*entity.User, error) {
	query := `
		SELECT user_id, password_hash, role, status, created_at, updated_at
		FROM user_auth WHERE user_id = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&u.UserID, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user_auth: %w", err)
	}
	return &u, nil
}

// Update actualiza hash, rol y estado.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE user_auth SET password_hash = $2, role = $3, status = $4, updated_at = $5
		WHERE user_id = $1`
	tag, err := r.q.Exec(ctx, query, user.UserID, user.PasswordHash, user.Role, user.Status, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update user_auth: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
