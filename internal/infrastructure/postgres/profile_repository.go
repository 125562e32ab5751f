package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

const profileColumns = `user_id, name, age, address, district, occupation, business_type,
	business_description, monthly_income, business_experience, language, onboarding_completed,
	created_at, updated_at`

// ProfileRepo implementación de ProfileRepository sobre PostgreSQL (tabla user_profiles).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador de perfiles. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Upsert crea o reemplaza el perfil.
func (r *ProfileRepo) Upsert(ctx context.Context, p *entity.Profile) error {
	query := `
		INSERT INTO user_profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			age = EXCLUDED.age,
			address = EXCLUDED.address,
			district = EXCLUDED.district,
			occupation = EXCLUDED.occupation,
			business_type = EXCLUDED.business_type,
			business_description = EXCLUDED.business_description,
			monthly_income = EXCLUDED.monthly_income,
			business_experience = EXCLUDED.business_experience,
			language = EXCLUDED.language,
			onboarding_completed = EXCLUDED.onboarding_completed,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		p.UserID, p.Name, p.Age, p.Address, p.District, p.Occupation, p.BusinessType,
		p.BusinessDescription, p.MonthlyIncome, p.BusinessExperience, p.Language, p.OnboardingCompleted,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert user_profiles: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil; (nil, nil) si no existe.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = $1`
	p, err := scanProfile(r.q.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user_profiles: %w", err)
	}
	return p, nil
}

// GetByUserIDs devuelve los perfiles existentes indexados por user_id.
func (r *ProfileRepo) GetByUserIDs(ctx context.Context, userIDs []string) (map[string]*entity.Profile, error) {
	out := make(map[string]*entity.Profile, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = ANY($1)`
	rows, err := r.q.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("list user_profiles: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user_profiles: %w", err)
		}
		out[p.UserID] = p
	}
	return out, rows.Err()
}

// SetLanguage guarda el idioma; crea el perfil vacío si aún no existe.
func (r *ProfileRepo) SetLanguage(ctx context.Context, userID, language string) error {
	now := time.Now()
	query := `
		INSERT INTO user_profiles (user_id, language, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id) DO UPDATE SET language = EXCLUDED.language, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, userID, language, now); err != nil {
		return fmt.Errorf("set language: %w", err)
	}
	return nil
}

// SetOnboardingCompleted marca el fin del onboarding. domain.ErrNotFound si no hay perfil.
func (r *ProfileRepo) SetOnboardingCompleted(ctx context.Context, userID string, completed bool) error {
	query := `UPDATE user_profiles SET onboarding_completed = $2, updated_at = now() WHERE user_id = $1`
	tag, err := r.q.Exec(ctx, query, userID, completed)
	if err != nil {
		return fmt.Errorf("set onboarding_completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProfile(row pgxScanner) (*entity.Profile, error) {
	var p entity.Profile
	err := row.Scan(
		&p.UserID, &p.Name, &p.Age, &p.Address, &p.District, &p.Occupation, &p.BusinessType,
		&p.BusinessDescription, &p.MonthlyIncome, &p.BusinessExperience, &p.Language, &p.OnboardingCompleted,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
