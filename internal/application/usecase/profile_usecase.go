package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/ports"
	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/account"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/repository"
	"github.com/jhoicas/gramin-udyami-api/pkg/i18n"
)

// ProfileUseCase aplica las reglas del perfil del emprendedor.
type ProfileUseCase struct {
	repo      repository.ProfileRepository
	sanitizer ports.TextSanitizer
}

// NewProfileUseCase construye el caso de uso. sanitizer puede ser nil.
func NewProfileUseCase(repo repository.ProfileRepository, sanitizer ports.TextSanitizer) *ProfileUseCase {
	return &ProfileUseCase{repo: repo, sanitizer: sanitizer}
}

// Get obtiene el perfil; (nil, nil) si el usuario aún no tiene uno.
func (uc *ProfileUseCase) Get(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	p, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToProfileResponse(p), nil
}

// Save crea o reemplaza el perfil completo. lang es el idioma de los mensajes de validación.
func (uc *ProfileUseCase) Save(ctx context.Context, lang, userID string, in dto.ProfileRequest) (*dto.ProfileResponse, error) {
	p := ProfileFromRequest(userID, in, uc.sanitizer)
	if err := account.ValidateProfile(lang, p); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	if existing != nil {
		p.CreatedAt = existing.CreatedAt
		p.OnboardingCompleted = existing.OnboardingCompleted
		if p.Language == "" {
			p.Language = existing.Language
		}
	}
	if p.Language == "" {
		p.Language = i18n.Normalize(lang)
	}
	if err := uc.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return ToProfileResponse(p), nil
}

// Patch actualiza solo los campos enviados. Solo se reportan errores de esos campos.
func (uc *ProfileUseCase) Patch(ctx context.Context, lang, userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	p, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	touched := make(map[string]bool)
	setText := func(field string, dst *string, src *string) {
		if src != nil {
			*dst = clean(uc.sanitizer, *src)
			touched[field] = true
		}
	}
	setText("name", &p.Name, in.Name)
	setText("address", &p.Address, in.Address)
	setText("district", &p.District, in.District)
	setText("occupation", &p.Occupation, in.Occupation)
	setText("business_type", &p.BusinessType, in.BusinessType)
	setText("business_description", &p.BusinessDescription, in.BusinessDescription)
	setText("monthly_income", &p.MonthlyIncome, in.MonthlyIncome)
	setText("business_experience", &p.BusinessExperience, in.BusinessExperience)
	if in.Age != nil {
		p.Age = *in.Age
		touched["age"] = true
	}
	if len(touched) == 0 {
		return ToProfileResponse(p), nil
	}

	if err := account.ValidateProfile(lang, p); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			filtered := domain.NewValidationError()
			for field, msg := range verr.Fields {
				if touched[field] {
					filtered.Add(field, msg)
				}
			}
			if err := filtered.OrNil(); err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return ToProfileResponse(p), nil
}

// Language idioma guardado en el perfil; "" si el usuario no tiene perfil.
func (uc *ProfileUseCase) Language(ctx context.Context, userID string) (string, error) {
	p, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil || p == nil {
		return "", err
	}
	return p.Language, nil
}

// SetLanguage guarda el idioma preferido (en, hi, mr); crea el perfil si no existe.
func (uc *ProfileUseCase) SetLanguage(ctx context.Context, userID, lang string) error {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if !i18n.Supported(lang) {
		verr := domain.NewValidationError()
		verr.Add("language", account.Message(i18n.Default, account.MsgInvalidOption))
		return verr
	}
	return uc.repo.SetLanguage(ctx, userID, lang)
}

// Options listas de selección del formulario.
func (uc *ProfileUseCase) Options() dto.ProfileOptionsResponse {
	return dto.ProfileOptionsResponse{
		Languages:        i18n.Codes(),
		Districts:        entity.Districts,
		Occupations:      entity.Occupations,
		BusinessTypes:    entity.BusinessTypes,
		IncomeRanges:     entity.IncomeRanges,
		ExperienceLevels: entity.ExperienceLevels,
	}
}

// ProfileFromRequest arma la entidad a partir del formulario, limpiando el texto libre.
func ProfileFromRequest(userID string, in dto.ProfileRequest, s ports.TextSanitizer) *entity.Profile {
	lang := ""
	if in.Language != "" {
		lang = i18n.Normalize(in.Language)
	}
	return &entity.Profile{
		UserID:              userID,
		Name:                clean(s, in.Name),
		Age:                 in.Age,
		Address:             clean(s, in.Address),
		District:            clean(s, in.District),
		Occupation:          clean(s, in.Occupation),
		BusinessType:        clean(s, in.BusinessType),
		BusinessDescription: clean(s, in.BusinessDescription),
		MonthlyIncome:       strings.TrimSpace(in.MonthlyIncome),
		BusinessExperience:  strings.TrimSpace(in.BusinessExperience),
		Language:            lang,
	}
}

// ToProfileResponse mapea la entidad; nil si p es nil.
func ToProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		UserID:              p.UserID,
		Name:                p.Name,
		Age:                 p.Age,
		Address:             p.Address,
		District:            p.District,
		Occupation:          p.Occupation,
		BusinessType:        p.BusinessType,
		BusinessDescription: p.BusinessDescription,
		MonthlyIncome:       p.MonthlyIncome,
		BusinessExperience:  p.BusinessExperience,
		Language:            p.Language,
		OnboardingCompleted: p.OnboardingCompleted,
		Complete:            p.IsComplete(),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func clean(s ports.TextSanitizer, v string) string {
	v = strings.TrimSpace(v)
	if s == nil {
		return v
	}
	return strings.TrimSpace(s.Sanitize(v))
}
