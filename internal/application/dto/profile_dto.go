package dto

import "time"

// ProfileRequest formulario completo del perfil (PUT). Las reglas de obligatoriedad,
// edad y bandas se aplican en dominio para devolver mensajes traducidos.
type ProfileRequest struct {
	Name                string `json:"name" validate:"max=200"`
	Age                 int    `json:"age" validate:"min=0,max=150"`
	Address             string `json:"address" validate:"max=500"`
	District            string `json:"district" validate:"max=100"`
	Occupation          string `json:"occupation" validate:"max=100"`
	BusinessType        string `json:"business_type" validate:"max=100"`
	BusinessDescription string `json:"business_description" validate:"max=2000"`
	MonthlyIncome       string `json:"monthly_income" validate:"max=50"`
	BusinessExperience  string `json:"business_experience" validate:"max=50"`
	Language            string `json:"language" validate:"omitempty,oneof=en hi mr"`
}

// UpdateProfileRequest actualización parcial (PATCH).
type UpdateProfileRequest struct {
	Name                *string `json:"name" validate:"omitempty,max=200"`
	Age                 *int    `json:"age" validate:"omitempty,min=0,max=150"`
	Address             *string `json:"address" validate:"omitempty,max=500"`
	District            *string `json:"district" validate:"omitempty,max=100"`
	Occupation          *string `json:"occupation" validate:"omitempty,max=100"`
	BusinessType        *string `json:"business_type" validate:"omitempty,max=100"`
	BusinessDescription *string `json:"business_description" validate:"omitempty,max=2000"`
	MonthlyIncome       *string `json:"monthly_income" validate:"omitempty,max=50"`
	BusinessExperience  *string `json:"business_experience" validate:"omitempty,max=50"`
}

// ProfileResponse salida del perfil.
type ProfileResponse struct {
	UserID              string    `json:"user_id"`
	Name                string    `json:"name"`
	Age                 int       `json:"age"`
	Address             string    `json:"address"`
	District            string    `json:"district"`
	Occupation          string    `json:"occupation"`
	BusinessType        string    `json:"business_type"`
	BusinessDescription string    `json:"business_description"`
	MonthlyIncome       string    `json:"monthly_income"`
	BusinessExperience  string    `json:"business_experience"`
	Language            string    `json:"language"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	Complete            bool      `json:"complete"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// LanguageRequest cambio de idioma preferido.
type LanguageRequest struct {
	Language string `json:"language" validate:"required,oneof=en hi mr"`
}

// ProfileOptionsResponse listas de selección del formulario de perfil.
type ProfileOptionsResponse struct {
	Languages        []string `json:"languages"`
	Districts        []string `json:"districts"`
	Occupations      []string `json:"occupations"`
	BusinessTypes    []string `json:"business_types"`
	IncomeRanges     []string `json:"income_ranges"`
	ExperienceLevels []string `json:"experience_levels"`
}
