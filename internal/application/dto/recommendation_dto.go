package dto

// RecommendationResponse esquema sugerido con sus textos localizados.
type RecommendationResponse struct {
	Key         string   `json:"key"`
	SchemeID    int      `json:"scheme_id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Benefit     string   `json:"benefit"`
	Match       string   `json:"match"` // high | medium
	Reasons     []string `json:"reasons"`
	NextSteps   []string `json:"next_steps"`
}

// RecommendationListResponse recomendaciones para un perfil.
type RecommendationListResponse struct {
	Language        string                   `json:"language"`
	ProfileComplete bool                     `json:"profile_complete"`
	Count           int                      `json:"count"`
	Data            []RecommendationResponse `json:"data"`
}

// RecommendationPreviewRequest perfil enviado sin cuenta para ver sugerencias.
type RecommendationPreviewRequest struct {
	Occupation         string `json:"occupation" validate:"max=100"`
	BusinessType       string `json:"business_type" validate:"max=100"`
	BusinessExperience string `json:"business_experience" validate:"max=50"`
	Language           string `json:"language" validate:"omitempty,oneof=en hi mr"`
}
