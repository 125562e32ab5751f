package dto

// OnboardingResolveRequest presencia de los datos que el cliente tiene guardados.
// Cada campo cuenta como presente si no está vacío.
type OnboardingResolveRequest struct {
	UserLanguage string `json:"userLanguage"`
	UserData     string `json:"userData"`
	ProfileData  string `json:"profileData"`
}

// OnboardingStateResponse paso actual y siguiente del flujo.
type OnboardingStateResponse struct {
	Step  string   `json:"step"`
	Next  string   `json:"next"`
	Steps []string `json:"steps"`
}
