package dto

// VoiceInterpretRequest transcripción reconocida en el cliente.
type VoiceInterpretRequest struct {
	Transcript string `json:"transcript" validate:"required,max=500"`
	Language   string `json:"language" validate:"omitempty,oneof=en hi mr"`
}

// VoiceInterpretResponse acción de navegación y mensaje hablado. Hint es el texto que el cliente
// muestra al volver a escuchar; Actions lista las acciones reconocibles.
type VoiceInterpretResponse struct {
	Matched bool     `json:"matched"`
	Action  string   `json:"action,omitempty"`
	Keyword string   `json:"keyword,omitempty"`
	Message string   `json:"message"`
	Locale  string   `json:"locale"`
	Hint    string   `json:"hint"`
	Actions []string `json:"actions"`
}
