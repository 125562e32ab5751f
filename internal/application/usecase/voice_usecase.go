package usecase

import (
	"strings"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/voice"
)

// VoiceUseCase interpreta comandos del asistente de voz.
type VoiceUseCase struct{}

// NewVoiceUseCase construye el caso de uso.
func NewVoiceUseCase() *VoiceUseCase { return &VoiceUseCase{} }

// Interpret resuelve la acción de navegación de la transcripción. lang es el idioma de la
// petición; el cuerpo puede sobrescribirlo.
func (uc *VoiceUseCase) Interpret(lang string, in dto.VoiceInterpretRequest) (*dto.VoiceInterpretResponse, error) {
	if strings.TrimSpace(in.Transcript) == "" {
		verr := domain.NewValidationError()
		verr.Add("transcript", "Transcript is required")
		return nil, verr
	}
	if in.Language != "" {
		lang = in.Language
	}
	r := voice.Interpret(lang, in.Transcript)
	return &dto.VoiceInterpretResponse{
		Matched: r.Matched,
		Action:  r.Action,
		Keyword: r.Keyword,
		Message: r.Message,
		Locale:  r.Locale,
		Hint:    voice.ListeningHint(lang),
		Actions: voice.Actions(),
	}, nil
}
