package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/usecase"
)

// VoiceHandler interpreta transcripciones del asistente de voz.
type VoiceHandler struct {
	uc        *usecase.VoiceUseCase
	languages languageStore
}

// NewVoiceHandler construye el handler. languages puede ser nil.
func NewVoiceHandler(uc *usecase.VoiceUseCase, languages languageStore) *VoiceHandler {
	return &VoiceHandler{uc: uc, languages: languages}
}

// Interpret godoc
// @Summary      Interpretar comando de voz
// @Description  Devuelve la acción de navegación y el mensaje a leer en voz alta. Con token y sin
// @Description  idioma explícito usa el idioma del perfil.
// @Tags         voice
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VoiceInterpretRequest  true  "transcript, language"
// @Success      200   {object}  dto.VoiceInterpretResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/voice/interpret [post]
func (h *VoiceHandler) Interpret(c *fiber.Ctx) error {
	var in dto.VoiceInterpretRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err, "")
	}
	out, err := h.uc.Interpret(userLang(c, h.languages), in)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(out)
}
