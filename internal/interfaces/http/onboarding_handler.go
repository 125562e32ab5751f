package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/usecase"
	"github.com/jhoicas/gramin-udyami-api/internal/domain"
)

// OnboardingHandler expone el flujo idioma → registro → login → perfil → esquemas.
type OnboardingHandler struct {
	uc *usecase.OnboardingUseCase
}

// NewOnboardingHandler construye el handler.
func NewOnboardingHandler(uc *usecase.OnboardingUseCase) *OnboardingHandler {
	return &OnboardingHandler{uc: uc}
}

// Resolve godoc
// @Summary      Paso de onboarding según datos del cliente
// @Description  Cada campo cuenta como presente si no está vacío.
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OnboardingResolveRequest  true  "userLanguage, userData, profileData"
// @Success      200   {object}  dto.OnboardingStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/onboarding/resolve [post]
func (h *OnboardingHandler) Resolve(c *fiber.Ctx) error {
	var in dto.OnboardingResolveRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.uc.Resolve(in))
}

// State godoc
// @Summary      Paso de onboarding del usuario autenticado
// @Tags         onboarding
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OnboardingStateResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/onboarding [get]
func (h *OnboardingHandler) State(c *fiber.Ctx) error {
	out, err := h.uc.State(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Terminar onboarding
// @Description  Exige un perfil completo; si falta algún dato responde 409.
// @Tags         onboarding
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OnboardingStateResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/onboarding/complete [post]
func (h *OnboardingHandler) Complete(c *fiber.Ctx) error {
	out, err := h.uc.Complete(c.UserContext(), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return errorJSON(c, fiber.StatusConflict, "PROFILE_INCOMPLETE", "Complete your profile before finishing onboarding")
		}
		return writeError(c, err, "")
	}
	return c.JSON(out)
}
