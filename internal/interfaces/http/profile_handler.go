package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/usecase"
)

// ProfileHandler maneja el perfil del emprendedor autenticado.
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener mi perfil
// @Tags         profile
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	if out == nil {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "Profile not found")
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Guardar perfil completo
// @Description  Crea o reemplaza el perfil. Los mensajes por campo siguen ?lang o Accept-Language.
// @Tags         profile
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProfileRequest  true  "perfil"
// @Success      200   {object}  dto.ProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/profile [put]
func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	var in dto.ProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err, "")
	}
	out, err := h.uc.Save(c.UserContext(), requestLang(c), GetUserID(c), in)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(out)
}

// Patch godoc
// @Summary      Actualizar parte del perfil
// @Tags         profile
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.ProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/profile [patch]
func (h *ProfileHandler) Patch(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err, "")
	}
	out, err := h.uc.Patch(c.UserContext(), requestLang(c), GetUserID(c), in)
	if err != nil {
		return writeError(c, err, "Profile not found")
	}
	return c.JSON(out)
}

// SetLanguage godoc
// @Summary      Cambiar idioma preferido
// @Tags         profile
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LanguageRequest  true  "en, hi o mr"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/profile/language [put]
func (h *ProfileHandler) SetLanguage(c *fiber.Ctx) error {
	var in dto.LanguageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.SetLanguage(c.UserContext(), GetUserID(c), in.Language); err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Language updated"})
}

// Options godoc
// @Summary      Opciones del formulario de perfil
// @Tags         profile
// @Produce      json
// @Success      200  {object}  dto.ProfileOptionsResponse
// @Router       /api/profile/options [get]
func (h *ProfileHandler) Options(c *fiber.Ctx) error {
	return c.JSON(h.uc.Options())
}
