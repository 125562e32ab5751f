package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/usecase"
)

// RecommendationHandler sugerencias de esquemas a partir del perfil y avisos de la campana.
type RecommendationHandler struct {
	uc            *usecase.RecommendationUseCase
	notifications *usecase.NotificationUseCase
	languages     languageStore
}

// NewRecommendationHandler construye el handler. languages resuelve el idioma de Preview cuando
// llega un token; puede ser nil.
func NewRecommendationHandler(uc *usecase.RecommendationUseCase, notifications *usecase.NotificationUseCase, languages languageStore) *RecommendationHandler {
	return &RecommendationHandler{uc: uc, notifications: notifications, languages: languages}
}

// List godoc
// @Summary      Recomendaciones para mi perfil
// @Description  Sin ?lang usa el idioma guardado en el perfil.
// @Tags         recommendations
// @Security     Bearer
// @Produce      json
// @Param        lang  query  string  false  "en, hi o mr"
// @Success      200  {object}  dto.RecommendationListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/recommendations [get]
func (h *RecommendationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ForUser(c.UserContext(), GetUserID(c), c.Query("lang"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Preview godoc
// @Summary      Recomendaciones sin cuenta
// @Description  El token es opcional; si llega y no hay ?lang ni language en el cuerpo, responde en el idioma del perfil.
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecommendationPreviewRequest  true  "ocupación, tipo de negocio y experiencia"
// @Success      200   {object}  dto.RecommendationListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/recommendations/preview [post]
func (h *RecommendationHandler) Preview(c *fiber.Ctx) error {
	var in dto.RecommendationPreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(h.uc.Preview(userLang(c, h.languages), in))
}

// Report godoc
// @Summary      Informe PDF de recomendaciones
// @Tags         recommendations
// @Security     Bearer
// @Produce      application/pdf
// @Param        lang  query  string  false  "en, hi o mr"
// @Success      200  {file}    file
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recommendations/report.pdf [get]
func (h *RecommendationHandler) Report(c *fiber.Ctx) error {
	data, err := h.uc.Report(c.UserContext(), GetUserID(c), c.Query("lang"))
	if err != nil {
		return writeError(c, err, "Profile not found")
	}
	c.Attachment("recommendations.pdf")
	return c.Send(data)
}

// Notifications godoc
// @Summary      Avisos del usuario
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        lang  query  string  false  "en, hi o mr"
// @Success      200  {object}  dto.NotificationListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/notifications [get]
func (h *RecommendationHandler) Notifications(c *fiber.Ctx) error {
	out, err := h.notifications.List(c.UserContext(), GetUserID(c), c.Query("lang"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
