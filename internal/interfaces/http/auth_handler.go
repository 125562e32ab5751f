package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gramin-udyami-api/internal/application/auth"
	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/domain"
)

// AuthHandler maneja registro, login y sesión.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Description  Crea la cuenta y su perfil en una transacción. Los mensajes de validación siguen ?lang o Accept-Language.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        lang  query  string               false  "en, hi o mr"
// @Param        body  body   dto.RegisterRequest  true   "user_id, password, confirm_password, language, profile"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err, "")
	}
	user, err := h.uc.Register(c.UserContext(), requestLang(c), in)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "user_id, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err, "")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return errorJSON(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid user ID or password")
		}
		if errors.Is(err, domain.ErrForbidden) {
			return errorJSON(c, fiber.StatusForbidden, "ACCOUNT_SUSPENDED", "This account is not active")
		}
		return err
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err, "User not found")
	}
	return c.JSON(out)
}

// PasswordStrength godoc
// @Summary      Medidor de contraseña
// @Description  Puntaje 0, 25, 50, 75 o 100 con el mismo criterio del formulario de registro.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PasswordStrengthRequest  true  "password"
// @Success      200   {object}  dto.PasswordStrengthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/password-strength [post]
func (h *AuthHandler) PasswordStrength(c *fiber.Ctx) error {
	var in dto.PasswordStrengthRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.uc.PasswordStrength(in.Password))
}
