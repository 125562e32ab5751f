package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
)

// accountChecker es el contrato mínimo que necesita el middleware para verificar la cuenta.
// Lo implementa *auth.AuthUseCase.
type accountChecker interface {
	CurrentAccount(ctx context.Context, userID string) (role string, active bool, err error)
}

// RequireActiveAccount bloquea a cuentas suspendidas o borradas aunque su token siga vigente,
// y reemplaza LocalRole por el rol guardado: un admin degradado deja de serlo antes de que venza su token.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalUserID).
//
// Comportamiento:
//   - 401 si no hay user_id en el contexto.
//   - 403 ACCOUNT_SUSPENDED si la cuenta no está activa.
//   - 503 ACCOUNT_CHECK_FAILED si falla la consulta al almacén.
func RequireActiveAccount(checker accountChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "No token, authorization denied",
			})
		}

		role, active, err := checker.CurrentAccount(c.UserContext(), userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ACCOUNT_CHECK_FAILED",
				Message: "Could not verify the account, try again later",
			})
		}

		if !active {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "ACCOUNT_SUSPENDED",
				Message: "This account is not active",
			})
		}

		c.Locals(LocalRole, role)
		return c.Next()
	}
}
