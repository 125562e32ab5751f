package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/pkg/logger"
)

func errorJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

func invalidBody(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
}

// writeError traduce errores de dominio a respuestas HTTP. notFound es el mensaje para
// domain.ErrNotFound; los errores no reconocidos suben al ErrorHandler de la app.
func writeError(c *fiber.Ctx, err error, notFound string) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "Validation failed", Fields: verr.Fields,
		})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		if notFound == "" {
			notFound = "Resource not found"
		}
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", notFound)
	case errors.Is(err, domain.ErrUserIDTaken):
		return errorJSON(c, fiber.StatusConflict, "USER_ID_TAKEN", "User ID already exists")
	case errors.Is(err, domain.ErrDuplicate):
		return errorJSON(c, fiber.StatusConflict, "DUPLICATE", "Resource already exists")
	case errors.Is(err, domain.ErrConflict):
		return errorJSON(c, fiber.StatusConflict, "CONFLICT", "Operation not allowed in the current state")
	case errors.Is(err, domain.ErrUnauthorized):
		return errorJSON(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Not authorized")
	case errors.Is(err, domain.ErrForbidden):
		return errorJSON(c, fiber.StatusForbidden, "FORBIDDEN", "Access denied")
	case errors.Is(err, domain.ErrUnsupportedMedia):
		return errorJSON(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA", "Please upload a PDF file")
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return errorJSON(c, fiber.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "File is too large")
	case errors.Is(err, context.DeadlineExceeded):
		return errorJSON(c, fiber.StatusRequestTimeout, "TIMEOUT", "The request took too long, please try again")
	case errors.Is(err, domain.ErrTranslatorUnavailable):
		return errorJSON(c, fiber.StatusServiceUnavailable, "TRANSLATOR_UNAVAILABLE", "Translation service is not available")
	case errors.Is(err, domain.ErrInvalidInput):
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_INPUT", "Invalid input")
	}
	return err
}

// ErrorHandler responde 500 INTERNAL para errores no mapeados y conserva el status de los
// *fiber.Error (404 de rutas, 413 de body limit).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := "HTTP_ERROR"
			switch fe.Code {
			case fiber.StatusNotFound:
				code = "NOT_FOUND"
			case fiber.StatusRequestEntityTooLarge:
				code = "PAYLOAD_TOO_LARGE"
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			}
			return errorJSON(c, fe.Code, code, fe.Message)
		}
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no controlado")
		return errorJSON(c, fiber.StatusInternalServerError, "INTERNAL", "Internal server error")
	}
}
