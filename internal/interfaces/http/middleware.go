package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gramin-udyami-api/pkg/i18n"
	"github.com/jhoicas/gramin-udyami-api/pkg/logger"
)

// RequestLogger escribe un evento por petición. Debe registrarse después de requestid.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", GetUserID(c)).
			Msg("http")
		return err
	}
}

// requestLang idioma de la petición: ?lang=, luego Accept-Language, luego inglés.
func requestLang(c *fiber.Ctx) string {
	return i18n.Resolve(c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage))
}

// languageStore idioma preferido guardado por usuario. Lo implementa *usecase.ProfileUseCase.
type languageStore interface {
	Language(ctx context.Context, userID string) (string, error)
}

// userLang idioma para rutas con OptionalAuth: ?lang=, luego el idioma del perfil del usuario
// autenticado, luego Accept-Language. Si la consulta del perfil falla se sigue con el header.
func userLang(c *fiber.Ctx, store languageStore) string {
	if q := c.Query("lang"); q != "" || store == nil {
		return requestLang(c)
	}
	if userID := GetUserID(c); userID != "" {
		if lang, err := store.Language(c.UserContext(), userID); err == nil && i18n.Supported(lang) {
			return lang
		}
	}
	return requestLang(c)
}
