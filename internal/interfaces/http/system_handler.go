package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
)

const pingTimeout = 2 * time.Second

// HealthCheck dependencia consultada por GET /health.
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

// SystemHandler raíz del servicio y chequeos de salud.
type SystemHandler struct {
	version string
	checks  []HealthCheck
}

// NewSystemHandler construye el handler.
func NewSystemHandler(version string, checks ...HealthCheck) *SystemHandler {
	return &SystemHandler{version: version, checks: checks}
}

// Root godoc
// @Summary      Descripción del servicio
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.RootResponse
// @Router       / [get]
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.RootResponse{
		Success: true,
		Message: "Rural Entrepreneur Backend API",
		Version: h.version,
		Endpoints: map[string]string{
			"auth":       "/api/auth",
			"businesses": "/api/businesses",
			"health":     "/api/health",
			"docs":       "/docs",
		},
	})
}

// Health godoc
// @Summary      Estado del servidor
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /api/health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Success: true, Message: "Server is running", Timestamp: time.Now().UTC()})
}

// Liveness godoc
// @Summary      Liveness con chequeo de dependencias
// @Description  503 si alguna dependencia no responde.
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Liveness(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
	defer cancel()

	out := dto.HealthResponse{Success: true, Message: "ok", Timestamp: time.Now().UTC()}
	if len(h.checks) > 0 {
		out.Checks = make(map[string]string, len(h.checks))
	}
	for _, chk := range h.checks {
		if err := chk.Ping(ctx); err != nil {
			out.Success = false
			out.Checks[chk.Name] = "down"
			continue
		}
		out.Checks[chk.Name] = "up"
	}
	if !out.Success {
		out.Message = "degraded"
		return c.Status(fiber.StatusServiceUnavailable).JSON(out)
	}
	return c.JSON(out)
}
