package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/usecase"
	"github.com/jhoicas/gramin-udyami-api/internal/domain"
)

// KVHandler almacén clave/valor de estado del cliente, por usuario. Sus errores usan la forma {error}.
type KVHandler struct {
	uc *usecase.KVUseCase
}

// NewKVHandler construye el handler.
func NewKVHandler(uc *usecase.KVUseCase) *KVHandler {
	return &KVHandler{uc: uc}
}

func kvError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, domain.ErrInvalidInput) {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(dto.KVErrorResponse{Error: err.Error()})
}

// Get godoc
// @Summary      Leer clave
// @Description  value es null si la clave no existe para el usuario autenticado.
// @Tags         kv
// @Security     Bearer
// @Produce      json
// @Param        key  path  string  true  "clave"
// @Success      200  {object}  dto.KVValueResponse
// @Failure      500  {object}  dto.KVErrorResponse
// @Router       /api/kv/{key} [get]
func (h *KVHandler) Get(c *fiber.Ctx) error {
	v, err := h.uc.Get(c.UserContext(), GetUserID(c), c.Params("key"))
	if err != nil {
		return kvError(c, err)
	}
	return c.JSON(dto.KVValueResponse{Value: v})
}

// Set godoc
// @Summary      Guardar clave
// @Tags         kv
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        key   path  string            true  "clave"
// @Param        body  body  dto.KVSetRequest  true  "{value}"
// @Success      200  {object}  dto.KVOKResponse
// @Failure      400  {object}  dto.KVErrorResponse
// @Failure      500  {object}  dto.KVErrorResponse
// @Router       /api/kv/{key} [post]
func (h *KVHandler) Set(c *fiber.Ctx) error {
	var in dto.KVSetRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.KVErrorResponse{Error: "invalid JSON body"})
	}
	if err := h.uc.Set(c.UserContext(), GetUserID(c), c.Params("key"), in.Value); err != nil {
		return kvError(c, err)
	}
	return c.JSON(dto.KVOKResponse{OK: true})
}

// Delete godoc
// @Summary      Borrar clave
// @Tags         kv
// @Security     Bearer
// @Produce      json
// @Param        key  path  string  true  "clave"
// @Success      200  {object}  dto.KVOKResponse
// @Failure      500  {object}  dto.KVErrorResponse
// @Router       /api/kv/{key} [delete]
func (h *KVHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("key")); err != nil {
		return kvError(c, err)
	}
	return c.JSON(dto.KVOKResponse{OK: true})
}
