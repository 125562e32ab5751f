package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/usecase"
	"github.com/jhoicas/gramin-udyami-api/internal/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BusinessHandler maneja el directorio de microempresas.
type BusinessHandler struct {
	uc *usecase.BusinessUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

func businessFilter(c *fiber.Ctx) dto.BusinessFilterRequest {
	return dto.BusinessFilterRequest{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		State:    c.Query("state"),
		District: c.Query("district"),
		PageRequest: dto.PageRequest{
			Limit:  c.QueryInt("limit", 20),
			Offset: c.QueryInt("offset", 0),
		},
	}
}

// List godoc
// @Summary      Listar negocios
// @Description  Público. Más recientes primero.
// @Tags         businesses
// @Produce      json
// @Param        category  query  string  false  "Agriculture, Dairy, ..."
// @Param        status    query  string  false  "planning, active, seeking-investment, closed"
// @Param        state     query  string  false  "estado"
// @Param        district  query  string  false  "distrito"
// @Param        limit     query  int     false  "default 20, máx 100"
// @Param        offset    query  int     false  "default 0"
// @Success      200  {object}  dto.BusinessListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/businesses [get]
func (h *BusinessHandler) List(c *fiber.Ctx) error {
	in := businessFilter(c)
	if err := validateStruct(in.PageRequest); err != nil {
		return writeError(c, err, "")
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas del directorio
// @Description  Público. Cantidades por categoría, estado y distrito, y totales de inversión.
// @Tags         businesses
// @Produce      json
// @Param        category  query  string  false  "categoría"
// @Param        status    query  string  false  "estado del negocio"
// @Param        state     query  string  false  "estado"
// @Param        district  query  string  false  "distrito"
// @Success      200  {object}  dto.BusinessStatsResponse
// @Router       /api/businesses/stats [get]
func (h *BusinessHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext(), businessFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Mis negocios
// @Tags         businesses
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BusinessListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/businesses/my-businesses [get]
func (h *BusinessHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.UserContext(), GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener negocio
// @Tags         businesses
// @Produce      json
// @Param        id   path  string  true  "ID del negocio"
// @Success      200  {object}  dto.BusinessEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/businesses/{id} [get]
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	if out == nil {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "Business not found")
	}
	return c.JSON(dto.BusinessEnvelope{Success: true, Data: out})
}

// Create godoc
// @Summary      Crear negocio
// @Description  El dueño es siempre el usuario autenticado.
// @Tags         businesses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBusinessRequest  true  "negocio"
// @Success      201   {object}  dto.BusinessEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/businesses [post]
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err, "")
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.BusinessEnvelope{
		Success: true, Message: "Business created successfully", Data: out,
	})
}

// Update godoc
// @Summary      Actualizar negocio
// @Description  Solo el dueño o un admin.
// @Tags         businesses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del negocio"
// @Param        body  body  dto.UpdateBusinessRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.BusinessEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/businesses/{id} [put]
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err, "")
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), GetRole(c), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotOwner) {
			return errorJSON(c, fiber.StatusUnauthorized, "NOT_AUTHORIZED", "Not authorized to update this business")
		}
		return writeError(c, err, "Business not found")
	}
	return c.JSON(dto.BusinessEnvelope{Success: true, Message: "Business updated successfully", Data: out})
}

// Delete godoc
// @Summary      Eliminar negocio
// @Description  Solo el dueño o un admin.
// @Tags         businesses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del negocio"
// @Success      200  {object}  dto.DeleteBusinessResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/businesses/{id} [delete]
func (h *BusinessHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(c.UserContext(), GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotOwner) {
			return errorJSON(c, fiber.StatusUnauthorized, "NOT_AUTHORIZED", "Not authorized to delete this business")
		}
		return writeError(c, err, "Business not found")
	}
	return c.JSON(dto.DeleteBusinessResponse{Success: true, Message: "Business deleted successfully"})
}

// Export godoc
// @Summary      Exportar directorio a Excel
// @Description  Solo admin. Aplica los mismos filtros que el listado, sin paginar.
// @Tags         businesses
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        category  query  string  false  "categoría"
// @Param        status    query  string  false  "estado del negocio"
// @Param        state     query  string  false  "estado"
// @Param        district  query  string  false  "distrito"
// @Success      200  {file}    file
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/businesses/export [get]
func (h *BusinessHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.Export(c.UserContext(), businessFilter(c))
	if err != nil {
		return err
	}
	c.Attachment("businesses_" + time.Now().Format("20060102") + ".xlsx")
	c.Set(fiber.HeaderContentType, xlsxContentType)
	return c.Send(data)
}
