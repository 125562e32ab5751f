package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gramin-udyami-api/internal/application/usecase"
)

// ContentHandler sirve el catálogo de esquemas, herramientas digitales y casos de éxito.
// El idioma sale de ?lang, luego Accept-Language, luego inglés.
type ContentHandler struct {
	uc *usecase.ContentUseCase
}

// NewContentHandler construye el handler.
func NewContentHandler(uc *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// ListSchemes godoc
// @Summary      Listar esquemas del gobierno
// @Tags         content
// @Produce      json
// @Param        lang      query  string  false  "en, hi o mr"
// @Param        category  query  string  false  "clave de categoría o all"
// @Success      200  {object}  dto.SchemeListResponse
// @Router       /api/schemes [get]
func (h *ContentHandler) ListSchemes(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListSchemes(requestLang(c), c.Query("category")))
}

// GetScheme godoc
// @Summary      Obtener esquema
// @Tags         content
// @Produce      json
// @Param        id    path   string  true   "id numérico o slug"
// @Param        lang  query  string  false  "en, hi o mr"
// @Success      200  {object}  dto.SchemeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/schemes/{id} [get]
func (h *ContentHandler) GetScheme(c *fiber.Ctx) error {
	out := h.uc.GetScheme(requestLang(c), c.Params("id"))
	if out == nil {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "Scheme not found")
	}
	return c.JSON(out)
}

// SchemesFeed godoc
// @Summary      RSS de esquemas
// @Tags         content
// @Produce      application/rss+xml
// @Param        lang  query  string  false  "en, hi o mr"
// @Success      200  {string}  string
// @Router       /api/schemes/feed.xml [get]
func (h *ContentHandler) SchemesFeed(c *fiber.Ctx) error {
	data, err := h.uc.SchemesFeed(requestLang(c), c.BaseURL())
	if err != nil {
		return writeError(c, err, "Feed not available")
	}
	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.Send(data)
}

// ListTools godoc
// @Summary      Listar herramientas digitales
// @Tags         content
// @Produce      json
// @Param        lang  query  string  false  "en, hi o mr"
// @Success      200  {object}  dto.ToolListResponse
// @Router       /api/tools [get]
func (h *ContentHandler) ListTools(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListTools(requestLang(c)))
}

// GetTool godoc
// @Summary      Obtener herramienta digital
// @Tags         content
// @Produce      json
// @Param        id    path   int     true   "id"
// @Param        lang  query  string  false  "en, hi o mr"
// @Success      200  {object}  dto.ToolResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tools/{id} [get]
func (h *ContentHandler) GetTool(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_ID", "Tool id must be a positive number")
	}
	out := h.uc.GetTool(requestLang(c), id)
	if out == nil {
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", "Tool not found")
	}
	return c.JSON(out)
}

// ListStories godoc
// @Summary      Casos de éxito
// @Tags         content
// @Produce      json
// @Param        lang  query  string  false  "en, hi o mr"
// @Success      200  {object}  dto.StoryListResponse
// @Router       /api/stories [get]
func (h *ContentHandler) ListStories(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListStories(requestLang(c)))
}

// Search godoc
// @Summary      Buscar esquemas y herramientas
// @Tags         content
// @Produce      json
// @Param        q     query  string  true   "mínimo 2 caracteres"
// @Param        lang  query  string  false  "en, hi o mr"
// @Success      200  {object}  dto.SearchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/search [get]
func (h *ContentHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(requestLang(c), c.Query("q"))
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(out)
}

// ListVideos godoc
// @Summary      Listar tutoriales en video
// @Tags         content
// @Produce      json
// @Param        lang      query  string  false  "en, hi o mr"
// @Param        category  query  string  false  "application, documents, digital, success o all"
// @Success      200  {object}  dto.VideoListResponse
// @Router       /api/videos [get]
func (h *ContentHandler) ListVideos(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListVideos(requestLang(c), c.Query("category")))
}

// Contact godoc
// @Summary      Línea de ayuda, oficina regional y preguntas frecuentes
// @Tags         content
// @Produce      json
// @Param        lang  query  string  false  "en, hi o mr"
// @Success      200  {object}  dto.ContactResponse
// @Router       /api/contact [get]
func (h *ContentHandler) Contact(c *fiber.Ctx) error {
	return c.JSON(h.uc.Contact(requestLang(c)))
}
