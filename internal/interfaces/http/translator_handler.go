package http

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gramin-udyami-api/internal/application/usecase"
	"github.com/jhoicas/gramin-udyami-api/internal/domain"
)

// Formatos de salida de la traducción.
const (
	formatJSON = "json"
	formatTXT  = "txt"
	formatPDF  = "pdf"
)

// TranslatorHandler traduce PDFs subidos por multipart.
type TranslatorHandler struct {
	uc *usecase.TranslatorUseCase
}

// NewTranslatorHandler construye el handler.
func NewTranslatorHandler(uc *usecase.TranslatorUseCase) *TranslatorHandler {
	return &TranslatorHandler{uc: uc}
}

// Translate godoc
// @Summary      Traducir un PDF
// @Description  Solo application/pdf. format=json (default), txt o pdf. El proveedor tiene un timeout propio; si vence responde 408.
// @Tags         translator
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file             formData  file    true   "PDF a traducir"
// @Param        target_language  formData  string  false  "en, hi o mr (default en)"
// @Param        format           query     string  false  "json, txt o pdf"
// @Success      200  {object}  dto.TranslationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      408  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Failure      415  {object}  dto.ErrorResponse
// @Router       /api/translator/translate [post]
func (h *TranslatorHandler) Translate(c *fiber.Ctx) error {
	format := strings.ToLower(c.Query("format", c.FormValue("format", formatJSON)))
	switch format {
	case formatJSON, formatTXT, formatPDF:
	default:
		return errorJSON(c, fiber.StatusBadRequest, "INVALID_FORMAT", "Format must be one of json, txt, pdf")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "MISSING_FILE", "Please upload a PDF file")
	}
	if limit := h.uc.MaxBytes(); limit > 0 && fh.Size > limit {
		return writeError(c, domain.ErrPayloadTooLarge, "")
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	res, err := h.uc.Translate(c.UserContext(), usecase.TranslateInput{
		FileName:       fh.Filename,
		ContentType:    fh.Header.Get(fiber.HeaderContentType),
		Content:        content,
		TargetLanguage: c.FormValue("target_language", c.FormValue("targetLanguage")),
	})
	if err != nil {
		return writeError(c, err, "")
	}

	switch format {
	case formatTXT:
		c.Attachment(usecase.DownloadName(res.FileName, formatTXT))
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(res.Text)
	case formatPDF:
		data, err := h.uc.RenderPDF(res)
		if err != nil {
			return writeError(c, err, "")
		}
		c.Attachment(usecase.DownloadName(res.FileName, formatPDF))
		return c.Send(data)
	}
	return c.JSON(res)
}
