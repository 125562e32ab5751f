package usecase

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/ports"
	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/pkg/i18n"
)

var pdfMagic = []byte("%PDF-")

// TranslateInput archivo recibido por multipart.
type TranslateInput struct {
	FileName       string
	ContentType    string
	Content        []byte
	TargetLanguage string
}

// TranslatorUseCase valida el PDF y delega en el adaptador de traducción.
// Cada llamada al adaptador lleva su propio timeout para no bloquear el servidor.
type TranslatorUseCase struct {
	translator ports.DocumentTranslator
	renderer   ports.DocumentRenderer
	timeout    time.Duration
	maxBytes   int64
}

// NewTranslatorUseCase construye el caso de uso. renderer puede ser nil si no se ofrece PDF.
func NewTranslatorUseCase(translator ports.DocumentTranslator, renderer ports.DocumentRenderer, timeout time.Duration, maxBytes int64) *TranslatorUseCase {
	return &TranslatorUseCase{translator: translator, renderer: renderer, timeout: timeout, maxBytes: maxBytes}
}

// MaxBytes tamaño máximo aceptado.
func (uc *TranslatorUseCase) MaxBytes() int64 { return uc.maxBytes }

// Translate traduce el documento. Errores: domain.ErrUnsupportedMedia si no es PDF,
// domain.ErrPayloadTooLarge si excede el límite, context.DeadlineExceeded envuelto si vence el timeout.
func (uc *TranslatorUseCase) Translate(ctx context.Context, in TranslateInput) (*dto.TranslationResponse, error) {
	if len(in.Content) == 0 {
		verr := domain.NewValidationError()
		verr.Add("file", "Please upload a PDF file")
		return nil, verr
	}
	if uc.maxBytes > 0 && int64(len(in.Content)) > uc.maxBytes {
		return nil, domain.ErrPayloadTooLarge
	}
	if !IsPDF(in.ContentType, in.Content) {
		return nil, domain.ErrUnsupportedMedia
	}
	lang := strings.ToLower(strings.TrimSpace(in.TargetLanguage))
	if lang == "" {
		lang = i18n.Default
	}
	if !i18n.Supported(lang) {
		verr := domain.NewValidationError()
		verr.Add("target_language", "Target language must be one of en, hi, mr")
		return nil, verr
	}

	name := filepath.Base(in.FileName)
	if name == "." || name == "/" {
		name = "document.pdf"
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}
	text, err := uc.translator.Translate(ctx, ports.Document{FileName: name, Content: in.Content}, lang)
	if err != nil {
		return nil, fmt.Errorf("traducción: %w", err)
	}
	return &dto.TranslationResponse{
		FileName:       name,
		TargetLanguage: lang,
		Provider:       uc.translator.Name(),
		Text:           text,
		DownloadName:   DownloadName(name, "txt"),
	}, nil
}

// RenderPDF arma el PDF descargable de una traducción.
func (uc *TranslatorUseCase) RenderPDF(res *dto.TranslationResponse) ([]byte, error) {
	if uc.renderer == nil {
		return nil, domain.ErrUnsupportedMedia
	}
	return uc.renderer.RenderTranslation(res.FileName, res.TargetLanguage, res.Text)
}

// IsPDF exige content type application/pdf (o vacío/octet-stream) y la firma %PDF-.
func IsPDF(contentType string, content []byte) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch ct {
	case "application/pdf", "", "application/octet-stream":
	default:
		return false
	}
	return bytes.HasPrefix(content, pdfMagic)
}

// DownloadName nombre del archivo traducido: translated_<nombre> con la extensión .pdf
// reemplazada por la del formato.
func DownloadName(fileName, format string) string {
	base := fileName
	if strings.HasSuffix(strings.ToLower(base), ".pdf") {
		base = base[:len(base)-len(".pdf")]
	}
	return "translated_" + base + "." + format
}
