package ports

import (
	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
)

// DocumentRenderer genera los PDF descargables.
type DocumentRenderer interface {
	// RenderTranslation arma un PDF con el texto traducido.
	RenderTranslation(fileName, targetLang, text string) ([]byte, error)
	// RenderRecommendations arma el reporte de esquemas sugeridos para un perfil.
	RenderRecommendations(profile *dto.ProfileResponse, recs *dto.RecommendationListResponse) ([]byte, error)
}

// BusinessExporter genera la planilla del directorio de negocios.
type BusinessExporter interface {
	ExportBusinesses(items []dto.BusinessResponse) ([]byte, error)
}

// SchemeFeedBuilder genera el feed RSS de esquemas.
type SchemeFeedBuilder interface {
	BuildSchemeFeed(lang, baseURL string, schemes []dto.SchemeResponse) ([]byte, error)
}

// TextSanitizer limpia HTML y scripts de texto libre antes de persistirlo.
type TextSanitizer interface {
	Sanitize(s string) string
}
