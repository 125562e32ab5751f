package repository

import "github.com/jhoicas/gramin-udyami-api/internal/domain/entity"

// ContentRepository catálogo de contenido estático (solo lectura).
type ContentRepository interface {
	Schemes() []entity.Scheme
	SchemeCategories() []entity.SchemeCategory
	Tools() []entity.DigitalTool
	Stories() []entity.SuccessStory
	RecommendationTemplate(key string) (entity.RecommendationTemplate, bool)
	VideoCategories() []entity.VideoCategory
	Videos() []entity.VideoTutorial
	Contact() entity.HelpContact
}
