package usecase

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/ports"
	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/repository"
	"github.com/jhoicas/gramin-udyami-api/pkg/i18n"
)

// MinSearchLength largo mínimo (en runas) de una consulta de búsqueda.
const MinSearchLength = 2

const youTubeWatchURL = "https://www.youtube.com/watch?v="

// Kinds de resultados de búsqueda.
const (
	SearchKindScheme = "scheme"
	SearchKindTool   = "tool"
)

// ContentUseCase expone el catálogo (esquemas, herramientas, historias) ya traducido.
type ContentUseCase struct {
	repo repository.ContentRepository
	feed ports.SchemeFeedBuilder
}

// NewContentUseCase construye el caso de uso. feed puede ser nil si no se publica RSS.
func NewContentUseCase(repo repository.ContentRepository, feed ports.SchemeFeedBuilder) *ContentUseCase {
	return &ContentUseCase{repo: repo, feed: feed}
}

// ListSchemes esquemas en lang; category vacío o "all" no filtra.
func (uc *ContentUseCase) ListSchemes(lang, category string) dto.SchemeListResponse {
	lang = i18n.Normalize(lang)
	labels := uc.categoryLabels(lang)
	out := dto.SchemeListResponse{Language: lang, Data: []dto.SchemeResponse{}}
	for _, c := range uc.repo.SchemeCategories() {
		out.Categories = append(out.Categories, dto.SchemeCategoryResponse{Key: c.Key, Label: c.Label.In(lang)})
	}
	filter := strings.ToLower(strings.TrimSpace(category))
	for _, s := range uc.repo.Schemes() {
		if filter != "" && filter != "all" && s.Category != filter {
			continue
		}
		out.Data = append(out.Data, toSchemeResponse(s, lang, labels))
	}
	out.Count = len(out.Data)
	return out
}

// GetScheme busca por id numérico o slug; nil si no existe.
func (uc *ContentUseCase) GetScheme(lang, idOrSlug string) *dto.SchemeResponse {
	lang = i18n.Normalize(lang)
	id, _ := strconv.Atoi(idOrSlug)
	for _, s := range uc.repo.Schemes() {
		if (id > 0 && s.ID == id) || (s.Slug != "" && s.Slug == idOrSlug) {
			r := toSchemeResponse(s, lang, uc.categoryLabels(lang))
			return &r
		}
	}
	return nil
}

// ListTools guías de herramientas digitales en lang.
func (uc *ContentUseCase) ListTools(lang string) dto.ToolListResponse {
	lang = i18n.Normalize(lang)
	out := dto.ToolListResponse{Language: lang, Data: []dto.ToolResponse{}}
	for _, t := range uc.repo.Tools() {
		out.Data = append(out.Data, toToolResponse(t, lang))
	}
	out.Count = len(out.Data)
	return out
}

// GetTool guía por id; nil si no existe.
func (uc *ContentUseCase) GetTool(lang string, id int) *dto.ToolResponse {
	lang = i18n.Normalize(lang)
	for _, t := range uc.repo.Tools() {
		if t.ID == id {
			r := toToolResponse(t, lang)
			return &r
		}
	}
	return nil
}

// ListStories casos de éxito en lang.
func (uc *ContentUseCase) ListStories(lang string) dto.StoryListResponse {
	lang = i18n.Normalize(lang)
	out := dto.StoryListResponse{Language: lang, Data: []dto.StoryResponse{}}
	for _, s := range uc.repo.Stories() {
		out.Data = append(out.Data, dto.StoryResponse{
			ID:           s.ID,
			Name:         s.Name.In(lang),
			Age:          s.Age,
			Location:     s.Location.In(lang),
			Business:     s.Business.In(lang),
			Scheme:       s.Scheme.In(lang),
			BeforeIncome: s.BeforeIncome.In(lang),
			AfterIncome:  s.AfterIncome.In(lang),
			Story:        s.Story.In(lang),
			DigitalTools: s.DigitalTools.In(lang),
			Timeframe:    s.Timeframe.In(lang),
			ImageURL:     s.ImageURL,
		})
	}
	out.Count = len(out.Data)
	return out
}

// ListVideos tutoriales en lang; category vacío o "all" no filtra.
func (uc *ContentUseCase) ListVideos(lang, category string) dto.VideoListResponse {
	lang = i18n.Normalize(lang)
	out := dto.VideoListResponse{Language: lang, Categories: []dto.VideoCategoryResponse{}, Data: []dto.VideoResponse{}}
	labels := make(map[string]string)
	for _, c := range uc.repo.VideoCategories() {
		labels[c.Key] = c.Label.In(lang)
		out.Categories = append(out.Categories, dto.VideoCategoryResponse{Key: c.Key, Label: labels[c.Key]})
	}
	filter := strings.ToLower(strings.TrimSpace(category))
	for _, v := range uc.repo.Videos() {
		if filter != "" && filter != "all" && v.Category != filter {
			continue
		}
		out.Data = append(out.Data, dto.VideoResponse{
			ID:            v.ID,
			Category:      v.Category,
			CategoryLabel: labels[v.Category],
			Title:         v.Title.In(lang),
			Description:   v.Description.In(lang),
			Duration:      v.Duration,
			Views:         v.Views,
			ThumbnailURL:  v.ThumbnailURL,
			WatchURL:      youTubeWatchURL + v.ID,
		})
	}
	out.Count = len(out.Data)
	return out
}

// Contact línea de ayuda, oficina y preguntas frecuentes en lang.
func (uc *ContentUseCase) Contact(lang string) dto.ContactResponse {
	lang = i18n.Normalize(lang)
	c := uc.repo.Contact()
	out := dto.ContactResponse{
		Language:            lang,
		Title:               c.Title.In(lang),
		Subtitle:            c.Subtitle.In(lang),
		HelplineTitle:       c.HelplineTitle.In(lang),
		HelplineDescription: c.HelplineDesc.In(lang),
		Phone:               c.Phone,
		WhatsAppLabel:       c.WhatsAppLabel.In(lang),
		OfficeTitle:         c.OfficeTitle.In(lang),
		OfficeAddress:       c.OfficeAddress.In(lang),
		OfficeHours:         c.OfficeHours.In(lang),
		FAQs:                make([]dto.FAQResponse, 0, len(c.FAQs)),
	}
	for _, f := range c.FAQs {
		out.FAQs = append(out.FAQs, dto.FAQResponse{Question: f.Question.In(lang), Answer: f.Answer.In(lang)})
	}
	return out
}

// Search busca q (sin distinguir mayúsculas) en título, descripción y categoría de esquemas
// y herramientas. Compara contra el texto en lang y en inglés.
func (uc *ContentUseCase) Search(lang, q string) (*dto.SearchResponse, error) {
	lang = i18n.Normalize(lang)
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < MinSearchLength {
		verr := domain.NewValidationError()
		verr.Add("q", "Search query must be at least 2 characters")
		return nil, verr
	}
	match := func(values ...string) bool {
		for _, v := range values {
			if i18n.ContainsFold(v, q) {
				return true
			}
		}
		return false
	}
	labels := uc.categoryLabels(lang)
	out := &dto.SearchResponse{Query: q, Language: lang, Results: []dto.SearchResult{}}
	for _, s := range uc.repo.Schemes() {
		if match(s.Title.In(lang), s.Description.In(lang), s.Title.In(i18n.Default), s.Description.In(i18n.Default), s.Category, labels[s.Category]) {
			out.Results = append(out.Results, dto.SearchResult{
				Kind: SearchKindScheme, ID: s.ID, Title: s.Title.In(lang), Description: s.Description.In(lang), Category: s.Category,
			})
		}
	}
	for _, t := range uc.repo.Tools() {
		if match(t.Title.In(lang), t.Description.In(lang), t.Title.In(i18n.Default), t.Description.In(i18n.Default), t.Category) {
			out.Results = append(out.Results, dto.SearchResult{
				Kind: SearchKindTool, ID: t.ID, Title: t.Title.In(lang), Description: t.Description.In(lang), Category: t.Category,
			})
		}
	}
	out.Count = len(out.Results)
	return out, nil
}

// SchemesFeed genera el RSS 2.0 de esquemas en lang.
func (uc *ContentUseCase) SchemesFeed(lang, baseURL string) ([]byte, error) {
	if uc.feed == nil {
		return nil, domain.ErrNotFound
	}
	list := uc.ListSchemes(lang, "")
	return uc.feed.BuildSchemeFeed(list.Language, baseURL, list.Data)
}

// RecommendationTemplate expone las plantillas al caso de uso de recomendaciones.
func (uc *ContentUseCase) RecommendationTemplate(key string) (entity.RecommendationTemplate, bool) {
	return uc.repo.RecommendationTemplate(key)
}

func (uc *ContentUseCase) categoryLabels(lang string) map[string]string {
	out := make(map[string]string)
	for _, c := range uc.repo.SchemeCategories() {
		out[c.Key] = c.Label.In(lang)
	}
	return out
}

func toSchemeResponse(s entity.Scheme, lang string, labels map[string]string) dto.SchemeResponse {
	out := dto.SchemeResponse{
		ID:             s.ID,
		Slug:           s.Slug,
		Category:       s.Category,
		CategoryLabel:  labels[s.Category],
		Title:          s.Title.In(lang),
		Description:    s.Description.In(lang),
		Amount:         s.Amount.In(lang),
		URL:            s.URL,
		Icon:           s.Icon,
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		Ongoing:        s.EndDate == "" || strings.EqualFold(s.EndDate, "ongoing"),
		Eligibility:    s.Eligibility.In(lang),
		Benefits:       s.Benefits.In(lang),
		ProcessingTime: s.ProcessingTime.In(lang),
	}
	for _, d := range s.Documents {
		out.Documents = append(out.Documents, dto.SchemeDocumentDTO{Name: d.Name.In(lang), Required: d.Required})
	}
	return out
}

func toToolResponse(t entity.DigitalTool, lang string) dto.ToolResponse {
	return dto.ToolResponse{
		ID:             t.ID,
		Title:          t.Title.In(lang),
		Description:    t.Description.In(lang),
		Category:       t.Category,
		Difficulty:     t.Difficulty,
		Benefits:       t.Benefits.In(lang),
		Steps:          t.Steps.In(lang),
		BusinessImpact: t.BusinessImpact.In(lang),
	}
}
