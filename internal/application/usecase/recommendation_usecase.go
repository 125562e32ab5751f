package usecase

import (
	"context"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/ports"
	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/recommendation"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/repository"
	"github.com/jhoicas/gramin-udyami-api/pkg/i18n"
)

// RecommendationUseCase cruza el perfil con las reglas de esquemas y arma los textos.
type RecommendationUseCase struct {
	profiles repository.ProfileRepository
	content  repository.ContentRepository
	renderer ports.DocumentRenderer
}

// NewRecommendationUseCase construye el caso de uso. renderer puede ser nil si no se genera PDF.
func NewRecommendationUseCase(
	profiles repository.ProfileRepository,
	content repository.ContentRepository,
	renderer ports.DocumentRenderer,
) *RecommendationUseCase {
	return &RecommendationUseCase{profiles: profiles, content: content, renderer: renderer}
}

// ForProfile aplica las reglas al perfil y localiza cada coincidencia en lang.
// Las coincidencias sin plantilla en el catálogo se omiten.
func (uc *RecommendationUseCase) ForProfile(lang string, p *entity.Profile) dto.RecommendationListResponse {
	lang = i18n.Normalize(lang)
	out := dto.RecommendationListResponse{
		Language:        lang,
		ProfileComplete: p.IsComplete(),
		Data:            []dto.RecommendationResponse{},
	}
	for _, m := range recommendation.MatchProfile(p) {
		tpl, ok := uc.content.RecommendationTemplate(m.Key)
		if !ok {
			continue
		}
		out.Data = append(out.Data, dto.RecommendationResponse{
			Key:         m.Key,
			SchemeID:    tpl.SchemeID,
			Title:       tpl.Title.In(lang),
			Description: tpl.Description.In(lang),
			Benefit:     tpl.Benefit.In(lang),
			Match:       m.Level,
			Reasons:     tpl.Reasons.In(lang),
			NextSteps:   tpl.NextSteps.In(lang),
		})
	}
	out.Count = len(out.Data)
	return out
}

// ForUser recomendaciones para el perfil guardado. Si lang está vacío usa el idioma del perfil.
// Sin perfil devuelve una lista vacía.
func (uc *RecommendationUseCase) ForUser(ctx context.Context, userID, lang string) (*dto.RecommendationListResponse, error) {
	p, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &entity.Profile{UserID: userID}
	}
	if lang == "" {
		lang = p.Language
	}
	out := uc.ForProfile(lang, p)
	return &out, nil
}

// Preview recomendaciones para un perfil enviado sin cuenta.
func (uc *RecommendationUseCase) Preview(lang string, in dto.RecommendationPreviewRequest) dto.RecommendationListResponse {
	if in.Language != "" {
		lang = in.Language
	}
	return uc.ForProfile(lang, &entity.Profile{
		Occupation:         in.Occupation,
		BusinessType:       in.BusinessType,
		BusinessExperience: in.BusinessExperience,
	})
}

// Report genera el PDF de recomendaciones del usuario. Requiere un perfil guardado.
func (uc *RecommendationUseCase) Report(ctx context.Context, userID, lang string) ([]byte, error) {
	if uc.renderer == nil {
		return nil, domain.ErrNotFound
	}
	p, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if lang == "" {
		lang = p.Language
	}
	recs := uc.ForProfile(lang, p)
	return uc.renderer.RenderRecommendations(ToProfileResponse(p), &recs)
}
