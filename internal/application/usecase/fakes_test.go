package usecase_test

import (
	"context"
	"time"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/ports"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/recommendation"
)

type fakeContent struct {
	schemes    []entity.Scheme
	categories []entity.SchemeCategory
	tools      []entity.DigitalTool
	stories    []entity.SuccessStory
	templates  map[string]entity.RecommendationTemplate
	videoCats  []entity.VideoCategory
	videos     []entity.VideoTutorial
	contact    entity.HelpContact
}

func (f *fakeContent) Schemes() []entity.Scheme                  { return f.schemes }
func (f *fakeContent) SchemeCategories() []entity.SchemeCategory { return f.categories }
func (f *fakeContent) Tools() []entity.DigitalTool               { return f.tools }
func (f *fakeContent) Stories() []entity.SuccessStory            { return f.stories }
func (f *fakeContent) VideoCategories() []entity.VideoCategory   { return f.videoCats }
func (f *fakeContent) Videos() []entity.VideoTutorial            { return f.videos }
func (f *fakeContent) Contact() entity.HelpContact               { return f.contact }
func (f *fakeContent) RecommendationTemplate(key string) (entity.RecommendationTemplate, bool) {
	t, ok := f.templates[key]
	return t, ok
}

func newFakeContent() *fakeContent {
	tpl := func(key, en, hi string) entity.RecommendationTemplate {
		return entity.RecommendationTemplate{
			Key:       key,
			Title:     entity.LocalizedText{"en": en, "hi": hi},
			Benefit:   entity.LocalizedText{"en": "benefit " + en},
			Reasons:   entity.LocalizedList{"en": {"r1", "r2", "r3"}},
			NextSteps: entity.LocalizedList{"en": {"s1", "s2", "s3"}},
		}
	}
	return &fakeContent{
		schemes: []entity.Scheme{
			{ID: 1, Slug: "mudra", Category: "loan", Title: entity.LocalizedText{"en": "Mudra Loan", "hi": "मुद्रा लोन"}, Description: entity.LocalizedText{"en": "Loans for small business"}, EndDate: "Ongoing"},
			{ID: 2, Slug: "pm-kisan", Category: "subsidy", Title: entity.LocalizedText{"en": "PM-KISAN"}, Description: entity.LocalizedText{"en": "Income support for farmers"}, EndDate: "March 31, 2026"},
		},
		categories: []entity.SchemeCategory{
			{Key: "loan", Label: entity.LocalizedText{"en": "Loans", "hi": "ऋण"}},
			{Key: "subsidy", Label: entity.LocalizedText{"en": "Subsidies"}},
		},
		tools: []entity.DigitalTool{
			{ID: 1, Title: entity.LocalizedText{"en": "UPI Payments"}, Description: entity.LocalizedText{"en": "Accept digital payments"}, Category: "payments"},
		},
		stories: []entity.SuccessStory{
			{ID: 1, Name: entity.LocalizedText{"en": "Priya Sharma"}, Age: 34},
		},
		videoCats: []entity.VideoCategory{
			{Key: "application", Label: entity.LocalizedText{"en": "Application Process", "hi": "आवेदन प्रक्रिया"}},
			{Key: "digital", Label: entity.LocalizedText{"en": "Digital Tools"}},
		},
		videos: []entity.VideoTutorial{
			{ID: "abc123", Category: "application", Title: entity.LocalizedText{"en": "Apply for PM Kisan", "hi": "पीएम किसान आवेदन"}, Description: entity.LocalizedText{"en": "Step by step"}, Duration: "12:30", Views: "125K"},
			{ID: "upi456", Category: "digital", Title: entity.LocalizedText{"en": "Using UPI"}, Duration: "9:25", Views: "203K"},
		},
		contact: entity.HelpContact{
			Title:         entity.LocalizedText{"en": "Get Help & Support", "mr": "मदत आणि सहाय्य मिळवा"},
			Phone:         "1800-XXX-XXXX",
			OfficeAddress: entity.LocalizedText{"en": "Rural Development Center\nPune"},
			FAQs: []entity.FAQ{
				{Question: entity.LocalizedText{"en": "Is this service free?"}, Answer: entity.LocalizedText{"en": "Yes"}},
			},
		},
		templates: map[string]entity.RecommendationTemplate{
			recommendation.KeyPMKisan:          tpl(recommendation.KeyPMKisan, "PM Kisan", "पीएम किसान"),
			recommendation.KeyLivestockMission: tpl(recommendation.KeyLivestockMission, "Livestock Mission", ""),
			recommendation.KeyMudra:            tpl(recommendation.KeyMudra, "Mudra", ""),
			recommendation.KeySkillDevelopment: tpl(recommendation.KeySkillDevelopment, "Skill India", ""),
		},
	}
}

type fakeTranslator struct {
	delay time.Duration
	text  string
	calls int
}

func (f *fakeTranslator) Name() string { return "fake" }

func (f *fakeTranslator) Translate(ctx context.Context, doc ports.Document, lang string) (string, error) {
	f.calls++
	select {
	case <-time.After(f.delay):
		return f.text + " " + doc.FileName + " " + lang, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

type fakeRenderer struct{}

func (fakeRenderer) RenderTranslation(fileName, lang, text string) ([]byte, error) {
	return []byte("%PDF-" + text), nil
}

func (fakeRenderer) RenderRecommendations(p *dto.ProfileResponse, r *dto.RecommendationListResponse) ([]byte, error) {
	return []byte("%PDF-" + p.Name), nil
}

type fakeExporter struct{ rows int }

func (f *fakeExporter) ExportBusinesses(items []dto.BusinessResponse) ([]byte, error) {
	f.rows = len(items)
	return []byte("PK"), nil
}

type fakeFeed struct{ got []dto.SchemeResponse }

func (f *fakeFeed) BuildSchemeFeed(lang, baseURL string, schemes []dto.SchemeResponse) ([]byte, error) {
	f.got = schemes
	return []byte("<rss/>"), nil
}

type tagStripper struct{}

// Sanitize simula el limpiador quitando etiquetas <b>.
func (tagStripper) Sanitize(s string) string {
	out := make([]rune, 0, len(s))
	skip := false
	for _, r := range s {
		switch {
		case r == '<':
			skip = true
		case r == '>':
			skip = false
		case !skip:
			out = append(out, r)
		}
	}
	return string(out)
}
