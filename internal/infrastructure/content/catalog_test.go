package content_test

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/recommendation"
	"github.com/jhoicas/gramin-udyami-api/internal/infrastructure/content"
)

func TestLoad_Embebido(t *testing.T) {
	c, err := content.Load()
	require.NoError(t, err)

	assert.Len(t, c.Schemes(), 12)
	assert.Len(t, c.Tools(), 5)
	assert.Len(t, c.Stories(), 3)

	for _, key := range []string{
		recommendation.KeyPMKisan, recommendation.KeyLivestockMission,
		recommendation.KeyMudra, recommendation.KeySkillDevelopment,
	} {
		tpl, ok := c.RecommendationTemplate(key)
		require.True(t, ok, key)
		assert.Len(t, tpl.Reasons.In("en"), 3)
		assert.Len(t, tpl.NextSteps.In("mr"), 3)
	}
}

func TestLoad_TextosYRespaldo(t *testing.T) {
	c, err := content.Load()
	require.NoError(t, err)

	mudra := c.Schemes()[0]
	assert.Equal(t, "pm-mudra-yojana", mudra.Slug)
	assert.Equal(t, "पीएम मुद्रा योजना", mudra.Title.In("hi"))
	assert.Equal(t, "15-30 दिवस", mudra.ProcessingTime.In("mr"))
	require.Len(t, mudra.Documents, 5)
	assert.False(t, mudra.Documents[4].Required)

	// benefit solo existe en inglés
	tpl, _ := c.RecommendationTemplate(recommendation.KeyMudra)
	assert.Equal(t, "₹50,000-₹10 lakh", tpl.Benefit.In("hi"))

	awas := c.Schemes()[4]
	assert.Equal(t, "March 31, 2026", awas.EndDate)
}

func TestLoad_Categorias(t *testing.T) {
	c, err := content.Load()
	require.NoError(t, err)

	var keys []string
	for _, cat := range c.SchemeCategories() {
		keys = append(keys, cat.Key)
	}
	want := []string{"finance", "agriculture", "healthcare", "housing", "education", "social-security"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("categorías (-want +got):\n%s", diff)
	}
}

func TestLoad_VideosYContacto(t *testing.T) {
	c, err := content.Load()
	require.NoError(t, err)

	require.Len(t, c.Videos(), 8)
	first := c.Videos()[0]
	assert.Equal(t, "dQw4w9WgXcQ", first.ID)
	assert.Equal(t, "application", first.Category)
	assert.Equal(t, "12:30", first.Duration)
	assert.Equal(t, "पीएम किसान योजना के लिए ऑनलाइन आवेदन कैसे करें", first.Title.In("hi"))

	var keys []string
	for _, cat := range c.VideoCategories() {
		keys = append(keys, cat.Key)
	}
	if diff := cmp.Diff([]string{"application", "documents", "digital", "success"}, keys); diff != "" {
		t.Errorf("categorías de video (-want +got):\n%s", diff)
	}

	contact := c.Contact()
	assert.Equal(t, "1800-XXX-XXXX", contact.Phone)
	assert.Equal(t, "प्रादेशिक कार्यालय", contact.OfficeTitle.In("mr"))
	assert.Equal(t, "Rural Development Center\nPune, Maharashtra 411001", contact.OfficeAddress.In("en"))
	require.Len(t, contact.FAQs, 3)
	assert.Contains(t, contact.FAQs[1].Answer.In("en"), "40%")
}

func TestLoadFS_VideosInvalidos(t *testing.T) {
	base := fstest.MapFS{
		"d/schemes.yaml":         {Data: []byte("categories: []\nschemes: []\n")},
		"d/tools.yaml":           {Data: []byte("tools: []\n")},
		"d/stories.yaml":         {Data: []byte("stories: []\n")},
		"d/recommendations.yaml": {Data: []byte("templates: []\n")},
		"d/contact.yaml":         {Data: []byte("contact: {phone: 1800, title: {en: Help}}\n")},
	}
	with := func(name, data string) fstest.MapFS {
		fsys := fstest.MapFS{"d/videos.yaml": {Data: []byte("categories: [{key: digital, label: {en: Digital}}]\nvideos: []\n")}}
		for k, v := range base {
			fsys[k] = v
		}
		fsys["d/"+name] = &fstest.MapFile{Data: []byte(data)}
		return fsys
	}

	_, err := content.LoadFS(with("videos.yaml", `
categories: [{key: digital, label: {en: Digital}}]
videos:
  - {id: a1, category: digital, title: {en: A}}
  - {id: a1, category: digital, title: {en: B}}
`), "d")
	assert.ErrorContains(t, err, "duplicado")

	_, err = content.LoadFS(with("videos.yaml", `
categories: [{key: digital, label: {en: Digital}}]
videos:
  - {id: a1, category: success, title: {en: A}}
`), "d")
	assert.ErrorContains(t, err, "categoría desconocida")

	_, err = content.LoadFS(with("contact.yaml", "contact: {title: {en: Help}}\n"), "d")
	assert.ErrorContains(t, err, "contacto")

	_, err = content.LoadFS(with("videos.yaml", "categories: []\nvideos: []\n"), "d")
	require.NoError(t, err)
}

func TestLoadFS_Errores(t *testing.T) {
	base := fstest.MapFS{
		"d/tools.yaml":           {Data: []byte("tools: []\n")},
		"d/stories.yaml":         {Data: []byte("stories: []\n")},
		"d/recommendations.yaml": {Data: []byte("templates: []\n")},
		"d/videos.yaml":          {Data: []byte("categories: []\nvideos: []\n")},
		"d/contact.yaml":         {Data: []byte("contact: {phone: 1800, title: {en: Help}}\n")},
	}
	with := func(schemes string) fstest.MapFS {
		fsys := fstest.MapFS{}
		for k, v := range base {
			fsys[k] = v
		}
		fsys["d/schemes.yaml"] = &fstest.MapFile{Data: []byte(schemes)}
		return fsys
	}

	_, err := content.LoadFS(with(`
categories: [{key: finance, label: {en: Finance}}]
schemes:
  - {id: 1, category: finance, title: {en: A}, description: {en: a}}
  - {id: 1, category: finance, title: {en: B}, description: {en: b}}
`), "d")
	assert.ErrorContains(t, err, "duplicado")

	_, err = content.LoadFS(with(`
categories: [{key: finance, label: {en: Finance}}]
schemes:
  - {id: 1, category: housing, title: {en: A}, description: {en: a}}
`), "d")
	assert.ErrorContains(t, err, "categoría desconocida")

	_, err = content.LoadFS(with(`
categories: []
schemes:
  - {id: 1, category: "", title: {hi: क}, description: {en: a}}
`), "d")
	assert.Error(t, err)

	_, err = content.LoadFS(with("schemes: [\n"), "d")
	assert.ErrorContains(t, err, "parsear")

	c, err := content.LoadFS(with(`
categories: [{key: finance, label: {en: Finance}}]
schemes:
  - {id: 3, category: finance, title: {en: A}, description: {en: a}}
`), "d")
	require.NoError(t, err)
	assert.Equal(t, []entity.Scheme{{
		ID: 3, Category: "finance", Title: entity.LocalizedText{"en": "A"}, Description: entity.LocalizedText{"en": "a"},
	}}, c.Schemes())
}
