// Package content carga el catálogo estático (esquemas, herramientas, historias, plantillas de
// recomendación, tutoriales en video y datos de contacto) desde YAML embebido en el binario.
package content

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/repository"
)

//go:embed data/*.yaml
var dataFS embed.FS

var _ repository.ContentRepository = (*Catalog)(nil)

// Catalog catálogo en memoria, inmutable tras la carga; seguro para lectura concurrente.
type Catalog struct {
	schemes    []entity.Scheme
	categories []entity.SchemeCategory
	tools      []entity.DigitalTool
	stories    []entity.SuccessStory
	templates  map[string]entity.RecommendationTemplate
	videoCats  []entity.VideoCategory
	videos     []entity.VideoTutorial
	contact    entity.HelpContact
}

type schemesFile struct {
	Categories []entity.SchemeCategory `yaml:"categories"`
	Schemes    []entity.Scheme         `yaml:"schemes"`
}

type toolsFile struct {
	Tools []entity.DigitalTool `yaml:"tools"`
}

type storiesFile struct {
	Stories []entity.SuccessStory `yaml:"stories"`
}

type recommendationsFile struct {
	Templates []entity.RecommendationTemplate `yaml:"templates"`
}

type videosFile struct {
	Categories []entity.VideoCategory `yaml:"categories"`
	Videos     []entity.VideoTutorial `yaml:"videos"`
}

type contactFile struct {
	Contact entity.HelpContact `yaml:"contact"`
}

// Load carga el catálogo embebido.
func Load() (*Catalog, error) {
	return LoadFS(dataFS, "data")
}

// LoadFS carga el catálogo desde dir dentro de fsys (schemes.yaml, tools.yaml, stories.yaml,
// recommendations.yaml, videos.yaml, contact.yaml) y valida ids y textos en inglés.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	var sf schemesFile
	if err := decode(fsys, dir+"/schemes.yaml", &sf); err != nil {
		return nil, err
	}
	var tf toolsFile
	if err := decode(fsys, dir+"/tools.yaml", &tf); err != nil {
		return nil, err
	}
	var stf storiesFile
	if err := decode(fsys, dir+"/stories.yaml", &stf); err != nil {
		return nil, err
	}
	var rf recommendationsFile
	if err := decode(fsys, dir+"/recommendations.yaml", &rf); err != nil {
		return nil, err
	}
	var vf videosFile
	if err := decode(fsys, dir+"/videos.yaml", &vf); err != nil {
		return nil, err
	}
	var cf contactFile
	if err := decode(fsys, dir+"/contact.yaml", &cf); err != nil {
		return nil, err
	}

	c := &Catalog{
		schemes:    sf.Schemes,
		categories: sf.Categories,
		tools:      tf.Tools,
		stories:    stf.Stories,
		templates:  make(map[string]entity.RecommendationTemplate, len(rf.Templates)),
		videoCats:  vf.Categories,
		videos:     vf.Videos,
		contact:    cf.Contact,
	}
	for _, t := range rf.Templates {
		if t.Key == "" || t.Title["en"] == "" {
			return nil, fmt.Errorf("plantilla de recomendación sin key o título en inglés")
		}
		if _, dup := c.templates[t.Key]; dup {
			return nil, fmt.Errorf("plantilla duplicada: %s", t.Key)
		}
		c.templates[t.Key] = t
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func decode(fsys fs.FS, path string, out any) error {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("leer %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsear %s: %w", path, err)
	}
	return nil
}

func (c *Catalog) validate() error {
	cats := make(map[string]bool, len(c.categories))
	for _, cat := range c.categories {
		cats[cat.Key] = true
	}
	seen := make(map[int]bool, len(c.schemes))
	slugs := make(map[string]bool, len(c.schemes))
	for _, s := range c.schemes {
		if s.ID <= 0 || seen[s.ID] {
			return fmt.Errorf("esquema con id inválido o duplicado: %d", s.ID)
		}
		seen[s.ID] = true
		if s.Slug != "" {
			if slugs[s.Slug] {
				return fmt.Errorf("slug duplicado: %s", s.Slug)
			}
			slugs[s.Slug] = true
		}
		if s.Title["en"] == "" || s.Description["en"] == "" {
			return fmt.Errorf("esquema %d sin título o descripción en inglés", s.ID)
		}
		if !cats[s.Category] {
			return fmt.Errorf("esquema %d con categoría desconocida %q", s.ID, s.Category)
		}
	}
	toolIDs := make(map[int]bool, len(c.tools))
	for _, t := range c.tools {
		if t.ID <= 0 || toolIDs[t.ID] || t.Title["en"] == "" {
			return fmt.Errorf("herramienta inválida: %d", t.ID)
		}
		toolIDs[t.ID] = true
	}
	for _, s := range c.stories {
		if s.Name["en"] == "" || s.Story["en"] == "" {
			return fmt.Errorf("historia %d incompleta", s.ID)
		}
	}
	for key, t := range c.templates {
		if t.SchemeID != 0 && !seen[t.SchemeID] {
			return fmt.Errorf("plantilla %s apunta a esquema inexistente %d", key, t.SchemeID)
		}
	}
	videoCats := make(map[string]bool, len(c.videoCats))
	for _, cat := range c.videoCats {
		videoCats[cat.Key] = true
	}
	videoIDs := make(map[string]bool, len(c.videos))
	for _, v := range c.videos {
		if v.ID == "" || videoIDs[v.ID] || v.Title["en"] == "" {
			return fmt.Errorf("video inválido o duplicado: %q", v.ID)
		}
		videoIDs[v.ID] = true
		if !videoCats[v.Category] {
			return fmt.Errorf("video %s con categoría desconocida %q", v.ID, v.Category)
		}
	}
	if c.contact.Phone == "" || c.contact.Title["en"] == "" {
		return fmt.Errorf("contacto sin teléfono o título en inglés")
	}
	return nil
}

// Schemes esquemas en orden de catálogo.
func (c *Catalog) Schemes() []entity.Scheme { return c.schemes }

// SchemeCategories categorías con etiqueta traducida.
func (c *Catalog) SchemeCategories() []entity.SchemeCategory { return c.categories }

// Tools guías de herramientas digitales.
func (c *Catalog) Tools() []entity.DigitalTool { return c.tools }

// Stories casos de éxito.
func (c *Catalog) Stories() []entity.SuccessStory { return c.stories }

// VideoCategories categorías de tutoriales.
func (c *Catalog) VideoCategories() []entity.VideoCategory { return c.videoCats }

// Videos tutoriales en orden de catálogo.
func (c *Catalog) Videos() []entity.VideoTutorial { return c.videos }

// Contact datos de ayuda y oficina.
func (c *Catalog) Contact() entity.HelpContact { return c.contact }

// RecommendationTemplate plantilla por clave.
func (c *Catalog) RecommendationTemplate(key string) (entity.RecommendationTemplate, bool) {
	t, ok := c.templates[key]
	return t, ok
}
