// Package pdf genera los documentos descargables del portal con Maroto v2.
//
// Layout común de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título del documento  │  fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUBTÍTULO: archivo / perfil                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUERPO: texto traducido o tarjetas de esquemas              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/application/ports"
	"github.com/jhoicas/gramin-udyami-api/pkg/i18n"
)

var _ ports.DocumentRenderer = (*MarotoRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAccent  = &props.Color{Red: 180, Green: 83, Blue: 9}
)

// wrapWidth caracteres por línea del cuerpo a tamaño 9.
const wrapWidth = 95

// ── Renderer ──────────────────────────────────────────────────────────────────

// Fonts rutas de archivos TTF con glifos devanagari (p. ej. Noto Sans Devanagari).
// Bold vacío reutiliza Regular.
type Fonts struct {
	Regular string
	Bold    string
}

// customFamily nombre con el que se registran las fuentes de Fonts.
const customFamily = "devanagari"

// MarotoRenderer implementa ports.DocumentRenderer usando Maroto v2.
// Sin fuentes propias usa helvetica, que no dibuja hindi ni marathi.
type MarotoRenderer struct {
	now    func() time.Time
	family string
	fonts  []*entity.CustomFont
}

// NewMarotoRenderer construye el renderer con helvetica.
func NewMarotoRenderer() *MarotoRenderer {
	return &MarotoRenderer{now: time.Now, family: fontfamily.Helvetica}
}

// NewMarotoRendererWithFonts registra f como fuente por defecto de todos los documentos.
// Con f.Regular vacío equivale a NewMarotoRenderer. Falla si algún archivo no se puede leer.
func NewMarotoRendererWithFonts(f Fonts) (*MarotoRenderer, error) {
	if strings.TrimSpace(f.Regular) == "" {
		return NewMarotoRenderer(), nil
	}
	bold := f.Bold
	if strings.TrimSpace(bold) == "" {
		bold = f.Regular
	}
	fonts, err := repository.New().
		AddUTF8Font(customFamily, fontstyle.Normal, f.Regular).
		AddUTF8Font(customFamily, fontstyle.Bold, bold).
		Load()
	if err != nil {
		return nil, fmt.Errorf("pdf: cargar fuentes: %w", err)
	}
	return &MarotoRenderer{now: time.Now, family: customFamily, fonts: fonts}, nil
}

// Family devuelve la familia tipográfica por defecto de los documentos.
func (r *MarotoRenderer) Family() string { return r.family }

func (r *MarotoRenderer) newDocument(title string) core.Maroto {
	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: r.family, Size: 9}).
		WithTitle(title, true).
		WithAuthor("Gramin Udyami Portal", true)
	if len(r.fonts) > 0 {
		b = b.WithCustomFonts(r.fonts)
	}
	return maroto.New(b.Build())
}

// RenderTranslation arma el PDF del texto traducido de fileName.
func (r *MarotoRenderer) RenderTranslation(fileName, targetLang, body string) ([]byte, error) {
	m := r.newDocument("Translated Document")

	m.AddRows(headerRow("Translated Document", r.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Source: %s   |   Language: %s", fileName, i18n.EnglishName(targetLang)), props.Text{
			Size: 8, Top: 3, Color: colorGray,
		}),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	m.AddRows(paragraphRows(body)...)
	m.AddRows(footerRows("Machine translation. Verify important details with the issuing office.")...)

	return generate(m)
}

// RenderRecommendations arma el reporte de esquemas sugeridos para el perfil.
func (r *MarotoRenderer) RenderRecommendations(profile *dto.ProfileResponse, recs *dto.RecommendationListResponse) ([]byte, error) {
	if profile == nil || recs == nil {
		return nil, fmt.Errorf("pdf: perfil o recomendaciones vacíos")
	}
	m := r.newDocument("Recommended Schemes")

	m.AddRows(headerRow("Recommended Schemes for You", r.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(profileRow(profile))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))

	if len(recs.Data) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("No matching schemes yet. Complete your profile to get recommendations.", props.Text{
				Size: 10, Top: 4, Align: align.Center, Color: colorGray,
			}),
		)))
	}
	for _, rec := range recs.Data {
		m.AddRows(recommendationRows(rec)...)
	}
	m.AddRows(footerRows("Eligibility is decided by the scheme office. Keep your documents ready before applying.")...)

	return generate(m)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(title string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2}),
			text.New("Gramin Udyami Portal", props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generated: "+at.Format("02 Jan 2006"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func profileRow(p *dto.ProfileResponse) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New(nonEmpty(p.Name, p.UserID), props.Text{Style: fontstyle.Bold, Size: 11, Top: 2}),
			text.New(fmt.Sprintf("%s, %s", nonEmpty(p.District, "-"), nonEmpty(p.Address, "-")), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(fmt.Sprintf("Occupation: %s", nonEmpty(p.Occupation, "-")), props.Text{Size: 8, Top: 2, Align: align.Right}),
			text.New(fmt.Sprintf("Business: %s", nonEmpty(p.BusinessType, "-")), props.Text{Size: 8, Top: 6, Align: align.Right}),
			text.New(fmt.Sprintf("Experience: %s", nonEmpty(p.BusinessExperience, "-")), props.Text{Size: 8, Top: 10, Align: align.Right}),
		),
	)
}

// recommendationRows: tarjeta de un esquema con motivos y próximos pasos.
func recommendationRows(rec dto.RecommendationResponse) []core.Row {
	rows := []core.Row{
		row.New(4),
		row.New(9).Add(
			col.New(9).Add(text.New(rec.Title, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2})),
			col.New(3).Add(text.New(strings.ToUpper(rec.Match)+" MATCH", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorAccent, Top: 3,
			})),
		),
		row.New(6).Add(col.New(12).Add(text.New("Potential benefit: "+rec.Benefit, props.Text{Size: 9, Top: 1}))),
	}
	rows = append(rows, paragraphRows(rec.Description)...)
	rows = append(rows, listRows("Why this is recommended for you:", rec.Reasons)...)
	rows = append(rows, listRows("Next steps:", rec.NextSteps)...)
	rows = append(rows, line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.1}))
	return rows
}

func listRows(title string, items []string) []core.Row {
	if len(items) == 0 {
		return nil
	}
	rows := []core.Row{row.New(6).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Top: 2}),
	))}
	for i, it := range items {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%d. %s", i+1, it), props.Text{Size: 8, Left: 4, Top: 1}),
		)))
	}
	return rows
}

// paragraphRows: una fila por línea ya envuelta a wrapWidth.
func paragraphRows(body string) []core.Row {
	var rows []core.Row
	for _, l := range wrapLines(body, wrapWidth) {
		if l == "" {
			rows = append(rows, row.New(3))
			continue
		}
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 9, Top: 1}),
		)))
	}
	return rows
}

func footerRows(legend string) []core.Row {
	return []core.Row{
		row.New(6),
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}),
		row.New(8).Add(col.New(12).Add(
			text.New(legend, props.Text{Size: 7, Color: colorGray, Top: 2, Align: align.Center}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// wrapLines parte el texto en líneas de a lo sumo width runas, cortando en espacios cuando se puede.
// Las líneas vacías del original se conservan.
func wrapLines(s string, width int) []string {
	var out []string
	for _, para := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		para = strings.TrimRight(para, " \t")
		if para == "" {
			out = append(out, "")
			continue
		}
		var cur strings.Builder
		for _, word := range strings.Fields(para) {
			for utf8.RuneCountInString(word) > width {
				if cur.Len() > 0 {
					out = append(out, cur.String())
					cur.Reset()
				}
				runes := []rune(word)
				out = append(out, string(runes[:width]))
				word = string(runes[width:])
			}
			if cur.Len() > 0 && utf8.RuneCountInString(cur.String())+1+utf8.RuneCountInString(word) > width {
				out = append(out, cur.String())
				cur.Reset()
			}
			if cur.Len() > 0 {
				cur.WriteByte(' ')
			}
			cur.WriteString(word)
		}
		if cur.Len() > 0 {
			out = append(out, cur.String())
		}
	}
	return out
}
