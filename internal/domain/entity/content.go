package entity

// LocalizedText texto por código de idioma (en, hi, mr). "en" es obligatorio y sirve de respaldo.
type LocalizedText map[string]string

// In devuelve el texto en lang o, si falta, en inglés.
func (t LocalizedText) In(lang string) string {
	if s, ok := t[lang]; ok && s != "" {
		return s
	}
	return t["en"]
}

// LocalizedList lista de textos por idioma.
type LocalizedList map[string][]string

// In devuelve la lista en lang o, si falta, en inglés.
func (l LocalizedList) In(lang string) []string {
	if s, ok := l[lang]; ok && len(s) > 0 {
		return s
	}
	return l["en"]
}

// SchemeDocument documento solicitado por un esquema.
type SchemeDocument struct {
	Name     LocalizedText `yaml:"name"`
	Required bool          `yaml:"required"`
}

// Scheme esquema gubernamental de apoyo económico.
type Scheme struct {
	ID             int              `yaml:"id"`
	Slug           string           `yaml:"slug"`
	Category       string           `yaml:"category"`
	Title          LocalizedText    `yaml:"title"`
	Description    LocalizedText    `yaml:"description"`
	Amount         LocalizedText    `yaml:"amount"`
	URL            string           `yaml:"url"`
	Icon           string           `yaml:"icon"`
	StartDate      string           `yaml:"start_date"`
	EndDate        string           `yaml:"end_date"` // vacío = vigente
	Eligibility    LocalizedList    `yaml:"eligibility"`
	Benefits       LocalizedList    `yaml:"benefits"`
	Documents      []SchemeDocument `yaml:"documents"`
	ProcessingTime LocalizedText    `yaml:"processing_time"`
}

// SchemeCategory etiqueta traducida de una categoría de esquemas.
type SchemeCategory struct {
	Key   string        `yaml:"key"`
	Label LocalizedText `yaml:"label"`
}

// DigitalTool guía de una herramienta digital.
type DigitalTool struct {
	ID             int           `yaml:"id"`
	Title          LocalizedText `yaml:"title"`
	Description    LocalizedText `yaml:"description"`
	Category       string        `yaml:"category"`
	Difficulty     string        `yaml:"difficulty"` // easy, medium, hard
	Benefits       LocalizedList `yaml:"benefits"`
	Steps          LocalizedList `yaml:"steps"`
	BusinessImpact LocalizedText `yaml:"business_impact"`
}

// SuccessStory caso de éxito de un emprendedor.
type SuccessStory struct {
	ID           int           `yaml:"id"`
	Name         LocalizedText `yaml:"name"`
	Age          int           `yaml:"age"`
	Location     LocalizedText `yaml:"location"`
	Business     LocalizedText `yaml:"business"`
	Scheme       LocalizedText `yaml:"scheme"`
	BeforeIncome LocalizedText `yaml:"before_income"`
	AfterIncome  LocalizedText `yaml:"after_income"`
	Story        LocalizedText `yaml:"story"`
	DigitalTools LocalizedList `yaml:"digital_tools"`
	Timeframe    LocalizedText `yaml:"timeframe"`
	ImageURL     string        `yaml:"image_url"`
}

// RecommendationTemplate textos de un esquema recomendable según el perfil.
type RecommendationTemplate struct {
	Key         string        `yaml:"key"`
	Title       LocalizedText `yaml:"title"`
	Description LocalizedText `yaml:"description"`
	Benefit     LocalizedText `yaml:"benefit"`
	Reasons     LocalizedList `yaml:"reasons"`
	NextSteps   LocalizedList `yaml:"next_steps"`
	SchemeID    int           `yaml:"scheme_id"` // esquema del catálogo relacionado, 0 si no aplica
}

// VideoCategory categoría de tutoriales en video.
type VideoCategory struct {
	Key   string        `yaml:"key"`
	Label LocalizedText `yaml:"label"`
}

// VideoTutorial tutorial en YouTube. Duration y Views son texto de presentación ("12:30", "125K").
type VideoTutorial struct {
	ID           string        `yaml:"id"` // id de YouTube
	Category     string        `yaml:"category"`
	Title        LocalizedText `yaml:"title"`
	Description  LocalizedText `yaml:"description"`
	Duration     string        `yaml:"duration"`
	Views        string        `yaml:"views"`
	ThumbnailURL string        `yaml:"thumbnail_url"`
}

// FAQ pregunta frecuente.
type FAQ struct {
	Question LocalizedText `yaml:"question"`
	Answer   LocalizedText `yaml:"answer"`
}

// HelpContact datos de ayuda: línea gratuita, WhatsApp, oficina regional y preguntas frecuentes.
type HelpContact struct {
	Title         LocalizedText `yaml:"title"`
	Subtitle      LocalizedText `yaml:"subtitle"`
	HelplineTitle LocalizedText `yaml:"helpline_title"`
	HelplineDesc  LocalizedText `yaml:"helpline_description"`
	Phone         string        `yaml:"phone"`
	WhatsAppLabel LocalizedText `yaml:"whatsapp_label"`
	OfficeTitle   LocalizedText `yaml:"office_title"`
	OfficeAddress LocalizedText `yaml:"office_address"`
	OfficeHours   LocalizedText `yaml:"office_hours"`
	FAQs          []FAQ         `yaml:"faqs"`
}
