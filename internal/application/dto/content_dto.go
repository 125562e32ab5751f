package dto

// SchemeDocumentDTO documento requerido por un esquema.
type SchemeDocumentDTO struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// SchemeResponse esquema ya resuelto al idioma pedido.
type SchemeResponse struct {
	ID             int                 `json:"id"`
	Slug           string              `json:"slug"`
	Category       string              `json:"category"`
	CategoryLabel  string              `json:"category_label"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Amount         string              `json:"amount"`
	URL            string              `json:"url"`
	Icon           string              `json:"icon,omitempty"`
	StartDate      string              `json:"start_date"`
	EndDate        string              `json:"end_date"`
	Ongoing        bool                `json:"ongoing"`
	Eligibility    []string            `json:"eligibility,omitempty"`
	Benefits       []string            `json:"benefits,omitempty"`
	Documents      []SchemeDocumentDTO `json:"documents,omitempty"`
	ProcessingTime string              `json:"processing_time,omitempty"`
}

// SchemeCategoryResponse categoría de esquemas con etiqueta traducida.
type SchemeCategoryResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// SchemeListResponse esquemas y categorías disponibles.
type SchemeListResponse struct {
	Language   string                   `json:"language"`
	Count      int                      `json:"count"`
	Categories []SchemeCategoryResponse `json:"categories"`
	Data       []SchemeResponse         `json:"data"`
}

// ToolResponse guía de herramienta digital.
type ToolResponse struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Difficulty     string   `json:"difficulty"`
	Benefits       []string `json:"benefits"`
	Steps          []string `json:"steps"`
	BusinessImpact string   `json:"business_impact"`
}

// ToolListResponse listado de herramientas.
type ToolListResponse struct {
	Language string         `json:"language"`
	Count    int            `json:"count"`
	Data     []ToolResponse `json:"data"`
}

// StoryResponse caso de éxito.
type StoryResponse struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Age          int      `json:"age"`
	Location     string   `json:"location"`
	Business     string   `json:"business"`
	Scheme       string   `json:"scheme"`
	BeforeIncome string   `json:"before_income"`
	AfterIncome  string   `json:"after_income"`
	Story        string   `json:"story"`
	DigitalTools []string `json:"digital_tools"`
	Timeframe    string   `json:"timeframe"`
	ImageURL     string   `json:"image_url,omitempty"`
}

// StoryListResponse listado de casos de éxito.
type StoryListResponse struct {
	Language string          `json:"language"`
	Count    int             `json:"count"`
	Data     []StoryResponse `json:"data"`
}

// SearchResult coincidencia de la búsqueda global.
type SearchResult struct {
	Kind        string `json:"kind"` // scheme | tool
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// SearchResponse resultado de GET /api/search.
type SearchResponse struct {
	Query    string         `json:"query"`
	Language string         `json:"language"`
	Count    int            `json:"count"`
	Results  []SearchResult `json:"results"`
}

// VideoCategoryResponse categoría de tutoriales con etiqueta traducida.
type VideoCategoryResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// VideoResponse tutorial en video.
type VideoResponse struct {
	ID            string `json:"id"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Duration      string `json:"duration"`
	Views         string `json:"views"`
	ThumbnailURL  string `json:"thumbnail_url,omitempty"`
	WatchURL      string `json:"watch_url"`
}

// VideoListResponse resultado de GET /api/videos.
type VideoListResponse struct {
	Language   string                  `json:"language"`
	Count      int                     `json:"count"`
	Categories []VideoCategoryResponse `json:"categories"`
	Data       []VideoResponse         `json:"data"`
}

// FAQResponse pregunta frecuente.
type FAQResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ContactResponse resultado de GET /api/contact.
type ContactResponse struct {
	Language            string        `json:"language"`
	Title               string        `json:"title"`
	Subtitle            string        `json:"subtitle"`
	HelplineTitle       string        `json:"helpline_title"`
	HelplineDescription string        `json:"helpline_description"`
	Phone               string        `json:"phone"`
	WhatsAppLabel       string        `json:"whatsapp_label"`
	OfficeTitle         string        `json:"office_title"`
	OfficeAddress       string        `json:"office_address"`
	OfficeHours         string        `json:"office_hours"`
	FAQs                []FAQResponse `json:"faqs"`
}
