package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de negocio.
const (
	CategoryAgriculture    = "Agriculture"
	CategoryHandicrafts    = "Handicrafts"
	CategoryDairy          = "Dairy"
	CategoryPoultry        = "Poultry"
	CategoryFoodProcessing = "Food Processing"
	CategoryTextile        = "Textile"
	CategoryServices       = "Services"
	CategoryOther          = "Other"
)

// BusinessCategories en orden de presentación.
var BusinessCategories = []string{
	CategoryAgriculture, CategoryHandicrafts, CategoryDairy, CategoryPoultry,
	CategoryFoodProcessing, CategoryTextile, CategoryServices, CategoryOther,
}

// Estados del ciclo de vida de un negocio.
const (
	BusinessStatusPlanning          = "planning"
	BusinessStatusActive            = "active"
	BusinessStatusSeekingInvestment = "seeking-investment"
	BusinessStatusClosed            = "closed"
)

// BusinessStatuses valores válidos de Status.
var BusinessStatuses = []string{
	BusinessStatusPlanning, BusinessStatusActive, BusinessStatusSeekingInvestment, BusinessStatusClosed,
}

// Location ubicación libre del negocio.
type Location struct {
	Village  string
	District string
	State    string
	Pincode  string
}

// ContactInfo datos de contacto públicos.
type ContactInfo struct {
	Phone    string
	Email    string
	WhatsApp string
}

// Investment montos en rupias.
type Investment struct {
	Required decimal.Decimal
	Raised   decimal.Decimal
}

// BusinessProduct producto ofrecido por el negocio.
type BusinessProduct struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Images      []string        `json:"images"`
}

// Business microempresa registrada por un emprendedor.
type Business struct {
	ID          string
	OwnerID     string
	Name        string
	Category    string
	Description string
	Location    Location
	Images      []string
	Contact     ContactInfo
	Investment  Investment
	Employees   int
	StartDate   *time.Time
	Status      string
	Products    []BusinessProduct
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanBeModifiedBy aplica la regla dueño-o-admin.
func (b *Business) CanBeModifiedBy(userID, role string) bool {
	if b == nil {
		return false
	}
	return b.OwnerID == userID || role == RoleAdmin
}

// IsValidBusinessCategory valida contra el enum de categorías.
func IsValidBusinessCategory(v string) bool { return contains(BusinessCategories, v) }

// IsValidBusinessStatus valida contra el enum de estados.
func IsValidBusinessStatus(v string) bool { return contains(BusinessStatuses, v) }

// BusinessFilter filtros públicos del listado.
type BusinessFilter struct {
	OwnerID  string
	Category string
	Status   string
	State    string
	District string
	Limit    int
	Offset   int
}

// Dimensiones de agrupación de las estadísticas del directorio.
const (
	StatsByCategory = "category"
	StatsByStatus   = "status"
	StatsByDistrict = "district"
)

// GroupCount cantidad de negocios por valor de una dimensión.
type GroupCount struct {
	Key   string
	Count int
}

// InvestmentTotals agregados de inversión y empleo.
type InvestmentTotals struct {
	Businesses int
	Required   decimal.Decimal
	Raised     decimal.Decimal
	Employees  int
}
