package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Los nombres JSON del recurso business siguen el contrato que ya consume el front-end
// (businessName, contactInfo, ...).

// LocationDTO ubicación del negocio.
type LocationDTO struct {
	Village  string `json:"village" validate:"max=100"`
	District string `json:"district" validate:"max=100"`
	State    string `json:"state" validate:"max=100"`
	Pincode  string `json:"pincode" validate:"omitempty,numeric,len=6"`
}

// ContactInfoDTO contacto público.
type ContactInfoDTO struct {
	Phone    string `json:"phone" validate:"max=20"`
	Email    string `json:"email" validate:"omitempty,email"`
	WhatsApp string `json:"whatsapp" validate:"max=20"`
}

// InvestmentDTO montos en rupias.
type InvestmentDTO struct {
	Required decimal.Decimal `json:"required"`
	Raised   decimal.Decimal `json:"raised"`
}

// BusinessProductDTO producto del negocio.
type BusinessProductDTO struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"max=2000"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit" validate:"max=50"`
	Images      []string        `json:"images" validate:"omitempty,dive,url"`
}

// CreateBusinessRequest alta de negocio; el dueño es siempre el usuario autenticado.
type CreateBusinessRequest struct {
	BusinessName string               `json:"businessName" validate:"required,min=1,max=200"`
	Category     string               `json:"category" validate:"required,business_category"`
	Description  string               `json:"description" validate:"required,min=1,max=5000"`
	Location     LocationDTO          `json:"location"`
	Images       []string             `json:"images" validate:"omitempty,dive,url"`
	ContactInfo  ContactInfoDTO       `json:"contactInfo"`
	Investment   InvestmentDTO        `json:"investment"`
	Employees    *int                 `json:"employees" validate:"omitempty,min=0"`
	StartDate    *time.Time           `json:"startDate"`
	Status       string               `json:"status" validate:"omitempty,business_status"`
	Products     []BusinessProductDTO `json:"products" validate:"omitempty,dive"`
}

// UpdateBusinessRequest actualización parcial; los campos nil no se tocan.
type UpdateBusinessRequest struct {
	BusinessName *string               `json:"businessName" validate:"omitempty,min=1,max=200"`
	Category     *string               `json:"category" validate:"omitempty,business_category"`
	Description  *string               `json:"description" validate:"omitempty,min=1,max=5000"`
	Location     *LocationDTO          `json:"location"`
	Images       []string              `json:"images" validate:"omitempty,dive,url"`
	ContactInfo  *ContactInfoDTO       `json:"contactInfo"`
	Investment   *InvestmentDTO        `json:"investment"`
	Employees    *int                  `json:"employees" validate:"omitempty,min=0"`
	StartDate    *time.Time            `json:"startDate"`
	Status       *string               `json:"status" validate:"omitempty,business_status"`
	Products     *[]BusinessProductDTO `json:"products" validate:"omitempty,dive"`
}

// OwnerSummary datos públicos del dueño tomados de su perfil.
type OwnerSummary struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	District string `json:"district"`
}

// BusinessResponse salida de un negocio.
type BusinessResponse struct {
	ID           string               `json:"id"`
	Owner        OwnerSummary         `json:"owner"`
	BusinessName string               `json:"businessName"`
	Category     string               `json:"category"`
	Description  string               `json:"description"`
	Location     LocationDTO          `json:"location"`
	Images       []string             `json:"images"`
	ContactInfo  ContactInfoDTO       `json:"contactInfo"`
	Investment   InvestmentDTO        `json:"investment"`
	Employees    int                  `json:"employees"`
	StartDate    *time.Time           `json:"startDate,omitempty"`
	Status       string               `json:"status"`
	Products     []BusinessProductDTO `json:"products"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// BusinessFilterRequest filtros de GET /api/businesses.
type BusinessFilterRequest struct {
	Category string `query:"category"`
	Status   string `query:"status"`
	State    string `query:"state"`
	District string `query:"district"`
	PageRequest
}

// BusinessListResponse envoltura {success, count, data, page}.
type BusinessListResponse struct {
	Success bool               `json:"success"`
	Count   int                `json:"count"`
	Data    []BusinessResponse `json:"data"`
	Page    *PageResponse      `json:"page,omitempty"`
}

// BusinessEnvelope envoltura {success, message, data} de un negocio.
type BusinessEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    *BusinessResponse `json:"data"`
}

// DeleteBusinessResponse respuesta de borrado con data vacío.
type DeleteBusinessResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    struct{} `json:"data"`
}

// GroupCountDTO cantidad de negocios por valor de una dimensión.
type GroupCountDTO struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// InvestmentStatsDTO totales de inversión del directorio.
type InvestmentStatsDTO struct {
	Required      decimal.Decimal `json:"required"`
	Raised        decimal.Decimal `json:"raised"`
	FundedPercent decimal.Decimal `json:"fundedPercent"`
}

// BusinessStatsResponse resultado de GET /api/businesses/stats.
type BusinessStatsResponse struct {
	Success    bool               `json:"success"`
	Total      int                `json:"total"`
	Employees  int                `json:"employees"`
	ByCategory []GroupCountDTO    `json:"byCategory"`
	ByStatus   []GroupCountDTO    `json:"byStatus"`
	ByDistrict []GroupCountDTO    `json:"byDistrict"`
	Investment InvestmentStatsDTO `json:"investment"`
}
