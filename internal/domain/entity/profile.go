package entity

import "time"

// Bandas de experiencia aceptadas (los valores se guardan en inglés; la UI los traduce).
const (
	ExperienceNone         = "No Experience"
	ExperienceLessThanYear = "Less than 1 year"
	ExperienceOneToThree   = "1-3 years"
	ExperienceThreeToFive  = "3-5 years"
	ExperienceMoreThanFive = "More than 5 years"
)

// ExperienceLevels en el orden en que se muestran.
var ExperienceLevels = []string{
	ExperienceNone, ExperienceLessThanYear, ExperienceOneToThree, ExperienceThreeToFive, ExperienceMoreThanFive,
}

// IncomeRanges rangos de ingreso mensual.
var IncomeRanges = []string{
	"Below ₹10,000", "₹10,000 - ₹25,000", "₹25,000 - ₹50,000", "₹50,000 - ₹1,00,000", "Above ₹1,00,000",
}

// Districts distritos de Maharashtra ofrecidos en el perfil.
var Districts = []string{
	"Pune", "Mumbai", "Nashik", "Nagpur", "Aurangabad", "Solapur", "Amravati",
	"Sangli", "Kolhapur", "Ahmednagar", "Satara", "Dhule", "Latur", "Osmanabad",
	"Beed", "Parbhani", "Hingoli", "Nanded", "Yavatmal", "Akola", "Washim",
	"Buldhana", "Jalgaon", "Nandurbar", "Ratnagiri", "Sindhudurg", "Raigad",
	"Thane", "Palghar", "Bhandara", "Gondiya", "Gadchiroli", "Chandrapur", "Wardha",
}

// Occupations sugeridas (el campo acepta texto libre).
var Occupations = []string{
	"Farmer", "Dairy Farmer", "Poultry Farmer", "Fish Farmer", "Vegetable Vendor",
	"Grocery Shop Owner", "Tailor", "Carpenter", "Blacksmith", "Potter",
	"Handicraft Maker", "Food Processing", "Textile Worker", "Auto Driver",
	"Small Trader", "Mechanic", "Electrician", "Plumber", "Beautician", "Barber",
}

// BusinessTypes sugeridos para el perfil.
var BusinessTypes = []string{
	"Agriculture", "Dairy", "Poultry", "Fishery", "Retail Shop", "Food Business",
	"Handicrafts", "Textiles", "Manufacturing", "Service Business", "Trading",
	"Auto/Transport", "Beauty/Salon", "Repair Services", "Other",
}

// Profile datos autodeclarados del emprendedor; alimentan las recomendaciones de esquemas.
type Profile struct {
	UserID              string
	Name                string
	Age                 int
	Address             string
	District            string
	Occupation          string
	BusinessType        string
	BusinessDescription string
	MonthlyIncome       string
	BusinessExperience  string
	Language            string
	OnboardingCompleted bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsComplete indica si todos los campos obligatorios del perfil tienen valor.
func (p *Profile) IsComplete() bool {
	if p == nil {
		return false
	}
	return p.Name != "" && p.Age > 0 && p.Address != "" && p.District != "" &&
		p.Occupation != "" && p.BusinessType != "" && p.MonthlyIncome != "" && p.BusinessExperience != ""
}

// IsKnownExperience valida la banda de experiencia.
func IsKnownExperience(v string) bool { return contains(ExperienceLevels, v) }

// IsKnownIncomeRange valida el rango de ingreso.
func IsKnownIncomeRange(v string) bool { return contains(IncomeRanges, v) }

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
