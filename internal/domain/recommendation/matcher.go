// Package recommendation decide qué esquemas sugerir a partir del perfil declarado.
// Son reglas fijas de coincidencia de texto, evaluadas siempre en el mismo orden.
package recommendation

import (
	"strings"

	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
)

// Niveles de coincidencia.
const (
	MatchHigh   = "high"
	MatchMedium = "medium"
)

// Claves de plantillas del catálogo.
const (
	KeyPMKisan          = "pm-kisan-samman-nidhi"
	KeyLivestockMission = "national-livestock-mission"
	KeyMudra            = "pm-mudra-yojana"
	KeySkillDevelopment = "pm-skill-development"
)

// Match esquema sugerido con su nivel.
type Match struct {
	Key   string
	Level string
}

// MatchProfile devuelve las sugerencias para el perfil en orden de regla.
func MatchProfile(p *entity.Profile) []Match {
	if p == nil {
		return nil
	}
	occupation := strings.ToLower(p.Occupation)
	businessType := strings.ToLower(p.BusinessType)
	isFarmer := strings.Contains(occupation, "farmer")

	var out []Match
	if isFarmer || strings.Contains(businessType, "agriculture") {
		out = append(out, Match{Key: KeyPMKisan, Level: MatchHigh})
	}
	if strings.Contains(occupation, "dairy") || strings.Contains(businessType, "dairy") {
		out = append(out, Match{Key: KeyLivestockMission, Level: MatchHigh})
	}
	if p.BusinessType != "" && !isFarmer {
		level := MatchHigh
		if p.BusinessExperience == entity.ExperienceNone {
			level = MatchMedium
		}
		out = append(out, Match{Key: KeyMudra, Level: level})
	}
	if p.BusinessExperience == entity.ExperienceNone || p.BusinessExperience == entity.ExperienceLessThanYear {
		out = append(out, Match{Key: KeySkillDevelopment, Level: MatchMedium})
	}
	return out
}
