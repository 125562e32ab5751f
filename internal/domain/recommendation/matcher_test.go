package recommendation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jhoicas/gramin-udyami-api/internal/domain/entity"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/recommendation"
)

func TestMatchProfile(t *testing.T) {
	cases := []struct {
		name    string
		profile *entity.Profile
		want    []recommendation.Match
	}{
		{
			name:    "agricultor con experiencia",
			profile: &entity.Profile{Occupation: "Farmer", BusinessType: "Agriculture", BusinessExperience: entity.ExperienceThreeToFive},
			want:    []recommendation.Match{{Key: recommendation.KeyPMKisan, Level: recommendation.MatchHigh}},
		},
		{
			name:    "lechero sin experiencia",
			profile: &entity.Profile{Occupation: "Dairy Farmer", BusinessType: "Dairy", BusinessExperience: entity.ExperienceNone},
			want: []recommendation.Match{
				{Key: recommendation.KeyPMKisan, Level: recommendation.MatchHigh},
				{Key: recommendation.KeyLivestockMission, Level: recommendation.MatchHigh},
				{Key: recommendation.KeySkillDevelopment, Level: recommendation.MatchMedium},
			},
		},
		{
			name:    "sastre nuevo",
			profile: &entity.Profile{Occupation: "Tailor", BusinessType: "Textiles", BusinessExperience: entity.ExperienceNone},
			want: []recommendation.Match{
				{Key: recommendation.KeyMudra, Level: recommendation.MatchMedium},
				{Key: recommendation.KeySkillDevelopment, Level: recommendation.MatchMedium},
			},
		},
		{
			name:    "comerciante con menos de un año",
			profile: &entity.Profile{Occupation: "Small Trader", BusinessType: "Trading", BusinessExperience: entity.ExperienceLessThanYear},
			want: []recommendation.Match{
				{Key: recommendation.KeyMudra, Level: recommendation.MatchHigh},
				{Key: recommendation.KeySkillDevelopment, Level: recommendation.MatchMedium},
			},
		},
		{
			name:    "dairy en el tipo de negocio, mayúsculas",
			profile: &entity.Profile{Occupation: "Vegetable Vendor", BusinessType: "DAIRY products", BusinessExperience: entity.ExperienceMoreThanFive},
			want: []recommendation.Match{
				{Key: recommendation.KeyLivestockMission, Level: recommendation.MatchHigh},
				{Key: recommendation.KeyMudra, Level: recommendation.MatchHigh},
			},
		},
		{
			name:    "perfil vacío",
			profile: &entity.Profile{},
			want:    nil,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := recommendation.MatchProfile(c.profile)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("MatchProfile() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
