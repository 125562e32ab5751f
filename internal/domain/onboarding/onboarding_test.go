package onboarding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gramin-udyami-api/internal/domain/onboarding"
)

func TestResolve_CombinacionesDeClaves(t *testing.T) {
	cases := []struct {
		name  string
		state onboarding.State
		want  onboarding.Step
	}{
		{"sin datos", onboarding.State{}, onboarding.StepLanguage},
		{"solo idioma", onboarding.State{HasLanguage: true}, onboarding.StepRegistration},
		{"idioma y usuario", onboarding.State{HasLanguage: true, HasUserData: true}, onboarding.StepProfile},
		{"todo", onboarding.State{HasLanguage: true, HasUserData: true, HasProfileData: true}, onboarding.StepComplete},
		{"usuario sin idioma", onboarding.State{HasUserData: true, HasProfileData: true}, onboarding.StepLanguage},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, onboarding.Resolve(c.state))
		})
	}
}

func TestNext_Lineal(t *testing.T) {
	steps := onboarding.Steps()
	for i := 0; i < len(steps)-1; i++ {
		assert.Equal(t, steps[i+1], onboarding.Next(steps[i]))
	}
	assert.Equal(t, onboarding.StepComplete, onboarding.Next(onboarding.StepComplete))
	assert.Equal(t, onboarding.StepLanguage, onboarding.Next("desconocido"))
}

func TestResolveServer(t *testing.T) {
	assert.Equal(t, onboarding.StepLanguage, onboarding.ResolveServer(onboarding.ServerState{}))
	assert.Equal(t, onboarding.StepProfile, onboarding.ResolveServer(onboarding.ServerState{HasLanguage: true}))
	assert.Equal(t, onboarding.StepSchemes, onboarding.ResolveServer(onboarding.ServerState{HasLanguage: true, ProfileComplete: true}))
	assert.Equal(t, onboarding.StepComplete, onboarding.ResolveServer(onboarding.ServerState{
		HasLanguage: true, ProfileComplete: true, OnboardingCompleted: true,
	}))
}
