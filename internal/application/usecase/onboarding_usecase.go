package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/gramin-udyami-api/internal/application/dto"
	"github.com/jhoicas/gramin-udyami-api/internal/domain"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/onboarding"
	"github.com/jhoicas/gramin-udyami-api/internal/domain/repository"
)

// OnboardingUseCase resuelve en qué paso del alta está un usuario.
type OnboardingUseCase struct {
	profiles repository.ProfileRepository
}

// NewOnboardingUseCase construye el caso de uso.
func NewOnboardingUseCase(profiles repository.ProfileRepository) *OnboardingUseCase {
	return &OnboardingUseCase{profiles: profiles}
}

// Resolve decide el paso a partir de lo que el cliente tiene guardado.
func (uc *OnboardingUseCase) Resolve(in dto.OnboardingResolveRequest) dto.OnboardingStateResponse {
	step := onboarding.Resolve(onboarding.State{
		HasLanguage:    strings.TrimSpace(in.UserLanguage) != "",
		HasUserData:    strings.TrimSpace(in.UserData) != "",
		HasProfileData: strings.TrimSpace(in.ProfileData) != "",
	})
	return toOnboardingResponse(step)
}

// State deriva el paso desde el perfil guardado del usuario.
func (uc *OnboardingUseCase) State(ctx context.Context, userID string) (*dto.OnboardingStateResponse, error) {
	p, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s := onboarding.ServerState{}
	if p != nil {
		s.HasLanguage = p.Language != ""
		s.ProfileComplete = p.IsComplete()
		s.OnboardingCompleted = p.OnboardingCompleted
	}
	out := toOnboardingResponse(onboarding.ResolveServer(s))
	return &out, nil
}

// Complete marca el onboarding como terminado. Exige un perfil completo.
func (uc *OnboardingUseCase) Complete(ctx context.Context, userID string) (*dto.OnboardingStateResponse, error) {
	p, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.IsComplete() {
		return nil, domain.ErrConflict
	}
	if err := uc.profiles.SetOnboardingCompleted(ctx, userID, true); err != nil {
		return nil, err
	}
	out := toOnboardingResponse(onboarding.StepComplete)
	return &out, nil
}

func toOnboardingResponse(step onboarding.Step) dto.OnboardingStateResponse {
	steps := onboarding.Steps()
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = string(s)
	}
	return dto.OnboardingStateResponse{Step: string(step), Next: string(onboarding.Next(step)), Steps: names}
}
