// Package onboarding modela la secuencia lineal de pantallas que recorre un usuario nuevo.
package onboarding

// Step pantalla del flujo de alta.
type Step string

// Pasos en orden.
const (
	StepLanguage     Step = "language"
	StepRegistration Step = "registration"
	StepLogin        Step = "login"
	StepProfile      Step = "profile"
	StepSchemes      Step = "schemes"
	StepComplete     Step = "complete"
)

var order = []Step{StepLanguage, StepRegistration, StepLogin, StepProfile, StepSchemes, StepComplete}

// Steps devuelve la secuencia completa.
func Steps() []Step {
	out := make([]Step, len(order))
	copy(out, order)
	return out
}

// State presencia de los datos guardados por el cliente (idioma, usuario, perfil).
type State struct {
	HasLanguage    bool
	HasUserData    bool
	HasProfileData bool
}

// Resolve decide en qué paso retomar según los datos presentes:
// los tres → complete; idioma y usuario → profile; solo idioma → registration; resto → language.
func Resolve(s State) Step {
	switch {
	case s.HasLanguage && s.HasUserData && s.HasProfileData:
		return StepComplete
	case s.HasLanguage && s.HasUserData:
		return StepProfile
	case s.HasLanguage:
		return StepRegistration
	default:
		return StepLanguage
	}
}

// Next avanza un paso; complete es terminal. Un paso desconocido reinicia el flujo.
func Next(step Step) Step {
	for i, s := range order {
		if s == step {
			if i+1 < len(order) {
				return order[i+1]
			}
			return StepComplete
		}
	}
	return StepLanguage
}

// ServerState estado derivado de lo persistido para un usuario autenticado.
type ServerState struct {
	HasLanguage         bool
	ProfileComplete     bool
	OnboardingCompleted bool
}

// ResolveServer aplica la misma secuencia sobre datos del servidor. Un usuario autenticado
// ya pasó registro y login; tras el perfil queda ver los esquemas recomendados.
func ResolveServer(s ServerState) Step {
	switch {
	case !s.HasLanguage:
		return StepLanguage
	case !s.ProfileComplete:
		return StepProfile
	case !s.OnboardingCompleted:
		return StepSchemes
	default:
		return StepComplete
	}
}
