// Package i18n resuelve el idioma de una petición entre los soportados por el portal
// (inglés, hindi y marathi) y normaliza texto para comparaciones insensibles a mayúsculas.
package i18n

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/unicode/norm"
)

// Códigos de idioma soportados.
const (
	English = "en"
	Hindi   = "hi"
	Marathi = "mr"
)

// Default idioma de respaldo para contenido sin traducción.
const Default = English

var supported = []language.Tag{
	language.English,
	language.Hindi,
	language.Marathi,
}

var codes = []string{English, Hindi, Marathi}

var matcher = language.NewMatcher(supported)

// Supported indica si code es uno de los idiomas del portal.
func Supported(code string) bool {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

// Codes devuelve los códigos soportados en orden.
func Codes() []string {
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}

// Normalize convierte un código o etiqueta BCP 47 (ej. "hi-IN", "mr") a uno de los
// idiomas soportados. Devuelve Default si no hay coincidencia razonable.
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return Default
	}
	if Supported(code) {
		return strings.ToLower(code)
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Default
	}
	return match(tag)
}

// FromAcceptLanguage negocia el idioma a partir del header Accept-Language.
func FromAcceptLanguage(header string) string {
	if strings.TrimSpace(header) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default
	}
	return match(tags...)
}

// Resolve elige el idioma con prioridad: explícito (query/perfil) > Accept-Language > Default.
func Resolve(explicit, acceptLanguage string) string {
	if explicit != "" {
		return Normalize(explicit)
	}
	return FromAcceptLanguage(acceptLanguage)
}

func match(tags ...language.Tag) string {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return codes[idx]
}

// SpeechLocale devuelve el locale de reconocimiento de voz asociado al idioma.
func SpeechLocale(code string) string {
	switch Normalize(code) {
	case Hindi:
		return "hi-IN"
	case Marathi:
		return "mr-IN"
	default:
		return "en-US"
	}
}

// EnglishName nombre del idioma en inglés ("Hindi", "Marathi"), usado en prompts de traducción.
func EnglishName(code string) string {
	return display.English.Languages().Name(language.Make(Normalize(code)))
}

// NativeName nombre del idioma en su propia escritura ("हिन्दी", "मराठी").
func NativeName(code string) string {
	return display.Self.Name(language.Make(Normalize(code)))
}

// Fold normaliza (NFC), recorta y pliega mayúsculas para comparar texto en cualquier escritura.
// cases.Caser guarda estado, por eso se crea uno por llamada.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

// ContainsFold indica si needle aparece en haystack ignorando mayúsculas y forma Unicode.
func ContainsFold(haystack, needle string) bool {
	n := Fold(needle)
	if n == "" {
		return false
	}
	return strings.Contains(Fold(haystack), n)
}
