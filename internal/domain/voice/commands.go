// Package voice interpreta transcripciones del asistente de voz como comandos de navegación.
// La coincidencia es por contención de palabras clave sobre listas fijas por idioma.
package voice

import (
	"github.com/jhoicas/gramin-udyami-api/pkg/i18n"
)

// Acciones de navegación, en el orden en que se evalúan.
const (
	ActionSchemes = "schemes"
	ActionTools   = "tools"
	ActionSuccess = "success"
	ActionHome    = "home"
	ActionContact = "contact"
)

var actionOrder = []string{ActionSchemes, ActionTools, ActionSuccess, ActionHome, ActionContact}

// keywords por idioma; cada lista mezcla escrituras porque el reconocedor a veces
// devuelve la palabra en inglés aunque el usuario hable hindi o marathi.
var keywords = map[string]map[string][]string{
	i18n.English: {
		ActionSchemes: {"schemes", "government schemes", "show schemes", "योजना"},
		ActionTools:   {"tools", "digital tools", "show tools", "साधन"},
		ActionSuccess: {"success stories", "success", "stories", "यश कथा", "सफलता"},
		ActionHome:    {"home", "dashboard", "main page", "होम"},
		ActionContact: {"contact", "help", "support", "संपर्क"},
	},
	i18n.Hindi: {
		ActionSchemes: {"योजना", "योजनाएं", "सरकारी योजना", "schemes"},
		ActionTools:   {"साधन", "उपकरण", "डिजिटल साधन", "tools"},
		ActionSuccess: {"यश कथा", "सफलता", "कहानी", "success stories"},
		ActionHome:    {"होम", "घर", "मुख्य", "home"},
		ActionContact: {"संपर्क", "सहायता", "मदद", "contact"},
	},
	i18n.Marathi: {
		ActionSchemes: {"योजना", "सरकारी योजना", "schemes"},
		ActionTools:   {"साधने", "डिजिटल साधने", "tools"},
		ActionSuccess: {"यश कथा", "यशाच्या गोष्टी", "success stories"},
		ActionHome:    {"होम", "मुख्यपृष्ठ", "home"},
		ActionContact: {"संपर्क", "मदत", "contact"},
	},
}

type responseSet struct {
	Navigating    string
	NotUnderstood string
	Listening     string
}

var responses = map[string]responseSet{
	i18n.English: {
		Navigating:    "Opening",
		NotUnderstood: "I didn't understand that. Try saying 'Show schemes', 'Digital tools', or 'Success stories'",
		Listening:     "Listening... Try saying 'Show schemes' or 'Success stories'",
	},
	i18n.Hindi: {
		Navigating:    "खोल रहा हूँ",
		NotUnderstood: "मैं समझ नहीं पाया। 'योजनाएं दिखाओ', 'डिजिटल साधन', या 'यश कथा' कहकर देखें",
		Listening:     "सुन रहा हूँ... 'योजनाएं दिखाओ' या 'यश कथा' कहकर देखें",
	},
	i18n.Marathi: {
		Navigating:    "उघडत आहे",
		NotUnderstood: "मला समजले नाही. 'योजना दाखवा', 'डिजिटल साधने', किंवा 'यश कथा' म्हणून पहा",
		Listening:     "ऐकत आहे... 'योजना दाखवा' किंवा 'यश कथा' म्हणून पहा",
	},
}

// Result salida de Interpret.
type Result struct {
	Matched bool
	Action  string
	Keyword string
	Message string
	Locale  string
}

// Interpret busca la primera acción (en orden fijo) con alguna palabra clave contenida en el
// comando normalizado. Idiomas no soportados usan las listas en inglés.
func Interpret(lang, transcript string) Result {
	lang = i18n.Normalize(lang)
	cmds, ok := keywords[lang]
	if !ok {
		lang = i18n.English
		cmds = keywords[lang]
	}
	resp := responses[lang]
	res := Result{Locale: i18n.SpeechLocale(lang)}

	command := i18n.Fold(transcript)
	if command != "" {
		for _, action := range actionOrder {
			for _, kw := range cmds[action] {
				if i18n.ContainsFold(command, kw) {
					res.Matched = true
					res.Action = action
					res.Keyword = kw
					res.Message = resp.Navigating + " " + action + "..."
					return res
				}
			}
		}
	}
	res.Message = resp.NotUnderstood
	return res
}

// ListeningHint texto de ayuda mientras el micrófono está activo.
func ListeningHint(lang string) string {
	if r, ok := responses[i18n.Normalize(lang)]; ok {
		return r.Listening
	}
	return responses[i18n.English].Listening
}

// Actions devuelve las acciones en orden de evaluación.
func Actions() []string {
	out := make([]string, len(actionOrder))
	copy(out, actionOrder)
	return out
}
