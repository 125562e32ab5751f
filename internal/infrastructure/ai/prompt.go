package ai

import (
	"fmt"
	"strings"

	"github.com/jhoicas/gramin-udyami-api/pkg/i18n"
)

// translatorSystemPrompt rol del modelo; la salida es texto plano, sin markdown.
const translatorSystemPrompt = `You translate official documents (government notices, scheme circulars, forms) for rural entrepreneurs in India.
Return ONLY the translated text of the attached PDF, in plain text without markdown.
Keep headings, numbered lists, amounts (₹), dates and proper names as in the original.
If part of the document is unreadable, write [unreadable] in its place.`

// translatorMaxResponse tope de bytes leídos de la respuesta del proveedor.
const translatorMaxResponse = 1 << 20

func userPrompt(fileName, targetLang string) string {
	return fmt.Sprintf("Translate the document %q into %s (%s).",
		fileName, i18n.EnglishName(targetLang), i18n.NativeName(targetLang))
}

// cleanText quita cercas de código que algunos modelos añaden aunque se pida texto plano.
func cleanText(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		if nl := strings.Index(text, "\n"); nl != -1 {
			text = text[nl+1:]
		}
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	return strings.TrimSpace(text)
}
