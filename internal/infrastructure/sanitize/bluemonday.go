// Package sanitize limpia texto libre de usuarios antes de persistirlo.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jhoicas/gramin-udyami-api/internal/application/ports"
)

var _ ports.TextSanitizer = (*StrictSanitizer)(nil)

// StrictSanitizer elimina todo HTML (bluemonday.StrictPolicy). Policy es seguro para uso concurrente.
type StrictSanitizer struct {
	policy *bluemonday.Policy
}

// NewStrictSanitizer construye el sanitizador.
func NewStrictSanitizer() *StrictSanitizer {
	return &StrictSanitizer{policy: bluemonday.StrictPolicy()}
}

// textEntities revierte solo los escapes de texto plano que agrega StrictPolicy. &lt; y &gt;
// quedan escapados: nunca vuelven a ser etiquetas.
var textEntities = strings.NewReplacer("&amp;", "&", "&#39;", "'", "&#34;", `"`)

// Sanitize quita etiquetas y scripts. Las entidades se decodifican antes de aplicar la política,
// así el marcado escrito como &lt;script&gt; también se elimina.
func (s *StrictSanitizer) Sanitize(in string) string {
	if in == "" {
		return ""
	}
	clean := s.policy.Sanitize(html.UnescapeString(in))
	return strings.TrimSpace(textEntities.Replace(clean))
}
