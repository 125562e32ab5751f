package ports

import (
	"context"
)

// Document PDF subido para traducir.
type Document struct {
	FileName string
	Content  []byte
}

// DocumentTranslator define el puerto de salida para traducir documentos.
// Cualquier adaptador (mock, Anthropic, Gemini) debe implementar esta interfaz;
// la aplicación solo conoce este contrato, no la implementación concreta.
type DocumentTranslator interface {
	// Translate devuelve el texto del documento en targetLang (en, hi, mr).
	// El contexto lleva un timeout; el adaptador debe abandonar la llamada si se cancela.
	Translate(ctx context.Context, doc Document, targetLang string) (string, error)
	// Name identifica al proveedor en respuestas y logs.
	Name() string
}
