package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jhoicas/gramin-udyami-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiTranslator implementa DocumentTranslator.
var _ ports.DocumentTranslator = (*GeminiTranslator)(nil)

// GeminiTranslator adaptador sobre el SDK de Google Gemini; el PDF se adjunta como Blob.
type GeminiTranslator struct {
	client *genai.Client
	model  string
}

// NewGeminiTranslator abre el cliente. Cerrar con Close al apagar.
func NewGeminiTranslator(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*GeminiTranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("AI: crear cliente Gemini: %w", err)
	}
	return &GeminiTranslator{client: client, model: model}, nil
}

// Name identifica al proveedor.
func (t *GeminiTranslator) Name() string { return "gemini" }

// Close libera el cliente.
func (t *GeminiTranslator) Close() error { return t.client.Close() }

// Translate envía el PDF y la instrucción a Gemini y concatena las partes de texto devueltas.
func (t *GeminiTranslator) Translate(ctx context.Context, doc ports.Document, targetLang string) (string, error) {
	model := t.client.GenerativeModel(t.model)
	model.SystemInstruction = genai.NewUserContent(genai.Text(translatorSystemPrompt))
	model.SetTemperature(0.2) // baja temperatura para traducciones más literales
	model.SetMaxOutputTokens(8192)

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: "application/pdf", Data: doc.Content},
		genai.Text(userPrompt(doc.FileName, targetLang)),
	)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: Gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	text := cleanText(sb.String())
	if text == "" {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return text, nil
}
