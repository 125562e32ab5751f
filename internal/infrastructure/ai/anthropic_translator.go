package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/gramin-udyami-api/internal/application/ports"
	"github.com/jhoicas/gramin-udyami-api/internal/domain"
)

// Verificar en tiempo de compilación que AnthropicTranslator implementa DocumentTranslator.
var _ ports.DocumentTranslator = (*AnthropicTranslator)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"
)

// AnthropicTranslator adaptador que traduce el PDF con la API REST de Anthropic (Claude).
// El PDF viaja como bloque "document" en base64.
type AnthropicTranslator struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewAnthropicTranslator construye el adaptador.
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewAnthropicTranslator(apiKey, model string) *AnthropicTranslator {
	return &AnthropicTranslator{
		apiKey:   apiKey,
		model:    model,
		endpoint: anthropicMessagesURL,
		httpClient: &http.Client{
			// Timeout de red; el use case impone además su propio context.WithTimeout.
			Timeout: 120 * time.Second,
		},
	}
}

// WithEndpoint cambia la URL de la API (pruebas o proxy).
func (t *AnthropicTranslator) WithEndpoint(url string) *AnthropicTranslator {
	t.endpoint = url
	return t
}

// Name identifica al proveedor.
func (t *AnthropicTranslator) Name() string { return "anthropic" }

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string           `json:"role"`
	Content []anthropicBlock `json:"content"`
}

type anthropicBlock struct {
	Type   string           `json:"type"`
	Text   string           `json:"text,omitempty"`
	Source *anthropicSource `json:"source,omitempty"`
}

type anthropicSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Translate envía el PDF a Claude y devuelve el texto traducido.
func (t *AnthropicTranslator) Translate(ctx context.Context, doc ports.Document, targetLang string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado: %w", domain.ErrTranslatorUnavailable)
	}

	payload := anthropicRequest{
		Model:     t.model,
		MaxTokens: 8192,
		System:    translatorSystemPrompt,
		Messages: []anthropicMessage{{
			Role: "user",
			Content: []anthropicBlock{
				{
					Type: "document",
					Source: &anthropicSource{
						Type:      "base64",
						MediaType: "application/pdf",
						Data:      base64.StdEncoding.EncodeToString(doc.Content),
					},
				},
				{Type: "text", Text: userPrompt(doc.FileName, targetLang)},
			},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", t.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, translatorMaxResponse))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d", resp.StatusCode)
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}

	var sb strings.Builder
	for _, c := range anthResp.Content {
		if c.Type == "text" {
			sb.WriteString(c.Text)
		}
	}
	text := cleanText(sb.String())
	if text == "" {
		return "", fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}
	return text, nil
}
