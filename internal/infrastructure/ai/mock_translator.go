package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gramin-udyami-api/internal/application/ports"
	"github.com/jhoicas/gramin-udyami-api/pkg/i18n"
)

var _ ports.DocumentTranslator = (*MockTranslator)(nil)

const mockTemplate = `Sample Translated Document

Government of Maharashtra
Agriculture Department Scheme Notice

Dear Rural Entrepreneurs,

This document has been translated from %s.
Target language: %s

The Maharashtra Government announces a new subsidy scheme for:
- Agricultural equipment purchase (50%% subsidy)
- Organic farming initiatives (₹25,000 grant)
- Water conservation projects (₹50,000 subsidy)

Eligibility Criteria:
1. Must be a resident of Maharashtra
2. Landholding: 1-5 acres
3. Annual income: Below ₹3,00,000

Application Process:
1. Visit nearest Taluka office
2. Submit required documents
3. Fill application form
4. Await approval within 30 days

For more information, contact your local agriculture officer.

Note: This is a simulated translation for demonstration purposes.`

// MockTranslator traductor simulado: espera delay y devuelve un aviso fijo con el nombre del archivo.
type MockTranslator struct {
	delay time.Duration
}

// NewMockTranslator construye el traductor simulado.
func NewMockTranslator(delay time.Duration) *MockTranslator {
	return &MockTranslator{delay: delay}
}

// Name identifica al proveedor.
func (t *MockTranslator) Name() string { return "mock" }

// Translate respeta la cancelación del contexto durante la espera.
func (t *MockTranslator) Translate(ctx context.Context, doc ports.Document, targetLang string) (string, error) {
	if t.delay > 0 {
		timer := time.NewTimer(t.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return fmt.Sprintf(mockTemplate, doc.FileName, i18n.EnglishName(targetLang)), nil
}
