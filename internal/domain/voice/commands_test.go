package voice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gramin-udyami-api/internal/domain/voice"
)

func TestInterpret_Ingles(t *testing.T) {
	r := voice.Interpret("en", "  Please SHOW SCHEMES for farmers ")
	assert.True(t, r.Matched)
	assert.Equal(t, voice.ActionSchemes, r.Action)
	assert.Equal(t, "Opening schemes...", r.Message)
	assert.Equal(t, "en-US", r.Locale)
}

func TestInterpret_OrdenFijo(t *testing.T) {
	// "tools" y "help" aparecen; tools se evalúa antes que contact.
	r := voice.Interpret("en", "help me with digital tools")
	assert.Equal(t, voice.ActionTools, r.Action)

	// "success stories" contiene "stories"; success va antes que home.
	r = voice.Interpret("en", "home page success stories")
	assert.Equal(t, voice.ActionSuccess, r.Action)
}

func TestInterpret_Hindi(t *testing.T) {
	r := voice.Interpret("hi-IN", "सरकारी योजनाएं दिखाओ")
	assert.True(t, r.Matched)
	assert.Equal(t, voice.ActionSchemes, r.Action)
	assert.Equal(t, "खोल रहा हूँ schemes...", r.Message)
	assert.Equal(t, "hi-IN", r.Locale)
}

func TestInterpret_MarathiConPalabraInglesa(t *testing.T) {
	r := voice.Interpret("mr", "open contact page")
	assert.Equal(t, voice.ActionContact, r.Action)
	assert.Equal(t, "mr-IN", r.Locale)
}

func TestInterpret_NoEntendido(t *testing.T) {
	r := voice.Interpret("en", "what is the weather")
	assert.False(t, r.Matched)
	assert.Empty(t, r.Action)
	assert.Contains(t, r.Message, "I didn't understand that")

	r = voice.Interpret("mr", "")
	assert.False(t, r.Matched)
	assert.Contains(t, r.Message, "मला समजले नाही")
}

func TestInterpret_IdiomaDesconocidoUsaIngles(t *testing.T) {
	r := voice.Interpret("fr", "show tools")
	assert.Equal(t, voice.ActionTools, r.Action)
	assert.Equal(t, "Opening tools...", r.Message)
}
