package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("ruidoso"))
}

func TestComponent_AgregaCampos(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, Config{Level: "info", Service: "gramin", Version: "1.0.0"})

	l.Component("business").Info().Msg("hola")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "gramin", line["service"])
	assert.Equal(t, "business", line["component"])
	assert.Equal(t, "hola", line["message"])
}
