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
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseLevel(tc.in), "nivel para %q", tc.in)
	}
}

func TestNew_RespetaNivelConfigurado(t *testing.T) {
	l := New(Config{Env: "production", Level: "debug"})
	assert.Equal(t, zerolog.DebugLevel, l.Zerolog().GetLevel(), "el nivel debe venir de la configuración")

	l = New(Config{Env: "production", Level: "no-existe"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel(), "nivel desconocido cae en info")
}

func TestNew_AgregaCampoService(t *testing.T) {
	l := New(Config{Env: "production", Level: "info", Service: "stockmaster-api"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("arranque")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "la salida debe ser JSON")
	assert.Equal(t, "stockmaster-api", entry["service"], "campo fijo service")
	assert.Equal(t, "arranque", entry["message"])
}
