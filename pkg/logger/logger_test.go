package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel_NivelesConocidos(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseLevel(tc.in), "nivel %q", tc.in)
	}
}

func TestParseLevel_DesconocidoCaeEnInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}

func TestNew_NoPaniqueaSinService(t *testing.T) {
	// El nombre del servicio es opcional: si falta se usa el default.
	l := New(Config{Env: "production", Level: "info"})
	assert.NotNil(t, l)
	assert.NotNil(t, l.Info())
}
