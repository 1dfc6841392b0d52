package util

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lvl  LogLevel
		want zerolog.Level
	}{
		{TraceLevel, zerolog.TraceLevel},
		{DebugLevel, zerolog.DebugLevel},
		{InfoLevel, zerolog.InfoLevel},
		{WarnLevel, zerolog.WarnLevel},
		{ErrorLevel, zerolog.ErrorLevel},
		{42, zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ZerologLevel(tt.lvl), "level %d", tt.lvl)
	}
}

func TestGetLogger_Component(t *testing.T) {
	var buf bytes.Buffer
	InitializeLoggerTo(InfoLevel, &buf)

	logger := GetLogger("TestComponent")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "TestComponent")
}

func TestPointer(t *testing.T) {
	t.Parallel()

	p := Pointer(3)
	assert.Equal(t, 3, *p)
}
