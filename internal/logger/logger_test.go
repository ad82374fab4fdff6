package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, TRACE, ParseLevel("trace"))
	assert.Equal(t, DEBUG, ParseLevel("DEBUG"))
	assert.Equal(t, WARN, ParseLevel("warning"))
	assert.Equal(t, INFO, ParseLevel("bogus"))
	assert.Equal(t, "error", ERROR.String())
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger("warn", &buf)

	log.Info("hidden")
	log.Warnf("shown %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 1")
	assert.Contains(t, out, "[WARN ]")
	assert.Contains(t, out, "logger_test.go")
}

func TestNamedPrefix(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger("trace", &buf).Named("render").Named("resize")

	log.Tracef("Resizing window to %dx%d", 640, 480)

	assert.Contains(t, buf.String(), "render.resize: Resizing window to 640x480")
}

func TestFatalCallsExit(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger("info", &buf)

	code := -1
	log.SetExitFunc(func(c int) { code = c })
	log.Fatal("boom")

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "[FATAL] ")
}
