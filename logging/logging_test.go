package logging

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert := assert.New(t)

	l, err := ParseLevel("WARN")
	assert.NoError(err)
	assert.Equal(WarnLevel, l)

	l, err = ParseLevel("")
	assert.NoError(err)
	assert.Equal(InfoLevel, l)

	l, err = ParseLevel("loud")
	assert.Error(err)
	assert.Equal(InfoLevel, l)
}

func TestLevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewLogger(&out, &errOut)
	logger.SetLevel(WarnLevel)

	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error(errors.New("boom"), "failed")

	assert := assert.New(t)
	assert.Empty(out.String())
	assert.Contains(errOut.String(), "[WARN] shown")
	assert.Contains(errOut.String(), "[ERROR] failed: boom")
}

func TestFieldsAreSortedAndMerged(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger(&out, &out).WithFields(Fields{"tonic": "C", "mode": "major"})

	logger.Info("computed", Fields{"arcs": 3})

	assert.Contains(t, out.String(), "[INFO] computed arcs=3 mode=major tonic=C")
}

func TestWithContext(t *testing.T) {
	var out bytes.Buffer
	ctx := ContextWithFields(context.Background(), Fields{"request_id": "abc"})
	ctx = ContextWithFields(ctx, Fields{"route": "/view"})

	NewLogger(&out, &out).WithContext(ctx).Info("handled")

	assert.Contains(t, out.String(), "request_id=abc route=/view")
}

func TestFatalExits(t *testing.T) {
	var out bytes.Buffer
	logger := NewLogger(&out, &out)
	code := -1
	logger.exit = func(c int) { code = c }

	logger.Fatal(errors.New("no port"), "listen failed")

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "[FATAL] listen failed: no port")
}

func TestNilGlobalLoggerIsNoOp(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	SetGlobalLogger(nil)
	assert.IsType(t, &NoOpLogger{}, GetGlobalLogger())
	Info("nothing happens")
}

func TestColorsOffWhenNotATerminal(t *testing.T) {
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	assert.NoError(t, err)
	defer devNull.Close()
	assert.False(t, isTerminal(devNull))

	file, err := os.CreateTemp(t.TempDir(), "log")
	assert.NoError(t, err)
	defer file.Close()
	assert.False(t, isTerminal(file))
}
