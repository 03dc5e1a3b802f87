package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DefaultLevelHidesDebug(t *testing.T) {
	var out bytes.Buffer
	logger := New(&out, false)

	logger.Debug("hidden")
	logger.Warn("failed to read file", "file", "a.h")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "failed to read file")
	assert.Contains(t, out.String(), prefix)
}

func TestNew_VerboseShowsDebug(t *testing.T) {
	var out bytes.Buffer
	logger := New(&out, true)

	logger.Debug("scan complete", "files", 3)

	assert.Contains(t, out.String(), "scan complete")
	assert.Contains(t, out.String(), "files=3")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error("dropped")
	})
}
