package telemetry

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerWarnfAlwaysWrites(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Warnf("ballot %d rejected", 3)
	assert.True(t, strings.Contains(buf.String(), "ballot 3 rejected"))
}

func TestLoggerDebugfQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Debugf("should not appear")
	assert.Empty(t, buf.String())
}

func TestLoggerDebugfWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)

	l.Debugf("verbose detail %d", 7)
	assert.True(t, strings.Contains(buf.String(), "verbose detail 7"))
}

func TestNopLoggerDiscardsEverything(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop.Warnf("x")
		Nop.Debugf("y")
	})
}
