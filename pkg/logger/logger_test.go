package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestDebugf_OnlyInVerboseMode(t *testing.T) {
	buf := capture(t)

	Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	assert.True(t, IsVerbose())
	Debugf("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestErrorf(t *testing.T) {
	buf := capture(t)

	Errorf("`%s` returns %d", "hidl-gen -Ldependencies A", 1)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "hidl-gen -Ldependencies A")
}

func TestCommand(t *testing.T) {
	buf := capture(t)

	Command([]string{"analyze_matrix", "--input", "m.xml", "--level"})
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Command([]string{"analyze_matrix", "--input", "m.xml", "--level"})
	assert.Equal(t, "analyze_matrix --input m.xml --level\n", buf.String())
}
