package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetDefaults restores the default logger to a known state between
// tests. Necessary because charmbracelet/log uses global state.
func resetDefaults(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		log.SetLevel(log.InfoLevel)
		log.SetOutput(os.Stderr)
		log.SetFormatter(log.TextFormatter)
	})
}

func TestSetup_DefaultLevel(t *testing.T) {
	resetDefaults(t)

	Setup(false, false, false)

	assert.Equal(t, log.InfoLevel, log.GetLevel())
}

func TestSetup_VerboseSetsDebug(t *testing.T) {
	resetDefaults(t)

	Setup(true, false, false)

	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestSetup_QuietSetsError(t *testing.T) {
	resetDefaults(t)

	Setup(false, true, false)

	assert.Equal(t, log.ErrorLevel, log.GetLevel())
}

func TestSetup_QuietWinsOverVerbose(t *testing.T) {
	resetDefaults(t)

	Setup(true, true, false)

	assert.Equal(t, log.ErrorLevel, log.GetLevel(),
		"when both verbose and quiet are set, quiet should win")
}

func TestSetup_JSONFormatter(t *testing.T) {
	resetDefaults(t)

	var buf bytes.Buffer
	Setup(false, false, true)
	SetOutput(&buf)

	log.Info("json test")

	output := buf.String()
	require.NotEmpty(t, output)

	var parsed map[string]any
	err := json.Unmarshal([]byte(strings.TrimSpace(output)), &parsed)
	require.NoError(t, err, "JSON formatter should produce valid JSON: %s", output)
	assert.Equal(t, "json test", parsed["msg"])
}

func TestNew_PrefixAppearsInOutput(t *testing.T) {
	resetDefaults(t)

	var buf bytes.Buffer
	Setup(false, false, false)
	SetOutput(&buf)

	logger := New("render")
	logger.SetOutput(&buf)
	logger.Info("hello")

	assert.Contains(t, buf.String(), "render", "component prefix should appear in output")
	assert.Contains(t, buf.String(), "hello")
}
