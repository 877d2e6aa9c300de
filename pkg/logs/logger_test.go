package logs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_WritesJSONLine(t *testing.T) {
	var out bytes.Buffer
	l := New(&out)
	l.Event("open.success", map[string]any{"file": "a.txt", "lines": 3})
	l.Event("run.end", nil)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "open.success", rec["event"])
	assert.Equal(t, "a.txt", rec["file"])
	assert.Contains(t, rec, "time")
}

func TestNilLogger_IsNoop(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Event("x", map[string]any{"a": 1})
		l.Close()
	})
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("BLAZE_LOG", "")
	t.Setenv("BLAZE_LOG_FILE", "")
	assert.Nil(t, NewFromEnv(""), "disabled without env or fallback")

	path := filepath.Join(t.TempDir(), "blaze.log")
	t.Setenv("BLAZE_LOG_FILE", path)
	l := NewFromEnv("")
	require.NotNil(t, l)
	l.Event("run.start", nil)
	l.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"event":"run.start"`)
}
