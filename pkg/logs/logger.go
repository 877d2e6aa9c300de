package logs

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes JSON lines with a timestamp and event fields.
// A nil or disabled Logger discards everything.
type Logger struct {
	mu sync.Mutex
	w  *bufio.Writer
	c  io.Closer
}

// NewFromEnv returns a logger if BLAZE_LOG is set to a truthy value or
// BLAZE_LOG_FILE (or fallback) names a file. When enabled without a file it
// writes to ./blaze.log.
func NewFromEnv(fallback string) *Logger {
	lf := os.Getenv("BLAZE_LOG_FILE")
	if lf == "" {
		lf = fallback
	}
	enabled := lf != ""
	if v := os.Getenv("BLAZE_LOG"); v != "" && v != "0" && v != "false" {
		enabled = true
	}
	if !enabled {
		return nil
	}
	if lf == "" {
		lf = filepath.Join(".", "blaze.log")
	}
	f, err := os.OpenFile(lf, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		// An unwritable log file disables logging rather than the editor.
		return nil
	}
	return New(f)
}

// New returns a logger writing to w. If w is an io.Closer, Close closes it.
func New(w io.Writer) *Logger {
	l := &Logger{w: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		l.c = c
	}
	return l
}

// Close flushes and closes the underlying writer.
func (l *Logger) Close() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.w.Flush()
	if l.c != nil {
		_ = l.c.Close()
	}
}

// Event writes a JSON line with the event name and fields.
// Common fields: key, rune, cmd, mode, col, line, file, error.
func (l *Logger) Event(event string, fields map[string]any) {
	if l == nil {
		return
	}
	rec := map[string]any{
		"time":  time.Now().Format(time.RFC3339Nano),
		"event": event,
	}
	for k, v := range fields {
		rec[k] = v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = json.NewEncoder(l.w).Encode(rec)
	_ = l.w.Flush()
}
