package editor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrNotExist is returned by Open for a path that is not an existing file.
	ErrNotExist = errors.New("file does not exist")
	// ErrUnbound is returned by Save when there is no existing bound file.
	ErrUnbound = errors.New("no file bound")
)

func (e *Editor) reset(lines ...string) {
	e.buf.Reset(lines...)
	e.col, e.row, e.scroll = 0, 0, 0
	e.tabWidth = e.defaultTab
}

// Load prepares the editor for path at startup. A missing path (or "")
// yields one empty line, unbound, in View mode.
func (e *Editor) Load(path string) error {
	if path == "" || !e.files.Exists(path) {
		e.reset()
		e.path = ""
		e.mode = transition(e.mode, EventClose)
		return nil
	}
	return e.Open(path)
}

// Open replaces the buffer with the lines of an existing file and binds it.
// Read-only files put the editor in ReadOnly mode.
func (e *Editor) Open(path string) error {
	e.Logger.Event("open.attempt", map[string]any{"file": path})
	if !e.files.Exists(path) {
		e.Logger.Event("open.error", map[string]any{"file": path, "error": ErrNotExist.Error()})
		return fmt.Errorf("open %s: %w", path, ErrNotExist)
	}
	lines, err := e.files.ReadLines(path)
	if err != nil {
		e.Logger.Event("open.error", map[string]any{"file": path, "error": err.Error()})
		return fmt.Errorf("open %s: %w", path, err)
	}
	e.reset(lines...)
	e.path = path
	if e.files.IsReadOnly(path) {
		e.mode = transition(e.mode, EventLoadReadOnly)
	} else {
		e.mode = transition(e.mode, EventLoadWritable)
	}
	e.Logger.Event("open.success", map[string]any{"file": path, "lines": e.buf.Len(), "mode": e.mode.String()})
	return nil
}

// CanSaveInPlace reports whether Save can overwrite the bound file.
func (e *Editor) CanSaveInPlace() bool {
	return e.path != "" && e.files.Exists(e.path)
}

// Save overwrites the bound file with the buffer.
func (e *Editor) Save() error {
	if !e.CanSaveInPlace() {
		return ErrUnbound
	}
	return e.write(e.path)
}

// SaveAs creates dir if needed, binds dir/name and writes the buffer there.
// Blank dir or name abandons the save; the returned bool reports whether
// anything was written.
func (e *Editor) SaveAs(dir, name string) (bool, error) {
	if strings.TrimSpace(dir) == "" || strings.TrimSpace(name) == "" {
		e.Logger.Event("save.abandoned", map[string]any{"dir": dir, "name": name})
		return false, nil
	}
	if err := e.files.MkdirAll(dir); err != nil {
		e.Logger.Event("save.error", map[string]any{"dir": dir, "error": err.Error()})
		return false, fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := e.write(path); err != nil {
		return false, err
	}
	e.path = path
	return true, nil
}

func (e *Editor) write(path string) error {
	if err := e.files.WriteLines(path, e.buf.Lines()); err != nil {
		e.Logger.Event("save.error", map[string]any{"file": path, "error": err.Error()})
		return fmt.Errorf("save %s: %w", path, err)
	}
	e.Logger.Event("save.success", map[string]any{"file": path, "lines": e.buf.Len()})
	return nil
}

// Close unbinds the file and resets the editor to its initial state.
func (e *Editor) Close() {
	e.path = ""
	e.reset()
	e.mode = transition(e.mode, EventClose)
}
