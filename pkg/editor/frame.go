package editor

import (
	"fmt"
	"path/filepath"
)

// FillerMarker is drawn on viewport rows past the end of the buffer.
const FillerMarker = "~"

// Row is one viewport row. Filler rows lie beyond the last buffer line.
type Row struct {
	Text   string
	Filler bool
}

// Status is the data shown on the status line.
type Status struct {
	Column   int
	Line     int
	TabWidth int
	Mode     Mode
	File     string
}

func (s Status) String() string {
	return fmt.Sprintf("[Position: %d, %d]   [Tab: %d]   [Mode: %s]   [File: %s]",
		s.Column, s.Line, s.TabWidth, s.Mode, s.File)
}

// Frame is everything a renderer needs to redraw the editor.
type Frame struct {
	Rows    []Row
	Status  Status
	CursorX int
	CursorY int
}

// FileName returns the base name of the bound file, or "" when unbound.
func (e *Editor) FileName() string {
	if e.path == "" {
		return ""
	}
	return filepath.Base(e.path)
}

// Status returns the current status line data.
func (e *Editor) Status() Status {
	return Status{
		Column:   e.col,
		Line:     e.CurrentLineIndex(),
		TabWidth: e.tabWidth,
		Mode:     e.mode,
		File:     e.FileName(),
	}
}

// Frame returns the visible slice of the buffer padded with filler rows to
// the viewport height, plus status and cursor position.
func (e *Editor) Frame() Frame {
	e.fit()
	_, h := e.viewport()
	rows := make([]Row, 0, h)
	for _, l := range e.buf.Slice(e.scroll, e.scroll+h) {
		rows = append(rows, Row{Text: l})
	}
	for len(rows) < h {
		rows = append(rows, Row{Text: FillerMarker, Filler: true})
	}
	return Frame{Rows: rows, Status: e.Status(), CursorX: e.col, CursorY: e.row}
}
