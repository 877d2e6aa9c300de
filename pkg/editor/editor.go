// Package editor implements the buffer, viewport and cursor model of a
// single-file modal text editor together with its mode controller.
package editor

import (
	"strings"

	"example.com/blaze/pkg/buffer"
	"example.com/blaze/pkg/fileio"
	"example.com/blaze/pkg/logs"
)

const (
	// DefaultTabWidth is the indent width used when none is configured.
	DefaultTabWidth = 4
	// rightMargin is the number of display columns kept free at the right edge.
	rightMargin = 2
)

// Terminal reports the size of the text area available to the editor. It is
// queried on every operation so resizes are picked up as they happen.
type Terminal interface {
	ViewportSize() (width, height int)
}

// Editor owns the line buffer, the scroll offset, the cursor and the mode.
// The cursor is held as a column and a viewport row; the logical line is
// row + scroll.
type Editor struct {
	Logger *logs.Logger

	term  Terminal
	files fileio.Files
	buf   buffer.TextStorage

	col    int
	row    int
	scroll int

	tabWidth   int
	defaultTab int
	mode       Mode
	path       string
}

// New creates an editor holding one empty line, unbound, in View mode.
func New(term Terminal, files fileio.Files) *Editor {
	return &Editor{
		term:       term,
		files:      files,
		buf:        buffer.New(),
		tabWidth:   DefaultTabWidth,
		defaultTab: DefaultTabWidth,
		mode:       ModeView,
	}
}

// SetDefaultTabWidth sets the tab width restored on open and close and
// applies it immediately. Values below 1 are ignored.
func (e *Editor) SetDefaultTabWidth(n int) {
	if n < 1 {
		return
	}
	e.defaultTab = n
	e.tabWidth = n
}

func (e *Editor) viewport() (width, height int) {
	width, height = e.term.ViewportSize()
	if height < 1 {
		height = 1
	}
	if width < 0 {
		width = 0
	}
	return width, height
}

// fit pulls the cursor row back inside the viewport after a resize,
// scrolling so the current line stays the same.
func (e *Editor) fit() {
	_, h := e.viewport()
	if e.row > h-1 {
		e.scroll += e.row - (h - 1)
		e.row = h - 1
	}
	if last := e.buf.Len() - 1; e.row+e.scroll > last {
		e.scroll = 0
		e.row = 0
		if last > h-1 {
			e.scroll = last - (h - 1)
			e.row = h - 1
		} else {
			e.row = last
		}
	}
	e.clampColumn()
}

// CurrentLineIndex is the logical index of the line under the cursor.
func (e *Editor) CurrentLineIndex() int { return e.row + e.scroll }

func (e *Editor) lineLen() int { return e.buf.LineLen(e.CurrentLineIndex()) }

func (e *Editor) clampColumn() {
	n := e.lineLen()
	if n == 0 || e.col < 0 {
		e.col = 0
	}
	if e.col > n {
		e.col = n
	}
}

// MoveLeft moves the cursor one column left, stopping at column 0.
func (e *Editor) MoveLeft() {
	e.fit()
	if e.col > 0 {
		e.col--
	}
}

// MoveRight moves the cursor one column right, stopping at the line end.
func (e *Editor) MoveRight() {
	e.fit()
	if e.col < e.lineLen() {
		e.col++
	}
}

// MoveUp moves the cursor up a row, scrolling the viewport when it is
// already on the top row.
func (e *Editor) MoveUp() {
	e.fit()
	switch {
	case e.row > 0:
		e.row--
	case e.scroll > 0:
		e.scroll--
	}
	e.clampColumn()
}

// MoveDown moves the cursor down a row, scrolling the viewport when it is
// already on the bottom row and more lines exist below.
func (e *Editor) MoveDown() {
	e.fit()
	_, h := e.viewport()
	if e.CurrentLineIndex() < e.buf.Len()-1 {
		if e.row+1 < h {
			e.row++
		} else {
			e.scroll++
		}
	}
	e.clampColumn()
}

// LineStart puts the cursor at column 0.
func (e *Editor) LineStart() {
	e.fit()
	e.col = 0
}

// LineEnd puts the cursor after the last character of the line.
func (e *Editor) LineEnd() {
	e.fit()
	e.col = e.lineLen()
}

// LineMiddle puts the cursor at half the line length.
func (e *Editor) LineMiddle() {
	e.fit()
	e.col = e.lineLen() / 2
}

// withinMargin reports whether col is left of the reserved right margin.
func (e *Editor) withinMargin(col int) bool {
	w, _ := e.viewport()
	return col < w-rightMargin
}

func printable(c rune) bool { return c >= 0x20 && c < 0x7f }

// InsertChar inserts a printable ASCII character at the cursor. It reports
// whether the character was inserted.
func (e *Editor) InsertChar(c rune) bool {
	e.fit()
	if e.mode != ModeInsert || !printable(c) || !e.withinMargin(e.col) {
		return false
	}
	if err := e.buf.Insert(e.CurrentLineIndex(), e.col, string(c)); err != nil {
		return false
	}
	e.col++
	return true
}

// Indent inserts TabWidth spaces at the cursor when they fit before the
// right margin.
func (e *Editor) Indent() {
	e.fit()
	if e.mode != ModeInsert || !e.withinMargin(e.col+e.tabWidth) {
		return
	}
	if err := e.buf.Insert(e.CurrentLineIndex(), e.col, strings.Repeat(" ", e.tabWidth)); err != nil {
		return
	}
	e.col += e.tabWidth
}

// SplitLine breaks the current line at the cursor and moves to the start
// of the new line, scrolling when the cursor is on the bottom row.
func (e *Editor) SplitLine() {
	e.fit()
	if e.mode != ModeInsert {
		return
	}
	if err := e.buf.Split(e.CurrentLineIndex(), e.col); err != nil {
		return
	}
	_, h := e.viewport()
	if e.row+1 >= h {
		e.scroll++
	} else {
		e.row++
	}
	e.col = 0
}

// Backspace deletes the character left of the cursor. Empty lines and
// column 0 are left alone; lines are never joined.
func (e *Editor) Backspace() {
	e.fit()
	if e.mode != ModeInsert || e.lineLen() == 0 || e.col == 0 {
		return
	}
	if err := e.buf.DeleteAt(e.CurrentLineIndex(), e.col-1); err != nil {
		return
	}
	e.col--
}

// DeleteCurrentLine removes the line under the cursor and moves up one
// line. The first line of the buffer is never removed.
func (e *Editor) DeleteCurrentLine() {
	e.fit()
	if e.mode != ModeView || e.CurrentLineIndex() == 0 {
		return
	}
	if err := e.buf.Remove(e.CurrentLineIndex()); err != nil {
		return
	}
	if e.row > 0 {
		e.row--
	} else {
		e.scroll--
	}
	e.clampColumn()
}

// AdjustTabWidth changes the tab width by delta, never going below 1.
func (e *Editor) AdjustTabWidth(delta int) {
	e.tabWidth += delta
	if e.tabWidth < 1 {
		e.tabWidth = 1
	}
}

// EnterInsert switches View to Insert.
func (e *Editor) EnterInsert() {
	e.mode = transition(e.mode, EventEnterInsert)
}

// ExitInsert returns to View and re-clamps the cursor.
func (e *Editor) ExitInsert() {
	e.mode = transition(e.mode, EventDone)
	e.fit()
}

// Mode returns the current mode.
func (e *Editor) Mode() Mode { return e.mode }

// Cursor returns the cursor column and viewport row.
func (e *Editor) Cursor() (col, row int) { return e.col, e.row }

// ScrollOffset returns the number of lines above the viewport.
func (e *Editor) ScrollOffset() int { return e.scroll }

// TabWidth returns the current indent width.
func (e *Editor) TabWidth() int { return e.tabWidth }

// Lines returns a copy of the buffer.
func (e *Editor) Lines() []string { return e.buf.Lines() }

// Path returns the bound file path, or "" when unbound.
func (e *Editor) Path() string { return e.path }
