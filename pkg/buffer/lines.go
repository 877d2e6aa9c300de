package buffer

import "errors"

var (
	// ErrLineRange is returned when a line index is outside the buffer.
	ErrLineRange = errors.New("line out of range")
	// ErrColumnRange is returned when a column is outside its line.
	ErrColumnRange = errors.New("column out of range")
)

// Lines is an ordered sequence of text lines without trailing newlines.
// It always holds at least one line; emptying it leaves a single empty line.
type Lines struct {
	lines []string
}

// New creates a Lines buffer holding a copy of the provided lines.
func New(lines ...string) *Lines {
	b := &Lines{}
	b.Reset(lines...)
	return b
}

// Reset replaces the contents with a copy of lines.
func (b *Lines) Reset(lines ...string) {
	b.lines = append(make([]string, 0, len(lines)+1), lines...)
	b.ensureLine()
}

func (b *Lines) ensureLine() {
	if len(b.lines) == 0 {
		b.lines = append(b.lines, "")
	}
}

// Len returns the number of lines.
func (b *Lines) Len() int { return len(b.lines) }

// Line returns line idx, or "" when idx is out of range.
func (b *Lines) Line(idx int) string {
	if idx < 0 || idx >= len(b.lines) {
		return ""
	}
	return b.lines[idx]
}

// LineLen returns the byte length of line idx.
func (b *Lines) LineLen(idx int) int { return len(b.Line(idx)) }

// Lines returns a copy of all lines.
func (b *Lines) Lines() []string {
	return append([]string(nil), b.lines...)
}

// Slice returns a copy of lines in [start,end), clipped to the buffer.
func (b *Lines) Slice(start, end int) []string {
	if start < 0 {
		start = 0
	}
	if end > len(b.lines) {
		end = len(b.lines)
	}
	if start >= end {
		return []string{}
	}
	return append([]string(nil), b.lines[start:end]...)
}

func (b *Lines) check(line, col int) error {
	if line < 0 || line >= len(b.lines) {
		return ErrLineRange
	}
	if col < 0 || col > len(b.lines[line]) {
		return ErrColumnRange
	}
	return nil
}

// Insert inserts s into line at byte column col.
func (b *Lines) Insert(line, col int, s string) error {
	if err := b.check(line, col); err != nil {
		return err
	}
	l := b.lines[line]
	b.lines[line] = l[:col] + s + l[col:]
	return nil
}

// DeleteAt removes the byte at column col of line.
func (b *Lines) DeleteAt(line, col int) error {
	if err := b.check(line, col); err != nil {
		return err
	}
	l := b.lines[line]
	if col >= len(l) {
		return ErrColumnRange
	}
	b.lines[line] = l[:col] + l[col+1:]
	return nil
}

// Split breaks line at col: the left part stays, the right part becomes a
// new line right after it.
func (b *Lines) Split(line, col int) error {
	if err := b.check(line, col); err != nil {
		return err
	}
	l := b.lines[line]
	b.lines = append(b.lines, "")
	copy(b.lines[line+2:], b.lines[line+1:])
	b.lines[line] = l[:col]
	b.lines[line+1] = l[col:]
	return nil
}

// Remove deletes line. Removing the only line leaves one empty line.
func (b *Lines) Remove(line int) error {
	if line < 0 || line >= len(b.lines) {
		return ErrLineRange
	}
	b.lines = append(b.lines[:line], b.lines[line+1:]...)
	b.ensureLine()
	return nil
}
