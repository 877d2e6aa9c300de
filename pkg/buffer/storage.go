package buffer

// TextStorage defines the line storage operations used by the editor.
// Lines are addressed by index and columns are byte offsets within a line.
// Implementations must never hold zero lines.
type TextStorage interface {
	Len() int
	Line(idx int) string
	LineLen(idx int) int
	Lines() []string
	Slice(start, end int) []string
	Reset(lines ...string)
	Insert(line, col int, s string) error
	DeleteAt(line, col int) error
	Split(line, col int) error
	Remove(line int) error
}

var _ TextStorage = (*Lines)(nil)
