package app

import (
	"example.com/blaze/pkg/config"
	"example.com/blaze/pkg/editor"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes text from column x on row y and returns the next column.
// Control characters take one blank cell so screen columns stay aligned with
// buffer columns; wide runes take two. Drawing stops at the screen edge.
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	width, _ := s.Size()
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if ch < 0x20 || ch == 0x7f {
			ch, w = ' ', 1
		}
		if w == 0 {
			continue
		}
		if x+w > width {
			break
		}
		s.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}

// fillRow paints row y with spaces in style.
func fillRow(s tcell.Screen, y int, style tcell.Style) {
	width, _ := s.Size()
	for x := 0; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// drawFrame renders the visible rows, filler markers and the status line.
// A single-row screen shows text only.
func drawFrame(s tcell.Screen, f editor.Frame, theme config.Theme) {
	width, height := s.Size()
	s.SetStyle(theme.Text())
	s.Clear()
	textRows := textHeight(height)
	for y, row := range f.Rows {
		if y >= textRows {
			break
		}
		if row.Filler {
			drawText(s, 0, y, row.Text, theme.Filler())
			continue
		}
		drawText(s, 0, y, row.Text, theme.Text())
	}
	if textRows < height {
		status := runewidth.Truncate(f.Status.String(), width, "")
		fillRow(s, height-1, theme.Status())
		drawText(s, 0, height-1, status, theme.Status())
	}
	s.ShowCursor(f.CursorX, f.CursorY)
}

// textHeight is the number of screen rows left for text once the status
// line is reserved. The status line is dropped before the last text row.
func textHeight(screenHeight int) int {
	if screenHeight < 2 {
		return screenHeight
	}
	return screenHeight - 1
}

// drawPrompt draws prompt on the top row and errMsg right-aligned after it.
func drawPrompt(s tcell.Screen, style tcell.Style, prompt, errMsg string) {
	width, _ := s.Size()
	fillRow(s, 0, style)
	end := drawText(s, 0, 0, prompt, style)
	if errMsg != "" {
		start := width - runewidth.StringWidth(errMsg)
		if start < end+1 {
			start = end + 1
		}
		drawText(s, start, 0, errMsg, style.Foreground(tcell.ColorYellow))
	}
	s.ShowCursor(end, 0)
}

// draw renders the editor's current frame.
func (r *Runner) draw() {
	if r.Screen == nil {
		return
	}
	drawFrame(r.Screen, r.Editor.Frame(), r.Theme)
	r.Screen.Show()
}
