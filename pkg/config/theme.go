package config

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme represents configurable colors for text, filler rows, the status
// line and prompts.
type Theme struct {
	TextBackground tcell.Color
	TextForeground tcell.Color

	// Rows past the end of the buffer
	FillerForeground tcell.Color

	StatusBackground tcell.Color
	StatusForeground tcell.Color

	PromptBackground tcell.Color
	PromptForeground tcell.Color
}

// DefaultTheme returns the builtin dark theme.
func DefaultTheme() Theme {
	return Theme{
		TextBackground: tcell.ColorBlack,
		TextForeground: tcell.ColorWhite,

		FillerForeground: tcell.ColorOlive,

		StatusBackground: tcell.ColorMaroon,
		StatusForeground: tcell.ColorWhite,

		PromptBackground: tcell.ColorMaroon,
		PromptForeground: tcell.ColorWhite,
	}
}

// TerminalTheme leverages terminal-provided defaults and ANSI palette colors
// so the editor follows the user's terminal theme.
func TerminalTheme() Theme {
	return Theme{
		TextBackground: tcell.ColorDefault,
		TextForeground: tcell.ColorDefault,

		FillerForeground: tcell.ColorYellow,

		StatusBackground: tcell.ColorGray,
		StatusForeground: tcell.ColorDefault,

		PromptBackground: tcell.ColorGray,
		PromptForeground: tcell.ColorDefault,
	}
}

// BuiltinThemes exposes the presets by name.
var BuiltinThemes = map[string]Theme{
	"default":  DefaultTheme(),
	"terminal": TerminalTheme(),
}

// WithOverrides returns a copy of t with colors replaced from a map keyed by
// text_bg, text_fg, filler_fg, status_bg, status_fg, prompt_bg, prompt_fg.
// Unknown keys and unparsable colors are ignored.
func (t Theme) WithOverrides(colors map[string]string) Theme {
	slots := map[string]*tcell.Color{
		"text_bg":   &t.TextBackground,
		"text_fg":   &t.TextForeground,
		"filler_fg": &t.FillerForeground,
		"status_bg": &t.StatusBackground,
		"status_fg": &t.StatusForeground,
		"prompt_bg": &t.PromptBackground,
		"prompt_fg": &t.PromptForeground,
	}
	for name, v := range colors {
		if slot, ok := slots[strings.ToLower(name)]; ok {
			*slot = ParseColor(v, *slot)
		}
	}
	return t
}

// Text is the style for buffer lines.
func (t Theme) Text() tcell.Style {
	return tcell.StyleDefault.Foreground(t.TextForeground).Background(t.TextBackground)
}

// Filler is the style for rows past the end of the buffer.
func (t Theme) Filler() tcell.Style {
	return tcell.StyleDefault.Foreground(t.FillerForeground).Background(t.TextBackground)
}

// Status is the style for the status line.
func (t Theme) Status() tcell.Style {
	return tcell.StyleDefault.Foreground(t.StatusForeground).Background(t.StatusBackground)
}

// Prompt is the style for input prompts.
func (t Theme) Prompt() tcell.Style {
	return tcell.StyleDefault.Foreground(t.PromptForeground).Background(t.PromptBackground)
}

// ParseColor returns a tcell.Color from a name or hex like "#aabbcc".
// If parsing fails, it returns the provided fallback.
func ParseColor(s string, fallback tcell.Color) tcell.Color {
	if s == "" {
		return fallback
	}
	// tcell.GetColor supports W3C names or #RRGGBB (case-insensitive)
	c := tcell.GetColor(strings.ToLower(s))
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
