package app

import (
	"example.com/blaze/pkg/config"
	"example.com/blaze/pkg/editor"
	"example.com/blaze/pkg/fileio"
	"example.com/blaze/pkg/logs"
	"github.com/gdamore/tcell/v2"
)

// Fallback size used before a screen is attached.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Runner owns the terminal lifecycle and a minimal event loop. It is the
// terminal adapter for the editor core: it reports the viewport size,
// translates key events and draws frames.
type Runner struct {
	Screen tcell.Screen
	Editor *editor.Editor
	Files  fileio.Files
	Keymap map[string]config.Keybinding
	Theme  config.Theme
	Logger *logs.Logger
}

// New creates a Runner with an empty editor configured from cfg.
func New(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	r := &Runner{
		Files:  fileio.Disk{},
		Keymap: cfg.Keymap,
		Theme:  cfg.Theme,
	}
	r.Editor = editor.New(r, r.Files)
	r.Editor.SetDefaultTabWidth(cfg.TabWidth)
	return r
}

// SetLogger attaches l to the runner and its editor.
func (r *Runner) SetLogger(l *logs.Logger) {
	r.Logger = l
	r.Editor.Logger = l
}

// ViewportSize reports the text area: the whole screen minus the status line.
func (r *Runner) ViewportSize() (width, height int) {
	if r.Screen == nil {
		return fallbackWidth, fallbackHeight - 1
	}
	width, height = r.Screen.Size()
	return width, textHeight(height)
}

// LoadFile loads path into the editor. A missing path starts an empty,
// unbound buffer.
func (r *Runner) LoadFile(path string) error {
	return r.Editor.Load(path)
}

// InitScreen initializes a tcell screen if one is not already set.
func (r *Runner) InitScreen() error {
	if r.Screen != nil {
		return nil
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.SetStyle(r.Theme.Text())
	s.Clear()
	r.Screen = s
	return nil
}

// Fini finalizes the screen if initialized.
func (r *Runner) Fini() {
	if r.Screen != nil {
		r.Screen.Fini()
		r.Screen = nil
	}
	r.Logger.Close()
}

func (r *Runner) waitEvent() tcell.Event {
	return r.Screen.PollEvent()
}

// Run starts the event loop. It will initialize the screen if needed and
// return when the user requests quit. File I/O failures end the loop with
// an error.
func (r *Runner) Run() error {
	if r.Screen == nil {
		if err := r.InitScreen(); err != nil {
			return err
		}
		defer r.Fini()
	}

	r.Logger.Event("run.start", map[string]any{"file": r.Editor.Path()})
	defer func() {
		r.Logger.Event("run.end", map[string]any{"file": r.Editor.Path()})
	}()

	r.draw()
	for {
		ev := r.waitEvent()
		switch ev := ev.(type) {
		case nil:
			// screen finalized underneath us
			return nil
		case *tcell.EventKey:
			r.Logger.Event("key", map[string]any{
				"key":       int(ev.Key()),
				"rune":      string(ev.Rune()),
				"modifiers": int(ev.Modifiers()),
			})
			quit, err := r.handleKeyEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				r.Logger.Event("action", map[string]any{"name": "quit"})
				return nil
			}
			r.draw()
		case *tcell.EventResize:
			r.Screen.Sync()
			r.draw()
		}
	}
}
