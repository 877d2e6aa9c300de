package app

import (
	"maps"
	"slices"

	"example.com/blaze/pkg/editor"
	"github.com/gdamore/tcell/v2"
)

var editorKeys = map[tcell.Key]editor.Key{
	tcell.KeyUp:         editor.KeyUp,
	tcell.KeyDown:       editor.KeyDown,
	tcell.KeyLeft:       editor.KeyLeft,
	tcell.KeyRight:      editor.KeyRight,
	tcell.KeyEnter:      editor.KeyEnter,
	tcell.KeyTab:        editor.KeyTab,
	tcell.KeyBackspace:  editor.KeyBackspace,
	tcell.KeyBackspace2: editor.KeyBackspace,
}

// translateKey converts a tcell event into an editor Input, resolving
// keymap commands alongside the raw key.
func (r *Runner) translateKey(ev *tcell.EventKey) editor.Input {
	var in editor.Input
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
			in.Key = editor.KeyRune
			in.Rune = ev.Rune()
		}
	} else if k, ok := editorKeys[ev.Key()]; ok {
		in.Key = k
	}
	// sorted so overlapping bindings resolve the same way every time
	for _, name := range slices.Sorted(maps.Keys(r.Keymap)) {
		if !r.Keymap[name].Matches(ev) {
			continue
		}
		if cmd, ok := editor.CommandByName(name); ok {
			in.Cmd = cmd
			break
		}
	}
	return in
}

// handleKeyEvent processes a key event. It returns true if the event signals
// the runner should quit.
func (r *Runner) handleKeyEvent(ev *tcell.EventKey) (bool, error) {
	switch r.Editor.Handle(r.translateKey(ev)) {
	case editor.EffectQuit:
		return true, nil
	case editor.EffectOpen:
		return false, r.runOpenPrompt()
	case editor.EffectSave:
		return false, r.runSave()
	}
	return false, nil
}
