package app

import "github.com/gdamore/tcell/v2"

// readLine shows label on the top row and collects a line of input until
// Enter. errMsg, when set, is shown right-aligned until the user types.
// ok is false if the screen went away while waiting.
func (r *Runner) readLine(label, errMsg string) (input string, ok bool) {
	s := r.Screen
	for {
		r.draw()
		drawPrompt(s, r.Theme.Prompt(), label+input, errMsg)
		s.Show()

		switch ev := r.waitEvent().(type) {
		case nil:
			return "", false
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEnter:
				return input, true
			case ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case ev.Key() == tcell.KeyRune && ev.Modifiers()&^tcell.ModShift == 0:
				input += string(ev.Rune())
				errMsg = ""
			}
		}
	}
}
