package editor

// Key identifies a non-command key the core reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyBackspace
	KeyTab
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "unknown"
}

// Command is a named, remappable editor command.
type Command int

const (
	CmdNone Command = iota
	CmdInsert
	CmdDone
	CmdDeleteLine
	CmdTabWider
	CmdTabNarrower
	CmdOpen
	CmdClose
	CmdSave
	CmdQuit
)

var commandNames = map[Command]string{
	CmdNone:        "",
	CmdInsert:      "insert",
	CmdDone:        "done",
	CmdDeleteLine:  "delete-line",
	CmdTabWider:    "tab-wider",
	CmdTabNarrower: "tab-narrower",
	CmdOpen:        "open",
	CmdClose:       "close",
	CmdSave:        "save",
	CmdQuit:        "quit",
}

func (c Command) String() string { return commandNames[c] }

// CommandByName resolves a keymap name like "delete-line".
func CommandByName(name string) (Command, bool) {
	for c, n := range commandNames {
		if c != CmdNone && n == name {
			return c, true
		}
	}
	return CmdNone, false
}

// Input is one key event after translation by the terminal adapter. Cmd is
// set when the key matches a keymap binding; Key and Rune always describe
// the raw key so Insert mode can type characters bound to commands.
type Input struct {
	Key  Key
	Rune rune
	Cmd  Command
}

// Effect asks the host to perform an interactive step the core cannot.
type Effect int

const (
	EffectNone Effect = iota
	EffectOpen
	EffectSave
	EffectQuit
)
