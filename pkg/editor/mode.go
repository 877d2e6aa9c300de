package editor

// Mode represents the current editor mode.
type Mode int

const (
	// ModeView navigates and runs commands.
	ModeView Mode = iota
	// ModeInsert edits text at the cursor.
	ModeInsert
	// ModeReadOnly navigates a file that cannot be written.
	ModeReadOnly
)

func (m Mode) String() string {
	switch m {
	case ModeView:
		return "VIEW"
	case ModeInsert:
		return "INSERT"
	case ModeReadOnly:
		return "READONLY"
	}
	return "UNKNOWN"
}

// Event is a mode transition trigger.
type Event int

const (
	EventEnterInsert Event = iota
	EventDone
	EventClose
	EventLoadWritable
	EventLoadReadOnly
)

// transition returns the mode reached from m on ev. Triggers that are not
// legal in m leave it unchanged.
func transition(m Mode, ev Event) Mode {
	switch ev {
	case EventEnterInsert:
		if m == ModeView {
			return ModeInsert
		}
	case EventDone:
		if m == ModeInsert {
			return ModeView
		}
	case EventClose, EventLoadWritable:
		return ModeView
	case EventLoadReadOnly:
		return ModeReadOnly
	}
	return m
}
