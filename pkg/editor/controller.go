package editor

// modeHandler dispatches an Input for one Mode.
type modeHandler interface {
	handle(e *Editor, in Input) Effect
}

type viewMode struct{}
type insertMode struct{}
type readOnlyMode struct{}

var handlers = [...]modeHandler{
	ModeView:     viewMode{},
	ModeInsert:   insertMode{},
	ModeReadOnly: readOnlyMode{},
}

// Handle applies in according to the current mode and reports any effect
// the host must carry out (prompting for a path, saving, quitting).
func (e *Editor) Handle(in Input) Effect {
	e.fit()
	eff := handlers[e.mode].handle(e, in)
	if e.Logger != nil {
		fields := map[string]any{
			"mode":   e.mode.String(),
			"key":    in.Key.String(),
			"cmd":    in.Cmd.String(),
			"col":    e.col,
			"line":   e.CurrentLineIndex(),
			"scroll": e.scroll,
			"lines":  e.buf.Len(),
		}
		if in.Key == KeyRune {
			fields["rune"] = string(in.Rune)
		}
		e.Logger.Event("action", fields)
	}
	return eff
}

func moveByKey(e *Editor, k Key) bool {
	switch k {
	case KeyUp:
		e.MoveUp()
	case KeyDown:
		e.MoveDown()
	case KeyLeft:
		e.MoveLeft()
	case KeyRight:
		e.MoveRight()
	default:
		return false
	}
	return true
}

func (viewMode) handle(e *Editor, in Input) Effect {
	switch in.Cmd {
	case CmdInsert:
		e.EnterInsert()
	case CmdDeleteLine:
		e.DeleteCurrentLine()
	case CmdTabWider:
		e.AdjustTabWidth(1)
	case CmdTabNarrower:
		e.AdjustTabWidth(-1)
	case CmdClose:
		e.Close()
	case CmdOpen:
		return EffectOpen
	case CmdSave:
		return EffectSave
	case CmdQuit:
		return EffectQuit
	default:
		moveByKey(e, in.Key)
	}
	return EffectNone
}

func (readOnlyMode) handle(e *Editor, in Input) Effect {
	switch in.Cmd {
	case CmdClose:
		e.Close()
	case CmdQuit:
		return EffectQuit
	case CmdNone:
		moveByKey(e, in.Key)
	}
	return EffectNone
}

func (insertMode) handle(e *Editor, in Input) Effect {
	switch {
	case in.Cmd == CmdDone:
		e.ExitInsert()
		return EffectNone
	case in.Cmd == CmdQuit && in.Key != KeyRune:
		return EffectQuit
	}
	switch in.Key {
	case KeyBackspace:
		e.Backspace()
	case KeyTab:
		e.Indent()
	case KeyEnter:
		e.SplitLine()
	case KeyLeft:
		e.LineStart()
	case KeyRight:
		e.LineEnd()
	case KeyDown:
		e.LineMiddle()
	case KeyRune:
		e.InsertChar(in.Rune)
	}
	return EffectNone
}
