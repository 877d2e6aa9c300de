package app

import (
	"errors"

	"example.com/blaze/pkg/editor"
)

// runOpenPrompt asks for a file path until an existing file is given and
// loads it. There is no cancel; only read failures abort with an error.
func (r *Runner) runOpenPrompt() error {
	if r.Screen == nil {
		return nil
	}
	errMsg := ""
	for {
		path, ok := r.readLine("Enter a file path: ", errMsg)
		if !ok {
			return nil
		}
		r.Logger.Event("open.prompt.submit", map[string]any{"file": path})
		err := r.Editor.Open(path)
		if errors.Is(err, editor.ErrNotExist) {
			errMsg = "no such file"
			continue
		}
		return err
	}
}
