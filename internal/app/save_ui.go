package app

// runSave overwrites the bound file, or asks for a directory and a file
// name when there is none. Blank answers abandon the save.
func (r *Runner) runSave() error {
	if r.Editor.CanSaveInPlace() {
		return r.Editor.Save()
	}
	if r.Screen == nil {
		return nil
	}
	dir, ok := r.readLine("Enter a path: ", "")
	if !ok {
		return nil
	}
	name, ok := r.readLine("Enter a name: ", "")
	if !ok {
		return nil
	}
	_, err := r.Editor.SaveAs(dir, name)
	return err
}
