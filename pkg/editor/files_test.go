package editor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), perm))
	return path
}

func TestLoad_MissingPath(t *testing.T) {
	e, _ := newEditor(10, "leftover")
	require.NoError(t, e.Load(filepath.Join(t.TempDir(), "nope.txt")))

	assert.Equal(t, []string{""}, e.Lines())
	assert.Equal(t, "", e.Path())
	assert.Equal(t, ModeView, e.Mode())
}

func TestLoad_ExistingFile(t *testing.T) {
	path := writeFile(t, "a.txt", "one\ntwo\n", 0644)
	e, _ := newEditor(10)
	require.NoError(t, e.Load(path))

	assert.Equal(t, []string{"one", "two"}, e.Lines())
	assert.Equal(t, path, e.Path())
	assert.Equal(t, "a.txt", e.FileName())
	assert.Equal(t, ModeView, e.Mode())
}

func TestOpen_ReadOnlyFile(t *testing.T) {
	path := writeFile(t, "ro.txt", "locked\n", 0444)
	e, _ := newEditor(10)
	require.NoError(t, e.Open(path))
	assert.Equal(t, ModeReadOnly, e.Mode())
	assert.Equal(t, "[Position: 0, 0]   [Tab: 4]   [Mode: READONLY]   [File: ro.txt]", e.Status().String())
}

func TestOpen_EmptyFileSynthesizesLine(t *testing.T) {
	path := writeFile(t, "empty.txt", "", 0644)
	e, _ := newEditor(10)
	require.NoError(t, e.Open(path))
	assert.Equal(t, []string{""}, e.Lines())
}

func TestOpen_MissingFile(t *testing.T) {
	e, _ := newEditor(10, "keep")
	err := e.Open(filepath.Join(t.TempDir(), "nope.txt"))
	assert.True(t, errors.Is(err, ErrNotExist))
	assert.Equal(t, []string{"keep"}, e.Lines(), "failed open leaves the buffer alone")
}

func TestOpen_ResetsCursorAndTabWidth(t *testing.T) {
	path := writeFile(t, "a.txt", "x\ny\nz\n", 0644)
	e, _ := newEditor(2, "1", "2", "3", "4")
	e.scroll, e.row, e.col = 2, 1, 1
	e.AdjustTabWidth(3)
	require.NoError(t, e.Open(path))

	col, row := e.Cursor()
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, e.ScrollOffset())
	assert.Equal(t, DefaultTabWidth, e.TabWidth())
}

func TestSave_RoundTrip(t *testing.T) {
	body := "first\n\n  indented\nlast\n"
	path := writeFile(t, "rt.txt", body, 0644)
	e, _ := newEditor(10)
	require.NoError(t, e.Open(path))
	require.True(t, e.CanSaveInPlace())
	require.NoError(t, e.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, string(data))
}

func TestSave_Unbound(t *testing.T) {
	e, _ := newEditor(10, "x")
	assert.False(t, e.CanSaveInPlace())
	assert.ErrorIs(t, e.Save(), ErrUnbound)
}

func TestSaveAs_CreatesDirectoryAndBinds(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "new", "dir")
	e, _ := newEditor(10, "hello", "world")
	saved, err := e.SaveAs(dir, "out.txt")
	require.NoError(t, err)
	require.True(t, saved)

	path := filepath.Join(dir, "out.txt")
	assert.Equal(t, path, e.Path())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", string(data))
	assert.True(t, e.CanSaveInPlace())
}

func TestSaveAs_BlankInputAbandons(t *testing.T) {
	dir := t.TempDir()
	e, _ := newEditor(10, "x")
	for _, in := range [][2]string{{"", "a.txt"}, {dir, "  "}, {" \t", "b.txt"}} {
		saved, err := e.SaveAs(in[0], in[1])
		require.NoError(t, err)
		assert.False(t, saved)
	}
	assert.Equal(t, "", e.Path())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClose_ResetsEverything(t *testing.T) {
	path := writeFile(t, "a.txt", "a\nb\nc\n", 0644)
	e, _ := newEditor(2)
	e.SetDefaultTabWidth(2)
	require.NoError(t, e.Open(path))
	e.MoveDown()
	e.MoveDown()
	e.AdjustTabWidth(5)
	e.Close()

	assert.Equal(t, []string{""}, e.Lines())
	assert.Equal(t, "", e.Path())
	assert.Equal(t, ModeView, e.Mode())
	assert.Equal(t, 2, e.TabWidth())
	assert.Equal(t, 0, e.ScrollOffset())
	col, row := e.Cursor()
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
}
