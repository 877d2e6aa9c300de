package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestParseKeybinding(t *testing.T) {
	kb, err := ParseKeybinding("Ctrl+X")
	require.NoError(t, err)
	assert.True(t, kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl)), "Ctrl+X rune")
	assert.True(t, kb.Matches(tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl)), "KeyCtrlX")
}

func TestParseKeybinding_RuneAndNamed(t *testing.T) {
	kb, err := ParseKeybinding("+")
	require.NoError(t, err)
	assert.True(t, kb.Matches(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModShift)), "'+' with shift held")
	assert.False(t, kb.Matches(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModCtrl)), "'+' must not match Ctrl++")

	esc, err := ParseKeybinding("Esc")
	require.NoError(t, err)
	assert.True(t, esc.Matches(tcell.NewEventKey(tcell.KeyEsc, 0, 0)))
	assert.False(t, esc.Matches(tcell.NewEventKey(tcell.KeyRune, 'e', 0)), "Esc must not match a rune")
}

func TestParseKeybinding_Invalid(t *testing.T) {
	for _, s := range []string{"Ctrl+", "Alt+x", "Ctrl+1", "Nope", ""} {
		_, err := ParseKeybinding(s)
		assert.Error(t, err, "keybinding %q", s)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTabWidth, cfg.TabWidth)
	assert.True(t, cfg.Keymap["quit"].Matches(tcell.NewEventKey(tcell.KeyEsc, 0, 0)), "Esc quits by default")
}

func TestLoadDefault_UsesHomeDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".blaze"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".blaze", "config.yaml"), []byte("tab_width: 3\n"), 0644))

	assert.Equal(t, filepath.Join(home, ".blaze", "config.yaml"), DefaultPath())
	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.TabWidth)
}

func TestLoadConfigRemap(t *testing.T) {
	path := writeConfig(t, "keymap:\n  quit: Ctrl+X\n  save: F2\ntab_width: 8\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Keymap["quit"].Matches(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl)), "quit remapped to Ctrl+X")
	assert.True(t, cfg.Keymap["save"].Matches(tcell.NewEventKey(tcell.KeyF2, 0, 0)), "save remapped to F2")
	assert.True(t, cfg.Keymap["open"].Matches(tcell.NewEventKey(tcell.KeyRune, 'o', 0)), "untouched bindings keep defaults")
	assert.Equal(t, 8, cfg.TabWidth)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown command": "keymap:\n  explode: x\n",
		"bad binding":     "keymap:\n  quit: Meta+Q\n",
		"zero tab width":  "tab_width: 0\n",
		"unknown theme":   "theme: neon\n",
		"bad yaml":        "keymap: [\n",
	}
	for name, body := range cases {
		_, err := Load(writeConfig(t, body))
		assert.Error(t, err, name)
	}
}

func TestLoad_ThemeAndColors(t *testing.T) {
	path := writeConfig(t, "theme: terminal\ncolors:\n  status_bg: \"#102030\"\n  filler_fg: bogus\nlog:\n  file: /tmp/blaze.log\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, tcell.NewHexColor(0x102030), cfg.Theme.StatusBackground)
	assert.Equal(t, TerminalTheme().FillerForeground, cfg.Theme.FillerForeground, "unparsable color keeps the theme value")
	assert.Equal(t, "/tmp/blaze.log", cfg.LogFile)
}
