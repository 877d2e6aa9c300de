package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// Config holds user configuration values.
type Config struct {
	Keymap   map[string]Keybinding
	TabWidth int
	Theme    Theme
	LogFile  string
}

// fileConfig is the on-disk shape of config.yaml.
type fileConfig struct {
	Keymap   map[string]string `yaml:"keymap"`
	TabWidth *int              `yaml:"tab_width"`
	Theme    string            `yaml:"theme"`
	Colors   map[string]string `yaml:"colors"`
	Log      struct {
		File string `yaml:"file"`
	} `yaml:"log"`
}

// DefaultTabWidth matches the editor's builtin indent width.
const DefaultTabWidth = 4

// Default returns a Config with default key mappings.
func Default() *Config {
	return &Config{Keymap: DefaultKeymap(), TabWidth: DefaultTabWidth, Theme: DefaultTheme()}
}

// DefaultKeymap provides builtin command bindings.
func DefaultKeymap() map[string]Keybinding {
	return map[string]Keybinding{
		"insert":       mustParse("i"),
		"done":         mustParse("Home"),
		"delete-line":  mustParse("r"),
		"tab-wider":    mustParse("+"),
		"tab-narrower": mustParse("-"),
		"open":         mustParse("o"),
		"close":        mustParse("c"),
		"save":         mustParse("s"),
		"quit":         mustParse("Esc"),
	}
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for cmd, binding := range fc.Keymap {
		if _, ok := cfg.Keymap[cmd]; !ok {
			return nil, errors.New("unknown command in keymap: " + cmd)
		}
		kb, err := ParseKeybinding(binding)
		if err != nil {
			return nil, err
		}
		cfg.Keymap[cmd] = kb
	}
	if fc.TabWidth != nil {
		if *fc.TabWidth < 1 {
			return nil, fmt.Errorf("tab_width must be at least 1, got %d", *fc.TabWidth)
		}
		cfg.TabWidth = *fc.TabWidth
	}
	if fc.Theme != "" {
		th, ok := BuiltinThemes[fc.Theme]
		if !ok {
			return nil, errors.New("unknown theme: " + fc.Theme)
		}
		cfg.Theme = th
	}
	cfg.Theme = cfg.Theme.WithOverrides(fc.Colors)
	cfg.LogFile = fc.Log.File
	return cfg, nil
}

// DefaultPath returns ~/.blaze/config.yaml, or "" when there is no home dir.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blaze", "config.yaml")
}

// LoadDefault attempts to read ~/.blaze/config.yaml.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

var namedKeys = map[string]tcell.Key{
	"esc":       tcell.KeyEsc,
	"escape":    tcell.KeyEsc,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,
	"insert":    tcell.KeyInsert,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
	"f5":        tcell.KeyF5,
	"f6":        tcell.KeyF6,
	"f7":        tcell.KeyF7,
	"f8":        tcell.KeyF8,
	"f9":        tcell.KeyF9,
	"f10":       tcell.KeyF10,
	"f11":       tcell.KeyF11,
	"f12":       tcell.KeyF12,
}

// ParseKeybinding converts a textual key description into a Keybinding.
// Accepted forms: a single printable character ("o", "+"), a named key
// ("Esc", "Home", "F2") or Ctrl+<letter> ("Ctrl+S").
func ParseKeybinding(s string) (Keybinding, error) {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if r < 0x20 || r == 0x7f {
			return Keybinding{}, errors.New("invalid key in keybinding: " + s)
		}
		return Keybinding{Key: tcell.KeyRune, Rune: r}, nil
	}
	if k, ok := namedKeys[strings.ToLower(s)]; ok {
		return Keybinding{Key: k}, nil
	}
	parts := strings.Split(s, "+")
	if len(parts) != 2 {
		return Keybinding{}, errors.New("invalid keybinding: " + s)
	}
	if !strings.EqualFold(parts[0], "ctrl") {
		return Keybinding{}, errors.New("invalid modifier in keybinding: " + s)
	}
	r := []rune(strings.ToLower(parts[1]))
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return Keybinding{}, errors.New("invalid key in keybinding: " + s)
	}
	return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: tcell.ModCtrl}, nil
}

func mustParse(s string) Keybinding {
	kb, err := ParseKeybinding(s)
	if err != nil {
		panic(err)
	}
	return kb
}

var ctrlMap = map[rune]tcell.Key{
	'a': tcell.KeyCtrlA,
	'b': tcell.KeyCtrlB,
	'c': tcell.KeyCtrlC,
	'd': tcell.KeyCtrlD,
	'e': tcell.KeyCtrlE,
	'f': tcell.KeyCtrlF,
	'g': tcell.KeyCtrlG,
	'h': tcell.KeyCtrlH,
	'i': tcell.KeyCtrlI,
	'j': tcell.KeyCtrlJ,
	'k': tcell.KeyCtrlK,
	'l': tcell.KeyCtrlL,
	'm': tcell.KeyCtrlM,
	'n': tcell.KeyCtrlN,
	'o': tcell.KeyCtrlO,
	'p': tcell.KeyCtrlP,
	'q': tcell.KeyCtrlQ,
	'r': tcell.KeyCtrlR,
	's': tcell.KeyCtrlS,
	't': tcell.KeyCtrlT,
	'u': tcell.KeyCtrlU,
	'v': tcell.KeyCtrlV,
	'w': tcell.KeyCtrlW,
	'x': tcell.KeyCtrlX,
	'y': tcell.KeyCtrlY,
	'z': tcell.KeyCtrlZ,
}

// Matches returns true if the binding matches the provided event.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	if k.Key == tcell.KeyRune && k.Mod == 0 {
		// Shifted punctuation such as '+' may arrive with ModShift set.
		return ev.Key() == tcell.KeyRune && ev.Rune() == k.Rune && ev.Modifiers()&^tcell.ModShift == 0
	}
	if k.Key == ev.Key() && k.Rune == ev.Rune() && k.Mod == ev.Modifiers() {
		return true
	}
	if k.Key != tcell.KeyRune && k.Key == ev.Key() && k.Mod == ev.Modifiers() {
		return true
	}
	if k.Key == tcell.KeyRune && k.Mod == tcell.ModCtrl {
		if ctrlKey, ok := ctrlMap[k.Rune]; ok && ev.Key() == ctrlKey {
			return true
		}
	}
	return false
}
