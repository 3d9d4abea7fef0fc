package gioui

import (
	"bytes"
	_ "embed"
	"fmt"

	"gioui.org/unit"
	"github.com/vsariola/tabula/tracker"
	"gopkg.in/yaml.v3"
)

type (
	Preferences struct {
		Window       WindowPreferences
		Tab          TabPreferences
		FollowMargin int
	}

	WindowPreferences struct {
		Width     int
		Height    int
		Maximized bool `yaml:",omitempty"`
	}

	// TabPreferences are the sizes of the tab rows, in dp.
	TabPreferences struct {
		NoteWidth     int
		HeaderWidth   int
		StringSpacing int
		RowPadding    int
		Layout        string
	}
)

//go:embed preferences.yml
var defaultPreferencesYaml []byte

func loadDefaultPreferences() Preferences {
	var preferences Preferences
	dec := yaml.NewDecoder(bytes.NewReader(defaultPreferencesYaml))
	dec.KnownFields(true)
	if err := dec.Decode(&preferences); err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

// MakePreferences returns the default preferences overridden by
// preferences.yml in the user configuration directory. The error tells why
// the user file could not be read; the defaults are returned regardless.
func MakePreferences() (Preferences, error) {
	preferences := loadDefaultPreferences()
	_, err := tracker.ReadCustomConfig("preferences.yml", &preferences)
	preferences.Tab = preferences.Tab.clamped()
	return preferences, err
}

// clamped keeps the sizes usable: notes and strings need at least 1 dp to be
// hit tested.
func (p TabPreferences) clamped() TabPreferences {
	p.NoteWidth = max(p.NoteWidth, 1)
	p.StringSpacing = max(p.StringSpacing, 1)
	p.HeaderWidth = max(p.HeaderWidth, 0)
	p.RowPadding = max(p.RowPadding, 0)
	return p
}

func (p Preferences) WindowSize() (unit.Dp, unit.Dp) {
	return unit.Dp(p.Window.Width), unit.Dp(p.Window.Height)
}

func (p Preferences) LayoutMode() LayoutMode {
	if p.Tab.Layout == "linear" {
		return LinearLayout
	}
	return PageLayout
}
