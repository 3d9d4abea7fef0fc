package tracker

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"

	"github.com/vsariola/tabula"
	"gopkg.in/yaml.v3"
)

type (
	// KeyEvent is a key press delivered by the presentation layer. Name uses
	// the key names of gioui.org/io/key, e.g. "A", "Space", "→".
	KeyEvent struct {
		Name     string
		Shortcut bool
		Shift    bool
	}

	// KeyBinding binds a key with modifiers to a named action.
	KeyBinding struct {
		Key             string
		Shortcut, Shift bool
		Action          string
	}

	// KeyBindings maps key presses to action names.
	KeyBindings map[KeyEvent]string
)

//go:embed keybindings.yml
var defaultKeyBindingsYaml []byte

// DefaultKeyBindings returns the built-in key bindings, without the user
// overrides.
func DefaultKeyBindings() KeyBindings {
	bindings, err := ParseKeyBindings(defaultKeyBindingsYaml)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal keybindings: %w", err))
	}
	return MakeKeyBindings(bindings)
}

// LoadKeyBindings returns the built-in key bindings with the overrides from
// keybindings.yml in the user configuration directory applied. A user
// binding with an empty action unbinds the key.
func LoadKeyBindings() (KeyBindings, error) {
	bindings, err := ParseKeyBindings(defaultKeyBindingsYaml)
	if err != nil {
		return nil, err
	}
	var custom []KeyBinding
	if _, err := ReadCustomConfig("keybindings.yml", &custom); err != nil {
		return MakeKeyBindings(bindings), err
	}
	return MakeKeyBindings(append(bindings, custom...)), nil
}

func ParseKeyBindings(data []byte) ([]KeyBinding, error) {
	var ret []KeyBinding
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// MakeKeyBindings builds the binding map; later bindings override earlier
// ones.
func MakeKeyBindings(list []KeyBinding) KeyBindings {
	ret := KeyBindings{}
	for _, kb := range list {
		e := KeyEvent{Name: kb.Key, Shortcut: kb.Shortcut, Shift: kb.Shift}
		if kb.Action == "" {
			delete(ret, e)
			continue
		}
		ret[e] = kb.Action
	}
	return ret
}

// Hint returns a human readable description of the first key bound to action,
// e.g. "Ctrl+C", or "" if the action is unbound.
func (k KeyBindings) Hint(action string, shortcutName string) string {
	best := ""
	for e, a := range k {
		if a != action {
			continue
		}
		text := e.Name
		if e.Shift {
			text = "Shift+" + text
		}
		if e.Shortcut {
			text = shortcutName + "+" + text
		}
		if best == "" || len(text) < len(best) || (len(text) == len(best) && text < best) {
			best = text
		}
	}
	return best
}

// HandleKey runs the action bound to e. Nothing happens while a modal dialog
// is open; while playing only the play toggle and the clipboard actions are
// allowed. Returns true if the key was bound to an action that was allowed.
func (m *Model) HandleKey(e KeyEvent) bool {
	if m.modalOpen {
		return false
	}
	action, ok := m.bindings[e]
	if !ok {
		return false
	}
	if m.transport.state != Idle {
		switch action {
		case "TogglePlay", "Copy", "Cut", "Paste":
		default:
			return false
		}
	}
	switch action {
	case "Fret0", "Fret1", "Fret2", "Fret3", "Fret4", "Fret5", "Fret6", "Fret7", "Fret8", "Fret9":
		fret, _ := strconv.Atoi(action[len("Fret"):])
		m.Edit().SetFret(fret)
	case "Rest":
		m.Edit().SetFret(tabula.Rest)
	case "DeleteNote":
		m.Edit().DeleteNote()
	case "Whole":
		m.Edit().SetDuration(tabula.Whole)
	case "Half":
		m.Edit().SetDuration(tabula.Half)
	case "Quarter":
		m.Edit().SetDuration(tabula.Quarter)
	case "Eighth":
		m.Edit().SetDuration(tabula.Eighth)
	case "Sixteenth":
		m.Edit().SetDuration(tabula.Sixteenth)
	case "InsertNote":
		m.Edit().InsertNote()
	case "ToggleDotted":
		m.Edit().ToggleDotted()
	case "TogglePlay":
		m.Transport().Toggle().Do()
	case "Next":
		m.Navigate(Next)
	case "Prev":
		m.Navigate(Prev)
	case "StringUp":
		m.Navigate(StringUp)
	case "StringDown":
		m.Navigate(StringDown)
	case "Copy":
		m.Edit().Copy()
	case "Cut":
		m.Edit().Cut()
	case "Paste":
		m.Edit().Paste()
	case "Undo":
		m.Edit().Undo().Do()
	case "Redo":
		m.Edit().Redo().Do()
	default:
		m.log.Debug("unknown key action", "action", action)
		return false
	}
	return true
}
