package gioui

import (
	"gioui.org/io/key"
	"github.com/vsariola/tabula/tracker"
)

// translateKey converts a gio key event to the editor's key event. Key
// releases and modifiers other than shortcut and shift are not used; ok is
// false for them.
func translateKey(e key.Event) (ret tracker.KeyEvent, ok bool) {
	if e.State != key.Press {
		return tracker.KeyEvent{}, false
	}
	if e.Modifiers.Contain(key.ModAlt) || e.Modifiers.Contain(key.ModSuper) {
		return tracker.KeyEvent{}, false
	}
	// on macOS, ModShortcut is ModCommand; a ctrl without it is ignored
	if e.Modifiers.Contain(key.ModCtrl) && key.ModShortcut != key.ModCtrl {
		return tracker.KeyEvent{}, false
	}
	return tracker.KeyEvent{
		Name:     string(e.Name),
		Shortcut: e.Modifiers.Contain(key.ModShortcut),
		Shift:    e.Modifiers.Contain(key.ModShift),
	}, true
}

// shortcutName is the name shown in hints for the shortcut modifier.
func shortcutName() string {
	if key.ModShortcut == key.ModCommand {
		return "Cmd"
	}
	return "Ctrl"
}
