package gioui

import (
	"testing"

	"gioui.org/io/key"
	"github.com/stretchr/testify/assert"
	"github.com/vsariola/tabula/tracker"
)

func TestTranslateKey(t *testing.T) {
	e, ok := translateKey(key.Event{Name: key.NameSpace, State: key.Press})
	assert.True(t, ok)
	assert.Equal(t, tracker.KeyEvent{Name: "Space"}, e)

	e, ok = translateKey(key.Event{Name: "C", Modifiers: key.ModShortcut, State: key.Press})
	assert.True(t, ok)
	assert.Equal(t, tracker.KeyEvent{Name: "C", Shortcut: true}, e)

	_, ok = translateKey(key.Event{Name: "C", State: key.Release})
	assert.False(t, ok)
	_, ok = translateKey(key.Event{Name: "C", Modifiers: key.ModAlt, State: key.Press})
	assert.False(t, ok)
}

func TestDefaultBindingsUseGioKeyNames(t *testing.T) {
	b := tracker.DefaultKeyBindings()
	for _, name := range []key.Name{key.NameSpace, key.NameRightArrow, key.NameLeftArrow, key.NameUpArrow, key.NameDownArrow, key.NameDeleteBackward} {
		_, ok := b[tracker.KeyEvent{Name: string(name)}]
		assert.True(t, ok, "%s", name)
	}
}
