package tracker_test

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/tabula"
	"github.com/vsariola/tabula/tracker"
)

func TestDefaultKeyBindings(t *testing.T) {
	b := tracker.DefaultKeyBindings()
	assert.Equal(t, "TogglePlay", b[tracker.KeyEvent{Name: "Space"}])
	assert.Equal(t, "Copy", b[tracker.KeyEvent{Name: "C", Shortcut: true}])
	assert.Equal(t, "Fret0", b[tracker.KeyEvent{Name: "0"}])
	assert.Equal(t, "Ctrl+C", b.Hint("Copy", "Ctrl"))
	assert.Equal(t, "", b.Hint("NoSuchAction", "Ctrl"))
}

func TestUserBindingsOverrideDefaults(t *testing.T) {
	custom, err := tracker.ParseKeyBindings([]byte(`
- {key: "Space", action: ""}
- {key: "P", action: "TogglePlay"}
- {key: "Q", action: "Whole"}
`))
	require.NoError(t, err)
	defaults, err := tracker.ParseKeyBindings([]byte(`
- {key: "Space", action: "TogglePlay"}
- {key: "Q", action: "Quarter"}
`))
	require.NoError(t, err)
	b := tracker.MakeKeyBindings(append(defaults, custom...))
	_, ok := b[tracker.KeyEvent{Name: "Space"}]
	assert.False(t, ok)
	assert.Equal(t, "TogglePlay", b[tracker.KeyEvent{Name: "P"}])
	assert.Equal(t, "Whole", b[tracker.KeyEvent{Name: "Q"}])
}

func TestParseKeyBindingsRejectsUnknownFields(t *testing.T) {
	_, err := tracker.ParseKeyBindings([]byte(`- {key: "A", action: "Next", alt: true}`))
	assert.Error(t, err)
}

func TestModalBlocksKeys(t *testing.T) {
	f := newFixture(tabula.NewTrack(120, "4/4"))
	f.model.ModalOpen().SetValue(true)
	assert.False(t, f.key("7"))
	assert.False(t, f.key("Space"))
	assert.Empty(t, f.store.Track().Measures[0].Notes)
	assert.False(t, f.model.Transport().Playing())
	f.model.ModalOpen().SetValue(false)
	assert.True(t, f.key("7"))
}

func TestPlayingBlocksEditKeys(t *testing.T) {
	f := newFixture(tabula.Track{Measures: []tabula.Measure{
		{BPM: 120, Notes: []tabula.Note{note(tabula.Quarter, 1, 0), note(tabula.Quarter, 2, 0)}},
	}})
	require.True(t, f.key("Space"))
	assert.False(t, f.key("7"))
	assert.False(t, f.key("→"))
	assert.False(t, f.key("⌫"))
	assert.False(t, f.shortcut("Z"))
	assert.Equal(t, 1, f.store.Track().Measures[0].Notes[0].Fret(0))
	assert.True(t, f.shortcut("C"))
	_, ok := f.store.Clipboard()
	assert.True(t, ok)
	assert.True(t, f.key("Space"))
	assert.False(t, f.model.Transport().Playing())
}

func TestUnboundKey(t *testing.T) {
	f := newFixture(tabula.NewTrack(120, "4/4"))
	assert.False(t, f.key("F13"))
	assert.False(t, f.model.HandleKey(tracker.KeyEvent{Name: "7", Shortcut: true}))
}

// FuzzModel presses random bound keys, advancing the frames in between, and
// checks that the cursor and the playing position always point into the
// track.
func FuzzModel(f *testing.F) {
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	f.Add([]byte{40, 41, 42, 43, 0, 10, 20, 30})
	var events []tracker.KeyEvent
	for e := range tracker.DefaultKeyBindings() {
		events = append(events, e)
	}
	slices.SortFunc(events, func(a, b tracker.KeyEvent) int {
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
	f.Fuzz(func(t *testing.T, slice []byte) {
		fx := newFixture(tabula.NewTrack(120, "4/4"))
		reader := bytes.NewReader(slice)
		for v, err := binary.ReadUvarint(reader); err == nil; v, err = binary.ReadUvarint(reader) {
			fx.model.HandleKey(events[int(v%uint64(len(events)))])
			fx.frame()
			track := fx.store.Track()
			require.NotEmpty(t, track.Measures)
			c := fx.model.Cursor()
			_, ok := track.NoteAt(c.Position)
			require.True(t, ok, "cursor %v out of range", c)
			require.True(t, c.String >= 0 && c.String < tabula.NumStrings)
			_, ok = track.NoteAt(fx.model.PlayPosition())
			require.True(t, ok, "play position %v out of range", fx.model.PlayPosition())
		}
	})
}
