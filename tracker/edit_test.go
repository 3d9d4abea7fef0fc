package tracker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/tabula"
)

func TestDigitsSetFrets(t *testing.T) {
	f := newFixture(tabula.NewTrack(120, "4/4"))
	f.model.Select(cursor(0, 0, 2))
	assert.True(t, f.key("7"))
	n := f.store.Track().Measures[0].Notes[0]
	assert.Equal(t, 7, n.Fret(2))
	assert.True(t, f.key("R"))
	assert.True(t, f.store.Track().Measures[0].Notes[0].IsRest())
}

func TestDurationKeys(t *testing.T) {
	f := newFixture(tabula.Track{Measures: []tabula.Measure{{BPM: 120, Notes: []tabula.Note{note(tabula.Quarter, 0, 0)}}}})
	for key, want := range map[string]tabula.Duration{"E": tabula.Eighth, "S": tabula.Sixteenth, "W": tabula.Whole, "H": tabula.Half, "Q": tabula.Quarter} {
		assert.True(t, f.key(key))
		assert.Equal(t, want, f.store.Track().Measures[0].Notes[0].Duration, "key %s", key)
	}
	assert.True(t, f.key("."))
	assert.True(t, f.store.Track().Measures[0].Notes[0].Dotted)
}

func TestDeleteTrailingRestStepsBack(t *testing.T) {
	f := newFixture(tabula.Track{Measures: []tabula.Measure{
		{BPM: 120, Notes: []tabula.Note{note(tabula.Quarter, 1, 0), tabula.RestNote(tabula.Quarter)}},
	}})
	f.model.Select(cursor(0, 1, 3))
	assert.True(t, f.key("⌫"))
	assert.Len(t, f.store.Track().Measures[0].Notes, 1)
	assert.Equal(t, cursor(0, 0, 3), f.model.Cursor())
}

func TestDeleteEmptyLastMeasureMovesBack(t *testing.T) {
	f := newFixture(tabula.Track{Measures: []tabula.Measure{
		{BPM: 120, Notes: []tabula.Note{note(tabula.Quarter, 1, 0), note(tabula.Quarter, 2, 0)}},
		{BPM: 120},
	}})
	f.model.Select(cursor(1, 0, 1))
	assert.True(t, f.key("⌫"))
	assert.Len(t, f.store.Track().Measures, 1)
	assert.Equal(t, cursor(0, 0, 1), f.model.Cursor())
}

func TestDeleteEmptyMiddleMeasureKeepsIndex(t *testing.T) {
	f := newFixture(tabula.Track{Measures: []tabula.Measure{
		{BPM: 120},
		{BPM: 120},
		{BPM: 120, Notes: []tabula.Note{note(tabula.Quarter, 2, 0)}},
	}})
	f.model.Select(cursor(1, 0, 0))
	assert.True(t, f.key("⌫"))
	assert.Len(t, f.store.Track().Measures, 2)
	assert.Equal(t, cursor(1, 0, 0), f.model.Cursor())
}

func TestDeleteOnlyMeasureIsKept(t *testing.T) {
	f := newFixture(tabula.NewTrack(120, "4/4"))
	assert.True(t, f.key("⌫"))
	assert.Len(t, f.store.Track().Measures, 1)
	assert.Equal(t, cursor(0, 0, 0), f.model.Cursor())
}

func TestInsertNoteMovesCursor(t *testing.T) {
	f := newFixture(tabula.NewTrack(120, "4/4"))
	assert.True(t, f.key("I"))
	assert.Equal(t, cursor(0, 0, 0), f.model.Cursor(), "first note of an empty measure")
	assert.True(t, f.key("I"))
	assert.Equal(t, cursor(0, 1, 0), f.model.Cursor())
	assert.Len(t, f.store.Track().Measures[0].Notes, 2)
}

func TestCopyCutPaste(t *testing.T) {
	f := newFixture(tabula.Track{Measures: []tabula.Measure{
		{BPM: 120, Notes: []tabula.Note{note(tabula.Quarter, 1, 0), note(tabula.Eighth, 2, 3)}},
	}})
	f.model.Select(cursor(0, 1, 0))
	assert.True(t, f.shortcut("X"))
	assert.Equal(t, cursor(0, 0, 0), f.model.Cursor())
	require.Len(t, f.store.Track().Measures[0].Notes, 1)

	assert.True(t, f.shortcut("V"))
	assert.Equal(t, cursor(0, 1, 0), f.model.Cursor())
	require.Len(t, f.store.Track().Measures[0].Notes, 2)
	assert.Equal(t, 2, f.store.Track().Measures[0].Notes[1].Fret(3))

	f.model.Select(cursor(0, 0, 0))
	assert.True(t, f.shortcut("C"))
	assert.True(t, f.shortcut("V"))
	notes := f.store.Track().Measures[0].Notes
	require.Len(t, notes, 3)
	assert.Equal(t, 1, notes[1].Fret(0))
}

func TestPasteWithEmptyClipboard(t *testing.T) {
	f := newFixture(tabula.NewTrack(120, "4/4"))
	assert.True(t, f.shortcut("V"))
	assert.Empty(t, f.store.Track().Measures[0].Notes)
}

func TestUndoRedoKeys(t *testing.T) {
	f := newFixture(tabula.Track{Measures: []tabula.Measure{
		{BPM: 120, Notes: []tabula.Note{note(tabula.Quarter, 1, 0), note(tabula.Quarter, 2, 0)}},
	}})
	f.model.Select(cursor(0, 1, 0))
	f.model.Edit().SetTempo(5000)
	assert.Equal(t, 999.0, f.store.Track().Measures[0].BPM)
	f.shortcut("X")
	require.Len(t, f.store.Track().Measures[0].Notes, 1)
	assert.True(t, f.shortcut("Z"))
	assert.Len(t, f.store.Track().Measures[0].Notes, 2)
	assert.True(t, f.shortcut("Y"))
	assert.Len(t, f.store.Track().Measures[0].Notes, 1)
	assert.Equal(t, cursor(0, 0, 0), f.model.Cursor())
}

func TestUndoClampsCursor(t *testing.T) {
	f := newFixture(tabula.Track{Measures: []tabula.Measure{
		{BPM: 120, Notes: []tabula.Note{note(tabula.Quarter, 1, 0)}},
	}})
	f.key("→")
	require.Len(t, f.store.Track().Measures, 2)
	f.model.Edit().Undo().Do()
	assert.Len(t, f.store.Track().Measures, 1)
	assert.Equal(t, cursor(0, 0, 0), f.model.Cursor())
	assert.Equal(t, tabula.Position{}, f.model.PlayPosition())
}

func TestTimeSignature(t *testing.T) {
	f := newFixture(tabula.NewTrack(120, "4/4"))
	f.model.Edit().SetTimeSignature("7/8")
	assert.Equal(t, "7/8", f.store.Track().Measures[0].TimeSignature)
}
