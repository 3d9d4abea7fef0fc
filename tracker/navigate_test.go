package tracker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/tabula"
	"github.com/vsariola/tabula/tracker"
)

var shapeTrack = tabula.Track{Measures: []tabula.Measure{
	{BPM: 120, Notes: []tabula.Note{note(tabula.Quarter, 0, 0), note(tabula.Quarter, 1, 0), note(tabula.Quarter, 2, 0)}},
	{BPM: 120},
	{BPM: 120},
	{BPM: 120, Notes: []tabula.Note{note(tabula.Half, 3, 1)}},
	{BPM: 120, Notes: []tabula.Note{note(tabula.Half, 3, 1), note(tabula.Half, 3, 1)}},
}}

func allPositions(track tabula.Track) []tabula.Position {
	var ret []tabula.Position
	for m, measure := range track.Measures {
		for n := 0; n < max(len(measure.Notes), 1); n++ {
			ret = append(ret, tabula.Position{Measure: m, Note: n})
		}
	}
	return ret
}

func TestNextPosition(t *testing.T) {
	tests := []struct {
		from, want tabula.Position
		extend     bool
	}{
		{tabula.Position{Measure: 0, Note: 0}, tabula.Position{Measure: 0, Note: 1}, false},
		{tabula.Position{Measure: 0, Note: 2}, tabula.Position{Measure: 1, Note: 0}, false},
		{tabula.Position{Measure: 1, Note: 0}, tabula.Position{Measure: 2, Note: 0}, false},
		{tabula.Position{Measure: 2, Note: 0}, tabula.Position{Measure: 3, Note: 0}, false},
		{tabula.Position{Measure: 4, Note: 0}, tabula.Position{Measure: 4, Note: 1}, false},
		{tabula.Position{Measure: 4, Note: 1}, tabula.Position{Measure: 5, Note: 0}, true},
	}
	for _, tt := range tests {
		got, extend := tracker.NextPosition(shapeTrack, tt.from)
		assert.Equal(t, tt.want, got, "from %v", tt.from)
		assert.Equal(t, tt.extend, extend, "from %v", tt.from)
	}
}

func TestPrevPosition(t *testing.T) {
	tests := []struct {
		from, want tabula.Position
	}{
		{tabula.Position{Measure: 0, Note: 0}, tabula.Position{Measure: 0, Note: 0}},
		{tabula.Position{Measure: 0, Note: 2}, tabula.Position{Measure: 0, Note: 1}},
		{tabula.Position{Measure: 1, Note: 0}, tabula.Position{Measure: 0, Note: 2}},
		{tabula.Position{Measure: 2, Note: 0}, tabula.Position{Measure: 1, Note: 0}},
		{tabula.Position{Measure: 3, Note: 0}, tabula.Position{Measure: 2, Note: 0}},
		{tabula.Position{Measure: 4, Note: 0}, tabula.Position{Measure: 3, Note: 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tracker.PrevPosition(shapeTrack, tt.from), "from %v", tt.from)
	}
}

func TestPrevUndoesNext(t *testing.T) {
	for _, p := range allPositions(shapeTrack) {
		next, extend := tracker.NextPosition(shapeTrack, p)
		if extend {
			continue
		}
		assert.Equal(t, p, tracker.PrevPosition(shapeTrack, next), "from %v", p)
	}
}

func TestAdjacentStringWraps(t *testing.T) {
	assert.Equal(t, 0, tracker.AdjacentString(5, 1))
	assert.Equal(t, 5, tracker.AdjacentString(0, -1))
	assert.Equal(t, 3, tracker.AdjacentString(2, 1))
	assert.Equal(t, 1, tracker.AdjacentString(2, -1))
	assert.Equal(t, 2, tracker.AdjacentString(2, 0))
}

func TestNavigateStrings(t *testing.T) {
	f := newFixture(tabula.NewTrack(120, "4/4"))
	f.model.Select(cursor(0, 0, 5))
	f.model.Navigate(tracker.StringUp)
	assert.Equal(t, cursor(0, 0, 0), f.model.Cursor())
	f.model.Navigate(tracker.StringDown)
	assert.Equal(t, cursor(0, 0, 5), f.model.Cursor())
	assert.True(t, f.key("↑"))
	assert.Equal(t, 0, f.model.Cursor().String)
}

func TestNavigatePastEndExtendsTrack(t *testing.T) {
	f := newFixture(tabula.Track{Measures: []tabula.Measure{
		{BPM: 90, Notes: []tabula.Note{note(tabula.Quarter, 0, 0)}},
	}})
	assert.True(t, f.key("→"))
	require.Len(t, f.store.Track().Measures, 2)
	assert.Equal(t, 90.0, f.store.Track().Measures[1].BPM)
	assert.Equal(t, cursor(1, 0, 0), f.model.Cursor())
	assert.Equal(t, tabula.Position{Measure: 1}, f.model.PlayPosition())
}

func TestNavigateSynchronizesPlayPosition(t *testing.T) {
	f := newFixture(shapeTrack)
	f.model.Select(cursor(0, 0, 2))
	f.model.Navigate(tracker.Next)
	f.model.Navigate(tracker.Next)
	f.model.Navigate(tracker.Next)
	assert.Equal(t, cursor(1, 0, 2), f.model.Cursor())
	assert.Equal(t, tabula.Position{Measure: 1}, f.model.PlayPosition())
	f.model.Navigate(tracker.Prev)
	assert.Equal(t, tabula.Position{Measure: 0, Note: 2}, f.model.PlayPosition())
}
