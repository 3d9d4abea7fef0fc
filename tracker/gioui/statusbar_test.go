package gioui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vsariola/tabula"
)

func TestNoteDescription(t *testing.T) {
	track := tabula.Track{Measures: []tabula.Measure{
		{BPM: 120, Notes: []tabula.Note{
			{Duration: tabula.Quarter, Dotted: true, Frets: []int{3}, Strings: []int{0}},
			tabula.RestNote(tabula.Sixteenth),
		}},
		{BPM: 120},
	}}
	c := tabula.Cursor{}
	assert.Equal(t, "Measure 1, note 1, string 1: Dotted Quarter", NoteDescription(track, c))
	c.Note = 1
	assert.Equal(t, "Measure 1, note 2, string 1: Sixteenth Rest", NoteDescription(track, c))
	c = tabula.Cursor{Position: tabula.Position{Measure: 1}, String: 5}
	assert.Equal(t, "Measure 2, note 1, string 6: Measure Rest", NoteDescription(track, c))
	c.Measure = 5
	assert.Equal(t, "", NoteDescription(track, c))
}
