package store

import (
	"slices"

	"github.com/vsariola/tabula"
)

// InsertNote inserts a rest after the note under the cursor, with the same
// duration. In an empty measure, the rest becomes the first note.
func (s *Store) InsertNote(c tabula.Cursor) {
	if !s.validMeasure(c.Measure) {
		return
	}
	d := tabula.Quarter
	if s.validNote(c) {
		d = s.track.Measures[c.Measure].Notes[c.Note].Duration
	}
	s.insert(c, tabula.RestNote(d))
}

// PasteNote inserts note after the note under the cursor.
func (s *Store) PasteNote(c tabula.Cursor, note tabula.Note) {
	if !s.validMeasure(c.Measure) {
		return
	}
	s.insert(c, note.Copy())
}

func (s *Store) insert(c tabula.Cursor, note tabula.Note) {
	m := &s.change().Measures[c.Measure]
	index := 0
	if len(m.Notes) > 0 {
		index = min(max(c.Note+1, 0), len(m.Notes))
	}
	m.Notes = slices.Insert(m.Notes, index, note)
}

// DeleteNote removes the fret on the focused string. A note left without
// frets becomes a rest; deleting a rest, or a string the note does not play,
// removes the whole note.
func (s *Store) DeleteNote(c tabula.Cursor) {
	if !s.validNote(c) {
		return
	}
	n := s.track.Measures[c.Measure].Notes[c.Note]
	i := slices.Index(n.Strings, c.String)
	if n.IsRest() || i < 0 || i >= len(n.Frets) {
		m := &s.change().Measures[c.Measure]
		m.Notes = slices.Delete(m.Notes, c.Note, c.Note+1)
		return
	}
	n = n.Copy()
	n.Frets = slices.Delete(n.Frets, i, i+1)
	n.Strings = slices.Delete(n.Strings, i, i+1)
	if len(n.Frets) == 0 {
		n = tabula.RestNote(n.Duration)
	}
	s.change().Measures[c.Measure].Notes[c.Note] = n
}

// ChangeNote sets the fret played on the focused string. tabula.Rest turns
// the note into a rest. In an empty measure, a new quarter note is created.
func (s *Store) ChangeNote(c tabula.Cursor, fret int) {
	if !s.validMeasure(c.Measure) || fret < tabula.Rest {
		return
	}
	if len(s.track.Measures[c.Measure].Notes) == 0 {
		n := tabula.RestNote(tabula.Quarter)
		if fret != tabula.Rest {
			n = tabula.Note{Duration: tabula.Quarter, Frets: []int{fret}, Strings: []int{c.String}}
		}
		m := &s.change().Measures[c.Measure]
		m.Notes = append(m.Notes, n)
		return
	}
	if !s.validNote(c) {
		return
	}
	n := s.track.Measures[c.Measure].Notes[c.Note].Copy()
	switch {
	case fret == tabula.Rest:
		if n.IsRest() {
			return
		}
		n = tabula.Note{Duration: n.Duration, Dotted: n.Dotted, Frets: []int{tabula.Rest}}
	case n.IsRest():
		n.Frets, n.Strings = []int{fret}, []int{c.String}
	default:
		if i := slices.Index(n.Strings, c.String); i >= 0 && i < len(n.Frets) {
			if n.Frets[i] == fret {
				return
			}
			n.Frets[i] = fret
		} else {
			n.Frets = append(n.Frets, fret)
			n.Strings = append(n.Strings, c.String)
		}
	}
	s.change().Measures[c.Measure].Notes[c.Note] = n
}

func (s *Store) ChangeNoteLength(c tabula.Cursor, d tabula.Duration) {
	if !s.validNote(c) || !d.Valid() || s.track.Measures[c.Measure].Notes[c.Note].Duration == d {
		return
	}
	s.change().Measures[c.Measure].Notes[c.Note].Duration = d
}

func (s *Store) ToggleDotted(c tabula.Cursor) {
	if !s.validNote(c) {
		return
	}
	n := &s.change().Measures[c.Measure].Notes[c.Note]
	n.Dotted = !n.Dotted
}

// CopyNote puts a copy of the note under the cursor to the clipboard.
func (s *Store) CopyNote(c tabula.Cursor) {
	if !s.validNote(c) {
		return
	}
	n := s.track.Measures[c.Measure].Notes[c.Note].Copy()
	s.clipboard = &n
}

// CutNote moves the note under the cursor to the clipboard.
func (s *Store) CutNote(c tabula.Cursor) {
	if !s.validNote(c) {
		return
	}
	s.CopyNote(c)
	m := &s.change().Measures[c.Measure]
	m.Notes = slices.Delete(m.Notes, c.Note, c.Note+1)
}
