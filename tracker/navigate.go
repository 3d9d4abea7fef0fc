package tracker

import "github.com/vsariola/tabula"

// Direction is a directional input for moving the editing cursor.
type Direction int

const (
	Next Direction = iota
	Prev
	StringUp
	StringDown
)

// NextPosition returns the position after p. If p is the last note of the
// last measure, extend is true and the track must grow by one measure before
// the cursor can move on; the returned position is then the first note of
// the measure that is to be appended.
func NextPosition(track tabula.Track, p tabula.Position) (next tabula.Position, extend bool) {
	last := max(len(track.Measures[p.Measure].Notes)-1, 0)
	if p.Note < last {
		return tabula.Position{Measure: p.Measure, Note: p.Note + 1}, false
	}
	next = tabula.Position{Measure: p.Measure + 1}
	return next, p.Measure+1 >= len(track.Measures)
}

// PrevPosition returns the position before p. The first note of the track
// has no previous position and is returned as is.
func PrevPosition(track tabula.Track, p tabula.Position) tabula.Position {
	if p.Note > 0 {
		return tabula.Position{Measure: p.Measure, Note: p.Note - 1}
	}
	if p.Measure == 0 {
		return p
	}
	prev := track.Measures[p.Measure-1]
	return tabula.Position{Measure: p.Measure - 1, Note: max(len(prev.Notes)-1, 0)}
}

// AdjacentString moves str by dir strings, wrapping around the fixed number
// of strings.
func AdjacentString(str, dir int) int {
	ret := (str + dir) % tabula.NumStrings
	if ret < 0 {
		ret += tabula.NumStrings
	}
	return ret
}

// Navigate moves the editing cursor. Moving past the end of the track appends
// a new measure through the measure commands. The playing position follows
// the cursor.
func (m *Model) Navigate(dir Direction) {
	c := m.cursor
	switch dir {
	case StringUp:
		c.String = AdjacentString(c.String, 1)
	case StringDown:
		c.String = AdjacentString(c.String, -1)
	case Prev:
		c.Position = PrevPosition(m.doc.Track(), m.cursor.Position)
	case Next:
		next, extend := NextPosition(m.doc.Track(), m.cursor.Position)
		if extend {
			m.log.Debug("extending track", "measure", next.Measure)
			m.measures.InsertMeasure(next.Measure)
		}
		c.Position = next
	}
	m.cursor = c
	m.playing = c.Position
	m.clampPositions()
}
