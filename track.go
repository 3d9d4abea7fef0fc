package tabula

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

type (
	// Track is the authored tablature: an ordered list of Measures. Once
	// editing or playback begins, a Track always has at least one Measure.
	Track struct {
		Measures []Measure
	}

	// Measure is a fixed-tempo container of Notes. A Measure without any
	// Notes is a legal full-measure rest and is played as a whole note rest.
	// TimeSignature is only used for rendering.
	Measure struct {
		BPM           float64
		TimeSignature string `yaml:",omitempty"`
		Notes         []Note `yaml:",omitempty"`
	}

	// Note is a chord or a rest. Frets and Strings are parallel: Frets[i] is
	// played on string Strings[i]. If Frets[0] is Rest, the whole Note is
	// silent.
	Note struct {
		Duration Duration
		Dotted   bool  `yaml:",omitempty"`
		Frets    []int `yaml:",flow"`
		Strings  []int `yaml:",flow,omitempty"`
	}

	// Position is a (measure, note) index into a Track. It is used for the
	// playing position, which is advanced by the transport.
	Position struct {
		Measure int
		Note    int
	}

	// Cursor is the editing focus: a Position plus the focused string.
	Cursor struct {
		Position
		String int
	}
)

// Rest is the sentinel stored in Note.Frets[0] to mark a silent Note.
const Rest = -1

// NumStrings is the number of strings of the instrument. String indices wrap
// around in the range [0, NumStrings).
const NumStrings = 6

// DefaultTimeSignature and DefaultTempo are used for new measures if nothing
// else is given.
const (
	DefaultTimeSignature = "4/4"
	DefaultTempo         = 120
)

// RestNote returns a new silent Note of the given duration.
func RestNote(d Duration) Note {
	return Note{Duration: d, Frets: []int{Rest}}
}

// IsRest reports whether the Note is silent.
func (n Note) IsRest() bool {
	return len(n.Frets) == 0 || n.Frets[0] == Rest
}

// Fret returns the fret played on the given string, or Rest if the string is
// not played by this Note.
func (n Note) Fret(str int) int {
	if n.IsRest() {
		return Rest
	}
	for i, s := range n.Strings {
		if s == str && i < len(n.Frets) {
			return n.Frets[i]
		}
	}
	return Rest
}

// Copy makes a deep copy of a Note.
func (n Note) Copy() Note {
	frets := make([]int, len(n.Frets))
	copy(frets, n.Frets)
	var strings []int
	if n.Strings != nil {
		strings = make([]int, len(n.Strings))
		copy(strings, n.Strings)
	}
	return Note{Duration: n.Duration, Dotted: n.Dotted, Frets: frets, Strings: strings}
}

// Copy makes a deep copy of a Measure.
func (m Measure) Copy() Measure {
	var notes []Note
	if m.Notes != nil {
		notes = make([]Note, len(m.Notes))
		for i, n := range m.Notes {
			notes[i] = n.Copy()
		}
	}
	return Measure{BPM: m.BPM, TimeSignature: m.TimeSignature, Notes: notes}
}

// Copy makes a deep copy of a Track.
func (t Track) Copy() Track {
	measures := make([]Measure, len(t.Measures))
	for i, m := range t.Measures {
		measures[i] = m.Copy()
	}
	return Track{Measures: measures}
}

// NumNotes returns the number of playable units in the track: one per Note,
// and one per empty Measure.
func (t Track) NumNotes() int {
	ret := 0
	for _, m := range t.Measures {
		ret += max(len(m.Notes), 1)
	}
	return ret
}

// NoteAt returns the note at position p, or a whole note rest if the measure
// is empty. ok is false if p is out of range.
func (t Track) NoteAt(p Position) (n Note, ok bool) {
	if p.Measure < 0 || p.Measure >= len(t.Measures) {
		return Note{}, false
	}
	m := t.Measures[p.Measure]
	if len(m.Notes) == 0 {
		return RestNote(Whole), p.Note == 0
	}
	if p.Note < 0 || p.Note >= len(m.Notes) {
		return Note{}, false
	}
	return m.Notes[p.Note], true
}

// Clamp returns p moved to the nearest valid position of the track. Empty
// measures only have the position 0.
func (t Track) Clamp(p Position) Position {
	if len(t.Measures) == 0 {
		return Position{}
	}
	p.Measure = min(max(p.Measure, 0), len(t.Measures)-1)
	p.Note = min(max(p.Note, 0), max(len(t.Measures[p.Measure].Notes)-1, 0))
	return p
}

// NewTrack returns a track with a single empty measure.
func NewTrack(bpm float64, timeSignature string) Track {
	return Track{Measures: []Measure{{BPM: bpm, TimeSignature: timeSignature}}}
}

// ReadTrack decodes a YAML track.
func ReadTrack(r io.Reader) (Track, error) {
	var t Track
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return Track{}, fmt.Errorf("could not decode track: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Track{}, fmt.Errorf("invalid track: %w", err)
	}
	return t, nil
}

// Validate checks that the track can be edited and played: it has at least
// one measure, every tempo is positive and finite, and every sounding note
// has a fret for each of its strings.
func (t Track) Validate() error {
	if len(t.Measures) == 0 {
		return errors.New("track has no measures")
	}
	for i, m := range t.Measures {
		if !(m.BPM > 0) || math.IsInf(m.BPM, 1) {
			return fmt.Errorf("measure %d: tempo must be positive, got %v", i+1, m.BPM)
		}
		for j, n := range m.Notes {
			if err := n.validate(); err != nil {
				return fmt.Errorf("measure %d, note %d: %w", i+1, j+1, err)
			}
		}
	}
	return nil
}

func (n Note) validate() error {
	if !n.Duration.Valid() {
		return fmt.Errorf("unknown note duration %q", string(n.Duration))
	}
	if n.IsRest() {
		return nil
	}
	if len(n.Frets) != len(n.Strings) {
		return fmt.Errorf("%d frets for %d strings", len(n.Frets), len(n.Strings))
	}
	for i, str := range n.Strings {
		if str < 0 || str >= NumStrings {
			return fmt.Errorf("string %d out of range [0, %d)", str, NumStrings)
		}
		if n.Frets[i] < 0 {
			return fmt.Errorf("negative fret %d on string %d", n.Frets[i], str)
		}
	}
	return nil
}

// WriteTrack encodes the track as YAML.
func WriteTrack(w io.Writer, t Track) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("could not encode track: %w", err)
	}
	return enc.Close()
}
