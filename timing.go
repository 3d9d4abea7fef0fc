package tabula

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Duration is the length symbol of a Note, stored as the same one letter
// names that are used for the keys that set them.
type Duration string

const (
	Whole     Duration = "w"
	Half      Duration = "h"
	Quarter   Duration = "q"
	Eighth    Duration = "e"
	Sixteenth Duration = "s"
)

// Durations lists all the duration symbols, from the shortest to the longest.
var Durations = []Duration{Sixteenth, Eighth, Quarter, Half, Whole}

// Valid reports whether d is one of the known duration symbols.
func (d Duration) Valid() bool {
	switch d {
	case Whole, Half, Quarter, Eighth, Sixteenth:
		return true
	}
	return false
}

// Beats returns the length of the duration in quarter notes.
func (d Duration) Beats() float64 {
	switch d {
	case Whole:
		return 4
	case Half:
		return 2
	case Eighth:
		return 0.5
	case Sixteenth:
		return 0.25
	default:
		return 1
	}
}

// Name returns the english name of the duration, e.g. "quarter".
func (d Duration) Name() string {
	switch d {
	case Whole:
		return "whole"
	case Half:
		return "half"
	case Quarter:
		return "quarter"
	case Eighth:
		return "eighth"
	case Sixteenth:
		return "sixteenth"
	}
	return fmt.Sprintf("unknown (%q)", string(d))
}

// UnmarshalYAML accepts only the known duration symbols.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if !Duration(s).Valid() {
		return fmt.Errorf("unknown note duration %q", s)
	}
	*d = Duration(s)
	return nil
}

// BeatLength returns the length of one quarter note in milliseconds.
func BeatLength(bpm float64) float64 {
	return 60000 / bpm
}

// ReplaySpeed returns how many milliseconds a note with duration d lasts in a
// measure with the given tempo. The dotted flag does not affect playback.
// Unknown durations are played as quarter notes.
func ReplaySpeed(d Duration, bpm float64) float64 {
	return BeatLength(bpm) * d.Beats()
}

// MeasureRestSpeed returns how many milliseconds an empty measure lasts. Note
// that this is bpm*4 and not four beats at the tempo: empty measures have
// always been timed this way and existing tracks rely on it.
func MeasureRestSpeed(bpm float64) float64 {
	return bpm * 4
}

// ReplaySpeedAt returns the duration in milliseconds of the note at position
// p; empty measures use MeasureRestSpeed.
func (t Track) ReplaySpeedAt(p Position) float64 {
	m := t.Measures[p.Measure]
	if len(m.Notes) == 0 {
		return MeasureRestSpeed(m.BPM)
	}
	return ReplaySpeed(m.Notes[p.Note].Duration, m.BPM)
}
