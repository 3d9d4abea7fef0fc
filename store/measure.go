package store

import (
	"slices"

	"github.com/vsariola/tabula"
)

// InsertMeasure inserts an empty measure at index, inheriting the tempo and
// time signature of the measure before it. Indices past the end append.
func (s *Store) InsertMeasure(index int) {
	index = min(max(index, 0), len(s.track.Measures))
	template := tabula.Measure{BPM: tabula.DefaultTempo, TimeSignature: tabula.DefaultTimeSignature}
	if len(s.track.Measures) > 0 {
		template = s.track.Measures[max(index-1, 0)]
	}
	t := s.change()
	t.Measures = slices.Insert(t.Measures, index, tabula.Measure{BPM: template.BPM, TimeSignature: template.TimeSignature})
	s.log.Debug("inserted measure", "index", index)
}

// DeleteMeasure deletes the measure at index. The last remaining measure is
// never deleted.
func (s *Store) DeleteMeasure(index int) {
	if !s.validMeasure(index) || len(s.track.Measures) <= 1 {
		return
	}
	t := s.change()
	t.Measures = slices.Delete(t.Measures, index, index+1)
	s.log.Debug("deleted measure", "index", index)
}

func (s *Store) SetTempo(measure int, bpm float64) {
	if !s.validMeasure(measure) || bpm <= 0 || s.track.Measures[measure].BPM == bpm {
		return
	}
	s.change().Measures[measure].BPM = bpm
}

func (s *Store) SetTimeSignature(measure int, timeSignature string) {
	if !s.validMeasure(measure) || s.track.Measures[measure].TimeSignature == timeSignature {
		return
	}
	s.change().Measures[measure].TimeSignature = timeSignature
}
