package tabula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vsariola/tabula"
)

func TestReplaySpeed(t *testing.T) {
	tests := []struct {
		d    tabula.Duration
		bpm  float64
		want float64
	}{
		{tabula.Whole, 120, 2000},
		{tabula.Half, 120, 1000},
		{tabula.Quarter, 120, 500},
		{tabula.Eighth, 120, 250},
		{tabula.Sixteenth, 120, 125},
		{tabula.Quarter, 60, 1000},
		{tabula.Whole, 240, 1000},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, tabula.ReplaySpeed(tt.d, tt.bpm), 1e-9, "%s at %v bpm", tt.d.Name(), tt.bpm)
	}
}

func TestReplaySpeedMonotonic(t *testing.T) {
	for _, bpm := range []float64{1, 33.3, 60, 120, 999} {
		prev := 0.0
		for _, d := range tabula.Durations {
			v := tabula.ReplaySpeed(d, bpm)
			assert.Greater(t, v, prev, "%s at %v bpm", d.Name(), bpm)
			prev = v
		}
	}
}

func TestReplaySpeedInverselyProportionalToTempo(t *testing.T) {
	for _, d := range tabula.Durations {
		a := tabula.ReplaySpeed(d, 50)
		b := tabula.ReplaySpeed(d, 100)
		assert.InDelta(t, a, 2*b, 1e-9)
	}
}

// Empty measures are timed as bpm*4 milliseconds rather than four beats. The
// quirk is kept on purpose; see DESIGN.md.
func TestMeasureRestSpeedQuirk(t *testing.T) {
	assert.Equal(t, 240.0, tabula.MeasureRestSpeed(60))
	assert.Equal(t, 480.0, tabula.MeasureRestSpeed(120))
	assert.NotEqual(t, tabula.ReplaySpeed(tabula.Whole, 60), tabula.MeasureRestSpeed(60))
}

func TestReplaySpeedAt(t *testing.T) {
	track := tabula.Track{Measures: []tabula.Measure{
		{BPM: 60},
		{BPM: 120, Notes: []tabula.Note{{Duration: tabula.Eighth, Frets: []int{3}, Strings: []int{0}}}},
	}}
	assert.Equal(t, 240.0, track.ReplaySpeedAt(tabula.Position{Measure: 0}))
	assert.Equal(t, 250.0, track.ReplaySpeedAt(tabula.Position{Measure: 1}))
}

func TestDottedDoesNotChangeReplaySpeed(t *testing.T) {
	track := tabula.Track{Measures: []tabula.Measure{
		{BPM: 120, Notes: []tabula.Note{{Duration: tabula.Quarter, Dotted: true, Frets: []int{0}, Strings: []int{0}}}},
	}}
	assert.Equal(t, 500.0, track.ReplaySpeedAt(tabula.Position{}))
}
