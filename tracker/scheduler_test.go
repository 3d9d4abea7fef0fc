package tracker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/tabula"
	"github.com/vsariola/tabula/tracker"
)

func TestScheduleRest(t *testing.T) {
	b := &recordingBackend{}
	assert.Equal(t, 1, tracker.ScheduleNote(b, tabula.RestNote(tabula.Half), 2, 1500))
	require.Len(t, b.tones, 1)
	assert.Equal(t, tracker.Tone{Rest: true, Start: 2, Duration: 1.5}, b.tones[0])
}

func TestScheduleChord(t *testing.T) {
	b := &recordingBackend{}
	chord := tabula.Note{Duration: tabula.Quarter, Frets: []int{0, 2, 3}, Strings: []int{0, 1, 5}}
	assert.Equal(t, 3, tracker.ScheduleNote(b, chord, 1, 500))
	require.Len(t, b.tones, 3)
	for i, want := range []int{0, 7, 27} {
		tone := b.tones[i]
		assert.Equal(t, want, tone.Pitch)
		assert.Equal(t, 1.0, tone.Start, "chord tones start together")
		assert.Equal(t, 0.5, tone.Duration)
		assert.Equal(t, float64(want-29)*100, tone.Detune)
		assert.Equal(t, float32(tracker.ToneGain), tone.Gain)
		assert.False(t, tone.Rest)
	}
}
