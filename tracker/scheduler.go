package tracker

import "github.com/vsariola/tabula"

type (
	// AudioBackend receives the tones of the notes being played. Now returns
	// the backend's current time in seconds; tones are scheduled relative to
	// it. Schedule must not block: tones are fire-and-forget.
	AudioBackend interface {
		Now() float64
		Schedule(tone Tone)
	}

	// Tone is a single timed tone or silence. Start and Duration are in
	// seconds on the backend's clock. Detune is in cents relative to the
	// oscillator base frequency.
	Tone struct {
		Pitch    int
		Rest     bool
		Start    float64
		Duration float64
		Detune   float64
		Gain     float32
	}
)

// ToneGain is the fixed gain of all the sounding tones.
const ToneGain = 0.025

// ScheduleNote schedules the tones of note to start at start (seconds on the
// backend's clock) and last durationMs milliseconds. A rest schedules one
// silent tone; a chord schedules one tone per (fret, string) pair, all
// starting at the same time. Returns the number of tones scheduled.
func ScheduleNote(backend AudioBackend, note tabula.Note, start, durationMs float64) int {
	duration := durationMs / 1000
	if note.IsRest() {
		backend.Schedule(Tone{Rest: true, Start: start, Duration: duration})
		return 1
	}
	n := min(len(note.Frets), len(note.Strings))
	for i := 0; i < n; i++ {
		pitch := tabula.PitchFor(note.Frets[i], note.Strings[i])
		backend.Schedule(Tone{
			Pitch:    pitch,
			Start:    start,
			Duration: duration,
			Detune:   tabula.DetuneCents(pitch),
			Gain:     ToneGain,
		})
	}
	return n
}
