package tabula

import "math"

// StringOffset is the number of semitones between adjacent strings, except
// between the third and the second string (counting from the top), which is
// one semitone less.
const StringOffset = 5

// PitchFor returns the pitch of fret on string str, in semitones above the
// open lowest string. The offsets of the open strings are 0, 5, 10, 15, 19
// and 24, i.e. the standard EADGBE tuning.
func PitchFor(fret, str int) int {
	pitch := fret + StringOffset*str
	if str >= 4 {
		pitch--
	}
	return pitch
}

// ReferencePitch is the pitch that sounds at the oscillator base frequency;
// tones are detuned by (pitch-ReferencePitch)*100 cents from it.
const ReferencePitch = 29

// DetuneCents returns the detune of the pitch relative to the oscillator base
// frequency.
func DetuneCents(pitch int) float64 {
	return float64(pitch-ReferencePitch) * 100
}

// BaseFrequency is the frequency in Hz of ReferencePitch, i.e. A4.
const BaseFrequency = 440

// Frequency returns the frequency in Hz of a tone detuned by cents from
// BaseFrequency.
func Frequency(cents float64) float64 {
	return BaseFrequency * math.Exp2(cents/1200)
}
