// Package synth is a software square wave tone generator. It implements the
// audio backend of the editor on top of a sample clock: tones are scheduled
// from the GUI goroutine and rendered by the audio goroutine.
package synth

import (
	"math"
	"slices"
	"sync/atomic"

	"github.com/viterin/vek/vek32"
	"github.com/vsariola/tabula"
	"github.com/vsariola/tabula/tracker"
)

type (
	// Synth renders the scheduled tones. Now and Schedule may be called from
	// any goroutine; Render must only be called by the audio goroutine.
	Synth struct {
		sampleRate float64
		tones      chan tracker.Tone
		voices     []voice

		position atomic.Int64  // number of samples rendered
		peak     atomic.Uint32 // float32 bits of the peak of the last buffer
		dropped  atomic.Int64

		mix, tmp []float32
	}

	voice struct {
		start, end int64 // in samples
		phase      float64
		step       float64 // phase increment per sample
		gain       float32
	}
)

const toneQueueSize = 256

func New(sampleRate int) *Synth {
	return &Synth{
		sampleRate: float64(sampleRate),
		tones:      make(chan tracker.Tone, toneQueueSize),
	}
}

// Now returns the number of seconds rendered so far.
func (s *Synth) Now() float64 {
	return float64(s.position.Load()) / s.sampleRate
}

// Schedule queues a tone for the audio goroutine. Rests produce no sound and
// are not queued. If the queue is full, the tone is dropped.
func (s *Synth) Schedule(tone tracker.Tone) {
	if tone.Rest {
		return
	}
	if !tracker.TrySend(s.tones, tone) {
		s.dropped.Add(1)
	}
}

// Dropped returns the number of tones dropped because the queue was full.
func (s *Synth) Dropped() int64 { return s.dropped.Load() }

// Peak returns the absolute peak value of the last rendered buffer.
func (s *Synth) Peak() float32 { return math.Float32frombits(s.peak.Load()) }

// Render fills buf with the sum of the active tones. It implements
// tabula.AudioSource.
func (s *Synth) Render(buf tabula.AudioBuffer) error {
	pos := s.position.Load()
	s.receive()
	n := len(buf)
	if cap(s.mix) < n {
		s.mix = make([]float32, n)
		s.tmp = make([]float32, n)
	}
	mix := vek32.Zeros_Into(s.mix[:n], n)
	tmp := s.tmp[:n]
	for i := range s.voices {
		if s.voices[i].render(tmp, pos) {
			vek32.Add_Inplace(mix, tmp)
		}
	}
	for i, v := range mix {
		buf[i] = [2]float32{v, v}
	}
	peak := float32(0)
	if n > 0 {
		copy(tmp, mix)
		vek32.Abs_Inplace(tmp)
		peak = vek32.Max(tmp)
	}
	s.peak.Store(math.Float32bits(peak))
	end := pos + int64(n)
	s.position.Store(end)
	s.voices = slices.DeleteFunc(s.voices, func(v voice) bool { return v.end <= end })
	return nil
}

func (s *Synth) receive() {
	for {
		select {
		case t := <-s.tones:
			start := int64(math.Round(t.Start * s.sampleRate))
			length := int64(math.Round(t.Duration * s.sampleRate))
			s.voices = append(s.voices, voice{
				start: start,
				end:   start + length,
				step:  tabula.Frequency(t.Detune) / s.sampleRate,
				gain:  t.Gain,
			})
		default:
			return
		}
	}
}

// render writes the voice to out, which starts at sample pos. Returns false if
// the voice is silent during the whole buffer.
func (v *voice) render(out []float32, pos int64) bool {
	end := pos + int64(len(out))
	if v.end <= pos || v.start >= end {
		return false
	}
	for i := range out {
		t := pos + int64(i)
		if t < v.start || t >= v.end {
			out[i] = 0
			continue
		}
		if v.phase < 0.5 {
			out[i] = v.gain
		} else {
			out[i] = -v.gain
		}
		v.phase += v.step
		v.phase -= math.Floor(v.phase)
	}
	return true
}
