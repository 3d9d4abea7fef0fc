// Package beep is an audio backend playing tones through the
// github.com/gopxl/beep speaker.
package beep

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/vsariola/tabula"
	"github.com/vsariola/tabula/tracker"
)

type (
	// Backend plays every scheduled tone as its own streamer on the speaker
	// mixer, delayed by silence until its start time.
	Backend struct {
		sampleRate beep.SampleRate
		mixer      *beep.Mixer
		clock      *clock
		ready      chan struct{}
		once       sync.Once
	}

	// clock is a streamer that counts the samples pulled by the speaker; it
	// gives the backend its notion of time.
	clock struct {
		mu      sync.Mutex
		samples int
	}

	squareWave struct {
		phase, step float64
		gain        float64
	}
)

// New initializes the speaker. The speaker starts playing in the background;
// Ready is closed after it has pulled the first buffer.
func New(sampleRate int, bufferLength time.Duration) (*Backend, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(bufferLength)); err != nil {
		return nil, fmt.Errorf("cannot initialize speaker: %w", err)
	}
	b := &Backend{
		sampleRate: sr,
		mixer:      &beep.Mixer{},
		clock:      &clock{},
		ready:      make(chan struct{}),
	}
	b.mixer.KeepAlive(true)
	speaker.Play(beep.Mix(b.clockStreamer(), b.mixer))
	return b, nil
}

func (b *Backend) Ready() <-chan struct{} { return b.ready }

// Now returns the number of seconds played so far.
func (b *Backend) Now() float64 {
	b.clock.mu.Lock()
	defer b.clock.mu.Unlock()
	return float64(b.clock.samples) / float64(b.sampleRate)
}

// Schedule adds the tone to the speaker mixer. Rests are not played.
func (b *Backend) Schedule(tone tracker.Tone) {
	if tone.Rest {
		return
	}
	delay := max(b.sampleRate.N(seconds(tone.Start-b.Now())), 0)
	length := b.sampleRate.N(seconds(tone.Duration))
	s := Square(b.sampleRate, tabula.Frequency(tone.Detune), float64(tone.Gain))
	speaker.Lock()
	b.mixer.Add(beep.Seq(beep.Silence(delay), beep.Take(length, s)))
	speaker.Unlock()
}

func (b *Backend) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}

func (b *Backend) clockStreamer() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		clear(samples)
		b.clock.mu.Lock()
		b.clock.samples += len(samples)
		b.clock.mu.Unlock()
		b.once.Do(func() { close(b.ready) })
		return len(samples), true
	})
}

// Square returns an endless square wave streamer.
func Square(sr beep.SampleRate, freq, gain float64) beep.Streamer {
	return &squareWave{step: freq / float64(sr), gain: gain}
}

func (w *squareWave) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := w.gain
		if w.phase >= 0.5 {
			v = -w.gain
		}
		samples[i] = [2]float64{v, v}
		w.phase += w.step
		w.phase -= math.Floor(w.phase)
	}
	return len(samples), true
}

func (w *squareWave) Err() error { return nil }

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
