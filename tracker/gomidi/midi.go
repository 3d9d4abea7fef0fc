package gomidi

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/vsariola/tabula/tracker"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

type (
	// RTMIDIContext gives access to the MIDI output ports of the system.
	RTMIDIContext struct {
		driver *rtmididrv.Driver
	}

	// Sender is the part of a MIDI output port the backend needs.
	Sender interface {
		Send(data []byte) error
	}

	// Backend is an audio backend playing the tones as MIDI notes. The note
	// on messages are sent at the start of the tone and the note offs after
	// its duration, timed with time.AfterFunc.
	Backend struct {
		mu       sync.Mutex
		out      Sender
		start    time.Time
		Channel  uint8
		Velocity uint8
		log      *slog.Logger
		active   [128]int // tones currently holding each key

		afterFunc func(d time.Duration, f func())
	}
)

// LowestNote is the MIDI note of pitch 0, the open lowest string (E2).
const LowestNote = 40

var ErrNoDriver = errors.New("no MIDI driver available")

// NewContext opens the rtmidi driver. If that fails, the context has no
// ports.
func NewContext() *RTMIDIContext {
	driver, _ := rtmididrv.New()
	return &RTMIDIContext{driver: driver}
}

// Outputs iterates over the MIDI output ports.
func (c *RTMIDIContext) Outputs(yield func(drivers.Out) bool) {
	if c.driver == nil {
		return
	}
	outs, err := c.driver.Outs()
	if err != nil {
		return
	}
	for _, out := range outs {
		if !yield(out) {
			return
		}
	}
}

// OpenBackend opens the first output port whose name starts with
// namePrefix and returns a backend playing to it. An empty prefix takes the
// first port.
func (c *RTMIDIContext) OpenBackend(namePrefix string, logger *slog.Logger) (*Backend, error) {
	if c.driver == nil {
		return nil, ErrNoDriver
	}
	for out := range c.Outputs {
		if !strings.HasPrefix(out.String(), namePrefix) {
			continue
		}
		if err := out.Open(); err != nil {
			return nil, fmt.Errorf("opening MIDI output %q failed: %w", out.String(), err)
		}
		b := NewBackend(out, logger)
		b.log.Info("opened MIDI output", "port", out.String())
		return b, nil
	}
	return nil, fmt.Errorf("could not find a MIDI output starting with %q", namePrefix)
}

func (c *RTMIDIContext) Close() {
	if c.driver == nil {
		return
	}
	c.driver.Close()
}

func NewBackend(out Sender, logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Backend{
		out:       out,
		start:     time.Now(),
		Velocity:  100,
		log:       logger,
		afterFunc: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// Ready is closed at once: MIDI ports need no loading.
func (b *Backend) Ready() <-chan struct{} {
	ret := make(chan struct{})
	close(ret)
	return ret
}

// Now returns the seconds since the backend was created.
func (b *Backend) Now() float64 {
	return time.Since(b.start).Seconds()
}

// Schedule sends a note on at the start of the tone and a note off after
// it. Rests and pitches outside the MIDI range are ignored.
func (b *Backend) Schedule(tone tracker.Tone) {
	if tone.Rest {
		return
	}
	n := LowestNote + tone.Pitch
	if n < 0 || n > 127 {
		b.log.Debug("pitch outside MIDI range", "pitch", tone.Pitch)
		return
	}
	key := uint8(n)
	delay := seconds(tone.Start - b.Now())
	noteOn := func() { b.noteOn(key) }
	noteOff := func() { b.noteOff(key) }
	if delay <= 0 {
		noteOn()
	} else {
		b.afterFunc(delay, noteOn)
	}
	b.afterFunc(max(delay, 0)+seconds(tone.Duration), noteOff)
}

// noteOn retriggers a key that is still sounding, so that the note off of
// the earlier tone cannot cut the new one.
func (b *Backend) noteOn(key uint8) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active[key] > 0 {
		b.send(midi.NoteOff(b.Channel, key))
	}
	b.active[key]++
	b.send(midi.NoteOn(b.Channel, key, b.Velocity))
}

// noteOff releases the key once all the tones holding it have ended.
func (b *Backend) noteOff(key uint8) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active[key] == 0 {
		return
	}
	b.active[key]--
	if b.active[key] == 0 {
		b.send(midi.NoteOff(b.Channel, key))
	}
}

// send must be called with mu held.
func (b *Backend) send(msg midi.Message) {
	if err := b.out.Send(msg); err != nil {
		b.log.Warn("sending MIDI message failed", "msg", msg.String(), "err", err)
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
