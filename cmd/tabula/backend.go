package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vsariola/tabula"
	"github.com/vsariola/tabula/beep"
	"github.com/vsariola/tabula/oto"
	"github.com/vsariola/tabula/synth"
	"github.com/vsariola/tabula/tracker"
)

// backend is an audio backend together with its life cycle.
type backend interface {
	tracker.AudioBackend
	Ready() <-chan struct{}
	Close() error
}

// synthBackend renders the tones with the built-in synth and plays them
// through oto.
type synthBackend struct {
	*synth.Synth
	context *oto.Context
	player  tabula.Closer
}

// beepBufferLength is the speaker buffer of the beep backend.
const beepBufferLength = 50 * time.Millisecond

func openBackend(name string, opts *options, logger *slog.Logger) (backend, error) {
	switch name {
	case "synth":
		context, err := oto.NewContext(opts.SampleRate)
		if err != nil {
			return nil, err
		}
		s := synth.New(context.SampleRate())
		return &synthBackend{Synth: s, context: context, player: context.Play(s.Render)}, nil
	case "beep":
		b, err := beep.New(opts.SampleRate, beepBufferLength)
		if err != nil {
			return nil, err
		}
		return b, nil
	case "midi":
		return openMIDI(opts.MIDIOut, logger)
	}
	return nil, fmt.Errorf("unknown backend %q: must be one of synth, beep, midi", name)
}

func (b *synthBackend) Ready() <-chan struct{} { return b.context.Ready() }

func (b *synthBackend) Close() error {
	return errors.Join(b.player.Close(), b.context.Close())
}
