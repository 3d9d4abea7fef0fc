//go:build cgo

package main

import (
	"log/slog"

	"github.com/vsariola/tabula/tracker/gomidi"
)

type midiBackend struct {
	*gomidi.Backend
	context *gomidi.RTMIDIContext
}

func openMIDI(prefix string, logger *slog.Logger) (backend, error) {
	context := gomidi.NewContext()
	b, err := context.OpenBackend(prefix, logger)
	if err != nil {
		context.Close()
		return nil, err
	}
	return &midiBackend{Backend: b, context: context}, nil
}

func (b *midiBackend) Close() error {
	b.context.Close()
	return nil
}

func midiOutputs() ([]string, error) {
	context := gomidi.NewContext()
	defer context.Close()
	var names []string
	for out := range context.Outputs {
		names = append(names, out.String())
	}
	return names, nil
}
