//go:build !cgo

package main

import (
	"errors"
	"log/slog"
)

// without cgo, there is no rtmidi driver
var errNoMIDI = errors.New("MIDI is not available in builds without cgo")

func openMIDI(prefix string, logger *slog.Logger) (backend, error) {
	return nil, errNoMIDI
}

func midiOutputs() ([]string, error) {
	return nil, errNoMIDI
}
