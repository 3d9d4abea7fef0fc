// Package store is the document store of the editor: it owns the track and
// implements the measure and note commands, the clipboard, the undo history
// and the recovery file.
package store

import (
	"io"
	"log/slog"
	"slices"

	"github.com/vsariola/tabula"
)

// Store is an in-memory document store. It is not safe for concurrent use;
// like the editor model, it is owned by the GUI goroutine.
type Store struct {
	track     tabula.Track
	clipboard *tabula.Note

	undoStack []tabula.Track
	redoStack []tabula.Track

	recoveryFilePath     string
	changedSinceRecovery bool

	log *slog.Logger
}

const maxUndo = 64

// New returns a store holding a copy of track. A track without measures gets
// a single empty measure at tabula.DefaultTempo.
func New(track tabula.Track, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if len(track.Measures) == 0 {
		track = tabula.NewTrack(tabula.DefaultTempo, tabula.DefaultTimeSignature)
	}
	return &Store{track: track.Copy(), log: logger}
}

// Track returns the current track. It must not be modified by the caller.
func (s *Store) Track() tabula.Track { return s.track }

// Clipboard returns the last copied or cut note.
func (s *Store) Clipboard() (tabula.Note, bool) {
	if s.clipboard == nil {
		return tabula.Note{}, false
	}
	return s.clipboard.Copy(), true
}

// change snapshots the track for undo and returns it for modification.
func (s *Store) change() *tabula.Track {
	s.undoStack = append(s.undoStack, s.track.Copy())
	if len(s.undoStack) > maxUndo {
		s.undoStack = slices.Delete(s.undoStack, 0, len(s.undoStack)-maxUndo)
	}
	s.redoStack = s.redoStack[:0]
	s.changedSinceRecovery = true
	return &s.track
}

func (s *Store) CanUndo() bool { return len(s.undoStack) > 0 }
func (s *Store) CanRedo() bool { return len(s.redoStack) > 0 }

func (s *Store) Undo() bool {
	if len(s.undoStack) == 0 {
		return false
	}
	s.redoStack = append(s.redoStack, s.track)
	s.track = s.undoStack[len(s.undoStack)-1]
	s.undoStack = s.undoStack[:len(s.undoStack)-1]
	s.changedSinceRecovery = true
	return true
}

func (s *Store) Redo() bool {
	if len(s.redoStack) == 0 {
		return false
	}
	s.undoStack = append(s.undoStack, s.track)
	s.track = s.redoStack[len(s.redoStack)-1]
	s.redoStack = s.redoStack[:len(s.redoStack)-1]
	s.changedSinceRecovery = true
	return true
}

func (s *Store) validMeasure(i int) bool { return i >= 0 && i < len(s.track.Measures) }

func (s *Store) validNote(c tabula.Cursor) bool {
	return s.validMeasure(c.Measure) && c.Note >= 0 && c.Note < len(s.track.Measures[c.Measure].Notes)
}
