package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vsariola/tabula"
)

// RecoveryFileName is the name of the recovery file in the user config
// directory.
const RecoveryFileName = "recovery.yml"

// SetRecoveryFilePath sets where SaveRecovery writes the track. An empty path
// disables recovery files.
func (s *Store) SetRecoveryFilePath(path string) {
	s.recoveryFilePath = path
}

func (s *Store) ChangedSinceRecovery() bool { return s.changedSinceRecovery }

// SaveRecovery writes the track to the recovery file if it has changed since
// the last save.
func (s *Store) SaveRecovery() error {
	if !s.changedSinceRecovery {
		return nil
	}
	if s.recoveryFilePath == "" {
		return errors.New("no recovery file path")
	}
	var buf bytes.Buffer
	if err := tabula.WriteTrack(&buf, s.track); err != nil {
		return fmt.Errorf("could not marshal recovery data: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.recoveryFilePath), os.ModePerm); err != nil {
		return fmt.Errorf("could not create recovery directory: %w", err)
	}
	if err := os.WriteFile(s.recoveryFilePath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("could not write recovery file: %w", err)
	}
	s.changedSinceRecovery = false
	s.log.Debug("saved recovery file", "path", s.recoveryFilePath)
	return nil
}

// LoadRecovery reads a track from a recovery file. ok is false if the file
// does not exist.
func LoadRecovery(path string) (track tabula.Track, ok bool, err error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return tabula.Track{}, false, nil
	}
	if err != nil {
		return tabula.Track{}, false, fmt.Errorf("could not open recovery file: %w", err)
	}
	defer f.Close()
	track, err = tabula.ReadTrack(f)
	if err != nil {
		return tabula.Track{}, false, fmt.Errorf("could not read recovery file %s: %w", path, err)
	}
	return track, true, nil
}
