package gioui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/tabula"
	"github.com/vsariola/tabula/store"
	"github.com/vsariola/tabula/tracker"
)

type silentBackend struct{}

func (silentBackend) Now() float64          { return 0 }
func (silentBackend) Schedule(tracker.Tone) {}

type failingRecovery struct{ calls int }

func (f *failingRecovery) SaveRecovery() error {
	f.calls++
	return errors.New("disk full")
}

func newTestTracker(t *testing.T, recovery Recovery) *Tracker {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	s := store.New(tabula.NewTrack(120, "4/4"), nil)
	frames := tracker.NewFrameQueue()
	m := tracker.NewModel(tracker.NewBroker(), tracker.Collaborators{
		Document:  s,
		Measures:  s,
		Notes:     s,
		Clipboard: s,
		History:   s,
		Backend:   silentBackend{},
		Frames:    frames,
	})
	return NewTracker(m, frames, recovery, nil)
}

func TestNewTrackerUsesDefaultPreferences(t *testing.T) {
	tr := newTestTracker(t, nil)
	assert.Equal(t, PageLayout, tr.TabRows.Mode)
	assert.Empty(t, tr.Alerts().Visible())
}

func TestSaveRecoveryFailureRaisesAlert(t *testing.T) {
	rec := &failingRecovery{}
	tr := newTestTracker(t, rec)
	tr.saveRecovery()
	require.Equal(t, 1, rec.calls)
	visible := tr.Alerts().Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, tracker.Warning, visible[0].Priority)
	assert.Equal(t, "disk full", visible[0].Message)
}

func TestSaveRecoveryWithoutStore(t *testing.T) {
	tr := newTestTracker(t, nil)
	tr.saveRecovery()
	assert.Empty(t, tr.Alerts().Visible())
}
