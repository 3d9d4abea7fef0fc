package tracker

import (
	"time"

	"github.com/vsariola/tabula"
)

type (
	// Transport is the playback engine. It walks the track one note at a
	// time, once per display frame checking whether the current note has
	// lasted long enough, and stops at the end of the track.
	Transport Model

	TransportState int

	transport struct {
		state     TransportState
		started   time.Time // when playback started
		reference time.Time // when the current note started
		frame     FrameHandle
	}

	transportStart  Transport
	transportStop   Transport
	transportToggle Transport
)

const (
	Idle TransportState = iota
	Running
	Stopping
)

func (s TransportState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	}
	return "unknown"
}

func (m *Model) Transport() *Transport { return (*Transport)(m) }

func (t *Transport) State() TransportState { return t.transport.state }
func (t *Transport) Playing() bool         { return t.transport.state == Running }

// Elapsed returns the time since playback started, or zero when idle.
func (t *Transport) Elapsed() time.Duration {
	if t.transport.state != Running {
		return 0
	}
	return t.clock.Now().Sub(t.transport.started)
}

func (t *Transport) Start() Action  { return MakeAction((*transportStart)(t)) }
func (t *Transport) Stop() Action   { return MakeAction((*transportStop)(t)) }
func (t *Transport) Toggle() Action { return MakeAction((*transportToggle)(t)) }

func (t *transportStart) Enabled() bool { return t.ready && t.transport.state == Idle }
func (t *transportStart) Do() {
	tr := (*Transport)(t)
	track := t.doc.Track()
	t.playing = track.Clamp(t.playing)
	now := t.clock.Now()
	t.transport = transport{state: Running, started: now, reference: now}
	t.log.Debug("playback started", "measure", t.playing.Measure, "note", t.playing.Note)
	tr.scheduleCurrent(track)
	t.transport.frame = t.frames.Request(tr)
}

func (t *transportStop) Enabled() bool { return true }
func (t *transportStop) Do()           { (*Transport)(t).stop() }

func (t *transportToggle) Enabled() bool {
	return t.transport.state != Idle || (*transportStart)(t).Enabled()
}
func (t *transportToggle) Do() {
	if t.transport.state != Idle {
		(*Transport)(t).stop()
		return
	}
	(*transportStart)(t).Do()
}

// stop cancels the pending frame and returns to Idle. Stopping an idle
// transport does nothing.
func (t *Transport) stop() {
	if t.transport.state == Idle {
		return
	}
	t.transport.state = Stopping
	if t.transport.frame != 0 {
		t.frames.Cancel(t.transport.frame)
	}
	t.transport = transport{state: Idle}
	t.log.Debug("playback stopped", "measure", t.playing.Measure, "note", t.playing.Note)
}

// Tick is called by the frame scheduler once per display frame while
// playing. When the current note has lasted its full duration, Tick advances
// the playing position and schedules the next note, or stops at the end of
// the track.
func (t *Transport) Tick(now time.Time) {
	if t.transport.state != Running {
		return // stale frame from a stopped session
	}
	t.transport.frame = 0
	track := t.doc.Track()
	t.playing = track.Clamp(t.playing)
	elapsed := float64(now.Sub(t.transport.reference)) / float64(time.Millisecond)
	if elapsed < track.ReplaySpeedAt(t.playing) {
		t.transport.frame = t.frames.Request(t)
		return
	}
	next, extend := NextPosition(track, t.playing)
	if extend {
		t.stop()
		return
	}
	t.playing = next
	t.cursor.Position = next
	t.transport.reference = now
	t.scheduleCurrent(track)
	t.transport.frame = t.frames.Request(t)
}

func (t *Transport) scheduleCurrent(track tabula.Track) {
	note, ok := track.NoteAt(t.playing)
	if !ok {
		return
	}
	ScheduleNote(t.backend, note, t.backend.Now(), track.ReplaySpeedAt(t.playing))
}
