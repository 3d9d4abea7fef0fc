package tracker

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vsariola/tabula"
)

// Model implements the mutable edit session state of the editor: the playing
// position, the editing cursor and the transport. It is owned by the GUI
// goroutine; everything else talks to it through the Broker. The track itself
// is owned by the document store and is only read through Document; all
// changes to it go through the measure and note commands.
type (
	Model struct {
		broker *Broker

		doc       Document
		measures  MeasureCommands
		notes     NoteCommands
		clipboard Clipboard
		history   History
		backend   AudioBackend
		frames    Frames
		clock     Clock
		log       *slog.Logger
		bindings  KeyBindings

		playing   tabula.Position
		cursor    tabula.Cursor
		transport transport

		ready     bool
		modalOpen bool
		alerts    []Alert
	}

	// Collaborators are the external parts the Model drives. Document,
	// Measures, Notes, Backend and Frames are required; the rest have
	// defaults.
	Collaborators struct {
		Document  Document
		Measures  MeasureCommands
		Notes     NoteCommands
		Clipboard Clipboard
		History   History
		Backend   AudioBackend
		Frames    Frames
		Clock     Clock
		Logger    *slog.Logger
		Bindings  KeyBindings
	}
)

func NewModel(broker *Broker, c Collaborators) *Model {
	m := &Model{
		broker:    broker,
		doc:       c.Document,
		measures:  c.Measures,
		notes:     c.Notes,
		clipboard: c.Clipboard,
		history:   c.History,
		backend:   c.Backend,
		frames:    c.Frames,
		clock:     c.Clock,
		log:       c.Logger,
		bindings:  c.Bindings,
	}
	if m.clock == nil {
		m.clock = SystemClock{}
	}
	if m.log == nil {
		m.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m.bindings == nil {
		m.bindings = DefaultKeyBindings()
	}
	return m
}

// Broker returns the broker the model receives its messages through.
func (m *Model) Broker() *Broker { return m.broker }

// Track returns the current track of the document store. The returned value
// must not be modified.
func (m *Model) Track() tabula.Track { return m.doc.Track() }

// Cursor returns the editing cursor.
func (m *Model) Cursor() tabula.Cursor { return m.cursor }

// PlayPosition returns the playing position.
func (m *Model) PlayPosition() tabula.Position { return m.playing }

// Ready reports whether the audio backend has finished loading.
func (m *Model) Ready() bool { return m.ready }

// ModalOpen is true while a modal dialog (tempo, time signature) is shown;
// all key input is ignored meanwhile.
func (m *Model) ModalOpen() Bool { return MakeBoolFromPtr(&m.modalOpen) }

// Bindings returns the key bindings used by HandleKey.
func (m *Model) Bindings() KeyBindings { return m.bindings }

// ProcessMsg handles a message sent through the broker.
func (m *Model) ProcessMsg(msg MsgToModel) {
	switch e := msg.Data.(type) {
	case BackendReady:
		if !m.ready {
			m.log.Debug("audio backend ready")
		}
		m.ready = true
	case Alert:
		m.Alerts().AddAlert(e)
	case func():
		e()
	case nil:
	default:
		m.log.Debug("unknown message to model", "type", fmt.Sprintf("%T", e))
	}
}

// Select moves the editing cursor to c, e.g. when a note is clicked, and
// synchronizes the playing position to it. Ignored while playing or while a
// modal dialog is open.
func (m *Model) Select(c tabula.Cursor) {
	if m.transport.state != Idle || m.modalOpen {
		return
	}
	m.setCursor(c)
}

func (m *Model) setCursor(c tabula.Cursor) {
	track := m.doc.Track()
	c.Position = track.Clamp(c.Position)
	c.String = AdjacentString(c.String, 0)
	m.cursor = c
	m.playing = c.Position
}

// clampPositions makes the cursor and the playing position valid again after
// the track changed under them.
func (m *Model) clampPositions() {
	track := m.doc.Track()
	m.cursor.Position = track.Clamp(m.cursor.Position)
	m.playing = track.Clamp(m.playing)
}
