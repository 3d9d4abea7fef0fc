package tracker

import "github.com/vsariola/tabula"

// Edit returns the Edit view of the model, containing the edit commands that
// are issued to the document store at the editing cursor.
func (m *Model) Edit() *Edit { return (*Edit)(m) }

type Edit Model

// SetFret sets the fret played on the focused string of the note under the
// cursor. tabula.Rest turns the note into a rest.
func (m *Edit) SetFret(fret int) {
	m.notes.ChangeNote(m.cursor, fret)
	(*Model)(m).clampPositions()
}

func (m *Edit) SetDuration(d tabula.Duration) {
	if !d.Valid() {
		return
	}
	m.notes.ChangeNoteLength(m.cursor, d)
}

func (m *Edit) ToggleDotted() {
	m.notes.ToggleDotted(m.cursor)
}

// InsertNote inserts a new note after the cursor and moves the cursor to it.
// In an empty measure the new note becomes the first one and the cursor stays.
func (m *Edit) InsertNote() {
	m.notes.InsertNote(m.cursor)
	m.advanceAfterInsert()
}

// DeleteNote deletes the note under the cursor, keeping the cursor valid:
// deleting a trailing rest steps the cursor back first and deleting an empty
// measure removes the measure.
func (m *Edit) DeleteNote() {
	track := m.doc.Track()
	c := m.cursor
	notes := track.Measures[c.Measure].Notes
	switch {
	case len(notes) > 1 && c.Note == len(notes)-1 && notes[c.Note].IsRest():
		m.cursor.Note--
		m.notes.DeleteNote(c)
	case len(notes) == 0:
		m.measures.DeleteMeasure(c.Measure)
		if c.Measure == len(m.doc.Track().Measures) {
			m.cursor = tabula.Cursor{Position: tabula.Position{Measure: c.Measure - 1}, String: c.String}
		}
	default:
		m.notes.DeleteNote(c)
	}
	(*Model)(m).clampPositions()
}

// Copy copies the note under the cursor to the clipboard. Empty measures have
// nothing to copy.
func (m *Edit) Copy() {
	if len(m.doc.Track().Measures[m.cursor.Measure].Notes) == 0 {
		return
	}
	m.notes.CopyNote(m.cursor)
}

// Cut moves the note under the cursor to the clipboard. Cutting the last note
// of a measure steps the cursor back one note.
func (m *Edit) Cut() {
	c := m.cursor
	notes := m.doc.Track().Measures[c.Measure].Notes
	if len(notes) == 0 {
		return
	}
	if len(notes) > 1 && c.Note == len(notes)-1 {
		m.cursor.Note--
	}
	m.notes.CutNote(c)
	(*Model)(m).clampPositions()
}

// Paste inserts the clipboard note after the cursor and moves the cursor to
// it, like InsertNote.
func (m *Edit) Paste() {
	if m.clipboard == nil {
		return
	}
	note, ok := m.clipboard.Clipboard()
	if !ok {
		return
	}
	m.notes.PasteNote(m.cursor, note.Copy())
	m.advanceAfterInsert()
}

func (m *Edit) advanceAfterInsert() {
	track := m.doc.Track()
	if len(track.Measures[m.cursor.Measure].Notes) != 1 {
		m.cursor.Note++
	}
	(*Model)(m).clampPositions()
}

// SetTempo sets the tempo of the measure under the cursor, clamped to
// [MinTempo, MaxTempo].
func (m *Edit) SetTempo(bpm float64) {
	m.measures.SetTempo(m.cursor.Measure, min(max(bpm, MinTempo), MaxTempo))
}

func (m *Edit) SetTimeSignature(sig string) {
	m.measures.SetTimeSignature(m.cursor.Measure, sig)
}

func (m *Edit) Undo() Action { return MakeAction((*editUndo)(m)) }
func (m *Edit) Redo() Action { return MakeAction((*editRedo)(m)) }

type (
	editUndo Edit
	editRedo Edit
)

func (m *editUndo) Enabled() bool { return m.history != nil && m.history.CanUndo() }
func (m *editUndo) Do() {
	m.history.Undo()
	(*Model)(m).clampPositions()
}

func (m *editRedo) Enabled() bool { return m.history != nil && m.history.CanRedo() }
func (m *editRedo) Do() {
	m.history.Redo()
	(*Model)(m).clampPositions()
}

const (
	MinTempo = 1
	MaxTempo = 999
)
