package tracker

import "github.com/vsariola/tabula"

type (
	// Document gives read access to the track owned by the document store.
	// The returned Track must be treated as read-only.
	Document interface {
		Track() tabula.Track
	}

	// MeasureCommands are the structural commands on measures. The model
	// issues them in response to key input and reads the resulting track
	// shape afterwards; it does not validate their effects.
	MeasureCommands interface {
		InsertMeasure(index int)
		DeleteMeasure(index int)
		SetTempo(measure int, bpm float64)
		SetTimeSignature(measure int, timeSignature string)
	}

	// NoteCommands are the commands on the notes of a measure. All of them
	// take the editing cursor the command applies to.
	NoteCommands interface {
		InsertNote(c tabula.Cursor)
		DeleteNote(c tabula.Cursor)
		ChangeNote(c tabula.Cursor, fret int)
		ChangeNoteLength(c tabula.Cursor, d tabula.Duration)
		ToggleDotted(c tabula.Cursor)
		CopyNote(c tabula.Cursor)
		CutNote(c tabula.Cursor)
		PasteNote(c tabula.Cursor, note tabula.Note)
	}

	// Clipboard holds the last copied or cut note.
	Clipboard interface {
		Clipboard() (tabula.Note, bool)
	}

	// History is implemented by document stores that can undo changes.
	History interface {
		Undo() bool
		Redo() bool
		CanUndo() bool
		CanRedo() bool
	}
)
