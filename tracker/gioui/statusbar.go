package gioui

import (
	"fmt"
	"strconv"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"github.com/vsariola/tabula"
	"github.com/vsariola/tabula/tracker"
	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StatusBar is the toolbar above the tab rows: transport, tempo, time
// signature, layout and a description of the note under the cursor.
type StatusBar struct {
	Play          *ActionClickable
	Undo          *ActionClickable
	Redo          *ActionClickable
	Tempo         widget.Clickable
	TimeSignature widget.Clickable
	LayoutMode    widget.Clickable
}

var titleCaser = cases.Title(language.English)

func NewStatusBar(m *tracker.Model) *StatusBar {
	return &StatusBar{
		Play: NewActionClickable(m.Transport().Toggle()),
		Undo: NewActionClickable(m.Edit().Undo()),
		Redo: NewActionClickable(m.Edit().Redo()),
	}
}

// NoteDescription describes the note at the cursor, e.g. "Measure 2, note 1:
// Dotted Quarter".
func NoteDescription(track tabula.Track, c tabula.Cursor) string {
	note, ok := track.NoteAt(c.Position)
	if !ok {
		return ""
	}
	what := "Measure Rest"
	if len(track.Measures[c.Measure].Notes) > 0 {
		name := note.Duration.Name()
		if note.Dotted {
			name = "dotted " + name
		}
		if note.IsRest() {
			name += " rest"
		}
		what = titleCaser.String(name)
	}
	return fmt.Sprintf("Measure %d, note %d, string %d: %s", c.Measure+1, c.Note+1, c.String+1, what)
}

func (s *StatusBar) Layout(gtx C, th *Theme, t *Tracker) D {
	m := t.Model
	s.Play.Update(gtx)
	s.Undo.Update(gtx)
	s.Redo.Update(gtx)
	track := m.Track()
	measure := track.Measures[min(m.Cursor().Measure, len(track.Measures)-1)]
	if s.Tempo.Clicked(gtx) && !m.Transport().Playing() {
		t.Dialog.Open(m, TempoDialog, strconv.FormatFloat(measure.BPM, 'f', -1, 64))
	}
	if s.TimeSignature.Clicked(gtx) && !m.Transport().Playing() {
		t.Dialog.Open(m, TimeSignatureDialog, measure.TimeSignature)
	}
	if s.LayoutMode.Clicked(gtx) {
		t.TabRows.ToggleMode()
	}
	hint := func(action string) string {
		if h := m.Bindings().Hint(action, shortcutName()); h != "" {
			return " (" + h + ")"
		}
		return ""
	}
	playing := m.Transport().Playing()
	playDesc := "Play" + hint("TogglePlay")
	if playing {
		playDesc = "Stop" + hint("TogglePlay")
	}
	timeSig := measure.TimeSignature
	if timeSig == "" {
		timeSig = tabula.DefaultTimeSignature
	}
	macro := func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(IconButton(th.Material, &s.Play.Clickable, PlayIcon(playing), s.Play.Action.Enabled(), playDesc).Layout),
			layout.Rigid(IconButton(th.Material, &s.Undo.Clickable, icons.ContentUndo, s.Undo.Action.Enabled(), "Undo"+hint("Undo")).Layout),
			layout.Rigid(IconButton(th.Material, &s.Redo.Clickable, icons.ContentRedo, s.Redo.Action.Enabled(), "Redo"+hint("Redo")).Layout),
			layout.Rigid(LowEmphasisButton(th.Material, &s.Tempo, strconv.FormatFloat(measure.BPM, 'f', -1, 64)+" BPM").Layout),
			layout.Rigid(LowEmphasisButton(th.Material, &s.TimeSignature, timeSig).Layout),
			layout.Rigid(LowEmphasisButton(th.Material, &s.LayoutMode, titleCaser.String(t.TabRows.Mode.String())).Layout),
			layout.Flexed(1, func(gtx C) D {
				return layout.E.Layout(gtx, Label(NoteDescription(track, m.Cursor()), mediumEmphasisTextColor, th.Material.Shaper))
			}),
		)
	}
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx C) D {
			paint.FillShape(gtx.Ops, surfaceColor, clip.Rect{Max: gtx.Constraints.Min}.Op())
			return D{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return layout.UniformInset(unit.Dp(4)).Layout(gtx, macro)
		}),
	)
}
