package gioui

import (
	"fmt"
	"strconv"
	"strings"

	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/vsariola/tabula/tracker"
)

type (
	// DialogKind is the modal dialog being shown.
	DialogKind int

	// Dialog is a modal dialog editing one value of the measure under the
	// cursor. While it is open, the model ignores all key input.
	Dialog struct {
		Kind   DialogKind
		Editor widget.Editor
		Ok     widget.Clickable
		Cancel widget.Clickable
		Error  string
	}
)

const (
	NoDialog DialogKind = iota
	TempoDialog
	TimeSignatureDialog
)

// Open shows the dialog with the given initial text.
func (d *Dialog) Open(m *tracker.Model, kind DialogKind, initial string) {
	d.Kind = kind
	d.Error = ""
	d.Editor.SingleLine = true
	d.Editor.Submit = true
	d.Editor.SetText(initial)
	m.ModalOpen().SetValue(true)
}

func (d *Dialog) close(m *tracker.Model) {
	d.Kind = NoDialog
	m.ModalOpen().SetValue(false)
}

// apply validates the text and issues the command. It returns false and
// sets Error if the text is not valid.
func (d *Dialog) apply(m *tracker.Model) bool {
	text := strings.TrimSpace(d.Editor.Text())
	switch d.Kind {
	case TempoDialog:
		bpm, err := strconv.ParseFloat(text, 64)
		if err != nil || bpm <= 0 {
			d.Error = fmt.Sprintf("%q is not a valid tempo", text)
			return false
		}
		m.Edit().SetTempo(bpm)
	case TimeSignatureDialog:
		if !ValidTimeSignature(text) {
			d.Error = fmt.Sprintf("%q is not a valid time signature", text)
			return false
		}
		m.Edit().SetTimeSignature(text)
	}
	return true
}

// ValidTimeSignature accepts signatures like "4/4" or "7/8": a positive
// number of beats over a power of two.
func ValidTimeSignature(s string) bool {
	beats, unit, ok := strings.Cut(s, "/")
	if !ok {
		return false
	}
	b, err := strconv.Atoi(beats)
	if err != nil || b <= 0 || b > 64 {
		return false
	}
	u, err := strconv.Atoi(unit)
	if err != nil || u <= 0 || u > 64 {
		return false
	}
	return u&(u-1) == 0
}

func (d *Dialog) Layout(gtx C, th *Theme, m *tracker.Model) D {
	if d.Kind == NoDialog {
		return D{}
	}
	for {
		e, ok := d.Editor.Update(gtx)
		if !ok {
			break
		}
		if _, ok := e.(widget.SubmitEvent); ok && d.apply(m) {
			d.close(m)
			return D{}
		}
	}
	for {
		e, ok := gtx.Event(key.Filter{Focus: &d.Editor, Name: key.NameEscape})
		if !ok {
			break
		}
		if e, ok := e.(key.Event); ok && e.State == key.Press {
			d.close(m)
			return D{}
		}
	}
	if d.Ok.Clicked(gtx) && d.apply(m) {
		d.close(m)
		return D{}
	}
	if d.Cancel.Clicked(gtx) {
		d.close(m)
		return D{}
	}
	if !gtx.Source.Focused(&d.Editor) {
		gtx.Execute(key.FocusCmd{Tag: &d.Editor})
	}
	title := "Tempo (BPM)"
	if d.Kind == TimeSignatureDialog {
		title = "Time signature"
	}
	paint.Fill(gtx.Ops, dialogBgColor)
	return layout.Center.Layout(gtx, func(gtx C) D {
		gtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(320))
		gtx.Constraints.Min.X = gtx.Constraints.Max.X
		return layout.UniformInset(unit.Dp(20)).Layout(gtx, func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(Label(title, highEmphasisTextColor, th.Material.Shaper)),
				layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
				layout.Rigid(material.Editor(th.Material, &d.Editor, "").Layout),
				layout.Rigid(func(gtx C) D {
					if d.Error == "" {
						return D{}
					}
					return Label(d.Error, errorColor, th.Material.Shaper)(gtx)
				}),
				layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
				layout.Rigid(func(gtx C) D {
					return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceStart}.Layout(gtx,
						layout.Rigid(HighEmphasisButton(th.Material, &d.Ok, "Ok").Layout),
						layout.Rigid(LowEmphasisButton(th.Material, &d.Cancel, "Cancel").Layout),
					)
				}),
			)
		})
	})
}
