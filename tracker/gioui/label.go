package gioui

import (
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
)

type LabelStyle struct {
	Text      string
	Color     color.NRGBA
	Alignment layout.Direction
	Font      font.Font
	FontSize  unit.Sp
	Shaper    *text.Shaper
}

func (l LabelStyle) Layout(gtx layout.Context) layout.Dimensions {
	return l.Alignment.Layout(gtx, func(gtx C) D {
		gtx.Constraints.Min = image.Point{}
		return widget.Label{Alignment: text.Start, MaxLines: 1}.Layout(gtx, l.Shaper, l.Font, l.FontSize, l.Text, colorMaterial(gtx.Ops, l.Color))
	})
}

func Label(str string, color color.NRGBA, shaper *text.Shaper) layout.Widget {
	return LabelStyle{Text: str, Color: color, Font: labelDefaultFont, FontSize: labelDefaultFontSize, Alignment: layout.W, Shaper: shaper}.Layout
}

func colorMaterial(ops *op.Ops, c color.NRGBA) op.CallOp {
	macro := op.Record(ops)
	paint.ColorOp{Color: c}.Add(ops)
	return macro.Stop()
}
