package gioui

import (
	"image"
	"image/color"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/vsariola/tabula/tracker"
)

type (
	AlertStyle struct {
		Bg   color.NRGBA
		Text color.NRGBA
	}

	AlertStyles struct {
		Info    AlertStyle
		Warning AlertStyle
		Error   AlertStyle
	}
)

var alertMargin = layout.UniformInset(unit.Dp(6))
var alertInset = layout.UniformInset(unit.Dp(6))

// LayoutAlerts draws the visible alerts stacked at the bottom of the window,
// the most important one lowest.
func LayoutAlerts(gtx C, th *Theme, alerts *tracker.Alerts) D {
	visible := alerts.Visible()
	if len(visible) > 0 {
		gtx.Execute(op.InvalidateCmd{At: gtx.Now.Add(50 * time.Millisecond)})
	}
	totalY := gtx.Dp(38)
	for _, alert := range visible {
		style := th.Alert.Info
		switch alert.Priority {
		case tracker.Warning:
			style = th.Alert.Warning
		case tracker.Error:
			style = th.Alert.Error
		}
		label := LabelStyle{Text: alert.Message, Color: style.Text, Font: labelDefaultFont, FontSize: unit.Sp(14), Shaper: th.Material.Shaper}
		m := op.Record(gtx.Ops)
		dims := alertInset.Layout(gtx, label.Layout)
		call := m.Stop()
		alertMargin.Layout(gtx, func(gtx C) D {
			return layout.S.Layout(gtx, func(gtx C) D {
				defer op.Offset(image.Pt(0, -totalY)).Push(gtx.Ops).Pop()
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				rect := image.Rect(0, 0, gtx.Constraints.Max.X, dims.Size.Y)
				paint.FillShape(gtx.Ops, style.Bg, clip.Rect(rect).Op())
				call.Add(gtx.Ops)
				return D{Size: rect.Max}
			})
		})
		totalY += dims.Size.Y + gtx.Dp(6)
	}
	return D{}
}
