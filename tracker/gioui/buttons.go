package gioui

import (
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/vsariola/tabula/tracker"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// ActionClickable is a clickable that performs a tracker.Action when clicked.
type ActionClickable struct {
	Action    tracker.Action
	Clickable widget.Clickable
}

func NewActionClickable(a tracker.Action) *ActionClickable {
	return &ActionClickable{Action: a}
}

// Update performs the action once for every click since the last frame.
func (a *ActionClickable) Update(gtx C) {
	for a.Clickable.Clicked(gtx) {
		a.Action.Do()
	}
}

var iconCache = map[*byte]*widget.Icon{}

// widgetForIcon returns a widget for IconVG data, but caching the results
func widgetForIcon(icon []byte) *widget.Icon {
	if widget, ok := iconCache[&icon[0]]; ok {
		return widget
	}
	widget, err := widget.NewIcon(icon)
	if err != nil {
		panic(err)
	}
	iconCache[&icon[0]] = widget
	return widget
}

func IconButton(th *material.Theme, w *widget.Clickable, icon []byte, enabled bool, description string) material.IconButtonStyle {
	ret := material.IconButton(th, w, widgetForIcon(icon), description)
	ret.Background = transparent
	ret.Inset = layout.UniformInset(unit.Dp(6))
	if enabled {
		ret.Color = primaryColor
	} else {
		ret.Color = disabledTextColor
	}
	return ret
}

// PlayIcon returns the icon of the play toggle: stop while playing, play
// otherwise.
func PlayIcon(playing bool) []byte {
	if playing {
		return icons.AVStop
	}
	return icons.AVPlayArrow
}

func LowEmphasisButton(th *material.Theme, w *widget.Clickable, text string) material.ButtonStyle {
	ret := material.Button(th, w, text)
	ret.Color = th.Palette.Fg
	ret.Background = transparent
	ret.Inset = layout.UniformInset(unit.Dp(6))
	return ret
}

func HighEmphasisButton(th *material.Theme, w *widget.Clickable, text string) material.ButtonStyle {
	ret := material.Button(th, w, text)
	ret.Color = th.Palette.ContrastFg
	ret.Background = th.Palette.ContrastBg
	ret.Inset = layout.UniformInset(unit.Dp(6))
	return ret
}
