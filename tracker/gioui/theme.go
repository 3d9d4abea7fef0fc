package gioui

import (
	"image/color"

	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

type Theme struct {
	Material *material.Theme
	Tab      TabStyle
	Alert    AlertStyles
}

// TabStyle holds the colors and fonts of the tab rows.
type TabStyle struct {
	Font          font.Font
	FontSize      unit.Sp
	StringColor   color.NRGBA
	BarColor      color.NRGBA
	FretColor     color.NRGBA
	RestColor     color.NRGBA
	HeaderColor   color.NRGBA
	CursorColor   color.NRGBA
	PlayColor     color.NRGBA
	PlayingColor  color.NRGBA
	SelectedColor color.NRGBA
}

var fontCollection = gofont.Collection()

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
var transparent = color.NRGBA{A: 0}

var primaryColor = color.NRGBA{R: 206, G: 147, B: 216, A: 255}
var secondaryColor = color.NRGBA{R: 128, G: 222, B: 234, A: 255}

var highEmphasisTextColor = color.NRGBA{R: 222, G: 222, B: 222, A: 222}
var mediumEmphasisTextColor = color.NRGBA{R: 153, G: 153, B: 153, A: 153}
var disabledTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 97}

var backgroundColor = color.NRGBA{R: 18, G: 18, B: 18, A: 255}
var surfaceColor = color.NRGBA{R: 37, G: 37, B: 38, A: 255}

var errorColor = color.NRGBA{R: 207, G: 102, B: 121, A: 255}
var warningColor = color.NRGBA{R: 251, G: 192, B: 45, A: 255}

var dialogBgColor = color.NRGBA{R: 0, G: 0, B: 0, A: 224}

var labelDefaultFont = fontCollection[6].Font
var labelDefaultFontSize = unit.Sp(16)

func NewTheme() *Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(fontCollection))
	th.Palette.Bg = backgroundColor
	th.Palette.Fg = highEmphasisTextColor
	th.Palette.ContrastBg = primaryColor
	th.Palette.ContrastFg = black
	return &Theme{
		Material: th,
		Tab: TabStyle{
			Font:          fontCollection[6].Font,
			FontSize:      unit.Sp(13),
			StringColor:   mediumEmphasisTextColor,
			BarColor:      highEmphasisTextColor,
			FretColor:     white,
			RestColor:     secondaryColor,
			HeaderColor:   primaryColor,
			CursorColor:   color.NRGBA{R: 100, G: 140, B: 255, A: 96},
			PlayColor:     color.NRGBA{R: 55, G: 55, B: 61, A: 255},
			PlayingColor:  color.NRGBA{R: 252, G: 186, B: 3, A: 96},
			SelectedColor: color.NRGBA{R: 255, G: 255, B: 130, A: 255},
		},
		Alert: AlertStyles{
			Info:    AlertStyle{Bg: surfaceColor, Text: highEmphasisTextColor},
			Warning: AlertStyle{Bg: warningColor, Text: black},
			Error:   AlertStyle{Bg: errorColor, Text: black},
		},
	}
}
