package gioui

import (
	"image"
	"image/color"
	"strconv"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/vsariola/tabula"
	"github.com/vsariola/tabula/tracker"
)

// TabRows draws the track as rows of tablature and selects notes on click.
type TabRows struct {
	Mode     LayoutMode
	scroll   image.Point
	geometry Geometry
	followed tabula.Position
}

func (tr *TabRows) metrics(gtx C, p TabPreferences) Metrics {
	return Metrics{
		NoteWidth:     max(gtx.Dp(unit.Dp(p.NoteWidth)), 1),
		HeaderWidth:   gtx.Dp(unit.Dp(p.HeaderWidth)),
		StringSpacing: max(gtx.Dp(unit.Dp(p.StringSpacing)), 1),
		RowPadding:    gtx.Dp(unit.Dp(p.RowPadding)),
	}
}

// ToggleMode switches between the page and the linear layout.
func (tr *TabRows) ToggleMode() {
	if tr.Mode == PageLayout {
		tr.Mode = LinearLayout
	} else {
		tr.Mode = PageLayout
	}
	tr.scroll = image.Point{}
}

func (tr *TabRows) Layout(gtx C, th *Theme, m *tracker.Model, prefs Preferences) D {
	size := gtx.Constraints.Max
	track := m.Track()
	tr.geometry = ComputeGeometry(track, tr.metrics(gtx, prefs.Tab), tr.Mode, size.X)
	tr.update(gtx, m, track, size)
	tr.follow(gtx, m.PlayPosition(), size, prefs.FollowMargin)

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, tr)
	defer op.Offset(tr.scroll.Mul(-1)).Push(gtx.Ops).Pop()
	playing := m.Transport().Playing()
	for i, measure := range track.Measures {
		tr.layoutMeasure(gtx, th, track, i, measure, m.Cursor(), m.PlayPosition(), playing)
	}
	return D{Size: size}
}

func (tr *TabRows) update(gtx C, m *tracker.Model, track tabula.Track, size image.Point) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  tr,
			Kinds:   pointer.Press | pointer.Scroll,
			ScrollX: pointer.ScrollRange{Min: -1 << 20, Max: 1 << 20},
			ScrollY: pointer.ScrollRange{Min: -1 << 20, Max: 1 << 20},
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press:
			pt := e.Position.Round().Add(tr.scroll)
			if c, ok := tr.geometry.HitTest(track, pt); ok {
				m.Select(c)
			}
		case pointer.Scroll:
			tr.scroll = tr.clampScroll(tr.scroll.Add(image.Pt(int(e.Scroll.X), int(e.Scroll.Y))), size)
		}
	}
}

func (tr *TabRows) clampScroll(p image.Point, size image.Point) image.Point {
	p.X = min(max(p.X, 0), max(tr.geometry.Size.X-size.X, 0))
	p.Y = min(max(p.Y, 0), max(tr.geometry.Size.Y-size.Y, 0))
	return p
}

// follow keeps the playing position visible when it moves.
func (tr *TabRows) follow(gtx C, pos tabula.Position, size image.Point, margin int) {
	if pos == tr.followed {
		return
	}
	tr.followed = pos
	pt := tr.geometry.NotePoint(pos)
	if tr.Mode == LinearLayout {
		tr.scroll.X = FollowScroll(tr.scroll.X, pt.X, size.X, gtx.Dp(unit.Dp(margin)))
		return
	}
	rowH := tr.geometry.Metrics.RowHeight()
	if pt.Y+rowH > tr.scroll.Y+size.Y {
		tr.scroll.Y = pt.Y + rowH - size.Y
	}
	if pt.Y < tr.scroll.Y {
		tr.scroll.Y = pt.Y
	}
}

func (tr *TabRows) layoutMeasure(gtx C, th *Theme, track tabula.Track, index int, measure tabula.Measure, cursor tabula.Cursor, playPos tabula.Position, playing bool) {
	g := tr.geometry
	box := g.Boxes[index]
	style := th.Tab
	top := g.StringY(tabula.NumStrings - 1)
	bottom := g.StringY(0)
	for str := 0; str < tabula.NumStrings; str++ {
		y := box.Min.Y + g.StringY(str)
		fillRect(gtx, style.StringColor, image.Rect(box.Min.X, y, box.Max.X, y+1))
	}
	fillRect(gtx, style.BarColor, image.Rect(box.Max.X-1, box.Min.Y+top, box.Max.X, box.Min.Y+bottom+1))

	var prev *tabula.Measure
	if index > 0 {
		prev = &track.Measures[index-1]
	}
	if prev == nil || prev.TimeSignature != measure.TimeSignature {
		tr.text(gtx, th, style.HeaderColor, measure.TimeSignature, image.Pt(box.Min.X+2, box.Min.Y+top))
	}
	if prev == nil || prev.BPM != measure.BPM {
		tr.text(gtx, th, style.HeaderColor, strconv.FormatFloat(measure.BPM, 'f', -1, 64)+" bpm", image.Pt(box.Min.X+2, box.Min.Y))
	}

	for n := 0; n < max(len(measure.Notes), 1); n++ {
		pos := tabula.Position{Measure: index, Note: n}
		pt := g.NotePoint(pos)
		col := image.Rect(pt.X, box.Min.Y, pt.X+g.Metrics.NoteWidth, box.Max.Y)
		if pos == playPos {
			c := style.PlayColor
			if playing {
				c = style.PlayingColor
			}
			fillRect(gtx, c, col)
		}
		if pos == cursor.Position {
			y := box.Min.Y + g.StringY(cursor.String)
			fillRect(gtx, style.CursorColor, image.Rect(col.Min.X, y-g.Metrics.StringSpacing/2, col.Max.X, y+g.Metrics.StringSpacing/2))
		}
		note, _ := track.NoteAt(pos)
		if len(measure.Notes) > 0 {
			sym := string(note.Duration)
			if note.Dotted {
				sym += "."
			}
			tr.text(gtx, th, style.HeaderColor, sym, image.Pt(col.Min.X+2, box.Min.Y+bottom+g.Metrics.StringSpacing/2))
		}
		if note.IsRest() {
			tr.text(gtx, th, style.RestColor, "r", image.Pt(col.Min.X+g.Metrics.NoteWidth/3, box.Min.Y+g.StringY(3)-g.Metrics.StringSpacing/2))
			continue
		}
		for i, str := range note.Strings {
			if i >= len(note.Frets) {
				break
			}
			c := style.FretColor
			if pos == cursor.Position && str == cursor.String {
				c = style.SelectedColor
			}
			tr.text(gtx, th, c, strconv.Itoa(note.Frets[i]), image.Pt(col.Min.X+g.Metrics.NoteWidth/3, box.Min.Y+g.StringY(str)-g.Metrics.StringSpacing/2))
		}
	}
}

func (tr *TabRows) text(gtx C, th *Theme, c color.NRGBA, s string, pt image.Point) {
	if s == "" {
		return
	}
	defer op.Offset(pt).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Constraints{Max: image.Pt(gtx.Dp(unit.Dp(200)), 2*tr.geometry.Metrics.StringSpacing)}
	LabelStyle{Text: s, Color: c, Font: th.Tab.Font, FontSize: th.Tab.FontSize, Shaper: th.Material.Shaper}.Layout(gtx)
}

func fillRect(gtx C, c color.NRGBA, r image.Rectangle) {
	paint.FillShape(gtx.Ops, c, clip.Rect(r).Op())
}
