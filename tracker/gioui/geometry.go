package gioui

import (
	"image"

	"github.com/vsariola/tabula"
)

type (
	// LayoutMode selects how the measures are arranged on screen.
	LayoutMode int

	// Geometry is the pixel layout of the tab rows: one box per measure. It
	// is computed every frame and used both for drawing and hit testing.
	Geometry struct {
		Boxes   []image.Rectangle
		Metrics Metrics
		Size    image.Point
	}

	// Metrics are the pixel sizes the geometry is computed from.
	Metrics struct {
		NoteWidth     int
		HeaderWidth   int
		StringSpacing int
		RowPadding    int
	}
)

const (
	PageLayout LayoutMode = iota
	LinearLayout
)

func (m LayoutMode) String() string {
	if m == LinearLayout {
		return "linear"
	}
	return "page"
}

func (m Metrics) MeasureWidth(measure tabula.Measure) int {
	return m.HeaderWidth + m.NoteWidth*max(len(measure.Notes), 1)
}

func (m Metrics) RowHeight() int {
	return m.StringSpacing*tabula.NumStrings + 2*m.RowPadding
}

// ComputeGeometry arranges the measures. In the page layout, measures wrap
// to a new row when they would not fit in maxWidth; in the linear layout,
// all measures are on one row.
func ComputeGeometry(track tabula.Track, m Metrics, mode LayoutMode, maxWidth int) Geometry {
	g := Geometry{Boxes: make([]image.Rectangle, len(track.Measures)), Metrics: m}
	x, y := 0, 0
	for i, measure := range track.Measures {
		w := m.MeasureWidth(measure)
		if mode == PageLayout && x > 0 && x+w > maxWidth {
			x, y = 0, y+m.RowHeight()
		}
		g.Boxes[i] = image.Rect(x, y, x+w, y+m.RowHeight())
		x += w
		g.Size.X = max(g.Size.X, x)
	}
	g.Size.Y = y + m.RowHeight()
	return g
}

// NotePoint returns the top left corner of the note column at p.
func (g Geometry) NotePoint(p tabula.Position) image.Point {
	if p.Measure < 0 || p.Measure >= len(g.Boxes) {
		return image.Point{}
	}
	b := g.Boxes[p.Measure]
	return image.Pt(b.Min.X+g.Metrics.HeaderWidth+g.Metrics.NoteWidth*p.Note, b.Min.Y)
}

// StringY returns the y coordinate of string str, relative to the row top.
// The highest string (5) is drawn on top.
func (g Geometry) StringY(str int) int {
	return g.Metrics.RowPadding + g.Metrics.StringSpacing*(tabula.NumStrings-1-str) + g.Metrics.StringSpacing/2
}

// HitTest returns the cursor under the point pt, or false if pt is not on a
// note column.
func (g Geometry) HitTest(track tabula.Track, pt image.Point) (tabula.Cursor, bool) {
	for i, b := range g.Boxes {
		if !pt.In(b) {
			continue
		}
		x := pt.X - b.Min.X - g.Metrics.HeaderWidth
		if x < 0 {
			return tabula.Cursor{}, false
		}
		note := min(x/g.Metrics.NoteWidth, max(len(track.Measures[i].Notes)-1, 0))
		y := pt.Y - b.Min.Y - g.Metrics.RowPadding
		str := tabula.NumStrings - 1 - min(max(y/g.Metrics.StringSpacing, 0), tabula.NumStrings-1)
		return tabula.Cursor{Position: tabula.Position{Measure: i, Note: note}, String: str}, true
	}
	return tabula.Cursor{}, false
}

// FollowScroll returns the new horizontal scroll offset that keeps x visible
// in a view of the given width: once x gets within margin of the right edge,
// the view jumps so that x is margin pixels from the left edge.
func FollowScroll(scroll, x, width, margin int) int {
	if x > width+scroll-margin || x < scroll {
		return max(x-margin, 0)
	}
	return scroll
}
