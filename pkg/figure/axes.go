package figure

import (
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
)

// lineSpacing is the multiline text line height as a multiple of the
// font size.
const lineSpacing = 1.35

// Rect is a pixel-space rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Axes maps a panel's data coordinate system onto a pixel region of the
// figure canvas and exposes the drawing primitives used by the diagrams.
// All positions are data coordinates; sizes (fonts, line widths, paddings,
// marker diameters) are typographic points.
type Axes struct {
	dc   *gg.Context
	st   *Style
	rect Rect
	xmin, xmax float64
	ymin, ymax float64
	ppp  float64 // pixels per point
}

// X converts a data x coordinate to a canvas pixel coordinate.
func (ax *Axes) X(x float64) float64 {
	return ax.rect.X + (x-ax.xmin)/(ax.xmax-ax.xmin)*ax.rect.W
}

// Y converts a data y coordinate to a canvas pixel coordinate. The data
// y axis points up; the canvas y axis points down.
func (ax *Axes) Y(y float64) float64 {
	return ax.rect.Y + (ax.ymax-y)/(ax.ymax-ax.ymin)*ax.rect.H
}

// Pt converts a size in points to canvas pixels.
func (ax *Axes) Pt(points float64) float64 {
	return points * ax.ppp
}

// Color resolves a palette color name.
func (ax *Axes) Color(name string) color.Color {
	return ax.st.Color(name)
}

// Paint describes how a shape is filled and stroked. Color fields name
// palette entries; an empty name skips that part. Alpha in (0, 1) makes
// both fill and stroke translucent; zero means opaque.
type Paint struct {
	Fill   string
	Stroke string
	Width  float64   // stroke width in points; 0 means 1
	Alpha  float64
	Dash   []float64 // dash pattern in points
}

// Rect draws a rectangle with lower-left corner (x, y) in data
// coordinates.
func (ax *Axes) Rect(x, y, w, h float64, p Paint) {
	px := ax.X(x)
	py := ax.Y(y + h)
	ax.dc.DrawRectangle(px, py, ax.X(x+w)-px, ax.Y(y)-py)
	ax.fillStroke(p)
}

// RoundRect draws a rounded rectangle with lower-left corner (x, y) in
// data coordinates and a corner radius in points.
func (ax *Axes) RoundRect(x, y, w, h, roundPts float64, p Paint) {
	px := ax.X(x)
	py := ax.Y(y + h)
	ax.dc.DrawRoundedRectangle(px, py, ax.X(x+w)-px, ax.Y(y)-py, ax.Pt(roundPts))
	ax.fillStroke(p)
}

// Line draws a straight line between two data points.
func (ax *Axes) Line(x1, y1, x2, y2 float64, p Paint) {
	ax.dc.MoveTo(ax.X(x1), ax.Y(y1))
	ax.dc.LineTo(ax.X(x2), ax.Y(y2))
	ax.fillStroke(p)
}

// VLine draws a vertical line spanning the full y range at data x.
func (ax *Axes) VLine(x float64, p Paint) {
	ax.Line(x, ax.ymin, x, ax.ymax, p)
}

// HLine draws a horizontal line spanning the full x range at data y.
func (ax *Axes) HLine(y float64, p Paint) {
	ax.Line(ax.xmin, y, ax.xmax, y, p)
}

// Marker draws a filled circular marker of the given diameter in points,
// outlined in black.
func (ax *Axes) Marker(x, y, sizePts float64, fill string) {
	ax.dc.DrawCircle(ax.X(x), ax.Y(y), ax.Pt(sizePts)/2)
	ax.fillStroke(Paint{Fill: fill, Stroke: "black", Width: 0.8})
}

// CellColor fills like Rect but with a direct color value instead of a
// palette name, for colormap-driven cells.
func (ax *Axes) CellColor(x, y, w, h float64, fill color.Color, alpha float64, stroke string, width float64) {
	px := ax.X(x)
	py := ax.Y(y + h)
	ax.dc.DrawRectangle(px, py, ax.X(x+w)-px, ax.Y(y)-py)
	ax.dc.SetColor(withAlpha(fill, alpha))
	ax.dc.FillPreserve()
	ax.strokePath(Paint{Stroke: stroke, Width: width, Alpha: alpha})
}

// Box frames a text block: fill, edge, padding and corner radius in
// points.
type Box struct {
	Fill  string
	Edge  string
	Width float64 // edge width in points; 0 means 1
	Pad   float64 // padding in points; 0 means 4
	Round float64 // corner radius in points; 0 means 4
	Alpha float64
}

// Text describes a text block: size in points, typeface, palette color
// (empty means black), gg-style anchors, and an optional surrounding box.
// AX runs 0 (left) to 1 (right); AY runs 0 (baseline at y) to 1 (top at
// y), 0.5 centers.
type Text struct {
	Size  float64
	Font  Font
	Color string
	AX, AY float64
	Box   *Box
	Alpha float64
}

// TextAt draws a text block anchored at a data point. Newlines split the
// block into multiple lines sharing the horizontal anchor.
func (ax *Axes) TextAt(x, y float64, s string, t Text) error {
	return ax.textPx(ax.X(x), ax.Y(y), s, t)
}

func (ax *Axes) textPx(px, py float64, s string, t Text) error {
	size := ax.Pt(t.Size)
	fc, err := face(t.Font, size)
	if err != nil {
		return err
	}
	ax.dc.SetFontFace(fc)

	lines := strings.Split(s, "\n")
	lineH := size * lineSpacing

	// Block extent for box drawing and vertical anchoring.
	var maxW float64
	for _, ln := range lines {
		w, _ := ax.dc.MeasureString(ln)
		if w > maxW {
			maxW = w
		}
	}
	blockH := size + lineH*float64(len(lines)-1)

	// Top of the first line, honoring the vertical anchor across the
	// whole block the way gg anchors a single line.
	top := py - size + t.AY*blockH

	if t.Box != nil {
		ax.textBox(px, top, maxW, blockH, t)
	}

	col := t.Color
	if col == "" {
		col = "black"
	}
	alpha := t.Alpha
	if alpha == 0 {
		alpha = 1
	}
	ax.dc.SetColor(withAlpha(ax.st.Color(col), alpha))
	for i, ln := range lines {
		ax.dc.DrawStringAnchored(ln, px, top+lineH*float64(i), t.AX, 1)
	}
	return nil
}

func (ax *Axes) textBox(px, top, blockW, blockH float64, t Text) {
	b := t.Box
	pad := ax.Pt(b.Pad)
	if b.Pad == 0 {
		pad = ax.Pt(4)
	}
	round := ax.Pt(b.Round)
	if b.Round == 0 {
		round = ax.Pt(4)
	}

	x := px - t.AX*blockW - pad
	y := top - pad
	ax.dc.DrawRoundedRectangle(x, y, blockW+2*pad, blockH+2*pad, round)

	alpha := b.Alpha
	if alpha == 0 {
		alpha = 1
	}
	if b.Fill != "" {
		ax.dc.SetColor(withAlpha(ax.st.Color(b.Fill), alpha))
		ax.dc.FillPreserve()
	}
	ax.strokePath(Paint{Stroke: b.Edge, Width: b.Width, Alpha: alpha})
}

// Arrow draws an arrow between two data points. With double set, both
// ends carry heads (a dimension arrow); otherwise the head sits at
// (x2, y2).
func (ax *Axes) Arrow(x1, y1, x2, y2 float64, p Paint, double bool) {
	px1, py1 := ax.X(x1), ax.Y(y1)
	px2, py2 := ax.X(x2), ax.Y(y2)

	w := p.Width
	if w == 0 {
		w = 1
	}
	head := ax.Pt(4 * w)
	angle := math.Atan2(py2-py1, px2-px1)

	// Shorten the shaft so it does not poke through the heads.
	sx1, sy1 := px1, py1
	if double {
		sx1 += head * math.Cos(angle)
		sy1 += head * math.Sin(angle)
	}
	sx2 := px2 - head*math.Cos(angle)
	sy2 := py2 - head*math.Sin(angle)

	ax.dc.MoveTo(sx1, sy1)
	ax.dc.LineTo(sx2, sy2)
	ax.strokePath(p)

	stroke := p.Stroke
	if stroke == "" {
		stroke = "black"
	}
	alpha := p.Alpha
	if alpha == 0 {
		alpha = 1
	}
	ax.dc.SetColor(withAlpha(ax.st.Color(stroke), alpha))
	ax.arrowHead(px2, py2, angle, head)
	if double {
		ax.arrowHead(px1, py1, angle+math.Pi, head)
	}
}

func (ax *Axes) arrowHead(x, y, angle, size float64) {
	spread := 0.45
	ax.dc.MoveTo(x, y)
	ax.dc.LineTo(x-size*math.Cos(angle-spread), y-size*math.Sin(angle-spread))
	ax.dc.LineTo(x-size*math.Cos(angle+spread), y-size*math.Sin(angle+spread))
	ax.dc.ClosePath()
	ax.dc.Fill()
}

// Annotate draws a boxed label at (tx, ty) with an arrow pointing to
// (x, y), like matplotlib's annotate.
func (ax *Axes) Annotate(s string, x, y, tx, ty float64, t Text) error {
	ax.Arrow(tx, ty, x, y, Paint{Stroke: "black", Width: 1.2}, false)
	return ax.TextAt(tx, ty, s, t)
}

// LegendEntry is one legend row: a line sample in the named color with
// an optional dash pattern, and its label.
type LegendEntry struct {
	Label string
	Color string
	Dash  []float64
}

// Legend draws a boxed legend in the upper-right corner of the axes.
func (ax *Axes) Legend(entries []LegendEntry, sizePts float64) error {
	size := ax.Pt(sizePts)
	fc, err := face(Regular, size)
	if err != nil {
		return err
	}
	ax.dc.SetFontFace(fc)

	var maxW float64
	for _, e := range entries {
		w, _ := ax.dc.MeasureString(e.Label)
		if w > maxW {
			maxW = w
		}
	}

	pad := ax.Pt(5)
	sample := ax.Pt(16)
	rowH := size * 1.6
	boxW := pad + sample + pad/2 + maxW + pad
	boxH := pad*2 + rowH*float64(len(entries))

	x := ax.rect.X + ax.rect.W - boxW - ax.Pt(6)
	y := ax.rect.Y + ax.Pt(6)

	ax.dc.DrawRectangle(x, y, boxW, boxH)
	ax.dc.SetColor(withAlpha(ax.st.Color("white"), 0.85))
	ax.dc.FillPreserve()
	ax.strokePath(Paint{Stroke: "gray", Width: 0.8})

	for i, e := range entries {
		cy := y + pad + rowH*(float64(i)+0.5)
		ax.dc.MoveTo(x+pad, cy)
		ax.dc.LineTo(x+pad+sample, cy)
		ax.strokePath(Paint{Stroke: e.Color, Width: 1.6, Dash: e.Dash})
		ax.dc.SetColor(ax.st.Color("black"))
		ax.dc.DrawStringAnchored(e.Label, x+pad+sample+pad/2, cy, 0, 0.35)
	}
	return nil
}

// fillStroke applies a Paint to the current path and clears it.
func (ax *Axes) fillStroke(p Paint) {
	alpha := p.Alpha
	if alpha == 0 {
		alpha = 1
	}
	if p.Fill != "" {
		ax.dc.SetColor(withAlpha(ax.st.Color(p.Fill), alpha))
		if p.Stroke != "" {
			ax.dc.FillPreserve()
		} else {
			ax.dc.Fill()
		}
	}
	if p.Stroke != "" {
		ax.strokePath(p)
	}
	if p.Fill == "" && p.Stroke == "" {
		ax.dc.ClearPath()
	}
}

// strokePath strokes the current path with a Paint's stroke settings,
// restoring the solid dash pattern afterwards.
func (ax *Axes) strokePath(p Paint) {
	if p.Stroke == "" {
		ax.dc.ClearPath()
		return
	}
	w := p.Width
	if w == 0 {
		w = 1
	}
	alpha := p.Alpha
	if alpha == 0 {
		alpha = 1
	}
	if len(p.Dash) > 0 {
		dash := make([]float64, len(p.Dash))
		for i, d := range p.Dash {
			dash[i] = ax.Pt(d)
		}
		ax.dc.SetDash(dash...)
	}
	ax.dc.SetLineWidth(ax.Pt(w))
	ax.dc.SetColor(withAlpha(ax.st.Color(p.Stroke), alpha))
	ax.dc.Stroke()
	if len(p.Dash) > 0 {
		ax.dc.SetDash()
	}
}
