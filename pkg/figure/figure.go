package figure

import (
	"fmt"
	"math"
	"strconv"

	"github.com/fogleman/gg"
)

// DefaultDPI matches the print resolution the diagrams are published at.
const DefaultDPI = 300

// Margins are the outer figure margins as fractions of the canvas size.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// Panel is one independently drawn section of a figure. Its Draw
// callback receives an Axes mapping the panel's data limits onto the
// panel's pixel region.
type Panel struct {
	Title  string
	XLim   [2]float64
	YLim   [2]float64
	XLabel string
	YLabel string

	// Equal preserves the data aspect ratio by shrinking the drawing
	// region, as with matplotlib's set_aspect('equal').
	Equal bool

	// Frame draws the axis frame, ticks, and tick labels. Panels that
	// only place free-form text leave it off.
	Frame bool

	// GridAlpha draws background grid lines at tick positions with the
	// given opacity; zero disables the grid.
	GridAlpha float64

	// XTicks and YTicks override the automatic tick positions.
	XTicks []float64
	YTicks []float64

	Draw func(ax *Axes) error
}

// Figure is a multi-panel drawing surface. Panels fill a Rows×Cols grid
// in the order they are added (row-major). The canvas is WidthIn×HeightIn
// inches rasterized at DPI; Render's scale factor supersamples on top.
type Figure struct {
	Title    string
	WidthIn  float64
	HeightIn float64
	DPI      float64
	Rows     int
	Cols     int
	Style    *Style
	Margin   Margins

	panels []*Panel
}

// New creates a figure with the default DPI, palette, and margins.
func New(title string, widthIn, heightIn float64, rows, cols int) *Figure {
	return &Figure{
		Title:    title,
		WidthIn:  widthIn,
		HeightIn: heightIn,
		DPI:      DefaultDPI,
		Rows:     rows,
		Cols:     cols,
		Style:    Default(),
		Margin:   Margins{Left: 0.035, Right: 0.02, Top: 0.055, Bottom: 0.025},
	}
}

// Add appends a panel to the next free grid slot.
func (f *Figure) Add(p *Panel) *Panel {
	f.panels = append(f.panels, p)
	return p
}

// Panels returns the panels in draw order.
func (f *Figure) Panels() []*Panel {
	return f.panels
}

// Render rasterizes the figure at the given supersampling scale
// (1.0 reproduces WidthIn×DPI pixels) and returns the drawing context
// holding the finished image.
func (f *Figure) Render(scale float64) (*gg.Context, error) {
	if scale <= 0 {
		scale = 1
	}
	if len(f.panels) > f.Rows*f.Cols {
		return nil, fmt.Errorf("figure %q: %d panels exceed %dx%d grid", f.Title, len(f.panels), f.Rows, f.Cols)
	}

	w := int(math.Round(f.WidthIn * f.DPI * scale))
	h := int(math.Round(f.HeightIn * f.DPI * scale))
	dc := gg.NewContext(w, h)

	st := f.Style
	if st == nil {
		st = Default()
	}
	dc.SetColor(st.Color("white"))
	dc.Clear()

	ppp := f.DPI * scale / 72 // pixels per point

	top := f.Margin.Top * float64(h)
	if f.Title != "" {
		if err := drawFigureTitle(dc, st, f.Title, float64(w), top, ppp); err != nil {
			return nil, err
		}
	}

	cellW := float64(w) * (1 - f.Margin.Left - f.Margin.Right) / float64(f.Cols)
	cellH := (float64(h) - top - f.Margin.Bottom*float64(h)) / float64(f.Rows)

	for i, p := range f.panels {
		row := i / f.Cols
		col := i % f.Cols
		cell := Rect{
			X: f.Margin.Left*float64(w) + float64(col)*cellW,
			Y: top + float64(row)*cellH,
			W: cellW,
			H: cellH,
		}
		if err := f.renderPanel(dc, st, p, cell, ppp); err != nil {
			return nil, fmt.Errorf("panel %q: %w", p.Title, err)
		}
	}
	return dc, nil
}

func drawFigureTitle(dc *gg.Context, st *Style, title string, w, band, ppp float64) error {
	fc, err := face(Bold, 16*ppp)
	if err != nil {
		return err
	}
	dc.SetFontFace(fc)
	dc.SetColor(st.Color("black"))
	dc.DrawStringAnchored(title, w/2, band*0.45, 0.5, 0.5)
	return nil
}

func (f *Figure) renderPanel(dc *gg.Context, st *Style, p *Panel, cell Rect, ppp float64) error {
	// Paddings inside the cell, in points.
	padTop := 10.0
	if p.Title != "" {
		padTop = 30
	}
	padLeft, padBottom, padRight := 14.0, 12.0, 14.0
	if p.Frame {
		padLeft, padBottom = 52, 44
	}

	inner := Rect{
		X: cell.X + padLeft*ppp,
		Y: cell.Y + padTop*ppp,
		W: cell.W - (padLeft+padRight)*ppp,
		H: cell.H - (padTop+padBottom)*ppp,
	}
	if inner.W <= 0 || inner.H <= 0 {
		return fmt.Errorf("cell too small for paddings")
	}

	if p.Equal {
		inner = squareAspect(inner, p.XLim, p.YLim)
	}

	if p.Title != "" {
		fc, err := face(Bold, 12*ppp)
		if err != nil {
			return err
		}
		dc.SetFontFace(fc)
		dc.SetColor(st.Color("black"))
		dc.DrawStringAnchored(p.Title, inner.X+inner.W/2, inner.Y-14*ppp, 0.5, 0.5)
	}

	ax := &Axes{
		dc:   dc,
		st:   st,
		rect: inner,
		xmin: p.XLim[0], xmax: p.XLim[1],
		ymin: p.YLim[0], ymax: p.YLim[1],
		ppp: ppp,
	}

	if p.Frame {
		if err := drawFrame(ax, p); err != nil {
			return err
		}
	}

	if p.Draw != nil {
		return p.Draw(ax)
	}
	return nil
}

// squareAspect shrinks and centers a rect so pixel-per-data-unit is the
// same on both axes.
func squareAspect(r Rect, xlim, ylim [2]float64) Rect {
	spanX := xlim[1] - xlim[0]
	spanY := ylim[1] - ylim[0]
	unitX := r.W / spanX
	unitY := r.H / spanY

	if unitX > unitY {
		w := spanX * unitY
		r.X += (r.W - w) / 2
		r.W = w
	} else if unitY > unitX {
		h := spanY * unitX
		r.Y += (r.H - h) / 2
		r.H = h
	}
	return r
}

func drawFrame(ax *Axes, p *Panel) error {
	xticks := p.XTicks
	if xticks == nil {
		xticks = autoTicks(p.XLim[0], p.XLim[1])
	}
	yticks := p.YTicks
	if yticks == nil {
		yticks = autoTicks(p.YLim[0], p.YLim[1])
	}

	if p.GridAlpha > 0 {
		for _, x := range xticks {
			ax.VLine(x, Paint{Stroke: "gray", Width: 0.6, Alpha: p.GridAlpha})
		}
		for _, y := range yticks {
			ax.HLine(y, Paint{Stroke: "gray", Width: 0.6, Alpha: p.GridAlpha})
		}
	}

	// Frame on top of the grid.
	r := ax.rect
	ax.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	ax.strokePath(Paint{Stroke: "black", Width: 0.9})

	fc, err := face(Regular, ax.Pt(8.5))
	if err != nil {
		return err
	}
	ax.dc.SetFontFace(fc)
	ax.dc.SetColor(ax.st.Color("black"))

	tick := ax.Pt(3)
	for _, x := range xticks {
		px := ax.X(x)
		ax.dc.MoveTo(px, r.Y+r.H)
		ax.dc.LineTo(px, r.Y+r.H+tick)
		ax.strokePath(Paint{Stroke: "black", Width: 0.9})
		ax.dc.SetColor(ax.st.Color("black"))
		ax.dc.DrawStringAnchored(tickLabel(x), px, r.Y+r.H+tick+ax.Pt(2), 0.5, 1)
	}
	for _, y := range yticks {
		py := ax.Y(y)
		ax.dc.MoveTo(r.X, py)
		ax.dc.LineTo(r.X-tick, py)
		ax.strokePath(Paint{Stroke: "black", Width: 0.9})
		ax.dc.SetColor(ax.st.Color("black"))
		ax.dc.DrawStringAnchored(tickLabel(y), r.X-tick-ax.Pt(2), py, 1, 0.4)
	}

	if p.XLabel != "" {
		fc, err := face(Regular, ax.Pt(10))
		if err != nil {
			return err
		}
		ax.dc.SetFontFace(fc)
		ax.dc.DrawStringAnchored(p.XLabel, r.X+r.W/2, r.Y+r.H+ax.Pt(26), 0.5, 0.5)
	}
	if p.YLabel != "" {
		fc, err := face(Regular, ax.Pt(10))
		if err != nil {
			return err
		}
		ax.dc.SetFontFace(fc)
		ax.dc.Push()
		ax.dc.RotateAbout(-math.Pi/2, r.X-ax.Pt(36), r.Y+r.H/2)
		ax.dc.DrawStringAnchored(p.YLabel, r.X-ax.Pt(36), r.Y+r.H/2, 0.5, 0.5)
		ax.dc.Pop()
	}
	return nil
}

func tickLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// autoTicks picks round tick positions covering [min, max], aiming for
// five to eight ticks.
func autoTicks(min, max float64) []float64 {
	span := max - min
	if span <= 0 {
		return nil
	}

	raw := span / 6
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	var step float64
	switch {
	case raw/mag < 1.5:
		step = mag
	case raw/mag < 3.5:
		step = 2 * mag
	case raw/mag < 7.5:
		step = 5 * mag
	default:
		step = 10 * mag
	}

	var ticks []float64
	for v := math.Ceil(min/step) * step; v <= max+step/1e6; v += step {
		// Round away float drift so labels stay clean.
		ticks = append(ticks, math.Round(v/step)*step)
	}
	return ticks
}
