package figure

import (
	"bytes"
	"image/png"
	"testing"
)

func testFigure() *Figure {
	f := New("Test Figure", 4, 3, 1, 2)
	f.DPI = 72 // keep test rasters small
	f.Add(&Panel{
		Title: "Left",
		XLim:  [2]float64{0, 10},
		YLim:  [2]float64{0, 10},
		Frame: true,
		Draw: func(ax *Axes) error {
			ax.Rect(1, 1, 8, 8, Paint{Fill: "lightblue", Stroke: "darkblue", Width: 2, Alpha: 0.3})
			return ax.TextAt(5, 5, "hello", Text{Size: 9, AX: 0.5, AY: 0.5})
		},
	})
	f.Add(&Panel{
		XLim: [2]float64{0, 1},
		YLim: [2]float64{0, 1},
		Draw: func(ax *Axes) error {
			ax.Line(0, 0, 1, 1, Paint{Stroke: "red", Dash: []float64{3, 2}})
			ax.Marker(0.5, 0.5, 6, "red")
			ax.Arrow(0.1, 0.9, 0.9, 0.9, Paint{Stroke: "darkgreen", Width: 2}, true)
			return nil
		},
	})
	return f
}

func TestRenderDimensions(t *testing.T) {
	f := testFigure()
	dc, err := f.Render(1)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if dc.Width() != 288 || dc.Height() != 216 {
		t.Errorf("canvas = %dx%d, want 288x216", dc.Width(), dc.Height())
	}

	dc, err = f.Render(2)
	if err != nil {
		t.Fatalf("Render(2): %v", err)
	}
	if dc.Width() != 576 || dc.Height() != 432 {
		t.Errorf("scaled canvas = %dx%d, want 576x432", dc.Width(), dc.Height())
	}
}

func TestRenderBackgroundWhite(t *testing.T) {
	dc, err := testFigure().Render(1)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	r, g, b, _ := dc.Image().At(0, 0).RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF {
		t.Errorf("corner pixel = (%d,%d,%d), want white", r, g, b)
	}
}

func TestRenderPNGValid(t *testing.T) {
	data, err := RenderPNG(testFigure())
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("RenderPNG returned empty data")
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if cfg.Width != 288 || cfg.Height != 216 {
		t.Errorf("PNG = %dx%d, want 288x216", cfg.Width, cfg.Height)
	}
}

func TestRenderDeterministic(t *testing.T) {
	a, err := RenderPNG(testFigure())
	if err != nil {
		t.Fatal(err)
	}
	b, err := RenderPNG(testFigure())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two renders of the same figure differ")
	}
}

func TestRenderTooManyPanels(t *testing.T) {
	f := New("overflow", 2, 2, 1, 1)
	f.DPI = 72
	f.Add(&Panel{XLim: [2]float64{0, 1}, YLim: [2]float64{0, 1}})
	f.Add(&Panel{XLim: [2]float64{0, 1}, YLim: [2]float64{0, 1}})
	if _, err := f.Render(1); err == nil {
		t.Error("Render with too many panels: want error")
	}
}

func TestWithScale(t *testing.T) {
	data, err := RenderPNG(testFigure(), WithScale(0.5))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 144 || cfg.Height != 108 {
		t.Errorf("PNG = %dx%d, want 144x108", cfg.Width, cfg.Height)
	}
}
