package diagram

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/aatgrid/gridviz/pkg/figure"
	"github.com/aatgrid/gridviz/pkg/grid"
)

// nestingCell is one L2 position inside the detailed L1 tile, with its
// checkerboard fill color.
type nestingCell struct {
	col, row int
	fill     string
}

// nestingCells returns all L2 positions of one L1 tile in row-major
// order, alternating fills for readability.
func nestingCells() []nestingCell {
	cells := make([]nestingCell, 0, grid.L2PerL1)
	for row := 0; row < grid.L2PerL1Edge; row++ {
		for col := 0; col < grid.L2PerL1Edge; col++ {
			fill := "white"
			if (col+row)%2 == 1 {
				fill = "lightgray"
			}
			cells = append(cells, nestingCell{col: col, row: row, fill: fill})
		}
	}
	return cells
}

// NestingDetail builds the single-panel figure showing how one L1 tile
// decomposes into its 6×6 L2 tiles, with dimension arrows and a summary
// box in the right margin.
func NestingDetail() *figure.Figure {
	f := figure.New("L1/L2 Tile Nesting Detail", 13, 10, 1, 1)
	// Wide right margin keeps room for the summary box next to the panel.
	f.Margin = figure.Margins{Left: 0.05, Right: 0.28, Top: 0.07, Bottom: 0.04}

	size := float64(grid.L1TileKm)
	sub := float64(grid.L2TileKm)

	f.Add(&figure.Panel{
		Title:     fmt.Sprintf("(One L1 tile = %d×%d L2 tiles)", grid.L2PerL1Edge, grid.L2PerL1Edge),
		XLim:      [2]float64{-1, size + 1},
		YLim:      [2]float64{-1, size + 1},
		XLabel:    "Distance from origin (km)",
		YLabel:    "Distance from origin (km)",
		Equal:     true,
		Frame:     true,
		GridAlpha: 0.2,
		Draw: func(ax *figure.Axes) error {
			for _, c := range nestingCells() {
				x := float64(c.col) * sub
				y := float64(c.row) * sub
				ax.Rect(x, y, sub, sub, figure.Paint{
					Fill: c.fill, Stroke: "darkgreen", Width: 1.5, Alpha: 0.5,
				})
				err := ax.TextAt(x+sub/2, y+sub/2,
					fmt.Sprintf("L2\n(%d,%d)", c.col, c.row),
					figure.Text{Size: 8, Font: figure.Bold, Color: "darkgreen", AX: 0.5, AY: 0.5})
				if err != nil {
					return err
				}
			}

			inner := figure.Paint{Stroke: "darkgreen", Width: 1.5, Alpha: 0.8}
			for i := 0; i <= grid.L2PerL1Edge; i++ {
				ax.Line(float64(i)*sub, 0, float64(i)*sub, size, inner)
				ax.Line(0, float64(i)*sub, size, float64(i)*sub, inner)
			}

			// L1 outline on top of the cell strokes.
			ax.Rect(0, 0, size, size, figure.Paint{Stroke: "darkblue", Width: 4})
			err := ax.TextAt(-0.5, size/2, fmt.Sprintf("L1 Tile\n%d km", grid.L1TileKm),
				figure.Text{Size: 12, Font: figure.Bold, Color: "darkblue", AX: 1, AY: 0.5})
			if err != nil {
				return err
			}

			ax.Arrow(0, -0.5, size, -0.5, figure.Paint{Stroke: "darkblue", Width: 2}, true)
			err = ax.TextAt(size/2, -0.8,
				fmt.Sprintf("%d km (%s m)", grid.L1TileKm, humanize.Comma(int64(grid.L1.TileMeters()))),
				figure.Text{Size: 10, Font: figure.Bold, Color: "darkblue", AX: 0.5, AY: 1})
			if err != nil {
				return err
			}

			ax.Arrow(0, 0, sub, 0, figure.Paint{Stroke: "darkgreen", Width: 2}, true)
			err = ax.TextAt(sub/2, -0.3, fmt.Sprintf("%d km", grid.L2TileKm),
				figure.Text{Size: 9, Font: figure.Bold, Color: "darkgreen", AX: 0.5, AY: 1})
			if err != nil {
				return err
			}

			// Summary box in the reserved right margin.
			return ax.TextAt(size+2.5, size/2, nestingSummary(), figure.Text{
				Size: 10, Font: figure.Mono, AY: 0.5,
				Box: &figure.Box{Fill: "wheat", Edge: "black", Width: 2, Pad: 10},
			})
		},
	})

	return f
}

// nestingSummary formats the key figures of both levels for the detail
// figure's side box.
func nestingSummary() string {
	l1m := humanize.Comma(int64(grid.L1.TileMeters()))
	l2m := humanize.Comma(int64(grid.L2.TileMeters()))
	return fmt.Sprintf(
		"L1 Tile:\n"+
			"• %s m × %s m\n"+
			"• %d × %d pixels\n"+
			"• %g m per pixel\n"+
			"\n"+
			"L2 Tiles (each):\n"+
			"• %s m × %s m\n"+
			"• %d × %d pixels\n"+
			"• %g m per pixel\n"+
			"\n"+
			"Nesting: %d × %d = %d tiles",
		l1m, l1m, grid.TilePixels, grid.TilePixels, grid.L1.MetersPerPixel(),
		l2m, l2m, grid.TilePixels, grid.TilePixels, grid.L2.MetersPerPixel(),
		grid.L2PerL1Edge, grid.L2PerL1Edge, grid.L2PerL1)
}
