package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/aatgrid/gridviz/pkg/figure"
	"github.com/aatgrid/gridviz/pkg/grid"
)

// Overview builds the six-panel system overview figure: grid hierarchy,
// index system, identifier format, zone coverage, resolution levels, and
// design principles.
func Overview() *figure.Figure {
	f := figure.New("Antarctic Territory Grid System - Design Overview", 16, 10, 2, 3)

	f.Add(hierarchyConceptPanel())
	f.Add(indexSystemPanel())
	f.Add(tileIDFormatPanel())
	f.Add(zoneCoveragePanel())
	f.Add(resolutionPanel())
	f.Add(principlesPanel())

	return f
}

// hierarchyConceptPanel shows one L1 tile with its 6×6 L2 subdivision
// and a highlighted L2 cell.
func hierarchyConceptPanel() *figure.Panel {
	size := float64(grid.L1TileKm)
	sub := float64(grid.L2TileKm)

	return &figure.Panel{
		Title:     "Grid Hierarchy Concept",
		XLim:      [2]float64{0, size},
		YLim:      [2]float64{0, size},
		XLabel:    "Distance (km)",
		YLabel:    "Distance (km)",
		Equal:     true,
		Frame:     true,
		GridAlpha: 0.2,
		Draw: func(ax *figure.Axes) error {
			ax.Rect(0, 0, size, size, figure.Paint{
				Fill: "lightblue", Stroke: "darkblue", Width: 3, Alpha: 0.3,
			})
			err := ax.TextAt(size/2, size+1.5,
				fmt.Sprintf("L1 Tile: %d km × %d km", grid.L1TileKm, grid.L1TileKm),
				figure.Text{Size: 11, Font: figure.Bold, Color: "darkblue", AX: 0.5})
			if err != nil {
				return err
			}
			err = ax.TextAt(size/2, -2,
				fmt.Sprintf("%d×%d pixels @ %gm/px", grid.TilePixels, grid.TilePixels, grid.L1.MetersPerPixel()),
				figure.Text{Size: 9, Font: figure.Italic, Color: "darkblue", AX: 0.5, AY: 1})
			if err != nil {
				return err
			}

			for i := 0; i < grid.L2PerL1Edge; i++ {
				for j := 0; j < grid.L2PerL1Edge; j++ {
					ax.Rect(float64(i)*sub, float64(j)*sub, sub, sub, figure.Paint{
						Fill: "lightgreen", Stroke: "darkgreen", Width: 0.8, Alpha: 0.2,
					})
				}
			}

			// One highlighted L2 tile.
			ax.Rect(12, 18, sub, sub, figure.Paint{
				Fill: "yellow", Stroke: "red", Width: 2, Alpha: 0.4,
			})
			err = ax.TextAt(15, 21, "L2",
				figure.Text{Size: 9, Font: figure.Bold, Color: "darkred", AX: 0.5, AY: 0.5})
			if err != nil {
				return err
			}

			err = ax.TextAt(3, 33,
				fmt.Sprintf("L2 tiles: %d km × %d km", grid.L2TileKm, grid.L2TileKm),
				figure.Text{Size: 9, Color: "darkgreen"})
			if err != nil {
				return err
			}
			err = ax.TextAt(3, 31,
				fmt.Sprintf("%d×%d px @ %gm/px", grid.TilePixels, grid.TilePixels, grid.L2.MetersPerPixel()),
				figure.Text{Size: 8, Font: figure.Italic, Color: "darkgreen"})
			if err != nil {
				return err
			}

			return ax.Annotate(
				fmt.Sprintf("%d × %d = %d L2 tiles\nper L1 tile",
					grid.L2PerL1Edge, grid.L2PerL1Edge, grid.L2PerL1),
				30, 3, 28, 8,
				figure.Text{Size: 9, AX: 0.5, AY: 0.5, Box: &figure.Box{Fill: "wheat", Edge: "black"}})
		},
	}
}

// indexSystemPanel shows the 6×6 column/row index layout with a
// highlighted 2×2 block and its parent L1 indices.
func indexSystemPanel() *figure.Panel {
	edge := grid.L2PerL1Edge
	ticks := make([]float64, edge+1)
	for i := range ticks {
		ticks[i] = float64(i)
	}

	// The highlighted example block and its parent tile.
	highlightCols := []int{2, 3}
	highlightRows := []int{3, 4}
	example := grid.TileID{Zone: 43, South: true, Level: grid.L2, Col: highlightCols[0], Row: highlightRows[0]}
	parent, _ := example.Parent()

	return &figure.Panel{
		Title:     "Tile Index System",
		XLim:      [2]float64{-0.5, float64(edge) + 0.5},
		YLim:      [2]float64{-0.5, float64(edge) + 0.5},
		XLabel:    "Column Index",
		YLabel:    "Row Index",
		Equal:     true,
		Frame:     true,
		GridAlpha: 0.3,
		XTicks:    ticks,
		YTicks:    ticks,
		Draw: func(ax *figure.Axes) error {
			idx := 0
			for row := 0; row < edge; row++ {
				for col := 0; col < edge; col++ {
					t := float64(idx) / float64(grid.L2PerL1-1)
					ax.CellColor(float64(col), float64(row), 1, 1, figure.Viridis(t), 0.5, "black", 1)
					err := ax.TextAt(float64(col)+0.5, float64(row)+0.5,
						fmt.Sprintf("%d,%d", col, row),
						figure.Text{Size: 7, Font: figure.Bold, AX: 0.5, AY: 0.5})
					if err != nil {
						return err
					}
					idx++
				}
			}

			for _, col := range highlightCols {
				for _, row := range highlightRows {
					ax.Rect(float64(col), float64(row), 1, 1, figure.Paint{Stroke: "red", Width: 2.5})
				}
			}

			err := ax.TextAt(3.3, 6.7, "Example: L2 tiles (2-3, 3-4)",
				figure.Text{Size: 9, AX: 0.5, Box: &figure.Box{Fill: "yellow", Alpha: 0.7}})
			if err != nil {
				return err
			}
			return ax.TextAt(3.3, -1,
				fmt.Sprintf("→ Parent L1: col=%d, row=%d", parent.Col, parent.Row),
				figure.Text{Size: 9, Font: figure.Italic, Color: "darkred", AX: 0.5, AY: 1})
		},
	}
}

// tileIDFormatPanel breaks an example tile identifier into its fields.
func tileIDFormatPanel() *figure.Panel {
	example := grid.TileID{Zone: 43, South: true, Level: grid.L1, Col: 6, Row: 114}

	components := []struct {
		part, label, desc string
	}{
		{"43S", "UTM Zone", "Zone 43, Southern Hemisphere"},
		{"L1", "Grid Level", fmt.Sprintf("Level 1 (%dkm tiles)", grid.L1TileKm)},
		{"0006", "Column", "Column index from origin"},
		{"0114", "Row", "Row index from origin"},
	}

	return &figure.Panel{
		Title: "Tile Identification Format",
		XLim:  [2]float64{0, 1},
		YLim:  [2]float64{0, 1},
		Draw: func(ax *figure.Axes) error {
			err := ax.TextAt(0.5, 0.85, example.String(), figure.Text{
				Size: 18, Font: figure.MonoBold, AX: 0.5,
				Box: &figure.Box{Fill: "lightblue", Edge: "darkblue", Width: 2},
			})
			if err != nil {
				return err
			}

			for i, c := range components {
				y := 0.65 - float64(i)*0.15
				err = ax.TextAt(0.15, y, c.part, figure.Text{
					Size: 14, Font: figure.MonoBold,
					Box: &figure.Box{Fill: "wheat", Edge: "black"},
				})
				if err != nil {
					return err
				}
				if err = ax.TextAt(0.35, y, "← "+c.label, figure.Text{Size: 11, AY: 0.5}); err != nil {
					return err
				}
				err = ax.TextAt(0.35, y-0.03, c.desc,
					figure.Text{Size: 8, Font: figure.Italic, Color: "gray", AY: 1})
				if err != nil {
					return err
				}
			}

			err = ax.TextAt(0.5, 0.05, "Example tile contains point at:",
				figure.Text{Size: 10, Font: figure.Bold, AX: 0.5})
			if err != nil {
				return err
			}
			err = ax.TextAt(0.5, -0.02,
				fmt.Sprintf("UTM: %s E, %s N", humanize.Comma(399338), humanize.Comma(4126677)),
				figure.Text{Size: 9, Font: figure.Mono, AX: 0.5})
			if err != nil {
				return err
			}
			return ax.TextAt(0.5, -0.08, "Lon/Lat: 73.5°E, 53.0°S",
				figure.Text{Size: 9, Font: figure.Mono, AX: 0.5})
		},
	}
}

// zoneCoveragePanel sketches the UTM zones intersecting the covered
// longitude band, with landmark markers and coverage limit lines.
func zoneCoveragePanel() *figure.Panel {
	const (
		lonMin, lonMax = 40.0, 165.0
		latMin, latMax = -72.0, -48.0
	)

	return &figure.Panel{
		Title:     "UTM Zone Coverage (AAT)",
		XLim:      [2]float64{lonMin, lonMax},
		YLim:      [2]float64{latMin, latMax},
		XLabel:    "Longitude (°E)",
		YLabel:    "Latitude (°S)",
		Frame:     true,
		GridAlpha: 0.3,
		Draw: func(ax *figure.Axes) error {
			minZone, maxZone := grid.CoveredZones()
			for z := minZone; z <= maxZone; z++ {
				west := math.Max(grid.ZoneWestLon(z), lonMin)
				east := math.Min(grid.ZoneWestLon(z)+grid.ZoneWidthDeg, lonMax)
				if east <= west {
					continue
				}

				fill := "lightgreen"
				if z%2 == 0 {
					fill = "lightblue"
				}
				ax.Rect(west, float64(grid.UTMSouthLatLimit), east-west, 20, figure.Paint{
					Fill: fill, Stroke: "black", Width: 0.5, Alpha: 0.4,
				})

				if c := grid.ZoneCentralLon(z); c >= grid.AATWestLon && c <= grid.AATEastLon {
					err := ax.TextAt(c, -71, fmt.Sprintf("%dS", z),
						figure.Text{Size: 8, Font: figure.Bold, AX: 0.5, AY: 0.5})
					if err != nil {
						return err
					}
				}
			}

			for _, lm := range grid.Landmarks() {
				ax.Marker(lm.Lon, lm.Lat, 8, lm.Marker)
				err := ax.TextAt(lm.Lon, lm.Lat-1.5, lm.Name, figure.Text{
					Size: 8, AX: 0.5, AY: 1,
					Box: &figure.Box{Fill: "white", Alpha: 0.8},
				})
				if err != nil {
					return err
				}
			}

			boundary := figure.Paint{Stroke: "darkred", Width: 2, Dash: []float64{6, 4}, Alpha: 0.7}
			ax.VLine(grid.AATWestLon, boundary)
			ax.VLine(grid.AATEastLon, boundary)
			ax.HLine(float64(grid.UTMSouthLatLimit),
				figure.Paint{Stroke: "orange", Width: 2, Dash: []float64{1.5, 3}, Alpha: 0.7})

			return ax.Legend([]figure.LegendEntry{
				{Label: "AAT Boundaries", Color: "darkred", Dash: []float64{6, 4}},
				{Label: fmt.Sprintf("UTM Limit (~%d°S)", -grid.UTMSouthLatLimit), Color: "orange", Dash: []float64{1.5, 3}},
			}, 8)
		},
	}
}

// resolutionPanel compares the two levels' resolutions side by side.
func resolutionPanel() *figure.Panel {
	uses := map[grid.Level]string{
		grid.L1: "Regional overview\nBroad coverage",
		grid.L2: "Detailed analysis\nHigh resolution",
	}
	fills := map[grid.Level]string{
		grid.L1: "lightblue",
		grid.L2: "lightgreen",
	}

	return &figure.Panel{
		Title: "Resolution Levels",
		XLim:  [2]float64{0, 1},
		YLim:  [2]float64{0, 1},
		Draw: func(ax *figure.Axes) error {
			for i, l := range grid.Levels() {
				y := 0.7 - float64(i)*0.4

				ax.RoundRect(0.05, y-0.15, 0.9, 0.25, 6, figure.Paint{
					Fill: fills[l], Stroke: "black", Width: 2, Alpha: 0.5,
				})

				if err := ax.TextAt(0.15, y+0.05, l.String(), figure.Text{Size: 20, Font: figure.Bold}); err != nil {
					return err
				}
				err := ax.TextAt(0.5, y+0.05, fmt.Sprintf("%g m/pixel", l.MetersPerPixel()),
					figure.Text{Size: 14, Font: figure.Bold, AX: 0.5})
				if err != nil {
					return err
				}
				err = ax.TextAt(0.5, y-0.02, fmt.Sprintf("%d km × %d km", l.TileKm(), l.TileKm()),
					figure.Text{Size: 11, AX: 0.5})
				if err != nil {
					return err
				}
				err = ax.TextAt(0.5, y-0.08, fmt.Sprintf("%d × %d px", grid.TilePixels, grid.TilePixels),
					figure.Text{Size: 10, Font: figure.Italic, Color: "gray", AX: 0.5})
				if err != nil {
					return err
				}
				err = ax.TextAt(0.88, y, uses[l],
					figure.Text{Size: 9, Font: figure.Italic, AX: 1, AY: 0.5})
				if err != nil {
					return err
				}
			}

			return ax.TextAt(0.5, 0.15, "Same pixel count per tile → Same display size", figure.Text{
				Size: 10, Font: figure.Bold, AX: 0.5, AY: 0.5,
				Box: &figure.Box{Fill: "yellow", Alpha: 0.5},
			})
		},
	}
}

// principlesPanel lists the design principles of the scheme.
func principlesPanel() *figure.Panel {
	principles := []string{
		"√ Consistent Coverage",
		"  • Edge-to-edge tiling",
		"  • No gaps or overlaps within zones",
		"",
		"√ Clean Nesting",
		fmt.Sprintf("  • %d×%d L2 tiles per L1 tile", grid.L2PerL1Edge, grid.L2PerL1Edge),
		"  • Simple parent-child relationships",
		"",
		"√ Sentinel-2 Alignment",
		"  • Compatible grid origins",
		"  • Integration with satellite data",
		"",
		"√ Human-Viewable",
		fmt.Sprintf("  • %d×%d pixel images", grid.TilePixels, grid.TilePixels),
		"  • Practical file sizes",
		"",
		"√ Zone-Based",
		"  • Minimal distortion per zone",
		"  • Standard UTM projections",
	}

	return &figure.Panel{
		Title: "Design Principles",
		XLim:  [2]float64{0, 1},
		YLim:  [2]float64{0, 1},
		Draw: func(ax *figure.Axes) error {
			y := 0.95
			for _, line := range principles {
				var err error
				switch {
				case strings.HasPrefix(line, "√"):
					err = ax.TextAt(0.05, y, line,
						figure.Text{Size: 11, Font: figure.Bold, Color: "darkgreen", AY: 0.5})
				case strings.HasPrefix(line, "  •"):
					err = ax.TextAt(0.1, y, line, figure.Text{Size: 9, Color: "darkblue", AY: 0.5})
				case line != "":
					err = ax.TextAt(0.05, y, line, figure.Text{Size: 9, AY: 0.5})
				}
				if err != nil {
					return err
				}
				y -= 0.05
			}
			return nil
		},
	}
}
