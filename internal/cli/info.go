package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/aatgrid/gridviz/pkg/grid"
)

// newInfoCmd creates the info command, which prints the grid scheme's
// parameters without rendering anything.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the grid scheme's parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printInfo("Tile levels")
			for _, l := range grid.Levels() {
				printKeyValue(l.String(), fmt.Sprintf("%d km × %d km, %d × %d px, %g m/px",
					l.TileKm(), l.TileKm(), grid.TilePixels, grid.TilePixels, l.MetersPerPixel()))
			}

			printNewline()
			printInfo("Structure")
			printKeyValue("Nesting", fmt.Sprintf("%d × %d = %d L2 tiles per L1 tile",
				grid.L2PerL1Edge, grid.L2PerL1Edge, grid.L2PerL1))

			minZone, maxZone := grid.CoveredZones()
			printKeyValue("UTM zones", fmt.Sprintf("%d–%d (%d°E–%d°E)",
				minZone, maxZone, grid.AATWestLon, grid.AATEastLon))
			printKeyValue("Lat limit", fmt.Sprintf("%d°S (standard UTM)", -grid.UTMSouthLatLimit))

			printNewline()
			printInfo("Identifiers")
			example := grid.TileID{Zone: 43, South: true, Level: grid.L1, Col: 6, Row: 114}
			printKeyValue("Example", example.String())
			printKeyValue("L1 edge", fmt.Sprintf("%s m", humanize.Comma(int64(grid.L1.TileMeters()))))
			printKeyValue("L2 edge", fmt.Sprintf("%s m", humanize.Comma(int64(grid.L2.TileMeters()))))
			return nil
		},
	}
}
