package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aatgrid/gridviz/pkg/diagram"
	"github.com/aatgrid/gridviz/pkg/grid"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// hierarchyOpts holds the command-line flags for the hierarchy command.
type hierarchyOpts struct {
	output string // output file path
	format string // "dot" or "svg"
	tile   string // root L1 tile identifier
}

// newHierarchyCmd creates the hierarchy command, a debug tool that exports
// an L1 tile's parent-child tree as a Graphviz graph.
func newHierarchyCmd() *cobra.Command {
	opts := hierarchyOpts{
		output: "grid_hierarchy.svg",
		format: formatSVG,
		tile:   "43S_L1_0000_0000",
	}

	cmd := &cobra.Command{
		Use:   "hierarchy",
		Short: "Export an L1 tile's child tree as a Graphviz graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatDOT && opts.format != formatSVG {
				return fmt.Errorf("invalid format: %s (must be 'dot' or 'svg')", opts.format)
			}
			return runHierarchy(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")
	cmd.Flags().StringVarP(&opts.tile, "tile", "t", opts.tile, "root L1 tile identifier")

	return cmd
}

// runHierarchy builds the DOT tree for the requested tile and writes it,
// optionally rendered to SVG via Graphviz.
func runHierarchy(cmd *cobra.Command, opts *hierarchyOpts) error {
	logger := loggerFromContext(cmd.Context())

	root, err := grid.ParseTileID(opts.tile)
	if err != nil {
		return err
	}

	dot, err := diagram.HierarchyDOT(root)
	if err != nil {
		return err
	}

	data := []byte(dot)
	if opts.format == formatSVG {
		logger.Debugf("Rendering hierarchy SVG for %s", root)
		data, err = diagram.RenderHierarchySVG(dot)
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}

	logger.Infof("Generated %s", opts.output)
	printFile(opts.output)
	printSuccess("Hierarchy for %s exported", root)
	return nil
}
