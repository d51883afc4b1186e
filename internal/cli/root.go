package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/aatgrid/gridviz/pkg/buildinfo"
)

// Execute runs the gridviz CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (render,
// hierarchy, info, completion), configures logging based on the --verbose
// flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "gridviz",
		Short:        "Gridviz renders diagrams of the Antarctic territory tiling grid",
		Long:         `Gridviz is a CLI tool for generating explanatory diagrams of the two-level Antarctic territory tiling grid, covering tile nesting, identifier structure, and UTM zone coverage.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newHierarchyCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
