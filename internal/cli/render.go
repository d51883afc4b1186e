package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aatgrid/gridviz/pkg/diagram"
	"github.com/aatgrid/gridviz/pkg/figure"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	outDir  string   // output directory for generated PNGs
	figures []string // figure names to render
	scale   float64  // supersampling factor
	theme   string   // optional TOML color theme path
}

// newRenderCmd creates the render command for generating the diagrams.
// By default it renders both canonical figures into the current directory.
func newRenderCmd() *cobra.Command {
	var figuresStr string
	opts := renderOpts{scale: 1.0}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the grid diagrams to PNG files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.figures = parseFigures(figuresStr)
			if err := validateFigures(opts.figures); err != nil {
				return err
			}
			return runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "output-dir", "o", ".", "directory for generated files")
	cmd.Flags().StringVarP(&figuresStr, "figure", "f", "", "figure(s) to render: overview, nesting (comma-separated; default all)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "supersampling factor (2.0 doubles pixel dimensions)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML color theme file overriding the default palette")

	return cmd
}

// parseFigures parses the --figure flag into a slice of figure names.
// If empty, all canonical figures are rendered.
func parseFigures(s string) []string {
	if s == "" {
		var names []string
		for _, spec := range diagram.Figures() {
			names = append(names, spec.Name)
		}
		return names
	}
	return strings.Split(s, ",")
}

// validateFigures checks that all requested figure names are known.
func validateFigures(names []string) error {
	for _, n := range names {
		if _, err := diagram.ByName(n); err != nil {
			return err
		}
	}
	return nil
}

// runRender renders the requested figures and writes one PNG per figure
// into the output directory.
func runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	style := figure.Default()
	if opts.theme != "" {
		var err error
		style, err = figure.Load(opts.theme)
		if err != nil {
			return fmt.Errorf("load theme: %w", err)
		}
		logger.Debugf("Loaded theme %s", opts.theme)
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	prog := newProgress(logger)
	for _, name := range opts.figures {
		spec, err := diagram.ByName(name)
		if err != nil {
			return err
		}

		sp := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s", spec.Name))
		sp.Start()

		f := spec.Build()
		f.Style = style
		data, err := figure.RenderPNG(f, figure.WithScale(opts.scale))
		if err != nil {
			sp.StopWithError(fmt.Sprintf("Rendering %s failed", spec.Name))
			return fmt.Errorf("render %s: %w", spec.Name, err)
		}

		path := filepath.Join(opts.outDir, spec.File)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			sp.StopWithError(fmt.Sprintf("Writing %s failed", path))
			return err
		}
		sp.Stop()

		logger.Infof("Generated %s", path)
		printFile(path)
	}
	prog.done(fmt.Sprintf("Rendered %d figure(s)", len(opts.figures)))

	printSuccess("Diagrams written to %s", opts.outDir)
	return nil
}
