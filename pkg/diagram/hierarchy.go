package diagram

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/aatgrid/gridviz/pkg/grid"
)

// HierarchyDOT returns a Graphviz DOT digraph of one L1 tile and its 36
// L2 children, labeled with their identifiers. The root must be an L1
// tile.
func HierarchyDOT(root grid.TileID) (string, error) {
	if root.Level != grid.L1 {
		return "", fmt.Errorf("hierarchy root must be an L1 tile, got %s", root)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph TileHierarchy {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=box, style=\"rounded,filled\", fillcolor=white];\n\n")

	fmt.Fprintf(&buf, "  root [label=%q, fillcolor=lightblue, penwidth=2];\n", root.String())

	children, err := root.Children()
	if err != nil {
		return "", err
	}
	for i, c := range children {
		fmt.Fprintf(&buf, "  c%d [label=%q];\n", i, c.String())
		fmt.Fprintf(&buf, "  root -> c%d;\n", i)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// RenderHierarchySVG renders a DOT graph to SVG using Graphviz.
func RenderHierarchySVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
