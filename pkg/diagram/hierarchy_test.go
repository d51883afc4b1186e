package diagram

import (
	"strings"
	"testing"

	"github.com/aatgrid/gridviz/pkg/grid"
)

func TestHierarchyDOT(t *testing.T) {
	root := grid.TileID{Zone: 43, South: true, Level: grid.L1, Col: 6, Row: 114}

	dot, err := HierarchyDOT(root)
	if err != nil {
		t.Fatalf("HierarchyDOT: %v", err)
	}

	if !strings.HasPrefix(dot, "digraph TileHierarchy {") {
		t.Errorf("unexpected DOT prefix: %q", dot[:min(len(dot), 40)])
	}
	if !strings.Contains(dot, `"43S_L1_0006_0114"`) {
		t.Error("DOT missing root identifier")
	}

	children, err := root.Children()
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	if len(children) != grid.L2PerL1 {
		t.Fatalf("children = %d, want %d", len(children), grid.L2PerL1)
	}
	for _, c := range children {
		if !strings.Contains(dot, `"`+c.String()+`"`) {
			t.Errorf("DOT missing child %s", c)
		}
	}

	if got := strings.Count(dot, "root -> "); got != grid.L2PerL1 {
		t.Errorf("edges = %d, want %d", got, grid.L2PerL1)
	}
}

func TestHierarchyDOTRejectsL2Root(t *testing.T) {
	root := grid.TileID{Zone: 43, South: true, Level: grid.L2, Col: 0, Row: 0}
	if _, err := HierarchyDOT(root); err == nil {
		t.Fatal("expected error for L2 root")
	}
}
