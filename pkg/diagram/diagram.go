package diagram

import (
	"fmt"
	"strings"

	"github.com/aatgrid/gridviz/pkg/figure"
)

// Figure names accepted by the CLI.
const (
	FigureOverview = "overview"
	FigureNesting  = "nesting"
)

// Spec couples a figure name with its canonical artifact file name and
// builder.
type Spec struct {
	Name  string
	File  string
	Short string
	Build func() *figure.Figure
}

// Figures returns the canonical figures in render order.
func Figures() []Spec {
	return []Spec{
		{
			Name:  FigureOverview,
			File:  "grid_system_overview.png",
			Short: "complete system overview (six panels)",
			Build: Overview,
		},
		{
			Name:  FigureNesting,
			File:  "grid_nesting_detail.png",
			Short: "detailed view of tile nesting",
			Build: NestingDetail,
		},
	}
}

// ByName looks up a figure spec by CLI name.
func ByName(name string) (Spec, error) {
	var known []string
	for _, s := range Figures() {
		if s.Name == name {
			return s, nil
		}
		known = append(known, s.Name)
	}
	return Spec{}, fmt.Errorf("unknown figure %q (must be one of: %s)", name, strings.Join(known, ", "))
}
