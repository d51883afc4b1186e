// Package diagram builds the grid scheme's explanatory figures.
//
// Two canonical figures exist: the six-panel system overview and the
// single-panel nesting detail. Both are assembled from [figure.Panel]
// draw callbacks over the constants in [pkg/grid] and rendered to PNG by
// the figure package.
//
// A supplemental Graphviz view of the L1→L2 parent-child tree is
// available through [HierarchyDOT] and [RenderHierarchySVG] for
// debugging the identifier scheme.
package diagram
