// Package figure implements a small multi-panel figure model for static
// raster diagrams.
//
// A [Figure] is an in-memory drawing surface divided into a grid of
// [Panel] slots. Each panel owns a data coordinate system ([Axes]) and a
// Draw callback that paints rectangles, lines, markers, text, and
// annotations in data coordinates. Rendering rasterizes the whole figure
// onto a gg canvas and encodes it as PNG.
//
// Sizes follow print conventions: the canvas is specified in inches at a
// DPI, and all font sizes, line widths, and paddings are given in
// typographic points (1/72 inch), so diagrams keep their proportions at
// any supersampling scale.
//
// Colors are resolved by name through a [Style] palette, which can be
// overridden from a TOML theme file.
package figure
