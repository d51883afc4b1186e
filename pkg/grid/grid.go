package grid

import "fmt"

// Geometry constants of the tiling scheme.
const (
	// L1TileKm is the edge length of a coarse L1 tile in kilometers.
	L1TileKm = 36

	// L2TileKm is the edge length of a fine L2 tile in kilometers.
	L2TileKm = 6

	// L2PerL1Edge is the number of L2 tiles along one edge of an L1 tile.
	L2PerL1Edge = 6

	// L2PerL1 is the total number of L2 tiles nested in one L1 tile.
	L2PerL1 = L2PerL1Edge * L2PerL1Edge

	// TilePixels is the raster edge length shared by both levels.
	TilePixels = 600
)

// Level is a grid level: L1 (coarse) or L2 (fine).
type Level int

// Grid levels.
const (
	L1 Level = 1
	L2 Level = 2
)

// Levels returns all grid levels, coarse first.
func Levels() []Level {
	return []Level{L1, L2}
}

// String returns the level name as used in tile identifiers ("L1", "L2").
func (l Level) String() string {
	return fmt.Sprintf("L%d", int(l))
}

// ParseLevel parses a level name such as "L1".
func ParseLevel(s string) (Level, error) {
	switch s {
	case "L1":
		return L1, nil
	case "L2":
		return L2, nil
	}
	return 0, fmt.Errorf("unknown grid level %q (must be L1 or L2)", s)
}

// TileKm returns the tile edge length in kilometers.
func (l Level) TileKm() int {
	if l == L1 {
		return L1TileKm
	}
	return L2TileKm
}

// TileMeters returns the tile edge length in meters.
func (l Level) TileMeters() int {
	return l.TileKm() * 1000
}

// MetersPerPixel returns the ground resolution of the level's raster.
// Both levels share the same pixel count, so resolution follows directly
// from the tile edge length: 60 m/px at L1 and 10 m/px at L2.
func (l Level) MetersPerPixel() float64 {
	return float64(l.TileMeters()) / TilePixels
}

// Use returns the intended use of the level, as shown in the diagrams.
func (l Level) Use() string {
	if l == L1 {
		return "Regional overview, broad coverage"
	}
	return "Detailed analysis, high resolution"
}
