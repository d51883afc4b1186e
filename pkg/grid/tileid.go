package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// TileID identifies a single tile within a UTM zone grid.
//
// The canonical string form is "43S_L1_0006_0114": zone number with
// hemisphere letter, level name, then four-digit column and row indices
// counted from the zone's grid origin.
type TileID struct {
	Zone  int  // UTM zone number (1..60)
	South bool // hemisphere; the scheme only covers the southern one
	Level Level
	Col   int
	Row   int
}

// String formats the tile identifier in its canonical form.
func (id TileID) String() string {
	hemi := "N"
	if id.South {
		hemi = "S"
	}
	return fmt.Sprintf("%d%s_%s_%04d_%04d", id.Zone, hemi, id.Level, id.Col, id.Row)
}

// ParseTileID parses a canonical tile identifier such as "43S_L1_0006_0114".
func ParseTileID(s string) (TileID, error) {
	parts := strings.Split(s, "_")
	if len(parts) != 4 {
		return TileID{}, fmt.Errorf("malformed tile ID %q: want 4 fields, got %d", s, len(parts))
	}

	zone, south, err := parseZoneField(parts[0])
	if err != nil {
		return TileID{}, fmt.Errorf("malformed tile ID %q: %w", s, err)
	}
	level, err := ParseLevel(parts[1])
	if err != nil {
		return TileID{}, fmt.Errorf("malformed tile ID %q: %w", s, err)
	}
	col, err := strconv.Atoi(parts[2])
	if err != nil || col < 0 {
		return TileID{}, fmt.Errorf("malformed tile ID %q: bad column %q", s, parts[2])
	}
	row, err := strconv.Atoi(parts[3])
	if err != nil || row < 0 {
		return TileID{}, fmt.Errorf("malformed tile ID %q: bad row %q", s, parts[3])
	}

	return TileID{Zone: zone, South: south, Level: level, Col: col, Row: row}, nil
}

func parseZoneField(s string) (zone int, south bool, err error) {
	if len(s) < 2 {
		return 0, false, fmt.Errorf("bad zone field %q", s)
	}
	switch s[len(s)-1] {
	case 'S':
		south = true
	case 'N':
		south = false
	default:
		return 0, false, fmt.Errorf("bad hemisphere in zone field %q", s)
	}
	zone, err = strconv.Atoi(s[:len(s)-1])
	if err != nil || zone < 1 || zone > 60 {
		return 0, false, fmt.Errorf("bad zone number in %q", s)
	}
	return zone, south, nil
}

// Parent returns the L1 tile containing an L2 tile.
// Indices divide by the nesting factor: L2 (2,3) through (7,8) all map to
// L1 (0,0) through (1,1) blocks of six.
func (id TileID) Parent() (TileID, error) {
	if id.Level != L2 {
		return TileID{}, fmt.Errorf("tile %s has no parent: only L2 tiles nest", id)
	}
	p := id
	p.Level = L1
	p.Col = id.Col / L2PerL1Edge
	p.Row = id.Row / L2PerL1Edge
	return p, nil
}

// Child returns the L2 tile at offset (i, j) within an L1 tile, where
// both offsets range over [0, L2PerL1Edge).
func (id TileID) Child(i, j int) (TileID, error) {
	if id.Level != L1 {
		return TileID{}, fmt.Errorf("tile %s has no children: only L1 tiles subdivide", id)
	}
	if i < 0 || i >= L2PerL1Edge || j < 0 || j >= L2PerL1Edge {
		return TileID{}, fmt.Errorf("child offset (%d,%d) outside %dx%d grid", i, j, L2PerL1Edge, L2PerL1Edge)
	}
	c := id
	c.Level = L2
	c.Col = id.Col*L2PerL1Edge + i
	c.Row = id.Row*L2PerL1Edge + j
	return c, nil
}

// Children returns all 36 L2 tiles nested in an L1 tile, row-major.
func (id TileID) Children() ([]TileID, error) {
	if id.Level != L1 {
		return nil, fmt.Errorf("tile %s has no children: only L1 tiles subdivide", id)
	}
	out := make([]TileID, 0, L2PerL1)
	for j := 0; j < L2PerL1Edge; j++ {
		for i := 0; i < L2PerL1Edge; i++ {
			c, _ := id.Child(i, j)
			out = append(out, c)
		}
	}
	return out, nil
}
