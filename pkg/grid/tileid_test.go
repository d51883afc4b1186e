package grid

import "testing"

func TestTileIDString(t *testing.T) {
	id := TileID{Zone: 43, South: true, Level: L1, Col: 6, Row: 114}
	if got := id.String(); got != "43S_L1_0006_0114" {
		t.Errorf("String() = %q, want %q", got, "43S_L1_0006_0114")
	}
}

func TestParseTileID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TileID
		wantErr bool
	}{
		{"canonical", "43S_L1_0006_0114", TileID{Zone: 43, South: true, Level: L1, Col: 6, Row: 114}, false},
		{"L2 north", "7N_L2_0000_0001", TileID{Zone: 7, South: false, Level: L2, Col: 0, Row: 1}, false},
		{"too few fields", "43S_L1_0006", TileID{}, true},
		{"too many fields", "43S_L1_0006_0114_9", TileID{}, true},
		{"bad hemisphere", "43X_L1_0006_0114", TileID{}, true},
		{"zone out of range", "61S_L1_0006_0114", TileID{}, true},
		{"bad level", "43S_L9_0006_0114", TileID{}, true},
		{"non-numeric column", "43S_L1_00a6_0114", TileID{}, true},
		{"negative row", "43S_L1_0006_-114", TileID{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTileID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTileID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseTileID(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTileIDRoundTrip(t *testing.T) {
	for _, s := range []string{"43S_L1_0006_0114", "57S_L2_0013_0020", "38S_L1_0000_0000"} {
		id, err := ParseTileID(s)
		if err != nil {
			t.Fatalf("ParseTileID(%q): %v", s, err)
		}
		if got := id.String(); got != s {
			t.Errorf("round trip %q = %q", s, got)
		}
	}
}

func TestParentChild(t *testing.T) {
	l1 := TileID{Zone: 43, South: true, Level: L1, Col: 0, Row: 0}

	// The indexing example from the overview diagram: L2 columns 2-3 and
	// rows 3-4 all belong to L1 (0,0).
	for _, col := range []int{2, 3} {
		for _, row := range []int{3, 4} {
			l2 := TileID{Zone: 43, South: true, Level: L2, Col: col, Row: row}
			p, err := l2.Parent()
			if err != nil {
				t.Fatalf("Parent(%s): %v", l2, err)
			}
			if p != l1 {
				t.Errorf("Parent(%s) = %s, want %s", l2, p, l1)
			}
		}
	}

	c, err := l1.Child(2, 3)
	if err != nil {
		t.Fatalf("Child: %v", err)
	}
	back, err := c.Parent()
	if err != nil {
		t.Fatalf("Parent: %v", err)
	}
	if back != l1 {
		t.Errorf("Parent(Child(2,3)) = %s, want %s", back, l1)
	}
}

func TestParentChildErrors(t *testing.T) {
	l1 := TileID{Zone: 43, South: true, Level: L1}
	l2 := TileID{Zone: 43, South: true, Level: L2}

	if _, err := l1.Parent(); err == nil {
		t.Error("Parent() on L1 tile: want error")
	}
	if _, err := l2.Child(0, 0); err == nil {
		t.Error("Child() on L2 tile: want error")
	}
	if _, err := l1.Child(6, 0); err == nil {
		t.Error("Child(6,0): want error, offset out of grid")
	}
	if _, err := l2.Children(); err == nil {
		t.Error("Children() on L2 tile: want error")
	}
}

func TestChildren(t *testing.T) {
	l1 := TileID{Zone: 43, South: true, Level: L1, Col: 1, Row: 2}
	kids, err := l1.Children()
	if err != nil {
		t.Fatalf("Children: %v", err)
	}
	if len(kids) != L2PerL1 {
		t.Fatalf("len(Children()) = %d, want %d", len(kids), L2PerL1)
	}
	seen := make(map[TileID]bool)
	for _, c := range kids {
		if seen[c] {
			t.Errorf("duplicate child %s", c)
		}
		seen[c] = true
		p, err := c.Parent()
		if err != nil {
			t.Fatalf("Parent(%s): %v", c, err)
		}
		if p != l1 {
			t.Errorf("Parent(%s) = %s, want %s", c, p, l1)
		}
	}
}
