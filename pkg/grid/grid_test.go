package grid

import "testing"

func TestNestingArithmetic(t *testing.T) {
	if L2TileKm*L2PerL1Edge != L1TileKm {
		t.Errorf("L2TileKm*L2PerL1Edge = %d, want %d", L2TileKm*L2PerL1Edge, L1TileKm)
	}
	if L2PerL1 != 36 {
		t.Errorf("L2PerL1 = %d, want 36", L2PerL1)
	}
}

func TestLevelGeometry(t *testing.T) {
	tests := []struct {
		level  Level
		km     int
		meters int
		mpp    float64
	}{
		{L1, 36, 36000, 60},
		{L2, 6, 6000, 10},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := tt.level.TileKm(); got != tt.km {
				t.Errorf("TileKm() = %d, want %d", got, tt.km)
			}
			if got := tt.level.TileMeters(); got != tt.meters {
				t.Errorf("TileMeters() = %d, want %d", got, tt.meters)
			}
			if got := tt.level.MetersPerPixel(); got != tt.mpp {
				t.Errorf("MetersPerPixel() = %g, want %g", got, tt.mpp)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"L1", L1, false},
		{"L2", L2, false},
		{"L3", 0, true},
		{"l1", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
