package grid

import "testing"

func TestZoneForLongitude(t *testing.T) {
	tests := []struct {
		name    string
		lon     float64
		want    int
		wantErr bool
	}{
		{"heard island", 73.5, 43, false},
		{"macquarie island", 158.85, 57, false},
		{"davis station", 77.97, 43, false},
		{"west antimeridian", -180, 1, false},
		{"east antimeridian", 180, 60, false},
		{"greenwich", 0, 31, false},
		{"out of range west", -180.01, 0, true},
		{"out of range east", 181, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ZoneForLongitude(tt.lon)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ZoneForLongitude(%g) error = %v, wantErr %v", tt.lon, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ZoneForLongitude(%g) = %d, want %d", tt.lon, got, tt.want)
			}
		})
	}
}

func TestZoneBounds(t *testing.T) {
	// Zone 43 spans 72..78°E with central meridian 75°E.
	if got := ZoneWestLon(43); got != 72 {
		t.Errorf("ZoneWestLon(43) = %g, want 72", got)
	}
	if got := ZoneCentralLon(43); got != 75 {
		t.Errorf("ZoneCentralLon(43) = %g, want 75", got)
	}

	// Every landmark longitude must fall inside its computed zone.
	for _, lm := range Landmarks() {
		z, err := ZoneForLongitude(lm.Lon)
		if err != nil {
			t.Fatalf("ZoneForLongitude(%s): %v", lm.Name, err)
		}
		west := ZoneWestLon(z)
		if lm.Lon < west || lm.Lon >= west+ZoneWidthDeg {
			t.Errorf("%s: lon %g outside zone %d bounds [%g, %g)", lm.Name, lm.Lon, z, west, west+ZoneWidthDeg)
		}
	}
}

func TestCoveredZones(t *testing.T) {
	min, max := CoveredZones()
	if min != 38 || max != 57 {
		t.Errorf("CoveredZones() = %d..%d, want 38..57", min, max)
	}
	if min > max {
		t.Errorf("CoveredZones() inverted: %d > %d", min, max)
	}
}
