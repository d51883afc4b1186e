package figure

import (
	"image/color"
	"testing"
)

func TestViridisEndpoints(t *testing.T) {
	start := color.NRGBA{R: 0x44, G: 0x01, B: 0x54, A: 0xFF}
	end := color.NRGBA{R: 0xFD, G: 0xE7, B: 0x25, A: 0xFF}

	if got := Viridis(0); got != start {
		t.Errorf("Viridis(0) = %v, want %v", got, start)
	}
	if got := Viridis(1); got != end {
		t.Errorf("Viridis(1) = %v, want %v", got, end)
	}

	// Out-of-range values clamp.
	if got := Viridis(-0.5); got != start {
		t.Errorf("Viridis(-0.5) = %v, want %v", got, start)
	}
	if got := Viridis(2); got != end {
		t.Errorf("Viridis(2) = %v, want %v", got, end)
	}
}

func TestViridisInterpolates(t *testing.T) {
	// Green channel grows monotonically along the ramp, which is what
	// makes adjacent index cells distinguishable.
	prev := -1
	for i := 0; i <= 36; i++ {
		c := Viridis(float64(i) / 36).(color.NRGBA)
		if int(c.G) < prev {
			t.Fatalf("green channel not monotonic at t=%d/36: %d < %d", i, c.G, prev)
		}
		prev = int(c.G)
	}
}
