package figure

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaletteParses(t *testing.T) {
	s := Default()
	for name, hex := range s.Colors {
		if _, err := parseHexColor(hex); err != nil {
			t.Errorf("default color %q = %q does not parse: %v", name, hex, err)
		}
	}
}

func TestColorLookup(t *testing.T) {
	s := Default()

	got := s.Color("darkblue")
	want := color.NRGBA{R: 0x00, G: 0x00, B: 0x8B, A: 0xFF}
	if got != want {
		t.Errorf("Color(darkblue) = %v, want %v", got, want)
	}

	// Unknown names fall back to black instead of failing mid-draw.
	if s.Color("no-such-color") != color.Black {
		t.Error("Color(no-such-color) should fall back to black")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"#FFFFFF", false},
		{"#00008b", false},
		{"FFFFFF", true},
		{"#FFF", true},
		{"#GGGGGG", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	theme := "[colors]\ndarkblue = \"#123456\"\ncustom = \"#ABCDEF\"\n"
	if err := os.WriteFile(path, []byte(theme), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Colors["darkblue"] != "#123456" {
		t.Errorf("darkblue override = %q, want #123456", s.Colors["darkblue"])
	}
	if s.Colors["custom"] != "#ABCDEF" {
		t.Errorf("custom color = %q, want #ABCDEF", s.Colors["custom"])
	}
	// Untouched defaults survive the overlay.
	if s.Colors["wheat"] != "#F5DEB3" {
		t.Errorf("wheat = %q, want default #F5DEB3", s.Colors["wheat"])
	}
}

func TestLoadThemeRejectsBadColor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	if err := os.WriteFile(path, []byte("[colors]\ndarkblue = \"blue\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with non-hex color: want error")
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load with missing file: want error")
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	got := withAlpha(c, 0.5).(color.NRGBA)
	if got.A < 126 || got.A > 129 {
		t.Errorf("withAlpha(0.5) alpha = %d, want ~127", got.A)
	}
	if got.R != 10 || got.G != 20 || got.B != 30 {
		t.Errorf("withAlpha changed RGB: %v", got)
	}
	if withAlpha(c, 1) != color.Color(c) {
		t.Error("withAlpha(1) should return the color unchanged")
	}
	if withAlpha(c, 0) != color.Color(c) {
		t.Error("withAlpha(0) should be treated as opaque")
	}
}
