package figure

import (
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"
)

// Style is a named color palette. Drawing code refers to colors by name
// ("darkblue", "wheat", ...) so a theme file can restyle every diagram
// without touching layout code.
type Style struct {
	Colors map[string]string `toml:"colors"`
}

// Default returns the built-in palette. The names and values match the
// CSS/X11 colors the diagrams were designed with.
func Default() *Style {
	return &Style{Colors: map[string]string{
		"black":     "#000000",
		"white":     "#FFFFFF",
		"gray":      "#808080",
		"lightgray": "#D3D3D3",
		"darkblue":  "#00008B",
		"blue":      "#0000FF",
		"lightblue": "#ADD8E6",
		"darkgreen": "#006400",
		"lightgreen": "#90EE90",
		"darkred":   "#8B0000",
		"red":       "#FF0000",
		"orange":    "#FFA500",
		"yellow":    "#FFFF00",
		"wheat":     "#F5DEB3",
	}}
}

// Load reads a TOML theme file and overlays its colors on the default
// palette. Unknown names are allowed (diagram code simply never asks for
// them); malformed hex values are rejected up front.
func Load(path string) (*Style, error) {
	var overlay Style
	if _, err := toml.DecodeFile(path, &overlay); err != nil {
		return nil, fmt.Errorf("load theme %s: %w", path, err)
	}

	s := Default()
	for name, hex := range overlay.Colors {
		if _, err := parseHexColor(hex); err != nil {
			return nil, fmt.Errorf("theme %s: color %q: %w", path, name, err)
		}
		s.Colors[name] = hex
	}
	return s, nil
}

// Color resolves a palette name. Unknown names and unparseable values
// fall back to black rather than failing mid-draw.
func (s *Style) Color(name string) color.Color {
	hex, ok := s.Colors[name]
	if !ok {
		return color.Black
	}
	c, err := parseHexColor(hex)
	if err != nil {
		return color.Black
	}
	return c
}

func parseHexColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q (want #RRGGBB)", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q (want #RRGGBB)", s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// withAlpha scales the opacity of a color. Alpha outside (0, 1] is
// treated as fully opaque.
func withAlpha(c color.Color, alpha float64) color.Color {
	if alpha <= 0 || alpha >= 1 {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*alpha + 0.5)
	return n
}
