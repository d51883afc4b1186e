package figure

import "image/color"

// viridisStops are evenly spaced anchor colors of the viridis colormap.
// Intermediate values are linearly interpolated between neighbors.
var viridisStops = []color.NRGBA{
	{R: 0x44, G: 0x01, B: 0x54, A: 0xFF},
	{R: 0x48, G: 0x28, B: 0x78, A: 0xFF},
	{R: 0x3E, G: 0x49, B: 0x89, A: 0xFF},
	{R: 0x31, G: 0x68, B: 0x8E, A: 0xFF},
	{R: 0x26, G: 0x82, B: 0x8E, A: 0xFF},
	{R: 0x1F, G: 0x9E, B: 0x89, A: 0xFF},
	{R: 0x35, G: 0xB7, B: 0x79, A: 0xFF},
	{R: 0x6E, G: 0xCE, B: 0x58, A: 0xFF},
	{R: 0xB5, G: 0xDE, B: 0x2B, A: 0xFF},
	{R: 0xFD, G: 0xE7, B: 0x25, A: 0xFF},
}

// Viridis maps t in [0, 1] onto the viridis color ramp. Values outside
// the range clamp to the endpoints.
func Viridis(t float64) color.Color {
	if t <= 0 {
		return viridisStops[0]
	}
	if t >= 1 {
		return viridisStops[len(viridisStops)-1]
	}

	pos := t * float64(len(viridisStops)-1)
	i := int(pos)
	frac := pos - float64(i)

	a, b := viridisStops[i], viridisStops[i+1]
	return color.NRGBA{
		R: lerp8(a.R, b.R, frac),
		G: lerp8(a.G, b.G, frac),
		B: lerp8(a.B, b.B, frac),
		A: 0xFF,
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
