package curvekit

import (
	"image/color"
	"math"
)

// Color represents a vertex color with red, green, blue, and alpha
// components, each in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Default colors of the editor demo: white control points, pale green
// curve samples.
var (
	ControlColor = RGB(1, 1, 1)
	SampleColor  = RGB(180.0/255, 1, 180.0/255)
)

// RGBA8 returns the color packed into 8-bit components, the layout the
// demos upload as normalized vertex attributes.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return uint8(clamp255(c.R * 255)),
		uint8(clamp255(c.G * 255)),
		uint8(clamp255(c.B * 255)),
		uint8(clamp255(c.A * 255))
}

// Color converts to the standard color.Color interface, used by the
// software snapshot renderer.
func (c Color) Color() color.Color {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func clamp255(v float64) float64 {
	return math.Max(0, math.Min(255, math.Round(v)))
}
