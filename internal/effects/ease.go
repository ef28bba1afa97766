package effects

import (
	"image/color"
	"math"
)

// EaseOutCubic maps linear progress t in [0,1] to a decelerating curve.
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

// Clamp01 limits v to [0,1].
func Clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// HSV converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1).
// hsl(h, 100%, 50%) is HSV(h, 1, 1).
func HSV(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 255,
	}
}
