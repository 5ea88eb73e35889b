package colorcombine

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSLA is a hue/saturation/lightness/alpha color. Hue is in degrees
// [0, 360); saturation, lightness and alpha are in [0, 1].
type HSLA struct {
	H, S, L, A float64
}

// RGBA converts the color to a renderable RGBA Color.
func (c HSLA) RGBA() Color {
	rgb := colorful.Hsl(c.H, c.S, c.L)
	return Color{R: clamp01(rgb.R), G: clamp01(rgb.G), B: clamp01(rgb.B), A: c.A}
}

// FromRGBA converts an RGBA Color to HSLA.
func FromRGBA(c Color) HSLA {
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return HSLA{H: h, S: s, L: l, A: c.A}
}

// Darken returns the color with its lightness halved. Hue, saturation and
// alpha are unchanged.
func (c HSLA) Darken() HSLA {
	c.L /= 2
	return c
}

// Add sums two colors channel by channel and normalizes the result: hue
// wraps into [0, 360), saturation, lightness and alpha clamp to [0, 1].
// Normalization happens after the full sum, so Add is commutative.
func (c HSLA) Add(o HSLA) HSLA {
	return HSLA{
		H: wrapHue(c.H + o.H),
		S: clamp01(c.S + o.S),
		L: clamp01(c.L + o.L),
		A: clamp01(c.A + o.A),
	}
}

// Combine derives the mixed color of a group from its two members' base
// colors: both are darkened, then added.
func Combine(a, b HSLA) HSLA {
	return a.Darken().Add(b.Darken())
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
