package colorcombine

import (
	"math"
	"testing"
)

// maxRand always returns the largest value IntN may produce.
type maxRand struct{}

func (maxRand) IntN(n int) int   { return n - 1 }
func (maxRand) Float64() float64 { return math.Nextafter(1, 0) }

// zeroRand always returns zero.
type zeroRand struct{}

func (zeroRand) IntN(int) int     { return 0 }
func (zeroRand) Float64() float64 { return 0 }

func isMultiple(v, step float64) bool {
	q := v / step
	return math.Abs(q-math.Round(q)) < 1e-6
}

func TestRandomColorWithinBand(t *testing.T) {
	rng := NewRand(3)
	band := DefaultColorBand
	for i := 0; i < 2000; i++ {
		c := RandomColor(rng, band)
		if c.H < 0 || c.H >= 360 {
			t.Fatalf("hue %v out of [0, 360)", c.H)
		}
		if c.S < band.SatMin || c.S >= band.SatMax {
			t.Fatalf("saturation %v out of [%v, %v)", c.S, band.SatMin, band.SatMax)
		}
		if c.L < band.LightMin || c.L >= band.LightMax {
			t.Fatalf("lightness %v out of [%v, %v)", c.L, band.LightMin, band.LightMax)
		}
		if c.A != band.Alpha {
			t.Fatalf("alpha = %v, want %v", c.A, band.Alpha)
		}
		if !isMultiple(c.H, 0.1) || !isMultiple(c.S, 0.001) || !isMultiple(c.L, 0.001) {
			t.Fatalf("color %+v not on the 0.1 / 0.001 grid", c)
		}
	}
}

func TestRandomColorBounds(t *testing.T) {
	lo := RandomColor(zeroRand{}, DefaultColorBand)
	if lo != (HSLA{H: 0, S: 0.2, L: 0.6, A: 0.7}) {
		t.Errorf("lowest draw = %+v", lo)
	}
	hi := RandomColor(maxRand{}, DefaultColorBand)
	if !approxEqual(hi.H, 359.9, 1e-9) || !approxEqual(hi.S, 0.899, 1e-9) || !approxEqual(hi.L, 0.899, 1e-9) {
		t.Errorf("highest draw = %+v, want H 359.9 S 0.899 L 0.899", hi)
	}
}

func TestRandomColorDeterministic(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for i := 0; i < 50; i++ {
		if ca, cb := RandomColor(a, DefaultColorBand), RandomColor(b, DefaultColorBand); ca != cb {
			t.Fatalf("draw %d: %+v != %+v", i, ca, cb)
		}
	}
}

func TestRandomColorEmptyRange(t *testing.T) {
	band := ColorBand{SatMin: 0.5, SatMax: 0.5, LightMin: 0.8, LightMax: 0.3, Alpha: 1}
	c := RandomColor(NewRand(1), band)
	if c.S != 0.5 || c.L != 0.8 {
		t.Errorf("empty ranges should yield the minimum, got %+v", c)
	}
}
