package colorcombine

// ColorBand bounds the saturation and lightness of generated colors. Keeping
// both away from 0 and 1 avoids near-black, near-white and gray tokens.
type ColorBand struct {
	SatMin   float64 `yaml:"sat_min" env:"SAT_MIN"`
	SatMax   float64 `yaml:"sat_max" env:"SAT_MAX"`
	LightMin float64 `yaml:"light_min" env:"LIGHT_MIN"`
	LightMax float64 `yaml:"light_max" env:"LIGHT_MAX"`
	Alpha    float64 `yaml:"alpha" env:"ALPHA"`
}

// DefaultColorBand is the pastel band used by the game.
var DefaultColorBand = ColorBand{
	SatMin:   0.2,
	SatMax:   0.9,
	LightMin: 0.6,
	LightMax: 0.9,
	Alpha:    0.7,
}

// RandomColor draws a color from band. Hue has 0.1 degree resolution;
// saturation and lightness have 0.001 resolution and are drawn from the
// half-open ranges [min, max).
func RandomColor(rng Rand, band ColorBand) HSLA {
	hue := float64(rng.IntN(3600)) / 10
	sat := drawMilli(rng, band.SatMin, band.SatMax)
	light := drawMilli(rng, band.LightMin, band.LightMax)
	return HSLA{H: hue, S: sat, L: light, A: band.Alpha}
}

// drawMilli returns a value in [lo, hi) quantized to thousandths.
// An empty or inverted range yields lo.
func drawMilli(rng Rand, lo, hi float64) float64 {
	from := int(lo*1000 + 0.5)
	to := int(hi*1000 + 0.5)
	if to <= from {
		return float64(from) / 1000
	}
	return float64(from+rng.IntN(to-from)) / 1000
}
