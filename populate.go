package colorcombine

import "fmt"

// PopulateConfig controls the initial board.
type PopulateConfig struct {
	Count  int
	Radius float64
	Area   Vec2
	Band   ColorBand
}

// DefaultPopulateConfig is the standard board: 20 tokens of radius 40 in a
// 600x400 area.
var DefaultPopulateConfig = PopulateConfig{
	Count:  20,
	Radius: 40,
	Area:   Vec2{600, 400},
	Band:   DefaultColorBand,
}

// Populate places the initial tokens, centered on the world origin, and
// spawns them into s as draggable circles labelled "Color circle <i>".
// Positions are drawn first, then one color per token, both from rng.
// When the area saturates before Count tokens fit, a warning is logged and
// the shorter set is spawned.
func Populate(s *Scene, rng Rand, cfg PopulateConfig) []*Node {
	places, saturated := PlaceCircles(rng, cfg.Count, cfg.Radius, cfg.Area)
	if saturated {
		s.logf(levelWarning, "could not place circles: placed %d of %d", len(places), cfg.Count)
	}

	half := cfg.Area.Scale(0.5)
	tokens := make([]*Node, 0, len(places))
	for i, p := range places {
		color := RandomColor(rng, cfg.Band)
		n := NewCircle(fmt.Sprintf("Color circle %d", i), cfg.Radius, color)
		pos := p.Sub(half)
		n.SetPosition(pos.X, pos.Y)
		n.SetDraggable(true)
		s.Spawn(n)
		tokens = append(tokens, n)
	}
	return tokens
}
