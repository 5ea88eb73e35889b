package colorcombine

// MaxPlacementFailures is the number of consecutive rejected candidates after
// which PlaceCircles gives up and returns what it has.
const MaxPlacementFailures = 1000

// initialPlacementCap bounds the up-front allocation; larger results grow
// through append.
const initialPlacementCap = 1024

// PlaceCircles picks up to count centers inside the area [0,w)x[0,h) such that
// circles of the given radius do not overlap: every pair of returned points is
// more than 2*radius apart.
//
// Candidates are drawn uniformly and rejected when too close to an accepted
// point. After MaxPlacementFailures consecutive rejections the partial result
// is returned with saturated set. A short result is not an error; callers
// must cope with fewer points than requested.
//
// Points are in the placement frame; recenter them (for example by
// subtracting area/2) before using them as world positions.
func PlaceCircles(rng Rand, count int, radius float64, area Vec2) (points []Vec2, saturated bool) {
	if count <= 0 {
		return nil, false
	}
	if radius <= 0 || area.X <= 0 || area.Y <= 0 {
		return nil, true
	}

	points = make([]Vec2, 0, min(count, initialPlacementCap))
	minDist := 2 * radius
	fails := 0

	for len(points) < count {
		p := Vec2{X: rng.Float64() * area.X, Y: rng.Float64() * area.Y}
		if farFromAll(points, p, minDist) {
			points = append(points, p)
			fails = 0
			continue
		}
		fails++
		if fails >= MaxPlacementFailures {
			return points, true
		}
	}
	return points, false
}

func farFromAll(points []Vec2, p Vec2, minDist float64) bool {
	for _, q := range points {
		if q.Distance(p) <= minDist {
			return false
		}
	}
	return true
}
