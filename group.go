package colorcombine

import "fmt"

// intersect is the per-step overlap pass. It snapshots the top-level,
// draggable, ungrouped tokens in arena order and checks every unordered pair
// (i < j) once. The lowest-ID pair wins: a token grouped earlier in the pass
// is skipped for the rest of it.
func (s *Scene) intersect() {
	s.tokenBuf = s.tokenBuf[:0]
	for _, n := range s.nodes {
		if n == nil || n.Type != NodeTypeCircle || n.Parent != s.root || !n.IsDraggable() {
			continue
		}
		s.tokenBuf = append(s.tokenBuf, n)
	}

	tokens := s.tokenBuf
	if cap(s.groupedBuf) < len(tokens) {
		s.groupedBuf = make([]bool, len(tokens))
	}
	grouped := s.groupedBuf[:len(tokens)]
	clear(grouped)

	for i := 0; i < len(tokens); i++ {
		for j := i + 1; j < len(tokens) && !grouped[i]; j++ {
			if grouped[j] {
				continue
			}
			a, b := tokens[i], tokens[j]
			if !Overlaps(a, b) {
				continue
			}
			s.formGroup(a, b)
			grouped[i], grouped[j] = true, true
		}
	}
}

// Overlaps reports whether two circles intersect: the distance between their
// world centers is strictly less than the sum of their radii.
func Overlaps(a, b *Node) bool {
	return a.WorldPosition().Distance(b.WorldPosition()) < a.Radius+b.Radius
}

// formGroup fuses a and b: a new draggable group node at the origin takes
// both as children, both display the combined color, and both lose the
// draggable tag.
func (s *Scene) formGroup(a, b *Node) *Node {
	combined := Combine(a.Base, b.Base)

	g := NewContainer(fmt.Sprintf("Color group with circles %d and %d", a.ID, b.ID))
	g.Interactable = true
	g.Draggable = true
	g.Group = &GroupInfo{
		Combined:   combined,
		Individual: [2]HSLA{a.Base, b.Base},
	}
	s.Spawn(g)
	g.Group.Members = [2]EntityID{a.ID, b.ID}

	for _, m := range [2]*Node{a, b} {
		g.AddChild(m)
		m.Fill = combined
		m.Draggable = false
		m.Membership = g.ID
	}

	s.logf(levelInfo, "%s and %s overlap", a.Name, b.Name)
	s.fireMerge(MergeContext{Group: g, First: a, Second: b, Combined: combined})
	return g
}
