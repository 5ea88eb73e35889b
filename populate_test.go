package colorcombine

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestPopulateDefaultBoard(t *testing.T) {
	s := newTestScene(t)
	tokens := Populate(s, NewRand(42), DefaultPopulateConfig)
	if len(tokens) != 20 {
		t.Fatalf("tokens = %d, want 20", len(tokens))
	}
	for i, tok := range tokens {
		if tok.Name != fmt.Sprintf("Color circle %d", i) {
			t.Errorf("token %d name = %q", i, tok.Name)
		}
		if !tok.IsDraggable() || tok.Radius != 40 || tok.Parent != s.Root() {
			t.Errorf("token %d = %+v", i, tok)
		}
		if s.Node(tok.ID) != tok {
			t.Errorf("token %d not in the arena", i)
		}
		p := tok.WorldPosition()
		if p.X < -300 || p.X >= 300 || p.Y < -200 || p.Y >= 200 {
			t.Errorf("token %d at %v, outside the centered area", i, p)
		}
		if tok.Base.A != DefaultColorBand.Alpha || tok.Fill != tok.Base {
			t.Errorf("token %d color = %+v", i, tok.Base)
		}
	}
	assertTokensSeparated(t, tokens, 80)
}

func assertTokensSeparated(t *testing.T, tokens []*Node, minDist float64) {
	t.Helper()
	for i := range tokens {
		for j := i + 1; j < len(tokens); j++ {
			if d := tokens[i].WorldPosition().Distance(tokens[j].WorldPosition()); d <= minDist {
				t.Fatalf("tokens %d and %d are %v apart", i, j, d)
			}
		}
	}
}

func TestPopulateDeterministic(t *testing.T) {
	s1, s2 := newTestScene(t), newTestScene(t)
	t1 := Populate(s1, NewRand(9), DefaultPopulateConfig)
	t2 := Populate(s2, NewRand(9), DefaultPopulateConfig)
	if len(t1) != len(t2) {
		t.Fatalf("lengths differ: %d vs %d", len(t1), len(t2))
	}
	for i := range t1 {
		if t1[i].Position() != t2[i].Position() || t1[i].Base != t2[i].Base {
			t.Fatalf("token %d differs", i)
		}
	}
}

func TestPopulateNoInitialMerges(t *testing.T) {
	s := newTestScene(t)
	Populate(s, NewRand(1), DefaultPopulateConfig)
	s.Step()
	if len(s.Groups()) != 0 {
		t.Errorf("groups after first step = %d, want 0", len(s.Groups()))
	}
}

func TestPopulateSaturatedWarns(t *testing.T) {
	var buf bytes.Buffer
	s := newTestScene(t)
	s.SetLogOutput(&buf)
	cfg := PopulateConfig{Count: 50, Radius: 100, Area: Vec2{300, 300}, Band: DefaultColorBand}
	tokens := Populate(s, NewRand(4), cfg)
	if len(tokens) == 0 || len(tokens) >= 50 {
		t.Fatalf("tokens = %d", len(tokens))
	}
	want := fmt.Sprintf("[colorcombine] warning: could not place circles: placed %d of 50", len(tokens))
	if !strings.Contains(buf.String(), want) {
		t.Errorf("log = %q, want %q", buf.String(), want)
	}
	if s.Len() != len(tokens) {
		t.Errorf("arena holds %d entities, want %d", s.Len(), len(tokens))
	}
}

// Drag token 3 onto token 7 and expect exactly one group owning both.
func TestDragOneTokenOntoAnother(t *testing.T) {
	s := NewScene()
	s.SetLogOutput(nil)
	s.NewCamera(Rect{Width: 1200, Height: 800})
	s.SetWindow(1200, 800)
	tokens := Populate(s, NewRand(7), DefaultPopulateConfig)
	if len(tokens) != 20 {
		t.Fatalf("tokens = %d, want 20", len(tokens))
	}
	assertTokensSeparated(t, tokens, 80)

	from, to := tokens[3], tokens[7]
	if !s.InjectDragNode(from, to, 2) {
		t.Fatal("InjectDragNode failed")
	}
	for s.PendingInjections() > 0 {
		s.Step()
	}
	s.Step()

	groups := s.Groups()
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	g := groups[0]
	if g.Group.Members != [2]EntityID{from.ID, to.ID} {
		t.Errorf("members = %v, want [%d %d]", g.Group.Members, from.ID, to.ID)
	}
	combined := Combine(from.Base, to.Base)
	if from.Fill != combined || to.Fill != combined {
		t.Error("members should show the combined color")
	}
	if from.IsDraggable() || to.IsDraggable() || !g.IsDraggable() {
		t.Error("members should lose the tag and the group carry it")
	}
	for i, tok := range tokens {
		if i == 3 || i == 7 {
			continue
		}
		if !tok.IsDraggable() || tok.Parent != s.Root() {
			t.Errorf("token %d should be untouched", i)
		}
	}
	if _, ok := s.Drag().Dragging(); ok {
		t.Error("drag should have ended")
	}
}
