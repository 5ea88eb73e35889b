package colorcombine

// --- Hit shapes ---

// HitShape is a hit-testing region in a node's local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Pointer sampling ---

// PointerSource supplies the raw pointer state once per step. Hosts adapt
// their windowing library to it.
type PointerSource interface {
	// CursorPosition returns the cursor in window pixels. ok is false when
	// the cursor position is unknown (for example, outside the window).
	CursorPosition() (x, y float64, ok bool)
	// IsButtonPressed reports whether the button is currently held.
	IsButtonPressed(button MouseButton) bool
}

// Window is the single active viewport the pointer lives in.
type Window struct {
	Width, Height float64
}

// inputState is the pointer state sampled at the start of a step.
type inputState struct {
	cursorX, cursorY float64
	cursorIn         bool // cursor known and inside the window
	pressed          bool
	prevPressed      bool
}

func (in *inputState) justPressed() bool  { return in.pressed && !in.prevPressed }
func (in *inputState) justReleased() bool { return !in.pressed && in.prevPressed }

// sampleInput reads one injected event if any are queued, otherwise the
// pointer source. With neither, the cursor is unknown and the button is up.
func (s *Scene) sampleInput() {
	in := &s.input
	in.prevPressed = in.pressed

	var x, y float64
	var ok, pressed bool
	if evt, queued := s.popInjected(); queued {
		x, y, ok, pressed = evt.screenX, evt.screenY, true, evt.pressed
	} else if s.pointer != nil {
		x, y, ok = s.pointer.CursorPosition()
		pressed = s.pointer.IsButtonPressed(MouseButtonLeft)
	}

	in.cursorX, in.cursorY = x, y
	in.cursorIn = ok && s.window != nil &&
		Rect{Width: s.window.Width, Height: s.window.Height}.Contains(x, y)
	in.pressed = pressed
}

// CursorWorldPosition projects the sampled cursor into world space through
// the main camera. Returns false when there is no window, no camera, or the
// cursor is outside the window.
func (s *Scene) CursorWorldPosition() (Vec2, bool) {
	if !s.input.cursorIn || s.window == nil {
		return Vec2{}, false
	}
	cam := s.MainCamera()
	if cam == nil {
		return Vec2{}, false
	}
	nx, ny := pixelToNDC(s.input.cursorX, s.input.cursorY, s.window.Width, s.window.Height)
	return cam.NDCToWorld(nx, ny)
}

// WorldToWindow converts a world point to window pixels through the main
// camera. Returns false without a window or camera.
func (s *Scene) WorldToWindow(p Vec2) (x, y float64, ok bool) {
	cam := s.MainCamera()
	if cam == nil || s.window == nil {
		return 0, 0, false
	}
	nx, ny := cam.WorldToNDC(p.X, p.Y)
	return (nx + 1) / 2 * s.window.Width, (1 - ny) / 2 * s.window.Height, true
}

// --- Hit testing ---

// collectInteractable walks the tree in painter order (DFS, child order),
// appending nodes with a hit shape to buf. Skips Visible=false or
// Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if n.HitShape.Contains(lx, ly) {
			return n
		}
	}
	return nil
}

// updateHover recomputes which nodes are hovered: the topmost hit node and
// all of its ancestors. Fires enter/leave when the hit node changes.
func (s *Scene) updateHover() {
	for _, n := range s.nodes {
		if n != nil {
			n.hovered = false
		}
	}

	var target *Node
	world, ok := s.CursorWorldPosition()
	if ok {
		target = s.hitTest(world.X, world.Y)
	}
	for p := target; p != nil && p != s.root; p = p.Parent {
		p.hovered = true
	}

	if target != s.hoverNode {
		if s.hoverNode != nil {
			s.firePointer(EventPointerLeave, s.hoverNode, world)
		}
		if target != nil {
			s.firePointer(EventPointerEnter, target, world)
		}
		s.hoverNode = target
	}
}

// HoverTarget returns the topmost node under the cursor after the last
// step, or nil.
func (s *Scene) HoverTarget() *Node {
	return s.hoverNode
}
