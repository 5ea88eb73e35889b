package colorcombine

// syntheticPointerEvent represents a single injected pointer event in window
// pixels. It goes through the same projection as real pointer input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a pointer press at the given window coordinates.
// Each queued event is consumed by one Step and takes priority over the
// pointer source.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a pointer release at the given window coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: false})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two steps.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, a held move at (toX, toY), and a release there.
// The sequence consumes frames+1 steps; frames below 2 are raised to 2.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectMove(toX, toY)
	s.InjectRelease(toX, toY)
}

// InjectDragNode queues a drag from node from's world origin to node to's
// world origin, converted through the main camera and window.
// Returns false when either node is missing or there is no camera or window.
func (s *Scene) InjectDragNode(from, to *Node, frames int) bool {
	if from == nil || to == nil {
		return false
	}
	fx, fy, ok := s.WorldToWindow(from.WorldPosition())
	if !ok {
		return false
	}
	tx, ty, ok := s.WorldToWindow(to.WorldPosition())
	if !ok {
		return false
	}
	s.InjectDrag(fx, fy, tx, ty, frames)
	return true
}

// PendingInjections returns the number of queued synthetic events.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// popInjected removes and returns the oldest queued event.
func (s *Scene) popInjected() (syntheticPointerEvent, bool) {
	if len(s.injectQueue) == 0 {
		return syntheticPointerEvent{}, false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	return evt, true
}
