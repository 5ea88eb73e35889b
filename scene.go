package colorcombine

import (
	"io"
	"os"
	"time"
)

const defaultTPS = 60

// Scene is the top-level object that owns the entity arena, the node tree,
// cameras, the window, pointer input and the drag session.
//
// A Scene is single-threaded: call every method from the goroutine that runs
// the game loop.
type Scene struct {
	root  *Node
	nodes []*Node // arena; slot 0 stays nil so EntityID 0 means "none"
	store EntityStore
	debug bool
	log   io.Writer
	tps   int

	cameras []*Camera
	window  *Window

	// Input state
	pointer     PointerSource
	input       inputState
	hoverNode   *Node
	hitBuf      []*Node
	handlers    handlerRegistry
	drag        DragController
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	// Intersection scratch buffers
	tokenBuf   []*Node
	groupedBuf []bool

	steps uint64
}

// NewScene creates an empty scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	s := &Scene{
		root:  root,
		nodes: make([]*Node, 1, 64),
		log:   os.Stderr,
		tps:   defaultTPS,
	}
	root.scene = s
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Spawn registers n in the arena, assigns its ID and attaches it to the
// root. Spawning an already-spawned node panics.
func (s *Scene) Spawn(n *Node) EntityID {
	if n.scene != nil {
		panic("colorcombine: node already spawned")
	}
	n.ID = EntityID(len(s.nodes))
	n.scene = s
	s.nodes = append(s.nodes, n)
	s.root.AddChild(n)
	return n.ID
}

// Node returns the node with the given ID, or nil.
func (s *Scene) Node(id EntityID) *Node {
	if id == 0 || int(id) >= len(s.nodes) {
		return nil
	}
	return s.nodes[id]
}

// FindNode returns the first node in arena order with the given name, or nil.
func (s *Scene) FindNode(name string) *Node {
	for _, n := range s.nodes {
		if n != nil && n.Name == name {
			return n
		}
	}
	return nil
}

// Tokens returns all circle nodes in arena order, grouped or not.
func (s *Scene) Tokens() []*Node {
	var out []*Node
	for _, n := range s.nodes {
		if n != nil && n.Type == NodeTypeCircle {
			out = append(out, n)
		}
	}
	return out
}

// Groups returns all group nodes in arena order.
func (s *Scene) Groups() []*Node {
	var out []*Node
	for _, n := range s.nodes {
		if n != nil && n.Group != nil {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of spawned entities.
func (s *Scene) Len() int {
	return len(s.nodes) - 1
}

// Reset removes every entity and drops the drag session. Cameras, window,
// pointer source, callbacks and the entity store are kept.
func (s *Scene) Reset() {
	for _, child := range s.root.children {
		child.Parent = nil
	}
	s.root.children = s.root.children[:0]
	clear(s.nodes)
	s.nodes = s.nodes[:1]
	s.hoverNode = nil
	s.drag.cancel()
}

// Drag returns the scene's drag controller.
func (s *Scene) Drag() *DragController {
	return &s.drag
}

// Step advances the simulation by one tick, in a fixed order: camera
// animation, input sampling, hover, drag start/update/end, then the overlap
// pass. Nothing blocks; each step completes before the next input sample.
func (s *Scene) Step() {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	dt := float32(1.0 / float64(s.tps))
	for _, cam := range s.cameras {
		cam.update(dt)
	}

	s.sampleInput()
	s.updateHover()
	s.drag.step(s)
	s.intersect()
	s.steps++

	if s.debug {
		s.debugLog(time.Since(t0))
	}
}

// Steps returns the number of completed steps.
func (s *Scene) Steps() uint64 {
	return s.steps
}

// --- Cameras & window ---

// NewCamera creates a camera with the given viewport and adds it to the scene.
// The first camera is the main camera used for pointer projection.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	cam := newCamera(viewport)
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// MainCamera returns the first camera, or nil.
func (s *Scene) MainCamera() *Camera {
	if len(s.cameras) == 0 {
		return nil
	}
	return s.cameras[0]
}

// SetWindow sets the size in pixels of the window the pointer lives in.
func (s *Scene) SetWindow(width, height float64) {
	s.window = &Window{Width: width, Height: height}
}

// ClearWindow removes the window; pointer projection is unavailable until
// SetWindow is called again.
func (s *Scene) ClearWindow() {
	s.window = nil
}

// Window returns the current window, or nil.
func (s *Scene) Window() *Window {
	return s.window
}

// --- Configuration ---

// SetPointerSource sets where real pointer input is read from.
func (s *Scene) SetPointerSource(p PointerSource) {
	s.pointer = p
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetTPS sets the number of steps per second used to advance camera
// animations. Non-positive values are ignored.
func (s *Scene) SetTPS(tps int) {
	if tps > 0 {
		s.tps = tps
	}
}

// SetLogOutput redirects log lines. A nil writer discards them.
func (s *Scene) SetLogOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.log = w
}

// SetDebugMode enables or disables debug mode. When enabled, per-step stats
// and tree depth warnings are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}
