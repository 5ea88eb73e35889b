package colorcombine

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, every interaction and merge event is forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries event data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	EntityID EntityID
	GlobalX  float64
	GlobalY  float64
	Button   MouseButton
	// Drag fields (valid for EventDragStart, EventDrag, EventDragEnd)
	StartX float64
	StartY float64
	DeltaX float64
	DeltaY float64
	// Merge fields (valid for EventMerge; EntityID is the group)
	Members  [2]EntityID
	Combined HSLA
}

// PointerContext carries pointer event data.
type PointerContext struct {
	Node     *Node
	EntityID EntityID
	GlobalX  float64
	GlobalY  float64
	Button   MouseButton
}

// DragContext carries drag event data.
type DragContext struct {
	Node     *Node
	EntityID EntityID
	GlobalX  float64
	GlobalY  float64
	StartX   float64
	StartY   float64
	DeltaX   float64
	DeltaY   float64
}

// MergeContext carries the result of two tokens fusing.
type MergeContext struct {
	Group    *Node
	First    *Node
	Second   *Node
	Combined HSLA
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type dragHandler struct {
	id uint32
	fn func(DragContext)
}

type mergeHandler struct {
	id uint32
	fn func(MergeContext)
}

type handlerRegistry struct {
	pointerDown  []pointerHandler
	pointerUp    []pointerHandler
	pointerEnter []pointerHandler
	pointerLeave []pointerHandler
	dragStart    []dragHandler
	drag         []dragHandler
	dragEnd      []dragHandler
	merge        []mergeHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = removeHandler(h.reg.pointerDown, h.id, func(p pointerHandler) uint32 { return p.id })
	case EventPointerUp:
		h.reg.pointerUp = removeHandler(h.reg.pointerUp, h.id, func(p pointerHandler) uint32 { return p.id })
	case EventPointerEnter:
		h.reg.pointerEnter = removeHandler(h.reg.pointerEnter, h.id, func(p pointerHandler) uint32 { return p.id })
	case EventPointerLeave:
		h.reg.pointerLeave = removeHandler(h.reg.pointerLeave, h.id, func(p pointerHandler) uint32 { return p.id })
	case EventDragStart:
		h.reg.dragStart = removeHandler(h.reg.dragStart, h.id, func(d dragHandler) uint32 { return d.id })
	case EventDrag:
		h.reg.drag = removeHandler(h.reg.drag, h.id, func(d dragHandler) uint32 { return d.id })
	case EventDragEnd:
		h.reg.dragEnd = removeHandler(h.reg.dragEnd, h.id, func(d dragHandler) uint32 { return d.id })
	case EventMerge:
		h.reg.merge = removeHandler(h.reg.merge, h.id, func(m mergeHandler) uint32 { return m.id })
	}
}

// removeHandler deletes the entry with the given id, zeroing the vacated
// tail slot so the backing array does not retain the closure.
func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			copy(s[i:], s[i+1:])
			var zero T
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) next() uint32 {
	r.nextID++
	return r.nextID
}

// --- Scene-level event registration ---

// OnPointerDown registers a callback fired when the pointer button is pressed.
// Node is the topmost node under the cursor, or nil.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.pointerDown = append(s.handlers.pointerDown, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerDown}
}

// OnPointerUp registers a callback fired when the pointer button is released.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.pointerUp = append(s.handlers.pointerUp, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerUp}
}

// OnPointerEnter registers a callback fired when the pointer moves over a new node.
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.pointerEnter = append(s.handlers.pointerEnter, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerEnter}
}

// OnPointerLeave registers a callback fired when the pointer leaves a node.
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.pointerLeave = append(s.handlers.pointerLeave, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerLeave}
}

// OnDragStart registers a callback fired when a draggable node is picked up.
func (s *Scene) OnDragStart(fn func(DragContext)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.dragStart = append(s.handlers.dragStart, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDragStart}
}

// OnDrag registers a callback fired each step the held node is moved.
func (s *Scene) OnDrag(fn func(DragContext)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.drag = append(s.handlers.drag, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDrag}
}

// OnDragEnd registers a callback fired when the held node is released.
func (s *Scene) OnDragEnd(fn func(DragContext)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.dragEnd = append(s.handlers.dragEnd, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDragEnd}
}

// OnMerge registers a callback fired after two tokens fuse into a group.
func (s *Scene) OnMerge(fn func(MergeContext)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.merge = append(s.handlers.merge, mergeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventMerge}
}

// --- Event dispatch ---

func (s *Scene) firePointer(typ EventType, node *Node, world Vec2) {
	var entityID EntityID
	if node != nil {
		entityID = node.ID
	}
	ctx := PointerContext{
		Node: node, EntityID: entityID,
		GlobalX: world.X, GlobalY: world.Y,
		Button: MouseButtonLeft,
	}
	var handlers []pointerHandler
	switch typ {
	case EventPointerDown:
		handlers = s.handlers.pointerDown
	case EventPointerUp:
		handlers = s.handlers.pointerUp
	case EventPointerEnter:
		handlers = s.handlers.pointerEnter
	case EventPointerLeave:
		handlers = s.handlers.pointerLeave
	}
	for _, h := range handlers {
		h.fn(ctx)
	}
	if node != nil {
		s.emit(InteractionEvent{
			Type: typ, EntityID: entityID,
			GlobalX: world.X, GlobalY: world.Y,
			Button: MouseButtonLeft,
		})
	}
}

func (s *Scene) fireDrag(typ EventType, ctx DragContext) {
	var handlers []dragHandler
	switch typ {
	case EventDragStart:
		handlers = s.handlers.dragStart
	case EventDrag:
		handlers = s.handlers.drag
	case EventDragEnd:
		handlers = s.handlers.dragEnd
	}
	for _, h := range handlers {
		h.fn(ctx)
	}
	s.emit(InteractionEvent{
		Type: typ, EntityID: ctx.EntityID,
		GlobalX: ctx.GlobalX, GlobalY: ctx.GlobalY,
		Button: MouseButtonLeft,
		StartX: ctx.StartX, StartY: ctx.StartY,
		DeltaX: ctx.DeltaX, DeltaY: ctx.DeltaY,
	})
}

func (s *Scene) fireMerge(ctx MergeContext) {
	for _, h := range s.handlers.merge {
		h.fn(ctx)
	}
	s.emit(InteractionEvent{
		Type:     EventMerge,
		EntityID: ctx.Group.ID,
		Members:  [2]EntityID{ctx.First.ID, ctx.Second.ID},
		Combined: ctx.Combined,
	})
}

// emit forwards an event to the ECS bridge, if one is set.
func (s *Scene) emit(event InteractionEvent) {
	if s.store == nil {
		return
	}
	s.store.EmitEvent(event)
}
