package colorcombine

// DragController is the pointer drag state machine. It is Idle or Dragging
// exactly one entity, and works on any node carrying the draggable tag.
//
//	Idle     --press over a hovered draggable-->  Dragging(e)
//	Dragging --held, cursor projectable-->        Dragging(e), e snaps to cursor
//	Dragging --release-->                         Idle
//
// Missing camera, missing window, a cursor outside the window, or a dragged
// entity that disappeared or lost its tag are soft no-ops for that step.
type DragController struct {
	// KeepGrabOffset keeps the offset between the cursor and the entity's
	// origin at pick-up time instead of snapping the origin to the cursor.
	KeepGrabOffset bool

	entity EntityID
	active bool
	grab   Vec2
	start  Vec2
	last   Vec2
}

// Dragging returns the entity currently held, if any.
func (d *DragController) Dragging() (EntityID, bool) {
	return d.entity, d.active
}

// step runs drag-start, drag-update and drag-end in that order.
func (d *DragController) step(s *Scene) {
	d.begin(s)
	d.update(s)
	d.end(s)
}

// begin picks up the first hovered draggable entity on a fresh press.
// Candidates are the topmost hit node followed by its ancestors.
func (d *DragController) begin(s *Scene) {
	if !s.input.justPressed() {
		return
	}
	cursor, _ := s.CursorWorldPosition()
	s.firePointer(EventPointerDown, s.hoverNode, cursor)

	if d.active {
		return
	}
	var picked *Node
	for n := s.hoverNode; n != nil && n != s.root; n = n.Parent {
		if n.IsDraggable() && n.Hovered() {
			picked = n
			break
		}
	}
	if picked == nil {
		return
	}

	d.entity = picked.ID
	d.active = true
	d.start = cursor
	d.last = cursor
	d.grab = Vec2{}
	if d.KeepGrabOffset {
		d.grab = picked.WorldPosition().Sub(cursor)
	}
	s.fireDrag(EventDragStart, DragContext{
		Node: picked, EntityID: picked.ID,
		GlobalX: cursor.X, GlobalY: cursor.Y,
		StartX: cursor.X, StartY: cursor.Y,
	})
}

// update moves the held entity to the cursor while the button is down.
func (d *DragController) update(s *Scene) {
	if !s.input.pressed || !d.active {
		return
	}
	n := s.Node(d.entity)
	if n == nil || !n.IsDraggable() {
		return
	}
	cursor, ok := s.CursorWorldPosition()
	if !ok {
		return
	}
	n.SetWorldPosition(Vec2{X: cursor.X + d.grab.X, Y: cursor.Y + d.grab.Y})

	delta := cursor.Sub(d.last)
	d.last = cursor
	s.fireDrag(EventDrag, DragContext{
		Node: n, EntityID: n.ID,
		GlobalX: cursor.X, GlobalY: cursor.Y,
		StartX: d.start.X, StartY: d.start.Y,
		DeltaX: delta.X, DeltaY: delta.Y,
	})
}

// end returns to Idle on release, whatever the cursor is doing.
func (d *DragController) end(s *Scene) {
	if !s.input.justReleased() {
		return
	}
	cursor, _ := s.CursorWorldPosition()
	s.firePointer(EventPointerUp, s.hoverNode, cursor)

	if d.active {
		ctx := DragContext{
			EntityID: d.entity,
			GlobalX:  cursor.X, GlobalY: cursor.Y,
			StartX: d.start.X, StartY: d.start.Y,
		}
		if n := s.Node(d.entity); n != nil {
			ctx.Node = n
		}
		d.entity = 0
		d.active = false
		s.fireDrag(EventDragEnd, ctx)
	}
}

// cancel drops any held entity without firing events.
func (d *DragController) cancel() {
	d.entity = 0
	d.active = false
}
