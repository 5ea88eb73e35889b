package colorcombine

// GroupInfo is attached to a group node formed from two overlapping tokens.
type GroupInfo struct {
	// Combined is the mixed color displayed by both members.
	Combined HSLA
	// Individual holds the members' base colors in pair order.
	Individual [2]HSLA
	// Members are the two tokens owned by the group, in pair order.
	Members [2]EntityID
}

// Node is the scene element. A single flat struct serves tokens and groups.
type Node struct {
	// Identity
	ID   EntityID
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64

	// Visibility & interaction
	Visible      bool
	Interactable bool
	HitShape     HitShape

	// Circle fields (NodeTypeCircle)
	Radius float64
	Base   HSLA // color the token was created with
	Fill   HSLA // color currently displayed

	// Draggable is the "movable by the pointer" tag.
	Draggable bool
	// Membership is the group that owns this node, or 0.
	Membership EntityID
	// Group is non-nil for group nodes.
	Group *GroupInfo

	scene   *Scene
	hovered bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ScaleX = 1
	n.ScaleY = 1
	n.Visible = true
}

// NewContainer creates a node with no visual representation. Containers are
// hovered when any of their descendants is.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewCircle creates a circular token of the given radius and base color,
// hit-testable over its disc. The token is not draggable until tagged.
func NewCircle(name string, radius float64, color HSLA) *Node {
	n := &Node{
		Name:         name,
		Type:         NodeTypeCircle,
		Radius:       radius,
		Base:         color,
		Fill:         color,
		Interactable: true,
		HitShape:     HitCircle{Radius: radius},
	}
	nodeDefaults(n)
	return n
}

// SetDraggable adds or removes the draggable tag. Idempotent.
func (n *Node) SetDraggable(on bool) {
	n.Draggable = on
}

// IsDraggable reports whether the pointer may pick this node up: it must
// carry the draggable tag and not belong to a group.
func (n *Node) IsDraggable() bool {
	return n.Draggable && n.Membership == 0
}

// Hovered reports whether the pointer was over this node (or, for
// containers, over one of its descendants) during the last step.
func (n *Node) Hovered() bool {
	return n.hovered
}

// Scene returns the scene the node was spawned into, or nil.
func (n *Node) Scene() *Scene {
	return n.scene
}

// --- Tree manipulation ---

// AddChild appends child to this node's children. If child already has a
// parent, it is removed from that parent first. The child's local position
// is kept, so its world position becomes relative to n.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("colorcombine: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("colorcombine: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if n.scene != nil && n.scene.debug {
		debugCheckTreeDepth(n.scene, child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("colorcombine: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
