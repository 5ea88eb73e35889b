package colorcombine

import (
	"fmt"
	"time"
)

type logLevel uint8

const (
	levelInfo logLevel = iota
	levelWarning
)

func (l logLevel) String() string {
	if l == levelWarning {
		return "warning"
	}
	return "info"
}

// logf writes one prefixed line to the scene's log output.
func (s *Scene) logf(level logLevel, format string, args ...any) {
	_, _ = fmt.Fprintf(s.log, "[colorcombine] %s: %s\n", level, fmt.Sprintf(format, args...))
}

// debugLog prints per-step timing and entity counts. Only called in debug mode.
func (s *Scene) debugLog(elapsed time.Duration) {
	var tokens, free, groups int
	for _, n := range s.nodes {
		switch {
		case n == nil:
		case n.Group != nil:
			groups++
		case n.Type == NodeTypeCircle:
			tokens++
			if n.IsDraggable() {
				free++
			}
		}
	}
	dragging := "none"
	if id, ok := s.drag.Dragging(); ok {
		dragging = fmt.Sprint(id)
	}
	_, _ = fmt.Fprintf(s.log,
		"[colorcombine] step %d: %v | tokens: %d (free %d) | groups: %d | dragging: %s\n",
		s.steps, elapsed, tokens, free, groups, dragging)
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(s *Scene, n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		s.logf(levelWarning, "tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}
