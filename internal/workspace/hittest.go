package workspace

import (
	"snapblocks/internal/geom"
	"snapblocks/internal/stack"
)

// Position says which connector of the matched Block the content touches.
type Position uint8

const (
	// Top means the content's bottom zone touches the block's top zone;
	// the content goes above the block.
	Top Position = iota
	// Bottom means the content's top zone touches the block's bottom zone;
	// the content goes below the block.
	Bottom
)

func (p Position) String() string {
	switch p {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Match is the block that dropped content would attach to.
type Match struct {
	Block    *stack.Block
	Segment  stack.ID
	Position Position
}

// FindTouchingBlock reports where content would attach if dropped with its
// origin at offset, in workspace coordinates.
//
// Each placed Segment is tested in paint order. Inside a Segment the first
// member whose bottom zone touches the content's top zone, or whose top zone
// touches the content's bottom zone, is the Segment's match. Across Segments
// the front-most match wins; on equal paint order the first scanned is kept.
// Empty or malformed content never matches.
func (w *Workspace) FindTouchingBlock(content *stack.Segment, offset geom.Point) (Match, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.findTouching(content, offset)
}

func (w *Workspace) findTouching(content *stack.Segment, offset geom.Point) (Match, bool) {
	if content == nil || content.Len() == 0 {
		return Match{}, false
	}
	if cw, ch := content.Size(); cw < 0 || ch < 0 {
		return Match{}, false
	}

	zone := content.ConnectorZone().Translate(offset.X, offset.Y)
	top := content.ConnectorZoneTop().Translate(offset.X, offset.Y)
	bottom := content.ConnectorZoneBottom().Translate(offset.X, offset.Y)

	var (
		best      Match
		bestOrder = -1
	)
	for order, id := range w.forest {
		s := w.arena[id]
		if id == content.ID() {
			continue
		}
		bounds, ok := s.BoundingConnectorBox()
		if !ok {
			continue
		}
		frame := s.Frame()
		if !bounds.Overlaps(zone.Transform(frame)) {
			continue
		}

		m, ok := scanSegment(s, top.Transform(frame), bottom.Transform(frame))
		if !ok {
			continue
		}
		if bestOrder < 0 || frontOf(order, bestOrder) {
			best, bestOrder = m, order
		}
	}
	return best, bestOrder >= 0
}

// scanSegment walks s from its first member and returns the first member
// touching the candidate zones, given in s's frame.
func scanSegment(s *stack.Segment, top, bottom geom.Box) (Match, bool) {
	for m := s.First(); m != nil; m = s.Next(m) {
		if m.ConnectorZoneBottom().Overlaps(top) {
			return Match{Block: m, Segment: s.ID(), Position: Bottom}, true
		}
		if m.ConnectorZoneTop().Overlaps(bottom) {
			return Match{Block: m, Segment: s.ID(), Position: Top}, true
		}
	}
	return Match{}, false
}

// frontOf reports whether paint order a is strictly in front of b.
func frontOf(a, b int) bool { return a > b }
