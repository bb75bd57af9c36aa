package workspace

import (
	"fmt"
	"slices"

	"snapblocks/internal/geom"
	"snapblocks/internal/stack"
)

// Outcome says what a drop did.
type Outcome uint8

const (
	// Discarded means the content was thrown away.
	Discarded Outcome = iota
	// Spliced means the content joined an existing stack.
	Spliced
	// Created means the content became a new stack.
	Created
	// Restored means the content went back where it was lifted from.
	Restored
)

func (o Outcome) String() string {
	switch o {
	case Discarded:
		return "discarded"
	case Spliced:
		return "spliced"
	case Created:
		return "created"
	case Restored:
		return "restored"
	default:
		return "unknown"
	}
}

// Result reports the outcome of a drop and the stack it affected.
// Segment is stack.NoSegment for discarded content.
type Result struct {
	Outcome Outcome
	Segment stack.ID
}

// AddBlock drops a single unowned block with its origin at offset.
func (w *Workspace) AddBlock(b *stack.Block, offset geom.Point) (Result, error) {
	defer w.redraw()
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := unowned([]*stack.Block{b}); err != nil {
		return Result{}, err
	}
	return w.addBlocks(w.float(b), offset), nil
}

// AddBlocks drops floating content with its origin at offset.
//
// Content touching a connector is spliced into that stack. Content whose
// centre lies left of or above the canvas is discarded without touching the
// forest. Anything else becomes a new front-most stack. The content Segment
// leaves the arena unless it becomes the new stack.
func (w *Workspace) AddBlocks(content *stack.Segment, offset geom.Point) (Result, error) {
	defer w.redraw()
	w.mu.Lock()
	defer w.mu.Unlock()

	if content == nil || w.arena[content.ID()] != content || w.placed(content.ID()) {
		return Result{}, ErrUnknownSegment
	}
	return w.addBlocks(content, offset), nil
}

func (w *Workspace) addBlocks(content *stack.Segment, offset geom.Point) Result {
	if content.Len() == 0 {
		delete(w.arena, content.ID())
		return Result{Outcome: Discarded}
	}

	if m, ok := w.findTouching(content, offset); ok {
		target := w.arena[m.Segment]
		after := m.Block.Index()
		if m.Position == Top {
			after--
		}
		if after < 0 {
			// Head insertion: grow the stack upwards so the blocks below
			// keep their place.
			_, h := content.Size()
			target.Y = max(0, target.Y-(h+w.spacing))
		}
		n := content.Len()
		target.InsertAfter(after, content.Take()...)
		delete(w.arena, content.ID())
		w.relayout()
		w.logger.Debug("spliced", "segment", target.ID(), "after", after, "blocks", n, "position", m.Position)
		return Result{Outcome: Spliced, Segment: target.ID()}
	}

	cw, ch := content.Size()
	if offset.X+cw/2 < 0 || offset.Y+ch/2 < 0 {
		delete(w.arena, content.ID())
		w.logger.Debug("discarded off-canvas drop", "blocks", content.Len(), "x", offset.X, "y", offset.Y)
		return Result{Outcome: Discarded}
	}

	content.X = max(0, offset.X)
	content.Y = max(0, offset.Y)
	w.forest = append(w.forest, content.ID())
	w.relayout()
	w.logger.Debug("created stack", "segment", content.ID(), "blocks", content.Len(), "x", content.X, "y", content.Y)
	return Result{Outcome: Created, Segment: content.ID()}
}

// Detach lifts b and every block below it out of their stack into a
// floating Segment with its origin reset to (0, 0). Detaching a stack's
// first block lifts the whole stack.
func (w *Workspace) Detach(b *stack.Block) (*stack.Segment, error) {
	defer w.redraw()
	w.mu.Lock()
	defer w.mu.Unlock()

	s, err := w.owner(b)
	if err != nil {
		return nil, err
	}

	if b.Index() == 0 {
		w.removeFromForest(s.ID())
		s.X, s.Y = 0, 0
		s.Layout(w.spacing, w.renderer)
		w.dirty = true
		w.logger.Debug("detached stack", "segment", s.ID(), "blocks", s.Len())
		return s, nil
	}

	tail := s.Split(b.Index(), w.alloc())
	w.arena[tail.ID()] = tail
	tail.Layout(w.spacing, w.renderer)
	w.relayout()
	w.logger.Debug("detached tail", "from", s.ID(), "segment", tail.ID(), "blocks", tail.Len())
	return tail, nil
}

// Pluck lifts b alone out of its stack into a one-block floating Segment;
// the blocks above and below close the gap. Plucking a stack's first block
// moves the stack origin down so the remaining blocks stay in place.
func (w *Workspace) Pluck(b *stack.Block) (*stack.Segment, error) {
	defer w.redraw()
	w.mu.Lock()
	defer w.mu.Unlock()

	s, err := w.owner(b)
	if err != nil {
		return nil, err
	}
	if s.Len() == 1 {
		w.removeFromForest(s.ID())
		s.X, s.Y = 0, 0
		s.Layout(w.spacing, w.renderer)
		w.dirty = true
		return s, nil
	}

	if b.Index() == 0 {
		_, h := b.Size()
		s.Y += h + w.spacing
	}
	s.RemoveAt(b.Index())
	f := w.float(b)
	w.relayout()
	w.logger.Debug("plucked block", "from", s.ID(), "segment", f.ID())
	return f, nil
}

// owner returns the placed Segment b belongs to. Callers hold w.mu.
func (w *Workspace) owner(b *stack.Block) (*stack.Segment, error) {
	if b == nil {
		return nil, ErrNotPlaced
	}
	s, ok := w.arena[b.Top()]
	if !ok || !s.Owns(b) || !w.placed(s.ID()) {
		return nil, fmt.Errorf("block %s: %w", b.ID(), ErrNotPlaced)
	}
	return s, nil
}

// Place is where a Block sat before it was lifted.
type Place struct {
	// Segment is the stack the block belongs to.
	Segment stack.ID
	// Index is the block's position in Segment.
	Index int
	// Order is Segment's paint order.
	Order int
	// Origin is the block's top-left corner in workspace coordinates.
	Origin geom.Point
}

// Locate reports where the placed Block b sits.
func (w *Workspace) Locate(b *stack.Block) (Place, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, err := w.owner(b)
	if err != nil {
		return Place{}, err
	}
	return Place{
		Segment: s.ID(),
		Index:   b.Index(),
		Order:   slices.Index(w.forest, s.ID()),
		Origin:  s.Frame().ToParent(b.Position()),
	}, nil
}

// Restore puts floating content back at the Place its first block was
// lifted from, without hit-testing. A lifted whole stack returns at its old
// paint order and origin; lifted members rejoin their stack at their old
// index. Content whose stack has gone becomes a new stack at the Place's
// origin.
func (w *Workspace) Restore(content *stack.Segment, at Place) (Result, error) {
	defer w.redraw()
	w.mu.Lock()
	defer w.mu.Unlock()

	if content == nil || w.arena[content.ID()] != content || w.placed(content.ID()) {
		return Result{}, ErrUnknownSegment
	}
	if content.Len() == 0 {
		delete(w.arena, content.ID())
		return Result{Outcome: Discarded}, nil
	}

	if content.ID() == at.Segment {
		content.X, content.Y = at.Origin.X, at.Origin.Y
		order := min(max(at.Order, 0), len(w.forest))
		w.forest = slices.Insert(w.forest, order, content.ID())
		w.relayout()
		w.logger.Debug("restored stack", "segment", content.ID(), "order", order)
		return Result{Outcome: Restored, Segment: content.ID()}, nil
	}

	target, ok := w.arena[at.Segment]
	if !ok || !w.placed(at.Segment) {
		content.X, content.Y = max(0, at.Origin.X), max(0, at.Origin.Y)
		w.forest = append(w.forest, content.ID())
		w.relayout()
		w.logger.Debug("source stack gone, created stack", "segment", content.ID(), "from", at.Segment)
		return Result{Outcome: Created, Segment: content.ID()}, nil
	}

	index := min(max(at.Index, 0), target.Len())
	if index == 0 {
		target.X, target.Y = at.Origin.X, at.Origin.Y
	}
	n := content.Len()
	target.InsertAfter(index-1, content.Take()...)
	delete(w.arena, content.ID())
	w.relayout()
	w.logger.Debug("restored blocks", "segment", target.ID(), "index", index, "blocks", n)
	return Result{Outcome: Restored, Segment: target.ID()}, nil
}
