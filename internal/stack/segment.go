package stack

import (
	"errors"
	"fmt"
	"slices"

	"snapblocks/internal/geom"
)

var (
	// ErrEmpty is reported for a Segment without members.
	ErrEmpty = errors.New("stack: empty segment")
	// ErrBrokenChain is reported when walking a Segment does not reach its
	// last member in Len()-1 steps.
	ErrBrokenChain = errors.New("stack: broken chain")
	// ErrOwner is reported for a member whose owner or index is stale.
	ErrOwner = errors.New("stack: wrong owner")
)

// Segment is an ordered chain of Blocks rendered as one vertical stack.
// X and Y are the stack's origin in the workspace; member positions are
// relative to it.
type Segment struct {
	id     ID
	X, Y   float64
	blocks []*Block

	bounds      geom.Box
	boundsValid bool
}

// NewSegment returns a Segment with the given ID owning blocks in order.
func NewSegment(id ID, blocks ...*Block) *Segment {
	s := &Segment{id: id, blocks: slices.Clone(blocks)}
	s.restamp(0)
	return s
}

func (s *Segment) ID() ID   { return s.id }
func (s *Segment) Len() int { return len(s.blocks) }

// First returns the root member, or nil for an empty Segment.
func (s *Segment) First() *Block {
	if len(s.blocks) == 0 {
		return nil
	}
	return s.blocks[0]
}

// Last returns the final member, or nil for an empty Segment.
func (s *Segment) Last() *Block {
	if len(s.blocks) == 0 {
		return nil
	}
	return s.blocks[len(s.blocks)-1]
}

// At returns the i-th member.
func (s *Segment) At(i int) *Block { return s.blocks[i] }

// Blocks returns the members in order. The slice is a copy.
func (s *Segment) Blocks() []*Block { return slices.Clone(s.blocks) }

// Owns reports whether b is a member of s.
func (s *Segment) Owns(b *Block) bool {
	return b != nil && b.top == s.id && b.index >= 0 && b.index < len(s.blocks) && s.blocks[b.index] == b
}

// Next returns the member after b, or nil if b is last or not a member.
func (s *Segment) Next(b *Block) *Block {
	if !s.Owns(b) || b.index+1 >= len(s.blocks) {
		return nil
	}
	return s.blocks[b.index+1]
}

// Previous returns the member before b, or nil if b is first or not a member.
func (s *Segment) Previous(b *Block) *Block {
	if !s.Owns(b) || b.index == 0 {
		return nil
	}
	return s.blocks[b.index-1]
}

// InsertAfter inserts blocks after the i-th member. i == -1 inserts at the
// head. Inserted blocks are re-stamped to s.
func (s *Segment) InsertAfter(i int, blocks ...*Block) {
	if i < -1 || i >= len(s.blocks) {
		panic(fmt.Sprintf("stack: insert position %d out of range [-1, %d)", i, len(s.blocks)))
	}
	s.blocks = slices.Insert(s.blocks, i+1, blocks...)
	s.restamp(i + 1)
	s.Invalidate()
}

// Split keeps members [0, i) in s and returns a new Segment with ID id
// owning members [i, Len()).
func (s *Segment) Split(i int, id ID) *Segment {
	tail := slices.Clone(s.blocks[i:])
	clear(s.blocks[i:])
	s.blocks = s.blocks[:i]
	s.Invalidate()
	return NewSegment(id, tail...)
}

// RemoveAt removes and returns the i-th member, which becomes unowned.
func (s *Segment) RemoveAt(i int) *Block {
	b := s.blocks[i]
	s.blocks = slices.Delete(s.blocks, i, i+1)
	s.restamp(i)
	b.top, b.index = NoSegment, -1
	s.Invalidate()
	return b
}

// Take empties s and returns its former members, now unowned.
func (s *Segment) Take() []*Block {
	blocks := s.blocks
	s.blocks = nil
	for _, b := range blocks {
		b.top, b.index = NoSegment, -1
	}
	s.Invalidate()
	return blocks
}

func (s *Segment) restamp(from int) {
	for i := from; i < len(s.blocks); i++ {
		s.blocks[i].top = s.id
		s.blocks[i].index = i
	}
}

// Invalidate drops the cached bounding connector box.
func (s *Segment) Invalidate() {
	s.boundsValid = false
}

// Layout places members top to bottom in the Segment's frame, each spacing
// units below the previous one (spacing may be negative), and recomputes the
// bounding connector box. A nil renderer keeps the sizes already recorded.
func (s *Segment) Layout(spacing float64, r Renderer) {
	var y float64
	for i, b := range s.blocks {
		if r != nil {
			b.Draw(r)
		}
		b.moveTo(0, y)
		y += b.h + spacing
		if i == 0 {
			s.bounds = b.ConnectorZone()
		} else {
			s.bounds = s.bounds.Combine(b.ConnectorZone())
		}
	}
	s.boundsValid = len(s.blocks) > 0
}

// BoundingConnectorBox returns the union of the members' connector zones in
// the Segment's frame. ok is false when the cache was invalidated since the
// last Layout.
func (s *Segment) BoundingConnectorBox() (box geom.Box, ok bool) {
	return s.bounds, s.boundsValid
}

// Size reports the extent of the laid-out members.
func (s *Segment) Size() (w, h float64) {
	for _, b := range s.blocks {
		w = max(w, b.x+b.w)
	}
	if last := s.Last(); last != nil {
		h = last.y + last.h
	}
	return w, h
}

// Frame returns the Segment's coordinate frame inside the workspace.
func (s *Segment) Frame() geom.Offset {
	return geom.Offset{X: s.X, Y: s.Y}
}

// ConnectorZoneTop returns the top zone of the Segment seen as one piece of
// content: the top zone of its first member.
func (s *Segment) ConnectorZoneTop() geom.Box {
	if b := s.First(); b != nil {
		return b.ConnectorZoneTop()
	}
	return geom.Box{}
}

// ConnectorZoneBottom returns the bottom zone of the last member.
func (s *Segment) ConnectorZoneBottom() geom.Box {
	if b := s.Last(); b != nil {
		return b.ConnectorZoneBottom()
	}
	return geom.Box{}
}

// ConnectorZone returns the union of ConnectorZoneTop and ConnectorZoneBottom.
func (s *Segment) ConnectorZone() geom.Box {
	return geom.Combine(s.ConnectorZoneTop(), s.ConnectorZoneBottom())
}

// Check verifies the chain invariants: walking Next from First reaches Last
// in exactly Len()-1 steps and every member is stamped with s's ID and its
// own index.
func (s *Segment) Check() error {
	if len(s.blocks) == 0 {
		return fmt.Errorf("segment %d: %w", s.id, ErrEmpty)
	}

	var errs []error
	for i, b := range s.blocks {
		if b == nil {
			errs = append(errs, fmt.Errorf("segment %d: nil member at %d: %w", s.id, i, ErrBrokenChain))
			continue
		}
		if b.top != s.id {
			errs = append(errs, fmt.Errorf("segment %d: member %d owned by %d: %w", s.id, i, b.top, ErrOwner))
		}
		if b.index != i {
			errs = append(errs, fmt.Errorf("segment %d: member %d has index %d: %w", s.id, i, b.index, ErrOwner))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	steps := 0
	last := s.Last()
	for b := s.First(); b != last; b = s.Next(b) {
		if b == nil || steps >= len(s.blocks) {
			return fmt.Errorf("segment %d: last not reached from first: %w", s.id, ErrBrokenChain)
		}
		steps++
	}
	if steps != len(s.blocks)-1 {
		return fmt.Errorf("segment %d: %d steps from first to last, want %d: %w", s.id, steps, len(s.blocks)-1, ErrBrokenChain)
	}
	return nil
}
