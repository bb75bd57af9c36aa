// Package workspace implements the block-stack workspace: the forest of
// top-level stacks, the connector hit test that decides where dropped
// content snaps, and the detach and splice operations used while dragging.
//
// # Ownership
//
// Every live Segment is a record in the workspace arena, keyed by its
// stack.ID. The forest is the ordered subset of those IDs placed on the
// canvas, in paint order with the front-most stack last. A Segment in the
// arena but not in the forest is floating: it belongs to an active drag.
// Each Block is a member of exactly one Segment, placed or floating.
//
// # Concurrency
//
// All methods are safe for concurrent use; each call runs under one mutex.
// Segments and Blocks returned by the workspace must only be restructured
// through workspace methods.
package workspace

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"snapblocks/internal/geom"
	"snapblocks/internal/stack"
)

// DefaultSpacing is the vertical gap between stacked blocks. It is negative
// so connector nubs overlap the block above.
const DefaultSpacing = -5.0

var (
	// ErrNotPlaced is returned when a Block is not a member of a placed
	// Segment.
	ErrNotPlaced = errors.New("workspace: block is not placed")
	// ErrUnknownSegment is returned for IDs missing from the arena, or for
	// content that is not a floating Segment of this workspace.
	ErrUnknownSegment = errors.New("workspace: unknown segment")
	// ErrEmptySegment is returned when a stack would have no members.
	ErrEmptySegment = errors.New("workspace: empty segment")
	// ErrOwnedBlock is returned when a Block handed to the workspace is
	// already a member of a Segment, or is handed over twice.
	ErrOwnedBlock = errors.New("workspace: block already owned")
	// ErrDuplicateBlock is reported by Check when a Block is reachable from
	// more than one Segment.
	ErrDuplicateBlock = errors.New("workspace: block in more than one segment")
)

// Option configures a Workspace.
type Option func(*Workspace)

// WithSpacing sets the vertical gap between stacked blocks.
func WithSpacing(spacing float64) Option {
	return func(w *Workspace) { w.spacing = spacing }
}

// WithRenderer sets the renderer used to measure blocks during layout.
func WithRenderer(r stack.Renderer) Option {
	return func(w *Workspace) { w.renderer = r }
}

// WithLogger sets the logger for structural events.
func WithLogger(l *log.Logger) Option {
	return func(w *Workspace) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithRedraw registers fn to run after every relayout. fn runs outside the
// workspace lock and may call back into the workspace.
func WithRedraw(fn func()) Option {
	return func(w *Workspace) { w.onRedraw = fn }
}

// Workspace owns every Segment of one canvas.
type Workspace struct {
	mu     sync.Mutex
	arena  map[stack.ID]*stack.Segment
	forest []stack.ID
	lastID stack.ID

	spacing  float64
	renderer stack.Renderer
	logger   *log.Logger

	onRedraw func()
	dirty    bool
}

// New returns an empty Workspace.
func New(opts ...Option) *Workspace {
	w := &Workspace{
		arena:   make(map[stack.ID]*stack.Segment),
		spacing: DefaultSpacing,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Spacing returns the vertical gap between stacked blocks.
func (w *Workspace) Spacing() float64 { return w.spacing }

func (w *Workspace) alloc() stack.ID {
	w.lastID++
	return w.lastID
}

func (w *Workspace) placed(id stack.ID) bool {
	return slices.Contains(w.forest, id)
}

// unowned checks that every block is free to join a new Segment.
func unowned(blocks []*stack.Block) error {
	seen := make(map[*stack.Block]bool, len(blocks))
	for i, b := range blocks {
		if b == nil {
			return fmt.Errorf("block %d is nil: %w", i, ErrEmptySegment)
		}
		if b.Top() != stack.NoSegment || seen[b] {
			return fmt.Errorf("block %s: %w", b.ID(), ErrOwnedBlock)
		}
		seen[b] = true
	}
	return nil
}

// AddStack places unowned blocks as a new front-most stack with its origin
// at (x, y).
func (w *Workspace) AddStack(x, y float64, blocks ...*stack.Block) (stack.ID, error) {
	defer w.redraw()
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(blocks) == 0 {
		return stack.NoSegment, ErrEmptySegment
	}
	if err := unowned(blocks); err != nil {
		return stack.NoSegment, err
	}
	s := stack.NewSegment(w.alloc(), blocks...)
	s.X, s.Y = x, y
	w.arena[s.ID()] = s
	w.forest = append(w.forest, s.ID())
	w.relayout()
	return s.ID(), nil
}

// Float wraps unowned blocks in a new floating Segment at the origin, laid
// out and ready to be dropped.
func (w *Workspace) Float(blocks ...*stack.Block) (*stack.Segment, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := unowned(blocks); err != nil {
		return nil, err
	}
	return w.float(blocks...), nil
}

func (w *Workspace) float(blocks ...*stack.Block) *stack.Segment {
	s := stack.NewSegment(w.alloc(), blocks...)
	s.Layout(w.spacing, w.renderer)
	w.arena[s.ID()] = s
	return s
}

// Drop discards a floating Segment and its blocks.
func (w *Workspace) Drop(id stack.ID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.arena[id]; !ok || w.placed(id) {
		return ErrUnknownSegment
	}
	delete(w.arena, id)
	w.logger.Debug("dropped floating segment", "segment", id)
	return nil
}

// Segments returns the placed Segments in paint order, front-most last.
func (w *Workspace) Segments() []*stack.Segment {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]*stack.Segment, len(w.forest))
	for i, id := range w.forest {
		out[i] = w.arena[id]
	}
	return out
}

// Segment looks up a placed or floating Segment.
func (w *Workspace) Segment(id stack.ID) (*stack.Segment, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, ok := w.arena[id]
	return s, ok
}

// Placed reports whether id is in the forest.
func (w *Workspace) Placed(id stack.ID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.placed(id)
}

// Floating returns the IDs of Segments owned by a drag, in ID order.
func (w *Workspace) Floating() []stack.ID {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []stack.ID
	for _, id := range slices.Sorted(maps.Keys(w.arena)) {
		if !w.placed(id) {
			out = append(out, id)
		}
	}
	return out
}

// Len returns the number of placed Segments.
func (w *Workspace) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.forest)
}

// Origin returns the workspace position of b's top-left corner.
func (w *Workspace) Origin(b *stack.Block) (geom.Point, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, ok := w.arena[b.Top()]
	if !ok || !s.Owns(b) {
		return geom.Point{}, false
	}
	return s.Frame().ToParent(b.Position()), true
}

// BlockAt returns the front-most placed Block whose rectangle contains p.
func (w *Workspace) BlockAt(p geom.Point) (*stack.Block, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i := len(w.forest) - 1; i >= 0; i-- {
		s := w.arena[w.forest[i]]
		local := s.Frame().ToLocal(p)
		for j := s.Len() - 1; j >= 0; j-- {
			b := s.At(j)
			pos := b.Position()
			bw, bh := b.Size()
			if local.X >= pos.X && local.X < pos.X+bw && local.Y >= pos.Y && local.Y < pos.Y+bh {
				return b, true
			}
		}
	}
	return nil, false
}

// Raise moves a placed Segment to the front of the paint order.
func (w *Workspace) Raise(id stack.ID) error {
	defer w.redraw()
	w.mu.Lock()
	defer w.mu.Unlock()

	i := slices.Index(w.forest, id)
	if i < 0 {
		return ErrUnknownSegment
	}
	w.forest = append(slices.Delete(w.forest, i, i+1), id)
	w.dirty = true
	return nil
}

func (w *Workspace) removeFromForest(id stack.ID) {
	if i := slices.Index(w.forest, id); i >= 0 {
		w.forest = slices.Delete(w.forest, i, i+1)
	}
}
