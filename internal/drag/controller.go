package drag

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"snapblocks/internal/geom"
	"snapblocks/internal/stack"
	"snapblocks/internal/workspace"
)

var (
	// ErrIgnored is returned by Down for presses that do not start a
	// gesture.
	ErrIgnored = errors.New("drag: pointer ignored")
	// ErrUnknownSource is returned by Down for a nil or foreign Source.
	ErrUnknownSource = errors.New("drag: unknown source")
)

// Option configures a Controller.
type Option func(*Controller)

// WithListener sets the function receiving gesture events.
func WithListener(l Listener) Option {
	return func(c *Controller) { c.listener = l }
}

// WithLogger sets the logger for gesture transitions.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// Controller runs drag gestures against one workspace. It is not safe for
// concurrent use; feed it events from one goroutine in arrival order.
type Controller struct {
	ws       *workspace.Workspace
	listener Listener
	logger   *log.Logger

	state   State
	source  Source
	grabbed *stack.Segment

	// origin is where the content sat when it was picked up.
	origin     geom.Point
	place      workspace.Place
	grabOffset geom.Point
	offset     geom.Point

	match   workspace.Match
	matched bool
}

// NewController returns an idle Controller for ws.
func NewController(ws *workspace.Workspace, opts ...Option) *Controller {
	c := &Controller{ws: ws, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the phase of the current gesture.
func (c *Controller) State() State { return c.state }

// Floating returns the content being dragged and its current origin in
// workspace coordinates.
func (c *Controller) Floating() (seg *stack.Segment, offset geom.Point, ok bool) {
	if c.state == Idle || c.grabbed == nil {
		return nil, geom.Point{}, false
	}
	return c.grabbed, c.offset, true
}

// GrabOffset returns where the pointer holds the content, relative to the
// content's origin.
func (c *Controller) GrabOffset() geom.Point { return c.grabOffset }

// Match returns the block the content would currently snap to.
func (c *Controller) Match() (workspace.Match, bool) {
	return c.match, c.matched
}

// Down starts a gesture on src. Presses of any button but the primary one
// return ErrIgnored and change nothing. An active gesture is cancelled
// first.
func (c *Controller) Down(p Pointer, src Source) error {
	if p.Button != ButtonPrimary {
		return ErrIgnored
	}
	if c.state != Idle {
		c.logger.Debug("superseding active drag", "state", c.state)
		c.Cancel()
	}

	seg, at, err := c.resolve(src)
	if err != nil {
		return err
	}
	origin := at.Origin

	c.state = Grabbed
	c.source = src
	c.grabbed = seg
	c.origin = origin
	c.place = at
	c.grabOffset = p.Position.Sub(origin)
	c.offset = origin
	c.matched = false

	c.logger.Debug("drag started", "segment", seg.ID(), "blocks", seg.Len(), "x", origin.X, "y", origin.Y)
	c.emit(DragStarted{Info: c.info(p)})
	return nil
}

// resolve turns src into floating content and the place it came from. A
// spawn's place carries only the template's origin.
func (c *Controller) resolve(src Source) (*stack.Segment, workspace.Place, error) {
	switch s := src.(type) {
	case Grab:
		if s.Block == nil {
			return nil, workspace.Place{}, ErrUnknownSource
		}
		at, err := c.ws.Locate(s.Block)
		if err != nil {
			return nil, workspace.Place{}, fmt.Errorf("grab: %w", err)
		}
		lift := c.ws.Detach
		if s.Single {
			lift = c.ws.Pluck
		}
		seg, err := lift(s.Block)
		if err != nil {
			return nil, workspace.Place{}, fmt.Errorf("grab: %w", err)
		}
		return seg, at, nil
	case Spawn:
		if s.Template == nil {
			return nil, workspace.Place{}, ErrUnknownSource
		}
		seg, err := c.ws.Float(s.Template.Copy())
		if err != nil {
			return nil, workspace.Place{}, fmt.Errorf("spawn: %w", err)
		}
		return seg, workspace.Place{Origin: s.Origin}, nil
	default:
		return nil, workspace.Place{}, ErrUnknownSource
	}
}

// Move drags the content so that the grab point follows the pointer and
// updates the snap highlight.
func (c *Controller) Move(p Pointer) {
	if c.state != Grabbed && c.state != Dragging {
		return
	}
	c.state = Dragging
	c.offset = p.Position.Sub(c.grabOffset)

	m, ok := c.ws.FindTouchingBlock(c.grabbed, c.offset)
	c.highlight(m, ok)
	c.emit(DragMoved{Info: c.info(p), Offset: c.offset, Match: m, Matched: ok})
}

// highlight moves the connector highlight from the previous match to m.
func (c *Controller) highlight(m workspace.Match, ok bool) {
	if c.matched && (!ok || c.match.Block != m.Block) {
		c.match.Block.ClearHighlights()
	}
	for _, b := range c.grabbed.Blocks() {
		b.ClearHighlights()
	}
	c.match, c.matched = m, ok
	if !ok {
		return
	}

	switch m.Position {
	case workspace.Top:
		m.Block.HighlightTopConnector(true)
		m.Block.HighlightBottomConnector(false)
		c.grabbed.Last().HighlightBottomConnector(true)
	case workspace.Bottom:
		m.Block.HighlightBottomConnector(true)
		m.Block.HighlightTopConnector(false)
		c.grabbed.First().HighlightTopConnector(true)
	}
}

func (c *Controller) clearHighlights() {
	if c.matched {
		c.match.Block.ClearHighlights()
	}
	for _, b := range c.grabbed.Blocks() {
		b.ClearHighlights()
	}
	c.match, c.matched = workspace.Match{}, false
}

// Up ends the gesture: the content is dropped where the pointer released
// it. ok is false when no gesture was active.
func (c *Controller) Up(p Pointer) (res workspace.Result, ok bool) {
	if c.state == Idle {
		return workspace.Result{}, false
	}
	c.Move(p)

	c.state = Released
	c.clearHighlights()
	res, err := c.ws.AddBlocks(c.grabbed, c.offset)
	if err != nil {
		// The content was taken out of the workspace behind our back.
		c.logger.Error("drop failed", "segment", c.grabbed.ID(), "err", err)
	}
	c.logger.Debug("drag finished", "outcome", res.Outcome, "segment", res.Segment)
	c.emit(DragFinished{Info: c.info(p), Offset: c.offset, Result: res})
	c.reset()
	return res, true
}

// Cancel abandons the gesture. Grabbed content goes back to the stack,
// index and paint order it was lifted from without snapping to anything
// else; spawned content is thrown away. ok is false when no gesture was
// active.
func (c *Controller) Cancel() (res workspace.Result, ok bool) {
	if c.state == Idle {
		return workspace.Result{}, false
	}
	c.state = Released
	c.clearHighlights()

	switch c.source.(type) {
	case Grab:
		c.offset = c.origin
		var err error
		if res, err = c.ws.Restore(c.grabbed, c.place); err != nil {
			c.logger.Error("restore failed", "segment", c.grabbed.ID(), "err", err)
		}
	default:
		_ = c.ws.Drop(c.grabbed.ID())
		res = workspace.Result{Outcome: workspace.Discarded}
	}
	c.logger.Debug("drag cancelled", "outcome", res.Outcome, "segment", res.Segment)
	c.emit(DragFinished{Info: c.info(Pointer{Position: c.origin.Add(c.grabOffset)}), Offset: c.offset, Result: res, Cancelled: true})
	c.reset()
	return res, true
}

func (c *Controller) reset() {
	c.state = Idle
	c.source = nil
	c.grabbed = nil
	c.origin, c.grabOffset, c.offset = geom.Point{}, geom.Point{}, geom.Point{}
	c.place = workspace.Place{}
	c.match, c.matched = workspace.Match{}, false
}

func (c *Controller) info(p Pointer) Info {
	return Info{Pointer: p, GrabOffset: c.grabOffset, Segment: c.grabbed.ID(), Source: c.source}
}

func (c *Controller) emit(ev Event) {
	if c.listener != nil {
		c.listener(ev)
	}
}
