// Package toolbox holds the palette of template blocks that drags spawn
// copies from.
package toolbox

import (
	"snapblocks/internal/drag"
	"snapblocks/internal/geom"
	"snapblocks/internal/stack"
)

// Default layout of the palette, in workspace units.
const (
	DefaultPadding = 1.0
	DefaultGap     = 1.0
)

// Option configures a Toolbox.
type Option func(*Toolbox)

// WithPadding sets the space around the template column.
func WithPadding(p float64) Option {
	return func(t *Toolbox) { t.padding = p }
}

// WithGap sets the vertical space between templates.
func WithGap(g float64) Option {
	return func(t *Toolbox) { t.gap = g }
}

// Toolbox lays out template blocks in a single column in its own frame.
// Templates are never moved into the workspace; picking one yields a
// drag.Spawn that the drag Controller copies.
type Toolbox struct {
	templates []*stack.Block
	slots     []geom.Point
	frame     geom.Frame
	padding   float64
	gap       float64
	width     float64
	height    float64
}

// New measures the templates with r and lays them out top to bottom.
func New(r stack.Renderer, templates []*stack.Block, opts ...Option) *Toolbox {
	t := &Toolbox{
		templates: templates,
		frame:     geom.Identity,
		padding:   DefaultPadding,
		gap:       DefaultGap,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.layout(r)
	return t
}

func (t *Toolbox) layout(r stack.Renderer) {
	t.slots = make([]geom.Point, len(t.templates))
	y := t.padding
	var widest float64
	for i, b := range t.templates {
		if r != nil {
			b.Draw(r)
		}
		w, h := b.Size()
		t.slots[i] = geom.Point{X: t.padding, Y: y}
		y += h + t.gap
		widest = max(widest, w)
	}
	t.width = widest + 2*t.padding
	t.height = y - t.gap + t.padding
	if len(t.templates) == 0 {
		t.height = 2 * t.padding
	}
}

// SetFrame places the palette inside the workspace. Pick takes points in
// the parent of f and reports spawn origins there.
func (t *Toolbox) SetFrame(f geom.Frame) {
	if f == nil {
		f = geom.Identity
	}
	t.frame = f
}

// Frame returns the palette's frame.
func (t *Toolbox) Frame() geom.Frame { return t.frame }

// Templates returns the templates in display order.
func (t *Toolbox) Templates() []*stack.Block { return t.templates }

// Slot returns the position of template i in the palette's own frame.
func (t *Toolbox) Slot(i int) geom.Point { return t.slots[i] }

// Width returns the width of the palette column including padding.
func (t *Toolbox) Width() float64 { return t.width }

// Height returns the height of the laid-out column including padding.
func (t *Toolbox) Height() float64 { return t.height }

// Pick returns a spawn source for the template under p, given in the
// parent frame. Origin is the template's top-left corner in that frame.
func (t *Toolbox) Pick(p geom.Point) (drag.Spawn, bool) {
	local := t.frame.ToLocal(p)
	for i, b := range t.templates {
		pos := t.slots[i]
		w, h := b.Size()
		if local.X >= pos.X && local.X < pos.X+w && local.Y >= pos.Y && local.Y < pos.Y+h {
			return drag.Spawn{Template: b, Origin: t.frame.ToParent(pos)}, true
		}
	}
	return drag.Spawn{}, false
}
