// Package stack holds the two structural types of the editor: Block, one
// visual unit, and Segment, an ordered vertical chain of Blocks sharing one
// placement origin.
//
// Blocks refer to the Segment that owns them by ID. Segments themselves are
// owned by the workspace arena, which hands out the IDs.
package stack

import (
	"github.com/google/uuid"

	"snapblocks/internal/geom"
)

// ID identifies a Segment inside a workspace arena.
type ID uint32

// NoSegment is the owner of a Block that has not been placed in a Segment.
const NoSegment ID = 0

// Content describes what a Block shows.
type Content struct {
	Kind  string
	Label string
}

// Renderer realizes a Block's content and reports its size.
type Renderer interface {
	Measure(c Content) (w, h float64)
}

// Zone holds the connector zone geometry of a Block. The same values apply
// to the top and the bottom zone so matching stays symmetric.
type Zone struct {
	MarginX float64 // reach to the left of the block edge
	MarginY float64 // reach above the top edge and below the bottom edge
	Reach   float64 // right edge of the zone, from the block's left edge
}

// DefaultZone is the pixel-scaled zone used when none is configured.
var DefaultZone = Zone{MarginX: 10, MarginY: 10, Reach: 70}

// Block is one visual unit.
type Block struct {
	id      uuid.UUID
	content Content
	zone    Zone

	// position in the owning Segment's frame
	x, y float64
	w, h float64
	// drawn is set once a renderer has measured the block
	drawn bool

	top   ID
	index int

	hlTop    bool
	hlBottom bool
}

// New returns an undrawn, unowned Block with DefaultZone.
func New(c Content) *Block {
	return NewWithZone(c, DefaultZone)
}

// NewWithZone returns an undrawn, unowned Block using zone z.
func NewWithZone(c Content, z Zone) *Block {
	return &Block{id: uuid.New(), content: c, zone: z, top: NoSegment, index: -1}
}

func (b *Block) ID() uuid.UUID    { return b.id }
func (b *Block) Content() Content { return b.content }
func (b *Block) Zone() Zone       { return b.zone }

// Top returns the ID of the owning Segment, or NoSegment.
func (b *Block) Top() ID { return b.top }

// Index returns the block's position in its Segment, or -1 when unowned.
func (b *Block) Index() int { return b.index }

// Position returns the block's top-left corner in its Segment's frame.
func (b *Block) Position() geom.Point { return geom.Point{X: b.x, Y: b.y} }

// Size returns the realized size. It is zero until Draw has run.
func (b *Block) Size() (w, h float64) { return b.w, b.h }

// Drawn reports whether the block has a realized size.
func (b *Block) Drawn() bool { return b.drawn }

// Draw asks r for the realized size of the block's content and records it.
func (b *Block) Draw(r Renderer) {
	b.w, b.h = r.Measure(b.content)
	b.drawn = true
}

// SetSize records a realized size directly.
func (b *Block) SetSize(w, h float64) {
	b.w, b.h = w, h
	b.drawn = true
}

func (b *Block) moveTo(x, y float64) {
	b.x, b.y = x, y
}

// ConnectorZoneTop returns the zone straddling the block's top edge.
func (b *Block) ConnectorZoneTop() geom.Box {
	return geom.NewBox(
		b.x-b.zone.MarginX,
		b.y-b.zone.MarginY,
		b.x+b.zone.Reach,
		b.y+b.h/2,
	)
}

// ConnectorZoneBottom returns the zone straddling the block's bottom edge.
func (b *Block) ConnectorZoneBottom() geom.Box {
	return geom.NewBox(
		b.x-b.zone.MarginX,
		b.y+b.h/2,
		b.x+b.zone.Reach,
		b.y+b.h+b.zone.MarginY,
	)
}

// ConnectorZone returns the union of the top and bottom zones.
func (b *Block) ConnectorZone() geom.Box {
	return geom.Combine(b.ConnectorZoneTop(), b.ConnectorZoneBottom())
}

func (b *Block) HighlightTopConnector(enable bool)    { b.hlTop = enable }
func (b *Block) HighlightBottomConnector(enable bool) { b.hlBottom = enable }

// Highlighted reports the two connector highlight flags.
func (b *Block) Highlighted() (top, bottom bool) { return b.hlTop, b.hlBottom }

// ClearHighlights turns both connector highlights off.
func (b *Block) ClearHighlights() {
	b.hlTop, b.hlBottom = false, false
}

// Copy returns a new Block with the same content and zone. The copy has its
// own ID and is not drawn, owned or highlighted.
func (b *Block) Copy() *Block {
	return NewWithZone(b.content, b.zone)
}
