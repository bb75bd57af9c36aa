package drag

import (
	"snapblocks/internal/geom"
	"snapblocks/internal/stack"
)

// Source is what a gesture picks up. It is either Grab or Spawn.
type Source interface {
	source()
}

// Grab picks up placed content starting at Block. With Single set only
// Block itself is lifted; otherwise Block and everything below it.
type Grab struct {
	Block  *stack.Block
	Single bool
}

// Spawn picks up a fresh copy of a palette template. Origin is where the
// template is drawn, in workspace coordinates.
type Spawn struct {
	Template *stack.Block
	Origin   geom.Point
}

func (Grab) source()  {}
func (Spawn) source() {}
