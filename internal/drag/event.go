package drag

import (
	"snapblocks/internal/geom"
	"snapblocks/internal/stack"
	"snapblocks/internal/workspace"
)

// Event is a gesture lifecycle notification: DragStarted, DragMoved or
// DragFinished.
type Event interface {
	event()
}

// Info is carried by every Event.
type Info struct {
	// Pointer is the event that caused the notification.
	Pointer Pointer
	// GrabOffset is the pointer position relative to the content's origin
	// at grab time.
	GrabOffset geom.Point
	// Segment is the floating content.
	Segment stack.ID
	Source  Source
}

// DragStarted is sent once the content has been picked up.
type DragStarted struct {
	Info
}

// DragMoved is sent on every pointer move with the content's new origin and
// the block it would snap to.
type DragMoved struct {
	Info
	Offset  geom.Point
	Match   workspace.Match
	Matched bool
}

// DragFinished is sent after the content has been dropped or, for a
// cancelled gesture, returned.
type DragFinished struct {
	Info
	Offset    geom.Point
	Result    workspace.Result
	Cancelled bool
}

func (DragStarted) event()  {}
func (DragMoved) event()    {}
func (DragFinished) event() {}

// Listener receives gesture events. It runs synchronously inside the
// Controller call that caused the event.
type Listener func(Event)
