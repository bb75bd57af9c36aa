// Package drag implements the pointer-gesture protocol of the editor: a
// Controller that turns pointer down/move/up into detach, live snap
// feedback and drop on a workspace.
//
// # States
//
// A gesture goes Idle → Grabbed on a primary-button press over a Source,
// Grabbed → Dragging on the first move, Dragging → Released on button
// release, where the content is dropped, and straight back to Idle.
// Non-primary presses are ignored. A press while a gesture is active
// cancels that gesture first, so at most one exists per Controller.
//
// # Events
//
// Listeners receive DragStarted, DragMoved and DragFinished values through
// the Event interface:
//
//	ctrl := drag.NewController(ws, drag.WithListener(func(ev drag.Event) {
//	    switch ev := ev.(type) {
//	    case drag.DragStarted:
//	    case drag.DragMoved:
//	        preview(ev.Offset)
//	    case drag.DragFinished:
//	        status(ev.Result.Outcome)
//	    }
//	}))
package drag

import "snapblocks/internal/geom"

// Button identifies the pointer button of an event.
type Button uint8

const (
	// ButtonNone indicates no button, as on plain motion.
	ButtonNone Button = iota
	// ButtonPrimary is the left mouse button or a touch contact.
	ButtonPrimary
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// ButtonSecondary is the right mouse button.
	ButtonSecondary
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonMiddle:
		return "middle"
	case ButtonSecondary:
		return "secondary"
	default:
		return "none"
	}
}

// Pointer is one pointer event in workspace coordinates.
type Pointer struct {
	Position geom.Point
	Button   Button
	// Alt is set when the alt modifier was held.
	Alt bool
}

// State is the phase of the current gesture.
type State uint8

const (
	Idle State = iota
	Grabbed
	Dragging
	Released
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Grabbed:
		return "grabbed"
	case Dragging:
		return "dragging"
	case Released:
		return "released"
	default:
		return "unknown"
	}
}
