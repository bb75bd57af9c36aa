package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"snapblocks/internal/drag"
	"snapblocks/internal/geom"
	"snapblocks/internal/workspace"
)

// handleMouse feeds terminal mouse events to the drag controller.
func (m *model) handleMouse(msg tea.MouseMsg) {
	m.pointer = point{X: msg.X, Y: msg.Y}
	pos := m.toWorkspace(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.handlePan("k", 1)
			return
		case tea.MouseButtonWheelDown:
			m.handlePan("j", 1)
			return
		}
		src, ok := m.sourceAt(msg.X, pos, msg.Alt)
		if !ok {
			return
		}
		m.errorMessage, m.successMessage = "", ""
		if err := m.ctrl.Down(pointerFrom(msg, pos), src); err != nil && !errors.Is(err, drag.ErrIgnored) {
			m.errorMessage = err.Error()
			m.logger.Error("drag", "err", err)
		}

	case tea.MouseActionMotion:
		m.ctrl.Move(pointerFrom(msg, pos))

	case tea.MouseActionRelease:
		if res, ok := m.ctrl.Up(pointerFrom(msg, pos)); ok {
			m.successMessage = dropMessage(res)
		}
	}
}

// sourceAt finds what a press at screen column x picks up: a palette
// template left of the canvas, a placed block on it.
func (m *model) sourceAt(x int, pos geom.Point, alt bool) (drag.Source, bool) {
	if x < m.canvasLeft() {
		sp, ok := m.palette.Pick(pos)
		if !ok {
			return nil, false
		}
		return sp, true
	}
	b, ok := m.ws.BlockAt(pos)
	if !ok {
		return nil, false
	}
	return drag.Grab{Block: b, Single: alt}, true
}

func dropMessage(res workspace.Result) string {
	switch res.Outcome {
	case workspace.Spliced:
		return fmt.Sprintf("Snapped into stack %d", res.Segment)
	case workspace.Created:
		return fmt.Sprintf("New stack %d", res.Segment)
	case workspace.Restored:
		return fmt.Sprintf("Put back into stack %d", res.Segment)
	default:
		return "Discarded"
	}
}
