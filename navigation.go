package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"snapblocks/internal/drag"
	"snapblocks/internal/geom"
)

// handlePan scrolls the workspace. The view never scrolls left of or above
// the workspace origin, so every visible workspace cell has non-negative
// coordinates.
func (m *model) handlePan(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.panX -= speed
	case "l", "right", "L", "shift+right":
		m.panX += speed
	case "k", "up", "K", "shift+up":
		m.panY -= speed
	case "j", "down", "J", "shift+down":
		m.panY += speed
	}
	m.panX = max(m.panX, 0)
	m.panY = max(m.panY, 0)
	m.syncPalette()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 4
	default:
		return 1
	}
}

// syncPalette places the palette so that its own frame is the screen and
// its parent frame is the workspace as seen through toWorkspace.
func (m *model) syncPalette() {
	m.palette.SetFrame(geom.Offset{X: float64(-m.canvasLeft()), Y: float64(m.panY)})
}

// toWorkspace maps a screen cell to workspace coordinates. Cells over the
// palette map left of the workspace origin regardless of horizontal pan, so
// content released there is discarded.
func (m *model) toWorkspace(x, y int) geom.Point {
	left := m.canvasLeft()
	wy := float64(y + m.panY)
	if x < left {
		return geom.Point{X: float64(x - left), Y: wy}
	}
	return geom.Point{X: float64(x - left + m.panX), Y: wy}
}

// toScreen maps a workspace point inside the canvas to its screen cell.
func (m *model) toScreen(p geom.Point) point {
	return point{X: cellOf(p.X) - m.panX + m.canvasLeft(), Y: cellOf(p.Y) - m.panY}
}

// pointerFrom converts a terminal mouse event at workspace position pos.
func pointerFrom(msg tea.MouseMsg, pos geom.Point) drag.Pointer {
	var b drag.Button
	switch msg.Button {
	case tea.MouseButtonLeft:
		b = drag.ButtonPrimary
	case tea.MouseButtonMiddle:
		b = drag.ButtonMiddle
	case tea.MouseButtonRight:
		b = drag.ButtonSecondary
	}
	return drag.Pointer{Position: pos, Button: b, Alt: msg.Alt}
}
