package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"snapblocks/internal/drag"
	"snapblocks/internal/geom"
)

func TestToWorkspace(t *testing.T) {
	m := testModel(t)
	m.panX, m.panY = 10, 3

	tests := []struct {
		name string
		x, y int
		want geom.Point
	}{
		{"canvas origin", 22, 0, geom.Point{X: 10, Y: 3}},
		{"canvas", 30, 5, geom.Point{X: 18, Y: 8}},
		{"separator", 21, 0, geom.Point{X: -1, Y: 3}},
		{"palette", 0, 0, geom.Point{X: -22, Y: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.toWorkspace(tt.x, tt.y); got != tt.want {
				t.Errorf("toWorkspace(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if got := m.toScreen(geom.Point{X: 18, Y: 8}); got != (point{X: 30, Y: 5}) {
		t.Errorf("toScreen() = %+v, want {30 5}", got)
	}
}

func TestPointerFrom(t *testing.T) {
	tests := []struct {
		button tea.MouseButton
		want   drag.Button
	}{
		{tea.MouseButtonLeft, drag.ButtonPrimary},
		{tea.MouseButtonMiddle, drag.ButtonMiddle},
		{tea.MouseButtonRight, drag.ButtonSecondary},
		{tea.MouseButtonNone, drag.ButtonNone},
		{tea.MouseButtonWheelUp, drag.ButtonNone},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			msg := tea.MouseMsg{Button: tt.button, Alt: true}
			p := pointerFrom(msg, geom.Point{X: 1, Y: 2})
			if p.Button != tt.want || !p.Alt || p.Position != (geom.Point{X: 1, Y: 2}) {
				t.Errorf("pointerFrom(%v) = %+v, want button %s", tt.button, p, tt.want)
			}
		})
	}
}

func TestWheelPans(t *testing.T) {
	m := testModel(t)
	m = update(t, m, tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m = update(t, m, tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m = update(t, m, tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if m.panY != 1 {
		t.Errorf("panY = %d, want 1", m.panY)
	}
	if m.ctrl.State() != drag.Idle {
		t.Errorf("state = %s, want idle", m.ctrl.State())
	}
}
