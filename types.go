package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"snapblocks/internal/drag"
	"snapblocks/internal/toolbox"
	"snapblocks/internal/workspace"
)

type model struct {
	width          int
	height         int
	panX           int
	panY           int
	pointer        point // last pointer cell on screen
	mode           Mode
	help           bool
	helpScroll     int
	fileOp         FileOperation
	filename       string
	errorMessage   string
	successMessage string

	ws      *workspace.Workspace
	ctrl    *drag.Controller
	palette *toolbox.Toolbox
	kinds   map[string]paint
	styles  []lipgloss.Style
	config  *Config
	logger  *log.Logger
	scene   *scene
}

// scene holds view figures derived from the workspace layout. The
// workspace redraw hook refreshes it, so it is shared by model copies.
type scene struct {
	stacks int
	blocks int
}

func (s *scene) refresh(ws *workspace.Workspace) {
	segs := ws.Segments()
	s.stacks, s.blocks = len(segs), 0
	for _, seg := range segs {
		s.blocks += seg.Len()
	}
}

type point struct {
	X, Y int
}
