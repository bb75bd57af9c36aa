package main

import "github.com/charmbracelet/lipgloss"

type Mode int

const (
	ModeNormal Mode = iota
	ModeFileInput
)

type FileOperation int

const (
	FileOpSavePNG FileOperation = iota
	FileOpSaveVisualTXT
)

const (
	// blockHeight is a bordered block with one label row.
	blockHeight = 3
	// blockPadding is the border plus one blank cell on each side of the label.
	blockPadding = 4
	// seedX and seedY place the initial stack.
	seedX, seedY = 2, 1
	// PNG export cell size in pixels.
	charWidth  = 8.0
	charHeight = 16.0
)

// paint selects the style of a grid cell.
type paint uint8

const (
	paintNone paint = iota
	paintBorder
	paintLabel
	paintConnector
	paintFloating
	paintSeparator
	paintPalette
	paintKind // first of the per-kind label colors
)

var (
	colorAccent = lipgloss.Color("220")
	colorDim    = lipgloss.Color("240")
	colorGray   = lipgloss.Color("245")
	colorWhite  = lipgloss.Color("255")
	colorCyan   = lipgloss.Color("36")
	colorRed    = lipgloss.Color("167")
	colorGreen  = lipgloss.Color("35")

	// kindColors are handed out to block kinds in palette order.
	kindColors = []lipgloss.Color{
		lipgloss.Color("75"),  // blue
		lipgloss.Color("177"), // violet
		lipgloss.Color("214"), // orange
		lipgloss.Color("35"),  // green
		lipgloss.Color("167"), // red
		lipgloss.Color("36"),  // teal
	}
)

var (
	styleStatus  = lipgloss.NewStyle().Foreground(colorGray)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

// paintStyles maps the fixed paints to styles; per-kind paints follow.
func paintStyles() []lipgloss.Style {
	styles := []lipgloss.Style{
		paintNone:      lipgloss.NewStyle(),
		paintBorder:    lipgloss.NewStyle().Foreground(colorGray),
		paintLabel:     lipgloss.NewStyle().Foreground(colorWhite),
		paintConnector: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		paintFloating:  lipgloss.NewStyle().Foreground(colorCyan),
		paintSeparator: lipgloss.NewStyle().Foreground(colorDim),
		paintPalette:   lipgloss.NewStyle().Foreground(colorDim),
	}
	for _, c := range kindColors {
		styles = append(styles, lipgloss.NewStyle().Foreground(c))
	}
	return styles
}
