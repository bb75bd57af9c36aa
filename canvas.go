package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"snapblocks/internal/geom"
	"snapblocks/internal/stack"
)

// cellRenderer measures blocks in terminal cells: the label framed by a
// one-cell border and one cell of padding on each side.
type cellRenderer struct{}

func (cellRenderer) Measure(c stack.Content) (w, h float64) {
	return float64(lipgloss.Width(c.Label) + blockPadding), blockHeight
}

type cell struct {
	r     rune
	paint paint
}

// grid is a screen buffer. Cells left of clip are not written.
type grid struct {
	cells [][]cell
	w, h  int
	clip  int
}

func newGrid(w, h int) *grid {
	g := &grid{w: max(w, 1), h: max(h, 1)}
	g.cells = make([][]cell, g.h)
	for y := range g.cells {
		g.cells[y] = make([]cell, g.w)
		for x := range g.cells[y] {
			g.cells[y][x] = cell{r: ' '}
		}
	}
	return g
}

func (g *grid) set(x, y int, r rune, p paint) {
	if x < g.clip || x >= g.w || y < 0 || y >= g.h {
		return
	}
	g.cells[y][x] = cell{r: r, paint: p}
}

func (g *grid) text(x, y int, s string, p paint) {
	for _, r := range s {
		g.set(x, y, r, p)
		x++
	}
}

// blockLook says how to draw one block.
type blockLook struct {
	label           paint
	border          paint
	floating        bool
	hlTop, hlBottom bool
}

// box draws a w x h bordered block with its label on the first inner row.
// A highlighted connector replaces that edge with '=' in the accent paint.
func (g *grid) box(x, y, w, h int, label string, look blockLook) {
	corner, horizontal, vertical := '+', '-', '|'
	if look.floating {
		corner, horizontal, vertical = '#', '#', '#'
	}
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			edge := row == y || row == y+h-1
			side := col == x || col == x+w-1
			switch {
			case row == y && look.hlTop, row == y+h-1 && look.hlBottom:
				g.set(col, row, '=', paintConnector)
			case edge && side:
				g.set(col, row, corner, look.border)
			case edge:
				g.set(col, row, horizontal, look.border)
			case side:
				g.set(col, row, vertical, look.border)
			default:
				g.set(col, row, ' ', paintNone)
			}
		}
	}
	if h > 2 {
		inner := max(w-blockPadding, 0)
		g.text(x+2, y+1, truncate(label, inner), look.label)
	}
}

func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > n {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

// block draws b with its top-left corner at screen cell (x, y).
func (g *grid) block(b *stack.Block, x, y int, label paint, floating bool) {
	w, h := b.Size()
	hlTop, hlBottom := b.Highlighted()
	border := paintBorder
	if floating {
		border = paintFloating
	}
	g.box(x, y, int(w), int(h), b.Content().Label, blockLook{
		label:    label,
		border:   border,
		floating: floating,
		hlTop:    hlTop,
		hlBottom: hlBottom,
	})
}

// segment draws every member of s. origin is the screen cell of the
// Segment's frame origin.
func (g *grid) segment(s *stack.Segment, origin point, labels func(stack.Content) paint, floating bool) {
	for _, b := range s.Blocks() {
		p := b.Position()
		g.block(b, origin.X+cellOf(p.X), origin.Y+cellOf(p.Y), labels(b.Content()), floating)
	}
}

func cellOf(v float64) int { return int(math.Floor(v)) }

// lines renders the grid with styles applied to runs of equal paint.
func (g *grid) lines(styles []lipgloss.Style) []string {
	out := make([]string, g.h)
	for y, row := range g.cells {
		var sb strings.Builder
		var run []rune
		current := paintNone
		flush := func() {
			if len(run) == 0 {
				return
			}
			if current == paintNone || int(current) >= len(styles) {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(styles[current].Render(string(run)))
			}
			run = run[:0]
		}
		for _, c := range row {
			if c.paint != current {
				flush()
				current = c.paint
			}
			run = append(run, c.r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

// plain renders the grid without styles, trailing blanks trimmed.
func (g *grid) plain() []string {
	out := make([]string, g.h)
	for y, row := range g.cells {
		runes := make([]rune, len(row))
		for x, c := range row {
			runes[x] = c.r
		}
		out[y] = strings.TrimRight(string(runes), " ")
	}
	return out
}

// canvasLeft is the first screen column of the workspace, right of the
// palette and its separator.
func (m *model) canvasLeft() int {
	return int(math.Ceil(m.palette.Width())) + 1
}

// canvasHeight is the number of rows above the status line.
func (m *model) canvasHeight() int {
	return max(m.height-1, 1)
}

// labelPaint colors labels by block kind.
func (m *model) labelPaint(c stack.Content) paint {
	if p, ok := m.kinds[c.Kind]; ok {
		return p
	}
	return paintLabel
}

// renderCanvas draws the palette, the placed stacks and the content being
// dragged, in that order.
func (m *model) renderCanvas() []string {
	g := newGrid(m.width, m.canvasHeight())
	left := m.canvasLeft()

	for i, b := range m.palette.Templates() {
		slot := m.palette.Slot(i)
		g.block(b, cellOf(slot.X), cellOf(slot.Y), m.labelPaint(b.Content()), false)
	}
	for y := 0; y < g.h; y++ {
		g.set(left-1, y, '│', paintSeparator)
	}

	g.clip = left
	for _, s := range m.ws.Segments() {
		g.segment(s, m.toScreen(geom.Point{X: s.X, Y: s.Y}), m.labelPaint, false)
	}

	g.clip = 0
	if seg, _, ok := m.ctrl.Floating(); ok {
		grab := m.ctrl.GrabOffset()
		origin := point{X: m.pointer.X - cellOf(grab.X), Y: m.pointer.Y - cellOf(grab.Y)}
		g.segment(seg, origin, m.labelPaint, true)
	}
	return g.lines(m.styles)
}
