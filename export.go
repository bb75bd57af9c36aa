package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"snapblocks/internal/geom"
	"snapblocks/internal/stack"
	"snapblocks/internal/workspace"
)

var errNothingToExport = errors.New("nothing to export")

// placedBlock is a block with its top-left corner in workspace cells.
type placedBlock struct {
	block *stack.Block
	x, y  int
}

// collectBlocks flattens the forest in paint order and returns the cell
// bounds of everything placed.
func collectBlocks(ws *workspace.Workspace) ([]placedBlock, geom.Box, error) {
	var (
		out    []placedBlock
		bounds geom.Box
	)
	for _, s := range ws.Segments() {
		for _, b := range s.Blocks() {
			p := s.Frame().ToParent(b.Position())
			w, h := b.Size()
			r := geom.NewBox(p.X, p.Y, p.X+w, p.Y+h)
			if len(out) == 0 {
				bounds = r
			} else {
				bounds = bounds.Combine(r)
			}
			out = append(out, placedBlock{block: b, x: cellOf(p.X), y: cellOf(p.Y)})
		}
	}
	if len(out) == 0 {
		return nil, geom.Box{}, errNothingToExport
	}
	return out, bounds, nil
}

// exportVisualTXT writes the placed stacks as they look in the editor,
// without colors, cropped to their bounds.
func exportVisualTXT(ws *workspace.Workspace, filename string) error {
	blocks, bounds, err := collectBlocks(ws)
	if err != nil {
		return err
	}

	minX, minY := cellOf(bounds.X1), cellOf(bounds.Y1)
	g := newGrid(cellOf(bounds.X2)-minX, cellOf(bounds.Y2)-minY)
	for _, pb := range blocks {
		g.block(pb.block, pb.x-minX, pb.y-minY, paintLabel, false)
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.WriteString(strings.Join(g.plain(), "\n") + "\n"); err != nil {
		return err
	}
	return file.Close()
}

// exportPNG rasterizes the placed stacks, one cell per charWidth x
// charHeight pixels.
func exportPNG(ws *workspace.Workspace, filename string) error {
	blocks, bounds, err := collectBlocks(ws)
	if err != nil {
		return err
	}

	padding := 2
	minX := cellOf(bounds.X1) - padding
	minY := cellOf(bounds.Y1) - padding
	maxX := cellOf(bounds.X2) + padding
	maxY := cellOf(bounds.Y2) + padding

	dc := gg.NewContext(int(float64(maxX-minX)*charWidth), int(float64(maxY-minY)*charHeight))
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	for _, pb := range blocks {
		drawBlockPNG(dc, pb, minX, minY)
	}
	return dc.SavePNG(filename)
}

func drawBlockPNG(dc *gg.Context, pb placedBlock, minX, minY int) {
	w, h := pb.block.Size()
	x := float64(pb.x-minX) * charWidth
	y := float64(pb.y-minY) * charHeight

	dc.SetColor(color.White)
	dc.DrawRectangle(x, y, w*charWidth, h*charHeight)
	dc.Fill()

	dc.SetLineWidth(1.0)
	dc.SetColor(color.Black)
	dc.DrawRectangle(x, y, w*charWidth, h*charHeight)
	dc.Stroke()

	dc.DrawStringAnchored(pb.block.Content().Label, x+2*charWidth, y+h*charHeight/2, 0, 0.35)
}
