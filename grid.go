// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"fmt"
	"os"

	"github.com/plotkit/plotkit/surface"
)

// Chart is implemented by every chart kind. It is sealed: only types
// in this package embedding Plot satisfy it.
type Chart interface {
	core() *Plot
}

func (p *Plot) core() *Plot { return p }

// mainTitleBand is the height reserved at the top of a grid canvas
// when a main title is set.
const mainTitleBand = 40

// Grid composes rows x cols independent charts into one image. Every
// cell is created eagerly at construction and owned by the grid; At
// returns cells for configuration. On save, all cells render into
// sub-rectangles of one shared surface, so the whole grid shares one
// coordinate space and one output file.
//
// The grid shape is fixed at construction.
type Grid[C Chart] struct {
	rows, cols    int
	width, height int
	spacing       float64
	mainTitle     string
	cells         []C
}

// NewScatterGrid returns a rows x cols grid of scatter charts on a
// width x height canvas. spacing is the gap between adjacent cells as
// a fraction of the canvas size.
func NewScatterGrid(rows, cols, width, height int, spacing float64) *Grid[*Scatter] {
	return newGrid(rows, cols, width, height, spacing, func(w, h int) *Scatter {
		return NewScatter(w, h)
	})
}

// NewLineGrid is NewScatterGrid for line charts.
func NewLineGrid(rows, cols, width, height int, spacing float64) *Grid[*Line] {
	return newGrid(rows, cols, width, height, spacing, func(w, h int) *Line {
		return NewLine(w, h)
	})
}

// NewHistogramGrid is NewScatterGrid for histogram charts.
func NewHistogramGrid(rows, cols, width, height int, spacing float64) *Grid[*Histogram] {
	return newGrid(rows, cols, width, height, spacing, func(w, h int) *Histogram {
		return NewHistogram(w, h)
	})
}

func newGrid[C Chart](rows, cols, width, height int, spacing float64, mk func(w, h int) C) *Grid[C] {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	if width <= 0 {
		width = 1200
	}
	if height <= 0 {
		height = 900
	}
	if spacing < 0 {
		spacing = 0
	}
	g := &Grid[C]{
		rows: rows, cols: cols,
		width: width, height: height,
		spacing: spacing,
		cells:   make([]C, rows*cols),
	}
	// Nominal cell dimensions; the actual sub-rectangles are
	// computed at save time so a late SetMainTitle still reserves
	// its band.
	cw, ch := int(g.cellSize(false).W), int(g.cellSize(false).H)
	for i := range g.cells {
		g.cells[i] = mk(cw, ch)
	}
	return g
}

// Rows returns the number of grid rows.
func (g *Grid[C]) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid[C]) Cols() int { return g.cols }

// SetMainTitle sets a title composed over the whole grid.
func (g *Grid[C]) SetMainTitle(title string) { g.mainTitle = title }

// At returns the chart at (row, col) for configuration. The grid
// retains ownership. Out-of-range indices fail with ErrOutOfRange.
func (g *Grid[C]) At(row, col int) (C, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		var zero C
		return zero, fmt.Errorf("%w: subplot (%d,%d) in %dx%d grid", ErrOutOfRange, row, col, g.rows, g.cols)
	}
	return g.cells[row*g.cols+col], nil
}

// cellSize returns the per-cell size after removing spacing gaps and,
// when titled is set, the main title band.
func (g *Grid[C]) cellSize(titled bool) Rect {
	gapX := g.spacing * float64(g.width)
	gapY := g.spacing * float64(g.height)
	h := float64(g.height)
	if titled {
		h -= mainTitleBand
	}
	return Rect{
		W: (float64(g.width) - gapX*float64(g.cols-1)) / float64(g.cols),
		H: (h - gapY*float64(g.rows-1)) / float64(g.rows),
	}
}

// cellRect returns the sub-rectangle for (row, col) on the canvas.
func (g *Grid[C]) cellRect(row, col int) Rect {
	sz := g.cellSize(g.mainTitle != "")
	gapX := g.spacing * float64(g.width)
	gapY := g.spacing * float64(g.height)
	top := 0.0
	if g.mainTitle != "" {
		top = mainTitleBand
	}
	return Rect{
		X: float64(col) * (sz.W + gapX),
		Y: top + float64(row)*(sz.H+gapY),
		W: sz.W,
		H: sz.H,
	}
}

// renderInto renders the grid onto one shared surface: main title
// first, then cells in row-major order, each into its own
// sub-rectangle.
func (g *Grid[C]) renderInto(s surface.Surface) {
	paintBackground(s, Rect{0, 0, float64(g.width), float64(g.height)})
	if g.mainTitle != "" {
		s.SetColor(titleColor)
		s.Text(g.mainTitle, float64(g.width)/2, mainTitleBand/2+titleFontSize/2, titleFontSize+2, surface.AnchorMiddle)
	}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			g.cells[row*g.cols+col].core().renderInto(s, g.cellRect(row, col))
		}
	}
}

// SavePNG renders the grid and writes it to path as a PNG file.
func (g *Grid[C]) SavePNG(path string) error {
	r := surface.NewRaster(g.width, g.height)
	g.renderInto(r)
	return writePNG(r, path)
}

// SaveSVG renders the grid and writes it to path as an SVG file.
func (g *Grid[C]) SaveSVG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	s := surface.NewSVG(f, g.width, g.height)
	g.renderInto(s)
	s.Close()
	return f.Close()
}
