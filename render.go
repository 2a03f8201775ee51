// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"image/color"

	"github.com/plotkit/plotkit/scale"
	"github.com/plotkit/plotkit/surface"
)

// Theme constants. Grid-on-gray matches the classic gg look.
var (
	plotBGColor   = color.NRGBA{0xee, 0xee, 0xee, 0xff}
	gridLineColor = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	axisColor     = color.NRGBA{0x88, 0x88, 0x88, 0xff}
	tickTextColor = color.NRGBA{0x66, 0x66, 0x66, 0xff}
	titleColor    = color.NRGBA{0x33, 0x33, 0x33, 0xff}
)

const (
	tickFontSize  = 12
	labelFontSize = 14
	titleFontSize = 16
	tickLen       = 4
)

// renderInto draws the whole plot into cell on s. The stages run in a
// fixed order: bounds, ticks, transform, grid, axes, series (insertion
// order), reference lines, legend, title. Bounds and ticks are
// computed once up front so axes and data placement cannot drift
// within one pass.
func (p *Plot) renderInto(s surface.Surface, cell Rect) {
	bounds, _ := p.computeBounds()
	discrete := p.hasDiscreteHist()

	var ticksX []float64
	if !discrete {
		ticksX = scale.Ticks(bounds.MinX, bounds.MaxX, scale.DefaultTickCount)
	}
	ticksY := scale.Ticks(bounds.MinY, bounds.MaxY, scale.DefaultTickCount)

	tr := newTransform(bounds, plotArea(cell, p.margins))

	p.drawPlotBackground(s, tr)
	p.drawGrid(s, tr, ticksX, ticksY)
	p.drawAxes(s, tr, ticksX, ticksY)
	if discrete {
		p.drawCategoryLabels(s, tr)
	}

	if len(p.series) == 0 && len(p.refLines) == 0 {
		p.drawEmptyPlaceholder(s, tr)
	} else {
		for i := range p.series {
			p.drawSeries(s, tr, &p.series[i])
		}
		p.drawRefLines(s, tr)
		p.drawLegend(s, tr)
	}
	p.drawTitleAndLabels(s, cell, tr)
}

func (p *Plot) drawPlotBackground(s surface.Surface, tr transform) {
	a := tr.area
	s.SetColor(plotBGColor)
	s.MoveTo(a.X, a.Y)
	s.LineTo(a.X+a.W, a.Y)
	s.LineTo(a.X+a.W, a.Y+a.H)
	s.LineTo(a.X, a.Y+a.H)
	s.Fill()
}

func (p *Plot) drawGrid(s surface.Surface, tr transform, ticksX, ticksY []float64) {
	a := tr.area
	s.SetColor(gridLineColor)
	for _, t := range ticksX {
		x, _ := tr.toScreen(Point{X: t, Y: 0})
		s.MoveTo(x, a.Y)
		s.LineTo(x, a.Y+a.H)
	}
	for _, t := range ticksY {
		_, y := tr.toScreen(Point{X: 0, Y: t})
		s.MoveTo(a.X, y)
		s.LineTo(a.X+a.W, y)
	}
	s.Stroke(1)
}

func (p *Plot) drawAxes(s surface.Surface, tr transform, ticksX, ticksY []float64) {
	a := tr.area

	// Border along the left and bottom edges.
	s.SetColor(axisColor)
	s.MoveTo(a.X, a.Y)
	s.LineTo(a.X, a.Y+a.H)
	s.LineTo(a.X+a.W, a.Y+a.H)
	s.Stroke(1.5)

	// Tick marks.
	for _, t := range ticksX {
		x, _ := tr.toScreen(Point{X: t})
		s.MoveTo(x, a.Y+a.H)
		s.LineTo(x, a.Y+a.H+tickLen)
	}
	for _, t := range ticksY {
		_, y := tr.toScreen(Point{Y: t})
		s.MoveTo(a.X, y)
		s.LineTo(a.X-tickLen, y)
	}
	s.Stroke(1)

	// Tick labels.
	s.SetColor(tickTextColor)
	for i, lbl := range scale.Labels(ticksX) {
		x, _ := tr.toScreen(Point{X: ticksX[i]})
		s.Text(lbl, x, a.Y+a.H+tickLen+tickFontSize, tickFontSize, surface.AnchorMiddle)
	}
	for i, lbl := range scale.Labels(ticksY) {
		_, y := tr.toScreen(Point{Y: ticksY[i]})
		s.Text(lbl, a.X-tickLen-2, y+tickFontSize*0.35, tickFontSize, surface.AnchorEnd)
	}
}

// drawCategoryLabels writes discrete histogram category names centered
// under their slots in place of numeric x ticks.
func (p *Plot) drawCategoryLabels(s surface.Surface, tr transform) {
	a := tr.area
	s.SetColor(tickTextColor)
	for _, sr := range p.series {
		if sr.kind != kindHistogram || !sr.hist.discrete {
			continue
		}
		for i, cat := range sr.hist.categories {
			x, _ := tr.toScreen(Point{X: float64(i) + 0.5})
			s.Text(cat, x, a.Y+a.H+tickLen+tickFontSize, tickFontSize, surface.AnchorMiddle)
		}
	}
}

func (p *Plot) drawSeries(s surface.Surface, tr transform, sr *series) {
	switch sr.kind {
	case kindPlain:
		if p.kind == chartLine {
			p.drawPolyline(s, tr, sr.pts, sr.style)
		}
		if p.kind == chartScatter || sr.style.PointSize > 0 {
			drawMarkers(s, tr, sr.pts, sr.style.Color, markerRadius(sr.style))
		}
	case kindCluster:
		// Groups are pre-sorted with outliers first, so clusters
		// draw over outlier markers.
		for _, g := range sr.clusters {
			drawMarkers(s, tr, g.pts, withAlpha(g.color, sr.alpha), markerRadius(sr.style))
		}
	case kindHistogram:
		p.drawHistogram(s, tr, sr)
	}
}

func markerRadius(st Style) float64 {
	if st.PointSize > 0 {
		return st.PointSize
	}
	return 3
}

func drawMarkers(s surface.Surface, tr transform, pts []Point, c color.NRGBA, r float64) {
	s.SetColor(c)
	for _, pt := range pts {
		x, y := tr.toScreen(pt)
		surface.Circle(s, x, y, r)
	}
	s.Fill()
}

func (p *Plot) drawPolyline(s surface.Surface, tr transform, pts []Point, st Style) {
	if len(pts) < 2 {
		Warning.Print("cannot draw path through fewer than 2 points; ignoring")
		return
	}
	w := st.LineWidth
	if w <= 0 {
		w = 2
	}
	s.SetColor(st.Color)
	for i, pt := range pts {
		x, y := tr.toScreen(pt)
		if i == 0 {
			s.MoveTo(x, y)
		} else {
			s.LineTo(x, y)
		}
	}
	s.Stroke(w)
}

func (p *Plot) drawHistogram(s surface.Surface, tr transform, sr *series) {
	h := sr.hist
	if h.discrete {
		// One slot per category with a small inset between bars.
		for i, n := range h.catCounts {
			p.drawBar(s, tr, float64(i)+0.1, float64(i)+0.9, float64(n), sr.style.Color)
		}
		return
	}
	for i, n := range h.counts {
		p.drawBar(s, tr, h.edges[i], h.edges[i+1], float64(n), sr.style.Color)
	}
}

func (p *Plot) drawBar(s surface.Surface, tr transform, x0, x1, top float64, c color.NRGBA) {
	sx0, sy0 := tr.toScreen(Point{X: x0, Y: 0})
	sx1, sy1 := tr.toScreen(Point{X: x1, Y: top})
	s.SetColor(withAlpha(c, 0.9))
	s.MoveTo(sx0, sy0)
	s.LineTo(sx0, sy1)
	s.LineTo(sx1, sy1)
	s.LineTo(sx1, sy0)
	s.Fill()
	s.SetColor(c)
	s.MoveTo(sx0, sy0)
	s.LineTo(sx0, sy1)
	s.LineTo(sx1, sy1)
	s.LineTo(sx1, sy0)
	s.Stroke(1)
}

func (p *Plot) drawRefLines(s surface.Surface, tr transform) {
	a := tr.area
	for _, rl := range p.refLines {
		s.SetColor(rl.Color)
		if rl.Vertical {
			x, _ := tr.toScreen(Point{X: rl.Pos})
			s.MoveTo(x, a.Y)
			s.LineTo(x, a.Y+a.H)
		} else {
			_, y := tr.toScreen(Point{Y: rl.Pos})
			s.MoveTo(a.X, y)
			s.LineTo(a.X+a.W, y)
		}
		s.Stroke(1.5)
	}
}

func (p *Plot) drawEmptyPlaceholder(s surface.Surface, tr transform) {
	a := tr.area
	s.SetColor(tickTextColor)
	s.Text("Empty plot", a.X+a.W/2, a.Y+a.H/2, labelFontSize, surface.AnchorMiddle)
}

func (p *Plot) drawTitleAndLabels(s surface.Surface, cell Rect, tr transform) {
	a := tr.area
	s.SetColor(titleColor)
	if p.title != "" {
		s.Text(p.title, a.X+a.W/2, cell.Y+titleFontSize+6, titleFontSize, surface.AnchorMiddle)
	}
	if p.xlabel != "" {
		s.Text(p.xlabel, a.X+a.W/2, cell.Y+cell.H-8, labelFontSize, surface.AnchorMiddle)
	}
	if p.ylabel != "" {
		s.VerticalText(p.ylabel, cell.X+labelFontSize, a.Y+a.H/2, labelFontSize)
	}
}
