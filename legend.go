// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"image/color"

	"github.com/plotkit/plotkit/surface"
)

type legendEntry struct {
	label  string
	color  color.NRGBA
	marker markerKind
}

// legendEntries collects the visible legend entries in series
// insertion order (reference lines after series), de-duplicated by
// label. Hidden and unlabeled entries are skipped.
func (p *Plot) legendEntries() []legendEntry {
	var entries []legendEntry
	seen := make(map[string]bool)
	add := func(label string, c color.NRGBA, m markerKind) {
		if label == "" || p.hidden[label] || seen[label] {
			return
		}
		seen[label] = true
		entries = append(entries, legendEntry{label, c, m})
	}

	for _, s := range p.series {
		switch s.kind {
		case kindPlain:
			m := markerPoint
			if p.kind == chartLine {
				m = markerLine
			}
			add(s.style.Label, s.style.Color, m)
		case kindCluster:
			for _, g := range s.clusters {
				add(g.name, g.color, markerPoint)
			}
		case kindHistogram:
			add(s.style.Label, s.style.Color, markerBar)
		}
	}
	for _, rl := range p.refLines {
		add(rl.Label, rl.Color, markerLine)
	}
	return entries
}

// Legend geometry.
const (
	legendPad      = 6
	legendSwatch   = 12
	legendRowExtra = 6
	legendInset    = 8
)

// drawLegend draws the legend box in the top-right corner of the plot
// area, sized to fit the longest label. It is omitted when disabled or
// when no visible entry would appear.
func (p *Plot) drawLegend(s surface.Surface, tr transform) {
	if p.legendOff {
		return
	}
	entries := p.legendEntries()
	if len(entries) == 0 {
		return
	}

	var maxW, rowH float64
	for _, e := range entries {
		w, h := s.MeasureText(e.label, tickFontSize)
		if w > maxW {
			maxW = w
		}
		if h > rowH {
			rowH = h
		}
	}
	if rowH < legendSwatch {
		rowH = legendSwatch
	}
	rowH += legendRowExtra

	boxW := legendPad + legendSwatch + legendPad + maxW + legendPad
	boxH := float64(len(entries))*rowH + legendPad

	a := tr.area
	x0 := a.X + a.W - boxW - legendInset
	y0 := a.Y + legendInset

	// Background and border.
	s.SetColor(color.NRGBA{0xff, 0xff, 0xff, 0xf0})
	s.MoveTo(x0, y0)
	s.LineTo(x0+boxW, y0)
	s.LineTo(x0+boxW, y0+boxH)
	s.LineTo(x0, y0+boxH)
	s.Fill()
	s.SetColor(axisColor)
	s.MoveTo(x0, y0)
	s.LineTo(x0+boxW, y0)
	s.LineTo(x0+boxW, y0+boxH)
	s.LineTo(x0, y0+boxH)
	s.LineTo(x0, y0)
	s.Stroke(1)

	for i, e := range entries {
		cy := y0 + legendPad/2 + float64(i)*rowH + rowH/2
		sx := x0 + legendPad
		s.SetColor(e.color)
		switch e.marker {
		case markerPoint:
			surface.Circle(s, sx+legendSwatch/2, cy, 4)
			s.Fill()
		case markerLine:
			s.MoveTo(sx, cy)
			s.LineTo(sx+legendSwatch, cy)
			s.Stroke(2)
		case markerBar:
			s.MoveTo(sx, cy-legendSwatch/2+2)
			s.LineTo(sx+legendSwatch, cy-legendSwatch/2+2)
			s.LineTo(sx+legendSwatch, cy+legendSwatch/2-2)
			s.LineTo(sx, cy+legendSwatch/2-2)
			s.Fill()
		}
		s.SetColor(titleColor)
		s.Text(e.label, sx+legendSwatch+legendPad, cy+tickFontSize*0.35, tickFontSize, surface.AnchorStart)
	}
}
