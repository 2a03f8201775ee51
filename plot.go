// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"fmt"
	"image/color"
	"os"

	"github.com/plotkit/plotkit/palette"
	"github.com/plotkit/plotkit/surface"
)

type chartKind int

const (
	chartScatter chartKind = iota
	chartLine
	chartHistogram
)

// Plot is the shared core of every chart kind: the series model,
// reference lines, labels, bounds policy, legend state and the color
// rotation. The exported chart types (Scatter, Line, Histogram) embed
// it and add their kind-specific Add methods.
//
// A Plot is mutable until rendered; rendering never mutates it.
type Plot struct {
	kind          chartKind
	width, height int
	margins       Margins

	title, xlabel, ylabel string

	series   []series
	refLines []RefLine

	manualBounds *Bounds

	legendOff bool
	hidden    map[string]bool

	colors  palette.Assigner
	seriesN int
}

func newPlot(kind chartKind, width, height int) Plot {
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 600
	}
	return Plot{
		kind:    kind,
		width:   width,
		height:  height,
		margins: DefaultMargins,
		hidden:  make(map[string]bool),
	}
}

// SetTitle sets the plot title.
func (p *Plot) SetTitle(title string) { p.title = title }

// SetXLabel sets the x axis label.
func (p *Plot) SetXLabel(label string) { p.xlabel = label }

// SetYLabel sets the y axis label.
func (p *Plot) SetYLabel(label string) { p.ylabel = label }

// SetLabels sets title and both axis labels at once.
func (p *Plot) SetLabels(title, xlabel, ylabel string) {
	p.title, p.xlabel, p.ylabel = title, xlabel, ylabel
}

// SetBounds overrides automatic bounds computation. Manual bounds are
// used exactly as given, without padding.
func (p *Plot) SetBounds(minX, maxX, minY, maxY float64) {
	p.manualBounds = &Bounds{minX, maxX, minY, maxY}
}

// AutoBounds reverts to automatic bounds computation.
func (p *Plot) AutoBounds() { p.manualBounds = nil }

// SetLegend enables or disables the legend.
func (p *Plot) SetLegend(enabled bool) { p.legendOff = !enabled }

// HideLegendItem hides the legend entry for label. Hiding an entry
// affects only the legend: series keep their data and colors. The
// label need not correspond to any current series.
func (p *Plot) HideLegendItem(label string) { p.hidden[label] = true }

// ShowLegendItem undoes HideLegendItem for label.
func (p *Plot) ShowLegendItem(label string) { delete(p.hidden, label) }

// ShowAllLegendItems undoes all HideLegendItem calls.
func (p *Plot) ShowAllLegendItems() { p.hidden = make(map[string]bool) }

// Clear removes all series and reference lines and resets the
// auto-color and auto-name counters. Titles, bounds overrides and
// legend settings are kept.
func (p *Plot) Clear() {
	p.series = nil
	p.refLines = nil
	p.colors = palette.Assigner{}
	p.seriesN = 0
}

// autoName returns the next auto-assigned series name.
func (p *Plot) autoName() string {
	p.seriesN++
	return fmt.Sprintf("Series %d", p.seriesN)
}

// nextColor returns the next rotation color for a data series.
func (p *Plot) nextColor() color.NRGBA { return p.colors.Next() }

// usedSeriesColors returns the colors currently held by data series,
// for reference-line conflict avoidance.
func (p *Plot) usedSeriesColors() []color.NRGBA {
	var used []color.NRGBA
	for _, s := range p.series {
		if s.kind == kindCluster {
			for _, g := range s.clusters {
				used = append(used, g.color)
			}
			continue
		}
		used = append(used, s.style.Color)
	}
	return used
}

func (p *Plot) hasDiscreteHist() bool {
	for _, s := range p.series {
		if s.kind == kindHistogram && s.hist.discrete {
			return true
		}
	}
	return false
}

func (p *Plot) hasContinuousHist() bool {
	for _, s := range p.series {
		if s.kind == kindHistogram && !s.hist.discrete {
			return true
		}
	}
	return false
}

func (p *Plot) hasVLine() bool {
	for _, rl := range p.refLines {
		if rl.Vertical {
			return true
		}
	}
	return false
}

// AddVLine adds a vertical reference line at x with an auto-assigned
// color and no legend entry.
func (p *Plot) AddVLine(x float64) error { return p.addRefLine(true, x, "", nil) }

// AddVLineNamed is AddVLine with a legend label.
func (p *Plot) AddVLineNamed(x float64, label string) error {
	return p.addRefLine(true, x, label, nil)
}

// AddVLineStyled is AddVLineNamed with an explicit color.
func (p *Plot) AddVLineStyled(x float64, label string, c color.NRGBA) error {
	return p.addRefLine(true, x, label, &c)
}

// AddHLine adds a horizontal reference line at y with an
// auto-assigned color and no legend entry.
func (p *Plot) AddHLine(y float64) error { return p.addRefLine(false, y, "", nil) }

// AddHLineNamed is AddHLine with a legend label.
func (p *Plot) AddHLineNamed(y float64, label string) error {
	return p.addRefLine(false, y, label, nil)
}

// AddHLineStyled is AddHLineNamed with an explicit color.
func (p *Plot) AddHLineStyled(y float64, label string, c color.NRGBA) error {
	return p.addRefLine(false, y, label, &c)
}

func (p *Plot) addRefLine(vertical bool, pos float64, label string, c *color.NRGBA) error {
	if vertical && p.hasDiscreteHist() {
		return fmt.Errorf("%w: vertical reference line on a categorical axis", ErrInvalidArgument)
	}
	rl := RefLine{Vertical: vertical, Pos: pos, Label: label}
	if c != nil {
		rl.Color = *c
	} else {
		rl.Color = p.colors.NextAvoiding(p.usedSeriesColors())
	}
	p.refLines = append(p.refLines, rl)
	return nil
}

// SavePNG renders the plot and writes it to path as a PNG file.
func (p *Plot) SavePNG(path string) error {
	r := surface.NewRaster(p.width, p.height)
	paintBackground(r, Rect{0, 0, float64(p.width), float64(p.height)})
	p.renderInto(r, Rect{0, 0, float64(p.width), float64(p.height)})
	return writePNG(r, path)
}

// SaveSVG renders the plot and writes it to path as an SVG file.
func (p *Plot) SaveSVG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	s := surface.NewSVG(f, p.width, p.height)
	paintBackground(s, Rect{0, 0, float64(p.width), float64(p.height)})
	p.renderInto(s, Rect{0, 0, float64(p.width), float64(p.height)})
	s.Close()
	return f.Close()
}

func writePNG(r *surface.Raster, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// paintBackground fills r with the canvas color.
func paintBackground(s surface.Surface, r Rect) {
	s.SetColor(color.White)
	s.MoveTo(r.X, r.Y)
	s.LineTo(r.X+r.W, r.Y)
	s.LineTo(r.X+r.W, r.Y+r.H)
	s.LineTo(r.X, r.Y+r.H)
	s.Fill()
}
