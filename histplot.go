// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"fmt"
	"image/color"
)

// Histogram is a histogram chart. It holds either continuous series
// (raw values binned into equal-width bins) or discrete series
// (directly counted named categories) — never both; mixing the two
// modes is rejected in either order.
type Histogram struct {
	Plot

	// defaultBins is the bin count used when a series is added
	// without one; 0 selects the count automatically.
	defaultBins int
}

// NewHistogram returns a histogram chart with the given render
// dimensions in pixels. Non-positive dimensions fall back to 800x600.
func NewHistogram(width, height int) *Histogram {
	return &Histogram{Plot: newPlot(chartHistogram, width, height)}
}

// SetDefaultBins sets the bin count used by Add and AddNamed. 0 (the
// initial value) selects a count automatically from the data spread.
func (c *Histogram) SetDefaultBins(n int) { c.defaultBins = n }

// Add adds a continuous series with an auto-assigned name and color
// and the plot's default bin count.
func (c *Histogram) Add(values []float64) error {
	return c.addContinuous(c.autoName(), values, nil, c.defaultBins)
}

// AddNamed is Add with a legend name.
func (c *Histogram) AddNamed(name string, values []float64) error {
	return c.addContinuous(name, values, nil, c.defaultBins)
}

// AddStyled is AddNamed with an explicit color and bin count
// (binCount 0 selects the count automatically).
func (c *Histogram) AddStyled(name string, values []float64, col color.NRGBA, binCount int) error {
	return c.addContinuous(name, values, &col, binCount)
}

func (c *Histogram) addContinuous(name string, values []float64, col *color.NRGBA, binCount int) error {
	if c.hasDiscreteHist() {
		return fmt.Errorf("%w: cannot mix continuous histogram data with discrete categories", ErrInvalidArgument)
	}
	edges, counts, err := computeBins(values, binCount)
	if err != nil {
		return err
	}
	st := Style{Label: name}
	if col != nil {
		st.Color = *col
	} else {
		st.Color = c.nextColor()
	}
	cp := make([]float64, len(values))
	copy(cp, values)
	c.series = append(c.series, series{
		kind:  kindHistogram,
		style: st,
		hist:  &histData{values: cp, edges: edges, counts: counts},
	})
	return nil
}

// AddCategories adds a discrete series: one bar per named category
// with a directly supplied count. It fails if the plot already holds
// continuous histogram data or a vertical reference line (a
// categorical axis has no numeric x position), or if categories and
// counts differ in length.
func (c *Histogram) AddCategories(name string, categories []string, counts []int) error {
	if c.hasContinuousHist() {
		return fmt.Errorf("%w: cannot mix discrete categories with continuous histogram data", ErrInvalidArgument)
	}
	if c.hasVLine() {
		return fmt.Errorf("%w: plot has a vertical reference line, which a categorical axis cannot place", ErrInvalidArgument)
	}
	if len(categories) != len(counts) {
		return fmt.Errorf("%w: %d categories but %d counts", ErrInvalidArgument, len(categories), len(counts))
	}
	st := Style{Label: name, Color: c.nextColor()}
	cats := make([]string, len(categories))
	copy(cats, categories)
	cnts := make([]int, len(counts))
	copy(cnts, counts)
	c.series = append(c.series, series{
		kind:  kindHistogram,
		style: st,
		hist:  &histData{discrete: true, categories: cats, catCounts: cnts},
	})
	return nil
}
