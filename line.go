// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import "image/color"

// Line is a line chart: each series renders as a polyline through its
// points in insertion order. Callers own point ordering; points are
// not sorted.
type Line struct {
	Plot
}

// NewLine returns a line chart with the given render dimensions in
// pixels. Non-positive dimensions fall back to 800x600.
func NewLine(width, height int) *Line {
	return &Line{newPlot(chartLine, width, height)}
}

// Add adds a series with an auto-assigned name and color.
func (c *Line) Add(pts []Point) {
	c.addPlain(c.autoName(), pts, nil)
}

// AddNamed adds a series with the given legend name and an
// auto-assigned color.
func (c *Line) AddNamed(name string, pts []Point) {
	c.addPlain(name, pts, nil)
}

// AddStyled adds a series with the given legend name and color.
func (c *Line) AddStyled(name string, pts []Point, col color.NRGBA) {
	c.addPlain(name, pts, &col)
}
