// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import "image/color"

// Scatter is a scatter chart: each series renders as point markers,
// and points may carry cluster labels for stable cluster coloring.
type Scatter struct {
	Plot
}

// NewScatter returns a scatter chart with the given render dimensions
// in pixels. Non-positive dimensions fall back to 800x600.
func NewScatter(width, height int) *Scatter {
	return &Scatter{newPlot(chartScatter, width, height)}
}

// Add adds a series with an auto-assigned name and color.
func (c *Scatter) Add(pts []Point) {
	c.addPlain(c.autoName(), pts, nil)
}

// AddNamed adds a series with the given legend name and an
// auto-assigned color.
func (c *Scatter) AddNamed(name string, pts []Point) {
	c.addPlain(name, pts, nil)
}

// AddStyled adds a series with the given legend name and color.
func (c *Scatter) AddStyled(name string, pts []Point, col color.NRGBA) {
	c.addPlain(name, pts, &col)
}

// AddClusters adds a cluster-labeled series. labels must have one
// entry per point; label -1 marks outliers (always drawn red, under
// the clusters), labels >= 0 are cluster ids colored by a stable
// palette so the same id renders identically across plots.
func (c *Scatter) AddClusters(pts []Point, labels []int) error {
	return c.addClusters(pts, labels, nil, nil)
}

// AddClustersNamed is AddClusters with legend names for the clusters,
// one per distinct non-negative label in ascending label order.
func (c *Scatter) AddClustersNamed(pts []Point, labels []int, names []string) error {
	return c.addClusters(pts, labels, names, nil)
}

// AddClustersStyled is AddClustersNamed with explicit cluster colors.
func (c *Scatter) AddClustersStyled(pts []Point, labels []int, names []string, colors []color.NRGBA) error {
	return c.addClusters(pts, labels, names, colors)
}

func (c *Scatter) addClusters(pts []Point, labels []int, names []string, colors []color.NRGBA) error {
	groups, err := buildClusters(pts, labels, names, colors)
	if err != nil {
		return err
	}
	c.series = append(c.series, series{
		kind:     kindCluster,
		style:    Style{PointSize: 3},
		clusters: groups,
		alpha:    0.8,
	})
	return nil
}

// addPlain appends a plain point series, copying the points.
func (p *Plot) addPlain(name string, pts []Point, col *color.NRGBA) {
	st := Style{Label: name}
	if col != nil {
		st.Color = *col
	} else {
		st.Color = p.nextColor()
	}
	cp := make([]Point, len(pts))
	copy(cp, pts)
	p.series = append(p.series, series{kind: kindPlain, style: st, pts: cp})
}
