// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/plotkit/plotkit/palette"
)

// series is a tagged union over the chart data variants. Exactly the
// fields for its kind are set. Keeping the variants in one struct with
// a kind tag (rather than an interface hierarchy) lets the renderer
// dispatch with a switch and makes the histogram discrete/continuous
// exclusivity a construction-time check.
type seriesKind int

const (
	kindPlain seriesKind = iota
	kindCluster
	kindHistogram
)

type series struct {
	kind  seriesKind
	style Style

	// kindPlain
	pts []Point

	// kindCluster. Groups are resolved at insertion time: outliers
	// first, then ascending labels, each with its final name and
	// color. Resolving eagerly keeps the label set and colors
	// stable across renders no matter what the caller does to the
	// legend afterwards.
	clusters []clusterGroup
	alpha    float64

	// kindHistogram
	hist *histData
}

type clusterGroup struct {
	label int
	name  string
	color color.NRGBA
	pts   []Point
}

type histData struct {
	discrete bool

	// Continuous: raw values plus bins computed at insertion.
	values []float64
	edges  []float64
	counts []int

	// Discrete: caller-supplied categories and counts.
	categories []string
	catCounts  []int
}

// RefLine is a vertical or horizontal reference line. It is
// independent of any series but shares the legend and the color
// conflict-avoidance namespace with them.
type RefLine struct {
	Vertical bool
	Pos      float64
	Label    string
	Color    color.NRGBA
}

// buildClusters validates and groups cluster input. names, if
// non-nil, must have one entry per distinct non-negative label (in
// ascending label order); colors likewise. Outliers (label -1) sort
// first so clusters draw over them.
func buildClusters(pts []Point, labels []int, names []string, colors []color.NRGBA) ([]clusterGroup, error) {
	if len(pts) != len(labels) {
		return nil, fmt.Errorf("%w: %d points but %d cluster labels", ErrInvalidArgument, len(pts), len(labels))
	}
	byLabel := make(map[int][]Point)
	for i, p := range pts {
		byLabel[labels[i]] = append(byLabel[labels[i]], p)
	}
	order := make([]int, 0, len(byLabel))
	for l := range byLabel {
		order = append(order, l)
	}
	sort.Ints(order)

	ncluster := len(order)
	if _, ok := byLabel[-1]; ok {
		ncluster--
	}
	if names != nil && len(names) != ncluster {
		return nil, fmt.Errorf("%w: %d cluster names for %d clusters", ErrInvalidArgument, len(names), ncluster)
	}
	if colors != nil && len(colors) != ncluster {
		return nil, fmt.Errorf("%w: %d cluster colors for %d clusters", ErrInvalidArgument, len(colors), ncluster)
	}

	groups := make([]clusterGroup, 0, len(order))
	nth := 0 // index among non-negative labels
	for _, l := range order {
		g := clusterGroup{label: l, pts: byLabel[l], color: palette.Cluster(l)}
		if l < 0 {
			g.name = "Outliers"
		} else {
			g.name = fmt.Sprintf("Cluster %d", l)
			if names != nil {
				g.name = names[nth]
			}
			if colors != nil {
				g.color = colors[nth]
			}
			nth++
		}
		groups = append(groups, g)
	}
	return groups, nil
}
