// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import "image/color"

// Style describes how one series is drawn. Styles are copied into the
// series that uses them, never shared, so mutating a Style after
// adding a series has no effect on it.
type Style struct {
	// PointSize is the marker radius in pixels. Zero draws no
	// markers.
	PointSize float64

	// LineWidth is the stroke width for line series and bar
	// outlines.
	LineWidth float64

	// Color is the series color.
	Color color.NRGBA

	// Label names the series in the legend. An empty label keeps
	// the series out of the legend.
	Label string
}

// markerKind tells the legend which swatch shape to draw for an entry.
type markerKind int

const (
	markerPoint markerKind = iota
	markerLine
	markerBar
)

// withAlpha scales a color's alpha by a in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = uint8(a*255 + 0.5)
	return c
}
