// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface defines the drawing capability consumed by the plot
// renderer and provides SVG and raster implementations of it.
//
// The renderer never depends on a specific backend beyond the Surface
// interface: paths are built with MoveTo/LineTo/CurveTo and realized
// with Stroke or Fill, text is placed with Text, and layout decisions
// that depend on glyph sizes go through MeasureText. Finalization
// (encoding to a file format) is backend-specific and not part of the
// interface.
package surface

import "image/color"

// Anchor controls horizontal text alignment relative to the given
// position.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Surface is a 2D drawing backend. Coordinates are in device pixels
// with the origin at the top left and y growing downward.
//
// A Surface accumulates a current path; Stroke and Fill consume it.
// Calls are not safe for concurrent use.
type Surface interface {
	// SetColor sets the color used by subsequent Stroke, Fill and
	// Text calls.
	SetColor(c color.Color)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(cx1, cy1, cx2, cy2, x, y float64)

	// Stroke draws the current path with the given line width and
	// clears it.
	Stroke(width float64)

	// Fill fills the current path (subpaths are closed implicitly)
	// and clears it.
	Fill()

	// Text draws s with its baseline at (x, y), horizontally
	// aligned per anchor.
	Text(s string, x, y, size float64, anchor Anchor)

	// VerticalText draws s reading bottom-to-top, for y-axis
	// labels. Backends without glyph rotation may draw the text
	// horizontally centered at (x, y) instead.
	VerticalText(s string, x, y, size float64)

	// MeasureText returns the rendered width and height of s.
	MeasureText(s string, size float64) (w, h float64)
}

// Circle appends a circle of radius r around (x, y) to s's current
// path as four cubic segments.
func Circle(s Surface, x, y, r float64) {
	// Magic constant for approximating quarter arcs with cubics.
	const k = 0.5522847498
	s.MoveTo(x+r, y)
	s.CurveTo(x+r, y+k*r, x+k*r, y+r, x, y+r)
	s.CurveTo(x-k*r, y+r, x-r, y+k*r, x-r, y)
	s.CurveTo(x-r, y-k*r, x-k*r, y-r, x, y-r)
	s.CurveTo(x+k*r, y-r, x+r, y-k*r, x+r, y)
}
