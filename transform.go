// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import "github.com/plotkit/plotkit/scale"

// A transform maps data-space points into a device-space rectangle.
// It is an affine map per axis with the y axis inverted (data-up is
// screen-down). Building one is a pure function of bounds and area, so
// the same plot embedded in two subplot cells yields geometrically
// consistent, independently scaled output.
type transform struct {
	x, y scale.Linear
	area Rect
}

// newTransform builds the transform for bounds rendered into area.
// Pathologically small areas are clamped to a 1-pixel plot area so
// screen coordinates stay finite.
func newTransform(b Bounds, area Rect) transform {
	if area.W < 1 {
		area.W = 1
	}
	if area.H < 1 {
		area.H = 1
	}
	return transform{
		x:    scale.Linear{Min: b.MinX, Max: b.MaxX},
		y:    scale.Linear{Min: b.MinY, Max: b.MaxY},
		area: area,
	}
}

// toScreen maps a data point to device pixels.
func (t transform) toScreen(p Point) (sx, sy float64) {
	sx = t.area.X + t.x.Map(p.X)*t.area.W
	sy = t.area.Y + (1-t.y.Map(p.Y))*t.area.H
	return
}

// fromScreen is the inverse of toScreen.
func (t transform) fromScreen(sx, sy float64) Point {
	return Point{
		X: t.x.Unmap((sx - t.area.X) / t.area.W),
		Y: t.y.Unmap(1 - (sy-t.area.Y)/t.area.H),
	}
}

// plotArea returns the data area of a cell after subtracting margins.
func plotArea(cell Rect, m Margins) Rect {
	return Rect{
		X: cell.X + m.Left,
		Y: cell.Y + m.Top,
		W: cell.W - m.Left - m.Right,
		H: cell.H - m.Top - m.Bottom,
	}
}
