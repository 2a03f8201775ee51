// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

// A Point is a location in data space.
type Point struct {
	X, Y float64
}

// A Rect is an axis-aligned rectangle in device space.
type Rect struct {
	X, Y, W, H float64
}

// Margins are the pixel bands reserved around the plot area for tick
// labels, axis labels and the title.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// DefaultMargins leave room for y tick labels and the y axis label on
// the left, the title on top, and x tick labels plus the x axis label
// on the bottom.
var DefaultMargins = Margins{Left: 60, Right: 20, Top: 40, Bottom: 50}

// Bounds are data-space axis extents.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}
