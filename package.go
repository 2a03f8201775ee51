// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotkit renders 2D plots of in-memory numeric series to PNG
// and SVG files.
//
// The package provides three chart kinds: Scatter, Line and Histogram,
// plus Grid for composing an R x C matrix of independent charts into
// one image. A chart owns its series, reference lines, labels and
// bounds; rendering computes axis extents, nice tick marks and the
// data-to-device transform, then draws grid, axes, series, reference
// lines, legend and title through a surface.Surface backend.
//
// Plots and grids are not safe for concurrent use. Distinct instances
// share no state, so different goroutines may each work on their own
// plots; mutating or rendering one plot from two goroutines is
// undefined behavior. Rendering does not mutate the plot, so repeated
// saves of an unchanged plot produce identical output.
package plotkit

import (
	"log"
	"os"
)

// Warning is a logger for conditions that don't prevent the
// production of a plot, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[plotkit] ", log.Lshortfile)
