// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"math"

	"github.com/gonum/floats"
)

// padFrac is the fraction of the data span added on each side so
// extreme points don't sit on the plot border.
const padFrac = 0.05

// computeBounds derives the plot's axis extents for one render pass.
// The second result is false when the plot has no data at all, in
// which case the bounds are the canonical 0..1 fallback and the
// renderer shows the empty-plot placeholder.
//
// A manual override wins unconditionally and is not padded.
func (p *Plot) computeBounds() (Bounds, bool) {
	if p.manualBounds != nil {
		return *p.manualBounds, true
	}
	if len(p.series) == 0 && len(p.refLines) == 0 {
		return Bounds{0, 1, 0, 1}, false
	}

	var xs, ys []float64
	for _, s := range p.series {
		switch s.kind {
		case kindPlain:
			for _, pt := range s.pts {
				xs = append(xs, pt.X)
				ys = append(ys, pt.Y)
			}
		case kindCluster:
			for _, g := range s.clusters {
				for _, pt := range g.pts {
					xs = append(xs, pt.X)
					ys = append(ys, pt.Y)
				}
			}
		case kindHistogram:
			// Histogram bounds come from the bins, not the
			// raw values: x spans the edges (or category
			// slots), y spans 0..max count.
			h := s.hist
			if h.discrete {
				if n := len(h.categories); n > 0 {
					xs = append(xs, 0, float64(n))
					ys = append(ys, 0)
					for _, c := range h.catCounts {
						ys = append(ys, float64(c))
					}
				}
			} else if len(h.edges) > 0 {
				xs = append(xs, floats.Min(h.edges), floats.Max(h.edges))
				ys = append(ys, 0)
				for _, c := range h.counts {
					ys = append(ys, float64(c))
				}
			}
		}
	}
	for _, rl := range p.refLines {
		if rl.Vertical {
			xs = append(xs, rl.Pos)
		} else {
			ys = append(ys, rl.Pos)
		}
	}

	b := Bounds{0, 1, 0, 1}
	if len(xs) > 0 {
		b.MinX, b.MaxX = floats.Min(xs), floats.Max(xs)
	}
	if len(ys) > 0 {
		b.MinY, b.MaxY = floats.Min(ys), floats.Max(ys)
	}

	b.MinX, b.MaxX = widenDegenerate(b.MinX, b.MaxX)
	b.MinY, b.MaxY = widenDegenerate(b.MinY, b.MaxY)

	// Pad so extremes land strictly inside the border. Histograms
	// keep y anchored at zero; padding the baseline would float the
	// bars above the axis.
	padX := padFrac * (b.MaxX - b.MinX)
	padY := padFrac * (b.MaxY - b.MinY)
	b.MinX -= padX
	b.MaxX += padX
	if p.kind == chartHistogram && b.MinY == 0 {
		b.MaxY += padY
	} else {
		b.MinY -= padY
		b.MaxY += padY
	}
	return b, true
}

// widenDegenerate synthesizes a small symmetric span around a single
// value so tick generation and the transform never see a zero range.
func widenDegenerate(lo, hi float64) (float64, float64) {
	if lo < hi {
		return lo, hi
	}
	if lo == 0 {
		return -1, 1
	}
	d := math.Abs(lo) * padFrac
	return lo - d, hi + d
}
