// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/gonum/floats"
)

// Automatic bin counts are clamped to this range.
const (
	minAutoBins = 5
	maxAutoBins = 50
)

// autoBinCount picks a bin count for values using Scott's rule, which
// sizes bins by spread rather than just count. When the spread is
// degenerate it falls back to Sturges' rule.
func autoBinCount(values []float64) int {
	n := len(values)
	lo, hi := floats.Min(values), floats.Max(values)
	sd := stats.Sample{Xs: values}.StdDev()

	var bins int
	if sd > 0 && hi > lo {
		h := 3.5 * sd / math.Cbrt(float64(n))
		bins = int(math.Ceil((hi - lo) / h))
	} else {
		bins = int(math.Ceil(math.Log2(float64(n)))) + 1
	}
	if bins < minAutoBins {
		bins = minAutoBins
	} else if bins > maxAutoBins {
		bins = maxAutoBins
	}
	return bins
}

// computeBins bins values into binCount equal-width bins spanning
// [min(values), max(values)]. binCount == 0 selects the count
// automatically. The returned edges have len(counts)+1 entries.
//
// Bins are half-open on the right except the last, which is closed so
// the maximum value is always counted. Every value lands in exactly
// one bin, so the counts sum to len(values).
func computeBins(values []float64, binCount int) (edges []float64, counts []int, err error) {
	if binCount < 0 {
		return nil, nil, fmt.Errorf("%w: negative bin count %d", ErrInvalidArgument, binCount)
	}
	if len(values) == 0 {
		return nil, nil, nil
	}
	if binCount == 0 {
		binCount = autoBinCount(values)
	}

	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		// All-equal input gets a token span so the edges are
		// distinct and the transform downstream has a nonzero
		// range.
		lo, hi = lo-0.5, hi+0.5
	}

	edges = vec.Linspace(lo, hi, binCount+1)
	counts = make([]int, binCount)
	width := (hi - lo) / float64(binCount)
	for _, v := range values {
		i := int((v - lo) / width)
		if i >= binCount {
			// v == hi (or a rounding hair above): the last
			// bin is closed on the right.
			i = binCount - 1
		} else if i < 0 {
			i = 0
		}
		counts[i]++
	}
	return edges, counts, nil
}
