// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotkit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/plotkit/plotkit/palette"
)

func TestBoundsContainPointsStrictly(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 200).Draw(t, "n")
		// Quantized coordinates keep the padding well above the
		// float ulp at these magnitudes.
		coord := func(label string) float64 {
			return math.Round(rapid.Float64Range(-1e6, 1e6).Draw(t, label)*1e3) / 1e3
		}
		pts := make([]Point, n)
		for i := range pts {
			pts[i] = Point{X: coord("x"), Y: coord("y")}
		}
		s := NewScatter(400, 300)
		s.Add(pts)

		b, hasData := s.computeBounds()
		if !hasData {
			t.Fatal("computeBounds reported no data")
		}
		for _, p := range pts {
			// Padding puts every point strictly inside the box.
			if !(b.MinX < p.X && p.X < b.MaxX && b.MinY < p.Y && p.Y < b.MaxY) {
				t.Fatalf("point %+v not strictly inside %+v", p, b)
			}
		}
	})
}

func TestBoundsManualOverride(t *testing.T) {
	s := NewScatter(400, 300)
	s.Add([]Point{{-100, -100}, {100, 100}})
	s.SetBounds(0, 1, 2, 3)

	b, _ := s.computeBounds()
	// Manual bounds are exact: no padding, data ignored.
	assert.Equal(t, Bounds{0, 1, 2, 3}, b)

	s.AutoBounds()
	b, _ = s.computeBounds()
	assert.Less(t, b.MinX, -100.0)
	assert.Greater(t, b.MaxX, 100.0)
}

func TestBoundsEmptyFallback(t *testing.T) {
	s := NewScatter(400, 300)
	b, hasData := s.computeBounds()
	assert.False(t, hasData)
	assert.Equal(t, Bounds{0, 1, 0, 1}, b)
}

func TestBoundsDegenerate(t *testing.T) {
	check := func(pts []Point) {
		s := NewScatter(400, 300)
		s.Add(pts)
		b, _ := s.computeBounds()
		if b.MinX >= b.MaxX || b.MinY >= b.MaxY {
			t.Errorf("degenerate bounds %+v for points %v", b, pts)
		}
	}
	// Single point.
	check([]Point{{5, 7}})
	// Single point at the origin.
	check([]Point{{0, 0}})
	// Horizontal and vertical runs.
	check([]Point{{1, 3}, {2, 3}, {3, 3}})
	check([]Point{{4, 1}, {4, 2}, {4, 3}})
}

func TestBoundsFromRefLinesOnly(t *testing.T) {
	s := NewScatter(400, 300)
	assert.NoError(t, s.AddVLine(10))
	assert.NoError(t, s.AddHLine(-5))

	b, hasData := s.computeBounds()
	assert.True(t, hasData)
	assert.LessOrEqual(t, b.MinX, 10.0)
	assert.GreaterOrEqual(t, b.MaxX, 10.0)
	assert.LessOrEqual(t, b.MinY, -5.0)
}

func TestHistogramBoundsFromBins(t *testing.T) {
	h := NewHistogram(400, 300)
	if err := h.AddStyled("v", []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 10}, palette.Blue, 5); err != nil {
		t.Fatal(err)
	}
	b, _ := h.computeBounds()
	// x spans the bin edges (padded), y starts at the zero
	// baseline and covers the tallest bin.
	assert.Less(t, b.MinX, 0.0)
	assert.Greater(t, b.MaxX, 10.0)
	assert.Equal(t, 0.0, b.MinY)
	assert.GreaterOrEqual(t, b.MaxY, 2.0)
}
