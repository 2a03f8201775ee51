// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"testing"
)

func TestLinearMap(t *testing.T) {
	l := Linear{Min: 10, Max: 20}
	check := func(x, want float64) {
		if got := l.Map(x); got != want {
			t.Errorf("Map(%v) = %v; want %v", x, got, want)
		}
	}
	check(10, 0)
	check(15, 0.5)
	check(20, 1)
	check(25, 1.5)
	check(5, -0.5)
}

func TestLinearUnmapRoundTrip(t *testing.T) {
	l := Linear{Min: -3, Max: 7}
	for _, x := range []float64{-3, -1, 0, 2.5, 7} {
		got := l.Unmap(l.Map(x))
		if math.Abs(got-x) > 1e-12 {
			t.Errorf("Unmap(Map(%v)) = %v", x, got)
		}
	}
}

func TestLinearDegenerate(t *testing.T) {
	l := Linear{Min: 4, Max: 4}
	if got := l.Map(4); got != 0.5 {
		t.Errorf("degenerate Map(4) = %v; want 0.5", got)
	}
	if got := l.Map(123); got != 0.5 {
		t.Errorf("degenerate Map(123) = %v; want 0.5", got)
	}
	if math.IsNaN(l.Map(4)) || math.IsInf(l.Map(4), 0) {
		t.Error("degenerate Map produced a non-finite value")
	}
}
