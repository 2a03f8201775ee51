// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Linear maps [Min, Max] linearly onto [0, 1].
type Linear struct {
	Min, Max float64
}

// Map maps x to [0, 1] space. Values outside [Min, Max] extrapolate.
// A degenerate scale (Min == Max) maps everything to 0.5 rather than
// dividing by zero.
func (l Linear) Map(x float64) float64 {
	if l.Max == l.Min {
		return 0.5
	}
	return (x - l.Min) / (l.Max - l.Min)
}

// Unmap is the inverse of Map.
func (l Linear) Unmap(y float64) float64 {
	return l.Min + y*(l.Max-l.Min)
}

// Ticks returns nice ticks for this scale's range. See package-level
// Ticks.
func (l Linear) Ticks(max int) []float64 {
	return Ticks(l.Min, l.Max, max)
}
