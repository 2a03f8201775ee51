// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale computes axis scales and "nice" tick marks.
//
// A tick step is always of the form m*10^k with m in {1, 2, 5}. Steps
// are organized into levels: level 3k generates multiples of 10^k,
// level 3k+1 multiples of 2*10^k, and level 3k+2 multiples of 5*10^k.
// Higher levels produce fewer, further-apart ticks. Ticks returns the
// ticks at the lowest level whose tick count does not exceed the
// requested maximum, so the result is deterministic for a given range
// and target.
package scale

import (
	"math"
	"strconv"
)

// DefaultTickCount is the tick target used when a caller passes a
// non-positive target to Ticks.
const DefaultTickCount = 5

// stepAtLevel returns the tick step for a level.
func stepAtLevel(level int) float64 {
	mant := [3]float64{1, 2, 5}
	k := level / 3
	m := level % 3
	if m < 0 {
		m += 3
		k--
	}
	return mant[m] * math.Pow(10, float64(k))
}

// levelFor returns the lowest level whose step is >= step.
func levelFor(step float64) int {
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return 0
	}
	k := int(math.Floor(math.Log10(step)))
	for l := 3 * k; ; l++ {
		// Guard against Log10 rounding putting us a level low.
		if stepAtLevel(l) >= step*(1-1e-12) {
			return l
		}
	}
}

// tickIndexRange returns the indices of the first and last multiple
// of the level's step inside [lo, hi]. The epsilon absorbs division
// rounding when a range end is itself a multiple of the step.
func tickIndexRange(lo, hi float64, level int) (first, last int) {
	step := stepAtLevel(level)
	return int(math.Ceil(lo/step - 1e-9)), int(math.Floor(hi/step + 1e-9))
}

// countTicks returns the number of ticks at level in [lo, hi] without
// materializing them. It is weakly monotonically decreasing in level.
func countTicks(lo, hi float64, level int) int {
	first, last := tickIndexRange(lo, hi, level)
	return last - first + 1
}

// ticksAtLevel returns the multiples of the level's step that fall in
// [lo, hi], in increasing order.
func ticksAtLevel(lo, hi float64, level int) []float64 {
	step := stepAtLevel(level)
	first, last := tickIndexRange(lo, hi, level)
	var ticks []float64
	for i := first; i <= last; i++ {
		ticks = append(ticks, float64(i)*step)
	}
	return ticks
}

// Ticks returns nice tick values covering [lo, hi], aiming for target
// ticks (DefaultTickCount if target <= 0). lo must be < hi; for any
// such range the result has at least 2 values, is strictly increasing,
// and every value is a multiple of a step from {1,2,5}*10^k.
//
// The first and last tick bracket or nearly bracket the range, and the
// count stays close to the target: at most target+1, since a full
// bracket at the target step often needs the extra endpoint tick.
func Ticks(lo, hi float64, target int) []float64 {
	if target <= 0 {
		target = DefaultTickCount
	}
	if target < 2 {
		target = 2
	}
	if !(lo < hi) {
		return nil
	}
	max := target + 1

	// Start from the raw step and walk levels until the count fits.
	// The walk terminates: count is weakly decreasing in level and
	// reaches 2 once the step exceeds (hi-lo)/2.
	l := levelFor((hi - lo) / float64(target))
	for countTicks(lo, hi, l) > max {
		l++
	}
	// A coarse guess may leave room below; take the lowest level
	// still within max so we don't undershoot the target.
	for countTicks(lo, hi, l-1) <= max {
		l--
	}
	ticks := ticksAtLevel(lo, hi, l)
	if len(ticks) >= 2 {
		return ticks
	}

	// Degenerately narrow placement (range straddles at most one
	// multiple). Fall back to the range ends themselves so callers
	// always get two ticks to anchor the axis.
	return []float64{lo, hi}
}

// maxLabelDecimals caps the precision of tick labels.
const maxLabelDecimals = 2

// Labels formats ticks with the minimum number of decimals that keeps
// adjacent labels distinct, capped at 2. Trailing zeros are stripped
// by formatting at exactly the chosen precision via strconv.
func Labels(ticks []float64) []string {
	prec := 0
	for ; prec < maxLabelDecimals; prec++ {
		if distinct(ticks, prec) {
			break
		}
	}
	labels := make([]string, len(ticks))
	for i, t := range ticks {
		labels[i] = formatTick(t, prec)
	}
	return labels
}

func distinct(ticks []float64, prec int) bool {
	for i := 1; i < len(ticks); i++ {
		if formatTick(ticks[i-1], prec) == formatTick(ticks[i], prec) {
			return false
		}
	}
	return true
}

func formatTick(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if prec == 0 {
		return s
	}
	// Strip trailing zeros, then a bare trailing point.
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
