// Copyright 2024 The Plotkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

// ticksEqual compares tick slices with a small relative tolerance,
// since ticks are computed as multiples of a floating-point step.
func ticksEqual(got, want []float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		tol := 1e-9 * math.Max(1, math.Abs(want[i]))
		if math.Abs(got[i]-want[i]) > tol {
			return false
		}
	}
	return true
}

func TestTicks(t *testing.T) {
	check := func(lo, hi float64, max int, want []float64) {
		got := Ticks(lo, hi, max)
		if !ticksEqual(got, want) {
			t.Errorf("Ticks(%v, %v, %v) = %v; want %v", lo, hi, max, got, want)
		}
	}

	check(0, 10, 5, []float64{0, 2, 4, 6, 8, 10})
	check(0, 1, 5, []float64{0, 0.2, 0.4, 0.6, 0.8, 1})
	check(0, 100, 5, []float64{0, 20, 40, 60, 80, 100})
	check(-1, 1, 5, []float64{-1, -0.5, 0, 0.5, 1})
	check(1, 49, 5, []float64{10, 20, 30, 40})
	check(0.3, 0.7, 5, []float64{0.3, 0.4, 0.5, 0.6, 0.7})

	// Degenerate requests.
	check(1, 1, 5, nil)
	check(2, 1, 5, nil)

	// max <= 0 falls back to the default target.
	check(0, 10, 0, []float64{0, 2, 4, 6, 8, 10})
}

func TestTicksDeterministic(t *testing.T) {
	a := Ticks(0.123, 45.6, 5)
	b := Ticks(0.123, 45.6, 5)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same input produced different ticks: %v vs %v", a, b)
	}
}

// isNiceStep reports whether step is m*10^k for m in {1, 2, 5}.
func isNiceStep(step float64) bool {
	if step <= 0 {
		return false
	}
	k := math.Floor(math.Log10(step))
	for _, m := range []float64{1, 2, 5, 10, 0.5} {
		if math.Abs(step-m*math.Pow(10, k)) <= step*1e-6+1e-9 {
			return true
		}
	}
	return false
}

func TestTicksProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.Float64Range(-1e6, 1e6).Draw(t, "lo")
		span := rapid.Float64Range(1e-3, 1e6).Draw(t, "span")
		hi := lo + span
		if !(lo < hi) {
			t.Skip("span lost to rounding")
		}

		ticks := Ticks(lo, hi, 5)
		if len(ticks) < 2 {
			t.Fatalf("Ticks(%v, %v, 5) = %v; want at least 2 ticks", lo, hi, ticks)
		}
		if len(ticks) > 6 {
			t.Fatalf("Ticks(%v, %v, 5) returned %d ticks; want <= 6", lo, hi, len(ticks))
		}
		step := ticks[1] - ticks[0]
		for i := 1; i < len(ticks); i++ {
			if !(ticks[i] > ticks[i-1]) {
				t.Fatalf("ticks not strictly increasing: %v", ticks)
			}
			d := ticks[i] - ticks[i-1]
			// Spacing tolerance accounts for the ulp of tick
			// values far from the origin.
			tol := math.Max(step*1e-6, math.Abs(ticks[i])*1e-12)
			if math.Abs(d-step) > tol {
				t.Fatalf("uneven tick spacing: %v", ticks)
			}
		}
		if !isNiceStep(step) {
			t.Fatalf("step %v of %v is not of the form {1,2,5}*10^k", step, ticks)
		}
		eps := 1e-9 * math.Max(span, math.Max(math.Abs(lo), math.Abs(hi)))
		if ticks[0] < lo-eps || ticks[len(ticks)-1] > hi+eps {
			t.Fatalf("ticks %v escape range [%v, %v]", ticks, lo, hi)
		}
	})
}

func TestLabels(t *testing.T) {
	check := func(ticks []float64, want []string) {
		got := Labels(ticks)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Labels(%v) = %v; want %v", ticks, got, want)
		}
	}

	check([]float64{0, 2, 4}, []string{"0", "2", "4"})
	check([]float64{0, 0.5, 1}, []string{"0", "0.5", "1"})
	check([]float64{0, 0.05, 0.1}, []string{"0", "0.05", "0.1"})
	check([]float64{-0.5, 0, 0.5}, []string{"-0.5", "0", "0.5"})
	// Integer ticks never grow decimals.
	check([]float64{10, 20, 30}, []string{"10", "20", "30"})
	check(nil, []string{})
}
