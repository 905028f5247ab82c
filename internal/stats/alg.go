// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// atEach returns f(x) for each x in xs.
func atEach(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}

// bisect searches [low, high] for an x with |f(x)| <= tolerance.
// f(low) and f(high) should bracket a root. If they do not, or if f
// jumps over zero without reaching it, bisect returns the last
// midpoint it tried and false.
func bisect(f func(float64) float64, low, high, tolerance float64) (float64, bool) {
	near := func(y float64) bool { return math.Abs(y) <= tolerance }

	flow, fhigh := f(low), f(high)
	switch {
	case near(flow):
		return low, true
	case near(fhigh):
		return high, true
	case math.Signbit(flow) == math.Signbit(fhigh):
		return (low + high) / 2, false
	}
	for {
		mid := low + (high-low)/2
		fmid := f(mid)
		if near(fmid) {
			return mid, true
		}
		if mid == low || mid == high {
			// Interval no longer shrinks.
			return mid, false
		}
		if math.Signbit(fmid) == math.Signbit(flow) {
			low, flow = mid, fmid
		} else {
			high = mid
		}
	}
}

// series sums f(0) + f(1) + ... until adding a term stops changing
// the total. The result is subject to round-off error.
func series(f func(float64) float64) float64 {
	sum, prev := 0.0, math.NaN()
	for n := 0.0; sum != prev && !math.IsNaN(sum); n++ {
		prev = sum
		sum += f(n)
	}
	return sum
}
