// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// clamp limits a normalized position to [0, 1].
func clamp(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// autoScale returns the finest tick level m at which count(m) <= n,
// searching outward from guess. count must not increase as the level
// grows.
func autoScale(n int, count func(level int) int, guess int) int {
	m := guess
	for count(m) > n {
		m++
	}
	for count(m-1) <= n {
		m--
	}
	return m
}
