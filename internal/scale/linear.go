// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Linear is a Quantitative scale mapping [Min, Max] linearly onto
// [0, 1]. Ticks are placed at multiples of 1, 2 or 5 times a power of
// ten.
type Linear struct {
	Min, Max float64

	// Clamp, if true, clamps mapped values to [0, 1].
	Clamp bool
}

var _ Quantitative = (*Linear)(nil)

func (s Linear) Map(x float64) float64 {
	if s.Min == s.Max {
		return 0.5
	}
	y := (x - s.Min) / (s.Max - s.Min)
	if s.Clamp {
		y = clamp(y)
	}
	return y
}

func (s Linear) Unmap(y float64) float64 {
	return s.Min + y*(s.Max-s.Min)
}

func (s *Linear) SetClamp(clamp bool) {
	s.Clamp = clamp
}

// step returns the tick spacing at level: levels 0, 1, 2 are spacings
// 1, 2, 5, levels 3, 4, 5 are 10, 20, 50, and so on.
func step(level int) float64 {
	e := int(math.Floor(float64(level) / 3))
	return [3]float64{1, 2, 5}[level-3*e] * math.Pow10(e)
}

// count returns the number of ticks at level within [s.Min, s.Max].
func (s Linear) count(level int) int {
	st := step(level)
	return int(math.Floor(s.Max/st)-math.Ceil(s.Min/st)) + 1
}

func (s Linear) valid(n int) bool {
	return n > 0 && s.Min < s.Max && !math.IsInf(s.Min, 0) && !math.IsInf(s.Max, 0)
}

func (s Linear) level(n int) int {
	guess := 3 * int(math.Floor(math.Log10((s.Max-s.Min)/float64(n))))
	return autoScale(n, s.count, guess)
}

func (s Linear) ticksAt(level int) []float64 {
	st := step(level)
	var ticks []float64
	for i := math.Ceil(s.Min / st); i*st <= s.Max; i++ {
		ticks = append(ticks, i*st)
	}
	return ticks
}

func (s Linear) Ticks(n int) (major, minor []float64) {
	if !s.valid(n) {
		return nil, nil
	}
	level := s.level(n)
	return s.ticksAt(level), s.ticksAt(level - 1)
}

func (s *Linear) Nice(n int) {
	for i := 0; i < 4 && s.valid(n); i++ {
		st := step(s.level(n))
		lo, hi := math.Floor(s.Min/st)*st, math.Ceil(s.Max/st)*st
		if lo == s.Min && hi == s.Max {
			return
		}
		s.Min, s.Max = lo, hi
	}
}
