// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a sample of observations. Entries that are NaN or
// infinite are not observations and are ignored by every method.
//
// The zero value is an empty sample.
type Sample struct {
	// Xs is the slice of sample values, possibly with missing
	// entries. It is never modified.
	Xs []float64
}

// observed returns the finite entries of xs in a fresh slice.
func observed(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if isObservation(x) {
			out = append(out, x)
		}
	}
	return out
}

// sortedObserved returns the finite entries of xs in ascending order.
func sortedObserved(xs []float64) []float64 {
	out := observed(xs)
	sort.Float64s(out)
	return out
}

func isObservation(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// N returns the number of observations in s.
func (s Sample) N() int {
	n := 0
	for _, x := range s.Xs {
		if isObservation(x) {
			n++
		}
	}
	return n
}

// Observations returns the observations of s in input order.
func (s Sample) Observations() []float64 {
	return observed(s.Xs)
}

// Bounds returns the minimum and maximum observations of s. If s has
// no observations, both are NaN.
func (s Sample) Bounds() (min float64, max float64) {
	xs := observed(s.Xs)
	if len(xs) == 0 {
		return nan, nan
	}
	return floats.Min(xs), floats.Max(xs)
}

// Bounds returns the minimum and maximum observations of xs.
func Bounds(xs []float64) (min float64, max float64) {
	return Sample{Xs: xs}.Bounds()
}

// Sum returns the sum of the observations of s.
func (s Sample) Sum() float64 {
	return floats.Sum(observed(s.Xs))
}

// Mean returns the arithmetic mean of the observations of s, or NaN
// if there are none.
func (s Sample) Mean() float64 {
	xs := observed(s.Xs)
	if len(xs) == 0 {
		return nan
	}
	return stat.Mean(xs, nil)
}

// Mean returns the arithmetic mean of the observations of xs.
func Mean(xs []float64) float64 {
	return Sample{Xs: xs}.Mean()
}

// StdDev returns the sample standard deviation (n-1 denominator) of
// the observations of s, or NaN if there are fewer than two.
func (s Sample) StdDev() float64 {
	xs := observed(s.Xs)
	if len(xs) < 2 {
		return nan
	}
	return stat.StdDev(xs, nil)
}

// StdDev returns the sample standard deviation of the observations of
// xs.
func StdDev(xs []float64) float64 {
	return Sample{Xs: xs}.StdDev()
}

// Percentile returns the pth percentile of the observations of s,
// linearly interpolating between the closest ranks: with sorted
// observations y and h = (n-1)p, the result is
// y[⌊h⌋] + (h-⌊h⌋)(y[⌊h⌋+1]-y[⌊h⌋]).
//
// p is clamped to [0, 1]. If s has no observations, the result is
// NaN.
func (s Sample) Percentile(p float64) float64 {
	return percentile(sortedObserved(s.Xs), p)
}

// percentile is Percentile over observations that are already sorted.
func percentile(ys []float64, p float64) float64 {
	if len(ys) == 0 || math.IsNaN(p) {
		return nan
	}
	if p <= 0 {
		return ys[0]
	} else if p >= 1 {
		return ys[len(ys)-1]
	}
	h := float64(len(ys)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(ys) {
		return ys[i]
	}
	return ys[i] + (h-lo)*(ys[i+1]-ys[i])
}

// Quartiles returns the 25th and 75th percentiles of s.
func (s Sample) Quartiles() (q1, q3 float64) {
	ys := sortedObserved(s.Xs)
	return percentile(ys, 0.25), percentile(ys, 0.75)
}

// Median returns the median of the observations of s, or NaN if there
// are none.
func (s Sample) Median() float64 {
	return s.Percentile(0.5)
}

// Median returns the median of the observations of xs.
func Median(xs []float64) float64 {
	return Sample{Xs: xs}.Median()
}

// IQR returns the interquartile range of s, Q3 - Q1, or NaN if s has
// no observations.
func (s Sample) IQR() float64 {
	q1, q3 := s.Quartiles()
	return q3 - q1
}

// IQR returns the interquartile range of the observations of xs.
func IQR(xs []float64) float64 {
	return Sample{Xs: xs}.IQR()
}
