// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ECDF returns the empirical cumulative distribution function of the
// observations of xs, sampled at the data points. values holds the
// observations in ascending order and probs[i] = (i+1)/n, so the
// function is right-continuous: at each value it already includes that
// point.
//
// Both slices are empty if xs has no observations.
func ECDF(xs []float64) (values, probs []float64) {
	values = sortedObserved(xs)
	probs = make([]float64, len(values))
	n := float64(len(values))
	for i := range values {
		probs[i] = float64(i+1) / n
	}
	return values, probs
}

// MaxBins is the largest bin count FDBins and Histogram produce.
const MaxBins = 1000

// FDBins returns the number of histogram bins for xs chosen by the
// Freedman–Diaconis rule, a bin width of 2·IQR/n^(1/3), limited to
// MaxBins. It falls back to 10 bins when the rule is undefined: fewer
// than two observations, no interquartile spread, or a range that fits
// in a single bin.
func FDBins(xs []float64) int {
	const fallback = 10

	ys := sortedObserved(xs)
	n := len(ys)
	if n < 2 {
		return fallback
	}
	iqr := percentile(ys, 0.75) - percentile(ys, 0.25)
	if iqr <= 0 {
		return fallback
	}
	h := 2 * iqr / math.Cbrt(float64(n))
	b := math.Ceil((ys[n-1] - ys[0]) / h)
	switch {
	case b >= MaxBins:
		return MaxBins
	case b <= 1:
		return fallback
	}
	return int(b)
}

// Hist is a histogram of a sample with equal-width bins.
type Hist struct {
	// Edges holds the len(Counts)+1 bin boundaries in ascending
	// order. Bin i covers [Edges[i], Edges[i+1]); the last bin also
	// includes its upper edge.
	Edges []float64

	// Counts holds the number of observations in each bin.
	Counts []float64

	// N is the total number of observations.
	N int
}

// Histogram returns a histogram of the observations of xs with bins
// equal-width bins spanning their range. If bins < 1, FDBins(xs) is
// used; bins above MaxBins are reduced to MaxBins. The histogram is
// empty if xs has no observations.
func Histogram(xs []float64, bins int) Hist {
	ys := sortedObserved(xs)
	if len(ys) == 0 {
		return Hist{}
	}
	if bins < 1 {
		bins = FDBins(ys)
	}
	bins = min(bins, MaxBins)
	lo, hi := ys[0], ys[len(ys)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges := Linspace(lo, hi, bins+1)
	// stat.Histogram treats the last divider as exclusive.
	edges[bins] = math.Nextafter(hi, inf)
	counts := stat.Histogram(nil, edges, ys, nil)
	edges[bins] = hi
	return Hist{Edges: edges, Counts: counts, N: len(ys)}
}

// Centers returns the midpoint of each bin.
func (h Hist) Centers() []float64 {
	cs := make([]float64, len(h.Counts))
	for i := range cs {
		cs[i] = (h.Edges[i] + h.Edges[i+1]) / 2
	}
	return cs
}

// Density returns the count of each bin divided by N times the bin
// width, so that the histogram integrates to 1.
func (h Hist) Density() []float64 {
	ds := make([]float64, len(h.Counts))
	for i, c := range h.Counts {
		w := h.Edges[i+1] - h.Edges[i]
		ds[i] = c / (float64(h.N) * w)
	}
	return ds
}
