// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// KDE represents options for constructing a kernel density estimate.
//
// Kernel density estimation is a method for constructing an estimate
// ƒ̂(x) of a unknown distribution ƒ(x) given a sample from that
// distribution. It is similar to a histogram, except that it is a
// smooth probability estimate and does not require choosing a bin
// size and discretizing the data. The shape of the result depends
// deeply on the selected bandwidth, so exploratory plots usually draw
// several estimates with different Adjust factors.
//
// The default (zero) value of KDE is a reasonable default
// configuration.
type KDE struct {
	// Kernel is the kernel to use for the KDE.
	Kernel Kernel

	// Bandwidth is the bandwidth estimator to use for the KDE.
	//
	// If this is nil, Scott is used.
	Bandwidth BandwidthEstimator

	// Adjust multiplies the estimated bandwidth. Values below 1
	// follow the data more closely, values above 1 smooth more. If
	// this is 0, no adjustment is made.
	Adjust float64

	// BoundaryMethod is the boundary correction method to use for
	// the KDE.
	BoundaryMethod BoundaryMethod

	// [BoundaryMin, BoundaryMax) specify a bounded support for
	// the KDE. This is ignored if BoundaryMethod is
	// boundaryNone.
	//
	// To specify a half-bounded support, set Min to math.Inf(-1)
	// or Max to math.Inf(1).
	//
	// If these are both 0 (their default values), no boundary
	// correction is performed.
	BoundaryMin float64
	BoundaryMax float64
}

type BandwidthEstimator interface {
	// Bandwidth returns the bandwidth estimate for a sample.
	Bandwidth(s Sample) float64
}

// Silverman is a bandwidth estimator implementing Silverman's Rule of
// Thumb. It's fast, but not very robust to outliers.
//
// Silverman, B. W. (1986) Density Estimation.
var Silverman silverman

type silverman struct{}

func (silverman) Bandwidth(s Sample) float64 {
	return 1.06 * s.StdDev() * math.Pow(float64(s.N()), -1.0/5)
}

// Scott is a bandwidth estimator implementing Scott's Rule. This is
// generally robust to outliers: it chooses the minimum between the
// sample's standard deviation and an robust estimator of a Gaussian
// distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
var Scott scott

type scott struct{}

func (scott) Bandwidth(s Sample) float64 {
	hScale := 1.06 * math.Pow(float64(s.N()), -1.0/5)
	stdDev, robust := s.StdDev(), s.IQR()/1.349
	if stdDev < robust || robust == 0 {
		return hScale * stdDev
	}
	return hScale * robust
}

// FixedBandwidth is a bandwidth estimator that simply returns its
// value.
type FixedBandwidth float64

func (bw FixedBandwidth) Bandwidth(s Sample) float64 {
	return float64(bw)
}

// Kernel represents a kernel to use for a KDE.
type Kernel int

const (
	GaussianKernel Kernel = iota
)

// BoundaryMethod represents a boundary correction method for
// constructing a KDE with bounded support.
type BoundaryMethod int

const (
	// BoundaryReflect reflects the density estimate at the
	// boundaries. For example, for a KDE with support [0, inf),
	// this is equivalent to ƒ̂ᵣ(x)=ƒ̂(x)+ƒ̂(-x) for x>=0. This is a
	// simple and fast technique, but enforces that ƒ̂ᵣ'(0)=0, so
	// it may not be applicable to all distributions.
	BoundaryReflect BoundaryMethod = iota

	// boundaryNone represents no boundary correction.
	//
	// This is used internally when the bounds are -/+inf.
	boundaryNone
)

// FromSample returns the kernel density estimate for the observations
// of s. It returns nil if s has no observations or the bandwidth is
// not a positive number, as for a constant sample.
func (k KDE) FromSample(s Sample) Dist {
	xs := s.Observations()
	if len(xs) == 0 {
		return nil
	}

	bw := k.Bandwidth
	if bw == nil {
		bw = Scott
	}
	h := bw.Bandwidth(Sample{Xs: xs})
	if k.Adjust != 0 {
		h *= k.Adjust
	}
	if !(h > 0) || math.IsInf(h, 0) {
		return nil
	}

	var kernel Dist
	switch k.Kernel {
	default:
		panic(fmt.Sprint("unknown kernel ", k.Kernel))
	case GaussianKernel:
		kernel = Normal{0, h}
	}

	bm := k.BoundaryMethod
	min, max := k.BoundaryMin, k.BoundaryMax
	if min == 0 && max == 0 {
		min, max = math.Inf(-1), math.Inf(1)
	}
	if math.IsInf(min, -1) && math.IsInf(max, 1) {
		bm = boundaryNone
	}

	return &kdeDist{kernel, xs, h, bm, min, max}
}

type kdeDist struct {
	kernel   Dist
	xs       []float64
	h        float64 // Bandwidth
	bm       BoundaryMethod
	min, max float64 // Support bounds
}

// normalizedXs returns x - kde.xs. Evaluating kernels shifted by
// kde.xs all at x is equivalent to evaluating one unshifted kernel at
// x - kde.xs.
func (kde *kdeDist) normalizedXs(x float64) []float64 {
	txs := make([]float64, len(kde.xs))
	for i, xi := range kde.xs {
		txs[i] = x - xi
	}
	return txs
}

func (kde *kdeDist) mean(ys []float64) float64 {
	sum := 0.0
	for _, y := range ys {
		sum += y
	}
	return sum / float64(len(ys))
}

func (kde *kdeDist) PDF(x float64) float64 {
	if x < kde.min || x >= kde.max {
		return 0
	}

	y := func(x float64) float64 {
		return kde.mean(kde.kernel.PDFEach(kde.normalizedXs(x)))
	}
	switch kde.bm {
	default:
		panic("unknown boundary correction method")
	case boundaryNone:
		return y(x)
	case BoundaryReflect:
		if math.IsInf(kde.max, 1) {
			return y(x) + y(2*kde.min-x)
		} else if math.IsInf(kde.min, -1) {
			return y(x) + y(2*kde.max-x)
		}
		d := 2 * (kde.max - kde.min)
		w := 2 * (x - kde.min)
		return series(func(n float64) float64 {
			// Points >= x
			return y(x+n*d) + y(x+n*d-w)
		}) + series(func(n float64) float64 {
			// Points < x
			return y(x-(n+1)*d+w) + y(x-(n+1)*d)
		})
	}
}

func (kde *kdeDist) PDFEach(xs []float64) []float64 {
	return atEach(kde.PDF, xs)
}

func (kde *kdeDist) CDF(x float64) float64 {
	if x < kde.min {
		return 0
	} else if x >= kde.max {
		return 1
	}

	y := func(x float64) float64 {
		return kde.mean(kde.kernel.CDFEach(kde.normalizedXs(x)))
	}
	switch kde.bm {
	default:
		panic("unknown boundary correction method")
	case boundaryNone:
		return y(x)
	case BoundaryReflect:
		if math.IsInf(kde.max, 1) {
			return y(x) - y(2*kde.min-x)
		} else if math.IsInf(kde.min, -1) {
			return y(x) + (1 - y(2*kde.max-x))
		}
		d := 2 * (kde.max - kde.min)
		w := 2 * (x - kde.min)
		return series(func(n float64) float64 {
			// Windows >= x-w
			return y(x+n*d) - y(x+n*d-w)
		}) + series(func(n float64) float64 {
			// Windows < x-w
			return y(x-(n+1)*d) - y(x-(n+1)*d-w)
		})
	}
}

func (kde *kdeDist) CDFEach(xs []float64) []float64 {
	return atEach(kde.CDF, xs)
}

// Bounds returns the range holding 99% of the estimate's weight,
// widened by 20% and limited to the support.
func (kde *kdeDist) Bounds() (low float64, high float64) {
	lowX, highX := Bounds(kde.xs)
	if lowX == highX {
		lowX -= 1
		highX += 1
	}

	// bisect requires that the root be bracketed, so expand the
	// range first if necessary.
	const (
		lowY      = 0.005
		highY     = 0.995
		tolerance = 0.001
	)
	for kde.CDF(lowX) > lowY {
		lowX -= highX - lowX
	}
	for kde.CDF(highX) < highY {
		highX += highX - lowX
	}
	low, _ = bisect(func(x float64) float64 { return kde.CDF(x) - lowY }, lowX, highX, tolerance)
	high, _ = bisect(func(x float64) float64 { return kde.CDF(x) - highY }, lowX, highX, tolerance)

	width := high - low
	low, high = low-0.1*width, high+0.1*width

	return math.Max(low, kde.min), math.Min(high, kde.max)
}
