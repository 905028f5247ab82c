// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Conventional Tukey fence multipliers.
const (
	MildFence    = 1.5
	ExtremeFence = 3.0
)

// Default outlier thresholds.
const (
	ModifiedZThreshold = 3.5
	ZThreshold         = 3.0
)

// modifiedZConst is Φ⁻¹(0.75), the factor that makes
// 0.6745·(x-median)/MAD comparable to a standard normal score.
const modifiedZConst = 0.6745

// MADScale selects the scale factor applied by MAD.
type MADScale int

const (
	// NormalScale multiplies the raw MAD by 1.4826 (= 1/0.6745),
	// making it a consistent estimator of the standard deviation of
	// normally distributed data.
	NormalScale MADScale = iota

	// RawScale returns the median of absolute deviations unscaled.
	RawScale
)

func (m MADScale) factor() (float64, bool) {
	switch m {
	case NormalScale:
		return 1.4826, true
	case RawScale:
		return 1, true
	}
	return nan, false
}

func (m MADScale) String() string {
	switch m {
	case NormalScale:
		return "normal"
	case RawScale:
		return "raw"
	}
	return fmt.Sprintf("MADScale(%d)", int(m))
}

// MAD returns the median absolute deviation of the observations of xs
// from their median, multiplied by the factor of scale. If xs has no
// observations, MAD returns NaN. An unknown scale is an error wrapping
// ErrInvalidParameter.
func MAD(xs []float64, scale MADScale) (float64, error) {
	f, ok := scale.factor()
	if !ok {
		return nan, fmt.Errorf("%w: unknown MAD scale %v", ErrInvalidParameter, scale)
	}
	ys := observed(xs)
	if len(ys) == 0 {
		return nan, nil
	}
	return rawMAD(ys, Median(ys)) * f, nil
}

// rawMAD returns the unscaled median absolute deviation of the
// observations ys around m.
func rawMAD(ys []float64, m float64) float64 {
	devs := make([]float64, len(ys))
	for i, y := range ys {
		devs[i] = math.Abs(y - m)
	}
	return Median(devs)
}

// TrimmedMean returns the mean of the observations of xs after
// removing the ⌊proportion·n⌋ smallest and the ⌊proportion·n⌋ largest
// of them.
//
// proportion must be in [0, 0.5). If xs has no observations the
// result is NaN.
func TrimmedMean(xs []float64, proportion float64) (float64, error) {
	if !(proportion >= 0 && proportion < 0.5) {
		return nan, fmt.Errorf("%w: trim proportion %g not in [0, 0.5)", ErrInvalidParameter, proportion)
	}
	ys := sortedObserved(xs)
	if len(ys) == 0 {
		return nan, nil
	}
	cut := int(proportion * float64(len(ys)))
	return stat.Mean(ys[cut:len(ys)-cut], nil), nil
}

// Fences is a closed interval of non-outlying values.
type Fences struct {
	Lower, Upper float64
}

// Contains reports whether x lies within f. NaN and infinite values
// are never contained in f; neither is anything when f is undefined.
func (f Fences) Contains(x float64) bool {
	return isObservation(x) && f.Lower <= x && x <= f.Upper
}

// Outside reports whether x is an observation strictly outside f.
func (f Fences) Outside(x float64) bool {
	if !isObservation(x) || math.IsNaN(f.Lower) || math.IsNaN(f.Upper) {
		return false
	}
	return x < f.Lower || x > f.Upper
}

func checkNonNegative(name string, v float64) error {
	if !(v >= 0) || math.IsInf(v, 1) {
		return fmt.Errorf("%w: %s %g must be a finite non-negative number", ErrInvalidParameter, name, v)
	}
	return nil
}

// TukeyFences returns Tukey's fences for xs: Q1 - k·IQR and
// Q3 + k·IQR, with quartiles computed as by Sample.Percentile.
//
// k must be non-negative; MildFence and ExtremeFence are the
// conventional choices. If xs has no observations both fences are
// NaN.
func TukeyFences(xs []float64, k float64) (Fences, error) {
	if err := checkNonNegative("fence multiplier", k); err != nil {
		return Fences{nan, nan}, err
	}
	return tukeyFences(Sample{Xs: xs}, k), nil
}

func tukeyFences(s Sample, k float64) Fences {
	q1, q3 := s.Quartiles()
	iqr := q3 - q1
	return Fences{Lower: q1 - k*iqr, Upper: q3 + k*iqr}
}

// TukeyOutliers returns a mask, aligned with xs, that is true at each
// observation strictly outside TukeyFences(xs, k).
func TukeyOutliers(xs []float64, k float64) ([]bool, error) {
	f, err := TukeyFences(xs, k)
	if err != nil {
		return nil, err
	}
	mask := make([]bool, len(xs))
	for i, x := range xs {
		mask[i] = f.Outside(x)
	}
	return mask, nil
}

// ModifiedZScores returns the modified z-score 0.6745·(x-median)/MAD of
// every entry of xs, where MAD is the unscaled median absolute
// deviation. Entries that are not observations score NaN. If the MAD
// is zero every observation scores zero.
func ModifiedZScores(xs []float64) []float64 {
	scores := make([]float64, len(xs))
	ys := observed(xs)
	var m, mad float64
	if len(ys) > 0 {
		m = Median(ys)
		mad = rawMAD(ys, m)
	}
	for i, x := range xs {
		switch {
		case !isObservation(x):
			scores[i] = nan
		case mad == 0:
			scores[i] = 0
		default:
			scores[i] = modifiedZConst * (x - m) / mad
		}
	}
	return scores
}

// ModifiedZOutliers returns a mask, aligned with xs, that is true at
// each observation whose modified z-score exceeds threshold in
// absolute value. A sample without spread has no outliers.
func ModifiedZOutliers(xs []float64, threshold float64) ([]bool, error) {
	if err := checkNonNegative("threshold", threshold); err != nil {
		return nil, err
	}
	return scoreMask(ModifiedZScores(xs), threshold), nil
}

// ZScores returns the standard score (x-mean)/sd of every entry of xs,
// using the sample standard deviation of the observations. Entries
// that are not observations score NaN. If the standard deviation is
// zero or undefined every observation scores zero.
//
// Unlike ModifiedZScores, both estimates are themselves sensitive to
// the outliers one is trying to detect.
func ZScores(xs []float64) []float64 {
	scores := make([]float64, len(xs))
	ys := observed(xs)
	mean, sd := nan, nan
	if len(ys) >= 2 {
		mean, sd = stat.MeanStdDev(ys, nil)
	}
	for i, x := range xs {
		switch {
		case !isObservation(x):
			scores[i] = nan
		case !(sd > 0):
			scores[i] = 0
		default:
			scores[i] = (x - mean) / sd
		}
	}
	return scores
}

// ZScoreOutliers returns a mask, aligned with xs, that is true at each
// observation whose z-score exceeds threshold in absolute value.
func ZScoreOutliers(xs []float64, threshold float64) ([]bool, error) {
	if err := checkNonNegative("threshold", threshold); err != nil {
		return nil, err
	}
	return scoreMask(ZScores(xs), threshold), nil
}

// scoreMask flags every score whose magnitude exceeds threshold. NaN
// scores compare false.
func scoreMask(scores []float64, threshold float64) []bool {
	mask := make([]bool, len(scores))
	for i, z := range scores {
		mask[i] = math.Abs(z) > threshold
	}
	return mask
}

// Count returns the number of true entries in mask.
func Count(mask []bool) int {
	n := 0
	for _, b := range mask {
		if b {
			n++
		}
	}
	return n
}
