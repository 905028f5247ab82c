// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

func TestIQR(t *testing.T) {
	tests := []struct {
		xs   []float64
		want float64
	}{
		{[]float64{1, 2, 3, 4, 5, 100}, 2.5},
		{[]float64{1, 2, 3, 4, 5, 100, Missing}, 2.5},
		{[]float64{Missing, 1, 2, 3, 4, 5, 100, posInf}, 2.5},
		{[]float64{7}, 0},
		{[]float64{5, 5, 5}, 0},
		{[]float64{}, nan},
		{[]float64{Missing, Missing}, nan},
	}
	for _, tt := range tests {
		if got := IQR(tt.xs); !aeqNaN(tt.want, got) {
			t.Errorf("IQR(%v) = %v, want %v", tt.xs, got, tt.want)
		}
	}
}

func TestQuartiles(t *testing.T) {
	q1, q3 := Sample{Xs: []float64{1, 2, 3, 4, 5, 100}}.Quartiles()
	if !aeq(2.25, q1) || !aeq(4.75, q3) {
		t.Errorf("Quartiles = (%g, %g), want (2.25, 4.75)", q1, q3)
	}
}

func TestMAD(t *testing.T) {
	tests := []struct {
		xs    []float64
		scale MADScale
		want  float64
	}{
		{[]float64{1, 2, 3, 4, 100}, RawScale, 1},
		{[]float64{1, 2, 3, 4, 100}, NormalScale, 1.4826},
		{[]float64{1, Missing, 2, 3, 4, 100}, RawScale, 1},
		{[]float64{1, 1, 2, 2, 4, 6, 9}, RawScale, 1},
		{[]float64{5, 5, 5, 5}, NormalScale, 0},
		{nil, RawScale, nan},
		{[]float64{Missing}, NormalScale, nan},
	}
	for _, tt := range tests {
		got, err := MAD(tt.xs, tt.scale)
		if err != nil {
			t.Errorf("MAD(%v, %v) failed: %v", tt.xs, tt.scale, err)
			continue
		}
		if !aeqNaN(tt.want, got) {
			t.Errorf("MAD(%v, %v) = %v, want %v", tt.xs, tt.scale, got, tt.want)
		}
	}

	if got, err := MAD([]float64{1, 2, 3}, MADScale(7)); !errors.Is(err, ErrInvalidParameter) || !math.IsNaN(got) {
		t.Errorf("MAD with unknown scale = %v, %v; want NaN, %v", got, err, ErrInvalidParameter)
	}

	var def MADScale
	if def != NormalScale {
		t.Errorf("zero MADScale is %v, want %v", def, NormalScale)
	}
}

func TestTrimmedMean(t *testing.T) {
	tests := []struct {
		xs   []float64
		p    float64
		want float64
	}{
		{[]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}, 0.1, 5.5},
		{[]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}, 0, 14.5},
		{[]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}, 0.25, 5.5},
		{[]float64{100, Missing, 1, 2, 3}, 0.25, 2.5},
		{[]float64{Missing}, 0.1, nan},
		{[]float64{4}, 0.49, 4},
	}
	for _, tt := range tests {
		got, err := TrimmedMean(tt.xs, tt.p)
		if err != nil {
			t.Errorf("TrimmedMean(%v, %v) failed: %v", tt.xs, tt.p, err)
			continue
		}
		if !aeqNaN(tt.want, got) {
			t.Errorf("TrimmedMean(%v, %v) = %v, want %v", tt.xs, tt.p, got, tt.want)
		}
	}
}

func TestTrimmedMeanInvalid(t *testing.T) {
	for _, p := range []float64{-0.1, 0.5, 0.7, nan, posInf} {
		if _, err := TrimmedMean([]float64{1, 2, 3}, p); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("TrimmedMean with proportion %v: got error %v, want %v", p, err, ErrInvalidParameter)
		}
	}
}

func TestTukeyFences(t *testing.T) {
	f, err := TukeyFences([]float64{1, 2, 3, 4, 5, 100}, MildFence)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(-1.5, f.Lower) || !aeq(8.5, f.Upper) {
		t.Errorf("TukeyFences = %+v, want {-1.5 8.5}", f)
	}

	f, err = TukeyFences([]float64{1, 2, 3, 4, 5, 100}, ExtremeFence)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(-5.25, f.Lower) || !aeq(12.25, f.Upper) {
		t.Errorf("TukeyFences(k=3) = %+v, want {-5.25 12.25}", f)
	}

	f, err = TukeyFences([]float64{Missing}, MildFence)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(f.Lower) || !math.IsNaN(f.Upper) {
		t.Errorf("TukeyFences of empty sample = %+v, want NaN fences", f)
	}
}

func TestTukeyFencesOrdered(t *testing.T) {
	samples := [][]float64{
		{1, 2, 3, 4, 5, 100},
		{-3, 7, 7, 7, 12.5, Missing, 0},
		{42},
		{0.1, 0.2, 0.15, 9, -9},
	}
	for _, xs := range samples {
		q1, q3 := Sample{Xs: xs}.Quartiles()
		for _, k := range []float64{0, 0.5, MildFence, ExtremeFence} {
			f, err := TukeyFences(xs, k)
			if err != nil {
				t.Fatal(err)
			}
			if !(f.Lower <= q1 && q1 <= q3 && q3 <= f.Upper) {
				t.Errorf("TukeyFences(%v, %v) = %+v not ordered around (%g, %g)", xs, k, f, q1, q3)
			}
		}
	}
}

func TestTukeyFencesInvalid(t *testing.T) {
	for _, k := range []float64{-1, nan, posInf} {
		if _, err := TukeyFences([]float64{1, 2}, k); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("TukeyFences with k=%v: got error %v, want %v", k, err, ErrInvalidParameter)
		}
		if _, err := TukeyOutliers([]float64{1, 2}, k); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("TukeyOutliers with k=%v: got error %v, want %v", k, err, ErrInvalidParameter)
		}
	}
}

func TestTukeyOutliers(t *testing.T) {
	tests := []struct {
		xs   []float64
		want []bool
	}{
		{[]float64{1, 2, 3, 4, 5, 100}, []bool{false, false, false, false, false, true}},
		{[]float64{1, 2, Missing, 3, 4, 5, 100, posInf, negInf}, []bool{false, false, false, false, false, false, true, false, false}},
		{[]float64{Missing, Missing, Missing}, []bool{false, false, false}},
		{[]float64{}, []bool{}},
	}
	for _, tt := range tests {
		got, err := TukeyOutliers(tt.xs, MildFence)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("TukeyOutliers(%v) mismatch (-want +got):\n%s", tt.xs, diff)
		}
	}
}

func TestModifiedZScores(t *testing.T) {
	// median 3, raw MAD 1
	scores := ModifiedZScores([]float64{1, 2, 3, 4, 100, Missing})
	want := []float64{-1.349, -0.6745, 0, 0.6745, 65.4265, nan}
	for i := range want {
		if !aeqNaN(want[i], scores[i]) && math.Abs(want[i]-scores[i]) > 1e-12 {
			t.Errorf("score %d = %v, want %v", i, scores[i], want[i])
		}
	}
}

func TestModifiedZOutliers(t *testing.T) {
	got, err := ModifiedZOutliers([]float64{1, 2, 3, 4, 100, Missing, posInf}, ModifiedZThreshold)
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{false, false, false, false, true, false, false}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ModifiedZOutliers mismatch (-want +got):\n%s", diff)
	}
}

func TestModifiedZOutliersConstant(t *testing.T) {
	xs := []float64{5, 5, Missing, 5, 5}
	for _, threshold := range []float64{0, 1, ModifiedZThreshold, 100} {
		got, err := ModifiedZOutliers(xs, threshold)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(make([]bool, len(xs)), got); diff != "" {
			t.Errorf("ModifiedZOutliers(threshold=%v) of constant sample (-want +got):\n%s", threshold, diff)
		}
	}
}

func TestZScoreOutliers(t *testing.T) {
	xs := []float64{10, 11, 9, 10, 10, 11, 9, 10, 10, 11, 9, 10, 10, 11, 9, 10, 10, 11, 9, 50, Missing}
	got, err := ZScoreOutliers(xs, ZThreshold)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]bool, len(xs))
	want[19] = true
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ZScoreOutliers mismatch (-want +got):\n%s", diff)
	}

	// No spread, and too few observations for a standard deviation.
	for _, xs := range [][]float64{{3, 3, 3}, {3, Missing}} {
		got, err := ZScoreOutliers(xs, 0)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(make([]bool, len(xs)), got); diff != "" {
			t.Errorf("ZScoreOutliers(%v) (-want +got):\n%s", xs, diff)
		}
	}
}

func TestZScores(t *testing.T) {
	scores := ZScores([]float64{2, 4, 4, 4, 5, 5, 7, 9, Missing})
	sd := math.Sqrt(32.0 / 7)
	if e, g := 4/sd, scores[7]; !aeq(e, g) {
		t.Errorf("score of 9: expected %g, got %g", e, g)
	}
	if !math.IsNaN(scores[8]) {
		t.Errorf("score of missing entry: expected NaN, got %g", scores[8])
	}
}

func TestThresholdInvalid(t *testing.T) {
	for _, threshold := range []float64{-0.5, nan} {
		if _, err := ModifiedZOutliers([]float64{1}, threshold); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ModifiedZOutliers threshold %v: got %v", threshold, err)
		}
		if _, err := ZScoreOutliers([]float64{1}, threshold); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ZScoreOutliers threshold %v: got %v", threshold, err)
		}
	}
}

func TestMasksAligned(t *testing.T) {
	samples := [][]float64{
		{},
		{Missing},
		{1, 2, 3, 4, 5, 100},
		{posInf, negInf, Missing, 0, 0, 1e9},
		{-4, 8, 15, 16, 23, 42, Missing, -100},
	}
	masks := map[string]func([]float64) ([]bool, error){
		"tukey": func(xs []float64) ([]bool, error) { return TukeyOutliers(xs, MildFence) },
		"modz":  func(xs []float64) ([]bool, error) { return ModifiedZOutliers(xs, ModifiedZThreshold) },
		"z":     func(xs []float64) ([]bool, error) { return ZScoreOutliers(xs, ZThreshold) },
	}
	for name, f := range masks {
		for _, xs := range samples {
			mask, err := f(xs)
			if err != nil {
				t.Fatal(err)
			}
			if len(mask) != len(xs) {
				t.Errorf("%s(%v): mask length %d", name, xs, len(mask))
				continue
			}
			for i, x := range xs {
				if mask[i] && !isObservation(x) {
					t.Errorf("%s(%v): flagged non-observation at %d", name, xs, i)
				}
			}
			again, _ := f(xs)
			if diff := cmp.Diff(mask, again); diff != "" {
				t.Errorf("%s(%v) not repeatable:\n%s", name, xs, diff)
			}
		}
	}
}

func TestCount(t *testing.T) {
	if e, g := 2, Count([]bool{true, false, true}); e != g {
		t.Errorf("Count: expected %d, got %d", e, g)
	}
}
