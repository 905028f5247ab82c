// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCoerce(t *testing.T) {
	two := 2.0
	tests := []struct {
		v    any
		want []float64
	}{
		{[]float64{1, 2}, []float64{1, 2}},
		{[]int{1, -2}, []float64{1, -2}},
		{[]uint8{3}, []float64{3}},
		{[3]float32{0.5, 1, 2}, []float64{0.5, 1, 2}},
		{[]string{"1.5", " 2 ", "", "NA", "nan", "None"}, []float64{1.5, 2, nan, nan, nan, nan}},
		{[]*float64{&two, nil}, []float64{2, nan}},
		{[]any{1, "3", nil, 4.5}, []float64{1, 3, nan, 4.5}},
	}
	for _, tt := range tests {
		got, err := Coerce(tt.v)
		if err != nil {
			t.Errorf("Coerce(%v) failed: %v", tt.v, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateNaNs()); diff != "" {
			t.Errorf("Coerce(%v) mismatch (-want +got):\n%s", tt.v, diff)
		}
	}
}

func TestCoerceMismatch(t *testing.T) {
	tests := []struct {
		v   any
		len int
	}{
		{[]string{"1", "cash", "3"}, 3},
		{[]any{1.0, struct{}{}}, 2},
		{42, 0},
		{"12", 0},
	}
	for _, tt := range tests {
		xs, err := Coerce(tt.v)
		if !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("Coerce(%v): got error %v, want %v", tt.v, err, ErrTypeMismatch)
		}
		if len(xs) != tt.len {
			t.Errorf("Coerce(%v): got %d values, want %d", tt.v, len(xs), tt.len)
		}
	}
}

func TestIsMissingToken(t *testing.T) {
	for _, s := range []string{"", " ", "NA", "n/a", "NaN", "NULL", "none", "-"} {
		if !IsMissingToken(s) {
			t.Errorf("IsMissingToken(%q) = false", s)
		}
	}
	for _, s := range []string{"0", "x", "--"} {
		if IsMissingToken(s) {
			t.Errorf("IsMissingToken(%q) = true", s)
		}
	}
}

type recorder struct {
	msgs []string
}

func (r *recorder) Warningf(format string, args ...interface{}) {
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

func TestCheckerTypeMismatch(t *testing.T) {
	rec := &recorder{}
	c := Checker{Report: rec}
	checks := map[string]func(any, float64) ([]bool, error){
		"tukey": c.TukeyOutliers,
		"modz":  c.ModifiedZOutliers,
		"z":     c.ZScoreOutliers,
	}
	for name, f := range checks {
		rec.msgs = nil
		mask, err := f([]string{"a", "b"}, 1.5)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
		if diff := cmp.Diff([]bool{false, false}, mask); diff != "" {
			t.Errorf("%s: mask mismatch (-want +got):\n%s", name, diff)
		}
		if len(rec.msgs) != 1 {
			t.Errorf("%s: got %d reports, want 1", name, len(rec.msgs))
		}
	}
}

func TestCheckerNumeric(t *testing.T) {
	rec := &recorder{}
	mask, err := Checker{Report: rec}.TukeyOutliers([]string{"1", "2", "3", "NA", "4", "5", "100"}, MildFence)
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{false, false, false, false, false, false, true}
	if diff := cmp.Diff(want, mask); diff != "" {
		t.Errorf("mask mismatch (-want +got):\n%s", diff)
	}
	if len(rec.msgs) != 0 {
		t.Errorf("unexpected reports: %v", rec.msgs)
	}
}

func TestCheckerInvalidParameter(t *testing.T) {
	var c Checker
	if _, err := c.TukeyOutliers([]string{"x"}, -1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got error %v, want %v", err, ErrInvalidParameter)
	}
	if _, err := c.ZScoreOutliers([]float64{1}, math.NaN()); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got error %v, want %v", err, ErrInvalidParameter)
	}
}
