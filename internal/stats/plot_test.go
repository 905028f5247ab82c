// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"bytes"
	"strings"
	"testing"
)

func barLengths(t *testing.T, out string) []int {
	t.Helper()
	var lens []int
	for _, line := range strings.Split(out, "\n") {
		_, bar, ok := strings.Cut(line, " | ")
		if !ok {
			continue
		}
		lens = append(lens, strings.Count(bar, "#"))
	}
	return lens
}

func TestPlotASCII(t *testing.T) {
	var buf bytes.Buffer
	p := &Plot{F: StdNormal, X: Axis{Low: -2, High: 2}, Samples: 5}
	if err := p.FASCII(&buf); err != nil {
		t.Fatal(err)
	}
	lens := barLengths(t, buf.String())
	if len(lens) != 5 {
		t.Fatalf("expected 5 bars, got %d:\n%s", len(lens), buf.String())
	}
	for i := 0; i < 2; i++ {
		if !(lens[i] < lens[i+1]) || lens[4-i] != lens[i] {
			t.Errorf("bars not symmetric around the mode: %v", lens)
			break
		}
	}
	if p.Y.Low != 0 {
		t.Errorf("density axis starts at %g, want 0", p.Y.Low)
	}
	if !strings.Contains(buf.String(), "+---") {
		t.Errorf("missing value axis:\n%s", buf.String())
	}
}

func TestPlotCDF(t *testing.T) {
	var buf bytes.Buffer
	p := &Plot{F: Normal{Mu: 10, Sigma: 2}, CDF: true, Samples: 8}
	if err := p.FASCII(&buf); err != nil {
		t.Fatal(err)
	}
	lens := barLengths(t, buf.String())
	for i := 1; i < len(lens); i++ {
		if lens[i] < lens[i-1] {
			t.Errorf("CDF bars decrease: %v", lens)
			break
		}
	}
}

func TestPlotValues(t *testing.T) {
	kde := KDE{Bandwidth: FixedBandwidth(1)}.FromSample(Sample{Xs: []float64{0, 1, 2, Missing}})
	xs, ys := (&Plot{F: kde}).Values()
	if len(xs) != 100 || len(ys) != 100 {
		t.Fatalf("expected 100 values, got %d and %d", len(xs), len(ys))
	}
	for i, y := range ys {
		if y < 0 {
			t.Errorf("negative density %g at %g", y, xs[i])
		}
	}

	var buf bytes.Buffer
	if err := (&Plot{F: kde, Samples: 7}).FTable(&buf); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 7 {
		t.Errorf("FTable wrote %d lines, want 7", n)
	}
}
