// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/taxi-eda/taxistat/internal/scale"
)

// Plot is a text rendering of a distribution for terminals.
type Plot struct {
	// F is the distribution to plot.
	F Dist

	// CDF plots F's cumulative distribution instead of its density.
	CDF bool

	// X and Y are the X and Y axis configuration.
	X, Y Axis

	// Samples is the number of samples to use on the X axis. If
	// this is zero, a default value is used.
	Samples int
}

type Axis struct {
	// Low and High specify the lower and upper bounds on this
	// Axis, respectively. If these are both 0, this Axis is
	// autoscaled.
	Low, High float64

	// Log specifies a logarithmic scale of this base. If this is
	// 0, the Axis uses a linear scale.
	Log float64
}

func (p *Plot) sample(defSamples int) (xs []float64, ys []float64) {
	if p.Samples != 0 {
		defSamples = p.Samples
	}

	if p.X.Log != 0 {
		logLo := math.Log(p.X.Low) / math.Log(p.X.Log)
		logHigh := math.Log(p.X.High) / math.Log(p.X.Log)
		xs = Logspace(logLo, logHigh, defSamples, p.X.Log)
	} else {
		xs = Linspace(p.X.Low, p.X.High, defSamples)
	}

	if p.CDF {
		return xs, p.F.CDFEach(xs)
	}

	// On a linear axis, average the density over the width of each
	// sample using the CDF, so narrow peaks keep their area.
	if p.X.Log == 0 && len(xs) > 1 {
		ys = make([]float64, len(xs))
		w := xs[1] - xs[0]
		left := p.F.CDF(xs[0] - 0.5*w)
		for i, x := range xs {
			right := p.F.CDF(x + 0.5*w)
			ys[i] = (right - left) / w
			left = right
		}
		return xs, ys
	}
	return xs, p.F.PDFEach(xs)
}

// AutoScale sets autoscaled axes according to the distribution being
// plotted and returns p.
func (p *Plot) AutoScale() *Plot {
	if p.X.Low == 0 && p.X.High == 0 {
		p.X.Low, p.X.High = p.F.Bounds()
	}

	if p.Y.Low == 0 && p.Y.High == 0 {
		_, ys := p.sample(500)
		p.Y.Low, p.Y.High = Bounds(ys)
		if p.Y.Low == p.Y.High {
			p.Y.High += 1
		}
		if p.Y.Low > 0 {
			p.Y.Low = 0
		}
	}

	return p
}

// Values computes plottable values of p.F evenly spaced on the X axis
// and returns the resulting X and Y coordinates.
func (p *Plot) Values() ([]float64, []float64) {
	return p.AutoScale().sample(100)
}

// FASCII writes p.F to w as one horizontal bar per sample, followed by
// a labelled value axis.
func (p *Plot) FASCII(w io.Writer) error {
	p.AutoScale()

	const width = 60
	xs, ys := p.sample(30)

	yScale := &scale.Linear{Min: p.Y.Low, Max: p.Y.High, Clamp: true}
	bars := scale.QQ{Src: yScale, Dest: &scale.Linear{Max: width}}
	for i, y := range ys {
		n := 0
		if !math.IsNaN(y) {
			n = int(math.Round(bars.Map(y)))
		}
		label := fmt.Sprintf("%7.5g", xs[i])
		if _, err := fmt.Fprintf(w, "%11s | %s\n", label, strings.Repeat("#", n)); err != nil {
			return err
		}
	}

	axis := []byte(strings.Repeat(" ", width+12))
	major, _ := yScale.Ticks(4)
	for _, t := range major {
		copy(axis[int(math.Round(bars.Map(t))):], fmt.Sprintf("%.3g", t))
	}
	_, err := fmt.Fprintf(w, "%11s +%s\n%11s  %s\n", "", strings.Repeat("-", width), "", strings.TrimRight(string(axis), " "))
	return err
}

// FTable writes "X Y" coordinates of p.F to w, one pair per line.
func (p *Plot) FTable(w io.Writer) error {
	p.AutoScale()

	xs, ys := p.sample(500)
	for i, y := range ys {
		if _, err := fmt.Fprintln(w, xs[i], y); err != nil {
			return err
		}
	}
	return nil
}
