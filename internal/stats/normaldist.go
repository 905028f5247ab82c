// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// Normal is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type Normal struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1)
var StdNormal = Normal{0, 1}

// FitNormal returns the normal distribution with the mean and sample
// standard deviation of the observations of xs. ok is false if xs has
// fewer than two observations or no spread.
func FitNormal(xs []float64) (n Normal, ok bool) {
	s := Sample{Xs: xs}
	n = Normal{Mu: s.Mean(), Sigma: s.StdDev()}
	return n, n.Sigma > 0
}

func (n Normal) dist() distuv.Normal {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}
}

func (n Normal) PDF(x float64) float64 {
	return n.dist().Prob(x)
}

func (n Normal) PDFEach(xs []float64) []float64 {
	d := n.dist()
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.Prob(x)
	}
	return res
}

func (n Normal) CDF(x float64) float64 {
	return n.dist().CDF(x)
}

func (n Normal) CDFEach(xs []float64) []float64 {
	d := n.dist()
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.CDF(x)
	}
	return res
}

// Quantile returns the value x for which CDF(x) = p.
func (n Normal) Quantile(p float64) float64 {
	return n.dist().Quantile(p)
}

func (n Normal) Bounds() (float64, float64) {
	const stddevs = 3
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}
