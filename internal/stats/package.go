// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats is a small library of robust descriptive statistics
// for exploratory analysis of one-dimensional samples.
//
// A sample is a []float64 in which NaN marks a missing entry. Every
// function in this package is NaN-aware: it computes over the finite
// entries of the sample (its observations) and never mutates its
// input. Per-position results such as outlier masks keep the length
// and order of the input, and positions that hold no observation are
// never flagged.
//
// Degenerate input (no observations, zero spread) yields a neutral
// result such as NaN or an all-false mask. Invalid parameters yield an
// error wrapping ErrInvalidParameter.
package stats

import (
	"errors"
	"math"
)

var inf = math.Inf(1)
var nan = math.NaN()

// Missing is the sentinel for an absent observation.
var Missing = nan

var (
	// ErrInvalidParameter is returned for parameters outside their
	// documented domain, such as a trim proportion of 0.5 or a negative
	// fence multiplier.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrTypeMismatch is returned when a value cannot be coerced to a
	// number.
	ErrTypeMismatch = errors.New("non-numeric value")
)
