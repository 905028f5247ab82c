// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"strconv"
)

// scaler returns a formatter that prints values with a precision suited
// to the magnitude of x, so that one column of a summary shares a format.
func scaler(x float64) func(float64) string {
	var format string
	switch ax := math.Abs(x); {
	case ax >= 99.5:
		format = "%.0f"
	case ax >= 9.95:
		format = "%.1f"
	case ax >= 0.995:
		format = "%.2f"
	default:
		format = "%.4g"
	}
	return func(v float64) string {
		if math.IsNaN(v) {
			return "NaN"
		}
		return fmt.Sprintf(format, v)
	}
}

// jsonFloat is a float64 that encodes NaN and ±Inf as JSON null.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	x := float64(f)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, x, 'g', -1, 64), nil
}
