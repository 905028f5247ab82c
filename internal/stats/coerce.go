// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// missingTokens are the spellings of a missing cell in text input,
// compared case-insensitively after trimming space.
var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
	"none": true,
	"-":    true,
}

// IsMissingToken reports whether the text cell s denotes a missing
// observation.
func IsMissingToken(s string) bool {
	return missingTokens[strings.ToLower(strings.TrimSpace(s))]
}

// ParseValue converts a text cell to a sample value. Missing tokens
// become Missing.
func ParseValue(s string) (float64, error) {
	if IsMissingToken(s) {
		return Missing, nil
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nan, fmt.Errorf("%w: %q", ErrTypeMismatch, s)
	}
	return x, nil
}

// Coerce converts v, a slice or array of numbers, numeric strings,
// pointers to either, or interfaces holding any of those, to a sample.
// nil pointers and interfaces and missing tokens become Missing.
//
// If any element cannot be converted, Coerce returns an error wrapping
// ErrTypeMismatch together with a slice of v's length, so callers can
// still produce a neutral per-position result.
func Coerce(v any) ([]float64, error) {
	if xs, ok := v.([]float64); ok {
		return xs, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("%w: %T is not a sequence", ErrTypeMismatch, v)
	}
	xs := make([]float64, rv.Len())
	for i := range xs {
		x, err := coerceValue(rv.Index(i))
		if err != nil {
			return xs, fmt.Errorf("element %d: %w", i, err)
		}
		xs[i] = x
	}
	return xs, nil
}

func coerceValue(rv reflect.Value) (float64, error) {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.String:
		return ParseValue(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Missing, nil
		}
		return coerceValue(rv.Elem())
	case reflect.Invalid:
		return Missing, nil
	}
	return nan, fmt.Errorf("%w: %s", ErrTypeMismatch, rv.Type())
}

// Reporter receives warnings about input that could not be analyzed.
// *logging.Logger satisfies it.
type Reporter interface {
	Warningf(format string, args ...interface{})
}

// A Checker runs outlier detection on loosely typed input without ever
// failing on the data itself. Input that cannot be coerced to numbers
// is reported to Report and yields an all-false mask of the input's
// length. Invalid parameters are still returned as errors.
//
// The zero value discards reports.
type Checker struct {
	Report Reporter
}

func (c Checker) coerce(op string, v any) ([]float64, bool) {
	xs, err := Coerce(v)
	if err != nil {
		if c.Report != nil {
			c.Report.Warningf("%s: %v; no values flagged", op, err)
		}
		return xs, false
	}
	return xs, true
}

func (c Checker) mask(op string, v any, param float64, f func([]float64, float64) ([]bool, error)) ([]bool, error) {
	if err := checkNonNegative("parameter", param); err != nil {
		return nil, err
	}
	xs, ok := c.coerce(op, v)
	if !ok {
		return make([]bool, len(xs)), nil
	}
	return f(xs, param)
}

// TukeyOutliers is TukeyOutliers for any coercible input.
func (c Checker) TukeyOutliers(v any, k float64) ([]bool, error) {
	return c.mask("tukey outliers", v, k, TukeyOutliers)
}

// ModifiedZOutliers is ModifiedZOutliers for any coercible input.
func (c Checker) ModifiedZOutliers(v any, threshold float64) ([]bool, error) {
	return c.mask("modified z-score outliers", v, threshold, ModifiedZOutliers)
}

// ZScoreOutliers is ZScoreOutliers for any coercible input.
func (c Checker) ZScoreOutliers(v any, threshold float64) ([]bool, error) {
	return c.mask("z-score outliers", v, threshold, ZScoreOutliers)
}
