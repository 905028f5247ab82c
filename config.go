// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/taxi-eda/taxistat/internal/stats"
	"github.com/taxi-eda/taxistat/internal/visual"
	"github.com/urfave/cli/v2"
)

var (
	columnsFlag = cli.StringSliceFlag{
		Name:    "columns",
		Aliases: []string{"c"},
		Usage:   "columns to analyze (default: every numeric column)",
	}
	trimFlag = cli.Float64Flag{
		Name:  "trim",
		Usage: "proportion cut from each tail for the trimmed mean, in [0, 0.5)",
		Value: 0.1,
	}
	kFlag = cli.Float64Flag{
		Name:  "k",
		Usage: "Tukey fence multiplier (1.5 mild, 3 extreme)",
		Value: stats.MildFence,
	}
	madScaleFlag = cli.StringFlag{
		Name:  "mad-scale",
		Usage: "median absolute deviation scale: \"normal\" (×1.4826) or \"raw\"",
		Value: stats.NormalScale.String(),
	}
	jsonFlag = cli.BoolFlag{
		Name:  "json",
		Usage: "print the summary as JSON",
	}
	kdeFlag = cli.BoolFlag{
		Name:  "kde",
		Usage: "print a text density plot of every column",
	}
	methodFlag = cli.StringFlag{
		Name:    "method",
		Aliases: []string{"m"},
		Usage:   "outlier rule: \"tukey\", \"modz\" (modified z-score) or \"z\" (z-score)",
		Value:   methodTukey,
	}
	thresholdFlag = cli.Float64Flag{
		Name:  "threshold",
		Usage: "score threshold for modz and z (default: 3.5 for modz, 3 for z); tukey takes --k instead",
	}
	rowsFlag = cli.BoolFlag{
		Name:  "rows",
		Usage: "list the data rows flagged in each column",
	}
	sortFlag = cli.BoolFlag{
		Name:  "sort",
		Usage: "order columns by decreasing share of missing cells",
	}
	outFlag = cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "HTML report `FILE`",
		Value:   "report.html",
	}
	themeFlag = cli.StringFlag{
		Name:  "theme",
		Usage: "chart theme",
		Value: types.ThemeWesteros,
	}
	bwAdjustFlag = cli.Float64SliceFlag{
		Name:  "bw-adjust",
		Usage: "kernel density bandwidth multipliers (default: 0.7, 1, 1.8)",
	}
	unitFlag = cli.StringFlag{
		Name:  "unit",
		Usage: "unit shown on value axes",
	}
)

const (
	methodTukey = "tukey"
	methodModZ  = "modz"
	methodZ     = "z"
)

var errUsage = errors.New("usage")

// Config is the validated set of options of one command invocation.
type Config struct {
	File    string
	Columns []string

	Trim     float64
	K        float64
	MADScale stats.MADScale
	JSON     bool
	KDE      bool

	Method    string
	Threshold float64
	Rows      bool

	Sort bool

	Out     string
	Theme   string
	Adjusts []float64
	Unit    string
}

// NewConfig reads the options of the running command from ctx. Flags a
// command does not define keep their defaults.
func NewConfig(ctx *cli.Context) (*Config, error) {
	if ctx.NArg() != 1 {
		return nil, fmt.Errorf("%w: %s requires exactly one CSV file, got %d arguments", errUsage, ctx.Command.Name, ctx.NArg())
	}
	cfg := &Config{
		File:    ctx.Args().First(),
		Columns: ctx.StringSlice(columnsFlag.Name),
		Trim:    trimFlag.Value,
		K:       kFlag.Value,
		Method:  methodTukey,
		JSON:    ctx.Bool(jsonFlag.Name),
		KDE:     ctx.Bool(kdeFlag.Name),
		Rows:    ctx.Bool(rowsFlag.Name),
		Sort:    ctx.Bool(sortFlag.Name),
		Out:     outFlag.Value,
		Theme:   themeFlag.Value,
		Adjusts: visual.DefaultAdjusts,
		Unit:    ctx.String(unitFlag.Name),
	}
	if ctx.IsSet(trimFlag.Name) {
		cfg.Trim = ctx.Float64(trimFlag.Name)
	}
	if ctx.IsSet(kFlag.Name) {
		cfg.K = ctx.Float64(kFlag.Name)
	}
	if ctx.IsSet(methodFlag.Name) {
		cfg.Method = strings.ToLower(ctx.String(methodFlag.Name))
	}
	if ctx.IsSet(outFlag.Name) {
		cfg.Out = ctx.String(outFlag.Name)
	}
	if ctx.IsSet(themeFlag.Name) {
		cfg.Theme = ctx.String(themeFlag.Name)
	}
	if adjusts := ctx.Float64Slice(bwAdjustFlag.Name); len(adjusts) > 0 {
		cfg.Adjusts = adjusts
	}

	var err error
	if cfg.MADScale, err = parseMADScale(ctx.String(madScaleFlag.Name)); err != nil {
		return nil, err
	}

	switch cfg.Method {
	case methodTukey:
		cfg.Threshold = cfg.K
	case methodModZ:
		cfg.Threshold = stats.ModifiedZThreshold
	case methodZ:
		cfg.Threshold = stats.ZThreshold
	default:
		return nil, fmt.Errorf("%w: unknown outlier method %q", errUsage, cfg.Method)
	}
	if ctx.IsSet(thresholdFlag.Name) {
		if cfg.Method == methodTukey {
			return nil, fmt.Errorf("%w: --%s applies to modz and z; tukey uses --%s", errUsage, thresholdFlag.Name, kFlag.Name)
		}
		cfg.Threshold = ctx.Float64(thresholdFlag.Name)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseMADScale(s string) (stats.MADScale, error) {
	switch strings.ToLower(s) {
	case "", stats.NormalScale.String():
		return stats.NormalScale, nil
	case stats.RawScale.String():
		return stats.RawScale, nil
	}
	return stats.NormalScale, fmt.Errorf("%w: unknown MAD scale %q", errUsage, s)
}

func (cfg *Config) validate() error {
	if !(0 <= cfg.Trim && cfg.Trim < 0.5) {
		return fmt.Errorf("%w: trim proportion %v not in [0, 0.5)", stats.ErrInvalidParameter, cfg.Trim)
	}
	if !(cfg.K >= 0) || math.IsInf(cfg.K, 1) {
		return fmt.Errorf("%w: fence multiplier %v", stats.ErrInvalidParameter, cfg.K)
	}
	if !(cfg.Threshold >= 0) || math.IsInf(cfg.Threshold, 1) {
		return fmt.Errorf("%w: threshold %v", stats.ErrInvalidParameter, cfg.Threshold)
	}
	for _, a := range cfg.Adjusts {
		if !(a > 0) || math.IsInf(a, 1) {
			return fmt.Errorf("%w: bandwidth adjustment %v", stats.ErrInvalidParameter, a)
		}
	}
	if !types.PresetTheme(cfg.Theme) && cfg.Theme != "white" && cfg.Theme != "dark" {
		return fmt.Errorf("%w: unknown theme %q", errUsage, cfg.Theme)
	}
	return nil
}
