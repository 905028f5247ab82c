// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/op/go-logging"
	"github.com/taxi-eda/taxistat/internal/stats"
	"github.com/taxi-eda/taxistat/internal/table"
	"github.com/urfave/cli/v2"
)

var outliersCommand = cli.Command{
	Action:    run("outliers", outliers),
	Name:      "outliers",
	Usage:     "Counts the values each column flags as outliers.",
	ArgsUsage: "<file.csv>",
	Flags: []cli.Flag{
		&columnsFlag,
		&methodFlag,
		&kFlag,
		&thresholdFlag,
		&rowsFlag,
	},
}

// outlierMask flags the cells of col under cfg's method. Cells that are
// not numbers are reported to log and never flagged.
func outlierMask(col []string, cfg *Config, log *logging.Logger) ([]bool, error) {
	c := stats.Checker{Report: log}
	switch cfg.Method {
	case methodModZ:
		return c.ModifiedZOutliers(col, cfg.Threshold)
	case methodZ:
		return c.ZScoreOutliers(col, cfg.Threshold)
	}
	return c.TukeyOutliers(col, cfg.Threshold)
}

func outliers(w io.Writer, cfg *Config, log *logging.Logger) error {
	tbl, columns, err := readInput(cfg, log)
	if err != nil {
		return err
	}

	flagged := color.New(color.FgRed, color.Bold).SprintFunc()
	clean := color.New(color.FgGreen).SprintFunc()
	param := fmt.Sprintf("%s %g", cfg.Method, cfg.Threshold)
	if cfg.Method == methodTukey {
		param = fmt.Sprintf("tukey k=%g", cfg.Threshold)
	}

	var rows [][]string
	var listing []string
	for _, name := range columns {
		col, _ := tbl.Column(name)
		mask, err := outlierMask(col, cfg, log)
		if err != nil {
			return err
		}
		n := stats.Count(mask)
		count := clean(strconv.Itoa(n))
		if n > 0 {
			count = flagged(strconv.Itoa(n))
		}
		pct := "NaN"
		if len(mask) > 0 {
			pct = fmt.Sprintf("%.1f%%", 100*float64(n)/float64(len(mask)))
		}
		rows = append(rows, []string{name, param, count, pct})

		if cfg.Rows && n > 0 {
			var idx []string
			for i, out := range mask {
				if out {
					// Data rows are numbered from 1.
					idx = append(idx, strconv.Itoa(i+1))
				}
			}
			listing = append(listing, fmt.Sprintf("%s: rows %s", name, strings.Join(idx, ", ")))
		}
	}
	table.Render(w, []string{"column", "rule", "flagged", "percent"}, rows)
	for _, line := range listing {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
