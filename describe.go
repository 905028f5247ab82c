// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/c2h5oh/datasize"
	"github.com/goccy/go-json"
	"github.com/op/go-logging"
	"github.com/taxi-eda/taxistat/internal/stats"
	"github.com/taxi-eda/taxistat/internal/table"
	"github.com/urfave/cli/v2"
)

var describeCommand = cli.Command{
	Action:    run("describe", describe),
	Name:      "describe",
	Usage:     "Prints robust summary statistics of numeric columns.",
	ArgsUsage: "<file.csv>",
	Flags: []cli.Flag{
		&columnsFlag,
		&trimFlag,
		&kFlag,
		&madScaleFlag,
		&jsonFlag,
		&kdeFlag,
	},
}

// A summary holds the statistics of one column.
type summary struct {
	Column      string    `json:"column"`
	N           int       `json:"n"`
	Missing     int       `json:"missing"`
	Mean        jsonFloat `json:"mean"`
	StdDev      jsonFloat `json:"sd"`
	Median      jsonFloat `json:"median"`
	TrimmedMean jsonFloat `json:"trimmed_mean"`
	IQR         jsonFloat `json:"iqr"`
	MAD         jsonFloat `json:"mad"`
	LowerFence  jsonFloat `json:"lower_fence"`
	UpperFence  jsonFloat `json:"upper_fence"`
	Bins        int       `json:"fd_bins"`
}

func summarize(name string, xs []float64, cfg *Config) (summary, error) {
	s := stats.Sample{Xs: xs}
	trimmed, err := stats.TrimmedMean(xs, cfg.Trim)
	if err != nil {
		return summary{}, err
	}
	fences, err := stats.TukeyFences(xs, cfg.K)
	if err != nil {
		return summary{}, err
	}
	mad, err := stats.MAD(xs, cfg.MADScale)
	if err != nil {
		return summary{}, err
	}
	n := s.N()
	return summary{
		Column:      name,
		N:           n,
		Missing:     len(xs) - n,
		Mean:        jsonFloat(s.Mean()),
		StdDev:      jsonFloat(s.StdDev()),
		Median:      jsonFloat(s.Median()),
		TrimmedMean: jsonFloat(trimmed),
		IQR:         jsonFloat(s.IQR()),
		MAD:         jsonFloat(mad),
		LowerFence:  jsonFloat(fences.Lower),
		UpperFence:  jsonFloat(fences.Upper),
		Bins:        stats.FDBins(xs),
	}, nil
}

// readInput reads cfg.File and returns it with the columns to analyze.
func readInput(cfg *Config, log *logging.Logger) (*table.Table, []string, error) {
	tbl, size, err := table.ReadFile(cfg.File)
	if err != nil {
		return nil, nil, err
	}
	log.Infof("read %s: %d rows, %d columns, %s", cfg.File, tbl.NumRows(), len(tbl.Header), datasize.ByteSize(size).HumanReadable())

	columns := cfg.Columns
	if len(columns) == 0 {
		columns = tbl.NumericColumns()
		log.Debugf("numeric columns: %v", columns)
	}
	for _, name := range columns {
		if tbl.Index(name) < 0 {
			return nil, nil, fmt.Errorf("%w: %q", table.ErrUnknownColumn, name)
		}
	}
	return tbl, columns, nil
}

// numeric returns the named column as a sample, or false after logging
// a warning if the column is not numeric.
func numeric(tbl *table.Table, name string, log *logging.Logger) ([]float64, bool, error) {
	xs, err := tbl.Numeric(name)
	if errors.Is(err, stats.ErrTypeMismatch) {
		log.Warningf("skipping %v", err)
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return xs, true, nil
}

func describe(w io.Writer, cfg *Config, log *logging.Logger) error {
	tbl, columns, err := readInput(cfg, log)
	if err != nil {
		return err
	}

	var sums []summary
	samples := map[string][]float64{}
	for _, name := range columns {
		xs, ok, err := numeric(tbl, name, log)
		if err != nil {
			return err
		} else if !ok {
			continue
		}
		sum, err := summarize(name, xs, cfg)
		if err != nil {
			return err
		}
		sums = append(sums, sum)
		samples[name] = xs
	}

	if cfg.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sums)
	}

	rows := make([][]string, len(sums))
	for i, s := range sums {
		f := scaler(float64(s.Median))
		rows[i] = []string{
			s.Column,
			strconv.Itoa(s.N),
			strconv.Itoa(s.Missing),
			f(float64(s.Mean)),
			f(float64(s.StdDev)),
			f(float64(s.Median)),
			f(float64(s.TrimmedMean)),
			f(float64(s.IQR)),
			f(float64(s.MAD)),
			f(float64(s.LowerFence)),
			f(float64(s.UpperFence)),
			strconv.Itoa(s.Bins),
		}
	}
	table.Render(w, []string{
		"column", "n", "missing", "mean", "sd", "median",
		fmt.Sprintf("trim %g", cfg.Trim), "iqr", "mad " + cfg.MADScale.String(),
		"lower fence", "upper fence", "fd bins",
	}, rows)

	if !cfg.KDE {
		return nil
	}
	for _, s := range sums {
		kde := stats.KDE{}.FromSample(stats.Sample{Xs: samples[s.Column]})
		if kde == nil {
			log.Noticef("%s: no density estimate for a sample without spread", s.Column)
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", s.Column); err != nil {
			return err
		}
		if err := (&stats.Plot{F: kde}).FASCII(w); err != nil {
			return err
		}
	}
	return nil
}
