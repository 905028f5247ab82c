// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Taxistat computes robust summary statistics of trip records for
// exploratory analysis.
//
// Usage:
//
//	taxistat [--log level] describe [--trim p] [--k k] [--mad-scale normal|raw] [--json] [--kde] trips.csv
//	taxistat [--log level] outliers [--method tukey|modz|z] [--k k] [--threshold t] [--rows] trips.csv
//	taxistat [--log level] missing [--sort] trips.csv
//	taxistat [--log level] plot [--out report.html] [--theme westeros] [--bw-adjust a] trips.csv
//
// The input is a CSV file whose first record names the columns. Empty
// cells and the tokens NA, N/A, NaN, null, None and - are missing
// values. Missing values never enter a statistic; they are counted
// separately and never flagged as outliers.
//
// Describe prints, for every numeric column, the number of observations
// and missing cells, mean and standard deviation, median, trimmed mean,
// interquartile range, median absolute deviation, Tukey fences and the
// Freedman–Diaconis bin count. Columns holding text are skipped with a
// warning.
//
// Outliers counts the values flagged in each column by Tukey's fences
// (values outside [Q1 − k·IQR, Q3 + k·IQR]), by the modified z-score
// 0.6745·(x − median)/MAD, or by the classical z-score. A column without
// spread flags nothing.
//
// Missing prints the missing cells of every column and their share of
// rows, rounded to one decimal place.
//
// Plot writes an HTML page holding, per column, a density histogram with
// kernel density estimates, a box plot, the empirical CDF and a
// histogram marked with the Tukey fences.
//
// # Example
//
// Suppose trips.csv contains:
//
//	fare,distance,payment
//	1,0.4,card
//	2,0.9,cash
//	3,NA,card
//	4,1.2,card
//	5,1.1,card
//	100,1.0,cash
//
// Then:
//
//	$ taxistat outliers trips.csv
//	+----------+-------------+---------+---------+
//	|  column  |    rule     | flagged | percent |
//	+----------+-------------+---------+---------+
//	|     fare | tukey k=1.5 |       1 |   16.7% |
//	| distance | tukey k=1.5 |       1 |   16.7% |
//	+----------+-------------+---------+---------+
//	$
package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/taxi-eda/taxistat/internal/logger"
	"github.com/urfave/cli/v2"
)

// initApp returns the taxistat command line application.
func initApp() *cli.App {
	return &cli.App{
		Name:      "taxistat",
		HelpName:  "taxistat",
		Usage:     "robust statistics for exploring trip records",
		Copyright: "(c) 2015 The Go Authors",
		Flags: []cli.Flag{
			&logger.LogLevelFlag,
		},
		Commands: []*cli.Command{
			&describeCommand,
			&outliersCommand,
			&missingCommand,
			&plotCommand,
		},
	}
}

// run adapts a command body to a cli.ActionFunc. The body writes its
// results to the application's writer.
func run(name string, body func(w io.Writer, cfg *Config, log *logging.Logger) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "taxistat")
		cfg, err := NewConfig(ctx)
		if err != nil {
			return err
		}

		start := time.Now()
		if err := body(ctx.App.Writer, cfg, log); err != nil {
			return err
		}
		h, m, s := logger.ParseTime(time.Since(start))
		log.Infof("%s finished in %dh %dm %ds", name, h, m, s)
		return nil
	}
}

func main() {
	log.SetPrefix("taxistat: ")
	log.SetFlags(0)
	if err := initApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
