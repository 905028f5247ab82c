// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/c2h5oh/datasize"
	"github.com/op/go-logging"
	"github.com/taxi-eda/taxistat/internal/table"
	"github.com/urfave/cli/v2"
)

var missingCommand = cli.Command{
	Action:    run("missing", missing),
	Name:      "missing",
	Usage:     "Prints the count and share of missing cells per column.",
	ArgsUsage: "<file.csv>",
	Flags: []cli.Flag{
		&sortFlag,
	},
}

func missing(w io.Writer, cfg *Config, log *logging.Logger) error {
	tbl, size, err := table.ReadFile(cfg.File)
	if err != nil {
		return err
	}
	log.Infof("read %s: %d rows, %d columns, %s", cfg.File, tbl.NumRows(), len(tbl.Header), datasize.ByteSize(size).HumanReadable())

	ms := table.MissingnessOf(tbl)
	if cfg.Sort {
		table.SortByPercent(ms)
	}
	table.RenderMissingness(w, ms)
	return nil
}
