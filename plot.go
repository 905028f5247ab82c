// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/op/go-logging"
	"github.com/taxi-eda/taxistat/internal/visual"
	"github.com/urfave/cli/v2"
)

var plotCommand = cli.Command{
	Action:    run("plot", plot),
	Name:      "plot",
	Usage:     "Writes an HTML report of histograms, box and violin plots, and eCDFs.",
	ArgsUsage: "<file.csv>",
	Flags: []cli.Flag{
		&columnsFlag,
		&outFlag,
		&themeFlag,
		&bwAdjustFlag,
		&unitFlag,
		&kFlag,
	},
}

// countingWriter counts the bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func plot(w io.Writer, cfg *Config, log *logging.Logger) error {
	tbl, columns, err := readInput(cfg, log)
	if err != nil {
		return err
	}

	style := visual.DefaultStyle()
	style.Theme = cfg.Theme
	style.PageTitle = fmt.Sprintf("%s report", cfg.File)
	p := visual.New(style)

	var cs []components.Charter
	for _, name := range columns {
		xs, ok, err := numeric(tbl, name, log)
		if err != nil {
			return err
		} else if !ok {
			continue
		}
		if kde := p.HistKDE(xs, name, cfg.Unit, cfg.Adjusts); kde != nil {
			cs = append(cs, kde)
		} else {
			log.Warningf("%s has no observations; no charts drawn", name)
			continue
		}
		fences, err := p.HistWithFences(xs, name+" with Tukey fences", cfg.Unit, cfg.K)
		if err != nil {
			return err
		}
		cs = append(cs, p.Box(xs, name), p.Violin(xs, name, cfg.Unit), p.ECDF(xs, name, cfg.Unit), fences)
	}

	f, err := os.Create(cfg.Out)
	if err != nil {
		return err
	}
	cw := &countingWriter{w: f}
	bw := bufio.NewWriter(cw)
	if err := p.Render(bw, cs...); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Noticef("wrote %d charts to %s (%s)", len(cs), cfg.Out, datasize.ByteSize(cw.n).HumanReadable())
	_, err = fmt.Fprintln(w, cfg.Out)
	return err
}
