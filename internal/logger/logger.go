// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger configures the process-wide go-logging backend used by
// taxistat commands.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

// LogLevelFlag selects the lowest level written to stderr.
var LogLevelFlag = cli.StringFlag{
	Name:    "log",
	Aliases: []string{"l"},
	Usage:   "lowest log `LEVEL` shown: critical, error, warning, notice, info or debug",
	Value:   "info",
}

// logFormat prefixes each record with its time, level and module.
const logFormat = "%{time:15:04:05.000} %{color}%{level:-8s}%{color:reset} %{module}: %{message}"

// NewLogger returns the logger for module writing to stderr. Unknown
// levels fall back to INFO.
func NewLogger(level string, module string) *logging.Logger {
	return newLogger(os.Stderr, level, module)
}

func newLogger(w io.Writer, level string, module string) *logging.Logger {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}

	formatted := logging.NewBackendFormatter(
		logging.NewLogBackend(w, "", 0),
		logging.MustStringFormatter(logFormat),
	)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)

	return logging.MustGetLogger(module)
}

// ParseTime splits elapsed, rounded to the second, into hours, minutes
// and seconds.
func ParseTime(elapsed time.Duration) (hours, minutes, seconds uint32) {
	seconds = uint32(elapsed.Round(time.Second).Seconds())
	hours = seconds / 3600
	minutes = seconds % 3600 / 60
	seconds %= 60
	return hours, minutes, seconds
}
