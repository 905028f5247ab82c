// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/taxi-eda/taxistat/internal/stats"
)

// Missingness is the count and share of missing cells in one column.
type Missingness struct {
	Column  string
	Missing int

	// Percent is 100·Missing/rows rounded to one decimal place, or
	// NaN for a table without rows.
	Percent float64
}

// MissingnessOf returns one entry per column of t in header order. A
// cell is missing if stats.IsMissingToken reports so.
func MissingnessOf(t *Table) []Missingness {
	res := make([]Missingness, len(t.Header))
	n := t.NumRows()
	for i, name := range t.Header {
		m := 0
		for _, row := range t.Rows {
			if stats.IsMissingToken(row[i]) {
				m++
			}
		}
		pct := math.NaN()
		if n > 0 {
			pct = math.Round(1000*float64(m)/float64(n)) / 10
		}
		res[i] = Missingness{Column: name, Missing: m, Percent: pct}
	}
	return res
}

// SortByPercent orders ms by decreasing Percent, keeping header order
// among ties.
func SortByPercent(ms []Missingness) {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].Percent > ms[j].Percent
	})
}

// Render writes header and rows to w as a bordered text table with
// right-aligned cells.
func Render(w io.Writer, header []string, rows [][]string) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(header)
	tbl.SetAutoFormatHeaders(false)
	tbl.SetBorder(true)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	tbl.AppendBulk(rows)
	tbl.Render()
}

// RenderMissingness writes ms to w as a text table.
func RenderMissingness(w io.Writer, ms []Missingness) {
	rows := make([][]string, len(ms))
	for i, m := range ms {
		rows[i] = []string{m.Column, fmt.Sprint(m.Missing), fmt.Sprintf("%.1f%%", m.Percent)}
	}
	Render(w, []string{"column", "missing", "percent"}, rows)
}
