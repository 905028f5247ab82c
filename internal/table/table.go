// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table reads delimited trip records into named text columns
// and summarizes their missing cells.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/taxi-eda/taxistat/internal/stats"
)

var (
	// ErrEmptyInput is returned when the input has no header record.
	ErrEmptyInput = errors.New("empty input")

	// ErrUnknownColumn is returned when a column name is not in the
	// header.
	ErrUnknownColumn = errors.New("unknown column")
)

// A Table is a header and the text rows below it. Every row has
// exactly len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadCSV reads a comma-separated table from r. The first record is the
// header. Later records identical to the header, as left behind by
// concatenating files, are dropped. Short rows are padded with empty
// (missing) cells and long rows are truncated.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	} else if err != nil {
		return nil, err
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	t := &Table{Header: header}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if t.isHeader(rec) {
			continue
		}
		row := make([]string, len(header))
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func (t *Table) isHeader(rec []string) bool {
	if len(rec) != len(t.Header) {
		return false
	}
	for i, c := range rec {
		if strings.TrimSpace(c) != t.Header[i] {
			return false
		}
	}
	return true
}

// ReadFile reads the CSV file at path and returns the table together
// with the file size in bytes.
func ReadFile(path string) (*Table, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, 0, err
	}
	t, err := ReadCSV(f)
	if err != nil {
		return nil, fi.Size(), fmt.Errorf("%s: %w", path, err)
	}
	return t, fi.Size(), nil
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns a copy of the named column's cells.
func (t *Table) Column(name string) ([]string, bool) {
	i := t.Index(name)
	if i < 0 {
		return nil, false
	}
	col := make([]string, len(t.Rows))
	for j, row := range t.Rows {
		col[j] = row[i]
	}
	return col, true
}

// Numeric returns the named column as a sample. Missing cells become
// stats.Missing. An error wrapping stats.ErrTypeMismatch is returned if
// any other cell is not a number.
func (t *Table) Numeric(name string) ([]float64, error) {
	col, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	xs, err := stats.Coerce(col)
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", name, err)
	}
	return xs, nil
}

// NumericColumns returns the names of the columns whose non-missing
// cells all parse as numbers and which hold at least one such cell.
func (t *Table) NumericColumns() []string {
	var names []string
	for _, name := range t.Header {
		xs, err := t.Numeric(name)
		if err != nil {
			continue
		}
		if len(stats.Sample{Xs: xs}.Observations()) > 0 {
			names = append(names, name)
		}
	}
	return names
}
