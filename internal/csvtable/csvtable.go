// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csvtable loads CSV files into go-gg tables, inferring a
// type for each column.
package csvtable

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aclements/go-gg/table"
)

// A columnParser converts every cell of a column, or fails. The
// parsers are tried in order and the first that accepts the whole
// column wins.
type columnParser func(cells []string) (interface{}, bool)

var columnParsers = []columnParser{parseNumbers, parseBools, parseTimes}

// Read reads a CSV document whose first record is the header and
// returns it as a table. Each column becomes []float64 if every cell
// is a number or empty (empty cells are NaN), []bool if every cell is
// "true" or "false", []time.Time if every cell is an ISO 8601 date,
// and []string otherwise.
func Read(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("csv: no header")
	}
	header, rows := recs[0], recs[1:]

	seen := make(map[string]bool)
	tab := new(table.Builder)
	for j, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("csv: duplicate column %q", name)
		}
		seen[name] = true

		cells := make([]string, len(rows))
		for i, row := range rows {
			cells[i] = strings.TrimSpace(row[j])
		}
		tab.Add(name, parseColumn(cells))
	}
	return tab.Done(), nil
}

// ReadFile is like Read, for the named file.
func ReadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func parseColumn(cells []string) interface{} {
	for _, p := range columnParsers {
		if col, ok := p(cells); ok {
			return col
		}
	}
	return cells
}

func parseNumbers(cells []string) (interface{}, bool) {
	col := make([]float64, len(cells))
	for i, s := range cells {
		if s == "" {
			col[i] = math.NaN()
			continue
		}
		// ParseFloat accepts non-finite and hex forms; in a CSV file
		// those are words.
		x, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) || strings.ContainsAny(s, "xX") {
			return nil, false
		}
		col[i] = x
	}
	return col, true
}

func parseBools(cells []string) (interface{}, bool) {
	col := make([]bool, len(cells))
	for i, s := range cells {
		switch s {
		case "true":
			col[i] = true
		case "false":
		default:
			return nil, false
		}
	}
	return col, len(cells) > 0
}

// timeLayouts are the accepted ISO 8601 forms. Dates without a zone
// are UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
}

func parseTimes(cells []string) (interface{}, bool) {
	col := make([]time.Time, len(cells))
	for i, s := range cells {
		t, ok := parseTime(s)
		if !ok {
			return nil, false
		}
		col[i] = t
	}
	return col, len(cells) > 0
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
