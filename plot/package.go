// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot builds SVG charts from tables and declarative marks.
//
// A plot is a list of marks (dots, bars, lines, text, ...) over one
// or more tables. Each mark binds data to named channels: "x" and "y"
// give position, "fill" and "stroke" give color, "r" gives radius,
// and so on. A channel is either a constant, which applies to the
// whole mark, or a per-row value, which is computed from a column of
// the mark's table, a literal slice, or a function.
//
// # Scales
//
// Channels that vary per row are encoded through scales. A scale is
// identified by a key (x, y, fx, fy, color, opacity, r, length,
// symbol) and maps values in the data space to values in the visual
// space. All channels bound to the same key, across all marks, share
// one scale. Plot pools those channels, infers one scale type from
// them (ordinal, point, band, linear, sqrt, pow, log, symlog, time,
// utc, diverging, ...), computes a domain, and then assigns a pixel
// range to positional scales based on the plot's dimensions. Options
// in Options.Scales override any part of this.
//
// Scale type inference is deliberately conservative: strings and
// booleans give an ordinal scale (a "point" scale for positional
// keys), times give a "utc" scale, and anything else gives a
// "linear" scale. The "r" scale is always "sqrt" unless overridden,
// so that the area of a dot is proportional to its value.
//
// # Styles
//
// Every mark accepts the same presentation options (StyleOptions).
// Marks that are filled by default (bars, cells, text) stop filling
// when given an explicit stroke, and marks that are stroked by
// default (dots, lines) stop stroking when given an explicit fill.
//
// # Marks
//
// A mark implements Mark: given the rows to draw, the finished
// scales, the scaled channel values, and the plot's dimensions, it
// returns an SVG element tree. Custom marks can embed MarkBase and
// implement Render.
//
// # Faceting
//
// Options.Facet splits the rows of one table across a grid of
// cells. Each cell shares the plot's scales, but the inner x and y
// scales span a single cell rather than the whole plot.
package plot

import (
	"log"
	"os"
)

// Warning is a logger for reporting conditions that don't prevent the
// production of a plot, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[markplot] ", log.Lshortfile)
