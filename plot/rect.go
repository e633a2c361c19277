// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/markplot/markplot/svgnode"
)

// Insets shrink each rectangle of a rectangular mark.
type Insets struct {
	// Inset applies to every side that doesn't set its own.
	Inset float64

	InsetTop, InsetRight, InsetBottom, InsetLeft float64

	// Rx and Ry round the corners.
	Rx, Ry float64
}

func (in Insets) sides() (top, right, bottom, left float64) {
	pick := func(side float64) float64 {
		if side != 0 {
			return side
		}
		return in.Inset
	}
	return pick(in.InsetTop), pick(in.InsetRight), pick(in.InsetBottom), pick(in.InsetLeft)
}

// rectMark draws a rectangle per row. Along each axis a rectangle
// spans an interval between two channels, a band of a band scale, or
// the whole frame.
type rectMark struct {
	MarkBase
	Insets
	x1, x2, y1, y2 string
}

// span returns the extent of row i along one axis. lo and hi name an
// interval's channels, or a band channel if equal. The frame extent
// is used if neither channel is present.
func span(lo, hi string, s *Scale, i int, vs Values, frameLo, frameHi float64) (float64, float64, bool) {
	if _, ok := vs[lo]; !ok {
		return frameLo, frameHi, true
	}
	a, ok := vs.float(lo, i)
	if !ok {
		return 0, 0, false
	}
	if lo == hi {
		bw := 0.0
		if s != nil {
			bw = s.Bandwidth()
		}
		return a, a + bw, true
	}
	b, ok := vs.float(hi, i)
	if !ok {
		return 0, 0, false
	}
	return math.Min(a, b), math.Max(a, b), true
}

func (m *rectMark) Render(index []int, scales Scales, vs Values, d Dimensions) *svgnode.Node {
	g := m.markGroup(nil, nil)
	top, right, bottom, left := m.sides()
	for _, i := range index {
		x0, x1, okx := span(m.x1, m.x2, scales["x"], i, vs, d.Left, d.Width-d.Right)
		y0, y1, oky := span(m.y1, m.y2, scales["y"], i, vs, d.Top, d.Height-d.Bottom)
		if !okx || !oky {
			continue
		}
		el := svgnode.New("rect").
			SetNum("x", x0+left).
			SetNum("width", math.Max(0, x1-x0-left-right)).
			SetNum("y", y0+top).
			SetNum("height", math.Max(0, y1-y0-top-bottom))
		if m.Rx != 0 {
			el.SetNum("rx", m.Rx)
		}
		if m.Ry != 0 {
			el.SetNum("ry", m.Ry)
		}
		applyDirectStyles(el, m.Style)
		g.Append(m.applyChannelStyles(el, i, vs))
	}
	return g
}

// BarXOptions are the options of a BarX mark.
type BarXOptions struct {
	MarkOptions
	Insets

	// X1 and X2 bound each bar horizontally. X is shorthand for
	// X1 = 0, X2 = X.
	X, X1, X2 interface{}

	// Y, if set, is mapped through a band scale. Otherwise bars
	// span the frame vertically.
	Y interface{}
}

// BarX returns a mark that draws horizontal bars, as for a bar chart
// with values along x.
func BarX(data *table.Table, o BarXOptions) Mark {
	x1, x2 := o.X1, o.X2
	if o.X != nil {
		x1, x2 = 0.0, o.X
	}
	channels := definedChannels(
		Channel{Name: "x1", Value: maybeValue(x1), Scale: "x"},
		Channel{Name: "x2", Value: maybeValue(x2), Scale: "x"},
		Channel{Name: "y", Value: maybeValue(o.Y), Scale: "y", Type: ScaleBand},
	)
	m := &rectMark{Insets: o.Insets, x1: "x1", x2: "x2", y1: "y", y2: "y"}
	m.MarkBase = NewMarkBase(data, channels, o.MarkOptions, StyleDefaults{AriaLabel: "bar"})
	return m
}

// BarYOptions are the options of a BarY mark.
type BarYOptions struct {
	MarkOptions
	Insets

	// Y1 and Y2 bound each bar vertically. Y is shorthand for
	// Y1 = 0, Y2 = Y.
	Y, Y1, Y2 interface{}

	// X, if set, is mapped through a band scale. Otherwise bars
	// span the frame horizontally.
	X interface{}
}

// BarY returns a mark that draws vertical bars, as for a column chart
// with values along y.
func BarY(data *table.Table, o BarYOptions) Mark {
	y1, y2 := o.Y1, o.Y2
	if o.Y != nil {
		y1, y2 = 0.0, o.Y
	}
	channels := definedChannels(
		Channel{Name: "y1", Value: maybeValue(y1), Scale: "y"},
		Channel{Name: "y2", Value: maybeValue(y2), Scale: "y"},
		Channel{Name: "x", Value: maybeValue(o.X), Scale: "x", Type: ScaleBand},
	)
	m := &rectMark{Insets: o.Insets, x1: "x", x2: "x", y1: "y1", y2: "y2"}
	m.MarkBase = NewMarkBase(data, channels, o.MarkOptions, StyleDefaults{AriaLabel: "bar"})
	return m
}

// CellOptions are the options of a Cell mark.
type CellOptions struct {
	MarkOptions
	Insets

	// X and Y are mapped through band scales. A cell spans the
	// frame along an axis with no channel.
	X, Y interface{}
}

// Cell returns a mark that draws a rectangle per row at the
// intersection of an x band and a y band, as for a heatmap.
func Cell(data *table.Table, o CellOptions) Mark {
	channels := definedChannels(
		Channel{Name: "x", Value: maybeValue(o.X), Scale: "x", Type: ScaleBand},
		Channel{Name: "y", Value: maybeValue(o.Y), Scale: "y", Type: ScaleBand},
	)
	m := &rectMark{Insets: o.Insets, x1: "x", x2: "x", y1: "y", y2: "y"}
	m.MarkBase = NewMarkBase(data, channels, o.MarkOptions, StyleDefaults{AriaLabel: "cell"})
	return m
}

// identityFill defaults a one-dimensional cell's fill to the data
// itself, unless the cell is stroked by a channel.
func identityFill(o *CellOptions) {
	if o.Fill != nil {
		return
	}
	if v, _ := maybeColorChannel(o.Stroke, nil); v.Defined() {
		return
	}
	o.Fill = Identity
}

// CellX returns a Cell with one cell per row along x. X defaults to
// the row index and Fill to the row's value.
func CellX(data *table.Table, o CellOptions) Mark {
	if o.X == nil {
		o.X = Index
	}
	identityFill(&o)
	return Cell(data, o)
}

// CellY is like CellX, along y.
func CellY(data *table.Table, o CellOptions) Mark {
	if o.Y == nil {
		o.Y = Index
	}
	identityFill(&o)
	return Cell(data, o)
}

// RectOptions are the options of a Rect mark.
type RectOptions struct {
	MarkOptions
	Insets

	// X1, X2, Y1, and Y2 bound each rectangle. A rectangle spans
	// the frame along an axis without both bounds.
	X1, X2, Y1, Y2 interface{}
}

// Rect returns a mark that draws rectangles with continuous bounds,
// as for a histogram.
func Rect(data *table.Table, o RectOptions) Mark {
	channels := []Channel{}
	m := &rectMark{Insets: o.Insets}
	if o.X1 != nil && o.X2 != nil {
		channels = append(channels,
			Channel{Name: "x1", Value: maybeValue(o.X1), Scale: "x"},
			Channel{Name: "x2", Value: maybeValue(o.X2), Scale: "x"})
		m.x1, m.x2 = "x1", "x2"
	}
	if o.Y1 != nil && o.Y2 != nil {
		channels = append(channels,
			Channel{Name: "y1", Value: maybeValue(o.Y1), Scale: "y"},
			Channel{Name: "y2", Value: maybeValue(o.Y2), Scale: "y"})
		m.y1, m.y2 = "y1", "y2"
	}
	m.MarkBase = NewMarkBase(data, channels, o.MarkOptions, StyleDefaults{AriaLabel: "rect"})
	return m
}
