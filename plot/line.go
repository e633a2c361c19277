// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/markplot/markplot/svgnode"
)

// LineOptions are the options of a Line mark.
type LineOptions struct {
	MarkOptions

	X, Y interface{}

	// Z groups rows into separate lines. If nil, rows are grouped
	// by the Fill or Stroke channel, if either is a channel.
	Z interface{}
}

// LineMark draws a polyline through each group of rows.
type LineMark struct {
	MarkBase
}

// Line returns a mark that connects the rows of each group, in data
// order, with a line.
func Line(data *table.Table, o LineOptions) *LineMark {
	z := maybeValue(o.Z)
	if !z.Defined() {
		for _, paint := range []interface{}{o.Fill, o.Stroke} {
			if r, ok := paint.(Reduce); ok {
				paint = r.Value
			}
			if v, _ := maybeColorChannel(paint, nil); v.Defined() {
				z = v
				break
			}
		}
	}
	channels := definedChannels(
		Channel{Name: "x", Value: maybeValue(o.X), Scale: "x"},
		Channel{Name: "y", Value: maybeValue(o.Y), Scale: "y"},
		Channel{Name: "z", Value: z, Optional: true},
	)
	m := &LineMark{}
	m.MarkBase = NewMarkBase(data, channels, o.MarkOptions, StyleDefaults{
		AriaLabel:        "line",
		Fill:             "none",
		Stroke:           "currentColor",
		StrokeWidth:      1.5,
		StrokeMiterlimit: 1.0,
	})
	if z.Defined() {
		m.groupBy = "z"
	}
	return m
}

func (m *LineMark) Render(index []int, scales Scales, vs Values, d Dimensions) *svgnode.Node {
	g := m.markGroup(scales["x"], scales["y"])
	for _, group := range m.groups(index, vs) {
		if len(group) == 1 {
			Warning.Printf("line through one point")
		}
		var b strings.Builder
		for j, i := range group {
			x, _ := vs.float("x", i)
			y, _ := vs.float("y", i)
			if j == 0 {
				b.WriteString("M")
			} else {
				b.WriteString("L")
			}
			fmt.Fprintf(&b, "%s,%s", numString(x), numString(y))
		}
		el := svgnode.New("path").Set("d", b.String())
		applyDirectStyles(el, m.Style)
		g.Append(m.applyGroupedChannelStyles(el, group, vs))
	}
	return g
}

// groups partitions index by the mark's grouping channel.
func (b *MarkBase) groups(index []int, vs Values) [][]int {
	if b.groupBy == "" {
		if len(index) == 0 {
			return nil
		}
		return [][]int{index}
	}
	keys := make([]interface{}, len(index))
	for j, i := range index {
		keys[j] = vs.at(b.groupBy, i)
	}
	var out [][]int
	for _, g := range groupRows(keys) {
		rows := make([]int, len(g))
		for j, k := range g {
			rows[j] = index[k]
		}
		out = append(out, rows)
	}
	return out
}
