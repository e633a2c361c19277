// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/aclements/go-gg/table"
	"github.com/markplot/markplot/svgnode"
)

// ruleMark draws a line per row. Along its position axis a rule sits
// at the value of the pos channel. Along the other axis it spans the
// interval lo..hi, the band of a band scale, or the whole frame, as
// a rect does.
type ruleMark struct {
	MarkBase
	vertical bool
	pos      string
	lo, hi   string
}

var ruleDefaults = StyleDefaults{
	NoFill: true,
	Stroke: "currentColor",
}

func (m *ruleMark) Render(index []int, scales Scales, vs Values, d Dimensions) *svgnode.Node {
	var g *svgnode.Node
	if m.vertical {
		g = m.markGroup(scales["x"], nil)
	} else {
		g = m.markGroup(nil, scales["y"])
	}
	fx, fy := applyFrameAnchor(m.FrameAnchor, d)
	for _, i := range index {
		el := svgnode.New("line")
		if m.vertical {
			x, ok := vs.float(m.pos, i)
			if !ok {
				x = fx
			}
			y1, y2, ok := span(m.lo, m.hi, scales["y"], i, vs, d.Top, d.Height-d.Bottom)
			if !ok {
				continue
			}
			el.SetNum("x1", x).SetNum("x2", x).SetNum("y1", y1).SetNum("y2", y2)
		} else {
			y, ok := vs.float(m.pos, i)
			if !ok {
				y = fy
			}
			x1, x2, ok := span(m.lo, m.hi, scales["x"], i, vs, d.Left, d.Width-d.Right)
			if !ok {
				continue
			}
			el.SetNum("x1", x1).SetNum("x2", x2).SetNum("y1", y).SetNum("y2", y)
		}
		applyDirectStyles(el, m.Style)
		g.Append(m.applyChannelStyles(el, i, vs))
	}
	return g
}

// RuleXOptions are the options of a RuleX mark.
type RuleXOptions struct {
	MarkOptions

	// X positions each rule horizontally. Y1 and Y2, if both set,
	// bound it vertically; otherwise it spans the frame.
	X, Y1, Y2 interface{}
}

// RuleX returns a mark that draws a vertical line per row, such as a
// reference line at a given x.
func RuleX(data *table.Table, o RuleXOptions) Mark {
	m := &ruleMark{vertical: true, pos: "x"}
	channels := definedChannels(Channel{Name: "x", Value: maybeValue(o.X), Scale: "x"})
	if o.Y1 != nil && o.Y2 != nil {
		channels = append(channels,
			Channel{Name: "y1", Value: maybeValue(o.Y1), Scale: "y"},
			Channel{Name: "y2", Value: maybeValue(o.Y2), Scale: "y"})
		m.lo, m.hi = "y1", "y2"
	}
	d := ruleDefaults
	d.AriaLabel = "rule"
	m.MarkBase = NewMarkBase(data, channels, o.MarkOptions, d)
	return m
}

// RuleYOptions are the options of a RuleY mark.
type RuleYOptions struct {
	MarkOptions

	// Y positions each rule vertically. X1 and X2, if both set,
	// bound it horizontally; otherwise it spans the frame.
	Y, X1, X2 interface{}
}

// RuleY returns a mark that draws a horizontal line per row.
func RuleY(data *table.Table, o RuleYOptions) Mark {
	m := &ruleMark{pos: "y"}
	channels := definedChannels(Channel{Name: "y", Value: maybeValue(o.Y), Scale: "y"})
	if o.X1 != nil && o.X2 != nil {
		channels = append(channels,
			Channel{Name: "x1", Value: maybeValue(o.X1), Scale: "x"},
			Channel{Name: "x2", Value: maybeValue(o.X2), Scale: "x"})
		m.lo, m.hi = "x1", "x2"
	}
	d := ruleDefaults
	d.AriaLabel = "rule"
	m.MarkBase = NewMarkBase(data, channels, o.MarkOptions, d)
	return m
}

// TickXOptions are the options of a TickX mark.
type TickXOptions struct {
	MarkOptions

	// X positions each tick. Y, if set, is mapped through a band
	// scale; otherwise ticks span the frame.
	X, Y interface{}
}

// TickX returns a mark that draws a short vertical line per row
// across a y band, as for a barcode plot.
func TickX(data *table.Table, o TickXOptions) Mark {
	m := &ruleMark{vertical: true, pos: "x", lo: "y", hi: "y"}
	channels := definedChannels(
		Channel{Name: "x", Value: maybeValue(o.X), Scale: "x"},
		Channel{Name: "y", Value: maybeValue(o.Y), Scale: "y", Type: ScaleBand},
	)
	d := ruleDefaults
	d.AriaLabel = "tick"
	m.MarkBase = NewMarkBase(data, channels, o.MarkOptions, d)
	return m
}

// TickYOptions are the options of a TickY mark.
type TickYOptions struct {
	MarkOptions

	// Y positions each tick. X, if set, is mapped through a band
	// scale; otherwise ticks span the frame.
	Y, X interface{}
}

// TickY is like TickX, with horizontal ticks across x bands.
func TickY(data *table.Table, o TickYOptions) Mark {
	m := &ruleMark{pos: "y", lo: "x", hi: "x"}
	channels := definedChannels(
		Channel{Name: "y", Value: maybeValue(o.Y), Scale: "y"},
		Channel{Name: "x", Value: maybeValue(o.X), Scale: "x", Type: ScaleBand},
	)
	d := ruleDefaults
	d.AriaLabel = "tick"
	m.MarkBase = NewMarkBase(data, channels, o.MarkOptions, d)
	return m
}
