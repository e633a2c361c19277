// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/markplot/markplot/svgnode"
)

// DotOptions are the options of a Dot mark.
type DotOptions struct {
	MarkOptions

	// X and Y position the dots. If either is nil, the dots are
	// placed by the frame anchor along that axis.
	X, Y interface{}

	// R is the radius, either a constant number of pixels
	// (default 3) or a channel mapped through the r scale.
	R interface{}

	// Symbol is the dot shape, either a constant symbol name
	// (default "circle") or a channel mapped through the symbol
	// scale. The symbols are circle, cross, diamond, square, star,
	// triangle, and wye.
	Symbol interface{}
}

// DotMark draws a circle or symbol per row.
type DotMark struct {
	MarkBase
	r      float64
	symbol string
}

// Dot returns a mark that draws a dot per row of data.
func Dot(data *table.Table, o DotOptions) *DotMark {
	vr, cr := maybeNumberChannel(o.R, 3.0)
	channels := definedChannels(
		Channel{Name: "x", Value: maybeValue(o.X), Scale: "x"},
		Channel{Name: "y", Value: maybeValue(o.Y), Scale: "y"},
		Channel{Name: "r", Value: vr, Scale: "r", Filter: positive},
	)
	m := &DotMark{symbol: "circle"}
	switch sym := o.Symbol.(type) {
	case nil:
	case string:
		if _, ok := symbols[strings.ToLower(sym)]; ok {
			m.symbol = strings.ToLower(sym)
			break
		}
		channels = append(channels, Channel{Name: "symbol", Value: Field(sym), Scale: "symbol"})
	default:
		channels = append(channels, Channel{Name: "symbol", Value: maybeValue(sym), Scale: "symbol"})
	}
	m.MarkBase = NewMarkBase(data, channels, o.MarkOptions, StyleDefaults{
		AriaLabel:   "dot",
		Fill:        "none",
		Stroke:      "currentColor",
		StrokeWidth: 1.5,
	})
	if x, ok := cr.(float64); ok {
		m.r = x
	}
	return m
}

func (m *DotMark) Render(index []int, scales Scales, vs Values, d Dimensions) *svgnode.Node {
	g := m.markGroup(scales["x"], scales["y"])
	fx, fy := applyFrameAnchor(m.FrameAnchor, d)
	for _, i := range index {
		x, ok := vs.float("x", i)
		if !ok {
			x = fx
		}
		y, ok := vs.float("y", i)
		if !ok {
			y = fy
		}
		r := m.r
		if v, ok := vs.float("r", i); ok {
			r = v
		}
		if r <= 0 {
			continue
		}
		symbol := m.symbol
		if v, ok := vs.at("symbol", i).(string); ok {
			symbol = v
		}

		var el *svgnode.Node
		if path, ok := symbolPath(symbol, r); ok {
			el = svgnode.New("path").
				Set("transform", fmt.Sprintf("translate(%s,%s)", numString(x), numString(y))).
				Set("d", path)
		} else {
			el = svgnode.New("circle").SetNum("cx", x).SetNum("cy", y).SetNum("r", r)
		}
		applyDirectStyles(el, m.Style)
		g.Append(m.applyChannelStyles(el, i, vs))
	}
	return g
}

// symbols maps symbol names to their outlines, as polygons of unit
// size centered on the origin. A nil outline is a circle.
var symbols = map[string][][2]float64{
	"circle":   nil,
	"cross":    {{-3, -1}, {-1, -1}, {-1, -3}, {1, -3}, {1, -1}, {3, -1}, {3, 1}, {1, 1}, {1, 3}, {-1, 3}, {-1, 1}, {-3, 1}},
	"diamond":  {{0, -1.5}, {1, 0}, {0, 1.5}, {-1, 0}},
	"square":   {{-1, -1}, {1, -1}, {1, 1}, {-1, 1}},
	"star":     starOutline(),
	"triangle": {{0, -1.2}, {1.04, 0.6}, {-1.04, 0.6}},
	"wye":      {{-0.25, -1.5}, {0.25, -1.5}, {0.25, -0.2}, {1.3, 0.45}, {1.05, 0.9}, {0, 0.25}, {-1.05, 0.9}, {-1.3, 0.45}, {-0.25, -0.2}},
}

func starOutline() [][2]float64 {
	var pts [][2]float64
	for i := 0; i < 10; i++ {
		r := 1.2
		if i%2 == 1 {
			r = 0.5
		}
		a := math.Pi * float64(i) / 5
		pts = append(pts, [2]float64{r * math.Sin(a), -r * math.Cos(a)})
	}
	return pts
}

// symbolPath returns the SVG path of symbol with radius r, or false
// if symbol is drawn as a circle.
func symbolPath(symbol string, r float64) (string, bool) {
	outline, ok := symbols[symbol]
	if !ok {
		Warning.Printf("unknown symbol %q", symbol)
		return "", false
	}
	if outline == nil {
		return "", false
	}
	scale := r
	if symbol == "cross" {
		scale = r / 3
	}
	var b strings.Builder
	for i, p := range outline {
		if i == 0 {
			b.WriteString("M")
		} else {
			b.WriteString("L")
		}
		fmt.Fprintf(&b, "%s,%s", numString(p[0]*scale), numString(p[1]*scale))
	}
	b.WriteString("Z")
	return b.String(), true
}
