// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"

	"github.com/markplot/markplot/svgnode"
)

// AxisOptions are the options of an axis mark.
type AxisOptions struct {
	// Anchor is the side of the frame the axis is on: "bottom"
	// (the default) or "top" for AxisX, "left" (the default) or
	// "right" for AxisY.
	Anchor string

	// Label overrides the scale's label. NoLabel omits it.
	Label   string
	NoLabel bool

	// TickSize is the length of each tick, in pixels (default 6).
	TickSize float64

	// Ticks is the approximate number of ticks. By default there
	// is about one tick every 80 pixels for x, 35 for y.
	Ticks int

	// Grid draws a faint line across the frame at each tick.
	Grid bool
}

// AxisMark draws the ticks and labels of a positional scale.
type AxisMark struct {
	MarkBase
	key string
	o   AxisOptions
}

// AxisX returns a mark that draws the x axis.
func AxisX(o AxisOptions) *AxisMark {
	if o.Anchor == "" {
		o.Anchor = "bottom"
	}
	return newAxis("x", o)
}

// AxisY returns a mark that draws the y axis.
func AxisY(o AxisOptions) *AxisMark {
	if o.Anchor == "" {
		o.Anchor = "left"
	}
	return newAxis("y", o)
}

func newAxis(key string, o AxisOptions) *AxisMark {
	if o.TickSize == 0 {
		o.TickSize = 6
	}
	m := &AxisMark{key: key, o: o}
	m.MarkBase = NewMarkBase(nil, nil, MarkOptions{}, StyleDefaults{
		AriaLabel: key + "-axis",
		NoFill:    true,
		NoStroke:  true,
	})
	valid := map[string]bool{"x": o.Anchor == "bottom" || o.Anchor == "top", "y": o.Anchor == "left" || o.Anchor == "right"}
	if !valid[key] {
		m.err = configErrorf(key+"Axis", ErrInvalidOption, "anchor %q", o.Anchor)
	}
	return m
}

func (m *AxisMark) Render(index []int, scales Scales, vs Values, d Dimensions) *svgnode.Node {
	s := scales[m.key]
	if s == nil {
		return nil
	}
	o := m.o
	n := o.Ticks
	if n == 0 {
		if m.key == "x" {
			n = int((d.Width - d.Left - d.Right) / 80)
		} else {
			n = int((d.Height - d.Top - d.Bottom) / 35)
		}
	}
	ticks := s.Ticks(n)
	format := s.TickFormat()

	g := svgnode.New("g").Set("aria-label", m.Style.AriaLabel).Set("fill", "none")
	dir := 1.0
	switch o.Anchor {
	case "bottom":
		g.Set("transform", fmt.Sprintf("translate(0,%s)", numString(d.Height-d.Bottom)))
	case "top":
		g.Set("transform", fmt.Sprintf("translate(0,%s)", numString(d.Top)))
		dir = -1
	case "left":
		g.Set("transform", fmt.Sprintf("translate(%s,0)", numString(d.Left)))
		dir = -1
	case "right":
		g.Set("transform", fmt.Sprintf("translate(%s,0)", numString(d.Width-d.Right)))
	}
	if m.key == "x" {
		g.Set("text-anchor", "middle")
	} else if dir < 0 {
		g.Set("text-anchor", "end")
	} else {
		g.Set("text-anchor", "start")
	}

	for _, t := range ticks {
		p, ok := toFloat(s.Map(t))
		if !ok {
			continue
		}
		p += s.Bandwidth()/2 + offset
		tick := svgnode.New("g").Set("class", "tick")
		line := svgnode.New("line").Set("stroke", "currentColor")
		label := svgnode.New("text").Set("fill", "currentColor").SetText(format(t))
		size := dir * o.TickSize
		if m.key == "x" {
			tick.Set("transform", fmt.Sprintf("translate(%s,0)", numString(p)))
			line.SetNum("y2", size)
			label.SetNum("y", size+dir*3)
			if dir > 0 {
				label.Set("dy", "0.71em")
			}
		} else {
			tick.Set("transform", fmt.Sprintf("translate(0,%s)", numString(p)))
			line.SetNum("x2", size)
			label.SetNum("x", size+dir*3).Set("dy", "0.32em")
		}
		tick.Append(line, label)
		if o.Grid {
			grid := svgnode.New("line").Set("stroke", "currentColor").Set("stroke-opacity", "0.1")
			if m.key == "x" {
				grid.SetNum("y2", -dir*(d.Height-d.Top-d.Bottom))
			} else {
				grid.SetNum("x2", -dir*(d.Width-d.Left-d.Right))
			}
			tick.Append(grid)
		}
		g.Append(tick)
	}

	label := s.Label
	if o.Label != "" {
		label = o.Label
	}
	if label != "" && !o.NoLabel {
		text := svgnode.New("text").Set("class", "label").Set("fill", "currentColor")
		if m.key == "x" {
			if !s.IsOrdinal() {
				label += " →"
			}
			text.SetNum("x", d.Width-d.Right).SetNum("y", dir*(d.Bottom-3)).Set("text-anchor", "end")
			if dir < 0 {
				text.SetNum("y", -(d.Top-3)).Set("dy", "0.71em")
			}
		} else {
			if !s.IsOrdinal() {
				label = "↑ " + label
			}
			text.SetNum("x", -dir*3).SetNum("y", d.Top-14).Set("dy", "0.71em").Set("text-anchor", "start")
			if o.Anchor == "left" {
				text.SetNum("x", -d.Left+3)
			}
		}
		text.SetText(label)
		g.Append(text)
	}
	return g
}
