// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strings"

	"github.com/markplot/markplot/svgnode"
)

// offset aligns 1px strokes to the pixel grid.
const offset = 0.5

// setAttr sets attribute name of el if value is not "".
func setAttr(el *svgnode.Node, name, value string) {
	if value != "" {
		el.Set(name, value)
	}
}

// applyIndirectStyles sets the constant style attributes that
// children of g inherit.
func applyIndirectStyles(g *svgnode.Node, s Style) {
	setAttr(g, "aria-label", s.AriaLabel)
	setAttr(g, "aria-description", s.AriaDescription)
	setAttr(g, "aria-hidden", s.AriaHidden)
	setAttr(g, "fill", s.Fill)
	setAttr(g, "fill-opacity", s.FillOpacity)
	setAttr(g, "stroke", s.Stroke)
	setAttr(g, "stroke-width", s.StrokeWidth)
	setAttr(g, "stroke-opacity", s.StrokeOpacity)
	setAttr(g, "stroke-linejoin", s.StrokeLinejoin)
	setAttr(g, "stroke-linecap", s.StrokeLinecap)
	setAttr(g, "stroke-miterlimit", s.StrokeMiterlimit)
	setAttr(g, "stroke-dasharray", s.StrokeDasharray)
	setAttr(g, "shape-rendering", s.ShapeRendering)
	if !s.strokeNone {
		// Paint order only matters under a stroke.
		setAttr(g, "paint-order", s.PaintOrder)
	}
}

// applyDirectStyles sets the constant style attributes that don't
// inherit, and so go on each element.
func applyDirectStyles(el *svgnode.Node, s Style) {
	if s.MixBlendMode != "" {
		el.Set("style", "mix-blend-mode:"+s.MixBlendMode)
	}
	setAttr(el, "opacity", s.Opacity)
}

// applyChannelStyles sets the per-datum style attributes of el for
// row i. It returns the node to add to the mark's group, which wraps
// el in a link if the mark has an href channel.
func (b *MarkBase) applyChannelStyles(el *svgnode.Node, i int, vs Values) *svgnode.Node {
	if v := vs.at("ariaLabel", i); defined(v) {
		el.Set("aria-label", b.format(vs["ariaLabel"])(v))
	}
	for _, attr := range channelAttrs {
		if v := vs.at(attr.channel, i); defined(v) {
			el.Set(attr.name, stringOf(v))
		}
	}
	b.applyTitle(el, i, vs)
	return b.applyHref(el, i, vs)
}

// applyGroupedChannelStyles is like applyChannelStyles for an element
// that represents a group of rows. Grouped channels hold one value
// per group, so the group's first row stands for it.
func (b *MarkBase) applyGroupedChannelStyles(el *svgnode.Node, group []int, vs Values) *svgnode.Node {
	if len(group) == 0 {
		return el
	}
	return b.applyChannelStyles(el, group[0], vs)
}

var channelAttrs = []struct{ channel, name string }{
	{"fill", "fill"},
	{"fillOpacity", "fill-opacity"},
	{"stroke", "stroke"},
	{"strokeOpacity", "stroke-opacity"},
	{"strokeWidth", "stroke-width"},
	{"opacity", "opacity"},
}

func (b *MarkBase) applyTitle(el *svgnode.Node, i int, vs Values) {
	v := vs.at("title", i)
	if !defined(v) {
		return
	}
	if text := b.format(vs["title"])(v); text != "" {
		el.Append(svgnode.New("title").SetText(text))
	}
}

func (b *MarkBase) applyHref(el *svgnode.Node, i int, vs Values) *svgnode.Node {
	href := stringOf(vs.at("href", i))
	if href == "" {
		return el
	}
	a := svgnode.New("a").Set("href", href)
	setAttr(a, "target", b.Style.Target)
	return a.Append(el)
}

// applyTransform translates g by dx and dy, the pixel-grid offset,
// and half the bandwidth of x and y if they're band scales. Either
// scale may be nil.
func applyTransform(g *svgnode.Node, x, y *Scale, dx, dy float64) {
	tx, ty := offset+dx, offset+dy
	if x != nil {
		tx += x.Bandwidth() / 2
	}
	if y != nil {
		ty += y.Bandwidth() / 2
	}
	if tx != 0 || ty != 0 {
		g.Set("transform", fmt.Sprintf("translate(%s,%s)", numString(tx), numString(ty)))
	}
}

// applyFrameAnchor returns the position of anchor within the frame
// of d.
func applyFrameAnchor(anchor string, d Dimensions) (x, y float64) {
	switch {
	case strings.HasSuffix(anchor, "left"):
		x = d.Left
	case strings.HasSuffix(anchor, "right"):
		x = d.Width - d.Right
	default:
		x = (d.Left + d.Width - d.Right) / 2
	}
	switch {
	case strings.HasPrefix(anchor, "top"):
		y = d.Top
	case strings.HasPrefix(anchor, "bottom"):
		y = d.Height - d.Bottom
	default:
		y = (d.Top + d.Height - d.Bottom) / 2
	}
	return
}

// markGroup returns the <g> element for a mark with its indirect
// styles and transform applied.
func (b *MarkBase) markGroup(x, y *Scale) *svgnode.Node {
	g := svgnode.New("g")
	applyIndirectStyles(g, b.Style)
	applyTransform(g, x, y, b.Dx, b.Dy)
	return g
}
