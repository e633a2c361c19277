// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/aclements/go-gg/table"
	"github.com/markplot/markplot/svgnode"
)

// ImageOptions are the options of an Image mark.
type ImageOptions struct {
	MarkOptions

	X, Y interface{}

	// Src is the image source. A string that starts with "./",
	// "../", "/", or a blob, data, file, http, or https scheme is a
	// constant URL; any other string is a field.
	Src interface{}

	// Width and Height are in pixels, either constants or
	// channels. Each defaults to the other, or to 16.
	Width, Height interface{}

	PreserveAspectRatio string
	CrossOrigin         string
}

// ImageMark draws an image per row.
type ImageMark struct {
	MarkBase
	src           string
	width, height float64
	o             ImageOptions
}

// Image returns a mark that draws an image per row, centered on x
// and y.
func Image(data *table.Table, o ImageOptions) *ImageMark {
	w, h := o.Width, o.Height
	if w == nil {
		w = h
	}
	if h == nil {
		h = w
	}
	vsrc, csrc := maybePathChannel(o.Src)
	vw, cw := maybeNumberChannel(w, 16.0)
	vh, ch := maybeNumberChannel(h, 16.0)
	channels := definedChannels(
		Channel{Name: "x", Value: maybeValue(o.X), Scale: "x"},
		Channel{Name: "y", Value: maybeValue(o.Y), Scale: "y"},
		Channel{Name: "width", Value: vw, Filter: positive},
		Channel{Name: "height", Value: vh, Filter: positive},
		Channel{Name: "src", Value: vsrc},
	)
	m := &ImageMark{src: csrc, o: o}
	m.width, _ = cw.(float64)
	m.height, _ = ch.(float64)
	m.MarkBase = NewMarkBase(data, channels, o.MarkOptions, StyleDefaults{
		AriaLabel: "image",
		NoFill:    true,
		NoStroke:  true,
	})
	return m
}

func (m *ImageMark) Render(index []int, scales Scales, vs Values, d Dimensions) *svgnode.Node {
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
		w, h := m.width, m.height
		if v, ok := vs.float("width", i); ok {
			w = v
		}
		if v, ok := vs.float("height", i); ok {
			h = v
		}
		src := m.src
		if v := vs.at("src", i); v != nil {
			src = stringOf(v)
		}
		el := svgnode.New("image").
			SetNum("x", x-w/2).
			SetNum("y", y-h/2).
			SetNum("width", w).
			SetNum("height", h)
		setAttr(el, "href", src)
		setAttr(el, "preserveAspectRatio", m.o.PreserveAspectRatio)
		setAttr(el, "crossorigin", m.o.CrossOrigin)
		applyDirectStyles(el, m.Style)
		g.Append(m.applyChannelStyles(el, i, vs))
	}
	return g
}
