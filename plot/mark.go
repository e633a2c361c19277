// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/aclements/go-gg/table"
	"github.com/markplot/markplot/svgnode"
	"golang.org/x/text/language"
)

// A Mark is a geometric representation of data, such as a dot or a
// bar.
type Mark interface {
	// Base returns the mark's data, channels, and style.
	Base() *MarkBase

	// Render returns the SVG for the given rows of the mark's
	// data. By the time Render is called every scale is
	// finalized. values holds the mark's channels, scaled where
	// the channel has a scale. Render may return nil to draw
	// nothing.
	Render(index []int, scales Scales, values Values, dim Dimensions) *svgnode.Node
}

// MarkOptions are the options common to all marks.
type MarkOptions struct {
	StyleOptions

	// Dx and Dy translate the mark, in pixels.
	Dx, Dy float64

	// FrameAnchor positions marks along an axis that has no
	// channel, relative to the plot frame. It is one of "middle"
	// (the default), "top-left", "top", "top-right", "right",
	// "bottom-right", "bottom", "bottom-left", or "left".
	FrameAnchor string
}

// MarkBase is the state common to all marks. Mark implementations
// embed it.
type MarkBase struct {
	// Data is the mark's table. It may be nil, in which case the
	// mark has as many rows as its first array channel, or one
	// row.
	Data *table.Table

	Channels []Channel
	Style    Style

	Dx, Dy      float64
	FrameAnchor string

	// groupBy names a channel whose values partition the rows for
	// grouped marks.
	groupBy string

	// err is a configuration error detected when the mark was
	// constructed. It's reported when the mark is plotted.
	err error

	locale language.Tag
}

// NewMarkBase resolves o against defaults and returns the mark state
// for data and channels.
func NewMarkBase(data *table.Table, channels []Channel, o MarkOptions, d StyleDefaults) MarkBase {
	b := MarkBase{Data: data, Dx: o.Dx, Dy: o.Dy, FrameAnchor: o.FrameAnchor}
	if !frameAnchors[o.FrameAnchor] {
		b.err = configErrorf("frameAnchor", ErrInvalidOption, "%q", o.FrameAnchor)
	}
	style, all, err := resolveStyle(o.StyleOptions, channels, d)
	if b.err == nil {
		b.err = err
	}
	b.Style, b.Channels = style, all
	return b
}

// Base returns b. It lets MarkBase satisfy part of Mark.
func (b *MarkBase) Base() *MarkBase {
	return b
}

// Err returns the configuration error detected when the mark was
// constructed, if any.
func (b *MarkBase) Err() error {
	return b.err
}

// Channel returns the channel called name, or nil.
func (b *MarkBase) Channel(name string) *Channel {
	for i := range b.Channels {
		if b.Channels[i].Name == name {
			return &b.Channels[i]
		}
	}
	return nil
}

// definedChannels returns the channels of cs that have a value.
func definedChannels(cs ...Channel) []Channel {
	var out []Channel
	for _, c := range cs {
		if c.Value.Defined() {
			out = append(out, c)
		}
	}
	return out
}

// rows returns the number of rows of the mark's data.
func (b *MarkBase) rows() int {
	if b.Data != nil {
		return b.Data.Len()
	}
	for _, c := range b.Channels {
		if n := c.Value.length(); n >= 0 {
			return n
		}
	}
	return 1
}

// evaluate computes every channel of b over its data.
func (b *MarkBase) evaluate() []channelValues {
	n := b.rows()
	out := make([]channelValues, len(b.Channels))
	for i := range b.Channels {
		out[i] = channelValues{&b.Channels[i], b.Channels[i].Value.eval(b.Data, n)}
	}
	return out
}

// filter returns the rows of base, in order, whose required channels
// are all defined and pass their filters. raw holds the evaluated
// values and scaled the scaled values.
func (b *MarkBase) filter(base []int, raw, scaled Values) []int {
	var index []int
rows:
	for _, i := range base {
		for _, c := range b.Channels {
			v := raw.at(c.Name, i)
			if !defined(v) {
				if c.Optional {
					continue
				}
				continue rows
			}
			if c.Filter != nil && !c.Filter(v) {
				continue rows
			}
			if !c.Optional && c.Scale != "" {
				if _, ok := scaled[c.Name]; ok && !defined(scaled.at(c.Name, i)) {
					continue rows
				}
			}
		}
		index = append(index, i)
	}
	return index
}

// format returns the text formatter for the values vs.
func (b *MarkBase) format(vs []interface{}) func(interface{}) string {
	tag := b.locale
	if tag == language.Und {
		tag = DefaultLocale
	}
	return textFormat(vs, tag)
}
