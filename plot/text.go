// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/markplot/markplot/svgnode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextOptions are the options of a Text mark.
type TextOptions struct {
	MarkOptions

	X, Y interface{}

	// Text is the text of each row. It defaults to the row index.
	Text interface{}

	// FontSize is in pixels. 0 inherits the plot's font size.
	FontSize   float64
	FontFamily string
	FontStyle  string
	FontWeight string

	// TextAnchor is "start", "middle" (the default), or "end".
	TextAnchor string

	// LineAnchor is "top", "middle" (the default), or "bottom".
	LineAnchor string

	// Rotate rotates the text clockwise, in degrees.
	Rotate float64

	// LineWidth, if positive, wraps text to lines of at most this
	// many ems.
	LineWidth float64
}

// TextMark draws a text label per row.
type TextMark struct {
	MarkBase
	o TextOptions
}

// Text returns a mark that draws a text label per row.
func Text(data *table.Table, o TextOptions) *TextMark {
	text := maybeValue(o.Text)
	if !text.Defined() {
		text = Index
	}
	channels := definedChannels(
		Channel{Name: "x", Value: maybeValue(o.X), Scale: "x"},
		Channel{Name: "y", Value: maybeValue(o.Y), Scale: "y"},
		Channel{Name: "text", Value: text},
	)
	m := &TextMark{o: o}
	m.MarkBase = NewMarkBase(data, channels, o.MarkOptions, StyleDefaults{
		AriaLabel:      "text",
		StrokeLinejoin: "round",
		StrokeWidth:    3.0,
		PaintOrder:     "stroke",
	})
	switch o.TextAnchor {
	case "", "start", "middle", "end":
	default:
		m.err = configErrorf("textAnchor", ErrInvalidOption, "%q", o.TextAnchor)
	}
	switch o.LineAnchor {
	case "", "top", "middle", "bottom":
	default:
		m.err = configErrorf("lineAnchor", ErrInvalidOption, "%q", o.LineAnchor)
	}
	return m
}

// defaultFontSize is the font size of the plot root.
const defaultFontSize = 10

func (m *TextMark) Render(index []int, scales Scales, vs Values, d Dimensions) *svgnode.Node {
	o := m.o
	g := m.markGroup(scales["x"], scales["y"])
	if o.TextAnchor != "" && o.TextAnchor != "middle" {
		g.Set("text-anchor", o.TextAnchor)
	}
	if o.FontSize != 0 {
		g.SetNum("font-size", o.FontSize)
	}
	setAttr(g, "font-family", o.FontFamily)
	setAttr(g, "font-style", o.FontStyle)
	setAttr(g, "font-weight", o.FontWeight)

	format := m.format(vs["text"])
	fontSize := o.FontSize
	if fontSize == 0 {
		fontSize = defaultFontSize
	}
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
		el := svgnode.New("text")
		if o.Rotate != 0 {
			el.Set("transform", fmt.Sprintf("translate(%s,%s) rotate(%s)", numString(x), numString(y), numString(o.Rotate)))
		} else {
			el.SetNum("x", x).SetNum("y", y)
		}

		var lines []string
		for _, line := range strings.Split(format(vs.at("text", i)), "\n") {
			if o.LineWidth > 0 {
				lines = append(lines, wrapText(line, o.LineWidth*fontSize, fontSize)...)
			} else {
				lines = append(lines, line)
			}
		}
		if len(lines) == 1 {
			setAttr(el, "dy", lineAnchorDy(o.LineAnchor, 1))
			el.SetText(lines[0])
		} else {
			for j, line := range lines {
				span := svgnode.New("tspan").SetText(line)
				if o.Rotate != 0 {
					span.Set("x", "0")
				} else {
					span.SetNum("x", x)
				}
				if j == 0 {
					setAttr(span, "dy", lineAnchorDy(o.LineAnchor, len(lines)))
				} else {
					span.Set("dy", "1.2em")
				}
				el.Append(span)
			}
		}
		applyDirectStyles(el, m.Style)
		g.Append(m.applyChannelStyles(el, i, vs))
	}
	return g
}

// lineAnchorDy returns the baseline shift of the first of n lines.
func lineAnchorDy(anchor string, n int) string {
	var em float64
	switch anchor {
	case "top":
		em = 0.71
	case "bottom":
		em = -1.2 * float64(n-1)
	default:
		em = 0.32 - 0.6*float64(n-1)
	}
	if em == 0 {
		return ""
	}
	return numString(em) + "em"
}

// textWidth estimates the width of s in pixels at fontSize.
func textWidth(s string, fontSize float64) float64 {
	face := basicfont.Face7x13
	adv := font.MeasureString(face, s)
	return float64(adv) / 64 * fontSize / float64(face.Height)
}

// wrapText breaks s at spaces into lines no wider than width pixels.
// A single word wider than width gets its own line.
func wrapText(s string, width, fontSize float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{s}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if textWidth(line+" "+w, fontSize) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	return append(lines, line)
}
