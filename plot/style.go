// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"regexp"
)

// StyleOptions are the presentation options common to all marks.
//
// Fill and Stroke accept a CSS color string or color.Color for a
// constant, or anything else (typically a field name) for a channel
// mapped through the color scale. FillOpacity, StrokeOpacity,
// StrokeWidth, and Opacity accept a number for a constant, or a
// channel. Title, Href, and AriaLabel are always channels.
//
// On grouped marks, the channel options may be a Reduce.
type StyleOptions struct {
	Title           interface{}
	Href            interface{}
	Target          string
	AriaLabel       interface{}
	AriaDescription string
	AriaHidden      string

	Fill             interface{}
	FillOpacity      interface{}
	Stroke           interface{}
	StrokeWidth      interface{}
	StrokeOpacity    interface{}
	StrokeLinejoin   string
	StrokeLinecap    string
	StrokeMiterlimit interface{}
	StrokeDasharray  interface{}
	Opacity          interface{}
	MixBlendMode     string
	PaintOrder       string
	ShapeRendering   string
}

// StyleDefaults are a mark kind's default style.
type StyleDefaults struct {
	// AriaLabel is the mark's group label, such as "dot".
	AriaLabel string

	// Fill and Stroke are the default constant paints. "" means
	// "currentColor" for Fill and "none" for Stroke.
	Fill, Stroke string

	// NoFill and NoStroke mean the mark doesn't support fill or
	// stroke at all. The corresponding options are ignored.
	NoFill, NoStroke bool

	FillOpacity      interface{}
	StrokeOpacity    interface{}
	StrokeWidth      interface{}
	StrokeMiterlimit interface{}
	StrokeLinecap    string
	StrokeLinejoin   string
	PaintOrder       string
}

// Style is a resolved mark style. Each field is an SVG attribute
// value, or "" if the attribute is absent because it's unset or
// equal to its implied value.
type Style struct {
	Fill             string
	FillOpacity      string
	Stroke           string
	StrokeWidth      string
	StrokeOpacity    string
	StrokeLinejoin   string
	StrokeLinecap    string
	StrokeMiterlimit string
	StrokeDasharray  string
	Opacity          string
	MixBlendMode     string
	PaintOrder       string
	ShapeRendering   string
	Target           string
	AriaLabel        string
	AriaDescription  string
	AriaHidden       string

	// fillNone and strokeNone report whether the resolved constant
	// fill or stroke is "none".
	fillNone, strokeNone bool
}

var noneRE = regexp.MustCompile(`(?i)^\s*none\s*$`)

// isNone reports whether a paint option is absent or the constant
// "none". Channels are never none.
func isNone(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return noneRE.MatchString(v)
	case Value:
		if v.IsConstant() {
			return isNone(v.constant)
		}
		return !v.Defined()
	}
	return false
}

// resolveStyle resolves the style options of a mark against the
// mark's defaults. It returns the resolved constant style and the
// mark's channels extended with the style's channels.
//
// A mark that fills by default stops filling if the user asks for a
// stroke, and a mark that strokes by default stops stroking if the
// user asks for a fill.
func resolveStyle(o StyleOptions, channels []Channel, d StyleDefaults) (Style, []Channel, error) {
	out := append([]Channel(nil), channels...)

	var reduceErr error
	unwrap := func(name string, raw interface{}) (interface{}, reducer) {
		v, f, err := unwrapReduce(name, raw)
		if err != nil && reduceErr == nil {
			reduceErr = err
		}
		return v, f
	}
	title, rtitle := unwrap("title", o.Title)
	ariaLabel, rariaLabel := unwrap("ariaLabel", o.AriaLabel)
	fill, rfill := unwrap("fill", o.Fill)
	fillOpacity, rfillOpacity := unwrap("fillOpacity", o.FillOpacity)
	stroke, rstroke := unwrap("stroke", o.Stroke)
	strokeOpacity, rstrokeOpacity := unwrap("strokeOpacity", o.StrokeOpacity)
	strokeWidth, rstrokeWidth := unwrap("strokeWidth", o.StrokeWidth)
	if reduceErr != nil {
		return Style{}, nil, reduceErr
	}

	var defFill, defStroke interface{} = "currentColor", "none"
	if d.Fill != "" {
		defFill = d.Fill
	}
	if d.Stroke != "" {
		defStroke = d.Stroke
	}
	if d.NoFill {
		defFill, fill, fillOpacity = nil, nil, nil
	}
	if d.NoStroke {
		defStroke, stroke, strokeOpacity, strokeWidth = nil, nil, nil, nil
	}

	if isNone(defFill) {
		if !isNone(defStroke) && !isNone(fill) {
			defStroke = "none"
		}
	} else {
		if isNone(defStroke) && !isNone(stroke) {
			defFill = "none"
		}
	}

	vfill, cfill := maybeColorChannel(fill, defFill)
	if !vfill.Defined() && cfill == nil {
		cfill = "none"
	}
	vfillOpacity, cfillOpacity := maybeNumberChannel(fillOpacity, d.FillOpacity)
	vstroke, cstroke := maybeColorChannel(stroke, defStroke)
	if !vstroke.Defined() && cstroke == nil {
		cstroke = "none"
	}
	vstrokeOpacity, cstrokeOpacity := maybeNumberChannel(strokeOpacity, d.StrokeOpacity)
	vopacity, copacity := maybeNumberChannel(o.Opacity, nil)

	linecap, linejoin := o.StrokeLinecap, o.StrokeLinejoin
	miterlimit, paintOrder := o.StrokeMiterlimit, o.PaintOrder
	if cstroke != "none" {
		if strokeWidth == nil {
			strokeWidth = d.StrokeWidth
		}
		if linecap == "" {
			linecap = d.StrokeLinecap
		}
		if linejoin == "" {
			linejoin = d.StrokeLinejoin
		}
		if miterlimit == nil {
			miterlimit = d.StrokeMiterlimit
		}
		if cfill != "none" && paintOrder == "" {
			paintOrder = d.PaintOrder
		}
	}
	vstrokeWidth, cstrokeWidth := maybeNumberChannel(strokeWidth, nil)

	var s Style
	if !d.NoFill {
		s.Fill = impliedString(cfill, "currentColor")
		s.FillOpacity = impliedNumber(cfillOpacity, 1)
		s.fillNone = cfill == "none"
	}
	if !d.NoStroke {
		s.Stroke = impliedString(cstroke, "none")
		s.StrokeWidth = impliedNumber(cstrokeWidth, 1)
		s.StrokeOpacity = impliedNumber(cstrokeOpacity, 1)
		s.StrokeLinejoin = impliedString(linejoin, "miter")
		s.StrokeLinecap = impliedString(linecap, "butt")
		s.StrokeMiterlimit = impliedNumber(miterlimit, 4)
		s.StrokeDasharray = stringOf(o.StrokeDasharray)
		s.strokeNone = cstroke == "none"
	}
	s.Target = o.Target
	s.AriaLabel = d.AriaLabel
	s.AriaDescription = o.AriaDescription
	s.AriaHidden = o.AriaHidden
	s.Opacity = impliedNumber(copacity, 1)
	s.MixBlendMode = impliedString(o.MixBlendMode, "normal")
	s.PaintOrder = impliedString(paintOrder, "normal")
	s.ShapeRendering = impliedString(o.ShapeRendering, "auto")

	add := func(c Channel) {
		if c.Value.Defined() {
			c.Optional = true
			out = append(out, c)
		}
	}
	add(Channel{Name: "title", Value: maybeValue(title), reduce: rtitle})
	add(Channel{Name: "href", Value: maybeValue(o.Href)})
	add(Channel{Name: "ariaLabel", Value: maybeValue(ariaLabel), reduce: rariaLabel})
	add(Channel{Name: "fill", Value: vfill, Scale: "color", reduce: rfill})
	add(Channel{Name: "fillOpacity", Value: vfillOpacity, Scale: "opacity", reduce: rfillOpacity})
	add(Channel{Name: "stroke", Value: vstroke, Scale: "color", reduce: rstroke})
	add(Channel{Name: "strokeOpacity", Value: vstrokeOpacity, Scale: "opacity", reduce: rstrokeOpacity})
	add(Channel{Name: "strokeWidth", Value: vstrokeWidth, reduce: rstrokeWidth})
	add(Channel{Name: "opacity", Value: vopacity, Scale: "opacity"})
	return s, out, nil
}

// impliedString returns v as an attribute value, or "" if v is unset
// or equals the attribute's implied value.
func impliedString(v interface{}, implied string) string {
	s := stringOf(v)
	if s == implied {
		return ""
	}
	return s
}

// impliedNumber is like impliedString for numeric attributes.
func impliedNumber(v interface{}, implied float64) string {
	if v == nil {
		return ""
	}
	if x, ok := toFloat(v); ok && isNumber(v) {
		if x == implied {
			return ""
		}
		return numString(x)
	}
	return stringOf(v)
}
