// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotspec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/kballard/go-shellquote"
	"github.com/markplot/markplot/plot"
	"gopkg.in/yaml.v3"
)

// A MarkSpec is one mark: its "type" and its options.
type MarkSpec map[string]interface{}

// Type returns the mark's type, such as "dot".
func (ms MarkSpec) Type() string {
	s, _ := ms["type"].(string)
	return s
}

// Build returns the mark described by ms, drawing data.
func (ms MarkSpec) Build(data *table.Table) (plot.Mark, error) {
	typ := ms.Type()
	mk, ok := markTypes[typ]
	if !ok {
		return nil, fmt.Errorf("unknown mark type %q", typ)
	}
	a := &args{spec: ms, used: map[string]bool{"type": true}}
	m := mk(data, a)
	if a.err != nil {
		return nil, fmt.Errorf("%s: %w", typ, a.err)
	}
	var unknown []string
	for k := range ms {
		if !a.used[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%s: unknown option %s", typ, strings.Join(unknown, ", "))
	}
	return m, nil
}

// ParseMarkString splits desc into words like a shell and parses
// them with ParseMark.
func ParseMarkString(desc string) (MarkSpec, error) {
	words, err := shellquote.Split(desc)
	if err != nil {
		return nil, err
	}
	return ParseMark(words)
}

// ParseMark parses a mark from words of the form
//
//	type key=value...
//
// such as "dot x=weight y=height r=4". Each value is a YAML flow
// value, so "r=4" is a number and "x=[1,2,3]" is a list.
func ParseMark(words []string) (MarkSpec, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("empty mark description")
	}
	ms := MarkSpec{"type": words[0]}
	for _, w := range words[1:] {
		k, v, ok := strings.Cut(w, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("malformed mark option %q; want key=value", w)
		}
		var val interface{}
		if err := yaml.Unmarshal([]byte(v), &val); err != nil {
			return nil, fmt.Errorf("mark option %s: %w", k, err)
		}
		if val == nil && v != "" {
			// YAML reads "~" and "#f00" as null; keep them as written.
			val = v
		}
		ms[k] = val
	}
	return ms, nil
}

var markTypes map[string]func(data *table.Table, a *args) plot.Mark

func init() {
	markTypes = map[string]func(data *table.Table, a *args) plot.Mark{
		"dot": func(data *table.Table, a *args) plot.Mark {
			return plot.Dot(data, plot.DotOptions{
				MarkOptions: a.markOptions(),
				X:           a.get("x"),
				Y:           a.get("y"),
				R:           a.get("r"),
				Symbol:      a.get("symbol"),
			})
		},
		"line": func(data *table.Table, a *args) plot.Mark {
			return plot.Line(data, plot.LineOptions{
				MarkOptions: a.markOptions(),
				X:           a.get("x"),
				Y:           a.get("y"),
				Z:           a.get("z"),
			})
		},
		"barX": func(data *table.Table, a *args) plot.Mark {
			return plot.BarX(data, plot.BarXOptions{
				MarkOptions: a.markOptions(),
				Insets:      a.insets(),
				X:           a.get("x"),
				X1:          a.get("x1"),
				X2:          a.get("x2"),
				Y:           a.get("y"),
			})
		},
		"barY": func(data *table.Table, a *args) plot.Mark {
			return plot.BarY(data, plot.BarYOptions{
				MarkOptions: a.markOptions(),
				Insets:      a.insets(),
				Y:           a.get("y"),
				Y1:          a.get("y1"),
				Y2:          a.get("y2"),
				X:           a.get("x"),
			})
		},
		"cell":  cellMark(plot.Cell),
		"cellX": cellMark(plot.CellX),
		"cellY": cellMark(plot.CellY),
		"rect": func(data *table.Table, a *args) plot.Mark {
			return plot.Rect(data, plot.RectOptions{
				MarkOptions: a.markOptions(),
				Insets:      a.insets(),
				X1:          a.get("x1"),
				X2:          a.get("x2"),
				Y1:          a.get("y1"),
				Y2:          a.get("y2"),
			})
		},
		"ruleX": func(data *table.Table, a *args) plot.Mark {
			return plot.RuleX(data, plot.RuleXOptions{
				MarkOptions: a.markOptions(),
				X:           a.get("x"),
				Y1:          a.get("y1"),
				Y2:          a.get("y2"),
			})
		},
		"ruleY": func(data *table.Table, a *args) plot.Mark {
			return plot.RuleY(data, plot.RuleYOptions{
				MarkOptions: a.markOptions(),
				Y:           a.get("y"),
				X1:          a.get("x1"),
				X2:          a.get("x2"),
			})
		},
		"tickX": func(data *table.Table, a *args) plot.Mark {
			return plot.TickX(data, plot.TickXOptions{
				MarkOptions: a.markOptions(),
				X:           a.get("x"),
				Y:           a.get("y"),
			})
		},
		"tickY": func(data *table.Table, a *args) plot.Mark {
			return plot.TickY(data, plot.TickYOptions{
				MarkOptions: a.markOptions(),
				Y:           a.get("y"),
				X:           a.get("x"),
			})
		},
		"text": func(data *table.Table, a *args) plot.Mark {
			return plot.Text(data, plot.TextOptions{
				MarkOptions: a.markOptions(),
				X:           a.get("x"),
				Y:           a.get("y"),
				Text:        a.get("text"),
				FontSize:    a.num("fontSize"),
				FontFamily:  a.str("fontFamily"),
				FontStyle:   a.str("fontStyle"),
				FontWeight:  a.str("fontWeight"),
				TextAnchor:  a.str("textAnchor"),
				LineAnchor:  a.str("lineAnchor"),
				Rotate:      a.num("rotate"),
				LineWidth:   a.num("lineWidth"),
			})
		},
		"image": func(data *table.Table, a *args) plot.Mark {
			return plot.Image(data, plot.ImageOptions{
				MarkOptions:         a.markOptions(),
				X:                   a.get("x"),
				Y:                   a.get("y"),
				Src:                 a.get("src"),
				Width:               a.get("width"),
				Height:              a.get("height"),
				PreserveAspectRatio: a.str("preserveAspectRatio"),
				CrossOrigin:         a.str("crossOrigin"),
			})
		},
		"axisX": func(_ *table.Table, a *args) plot.Mark {
			return plot.AxisX(a.axisOptions())
		},
		"axisY": func(_ *table.Table, a *args) plot.Mark {
			return plot.AxisY(a.axisOptions())
		},
	}
}

func cellMark(f func(*table.Table, plot.CellOptions) plot.Mark) func(*table.Table, *args) plot.Mark {
	return func(data *table.Table, a *args) plot.Mark {
		return f(data, plot.CellOptions{
			MarkOptions: a.markOptions(),
			Insets:      a.insets(),
			X:           a.get("x"),
			Y:           a.get("y"),
		})
	}
}

// args reads a MarkSpec's options, recording which were used and the
// first conversion error.
type args struct {
	spec MarkSpec
	used map[string]bool
	err  error
}

func (a *args) fail(key string, v interface{}, want string) {
	if a.err == nil {
		a.err = fmt.Errorf("option %s: %v is not %s", key, v, want)
	}
}

func (a *args) raw(key string) interface{} {
	a.used[key] = true
	return a.spec[key]
}

// get returns a channel or constant option.
func (a *args) get(key string) interface{} {
	v := a.raw(key)
	m, ok := v.(map[string]interface{})
	if !ok {
		return v
	}
	val, hasVal := m["value"]
	op, hasOp := m["reduce"]
	if !hasVal || !hasOp || len(m) != 2 {
		a.fail(key, v, "a {value, reduce} map")
		return nil
	}
	return plot.Reduce{Value: val, Op: op}
}

func (a *args) num(key string) float64 {
	v := a.raw(key)
	switch v := v.(type) {
	case nil:
		return 0
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case float64:
		return v
	}
	a.fail(key, v, "a number")
	return 0
}

func (a *args) str(key string) string {
	v := a.raw(key)
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(v)
	}
	a.fail(key, v, "a string")
	return ""
}

func (a *args) flag(key string) bool {
	v := a.raw(key)
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	}
	a.fail(key, v, "true or false")
	return false
}

func (a *args) markOptions() plot.MarkOptions {
	return plot.MarkOptions{
		StyleOptions: plot.StyleOptions{
			Title:           a.get("title"),
			Href:            a.get("href"),
			Target:          a.str("target"),
			AriaLabel:       a.get("ariaLabel"),
			AriaDescription: a.str("ariaDescription"),
			AriaHidden:      a.str("ariaHidden"),

			Fill:             a.get("fill"),
			FillOpacity:      a.get("fillOpacity"),
			Stroke:           a.get("stroke"),
			StrokeWidth:      a.get("strokeWidth"),
			StrokeOpacity:    a.get("strokeOpacity"),
			StrokeLinejoin:   a.str("strokeLinejoin"),
			StrokeLinecap:    a.str("strokeLinecap"),
			StrokeMiterlimit: a.get("strokeMiterlimit"),
			StrokeDasharray:  a.get("strokeDasharray"),
			Opacity:          a.get("opacity"),
			MixBlendMode:     a.str("mixBlendMode"),
			PaintOrder:       a.str("paintOrder"),
			ShapeRendering:   a.str("shapeRendering"),
		},
		Dx:          a.num("dx"),
		Dy:          a.num("dy"),
		FrameAnchor: a.str("frameAnchor"),
	}
}

func (a *args) insets() plot.Insets {
	return plot.Insets{
		Inset:       a.num("inset"),
		InsetTop:    a.num("insetTop"),
		InsetRight:  a.num("insetRight"),
		InsetBottom: a.num("insetBottom"),
		InsetLeft:   a.num("insetLeft"),
		Rx:          a.num("rx"),
		Ry:          a.num("ry"),
	}
}

func (a *args) axisOptions() plot.AxisOptions {
	return plot.AxisOptions{
		Anchor:   a.str("anchor"),
		Label:    a.str("label"),
		NoLabel:  a.flag("noLabel"),
		TickSize: a.num("tickSize"),
		Ticks:    int(a.num("ticks")),
		Grid:     a.flag("grid"),
	}
}
