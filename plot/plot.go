// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"io"

	"github.com/markplot/markplot/svgnode"
	"golang.org/x/text/language"
)

// Options describe a plot.
type Options struct {
	// Width and Height are the plot's size in pixels (default 640
	// by 400).
	Width, Height float64

	// Margins are the space around the plot's frame. If nil,
	// DefaultMargins are used.
	Margins *Margins

	// Inset is the default inset of the x and y scales.
	Inset float64

	// Scales are options for individual scales, by key. The keys
	// are x, y, fx, fy, r, color, opacity, length, and symbol.
	Scales map[string]ScaleOptions

	Marks []Mark

	// Facet, if non-nil, splits the plot into one cell per
	// distinct facet value.
	Facet *Facet

	// ClassName is the class of the plot's root element. If "",
	// a name is taken from ClassNames, or is "plot-1" if
	// ClassNames is nil.
	ClassName  string
	ClassNames *ClassNames

	// Locale formats numbers in text and tick labels. The zero
	// value means DefaultLocale.
	Locale language.Tag

	// HideAxes omits the automatic x and y axes. Grid draws grid
	// lines on them.
	HideAxes bool
	Grid     bool

	// Caption is a description of the plot, stored in its <desc>.
	Caption string

	AriaLabel       string
	AriaDescription string
}

// A Figure is a rendered plot.
type Figure struct {
	SVG        *svgnode.Node
	Scales     Scales
	Dimensions Dimensions
}

// WriteSVG writes f as an SVG document.
func (f *Figure) WriteSVG(w io.Writer) error {
	return svgnode.Write(w, f.SVG)
}

// markState is a mark's evaluated channels during a plot build.
type markState struct {
	mark    Mark
	base    *MarkBase
	raw     Values
	scaled  Values
	all     []int
	faceted bool
}

// Plot builds the plot described by o. Configuration errors are
// reported before anything is rendered; the result is either a
// complete Figure or an error.
func Plot(o Options) (*Figure, error) {
	dims := Dimensions{Width: o.Width, Height: o.Height, Margins: DefaultMargins}
	if dims.Width == 0 {
		dims.Width = 640
	}
	if dims.Height == 0 {
		dims.Height = 400
	}
	if o.Margins != nil {
		dims.Margins = *o.Margins
	}
	locale := o.Locale
	if locale == language.Und {
		locale = DefaultLocale
	}

	cls, err := className(o.ClassName, o.ClassNames)
	if err != nil {
		return nil, err
	}
	for key := range o.Scales {
		if _, ok := registry[key]; !ok {
			return nil, configErrorf(key, ErrUnknownScale, "%s", key)
		}
	}

	marks := append([]Mark(nil), o.Marks...)
	if !o.HideAxes {
		marks = append(marks, defaultAxes(marks, o.Grid)...)
	}

	// Evaluate every channel and pool them by scale key.
	pooled := make(map[string][]channelValues)
	var states []*markState
	for _, m := range marks {
		b := m.Base()
		if b.err != nil {
			return nil, b.err
		}
		b.locale = locale
		st := &markState{mark: m, base: b, raw: make(Values)}
		st.faceted = o.Facet != nil && b.Data != nil && b.Data == o.Facet.Data
		cvs := b.evaluate()
		var groups [][]int
		if b.groupBy != "" {
			for _, cv := range cvs {
				if cv.Name == b.groupBy {
					groups = groupRows(cv.values)
				}
			}
		}
		for i := range cvs {
			cv := &cvs[i]
			if cv.reduce != nil && groups != nil {
				cv.values = reduceGroups(cv.values, groups, cv.reduce)
			}
			st.raw[cv.Name] = cv.values
			if _, ok := registry[cv.Scale]; ok {
				pooled[cv.Scale] = append(pooled[cv.Scale], *cv)
			}
		}
		st.all = make([]int, b.rows())
		for i := range st.all {
			st.all[i] = i
		}
		states = append(states, st)
	}
	var facets *facetIndex
	if o.Facet != nil {
		if facets, err = newFacetIndex(o.Facet); err != nil {
			return nil, err
		}
		for _, cv := range facets.channels() {
			pooled[cv.Scale] = append(pooled[cv.Scale], cv)
		}
	}

	// Build scales.
	scales := make(Scales)
	env := scaleEnv{inset: o.Inset, locale: locale}
	for _, key := range scaleKeys {
		so, hasOptions := o.Scales[key]
		if len(pooled[key]) == 0 && !hasOptions {
			continue
		}
		senv := env
		if registry[key] != kindPosition || key == "fx" || key == "fy" {
			senv.inset = 0
		}
		s, err := newScale(key, pooled[key], so, senv)
		if err != nil {
			return nil, err
		}
		if s != nil {
			scales[key] = s
		}
	}
	autoScaleRange(scales, dims)

	// Scale each mark's channels and filter its rows.
	for _, st := range states {
		st.scaled = make(Values)
		for _, c := range st.base.Channels {
			raw := st.raw[c.Name]
			s := scales[c.Scale]
			if s == nil {
				st.scaled[c.Name] = raw
				continue
			}
			out := make([]interface{}, len(raw))
			for i, v := range raw {
				out[i] = s.Map(v)
			}
			st.scaled[c.Name] = out
		}
	}

	root := svgnode.New("svg").
		Set("class", cls).
		Set("fill", "currentColor").
		Set("font-family", "system-ui, sans-serif").
		Set("font-size", fmt.Sprint(defaultFontSize)).
		Set("text-anchor", "middle").
		SetNum("width", dims.Width).
		SetNum("height", dims.Height).
		Set("viewBox", fmt.Sprintf("0 0 %s %s", numString(dims.Width), numString(dims.Height))).
		Set("xmlns", "http://www.w3.org/2000/svg")
	setAttr(root, "aria-label", o.AriaLabel)
	setAttr(root, "aria-description", o.AriaDescription)
	if o.Caption != "" {
		root.Append(svgnode.New("desc").SetText(o.Caption))
	}
	root.Append(svgnode.New("style").SetText(styleSheet(cls)))

	if facets == nil {
		for _, st := range states {
			index := st.base.filter(st.all, st.raw, st.scaled)
			root.Append(st.mark.Render(index, scales, st.scaled, dims))
		}
	} else {
		root.Append(facets.render(states, scales, dims)...)
	}

	return &Figure{SVG: root, Scales: scales, Dimensions: dims}, nil
}

// defaultAxes returns axis marks for x and y, unless marks already
// has them.
func defaultAxes(marks []Mark, grid bool) []Mark {
	have := make(map[string]bool)
	for _, m := range marks {
		if a, ok := m.(*AxisMark); ok {
			have[a.key] = true
		}
	}
	var out []Mark
	if !have["x"] {
		out = append(out, AxisX(AxisOptions{Grid: grid}))
	}
	if !have["y"] {
		out = append(out, AxisY(AxisOptions{Grid: grid}))
	}
	return out
}

// styleSheet returns the CSS rules for a plot with class cls.
func styleSheet(cls string) string {
	return fmt.Sprintf(`.%[1]s {
  display: block;
  background: white;
  height: auto;
  height: intrinsic;
  max-width: 100%%;
}
.%[1]s text {
  white-space: pre;
}`, cls)
}

// Keys returns the keys of s in build order.
func (s Scales) Keys() []string {
	var keys []string
	for _, k := range scaleKeys {
		if _, ok := s[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}
