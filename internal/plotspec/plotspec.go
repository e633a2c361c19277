// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotspec reads plot descriptions from YAML and from
// shell-style mark descriptions.
//
// A spec file looks like
//
//	width: 640
//	height: 400
//	scales:
//	  y: {type: log, nice: true}
//	marks:
//	  - {type: dot, x: weight, y: height, fill: species}
//	  - {type: ruleY, y: [0]}
//
// Mark options are named as in package plot, in lower camel case.
// Strings are field names unless the option is a color or URL
// constant, numbers are constants, and lists are per-row values. A
// style option of a grouped mark may be a map {value: v, reduce: op}.
package plotspec

import (
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/markplot/markplot/plot"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// A Spec describes a plot of one table.
type Spec struct {
	Width   float64       `yaml:"width"`
	Height  float64       `yaml:"height"`
	Margins *plot.Margins `yaml:"margins"`
	Inset   float64       `yaml:"inset"`

	Facet  *FacetSpec           `yaml:"facet"`
	Scales map[string]ScaleSpec `yaml:"scales"`
	Marks  []MarkSpec           `yaml:"marks"`

	HideAxes  bool   `yaml:"hideAxes"`
	Grid      bool   `yaml:"grid"`
	Caption   string `yaml:"caption"`
	ClassName string `yaml:"className"`
	Locale    string `yaml:"locale"`
}

// FacetSpec names the columns that facet a plot.
type FacetSpec struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
}

// ScaleSpec mirrors plot.ScaleOptions.
type ScaleSpec struct {
	Type   string        `yaml:"type"`
	Domain []interface{} `yaml:"domain"`
	Range  []interface{} `yaml:"range"`
	Label  string        `yaml:"label"`

	Nice    bool `yaml:"nice"`
	Zero    bool `yaml:"zero"`
	Reverse bool `yaml:"reverse"`
	Clamp   bool `yaml:"clamp"`

	Inset   *float64 `yaml:"inset"`
	Padding *float64 `yaml:"padding"`
	Align   *float64 `yaml:"align"`

	Exponent float64 `yaml:"exponent"`
	Base     float64 `yaml:"base"`
	Constant float64 `yaml:"constant"`
	Pivot    float64 `yaml:"pivot"`

	Scheme      string `yaml:"scheme"`
	Interpolate string `yaml:"interpolate"`
	Ticks       int    `yaml:"ticks"`
}

// Load reads a YAML spec from r. Unknown top-level and scale keys are
// errors. An empty document is an empty Spec.
func Load(r io.Reader) (*Spec, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	s := new(Spec)
	if err := dec.Decode(s); err != nil && err != io.EOF {
		return nil, err
	}
	return s, nil
}

// LoadFile is like Load, for the named file.
func LoadFile(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Build returns the plot options of s, with every mark (and the facet)
// drawing data.
func (s *Spec) Build(data *table.Table) (plot.Options, error) {
	o := plot.Options{
		Width:     s.Width,
		Height:    s.Height,
		Margins:   s.Margins,
		Inset:     s.Inset,
		HideAxes:  s.HideAxes,
		Grid:      s.Grid,
		Caption:   s.Caption,
		ClassName: s.ClassName,
	}
	if s.Locale != "" {
		tag, err := language.Parse(s.Locale)
		if err != nil {
			return o, fmt.Errorf("locale: %w", err)
		}
		o.Locale = tag
	}
	if s.Facet != nil {
		o.Facet = &plot.Facet{Data: data, X: s.Facet.X, Y: s.Facet.Y}
	}
	if len(s.Scales) > 0 {
		o.Scales = make(map[string]plot.ScaleOptions, len(s.Scales))
		for key, ss := range s.Scales {
			o.Scales[key] = ss.options()
		}
	}
	for i, ms := range s.Marks {
		m, err := ms.Build(data)
		if err != nil {
			return o, fmt.Errorf("mark %d: %w", i, err)
		}
		o.Marks = append(o.Marks, m)
	}
	return o, nil
}

func (ss ScaleSpec) options() plot.ScaleOptions {
	return plot.ScaleOptions{
		Type:        ss.Type,
		Domain:      ss.Domain,
		Range:       ss.Range,
		Label:       ss.Label,
		Nice:        ss.Nice,
		Zero:        ss.Zero,
		Reverse:     ss.Reverse,
		Clamp:       ss.Clamp,
		Inset:       ss.Inset,
		Padding:     ss.Padding,
		Align:       ss.Align,
		Exponent:    ss.Exponent,
		Base:        ss.Base,
		Constant:    ss.Constant,
		Pivot:       ss.Pivot,
		Scheme:      ss.Scheme,
		Interpolate: ss.Interpolate,
		Ticks:       ss.Ticks,
	}
}
