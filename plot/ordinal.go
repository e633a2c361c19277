// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"reflect"
	"time"

	"github.com/aclements/go-moremath/vec"
)

// ordinal is the state of an ordinal-family scale.
type ordinal struct {
	index map[interface{}]int

	// Band layout, for positional scales.
	paddingInner, paddingOuter, align float64
	step, bandwidth                   float64
	positions                         []float64
}

type timeKey int64

// ordinalKey returns a comparable key for v such that equal values
// have equal keys. Numbers of different types compare by value.
func ordinalKey(v interface{}) interface{} {
	switch v := v.(type) {
	case nil:
		return nil
	case time.Time:
		return timeKey(v.UnixNano())
	case string:
		return v
	}
	if isNumber(v) {
		x, _ := toFloat(v)
		return x
	}
	if reflect.TypeOf(v).Comparable() {
		return v
	}
	return fmt.Sprintf("%#v", v)
}

func (s *Scale) initOrdinal(channels []channelValues) error {
	o := s.opts
	var domain []interface{}
	seen := make(map[interface{}]bool)
	add := func(v interface{}) {
		if !defined(v) {
			return
		}
		if k := ordinalKey(v); !seen[k] {
			seen[k] = true
			domain = append(domain, v)
		}
	}
	if len(o.Domain) > 0 {
		for _, v := range o.Domain {
			add(v)
		}
	} else {
		for _, c := range channels {
			for _, v := range c.values {
				add(v)
			}
		}
	}
	if o.Reverse && registry[s.Key] != kindPosition {
		for i, j := 0, len(domain)-1; i < j; i, j = i+1, j-1 {
			domain[i], domain[j] = domain[j], domain[i]
		}
	}

	ord := &ordinal{index: make(map[interface{}]int), align: 0.5}
	for i, v := range domain {
		ord.index[ordinalKey(v)] = i
	}
	if s.Type == ScaleBand {
		ord.paddingInner, ord.paddingOuter = 0.1, 0.1
		if o.Padding != nil {
			ord.paddingInner, ord.paddingOuter = *o.Padding, *o.Padding
		}
	} else {
		ord.paddingInner, ord.paddingOuter = 1, 0.5
		if o.Padding != nil {
			ord.paddingOuter = *o.Padding
		}
	}
	if o.Align != nil {
		ord.align = *o.Align
	}
	if ord.paddingInner < 0 || ord.paddingInner > 1 || ord.align < 0 || ord.align > 1 {
		return configErrorf(s.Key, ErrInvalidOption, "padding and align must be in [0, 1]")
	}
	s.Domain = domain
	s.ord = ord
	return nil
}

// layout positions the bands of a positional ordinal scale within
// the range [r0, r1].
func (ord *ordinal) layout(r0, r1 float64) {
	n := len(ord.index)
	reverse := r1 < r0
	if reverse {
		r0, r1 = r1, r0
	}
	fn := float64(n)
	den := fn - ord.paddingInner + 2*ord.paddingOuter
	if den < 1 {
		den = 1
	}
	ord.step = (r1 - r0) / den
	start := r0 + (r1-r0-ord.step*(fn-ord.paddingInner))*ord.align
	ord.bandwidth = ord.step * (1 - ord.paddingInner)

	switch n {
	case 0:
		ord.positions = nil
	case 1:
		ord.positions = []float64{start}
	default:
		ord.positions = vec.Linspace(start, start+ord.step*(fn-1), n)
	}
	if reverse {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			ord.positions[i], ord.positions[j] = ord.positions[j], ord.positions[i]
		}
	}
}

func (ord *ordinal) mapValue(s *Scale, v interface{}) interface{} {
	i, ok := ord.index[ordinalKey(v)]
	if !ok {
		return nil
	}
	if registry[s.Key] == kindPosition {
		return ord.positions[i]
	}
	if len(s.Range) == 0 {
		return nil
	}
	return s.Range[i%len(s.Range)]
}

var symbolNames = []interface{}{"circle", "cross", "diamond", "square", "star", "triangle", "wye"}

func symbolRange(o ScaleOptions) []interface{} {
	if len(o.Range) > 0 {
		return o.Range
	}
	return symbolNames
}

// initOrdinalRange assigns the range of a non-positional ordinal
// scale.
func (s *Scale) initOrdinalRange() error {
	n := len(s.Domain)
	switch registry[s.Key] {
	case kindColor:
		if len(s.opts.Range) > 0 {
			s.Range = s.opts.Range
			return nil
		}
		colors, err := ordinalScheme(s.Key, n, s.opts)
		if err != nil {
			return err
		}
		s.Range = colors
		return nil
	case kindSymbol:
		s.Range = symbolRange(s.opts)
		return nil
	}
	if len(s.opts.Range) > 0 {
		s.Range = s.opts.Range
		return nil
	}
	// Numeric kinds spread the domain evenly over the default range.
	r0, r1 := defaultRange(registry[s.Key])
	s.Range = nil
	switch n {
	case 0:
	case 1:
		s.Range = []interface{}{r1}
	default:
		for _, x := range vec.Linspace(r0, r1, n) {
			s.Range = append(s.Range, x)
		}
	}
	return nil
}
