// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
)

// continuous is the state of a quantitative or temporal scale.
//
// lo, hi, and pivot are in data space (Unix milliseconds for times).
// norm maps the forward-transformed domain to [0, 1]; a diverging
// scale maps each half to half of [0, 1].
type continuous struct {
	lo, hi, pivot float64
	fwd           func(float64) float64
	norm          scale.Linear
	lower, upper  scale.Linear
	diverging     bool
	interp        func(t float64) interface{}
}

// forward returns the transform a scale type applies before linear
// normalization.
func forward(typ ScaleType, o ScaleOptions) func(float64) float64 {
	switch typ {
	case ScaleSqrt, ScalePow:
		e := o.Exponent
		if e == 0 {
			e = 1
			if typ == ScaleSqrt {
				e = 0.5
			}
		}
		if e == 1 {
			break
		}
		return func(x float64) float64 {
			if x < 0 {
				return -math.Pow(-x, e)
			}
			return math.Pow(x, e)
		}
	case ScaleLog:
		base := o.Base
		if base == 0 {
			base = 10
		}
		lb := math.Log(base)
		return func(x float64) float64 {
			if x <= 0 {
				return math.NaN()
			}
			return math.Log(x) / lb
		}
	case ScaleSymlog:
		c := o.Constant
		if c == 0 {
			c = 1
		}
		return func(x float64) float64 {
			if x < 0 {
				return -math.Log1p(-x / c)
			}
			return math.Log1p(x / c)
		}
	}
	return func(x float64) float64 { return x }
}

// value converts v to a float in the scale's data space, applying
// the scale's Transform.
func (s *Scale) value(v interface{}) (float64, bool) {
	x, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	if s.opts.Transform != nil {
		x = s.opts.Transform(x)
	}
	return x, true
}

func (s *Scale) initContinuous(channels []channelValues) error {
	o := s.opts
	c := &continuous{fwd: forward(s.Type, o), pivot: o.Pivot}
	c.diverging = s.Type == ScaleDiverging
	s.cont = c

	if len(o.Domain) > 0 {
		xs := make([]float64, len(o.Domain))
		for i, v := range o.Domain {
			x, ok := toFloat(v)
			if !ok {
				return configErrorf(s.Key, ErrInvalidOption, "domain value %v is not numeric", v)
			}
			xs[i] = x
		}
		c.lo, c.hi = xs[0], xs[len(xs)-1]
		if c.diverging && len(xs) == 3 {
			c.pivot = xs[1]
		}
	} else {
		var xs []float64
		for _, ch := range channels {
			for _, v := range ch.values {
				if x, ok := s.value(v); ok && isFinite(x) {
					xs = append(xs, x)
				}
			}
		}
		if len(xs) == 0 {
			c.lo, c.hi = 0, 1
		} else {
			c.lo, c.hi = stats.Bounds(xs)
		}
		switch registry[s.Key] {
		case kindRadius, kindOpacity, kindLength:
			o.Zero = true
		}
		if o.Zero && s.Type.family() == familyQuantitative {
			c.lo, c.hi = math.Min(c.lo, 0), math.Max(c.hi, 0)
		}
	}
	if o.Nice {
		c.nice(s.Type, o)
	}
	if s.Type == ScaleLog && (c.lo <= 0 || c.hi <= 0) {
		Warning.Printf("%s: log scale domain [%g, %g] includes non-positive values", s.Key, c.lo, c.hi)
	}
	c.setNorm(o.Clamp)

	if s.Type.family() == familyTemporal {
		s.Domain = []interface{}{floatToTime(c.lo), floatToTime(c.hi)}
	} else if c.diverging {
		s.Domain = []interface{}{c.lo, c.pivot, c.hi}
	} else {
		s.Domain = []interface{}{c.lo, c.hi}
	}
	return nil
}

func (c *continuous) setNorm(clamp bool) {
	flo, fhi := c.fwd(c.lo), c.fwd(c.hi)
	c.norm = scale.Linear{Min: flo, Max: fhi, Clamp: clamp}
	if c.diverging {
		fp := c.fwd(c.pivot)
		c.lower = scale.Linear{Min: flo, Max: fp, Clamp: clamp}
		c.upper = scale.Linear{Min: fp, Max: fhi, Clamp: clamp}
	}
}

// nice extends the domain to round values.
func (c *continuous) nice(typ ScaleType, o ScaleOptions) {
	lo, hi := c.lo, c.hi
	swapped := lo > hi
	if swapped {
		lo, hi = hi, lo
	}
	if lo == hi || !isFinite(lo) || !isFinite(hi) {
		return
	}
	if typ == ScaleLog {
		if lo <= 0 {
			return
		}
		base := o.Base
		if base == 0 {
			base = 10
		}
		lb := math.Log(base)
		lo = math.Pow(base, math.Floor(math.Log(lo)/lb))
		hi = math.Pow(base, math.Ceil(math.Log(hi)/lb))
	} else {
		l := scale.Linear{Min: lo, Max: hi}
		l.Nice(scale.TickOptions{Max: 10})
		lo, hi = l.Min, l.Max
	}
	if swapped {
		lo, hi = hi, lo
	}
	c.lo, c.hi = lo, hi
}

// normalize maps a data-space value to [0, 1] (or beyond, if the
// scale doesn't clamp).
func (c *continuous) normalize(x float64) float64 {
	fx := c.fwd(x)
	if math.IsNaN(fx) {
		return math.NaN()
	}
	if c.diverging {
		fp := c.fwd(c.pivot)
		if (fx < fp) == (c.norm.Min < c.norm.Max) {
			return 0.5 * half(c.lower, fx)
		}
		return 0.5 + 0.5*half(c.upper, fx)
	}
	return half(c.norm, fx)
}

// half is l.Map, treating an empty domain as mapping to its middle.
func half(l scale.Linear, x float64) float64 {
	if l.Min == l.Max {
		return 0.5
	}
	return l.Map(x)
}

func (c *continuous) mapValue(s *Scale, v interface{}) interface{} {
	x, ok := s.value(v)
	if !ok {
		return nil
	}
	t := c.normalize(x)
	if math.IsNaN(t) {
		return nil
	}
	if s.opts.Reverse && registry[s.Key] != kindPosition {
		t = 1 - t
	}
	return c.interp(t)
}

// initContinuousRange assigns the range of a non-positional
// continuous scale.
func (s *Scale) initContinuousRange() error {
	c, o := s.cont, s.opts
	switch registry[s.Key] {
	case kindColor:
		pal, err := continuousScheme(s.Key, s.Type, o)
		if err != nil {
			return err
		}
		c.interp = func(t float64) interface{} {
			return cssColor(pal.Map(t))
		}
		if len(o.Range) > 0 {
			s.Range = o.Range
		} else {
			s.Range = []interface{}{cssColor(pal.Map(0)), cssColor(pal.Map(1))}
		}
		return nil

	case kindSymbol:
		symbols := symbolRange(o)
		c.interp = func(t float64) interface{} {
			i := int(t * float64(len(symbols)))
			if i < 0 {
				i = 0
			} else if i >= len(symbols) {
				i = len(symbols) - 1
			}
			return symbols[i]
		}
		s.Range = symbols
		return nil
	}

	r0, r1 := defaultRange(registry[s.Key])
	if len(o.Range) > 0 {
		var ok0, ok1 bool
		r0, ok0 = toFloat(o.Range[0])
		r1, ok1 = toFloat(o.Range[len(o.Range)-1])
		if !ok0 || !ok1 {
			return configErrorf(s.Key, ErrInvalidOption, "range %v is not numeric", o.Range)
		}
	}
	c.interp = lerp(r0, r1)
	s.Range = []interface{}{r0, r1}
	return nil
}

// defaultRange returns the default numeric range for a
// non-positional scale kind.
func defaultRange(k scaleKind) (float64, float64) {
	switch k {
	case kindRadius:
		return 0, 8
	case kindLength:
		return 0, 12
	}
	return 0, 1
}

// ticks returns about n round values within the domain.
func (c *continuous) ticks(s *Scale, n int) []interface{} {
	lo, hi := c.lo, c.hi
	if lo > hi {
		lo, hi = hi, lo
	}
	if !isFinite(lo) || !isFinite(hi) {
		return nil
	}
	if lo == hi {
		if s.Type.family() == familyTemporal {
			return []interface{}{floatToTime(lo)}
		}
		return []interface{}{lo}
	}
	switch s.Type {
	case ScaleTime, ScaleUtc:
		return timeTicks(lo, hi, n, s.location())
	case ScaleLog:
		base := s.opts.Base
		if base == 0 {
			base = 10
		}
		return logTicks(lo, hi, base, n)
	}
	l := scale.Linear{Min: lo, Max: hi}
	major, _ := l.Ticks(scale.TickOptions{Max: n})
	out := make([]interface{}, len(major))
	for i, x := range major {
		out[i] = x
	}
	return out
}

// logTicks returns the powers of base in [lo, hi], thinned to at
// most n.
func logTicks(lo, hi, base float64, n int) []interface{} {
	if lo <= 0 {
		return nil
	}
	lb := math.Log(base)
	e0, e1 := math.Ceil(math.Log(lo)/lb-1e-9), math.Floor(math.Log(hi)/lb+1e-9)
	step := 1.0
	for (e1-e0)/step+1 > float64(n) {
		step++
	}
	var out []interface{}
	for e := e0; e <= e1; e += step {
		out = append(out, math.Pow(base, e))
	}
	return out
}
