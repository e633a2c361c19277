// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"

	"golang.org/x/text/language"
)

// scaleKind is what a scale key maps to.
type scaleKind int

const (
	kindNone scaleKind = iota
	kindPosition
	kindRadius
	kindColor
	kindOpacity
	kindLength
	kindSymbol
)

var registry = map[string]scaleKind{
	"x":       kindPosition,
	"y":       kindPosition,
	"fx":      kindPosition,
	"fy":      kindPosition,
	"r":       kindRadius,
	"color":   kindColor,
	"opacity": kindOpacity,
	"length":  kindLength,
	"symbol":  kindSymbol,
}

// scaleKeys is the order in which scales are built and reported.
var scaleKeys = []string{"fx", "fy", "x", "y", "r", "color", "opacity", "length", "symbol"}

// ScaleOptions are options for one scale.
type ScaleOptions struct {
	// Type is the name of a ScaleType, or "" to infer the type.
	Type string

	// Domain and Range override the computed domain and the
	// default range. A color scale's Range is a list of colors.
	Domain []interface{}
	Range  []interface{}

	// Label is the axis label. It defaults to the field name of
	// the first channel bound to the scale.
	Label string

	// Nice extends a continuous domain to round values.
	Nice bool

	// Zero extends a continuous domain to include 0. It's implied
	// for the r, opacity, and length scales.
	Zero bool

	// Reverse flips the scale's direction.
	Reverse bool

	// Clamp restricts continuous output to the range.
	Clamp bool

	// Inset shrinks an automatic positional range on both ends.
	// If nil, the plot's Inset is used.
	Inset *float64

	// Padding is the fraction of the step reserved between bands
	// and at either end (default 0.1 for band scales, 0.5 for
	// point scales). Align positions the bands within any leftover
	// space (default 0.5).
	Padding *float64
	Align   *float64

	// Exponent is the pow exponent (default 1; sqrt is pow 0.5).
	// Base is the log base (default 10). Constant is the symlog
	// constant (default 1). Pivot is the diverging midpoint.
	Exponent float64
	Base     float64
	Constant float64
	Pivot    float64

	// Scheme names a brewer color scheme, such as "Blues".
	// Interpolate selects the color interpolation; only "rgb" is
	// supported.
	Scheme      string
	Interpolate string

	// Transform, if non-nil, is applied to every value before it
	// is scaled.
	Transform func(float64) float64

	// Ticks is the approximate number of axis ticks. TickFormat
	// overrides the tick label format.
	Ticks      int
	TickFormat func(interface{}) string
}

// Scales maps scale keys to scales.
type Scales map[string]*Scale

// A Scale maps abstract data values to visual values.
//
// A Scale is built in two phases. Construction fixes its type and
// domain. Its range may not be known until the plot's layout is, so
// positional scales without an explicit range are finalized later,
// exactly once.
type Scale struct {
	Key    string
	Type   ScaleType
	Domain []interface{}
	Range  []interface{}
	Label  string

	opts      ScaleOptions
	inset     float64
	locale    language.Tag
	finalized bool

	cont *continuous
	ord  *ordinal
}

// scaleEnv is the plot-wide context of scale construction.
type scaleEnv struct {
	inset  float64
	locale language.Tag
}

// newScale builds the scale for key from the channels bound to it.
// It returns nil if no scale is needed.
func newScale(key string, channels []channelValues, o ScaleOptions, env scaleEnv) (*Scale, error) {
	typ, err := inferScaleType(key, channels, o)
	if err != nil || typ == ScaleAuto {
		return nil, err
	}
	s := &Scale{Key: key, Type: typ, Label: o.Label, opts: o, inset: env.inset, locale: env.locale}
	if o.Inset != nil {
		s.inset = *o.Inset
	}
	if s.Label == "" {
		for _, c := range channels {
			if name := c.Value.FieldName(); name != "" {
				s.Label = name
				break
			}
		}
	}

	switch typ.family() {
	case familyOrdinal:
		err = s.initOrdinal(channels)
	case familyQuantitative, familyTemporal:
		err = s.initContinuous(channels)
	default:
		err = configErrorf(key, ErrUnknownScaleType, "%s", typ)
	}
	if err != nil {
		return nil, err
	}

	if registry[key] != kindPosition {
		if err := s.initRange(); err != nil {
			return nil, err
		}
		s.finalized = true
	} else if len(o.Range) > 0 {
		r0, ok0 := toFloat(o.Range[0])
		r1, ok1 := toFloat(o.Range[len(o.Range)-1])
		if !ok0 || !ok1 {
			return nil, configErrorf(key, ErrInvalidOption, "range %v is not numeric", o.Range)
		}
		s.finalize(r0, r1)
	}
	return s, nil
}

// initRange assigns the default or explicit range of a
// non-positional scale.
func (s *Scale) initRange() error {
	if s.ord != nil {
		return s.initOrdinalRange()
	}
	return s.initContinuousRange()
}

// finalize fixes the range of a positional scale. Only the first
// call has any effect.
func (s *Scale) finalize(r0, r1 float64) {
	if s.finalized {
		return
	}
	s.finalized = true
	if s.opts.Reverse {
		r0, r1 = r1, r0
	}
	s.Range = []interface{}{r0, r1}
	if s.ord != nil {
		s.ord.layout(r0, r1)
	} else {
		s.cont.interp = lerp(r0, r1)
	}
}

// Finalized reports whether s's range is fixed.
func (s *Scale) Finalized() bool {
	return s.finalized
}

// IsOrdinal reports whether s maps a discrete domain.
func (s *Scale) IsOrdinal() bool {
	return s.ord != nil
}

// Map maps v through s. It returns a float64 for positional and
// numeric scales, a CSS color for color scales, and a symbol name for
// symbol scales. It returns nil if v can't be mapped, or if s isn't
// finalized.
func (s *Scale) Map(v interface{}) interface{} {
	if !s.finalized || !defined(v) {
		return nil
	}
	if s.ord != nil {
		return s.ord.mapValue(s, v)
	}
	return s.cont.mapValue(s, v)
}

// Bandwidth returns the width of each band of a band scale, or 0.
func (s *Scale) Bandwidth() float64 {
	if s.ord == nil {
		return 0
	}
	return s.ord.bandwidth
}

// Step returns the distance between the starts of adjacent bands or
// points, or 0 for non-ordinal scales.
func (s *Scale) Step() float64 {
	if s.ord == nil {
		return 0
	}
	return s.ord.step
}

// Ticks returns about n representative domain values.
func (s *Scale) Ticks(n int) []interface{} {
	if s.opts.Ticks > 0 {
		n = s.opts.Ticks
	}
	if n < 1 {
		n = 1
	}
	if s.ord != nil {
		return append([]interface{}(nil), s.Domain...)
	}
	return s.cont.ticks(s, n)
}

// TickFormat returns a function that formats the scale's ticks.
func (s *Scale) TickFormat() func(interface{}) string {
	if s.opts.TickFormat != nil {
		return s.opts.TickFormat
	}
	switch s.Type.family() {
	case familyOrdinal:
		return stringOf
	case familyTemporal:
		return timeFormat(s.Type, s.Ticks(10))
	}
	return numberFormat(s.locale)
}

func (s *Scale) String() string {
	return fmt.Sprintf("%s %s %v => %v", s.Key, s.Type, s.Domain, s.Range)
}

// lerp returns a function that linearly interpolates from r0 to r1.
func lerp(r0, r1 float64) func(t float64) interface{} {
	return func(t float64) interface{} {
		return r0 + t*(r1-r0)
	}
}
