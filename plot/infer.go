// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"time"
)

// inferScaleType determines the type of the scale for key from the
// channels bound to it and the scale's options. It returns ScaleAuto
// if no scale is needed.
func inferScaleType(key string, channels []channelValues, o ScaleOptions) (ScaleType, error) {
	if o.Type != "" {
		t, err := ParseScaleType(o.Type)
		if err != nil {
			return ScaleAuto, configErrorf(key, ErrUnknownScaleType, "%s", o.Type)
		}
		if t == ScaleAuto {
			o.Type = ""
			return inferScaleType(key, channels, o)
		}
		for _, c := range channels {
			if c.Type != ScaleAuto && c.Type != t {
				return ScaleAuto, configErrorf(key, ErrIncompatibleScale, "%s scale for %s channel of type %s", t, c.Name, c.Type)
			}
		}
		return t, nil
	}

	if registry[key] == kindRadius {
		return ScaleSqrt, nil
	}

	// The first declared type wins, but every other channel must
	// agree with its family.
	var declared ScaleType
	for _, c := range channels {
		if c.Type != ScaleAuto {
			declared = c.Type
			break
		}
	}
	if declared != ScaleAuto {
		for _, c := range channels {
			if c.Type != ScaleAuto {
				if c.Type.family() != declared.family() {
					return ScaleAuto, configErrorf(key, ErrIncompatibleScale, "%s channel of type %s conflicts with %s", c.Name, c.Type, declared)
				}
				continue
			}
			sniffed, ok := sniffValues(c.values)
			if !ok {
				continue
			}
			switch {
			case sniffed.family() == familyTemporal && declared.family() == familyQuantitative,
				sniffed.family() == familyOrdinal && declared.family() != familyOrdinal:
				return ScaleAuto, configErrorf(key, ErrIncompatibleScale, "%s channel values are %s, not %s", c.Name, sniffed, declared)
			}
		}
		return declared, nil
	}

	// More than two stops in either the domain or the range means
	// discrete values, even when the other has two. A numeric
	// two-value domain with a three-color range is therefore ordinal.
	if len(o.Domain) > 2 || len(o.Range) > 2 {
		return ordinalType(key), nil
	}
	if len(o.Domain) > 0 {
		if t, ok := sniffValues(o.Domain); ok {
			return asType(key, t), nil
		}
		return ScaleLinear, nil
	}

	if len(channels) == 0 {
		return ScaleAuto, nil
	}
	for _, c := range channels {
		if t, ok := sniffValues(c.values); ok {
			return asType(key, t), nil
		}
	}
	return ScaleLinear, nil
}

// sniffValues guesses a scale type from the first defined value of
// vs: ScaleOrdinal for strings and bools, ScaleUtc for times, and
// ScaleLinear for anything else.
func sniffValues(vs []interface{}) (ScaleType, bool) {
	v, ok := firstDefined(vs)
	if !ok {
		return ScaleAuto, false
	}
	switch v.(type) {
	case string, bool:
		return ScaleOrdinal, true
	case time.Time:
		return ScaleUtc, true
	}
	if isNumber(v) {
		return ScaleLinear, true
	}
	// Unknown types, like structs, can only be told apart.
	return ScaleOrdinal, true
}

// ordinalType returns the ordinal-family type for key.
func ordinalType(key string) ScaleType {
	if registry[key] == kindPosition {
		return ScalePoint
	}
	return ScaleOrdinal
}

func asType(key string, t ScaleType) ScaleType {
	if t.family() == familyOrdinal {
		return ordinalType(key)
	}
	return t
}
